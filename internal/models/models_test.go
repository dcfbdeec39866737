package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserString(t *testing.T) {
	user := User{Email: "test@recipeapp.com"}
	assert.Equal(t, "test@recipeapp.com", user.String())
}

func TestTagString(t *testing.T) {
	tag := Tag{Name: "Keto"}
	assert.Equal(t, "Keto", tag.String())
}

func TestIngredientString(t *testing.T) {
	ingredient := Ingredient{Name: "Cucumber"}
	assert.Equal(t, "Cucumber", ingredient.String())
}

func TestRecipeString(t *testing.T) {
	recipe := Recipe{Title: "Steak and mushroom sauce"}
	assert.Equal(t, "Steak and mushroom sauce", recipe.String())
}
