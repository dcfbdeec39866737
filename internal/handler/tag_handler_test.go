package handler_test

import (
	"fmt"
	"net/http"
	"testing"

	"recipe-api/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsRequireAuth(t *testing.T) {
	env := setupAPI(t)

	w := env.doJSON(t, http.MethodGet, "/api/recipe/tags", nil, "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateAndListTags(t *testing.T) {
	env := setupAPI(t)
	user := env.createUser(t, "test@recipeapp.com", "pass1234")
	token := env.token(t, user)

	w := env.doJSON(t, http.MethodPost, "/api/recipe/tags", jsonBody{"name": "Dessert"}, token)
	require.Equal(t, http.StatusCreated, w.Code)
	w = env.doJSON(t, http.MethodPost, "/api/recipe/tags", jsonBody{"name": "Vegan"}, token)
	require.Equal(t, http.StatusCreated, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/recipe/tags", nil, token)
	require.Equal(t, http.StatusOK, w.Code)

	var tags []dto.TagResponse
	decodeData(t, w, &tags)
	require.Len(t, tags, 2)
	// 按名称倒序
	assert.Equal(t, "Vegan", tags[0].Name)
	assert.Equal(t, "Dessert", tags[1].Name)
}

func TestCreateTagMissingName(t *testing.T) {
	env := setupAPI(t)
	user := env.createUser(t, "test@recipeapp.com", "pass1234")

	w := env.doJSON(t, http.MethodPost, "/api/recipe/tags", jsonBody{"name": ""}, env.token(t, user))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListTagsScopedToOwner(t *testing.T) {
	env := setupAPI(t)
	alice := env.createUser(t, "alice@recipeapp.com", "pass1234")
	bob := env.createUser(t, "bob@recipeapp.com", "pass1234")

	_, err := env.tagService.Create(bob.ID, &dto.TagRequest{Name: "Fruity"})
	require.NoError(t, err)

	w := env.doJSON(t, http.MethodGet, "/api/recipe/tags", nil, env.token(t, alice))
	require.Equal(t, http.StatusOK, w.Code)

	var tags []dto.TagResponse
	decodeData(t, w, &tags)
	assert.Empty(t, tags)
}

func TestUpdateTag(t *testing.T) {
	env := setupAPI(t)
	user := env.createUser(t, "test@recipeapp.com", "pass1234")
	token := env.token(t, user)

	tag, err := env.tagService.Create(user.ID, &dto.TagRequest{Name: "Old Name"})
	require.NoError(t, err)

	w := env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/recipe/tags/%d", tag.ID), jsonBody{"name": "New Name"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.TagResponse
	decodeData(t, w, &resp)
	assert.Equal(t, "New Name", resp.Name)
}

func TestPatchTag(t *testing.T) {
	env := setupAPI(t)
	user := env.createUser(t, "test@recipeapp.com", "pass1234")
	token := env.token(t, user)

	tag, err := env.tagService.Create(user.ID, &dto.TagRequest{Name: "Old Name"})
	require.NoError(t, err)

	w := env.doJSON(t, http.MethodPatch, fmt.Sprintf("/api/recipe/tags/%d", tag.ID), jsonBody{"name": "New Name"}, token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.TagResponse
	decodeData(t, w, &resp)
	assert.Equal(t, "New Name", resp.Name)
}

func TestUpdateForeignTagNotFound(t *testing.T) {
	env := setupAPI(t)
	alice := env.createUser(t, "alice@recipeapp.com", "pass1234")
	bob := env.createUser(t, "bob@recipeapp.com", "pass1234")

	tag, err := env.tagService.Create(bob.ID, &dto.TagRequest{Name: "Fruity"})
	require.NoError(t, err)

	// 他人的标签与不存在的标签表现一致
	w := env.doJSON(t, http.MethodPut, fmt.Sprintf("/api/recipe/tags/%d", tag.ID), jsonBody{"name": "Stolen"}, env.token(t, alice))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteTag(t *testing.T) {
	env := setupAPI(t)
	user := env.createUser(t, "test@recipeapp.com", "pass1234")
	token := env.token(t, user)

	tag, err := env.tagService.Create(user.ID, &dto.TagRequest{Name: "Dessert"})
	require.NoError(t, err)

	w := env.doJSON(t, http.MethodDelete, fmt.Sprintf("/api/recipe/tags/%d", tag.ID), nil, token)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = env.doJSON(t, http.MethodGet, "/api/recipe/tags", nil, token)
	var tags []dto.TagResponse
	decodeData(t, w, &tags)
	assert.Empty(t, tags)
}
