package service

import (
	"testing"

	"recipe-api/internal/models"
	"recipe-api/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTokenService(t *testing.T) (*TokenService, *UserService, *gorm.DB) {
	t.Helper()

	db := setupTestDB(t)
	cfg := newTestConfig(t)
	userService := NewUserService(repository.NewUserRepository(db), cfg)
	tokenService := NewTokenService(repository.NewTokenRepository(db), newTestJWTManager(cfg))
	return tokenService, userService, db
}

func createUser(t *testing.T, userService *UserService, email string) *models.User {
	t.Helper()

	user, err := userService.CreateUser(email, "pass1234", "")
	require.NoError(t, err)
	return user
}

func TestIssueAndResolve(t *testing.T) {
	tokenService, userService, _ := newTokenService(t)
	user := createUser(t, userService, "test@email.com")

	key, err := tokenService.Issue(user)
	require.NoError(t, err)
	require.NotEmpty(t, key)

	resolved, err := tokenService.Resolve(key)
	require.NoError(t, err)
	assert.Equal(t, user.ID, resolved.ID)
	assert.Equal(t, user.Email, resolved.Email)
}

func TestIssueReusesExistingToken(t *testing.T) {
	tokenService, userService, _ := newTokenService(t)
	user := createUser(t, userService, "test@email.com")

	first, err := tokenService.Issue(user)
	require.NoError(t, err)
	second, err := tokenService.Issue(user)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestResolveInvalidToken(t *testing.T) {
	tokenService, _, _ := newTokenService(t)

	_, err := tokenService.Resolve("garbage-token")
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestResolveUnpersistedToken(t *testing.T) {
	tokenService, userService, _ := newTokenService(t)
	user := createUser(t, userService, "test@email.com")

	// 签名正确但未持久化的令牌同样无效
	cfg := newTestConfig(t)
	key, err := newTestJWTManager(cfg).GenerateToken(user.ID, user.Email)
	require.NoError(t, err)

	_, err = tokenService.Resolve(key)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestRevoke(t *testing.T) {
	tokenService, userService, _ := newTokenService(t)
	user := createUser(t, userService, "test@email.com")

	key, err := tokenService.Issue(user)
	require.NoError(t, err)

	require.NoError(t, tokenService.Revoke(user.ID))

	_, err = tokenService.Resolve(key)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestTokensAreUserBound(t *testing.T) {
	tokenService, userService, _ := newTokenService(t)
	alice := createUser(t, userService, "alice@email.com")
	bob := createUser(t, userService, "bob@email.com")

	aliceKey, err := tokenService.Issue(alice)
	require.NoError(t, err)
	bobKey, err := tokenService.Issue(bob)
	require.NoError(t, err)

	assert.NotEqual(t, aliceKey, bobKey)

	resolved, err := tokenService.Resolve(aliceKey)
	require.NoError(t, err)
	assert.Equal(t, alice.ID, resolved.ID)
}
