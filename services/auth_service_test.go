package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"globetrek/eventbus"
	"globetrek/models"
	"globetrek/storage"
	"globetrek/utils"
)

func newTestAuthService() (*AuthService, *eventbus.Bus) {
	bus := eventbus.New()
	verifier := &DemoVerifier{AdminEmail: "admin@admin.com", AdminPassword: "admin123"}
	return NewAuthService(storage.NewMemoryStore(), bus, verifier, "test-secret"), bus
}

// Админская пара дает admin, любая непустая - user, пустая отклоняется
func TestDemoVerifier(t *testing.T) {
	v := &DemoVerifier{AdminEmail: "admin@admin.com", AdminPassword: "admin123"}

	userType, err := v.Verify("admin@admin.com", "admin123")
	assert.NoError(t, err)
	assert.Equal(t, models.UserTypeAdmin, userType)

	userType, err = v.Verify("alice@example.com", "whatever")
	assert.NoError(t, err)
	assert.Equal(t, models.UserTypeUser, userType)

	_, err = v.Verify("", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

// Login создает сессию, токен разбирается и ссылается на нее
func TestLoginCreatesSession(t *testing.T) {
	ctx := context.Background()
	auth, bus := newTestAuthService()

	userChanges := 0
	bus.Subscribe(eventbus.TopicUserChange, func(string) { userChanges++ })

	token, userType, err := auth.Login(ctx, "admin@admin.com", "admin123")
	assert.NoError(t, err)
	assert.Equal(t, models.UserTypeAdmin, userType)
	assert.Equal(t, 1, userChanges)

	claims, err := utils.ParseJWT(token, "test-secret")
	assert.NoError(t, err)
	sessionID, _ := claims["session_id"].(string)
	assert.NotEmpty(t, sessionID)

	session, ok := auth.GetSession(ctx, sessionID)
	assert.True(t, ok)
	assert.Equal(t, models.UserTypeAdmin, session.UserType)
	assert.Equal(t, "admin@admin.com", session.Email)
}

// Токен с чужим секретом не проходит
func TestParseJWTWrongSecret(t *testing.T) {
	auth, _ := newTestAuthService()

	token, _, err := auth.Login(context.Background(), "bob@example.com", "secret")
	assert.NoError(t, err)

	_, err = utils.ParseJWT(token, "other-secret")
	assert.Error(t, err)
}

// Logout удаляет сессию и заносит токен в черный список
func TestLogoutRevokesSession(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuthService()

	token, _, err := auth.Login(ctx, "bob@example.com", "secret")
	assert.NoError(t, err)

	claims, err := utils.ParseJWT(token, "test-secret")
	assert.NoError(t, err)
	sessionID, _ := claims["session_id"].(string)
	exp, _ := claims["exp"].(float64)

	assert.NoError(t, auth.Logout(ctx, sessionID, token, int64(exp)))

	_, ok := auth.GetSession(ctx, sessionID)
	assert.False(t, ok)
	assert.True(t, auth.IsBlacklisted(ctx, token))
}

// Signup открывает пользовательскую сессию без сохранения учетки
func TestSignupOpensUserSession(t *testing.T) {
	ctx := context.Background()
	auth, _ := newTestAuthService()

	token, err := auth.Signup(ctx, "new@example.com")
	assert.NoError(t, err)

	claims, err := utils.ParseJWT(token, "test-secret")
	assert.NoError(t, err)
	assert.Equal(t, models.UserTypeUser, claims["userType"])
}
