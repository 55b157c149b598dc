package services

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"globetrek/eventbus"
	"globetrek/models"
	"globetrek/storage"
	"globetrek/utils"

	"github.com/google/uuid"
)

// TTL сессии совпадает со сроком жизни JWT
const SessionTTL = 72 * time.Hour

var ErrInvalidCredentials = errors.New("invalid credentials")

// CredentialVerifier - подключаемая проверка учетных данных. Позволяет
// заменить демо-проверку на реального провайдера, не трогая контроллеры.
type CredentialVerifier interface {
	// Verify возвращает тип пользователя ("admin"/"user")
	Verify(email, password string) (string, error)
}

// DemoVerifier воспроизводит поведение демо: одна захардкоженная админская
// пара, любая непустая пара email/пароль проходит как обычный пользователь.
type DemoVerifier struct {
	AdminEmail    string
	AdminPassword string
}

func (v *DemoVerifier) Verify(email, password string) (string, error) {
	if email == v.AdminEmail && password == v.AdminPassword {
		return models.UserTypeAdmin, nil
	}
	if email != "" && password != "" {
		return models.UserTypeUser, nil
	}
	return "", ErrInvalidCredentials
}

// AuthService управляет сессиями: маркер userType лежит в хранилище
// под ключом "session:<id>", токен ссылается на него по session_id.
type AuthService struct {
	store    storage.Store
	bus      *eventbus.Bus
	verifier CredentialVerifier
	secret   string
}

func NewAuthService(store storage.Store, bus *eventbus.Bus, verifier CredentialVerifier, secret string) *AuthService {
	return &AuthService{store: store, bus: bus, verifier: verifier, secret: secret}
}

// Login проверяет учетные данные, создает сессию и публикует userChange
func (s *AuthService) Login(ctx context.Context, email, password string) (string, string, error) {
	userType, err := s.verifier.Verify(email, password)
	if err != nil {
		return "", "", err
	}
	token, err := s.createSession(ctx, email, userType)
	if err != nil {
		return "", "", err
	}
	return token, userType, nil
}

// Signup в демо не сохраняет учетку - просто открывает пользовательскую сессию
func (s *AuthService) Signup(ctx context.Context, email string) (string, error) {
	return s.createSession(ctx, email, models.UserTypeUser)
}

func (s *AuthService) createSession(ctx context.Context, email, userType string) (string, error) {
	now := time.Now()
	session := models.Session{
		ID:        uuid.New().String(),
		UserType:  userType,
		Email:     email,
		CreatedAt: now.Unix(),
		ExpiresAt: now.Add(SessionTTL).Unix(),
	}
	data, err := json.Marshal(session)
	if err != nil {
		return "", err
	}
	if err := s.store.Set(ctx, storage.SessionKeyPrefix+session.ID, string(data)); err != nil {
		return "", err
	}
	token, err := utils.GenerateJWT(session.ID, userType, s.secret, SessionTTL)
	if err != nil {
		return "", err
	}
	s.bus.Publish(eventbus.TopicUserChange)
	return token, nil
}

// GetSession читает маркер сессии. Просроченная сессия, еще не убранная
// sweeper'ом, считается отсутствующей.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (models.Session, bool) {
	raw, ok, err := s.store.Get(ctx, storage.SessionKeyPrefix+sessionID)
	if err != nil || !ok {
		return models.Session{}, false
	}
	var session models.Session
	if err := json.Unmarshal([]byte(raw), &session); err != nil {
		return models.Session{}, false
	}
	if session.ExpiresAt <= time.Now().Unix() {
		return models.Session{}, false
	}
	return session, true
}

// Logout удаляет сессию, заносит токен в черный список до истечения срока
// и публикует userChange
func (s *AuthService) Logout(ctx context.Context, sessionID, token string, tokenExp int64) error {
	if err := s.store.Del(ctx, storage.SessionKeyPrefix+sessionID); err != nil {
		return err
	}
	if token != "" && tokenExp > time.Now().Unix() {
		if err := s.store.Set(ctx, storage.BlacklistKeyPrefix+token, strconv.FormatInt(tokenExp, 10)); err != nil {
			return err
		}
	}
	s.bus.Publish(eventbus.TopicUserChange)
	return nil
}

// IsBlacklisted проверяет токен по черному списку
func (s *AuthService) IsBlacklisted(ctx context.Context, token string) bool {
	_, ok, err := s.store.Get(ctx, storage.BlacklistKeyPrefix+token)
	return err == nil && ok
}
