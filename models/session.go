package models

// Роли сессии (аналог маркера userType)
const (
	UserTypeAdmin = "admin"
	UserTypeUser  = "user"
)

// Session представляет серверную сессию. Хранится под ключом "session:<id>"
// в виде JSON-объекта, TTL дублируется в поле ExpiresAt для sweeper'а.
type Session struct {
	ID        string `json:"id"`
	UserType  string `json:"userType"`
	Email     string `json:"email"`
	CreatedAt int64  `json:"createdAt"`
	ExpiresAt int64  `json:"expiresAt"`
}

// LoginRequest структура для входа
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// SignupRequest структура для регистрации (демо: учётка не сохраняется)
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}
