package middleware

import (
	"net/http"
	"strings"

	"globetrek/models"
	"globetrek/services"
	"globetrek/utils"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware проверяет Bearer-токен и перечитывает маркер сессии из
// хранилища на каждом запросе: разлогин в другом "окне" виден сразу.
// Отсутствие сессии - аналог редиректа на /login.
func AuthMiddleware(auth *services.AuthService, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == "OPTIONS" {
			c.Next()
			return
		}
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header", "redirect": "/login"})
			c.Abort()
			return
		}
		token := strings.TrimPrefix(header, "Bearer ")

		if auth.IsBlacklisted(c.Request.Context(), token) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Token has been revoked", "redirect": "/login"})
			c.Abort()
			return
		}

		claims, err := utils.ParseJWT(token, secret)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token", "redirect": "/login"})
			c.Abort()
			return
		}
		sessionID, ok := claims["session_id"].(string)
		if !ok || sessionID == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token payload", "redirect": "/login"})
			c.Abort()
			return
		}

		session, ok := auth.GetSession(c.Request.Context(), sessionID)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session expired", "redirect": "/login"})
			c.Abort()
			return
		}

		exp, _ := claims["exp"].(float64)
		c.Set("session_id", sessionID)
		c.Set("user_type", session.UserType)
		c.Set("token", token)
		c.Set("token_exp", int64(exp))
		c.Next()
	}
}

// RequireUserType пускает только указанную роль. Чужую роль отправляем
// на её домашний маршрут (аналог кросс-ролевого редиректа).
func RequireUserType(userType string) gin.HandlerFunc {
	return func(c *gin.Context) {
		current := c.GetString("user_type")
		if current != userType {
			home := "/user-dashboard"
			if current == models.UserTypeAdmin {
				home = "/admin"
			}
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied", "redirect": home})
			c.Abort()
			return
		}
		c.Next()
	}
}
