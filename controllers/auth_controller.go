package controllers

import (
	"errors"
	"net/http"

	"globetrek/models"
	"globetrek/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

func homeRoute(userType string) string {
	if userType == models.UserTypeAdmin {
		return "/admin"
	}
	return "/user-dashboard"
}

// POST /auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Please enter valid credentials"})
		return
	}

	token, userType, err := ac.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"result": nil, "success": false, "error": "Please enter valid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка создания сессии"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"token":    token,
		"userType": userType,
		"redirect": homeRoute(userType),
	}, "success": true})
}

// POST /auth/signup
// Демо-заглушка: учетка нигде не сохраняется, любая заявка открывает
// пользовательскую сессию
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	token, err := ac.auth.Signup(c.Request.Context(), req.Email)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка создания сессии"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": gin.H{
		"token":    token,
		"userType": models.UserTypeUser,
		"redirect": "/user-dashboard",
	}, "success": true})
}

// POST /auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	sessionID := c.GetString("session_id")
	token := c.GetString("token")
	tokenExp := c.GetInt64("token_exp")

	if err := ac.auth.Logout(c.Request.Context(), sessionID, token, tokenExp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка завершения сессии"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"redirect": "/"}, "success": true})
}
