package controllers

import (
	"net/http"
	"strings"

	"globetrek/models"
	"globetrek/repository"
	"globetrek/utils"

	"github.com/gin-gonic/gin"
)

type QueryController struct {
	queries *repository.QueryRepository
}

func NewQueryController() *QueryController {
	return &QueryController{queries: repository.NewQueryRepository(utils.GetStore())}
}

// POST /contact (публичная форма)
func (qc *QueryController) Create(c *gin.Context) {
	var req models.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	if !models.ValidQuerySubject(req.Subject) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Недопустимая тема обращения"})
		return
	}

	query, err := qc.queries.Create(c.Request.Context(), models.ContactQuery{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения обращения"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": query, "success": true})
}

// GET /admin/queries
func (qc *QueryController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": qc.queries.List(c.Request.Context()), "success": true})
}

// POST /admin/queries/:id/reply
// Письмо не отправляется - выставляется только флаг replied
func (qc *QueryController) Reply(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Reply message cannot be empty"})
		return
	}

	found, err := qc.queries.MarkReplied(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения обращения"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Обращение не найдено"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": id, "replied": true}, "success": true})
}

// DELETE /admin/queries/:id
func (qc *QueryController) Delete(c *gin.Context) {
	id := c.Param("id")

	found, err := qc.queries.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка удаления"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Обращение не найдено"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": id}, "success": true})
}
