package controllers

import (
	"net/http"

	"globetrek/models"
	"globetrek/repository"
	"globetrek/utils"

	"github.com/gin-gonic/gin"
)

type FeedbackController struct {
	feedback *repository.FeedbackRepository
}

func NewFeedbackController() *FeedbackController {
	return &FeedbackController{feedback: repository.NewFeedbackRepository(utils.GetStore())}
}

// POST /feedback (нужна любая сессия - форма закрыта для гостей)
func (fc *FeedbackController) Create(c *gin.Context) {
	var req models.FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	feedback, err := fc.feedback.Create(c.Request.Context(), models.Feedback{
		Name:        req.Name,
		Email:       req.Email,
		Destination: req.Destination,
		Rating:      req.Rating,
		Comments:    req.Comments,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения отзыва"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"result": feedback, "success": true})
}

// GET /admin/feedbacks
func (fc *FeedbackController) List(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"result": fc.feedback.List(c.Request.Context()), "success": true})
}

// DELETE /admin/feedbacks/:id
func (fc *FeedbackController) Delete(c *gin.Context) {
	id := c.Param("id")

	found, err := fc.feedback.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка удаления"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Отзыв не найден"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": id}, "success": true})
}
