package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"globetrek/eventbus"
	"globetrek/models"
	"globetrek/repository"
	"globetrek/utils"

	"github.com/gin-gonic/gin"
)

type DestinationController struct {
	destinations *repository.DestinationRepository
	bus          *eventbus.Bus
}

func NewDestinationController() *DestinationController {
	return &DestinationController{
		destinations: repository.NewDestinationRepository(utils.GetStore()),
		bus:          utils.GetBus(),
	}
}

// GET /destinations?q=bali
// Фильтр q ищет по имени, описанию и региону (как поиск на дашборде)
func (dc *DestinationController) List(c *gin.Context) {
	destinations := dc.destinations.List(c.Request.Context())

	q := strings.TrimSpace(strings.ToLower(c.Query("q")))
	if q != "" {
		filtered := make([]models.Destination, 0, len(destinations))
		for _, d := range destinations {
			if strings.Contains(strings.ToLower(d.Name), q) ||
				strings.Contains(strings.ToLower(d.Description), q) ||
				strings.Contains(strings.ToLower(d.Location), q) {
				filtered = append(filtered, d)
			}
		}
		destinations = filtered
	}

	c.JSON(http.StatusOK, gin.H{"result": destinations, "success": true})
}

// GET /destinations/:id
func (dc *DestinationController) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}

	dest, ok := dc.destinations.GetByID(c.Request.Context(), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Направление не найдено"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": dest, "success": true})
}

// POST /admin/destinations
func (dc *DestinationController) Create(c *gin.Context) {
	var req models.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	dest, err := dc.destinations.Create(c.Request.Context(), destinationFromRequest(req))
	if err != nil {
		utils.LogError(err, "CreateDestination")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения направления"})
		return
	}

	dc.bus.Publish(eventbus.TopicDestinationChange)
	c.JSON(http.StatusCreated, gin.H{"result": dest, "success": true})
}

// PUT /admin/destinations/:id (полная замена записи)
func (dc *DestinationController) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}

	var req models.DestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	dest := destinationFromRequest(req)
	dest.ID = id
	found, err := dc.destinations.Update(c.Request.Context(), dest)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения направления"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Направление не найдено"})
		return
	}

	dc.bus.Publish(eventbus.TopicDestinationChange)
	c.JSON(http.StatusOK, gin.H{"result": dest, "success": true})
}

// DELETE /admin/destinations/:id
func (dc *DestinationController) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid id"})
		return
	}

	found, err := dc.destinations.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка удаления"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Направление не найдено"})
		return
	}

	dc.bus.Publish(eventbus.TopicDestinationChange)
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": id}, "success": true})
}

func destinationFromRequest(req models.DestinationRequest) models.Destination {
	return models.Destination{
		Name:                req.Name,
		Image:               req.Image,
		Price:               req.Price,
		PriceNumeric:        req.PriceNumeric,
		Rating:              req.Rating,
		Description:         req.Description,
		Nights:              req.Nights,
		Days:                req.Days,
		Featured:            req.Featured,
		Location:            req.Location,
		ItineraryHighlights: req.ItineraryHighlights,
		PackageIncludes:     req.PackageIncludes,
		Accommodation:       req.Accommodation,
	}
}
