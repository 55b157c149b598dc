package controllers

import (
	"net/http"

	"globetrek/eventbus"
	"globetrek/models"
	"globetrek/repository"
	"globetrek/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	bookings     *repository.BookingRepository
	destinations *repository.DestinationRepository
	bus          *eventbus.Bus
}

func NewBookingController() *BookingController {
	store := utils.GetStore()
	return &BookingController{
		bookings:     repository.NewBookingRepository(store),
		destinations: repository.NewDestinationRepository(store),
		bus:          utils.GetBus(),
	}
}

// resolveNames подставляет имена направлений по destinationId.
// Имя не хранится в записи - при переименовании направления списки
// сразу показывают новое имя.
func (bc *BookingController) resolveNames(c *gin.Context, bookings []models.Booking) []models.Booking {
	names := make(map[int]string)
	for _, d := range bc.destinations.List(c.Request.Context()) {
		names[d.ID] = d.Name
	}
	for i := range bookings {
		bookings[i].Destination = names[bookings[i].DestinationID]
	}
	return bookings
}

// POST /user/bookings
func (bc *BookingController) Create(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	dest, ok := bc.destinations.GetByID(c.Request.Context(), req.DestinationID)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Направление не найдено"})
		return
	}

	booking, err := bc.bookings.Create(c.Request.Context(), models.Booking{
		User:          req.User,
		DestinationID: req.DestinationID,
		Date:          req.Date,
		Status:        models.BookingStatusConfirmed,
		Email:         req.Email,
		Phone:         req.Phone,
		People:        req.People,
	})
	if err != nil {
		utils.LogError(err, "CreateBooking")
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения бронирования"})
		return
	}
	booking.Destination = dest.Name

	bc.bus.Publish(eventbus.TopicBookingChange)
	c.JSON(http.StatusCreated, gin.H{"result": booking, "success": true})
}

// GET /user/bookings и GET /admin/bookings
func (bc *BookingController) List(c *gin.Context) {
	bookings := bc.resolveNames(c, bc.bookings.List(c.Request.Context()))
	c.JSON(http.StatusOK, gin.H{"result": bookings, "success": true})
}

// PUT /user/bookings/:id (правка полей формы, статус и направление не трогаем)
func (bc *BookingController) Update(c *gin.Context) {
	id := c.Param("id")

	var req models.BookingUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}

	booking, ok := bc.bookings.GetByID(c.Request.Context(), id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Бронирование не найдено"})
		return
	}

	if req.User != "" {
		booking.User = req.User
	}
	if req.Date != "" {
		booking.Date = req.Date
	}
	if req.Email != "" {
		booking.Email = req.Email
	}
	if req.Phone != "" {
		booking.Phone = req.Phone
	}
	if req.People > 0 {
		booking.People = req.People
	}

	if _, err := bc.bookings.Update(c.Request.Context(), booking); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения бронирования"})
		return
	}

	bc.bus.Publish(eventbus.TopicBookingChange)
	c.JSON(http.StatusOK, gin.H{"result": bc.resolveNames(c, []models.Booking{booking})[0], "success": true})
}

// PATCH /user/bookings/:id/status и PATCH /admin/bookings/:id/status
// Переходы не ограничены: любой статус принимается из любого состояния,
// в том числе Canceled -> Confirmed
func (bc *BookingController) UpdateStatus(c *gin.Context) {
	id := c.Param("id")

	var req models.BookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "invalid request"})
		return
	}
	if !models.ValidBookingStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"result": nil, "success": false, "error": "Статус должен быть: Confirmed, Completed, Canceled или Pending"})
		return
	}

	booking, found, err := bc.bookings.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка сохранения бронирования"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Бронирование не найдено"})
		return
	}

	bc.bus.Publish(eventbus.TopicBookingChange)
	c.JSON(http.StatusOK, gin.H{"result": bc.resolveNames(c, []models.Booking{booking})[0], "success": true})
}

// DELETE /user/bookings/:id и DELETE /admin/bookings/:id
func (bc *BookingController) Delete(c *gin.Context) {
	id := c.Param("id")

	found, err := bc.bookings.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"result": nil, "success": false, "error": "Ошибка удаления"})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"result": nil, "success": false, "error": "Бронирование не найдено"})
		return
	}

	bc.bus.Publish(eventbus.TopicBookingChange)
	c.JSON(http.StatusOK, gin.H{"result": gin.H{"id": id}, "success": true})
}
