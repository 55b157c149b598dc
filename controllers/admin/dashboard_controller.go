package admin

import (
	"math"
	"net/http"
	"sort"
	"sync"

	"globetrek/eventbus"
	"globetrek/repository"
	"globetrek/utils"

	"github.com/gin-gonic/gin"
)

// DashboardController отдает счетчики и отчеты админки. Счетчики
// кэшируются и сбрасываются по событиям шины - как панель, которая
// слушает bookingChange/destinationChange и пересчитывает цифры.
type DashboardController struct {
	bookings     *repository.BookingRepository
	destinations *repository.DestinationRepository
	feedback     *repository.FeedbackRepository

	mu    sync.Mutex
	stats *statsSnapshot
}

type statsSnapshot struct {
	TotalBookings     int `json:"totalBookings"`
	TotalDestinations int `json:"totalDestinations"`
}

func NewDashboardController() *DashboardController {
	store := utils.GetStore()
	dc := &DashboardController{
		bookings:     repository.NewBookingRepository(store),
		destinations: repository.NewDestinationRepository(store),
		feedback:     repository.NewFeedbackRepository(store),
	}

	invalidate := func(string) {
		dc.mu.Lock()
		dc.stats = nil
		dc.mu.Unlock()
	}
	bus := utils.GetBus()
	bus.Subscribe(eventbus.TopicBookingChange, invalidate)
	bus.Subscribe(eventbus.TopicDestinationChange, invalidate)

	return dc
}

// GET /admin/stats
func (dc *DashboardController) Stats(c *gin.Context) {
	dc.mu.Lock()
	snapshot := dc.stats
	dc.mu.Unlock()

	if snapshot == nil {
		snapshot = &statsSnapshot{
			TotalBookings:     len(dc.bookings.List(c.Request.Context())),
			TotalDestinations: len(dc.destinations.List(c.Request.Context())),
		}
		dc.mu.Lock()
		dc.stats = snapshot
		dc.mu.Unlock()
	}

	c.JSON(http.StatusOK, gin.H{"result": snapshot, "success": true})
}

type destinationCount struct {
	Destination string `json:"destination"`
	Count       int    `json:"count"`
}

type destinationRating struct {
	Destination string  `json:"destination"`
	Rating      float64 `json:"rating"`
	Count       int     `json:"count"`
}

// GET /admin/reports
// Топ-5 направлений по числу бронирований и средний рейтинг по отзывам
func (dc *DashboardController) Reports(c *gin.Context) {
	ctx := c.Request.Context()

	names := make(map[int]string)
	for _, d := range dc.destinations.List(ctx) {
		names[d.ID] = d.Name
	}

	bookings := dc.bookings.List(ctx)
	countByName := make(map[string]int)
	for _, b := range bookings {
		name := names[b.DestinationID]
		if name == "" {
			name = "Unknown" // направление удалили после бронирования
		}
		countByName[name]++
	}

	top := make([]destinationCount, 0, len(countByName))
	for name, count := range countByName {
		top = append(top, destinationCount{Destination: name, Count: count})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Count != top[j].Count {
			return top[i].Count > top[j].Count
		}
		return top[i].Destination < top[j].Destination
	})
	if len(top) > 5 {
		top = top[:5]
	}

	type ratingAcc struct {
		total int
		count int
	}
	ratingByName := make(map[string]*ratingAcc)
	for _, f := range dc.feedback.List(ctx) {
		acc := ratingByName[f.Destination]
		if acc == nil {
			acc = &ratingAcc{}
			ratingByName[f.Destination] = acc
		}
		acc.total += f.Rating
		acc.count++
	}

	ratings := make([]destinationRating, 0, len(ratingByName))
	for name, acc := range ratingByName {
		avg := math.Round(float64(acc.total)/float64(acc.count)*10) / 10
		ratings = append(ratings, destinationRating{Destination: name, Rating: avg, Count: acc.count})
	}
	sort.Slice(ratings, func(i, j int) bool {
		if ratings[i].Rating != ratings[j].Rating {
			return ratings[i].Rating > ratings[j].Rating
		}
		return ratings[i].Destination < ratings[j].Destination
	})

	c.JSON(http.StatusOK, gin.H{"result": gin.H{
		"totalBookings":   len(bookings),
		"topDestinations": top,
		"ratings":         ratings,
	}, "success": true})
}
