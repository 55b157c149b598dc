package models

// Статусы бронирования. Переходы не ограничены - любой статус можно
// сменить на любой другой (в том числе Canceled -> Confirmed).
const (
	BookingStatusConfirmed = "Confirmed"
	BookingStatusCompleted = "Completed"
	BookingStatusCanceled  = "Canceled"
	BookingStatusPending   = "Pending"
)

// ValidBookingStatus проверяет принадлежность статуса к допустимому набору
func ValidBookingStatus(status string) bool {
	switch status {
	case BookingStatusConfirmed, BookingStatusCompleted, BookingStatusCanceled, BookingStatusPending:
		return true
	}
	return false
}

// Booking представляет бронирование. Хранится под ключом "userBookings".
// Вместо денормализованного имени направления храним destinationId,
// имя подставляется при чтении.
type Booking struct {
	ID            string `json:"id"`
	User          string `json:"user"`
	DestinationID int    `json:"destinationId"`
	Destination   string `json:"destination,omitempty"` // заполняется при чтении, не хранится
	Date          string `json:"date"`
	Status        string `json:"status"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	People        int    `json:"people"`
}

// BookingRequest структура для создания бронирования
type BookingRequest struct {
	User          string `json:"user" binding:"required"`
	DestinationID int    `json:"destinationId" binding:"required"`
	Date          string `json:"date" binding:"required"`
	Email         string `json:"email" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	People        int    `json:"people" binding:"required,min=1,max=20"`
}

// BookingUpdateRequest структура для редактирования бронирования пользователем
type BookingUpdateRequest struct {
	User   string `json:"user"`
	Date   string `json:"date"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	People int    `json:"people"`
}

// BookingStatusRequest структура для смены статуса
type BookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
