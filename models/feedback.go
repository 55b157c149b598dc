package models

// Feedback представляет отзыв пользователя. Хранится под ключом "userFeedback".
type Feedback struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Destination string `json:"destination"`
	Rating      int    `json:"rating"`
	Comments    string `json:"comments"`
	Date        string `json:"date"`
}

// FeedbackRequest структура для отправки отзыва
type FeedbackRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	Rating      int    `json:"rating" binding:"required,min=1,max=5"`
	Comments    string `json:"comments"`
}
