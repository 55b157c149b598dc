package models

// Допустимые темы обращения (как в форме контактов)
var QuerySubjects = []string{
	"General Inquiry",
	"Booking Question",
	"Destination Information",
	"Package Details",
	"Cancellation",
}

// ValidQuerySubject проверяет тему обращения
func ValidQuerySubject(subject string) bool {
	for _, s := range QuerySubjects {
		if s == subject {
			return true
		}
	}
	return false
}

// ContactQuery представляет обращение через форму контактов.
// Хранится под ключом "contactQueries". Флаг replied выставляется админом,
// реальная отправка ответа не происходит.
type ContactQuery struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject"`
	Message string `json:"message"`
	Date    string `json:"date"`
	Replied bool   `json:"replied"`
}

// ContactRequest структура для формы контактов
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Phone   string `json:"phone" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}
