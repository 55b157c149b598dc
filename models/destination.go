package models

// Accommodation - данные о проживании внутри направления
type Accommodation struct {
	Hotel     string `json:"hotel"`
	Location  string `json:"location"`
	RoomType  string `json:"roomType"`
	Amenities string `json:"amenities"`
}

// Destination представляет туристическое направление каталога.
// Формат JSON совпадает с записями под ключом "destinations".
type Destination struct {
	ID                  int           `json:"id"`
	Name                string        `json:"name"`
	Image               string        `json:"image"`
	Price               string        `json:"price"`
	PriceNumeric        float64       `json:"priceNumeric"`
	Rating              float64       `json:"rating"`
	Description         string        `json:"description"`
	Nights              int           `json:"nights"`
	Days                int           `json:"days"`
	Featured            bool          `json:"featured,omitempty"`
	Location            string        `json:"location"`
	ItineraryHighlights []string      `json:"itineraryHighlights"`
	PackageIncludes     []string      `json:"packageIncludes"`
	Accommodation       Accommodation `json:"accommodation"`
}

// DestinationRequest структура для создания/обновления направления
type DestinationRequest struct {
	Name                string        `json:"name" binding:"required"`
	Image               string        `json:"image" binding:"required"`
	Price               string        `json:"price" binding:"required"`
	PriceNumeric        float64       `json:"priceNumeric"`
	Rating              float64       `json:"rating"`
	Description         string        `json:"description"`
	Nights              int           `json:"nights"`
	Days                int           `json:"days"`
	Featured            bool          `json:"featured"`
	Location            string        `json:"location"`
	ItineraryHighlights []string      `json:"itineraryHighlights"`
	PackageIncludes     []string      `json:"packageIncludes"`
	Accommodation       Accommodation `json:"accommodation"`
}
