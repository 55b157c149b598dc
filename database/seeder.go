package database

import (
	"context"

	"globetrek/models"
	"globetrek/storage"
)

// SeedDestinations проверяет коллекцию направлений и, если она пуста,
// записывает 12 направлений по умолчанию
func SeedDestinations(ctx context.Context, store storage.Store) error {
	existing := storage.ReadCollection[models.Destination](ctx, store, storage.KeyDestinations)
	if len(existing) > 0 {
		return nil // Направления уже есть, ничего не делаем
	}
	return storage.WriteCollection(ctx, store, storage.KeyDestinations, DefaultDestinations())
}

// DefaultDestinations возвращает стартовый каталог направлений
func DefaultDestinations() []models.Destination {
	return []models.Destination{
		{
			ID:           1,
			Name:         "Maldives",
			Image:        "https://images.unsplash.com/photo-1514282401047-d79a71a590e8",
			Price:        "$1,299",
			PriceNumeric: 1299,
			Rating:       4.9,
			Description:  "Experience paradise with pristine beaches, crystal clear waters, and luxurious overwater bungalows.",
			Nights:       4,
			Days:         5,
			Featured:     true,
			Location:     "South Asia",
			ItineraryHighlights: []string{
				"Arrival and welcome reception",
				"Guided tour of main attractions",
				"Free time for personal exploration",
				"Optional activities and excursions",
				"Departure assistance",
			},
			PackageIncludes: []string{
				"Round-trip flights",
				"Accommodation at selected hotels",
				"Daily breakfast",
				"Airport transfers",
				"Travel insurance",
			},
			Accommodation: models.Accommodation{
				Hotel:     "Luxury Resort & Spa",
				Location:  "Prime location near attractions",
				RoomType:  "Deluxe with ocean view",
				Amenities: "WiFi, Swimming Pool, Restaurant, Spa, Fitness Center",
			},
		},
		{
			ID:           2,
			Name:         "Paris",
			Image:        "https://images.unsplash.com/photo-1502602898657-3e91760cbb34",
			Price:        "$899",
			PriceNumeric: 899,
			Rating:       4.8,
			Description:  "The city of lights awaits with iconic landmarks, world-class cuisine, and romantic ambiance.",
			Nights:       5,
			Days:         6,
			Featured:     true,
			Location:     "Europe",
			ItineraryHighlights: []string{
				"Arrival and welcome reception",
				"Visit to Eiffel Tower",
				"Louvre Museum tour",
				"Seine River cruise",
				"Free day for shopping",
			},
			PackageIncludes: []string{
				"Round-trip flights",
				"4-star hotel accommodation",
				"Daily breakfast",
				"Airport transfers",
				"City tour",
			},
			Accommodation: models.Accommodation{
				Hotel:     "Paris Grand Hotel",
				Location:  "Central Paris",
				RoomType:  "Executive room with city view",
				Amenities: "WiFi, Restaurant, Concierge, Laundry Service",
			},
		},
		{
			ID:           3,
			Name:         "Bali",
			Image:        "https://images.unsplash.com/photo-1552733407-5d5c46c3bb3b",
			Price:        "$999",
			PriceNumeric: 999,
			Rating:       4.7,
			Description:  "Discover spiritual tranquility, lush landscapes, vibrant culture, and beautiful beaches.",
			Nights:       5,
			Days:         6,
			Featured:     true,
			Location:     "Southeast Asia",
			ItineraryHighlights: []string{
				"Welcome ceremony",
				"Temple tours",
				"Rice terraces visit",
				"Beach day",
				"Cultural performance",
			},
			PackageIncludes: []string{
				"Round-trip flights",
				"Villa accommodation",
				"Daily breakfast",
				"Private transfers",
				"Island tour",
			},
			Accommodation: models.Accommodation{
				Hotel:     "Bali Tranquil Resort",
				Location:  "Ubud",
				RoomType:  "Private villa with pool",
				Amenities: "WiFi, Private Pool, Spa, Yoga Classes, Restaurant",
			},
		},
		{
			ID:           4,
			Name:         "Kashmir",
			Image:        "https://images.pexels.com/photos/1627898/pexels-photo-1627898.jpeg",
			Price:        "$799",
			PriceNumeric: 799,
			Rating:       4.6,
			Description:  "Known as 'Paradise on Earth' with breathtaking mountains, serene lakes, and picturesque valleys.",
			Nights:       5,
			Days:         6,
			Featured:     true,
			Location:     "South Asia",
			ItineraryHighlights: []string{
				"Arrival in Srinagar",
				"Shikara ride on Dal Lake",
				"Gulmarg excursion",
				"Pahalgam visit",
				"Local handicrafts shopping",
			},
			PackageIncludes: []string{
				"Round-trip flights",
				"Houseboat and hotel stay",
				"All meals",
				"All transfers",
				"Sightseeing tours",
			},
			Accommodation: models.Accommodation{
				Hotel:     "Luxury Houseboat & Hotel",
				Location:  "Dal Lake and Gulmarg",
				RoomType:  "Deluxe room/Houseboat cabin",
				Amenities: "WiFi, Room service, Guided tours, Traditional Kashmiri cuisine",
			},
		},
		{
			ID:           5,
			Name:         "London",
			Image:        "https://images.unsplash.com/photo-1513635269975-59663e0ac1ad",
			Price:        "$1,199",
			PriceNumeric: 1199,
			Rating:       4.7,
			Description:  "Explore the historic capital of England featuring iconic landmarks, world-class museums, and vibrant culture.",
			Nights:       5,
			Days:         6,
			Featured:     true,
			Location:     "Europe",
			ItineraryHighlights: []string{
				"Arrival in London and Thames River cruise",
				"Visit the Tower of London and Tower Bridge",
				"Guided tour of Buckingham Palace and Westminster Abbey",
				"Day trip to Windsor Castle",
				"Shopping at Oxford Street and explore Covent Garden",
			},
			PackageIncludes: []string{
				"Round-trip international flights",
				"4-star hotel accommodation",
				"Daily breakfast and select dinners",
				"Airport transfers and guided tours",
				"Entry tickets to major attractions",
			},
			Accommodation: models.Accommodation{
				Hotel:     "The Grand London Hotel",
				Location:  "Central London near Trafalgar Square",
				RoomType:  "Executive Double Room",
				Amenities: "WiFi, Breakfast buffet, Fitness center, Concierge service",
			},
		},
		{
			ID:           6,
			Name:         "Dubai",
			Image:        "https://images.unsplash.com/photo-1512453979798-5ea266f8880c",
			Price:        "$950",
			PriceNumeric: 950,
			Rating:       4.8,
			Description:  "Experience luxury and adventure in the ultramodern city with towering skyscrapers and desert excursions.",
			Nights:       5,
			Days:         6,
			Featured:     true,
			Location:     "Middle East",
			ItineraryHighlights: []string{
				"Arrival in Dubai and Dhow Cruise Dinner",
				"City tour including Burj Khalifa and Dubai Mall",
				"Desert Safari with BBQ dinner",
				"Visit to Palm Jumeirah and Atlantis",
				"Free day for shopping and relaxation",
			},
			PackageIncludes: []string{
				"Round-trip flights",
				"4-star hotel stay",
				"Daily breakfast and two dinners",
				"Airport transfers",
				"Desert safari and city tours",
			},
			Accommodation: models.Accommodation{
				Hotel:     "Dubai Grand Hotel by Fortune",
				Location:  "Near Deira City Centre",
				RoomType:  "Superior Double Room",
				Amenities: "WiFi, Rooftop pool, Fitness center, Multi-cuisine restaurant",
			},
		},
		{
			ID:           7,
			Name:         "Singapore",
			Image:        "https://images.unsplash.com/photo-1525625293386-3f8f99389edd",
			Price:        "$850",
			PriceNumeric: 850,
			Rating:       4.7,
			Description:  "Discover the perfect blend of modernity and tradition in this clean, green island city-state.",
			Nights:       4,
			Days:         5,
			Featured:     true,
			Location:     "Southeast Asia",
			ItineraryHighlights: []string{
				"Arrival and Night Safari adventure",
				"City tour including Merlion Park and Marina Bay Sands",
				"Visit to Sentosa Island and Universal Studios",
				"Gardens by the Bay and shopping on Orchard Road",
				"Departure with optional Singapore Flyer ride",
			},
			PackageIncludes: []string{
				"Round-trip airfare",
				"Hotel accommodation with breakfast",
				"Airport transfers",
				"City and attraction tours",
				"Theme park tickets",
			},
			Accommodation: models.Accommodation{
				Hotel:     "Hotel Boss",
				Location:  "Victoria Street, near Lavender MRT",
				RoomType:  "Superior Double Room",
				Amenities: "WiFi, Outdoor pool, Fitness center, On-site restaurants",
			},
		},
		{
			ID:           8,
			Name:         "Bangkok",
			Image:        "https://images.unsplash.com/photo-1508009603885-50cf7c579365",
			Price:        "$650",
			PriceNumeric: 650,
			Rating:       4.5,
			Description:  "Explore the vibrant capital of Thailand with its ornate shrines, floating markets and exciting nightlife.",
			Nights:       4,
			Days:         5,
			Featured:     true,
			Location:     "Southeast Asia",
			ItineraryHighlights: []string{
				"Arrival and Chao Phraya River cruise",
				"City tour with Grand Palace and Wat Pho",
				"Floating market and local shopping experience",
				"Safari World and Marine Park visit",
				"Departure with optional street food tour",
			},
			PackageIncludes: []string{
				"Return airfare",
				"Hotel stay with breakfast",
				"Airport and local transfers",
				"City and cultural sightseeing tours",
				"Theme park entry tickets",
			},
			Accommodation: models.Accommodation{
				Hotel:     "The Berkeley Hotel Pratunam",
				Location:  "Pratunam, Central Bangkok",
				RoomType:  "Premier Room",
				Amenities: "WiFi, Pool, Spa, Restaurant, Shopping access",
			},
		},
		{
			ID:           9,
			Name:         "New York",
			Image:        "https://images.unsplash.com/photo-1496442226666-8d4d0e62e6e9",
			Price:        "$1,350",
			PriceNumeric: 1350,
			Rating:       4.7,
			Description:  "Experience the Big Apple with its iconic skyline, Broadway shows, world-class shopping, and diverse neighborhoods.",
			Nights:       6,
			Days:         7,
			Featured:     true,
			Location:     "North America",
			ItineraryHighlights: []string{
				"Arrival and Times Square tour",
				"Statue of Liberty and Ellis Island",
				"Central Park and 5th Avenue shopping",
				"Broadway musical experience",
				"Empire State Building and night city view",
				"Brooklyn Bridge walk and local food tour",
				"Departure with optional museum visit",
			},
			PackageIncludes: []string{
				"Round-trip international flights",
				"4-star hotel accommodation",
				"Daily breakfast",
				"Airport transfers and local transport pass",
				"Guided sightseeing tours and show tickets",
			},
			Accommodation: models.Accommodation{
				Hotel:     "Hilton Garden Inn Times Square",
				Location:  "Midtown Manhattan",
				RoomType:  "Standard Queen Room",
				Amenities: "WiFi, Gym, Concierge service, City view",
			},
		},
		{
			ID:           10,
			Name:         "Tokyo",
			Image:        "https://images.unsplash.com/photo-1513407030348-c983a97b98d8",
			Price:        "$1,200",
			PriceNumeric: 1200,
			Rating:       4.8,
			Description:  "Discover the fascinating blend of ultramodern and traditional in Japan's buzzing capital city.",
			Nights:       7,
			Days:         8,
			Featured:     true,
			Location:     "East Asia",
			ItineraryHighlights: []string{
				"Arrival and Shibuya Crossing experience",
				"Visit to Meiji Shrine and Harajuku",
				"Tokyo Tower and Asakusa district tour",
				"Akihabara electronics and anime shopping",
				"Day trip to Mount Fuji and hot springs",
				"Odaiba entertainment district and teamLab Borderless museum",
				"Departure with a visit to Tokyo Disneyland (optional)",
			},
			PackageIncludes: []string{
				"Round-trip international flights",
				"Hotel accommodation in Shinjuku",
				"Daily breakfast",
				"All airport and local transfers",
				"Guided sightseeing tours and theme park tickets",
			},
			Accommodation: models.Accommodation{
				Hotel:     "Park Hotel Tokyo",
				Location:  "Shiodome, Minato",
				RoomType:  "Deluxe Tokyo Bay View Room",
				Amenities: "WiFi, 24-hour concierge, Onsen (Hot Spring), Restaurant",
			},
		},
		{
			ID:           11,
			Name:         "Rome",
			Image:        "https://images.unsplash.com/photo-1525874684015-58379d421a52",
			Price:        "$950",
			PriceNumeric: 950,
			Rating:       4.8,
			Description:  "Explore the eternal city with its ancient ruins, art treasures, and delicious cuisine.",
			Nights:       5,
			Days:         6,
			Featured:     true,
			Location:     "Europe",
			ItineraryHighlights: []string{
				"Arrival in Rome and transfer to hotel",
				"Visit the Colosseum and Roman Forum",
				"Tour of the Vatican Museums and Sistine Chapel",
				"Explore the Pantheon and Piazza Navona",
				"Shopping at Via del Corso and Campo de' Fiori",
				"Evening walk through Trastevere and enjoy local cuisine",
				"Departure",
			},
			PackageIncludes: []string{
				"Round-trip international flights",
				"Accommodation in a 4-star hotel",
				"Daily breakfast",
				"Airport transfers and guided city tours",
				"Vatican Museums entrance tickets and audio guide",
			},
			Accommodation: models.Accommodation{
				Hotel:     "Hotel Nazionale",
				Location:  "Piazza Montecitorio, central Rome",
				RoomType:  "Classic Double Room with City View",
				Amenities: "WiFi, Fitness center, Rooftop terrace, Restaurant",
			},
		},
		{
			ID:           12,
			Name:         "Sydney",
			Image:        "https://images.unsplash.com/photo-1506973035872-a4ec16b8e8d9",
			Price:        "$1,450",
			PriceNumeric: 1450,
			Rating:       4.7,
			Description:  "Enjoy the stunning harbor, beautiful beaches, and vibrant culture of Australia's famous city.",
			Nights:       7,
			Days:         8,
			Featured:     true,
			Location:     "Oceania",
			ItineraryHighlights: []string{
				"Arrival in Sydney and transfer to hotel",
				"Visit the iconic Sydney Opera House and Harbour Bridge",
				"Explore Bondi Beach and Coogee coastal walk",
				"Day trip to the Blue Mountains and Featherdale Wildlife Park",
				"Discover The Rocks historic district and Sydney Tower",
				"Visit the Royal Botanic Garden and Darling Harbour",
				"Departure",
			},
			PackageIncludes: []string{
				"Round-trip international flights",
				"Accommodation in a 5-star hotel",
				"Daily breakfast",
				"City tours and entrance tickets",
				"Sydney Harbour cruise",
			},
			Accommodation: models.Accommodation{
				Hotel:     "The Langham, Sydney",
				Location:  "Circular Quay, Central Sydney",
				RoomType:  "Harbour View Suite",
				Amenities: "WiFi, Spa, Indoor pool, Fine dining restaurant",
			},
		},
	}
}
