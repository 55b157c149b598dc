package database

import (
	"context"
	"strconv"

	"globetrek/models"
	"globetrek/storage"
)

// Текущая версия схемы коллекции направлений
const destinationSchemaVersion = 2

// UpgradeDestinations приводит сохраненные направления к текущей схеме.
// Выполняется один раз при старте (версия хранится под отдельным ключом),
// а не размазана по обработчикам: записи старой формы без itineraryHighlights/
// packageIncludes/accommodation дозаполняются значениями по умолчанию.
func UpgradeDestinations(ctx context.Context, store storage.Store) error {
	raw, ok, err := store.Get(ctx, storage.KeySchemaVersion)
	if err != nil {
		return err
	}
	version := 1
	if ok {
		if v, err := strconv.Atoi(raw); err == nil {
			version = v
		}
	}
	if version >= destinationSchemaVersion {
		return nil
	}

	destinations := storage.ReadCollection[models.Destination](ctx, store, storage.KeyDestinations)
	if len(destinations) > 0 {
		for i := range destinations {
			if len(destinations[i].ItineraryHighlights) == 0 {
				destinations[i].ItineraryHighlights = []string{"Arrival and welcome", "Guided tour", "Free time", "Optional activities", "Departure"}
			}
			if len(destinations[i].PackageIncludes) == 0 {
				destinations[i].PackageIncludes = []string{"Flights", "Accommodation", "Breakfast", "Transfers", "Insurance"}
			}
			if (destinations[i].Accommodation == models.Accommodation{}) {
				destinations[i].Accommodation = models.Accommodation{
					Hotel:     "Luxury Resort & Spa",
					Location:  "Prime location",
					RoomType:  "Deluxe room",
					Amenities: "WiFi, Pool, Restaurant",
				}
			}
		}
		if err := storage.WriteCollection(ctx, store, storage.KeyDestinations, destinations); err != nil {
			return err
		}
	}

	return store.Set(ctx, storage.KeySchemaVersion, strconv.Itoa(destinationSchemaVersion))
}
