package models

// Service is a catalog entry. The catalog is compiled in and read-only;
// services are never persisted.
type Service struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration string  `json:"duration"` // e.g. "60 min"
}

var catalog = []Service{
	{ID: 1, Name: "Swedish Massage", Price: 1500, Duration: "60 min"},
	{ID: 2, Name: "Deep Tissue Massage", Price: 2200, Duration: "90 min"},
	{ID: 3, Name: "Aromatherapy Massage", Price: 1800, Duration: "60 min"},
	{ID: 4, Name: "Balinese Massage", Price: 2000, Duration: "90 min"},
	{ID: 5, Name: "Head Massage", Price: 500, Duration: "30 min"},
	{ID: 6, Name: "Foot Reflexology", Price: 800, Duration: "45 min"},
	{ID: 7, Name: "Body Scrub & Polish", Price: 1600, Duration: "60 min"},
	{ID: 8, Name: "Fruit Facial", Price: 1200, Duration: "45 min"},
	{ID: 9, Name: "Hair Spa", Price: 1000, Duration: "60 min"},
	{ID: 10, Name: "Couple Spa Package", Price: 4000, Duration: "120 min"},
}

// Catalog returns the full service list.
func Catalog() []Service {
	return catalog
}

// FindService looks up a catalog entry by id.
func FindService(id int) (Service, bool) {
	for _, s := range catalog {
		if s.ID == id {
			return s, true
		}
	}
	return Service{}, false
}
