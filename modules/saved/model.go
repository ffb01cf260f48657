package saved

import "time"

// Name is a saved business name.
type Name struct {
	ID         string    `bson:"id" json:"id"`
	Name       string    `bson:"name" json:"name"`
	Category   string    `bson:"category" json:"category"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
	IsFavorite bool      `bson:"is_favorite" json:"is_favorite"`
}
