package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
)

// Store is a retail point visited by merchandisers. Coordinates are optional
// but both are set or neither is.
type Store struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Address       string    `json:"address"`
	Latitude      *float64  `json:"latitude"`
	Longitude     *float64  `json:"longitude"`
	ContactPerson string    `json:"contact_person"`
	ContactPhone  string    `json:"contact_phone"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// HasLocation reports whether both coordinates are known.
func (s *Store) HasLocation() bool {
	return s.Latitude != nil && s.Longitude != nil
}

// Point returns the store location in lng/lat order.
func (s *Store) Point() (orb.Point, bool) {
	if !s.HasLocation() {
		return orb.Point{}, false
	}

	return orb.Point{*s.Longitude, *s.Latitude}, true
}
