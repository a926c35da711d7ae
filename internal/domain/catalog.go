package domain

import "time"

// Sport represents a sport category offered on the platform.
// Read-only reference data for the booking flow.
type Sport struct {
	ID          int64
	Name        string
	Description *string
	ImageURL    *string
	IsActive    bool
	CreatedAt   time.Time
}

// Venue represents a sports venue with one or more courts.
// Read-only reference data for the booking flow.
type Venue struct {
	ID            int64
	Name          string
	Description   *string
	Location      string
	ImageURL      *string
	OpeningHours  *string
	Capacity      *int
	ContactNumber *string
	IsActive      bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Court belongs to exactly one venue and hosts exactly one sport.
// A venue may have many courts for the same sport.
type Court struct {
	ID        int64
	VenueID   int64
	SportID   int64
	Name      string
	IsActive  bool
	CreatedAt time.Time
}
