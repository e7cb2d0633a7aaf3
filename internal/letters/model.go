// Package letters implements the core of the app: the letter collection,
// the mood catalog, delivery state derivation, and the Repository through
// which every read and write passes.
package letters

import "time"

// Letter is a journaling entry scheduled for future delivery to its author.
//
// IsDelivered is a cache of the delivery state: the letter is readable when
// the flag is set or when the wall clock has passed ScheduledDate. Date
// comparison stays the source of truth; the flag can only widen delivery
// (an explicit force-deliver), never revoke it.
type Letter struct {
	// ID is assigned at creation and never changes.
	ID string `json:"id"`

	Title   string `json:"title"`
	Content string `json:"content"`

	// Mood is one of the catalog values, see Catalog.
	Mood Mood `json:"mood"`

	// ScheduledDate is the moment the letter unlocks for reading.
	ScheduledDate time.Time `json:"scheduledDate"`

	// CreatedAt is set at creation and never changes.
	CreatedAt time.Time `json:"createdAt"`

	IsDelivered bool `json:"isDelivered"`

	// UserID scopes the letter to its author. Identity is managed outside
	// the core; here it is an opaque string.
	UserID string `json:"userId"`

	// Image is an optional reference/URI to an attached picture, with an
	// optional Caption.
	Image   string `json:"image,omitempty"`
	Caption string `json:"caption,omitempty"`

	// Progress is the percentage of elapsed time between CreatedAt and
	// ScheduledDate, recomputed on every mutation and refreshed on reads.
	Progress float64 `json:"progress"`
}

// Draft carries the caller-supplied fields for a new letter. ID, CreatedAt,
// IsDelivered and Progress are derived by the repository.
type Draft struct {
	Title         string
	Content       string
	Mood          Mood
	ScheduledDate time.Time
	UserID        string
	Image         string
	Caption       string
}

// Update describes a partial mutation: nil fields are left untouched.
// ID and CreatedAt are immutable and have no counterpart here.
type Update struct {
	Title         *string
	Content       *string
	Mood          *Mood
	ScheduledDate *time.Time
	IsDelivered   *bool
	UserID        *string
	Image         *string
	Caption       *string
}

// Stats aggregates a user's collection. Locked and Upcoming count the same
// letters (two names for the not-yet-delivered state), so
// Delivered + Upcoming == Total.
type Stats struct {
	Total     int          `json:"total"`
	Delivered int          `json:"delivered"`
	Upcoming  int          `json:"upcoming"`
	Locked    int          `json:"locked"`
	ByMood    map[Mood]int `json:"byMood"`
}
