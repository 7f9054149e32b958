package store

import "time"

// Team is a registered team made visible for match hosting.
type Team struct {
	ID string `firestore:"-" json:"id"`

	Name      string `firestore:"name" json:"name"`
	ShortName string `firestore:"short_name,omitempty" json:"short_name,omitempty"`
	Abbr      string `firestore:"abbr,omitempty" json:"abbr,omitempty"`
	LogoURL   string `firestore:"logo_url,omitempty" json:"logo_url,omitempty"`
	Country   string `firestore:"country,omitempty" json:"country,omitempty"`

	// Players are roster names for display.
	Players []string `firestore:"players,omitempty" json:"players,omitempty"`

	Manager   string    `firestore:"manager,omitempty" json:"manager,omitempty"`
	CreatedAt time.Time `firestore:"created_at" json:"created_at"`
}

// Tournament groups matches under a named competition.
type Tournament struct {
	ID string `firestore:"-" json:"id"`

	Title string `firestore:"title" json:"title"`

	// Slug is a URL-safe identifier derived from the title.
	Slug string `firestore:"slug" json:"slug"`

	Sport     Sport     `firestore:"sport" json:"sport"`
	StartDate time.Time `firestore:"start_date" json:"start_date"`
	EndDate   time.Time `firestore:"end_date,omitempty" json:"end_date,omitempty"`
	Country   string    `firestore:"country,omitempty" json:"country,omitempty"`

	// Status follows the same scheduled/ongoing/completed lifecycle as
	// matches.
	Status string `firestore:"status" json:"status"`

	OrganizerID string `firestore:"organizer_id,omitempty" json:"organizer_id,omitempty"`
}
