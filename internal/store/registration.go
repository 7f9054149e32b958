package store

import "time"

// Registration is a team signup submitted through the registration form,
// held for admin approval.
type Registration struct {
	ID string `firestore:"-" json:"id"`

	// Name is the team name.
	Name string `firestore:"name" json:"name"`

	// Email and Phone are the manager's contact details.
	Email string `firestore:"email" json:"email"`
	Phone string `firestore:"phone,omitempty" json:"phone,omitempty"`

	// Role tags what the registrant signs up as; the registration form
	// always submits "manager".
	Role string `firestore:"role" json:"role"`

	// Sport the team registers for.
	Sport Sport `firestore:"sport" json:"sport"`

	// TeamID is a slug derived from the team name.
	TeamID string `firestore:"team_id" json:"team_id"`

	// Players is the submitted roster. At most one player may be flagged
	// captain.
	Players []Player `firestore:"players_list" json:"players"`

	// Captain is the captain's name, duplicated from Players for display.
	Captain string `firestore:"captain,omitempty" json:"captain,omitempty"`

	// Status is the approval state: pending, approved, or rejected.
	Status string `firestore:"status" json:"status"`

	// RegisteredAt is when the form was submitted.
	RegisteredAt time.Time `firestore:"registered_at" json:"registered_at"`
}

// Player is one roster entry on a registration.
type Player struct {
	Name      string `firestore:"name" json:"name"`
	Role      string `firestore:"role" json:"role"`
	IsCaptain bool   `firestore:"is_captain" json:"is_captain"`
}
