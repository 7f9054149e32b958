package store

import "time"

// Match is a scheduled or in-progress fixture between two registered teams.
type Match struct {
	// ID is the document ID. It is assigned by the store on create and is
	// not stored as a document field.
	ID string `firestore:"-" json:"id"`

	// TournamentID optionally links the match to a tournament document.
	TournamentID string `firestore:"tournament_id" json:"tournament_id,omitempty"`

	// Sport is the game being played: cricket, kabaddi, or volleyball.
	Sport Sport `firestore:"sport" json:"sport"`

	// Stage is the tournament stage, e.g. "group" or "final".
	Stage string `firestore:"stage" json:"stage,omitempty"`

	// Team1ID and Team2ID reference the two competing registrations.
	Team1ID string `firestore:"team1_id" json:"team1_id"`
	Team2ID string `firestore:"team2_id" json:"team2_id"`

	// VenueID names where the match is played.
	VenueID string `firestore:"venue_id" json:"venue_id,omitempty"`

	// StartTime is the nominal first-ball time.
	StartTime time.Time `firestore:"start_time" json:"start_time"`

	// Status is the lifecycle state: scheduled, ongoing, or completed.
	// Transitions only move forward.
	Status string `firestore:"status" json:"status"`

	// Officials maps a role name ("umpire", "admin") to a person's name.
	Officials map[string]string `firestore:"umpires_officials,omitempty" json:"officials,omitempty"`

	// MaxInnings bounds the number of innings in a cricket match.
	MaxInnings int `firestore:"max_innings,omitempty" json:"max_innings,omitempty"`
}

// nextStatus defines the one legal forward transition from each lifecycle
// state.
var nextStatus = map[string]string{
	StatusScheduled: StatusOngoing,
	StatusOngoing:   StatusCompleted,
}

// CanTransition reports whether a match may move from one status to another.
// The lifecycle is monotonic; no reverse transition is defined.
func CanTransition(from, to string) bool {
	return nextStatus[from] == to
}
