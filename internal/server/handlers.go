package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/khelpoint/khelpoint/internal/register"
	"github.com/khelpoint/khelpoint/internal/scoring"
	"github.com/khelpoint/khelpoint/internal/store"
)

// matchSummary is the legacy polling API's match payload. The live score
// figures are folded in so the page needs a single fetch.
type matchSummary struct {
	ID          string      `json:"id"`
	Sport       store.Sport `json:"sport"`
	Status      string      `json:"status"`
	BattingTeam string      `json:"batting_team"`
	BowlingTeam string      `json:"bowling_team"`
	Score       int         `json:"score"`
	Wickets     int         `json:"wickets"`
	Overs       float64     `json:"overs"`
	Target      int         `json:"target,omitempty"`
	StartTime   time.Time   `json:"start_time"`
}

func (s *Server) summarize(m store.Match, ls store.LiveScore) matchSummary {
	runs, wickets, overs := scoring.CricketSummary(ls)
	batting := ls.BattingTeamID
	if batting == "" {
		batting = m.Team1ID
	}
	bowling := ls.BowlingTeamID
	if bowling == "" {
		bowling = m.Team2ID
	}
	return matchSummary{
		ID:          m.ID,
		Sport:       m.Sport,
		Status:      m.Status,
		BattingTeam: batting,
		BowlingTeam: bowling,
		Score:       runs,
		Wickets:     wickets,
		Overs:       overs,
		Target:      ls.Target,
		StartTime:   m.StartTime,
	}
}

func (s *Server) handleListMatches(w http.ResponseWriter, r *http.Request) {
	f := store.MatchFilter{
		Status: r.URL.Query().Get("status"),
		Sport:  store.Sport(r.URL.Query().Get("sport")),
	}
	matches, err := s.store.ListMatches(r.Context(), f)
	if err != nil {
		// List errors never fail the page; it renders an empty list.
		log.Printf("server: error listing matches: %v", err)
		matches = []store.Match{}
	}
	out := make([]matchSummary, 0, len(matches))
	for _, m := range matches {
		ls, err := s.store.GetLiveScore(r.Context(), m.ID)
		if err != nil && !store.IsNotFound(err) {
			log.Printf("server: error loading live score for match %s: %v", m.ID, err)
		}
		out = append(out, s.summarize(m, ls))
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleGetMatch(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	m, err := s.store.GetMatch(r.Context(), id)
	if store.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "match not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	ls, err := s.store.GetLiveScore(r.Context(), id)
	if err != nil && !store.IsNotFound(err) {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.summarize(m, ls))
}

// scoreRequest is one delivery in the legacy per-ball scoring API.
type scoreRequest struct {
	Run       int     `json:"run"`
	IsWicket  bool    `json:"is_wicket"`
	ExtraType *string `json:"extra_type"`
}

// handleScoreDelivery folds a single delivery into the match's live score
// document through the same store the rest of the site writes to. The write
// is a full document replacement; there is no merge with concurrent
// scorers.
func (s *Server) handleScoreDelivery(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	var req scoreRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid score payload")
		return
	}

	m, err := s.store.GetMatch(r.Context(), id)
	if store.IsNotFound(err) {
		writeError(w, http.StatusNotFound, "match not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	ls, err := s.store.GetLiveScore(r.Context(), id)
	if store.IsNotFound(err) {
		ls = store.NewLiveScore(m.Sport, m.Team1ID, m.Team2ID, time.Now())
	} else if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	tally := scoring.ResumeCricket(ls)
	extra := ""
	if req.ExtraType != nil {
		extra = *req.ExtraType
	}
	tally.Ball(store.Delivery{Runs: req.Run, Wicket: req.IsWicket, Extra: extra})

	if err := store.UpsertLiveScore(r.Context(), s.store, id, tally.Build(time.Now())); err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	fresh, err := s.store.GetLiveScore(r.Context(), id)
	if err != nil {
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, s.summarize(m, fresh))
}

func (s *Server) handleListAchievements(w http.ResponseWriter, r *http.Request) {
	f := store.AchievementFilter{
		Category: r.URL.Query().Get("category"),
		PlayerID: r.URL.Query().Get("player_id"),
		TeamID:   r.URL.Query().Get("team_id"),
	}
	achievements, err := s.store.ListAchievements(r.Context(), f)
	if err != nil {
		log.Printf("server: error listing achievements: %v", err)
		achievements = []store.Achievement{}
	}
	writeJSON(w, http.StatusOK, achievements)
}

// registerRequest is the registration form payload.
type registerRequest struct {
	TeamName     string         `json:"name"`
	ManagerName  string         `json:"manager_name"`
	ManagerEmail string         `json:"email"`
	ManagerPhone string         `json:"phone"`
	Sport        store.Sport    `json:"sport"`
	Players      []store.Player `json:"players"`
}

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid registration payload")
		return
	}
	reg, err := register.Submit(r.Context(), s.store, register.Form{
		TeamName:     req.TeamName,
		ManagerName:  req.ManagerName,
		ManagerEmail: req.ManagerEmail,
		ManagerPhone: req.ManagerPhone,
		Sport:        req.Sport,
		Players:      req.Players,
	}, time.Now())
	if err != nil {
		var verr register.ValidationError
		if errors.As(err, &verr) {
			writeError(w, http.StatusBadRequest, verr.Error())
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}
	writeJSON(w, http.StatusCreated, reg)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// handleWebSocket subscribes a browser to one match's live score pushes.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	matchID := chi.URLParam(r, "id")
	if _, err := s.store.GetMatch(r.Context(), matchID); err != nil {
		if store.IsNotFound(err) {
			writeError(w, http.StatusNotFound, "match not found")
			return
		}
		writeError(w, http.StatusBadGateway, err.Error())
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("server: websocket upgrade failed: %v", err)
		return
	}

	c := &client{
		id:      uuid.NewString(),
		matchID: matchID,
		send:    make(chan store.LiveScore, 16),
	}
	s.hub.register <- c
	// The feed must outlive this request: websocket requests end as soon
	// as the pumps are spawned.
	s.ensureFeed(s.baseCtx, matchID)

	// Write pump.
	go func() {
		defer conn.Close()
		for ls := range c.send {
			if err := conn.WriteJSON(ls); err != nil {
				return
			}
		}
	}()

	// Read pump: the page never sends data, but reading detects the close.
	go func() {
		defer func() {
			s.hub.unregister <- c
			s.dropFeedIfIdle(matchID)
			conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("server: error encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
