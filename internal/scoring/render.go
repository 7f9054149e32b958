package scoring

import (
	"fmt"
	"strconv"

	"github.com/khelpoint/khelpoint/internal/store"
)

// ScoreView is the display-ready projection of a live score document. Every
// field is always populated with a printable value, so consumers bind them
// without nil checks. Rendering is a pure function of the document; it never
// fails, whatever fields are absent.
type ScoreView struct {
	Sport store.Sport
	Live  bool

	// Cricket.
	BattingTeam string
	BowlingTeam string
	Runs        string
	Wickets     string
	Overs       string
	Batsmen     []string
	Target      string
	Required    string
	Innings     []string

	// Kabaddi.
	Team1Points  string
	Team2Points  string
	PlayerPoints []string
	SuperTackles string

	// Volleyball.
	Sets       []string
	CurrentSet string
	Timeouts   string
}

// Render projects a live score document into a ScoreView. Sport dispatch is
// by the tag on the document, falling back to the tag on the match record
// when the document omits it.
func Render(match store.Match, ls store.LiveScore) ScoreView {
	sport := ls.Sport
	if sport == "" {
		sport = match.Sport
	}
	v := ScoreView{
		Sport: sport,
		Live:  ls.Status == "live" || ls.Status == store.StatusOngoing,
	}
	switch sport {
	case store.Kabaddi:
		renderKabaddi(&v, ls)
	case store.Volleyball:
		renderVolleyball(&v, ls)
	default:
		renderCricket(&v, ls)
	}
	return v
}

func renderCricket(v *ScoreView, ls store.LiveScore) {
	v.BattingTeam = orDefault(ls.BattingTeamID, "Team 1")
	v.BowlingTeam = orDefault(ls.BowlingTeamID, "Team 2")
	v.Runs = strconv.Itoa(ls.TotalRuns)

	_, wickets, overs := CricketSummary(ls)
	v.Wickets = strconv.Itoa(wickets)
	v.Overs = FormatOvers(overs)

	v.Batsmen = make([]string, 0, len(ls.CurrentBatsmen))
	for _, b := range ls.CurrentBatsmen {
		v.Batsmen = append(v.Batsmen, fmt.Sprintf("%s (%d)", b.Name, b.Runs))
	}

	if ls.Target > 0 {
		v.Target = strconv.Itoa(ls.Target)
		required := ls.Target - ls.TotalRuns
		if required < 0 {
			required = 0
		}
		v.Required = strconv.Itoa(required)
	}

	v.Innings = make([]string, 0, len(ls.Innings))
	for i, inn := range ls.Innings {
		v.Innings = append(v.Innings, fmt.Sprintf("Innings %d: %d/%d (%s overs)",
			i+1, inn.Runs, inn.Wickets, FormatOvers(inn.Overs)))
	}
}

func renderKabaddi(v *ScoreView, ls store.LiveScore) {
	var scores store.TeamScores
	if ls.TeamScores != nil {
		scores = *ls.TeamScores
	}
	v.Team1Points = strconv.Itoa(scores.Team1)
	v.Team2Points = strconv.Itoa(scores.Team2)
	v.SuperTackles = strconv.Itoa(ls.SuperTackles)

	v.PlayerPoints = make([]string, 0, len(ls.PlayerPoints))
	for _, pp := range ls.PlayerPoints {
		v.PlayerPoints = append(v.PlayerPoints, fmt.Sprintf("%s: raid %d | tackle %d",
			pp.PlayerName, pp.RaidPoints, pp.TacklePoints))
	}
}

func renderVolleyball(v *ScoreView, ls store.LiveScore) {
	v.Sets = make([]string, 0, len(ls.Sets))
	for i, set := range ls.Sets {
		line := fmt.Sprintf("Set %d: %d - %d", i+1, set.ScoreTeam1, set.ScoreTeam2)
		if set.Winner != "" {
			line += fmt.Sprintf(" (%s won)", set.Winner)
		}
		v.Sets = append(v.Sets, line)
	}

	current := ls.CurrentSet
	if current < 1 {
		current = 1
	}
	v.CurrentSet = strconv.Itoa(current)

	var timeouts store.Timeouts
	if ls.Timeouts != nil {
		timeouts = *ls.Timeouts
	}
	v.Timeouts = fmt.Sprintf("Team 1: %d | Team 2: %d", timeouts.Team1, timeouts.Team2)
}

// Summary collapses a view into one display line, like "142/3 (15.2 ov)".
func (v ScoreView) Summary() string {
	switch v.Sport {
	case store.Kabaddi:
		return fmt.Sprintf("%s - %s", v.Team1Points, v.Team2Points)
	case store.Volleyball:
		if len(v.Sets) == 0 {
			return "0 - 0"
		}
		return v.Sets[len(v.Sets)-1]
	default:
		return fmt.Sprintf("%s/%s (%s ov)", v.Runs, v.Wickets, v.Overs)
	}
}

// CricketSummary extracts the numeric cricket figures from a live score
// document, tolerating every optional field being absent.
func CricketSummary(ls store.LiveScore) (runs, wickets int, overs float64) {
	runs = ls.TotalRuns
	if n := len(ls.Innings); n > 0 {
		return runs, ls.Innings[n-1].Wickets, ls.Innings[n-1].Overs
	}
	legal := 0
	for _, d := range ls.RecentDeliveries {
		if d.Wicket {
			wickets++
		}
		if d.Legal() {
			legal++
		}
	}
	return runs, wickets, OversFromBalls(legal)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
