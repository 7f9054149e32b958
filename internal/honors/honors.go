// Package honors selects achievement leaderboards for display.
package honors

import (
	"context"
	"log"
	"sort"

	"github.com/khelpoint/khelpoint/internal/store"
)

// Categories displayed per sport, in display order.
var Categories = map[store.Sport][]string{
	store.Cricket:    {store.CategoryHighestScore, store.CategoryMostWickets, store.CategoryHighestTeamScore},
	store.Kabaddi:    {store.CategoryMostRaids, store.CategoryMostTackles},
	store.Volleyball: {store.CategoryMostAces, store.CategoryMostBlocks},
}

// Leader is the top record in one category slot. A slot with no matching
// achievements is rendered explicitly, never omitted.
type Leader struct {
	Category string

	// Found is false when no achievement exists for the category; the
	// display shows a "no data" placeholder.
	Found bool

	Achievement store.Achievement
}

// SelectLeader picks the achievement with the highest points from the given
// records, restricted to one category. Ties break arbitrarily.
func SelectLeader(achievements []store.Achievement, category string) Leader {
	matching := make([]store.Achievement, 0)
	for _, a := range achievements {
		if a.Category == category {
			matching = append(matching, a)
		}
	}
	if len(matching) == 0 {
		return Leader{Category: category}
	}
	sort.Slice(matching, func(i, j int) bool {
		return matching[i].Points > matching[j].Points
	})
	return Leader{Category: category, Found: true, Achievement: matching[0]}
}

// Leaders loads all achievements and selects the leader for each of a
// sport's category slots. A list failure is logged and treated as no data;
// the caller still gets every slot.
func Leaders(ctx context.Context, s store.Store, sport store.Sport) []Leader {
	achievements, err := s.ListAchievements(ctx, store.AchievementFilter{})
	if err != nil {
		log.Printf("honors: error listing achievements: %v", err)
		achievements = nil
	}
	cats := Categories[sport]
	out := make([]Leader, 0, len(cats))
	for _, cat := range cats {
		out = append(out, SelectLeader(achievements, cat))
	}
	return out
}
