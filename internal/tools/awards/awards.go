// Package awards grants player and team achievements and prints the
// resulting leaderboards.
package awards

import (
	"fmt"
	"io"
	"log"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/khelpoint/khelpoint/internal/honors"
	"github.com/khelpoint/khelpoint/internal/store"
)

// Award records a new achievement. If a badge file is given it is uploaded
// first and the achievement links to it.
func Award(ctx *Context) error {
	if ctx.Title == "" {
		return fmt.Errorf("Award: title is required")
	}
	if ctx.Category == "" {
		return fmt.Errorf("Award: category is required")
	}
	if ctx.Sport != "" && !ctx.Sport.Valid() {
		return fmt.Errorf("Award: unknown sport '%s'", ctx.Sport)
	}

	a := store.Achievement{
		Title:       ctx.Title,
		Description: ctx.Description,
		Category:    ctx.Category,
		Sport:       ctx.Sport,
		PlayerID:    ctx.PlayerID,
		TeamID:      ctx.TeamID,
		MatchID:     ctx.MatchID,
		Points:      ctx.Points,
		AwardedAt:   time.Now(),
	}

	if ctx.DryRun {
		log.Printf("DRY RUN: would award achievement '%s' (%s, %d points)", a.Title, a.Category, a.Points)
		if ctx.BadgeFile != "" {
			log.Printf("DRY RUN: would upload badge %s to %s", ctx.BadgeFile, ctx.BadgeDest)
		}
		return nil
	}

	if ctx.BadgeFile != "" {
		badgeURL, err := uploadBadge(ctx, ctx.BadgeFile, ctx.BadgeDest)
		if err != nil {
			return fmt.Errorf("Award: failed to upload badge '%s': %w", ctx.BadgeFile, err)
		}
		a.BadgeURL = badgeURL
	}

	if err := ctx.Store.CreateAchievement(ctx, &a); err != nil {
		return fmt.Errorf("Award: error creating achievement: %w", err)
	}
	log.Printf("Awarded achievement %s: '%s'", a.ID, a.Title)
	return nil
}

// Ls prints achievements, optionally restricted to one category.
func Ls(ctx *Context) error {
	achievements, err := ctx.Store.ListAchievements(ctx, store.AchievementFilter{
		Category: ctx.Category,
		PlayerID: ctx.PlayerID,
		TeamID:   ctx.TeamID,
	})
	if err != nil {
		return fmt.Errorf("Ls: error listing achievements: %w", err)
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"ID", "Title", "Category", "Sport", "Player", "Team", "Points", "Awarded"})
	for _, a := range achievements {
		t.AppendRow(table.Row{a.ID, a.Title, a.Category, a.Sport, a.PlayerID, a.TeamID, a.Points, a.AwardedAt.Format("2006/01/02")})
	}
	t.Render()
	return nil
}

// Leaders prints the leaderboard for one sport, one row per category slot.
func Leaders(ctx *Context) error {
	sport := ctx.Sport
	if sport == "" {
		sport = store.Cricket
	}
	if !sport.Valid() {
		return fmt.Errorf("Leaders: unknown sport '%s'", sport)
	}

	leaders := honors.Leaders(ctx, ctx.Store, sport)
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Category", "Title", "Player", "Team", "Points"})
	for _, l := range leaders {
		if !l.Found {
			t.AppendRow(table.Row{l.Category, "(no data)", "", "", ""})
			continue
		}
		a := l.Achievement
		t.AppendRow(table.Row{l.Category, a.Title, a.PlayerID, a.TeamID, a.Points})
	}
	t.Render()
	return nil
}

// uploadBadge copies a local image to dest and returns the stored object's
// URL. A gs:// dest uploads to Cloud Storage; anything else is treated as a
// local directory.
func uploadBadge(ctx *Context, src, dest string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", err
	}
	defer in.Close()

	if dest == "" {
		return "", fmt.Errorf("badge destination is required")
	}
	u, err := url.Parse(dest)
	if err != nil {
		return "", err
	}

	var w io.WriteCloser
	var storedURL string
	switch u.Scheme {
	case "gs":
		gsClient, err := storage.NewClient(ctx)
		if err != nil {
			return "", err
		}
		bucket := gsClient.Bucket(u.Host)
		// URL path has leading slash, but GS expects path relative to bucket.
		objPath := path.Join(strings.TrimPrefix(u.Path, "/"), path.Base(src))
		obj := bucket.Object(objPath)
		w = obj.NewWriter(ctx)
		storedURL = fmt.Sprintf("https://storage.googleapis.com/%s/%s", u.Host, objPath)

	case "file":
		fallthrough
	case "":
		p := path.Join(u.Path, path.Base(src))
		w, err = os.Create(p)
		if err != nil {
			return "", err
		}
		storedURL = p

	default:
		return "", fmt.Errorf("unable to determine how to open '%s'", dest)
	}

	if _, err := io.Copy(w, in); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return storedURL, nil
}
