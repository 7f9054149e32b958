// Package export writes registrations and scoreboards to Excel workbooks,
// either on disk or in Cloud Storage.
package export

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	excelize "github.com/xuri/excelize/v2"

	"github.com/khelpoint/khelpoint/internal/scoring"
	"github.com/khelpoint/khelpoint/internal/store"
)

// ExportRegistrations writes one row per registration, with a player roster
// column.
func ExportRegistrations(ctx *Context) error {
	regs, err := ctx.Store.ListRegistrations(ctx, ctx.Status)
	if err != nil {
		return fmt.Errorf("ExportRegistrations: error listing registrations: %w", err)
	}

	xl := excelize.NewFile()
	sheetName := xl.GetSheetName(xl.GetActiveSheetIndex())
	xl.SetCellStr(sheetName, "A1", "Team")
	xl.SetCellStr(sheetName, "B1", "Sport")
	xl.SetCellStr(sheetName, "C1", "Manager Email")
	xl.SetCellStr(sheetName, "D1", "Phone")
	xl.SetCellStr(sheetName, "E1", "Captain")
	xl.SetCellStr(sheetName, "F1", "Players")
	xl.SetCellStr(sheetName, "G1", "Status")
	xl.SetCellStr(sheetName, "H1", "Registered")

	for i, reg := range regs {
		names := make([]string, len(reg.Players))
		for j, p := range reg.Players {
			names[j] = p.Name
		}
		row := []string{
			reg.Name,
			string(reg.Sport),
			reg.Email,
			reg.Phone,
			reg.Captain,
			strings.Join(names, ", "),
			reg.Status,
			reg.RegisteredAt.Format("2006/01/02"),
		}
		if err := setRow(xl, sheetName, i+1, row); err != nil {
			return fmt.Errorf("ExportRegistrations: %w", err)
		}
	}

	return write(ctx, xl, ctx.Output)
}

// ExportScoreboards writes one row per match with its current score summary.
func ExportScoreboards(ctx *Context) error {
	matches, err := ctx.Store.ListMatches(ctx, store.MatchFilter{Sport: ctx.Sport, Status: ctx.Status})
	if err != nil {
		return fmt.Errorf("ExportScoreboards: error listing matches: %w", err)
	}

	xl := excelize.NewFile()
	sheetName := xl.GetSheetName(xl.GetActiveSheetIndex())
	xl.SetCellStr(sheetName, "A1", "Match")
	xl.SetCellStr(sheetName, "B1", "Sport")
	xl.SetCellStr(sheetName, "C1", "Teams")
	xl.SetCellStr(sheetName, "D1", "Status")
	xl.SetCellStr(sheetName, "E1", "Score")
	xl.SetCellStr(sheetName, "F1", "Start")

	for i, m := range matches {
		summary := ""
		if ls, err := ctx.Store.GetLiveScore(ctx, m.ID); err == nil {
			summary = scoring.Render(m, ls).Summary()
		} else if !store.IsNotFound(err) {
			return fmt.Errorf("ExportScoreboards: error getting live score for match %s: %w", m.ID, err)
		}
		row := []string{
			m.ID,
			string(m.Sport),
			fmt.Sprintf("%s vs %s", m.Team1ID, m.Team2ID),
			m.Status,
			summary,
			m.StartTime.Format("2006/01/02 15:04"),
		}
		if err := setRow(xl, sheetName, i+1, row); err != nil {
			return fmt.Errorf("ExportScoreboards: %w", err)
		}
	}

	return write(ctx, xl, ctx.Output)
}

func setRow(xl *excelize.File, sheetName string, row int, values []string) error {
	for col, str := range values {
		index, err := excelize.CoordinatesToCellName(col+1, row+1)
		if err != nil {
			return err
		}
		xl.SetCellStr(sheetName, index, str)
	}
	return nil
}

func write(ctx *Context, xl *excelize.File, output string) error {
	if output == "" {
		return fmt.Errorf("write: output path is required")
	}
	writer, err := openFileOrGSWriter(ctx, output)
	if err != nil {
		return fmt.Errorf("write: failed to open '%s': %w", output, err)
	}
	defer writer.Close()

	if _, err := xl.WriteTo(writer); err != nil {
		return fmt.Errorf("write: failed to write Excel file: %w", err)
	}
	return nil
}

func openFileOrGSWriter(ctx context.Context, f string) (io.WriteCloser, error) {
	u, err := url.Parse(f)
	if err != nil {
		return nil, err
	}
	var w io.WriteCloser
	switch u.Scheme {
	case "gs":
		gsClient, err := storage.NewClient(ctx)
		if err != nil {
			return nil, err
		}
		bucket := gsClient.Bucket(u.Host)
		// URL path has leading slash, but GS expects path relative to bucket.
		path := strings.TrimPrefix(u.Path, "/")
		obj := bucket.Object(path)
		w = obj.NewWriter(ctx)

	case "file":
		fallthrough
	case "":
		w, err = os.Create(u.Path)
		if err != nil {
			return nil, err
		}

	default:
		return nil, fmt.Errorf("unable to determine how to open '%s'", f)
	}
	return w, nil
}
