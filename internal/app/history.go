package app

import (
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.trai.ch/xcinfo/internal/core/domain"
	"go.trai.ch/xcinfo/internal/ui/style"
)

const (
	historyTimeLayout = "2006-01-02 15:04:05"
	shortDigestLen    = 8
)

// renderHistory lays out entries as a table, styled for the terminal behind w.
func renderHistory(w io.Writer, entries []domain.HistoryEntry) string {
	r := lipgloss.NewRenderer(w)
	palette := style.NewPalette(r, 0)
	header := palette.Title.Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		name := e.FrameworkName
		if e.FrameworkVersion != "" {
			name += " " + e.FrameworkVersion
		}
		distribution := palette.Caution.Render(style.Circle)
		if e.BuiltForDistribution {
			distribution = palette.Good.Render(style.Check)
		}
		rows = append(rows, []string{
			e.InspectedAt.Local().Format(historyTimeLayout),
			name,
			strconv.Itoa(e.LibraryCount),
			distribution,
			strconv.Itoa(e.Diagnostics),
			shortDigest(e.Digest),
			e.ArchivePath,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(r.NewStyle().Foreground(style.Slate)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers("INSPECTED", "FRAMEWORK", "LIBRARIES", "DIST", "SKIPPED", "DIGEST", "ARCHIVE").
		Rows(rows...).
		String()
}

func shortDigest(d string) string {
	if len(d) > shortDigestLen {
		return d[:shortDigestLen]
	}
	return d
}
