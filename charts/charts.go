// Package charts reshapes aggregated expense data for display. The same row
// sequence feeds both the proportional and the ranked renderings so the two
// can never disagree.
package charts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"spendtui/category"
	"spendtui/expense"
)

// Row is one chart-ready data point.
type Row struct {
	Label   string
	Value   float64
	Display string
	Color   lipgloss.Color
}

// FromCategoryTotals converts aggregated category totals into chart rows,
// preserving their order. An empty input yields an empty slice.
func FromCategoryTotals(totals []expense.CategoryTotal) []Row {
	rows := make([]Row, 0, len(totals))
	for _, ct := range totals {
		rows = append(rows, Row{
			Label:   string(ct.Category),
			Value:   ct.Total.AsMajorUnits(),
			Display: ct.Total.Display(),
			Color:   ct.Color,
		})
	}
	return rows
}

// RenderProportional draws a single share-of-whole bar with a legend. Each
// segment's width is its share of the total.
func RenderProportional(rows []Row, width int) string {
	if len(rows) == 0 || width <= 0 {
		return ""
	}

	var total float64
	for _, r := range rows {
		total += r.Value
	}
	if total <= 0 {
		return ""
	}

	var bar strings.Builder
	used := 0
	for i, r := range rows {
		segment := int(r.Value / total * float64(width))
		if i == len(rows)-1 {
			segment = width - used
		}
		if segment < 1 {
			segment = 1
		}
		used += segment
		bar.WriteString(lipgloss.NewStyle().Foreground(r.Color).Render(strings.Repeat("█", segment)))
	}

	var b strings.Builder
	b.WriteString(bar.String())
	b.WriteString("\n")
	for _, r := range rows {
		share := r.Value / total * 100
		b.WriteString(fmt.Sprintf("%s %s %s (%.1f%%)\n",
			lipgloss.NewStyle().Foreground(r.Color).Render("■"),
			r.Label,
			r.Display,
			share,
		))
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderRanked draws one bar per row, largest first, scaled against the
// biggest value. The input slice is not reordered.
func RenderRanked(rows []Row, width int) string {
	if len(rows) == 0 || width <= 0 {
		return ""
	}

	ranked := make([]Row, len(rows))
	copy(ranked, rows)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Value > ranked[j].Value
	})

	max := ranked[0].Value
	if max <= 0 {
		return ""
	}

	labelWidth := 0
	for _, r := range ranked {
		if len(r.Label) > labelWidth {
			labelWidth = len(r.Label)
		}
	}

	var b strings.Builder
	for _, r := range ranked {
		length := int(r.Value / max * float64(width))
		if length < 1 {
			length = 1
		}
		b.WriteString(fmt.Sprintf("%-*s %s %s\n",
			labelWidth,
			r.Label,
			lipgloss.NewStyle().Foreground(r.Color).Render(strings.Repeat("█", length)),
			r.Display,
		))
	}

	return strings.TrimRight(b.String(), "\n")
}

// ListEntry is one expense shaped for the day-grouped history list, with
// its category's icon and color resolved.
type ListEntry struct {
	ID        string
	Label     string
	Amount    string
	TimeOfDay string
	Note      string
	Icon      string
	Color     lipgloss.Color
}

// DaySection is one calendar day's entries under a human-readable heading.
type DaySection struct {
	Title   string
	Entries []ListEntry
}

// FromDayGroups converts day-grouped expenses into list sections, keeping
// the aggregator's ordering. Empty input yields an empty slice; the caller
// owns the empty-state message.
func FromDayGroups(groups []expense.DayGroup) []DaySection {
	sections := make([]DaySection, 0, len(groups))
	for _, g := range groups {
		section := DaySection{
			Title:   g.Day.Format("Monday, Jan 2, 2006"),
			Entries: make([]ListEntry, 0, len(g.Expenses)),
		}
		for _, e := range g.Expenses {
			section.Entries = append(section.Entries, ListEntry{
				ID:        e.ID,
				Label:     string(e.Category),
				Amount:    e.Amount.Display(),
				TimeOfDay: e.Date.Format("3:04 PM"),
				Note:      e.Note,
				Icon:      category.IconFor(e.Category),
				Color:     category.ColorFor(e.Category),
			})
		}
		sections = append(sections, section)
	}
	return sections
}
