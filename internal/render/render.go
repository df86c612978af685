// Package render draws dashboard views for the terminal.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/vmunix/streamdash/internal/catalog"
	"github.com/vmunix/streamdash/internal/dashboard"
)

// DefaultBarWidth is the length of the longest bar in a chart.
const DefaultBarWidth = 40

// Bar is one labeled value of a horizontal bar chart.
type Bar struct {
	Label string
	Value float64
	Text  string // printed after the bar; defaults to the value
}

// barLength scales value to width relative to peak. Non-zero values are
// at least one cell long.
func barLength(value, peak float64, width int) int {
	if value <= 0 || peak <= 0 || width <= 0 {
		return 0
	}
	n := int(value / peak * float64(width))
	if n < 1 {
		n = 1
	}
	return min(n, width)
}

// Chart renders a titled horizontal bar chart. An empty chart prints the
// NoData label.
func Chart(title string, bars []Bar, width int) string {
	var b strings.Builder
	b.WriteString(styleHeading.Render(title))
	b.WriteByte('\n')

	if len(bars) == 0 {
		b.WriteString(styleMuted.Render("  " + dashboard.NoData))
		b.WriteByte('\n')
		return b.String()
	}

	labelWidth, peak := 0, 0.0
	for _, bar := range bars {
		labelWidth = max(labelWidth, lipgloss.Width(bar.Label))
		peak = max(peak, bar.Value)
	}

	for _, bar := range bars {
		text := bar.Text
		if text == "" {
			text = strconv.FormatFloat(bar.Value, 'f', -1, 64)
		}
		label := bar.Label + strings.Repeat(" ", labelWidth-lipgloss.Width(bar.Label))
		fmt.Fprintf(&b, "  %s %s %s\n",
			styleLabel.Render(label),
			styleBar.Render(strings.Repeat(barRune, barLength(bar.Value, peak, width))),
			styleMuted.Render(text),
		)
	}
	return b.String()
}

// KPIs renders the four headline values as a row of cards.
func KPIs(k dashboard.KPIs) string {
	card := func(label, value string) string {
		return styleCard.Render(styleCardLabel.Render(label) + "\n" + styleCardValue.Render(value))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top,
		card("Titles (filtered)", humanize.Comma(int64(k.Filtered))),
		card("Titles (total)", humanize.Comma(int64(k.Total))),
		card("Movies", formatPercent(k.MoviePercent)),
		card("TV Shows", formatPercent(k.TVPercent)),
	)
}

func formatPercent(p float64) string {
	return strconv.FormatFloat(dashboard.Round1(p), 'f', 1, 64) + "%"
}

func countBars(cs []dashboard.Count) []Bar {
	bars := make([]Bar, len(cs))
	for i, c := range cs {
		bars[i] = Bar{Label: c.Name, Value: float64(c.Count), Text: humanize.Comma(int64(c.Count))}
	}
	return bars
}

// View writes the full dashboard for v: KPIs, the four charts and the insight.
func View(w io.Writer, v *dashboard.View, width int) error {
	if width <= 0 {
		width = DefaultBarWidth
	}

	shares := make([]Bar, len(v.CategoryShares))
	for i, s := range v.CategoryShares {
		shares[i] = Bar{Label: s.Category, Value: s.Percent, Text: formatPercent(s.Percent)}
	}
	years := make([]Bar, len(v.TitlesByYear))
	for i, y := range v.TitlesByYear {
		years[i] = Bar{Label: strconv.Itoa(y.Year), Value: float64(y.Count), Text: humanize.Comma(int64(y.Count))}
	}

	sections := []string{
		styleMuted.Render("Selection: " + v.Selection.String()),
		KPIs(v.KPIs()),
		Chart("Movies vs TV Shows", shares, width),
		Chart("Titles by release year", years, width),
		Chart(fmt.Sprintf("Top %d countries", len(v.TopCountries)), countBars(v.TopCountries), width),
		Chart(fmt.Sprintf("Top %d genres", len(v.TopGenres)), countBars(v.TopGenres), width),
		styleInsight.Render(v.Insight()),
	}
	_, err := io.WriteString(w, strings.Join(sections, "\n")+"\n")
	return err
}

// Facets writes the selectable values of every facet.
func Facets(w io.Writer, f dashboard.Facets) error {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %d-%d\n", styleLabel.Render("Years:"), f.YearMin, f.YearMax)
	for _, facet := range []struct {
		name   string
		values []string
	}{
		{"Categories", f.Categories},
		{"Ratings", f.Ratings},
		{"Countries", f.Countries},
		{"Genres", f.Genres},
	} {
		// Every list starts with All.
		n := max(len(facet.values)-1, 0)
		fmt.Fprintf(&b, "%s %s\n", styleHeading.Render(facet.name), styleMuted.Render("("+humanize.Comma(int64(n))+")"))
		for _, v := range facet.values {
			fmt.Fprintf(&b, "  %s\n", v)
		}
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// Titles writes one line per entry followed by a paging footer.
func Titles(w io.Writer, entries []catalog.Entry, offset, total int) error {
	var b strings.Builder
	for _, e := range entries {
		year := "----"
		if e.Year != nil {
			year = strconv.Itoa(*e.Year)
		}
		fmt.Fprintf(&b, "%-8s %s  %-8s %-9s %s\n",
			e.ID, year, e.Category, e.Rating, styleLabel.Render(e.Title))
	}
	if len(entries) == 0 {
		b.WriteString(styleMuted.Render("No titles match this selection") + "\n")
	} else {
		fmt.Fprintf(&b, "%s\n", styleMuted.Render(fmt.Sprintf("%s-%s of %s",
			humanize.Comma(int64(offset+1)),
			humanize.Comma(int64(offset+len(entries))),
			humanize.Comma(int64(total)))))
	}
	_, err := io.WriteString(w, b.String())
	return err
}
