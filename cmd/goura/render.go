package main

import (
	"fmt"
	"sort"
	"strings"

	"charm.land/lipgloss/v2"
)

var (
	colorAccent = lipgloss.Color("#00F19F")
	colorDim    = lipgloss.Color("#666666")
	colorLow    = lipgloss.Color("#FF0026")
	colorMedium = lipgloss.Color("#FFDE00")
	colorHigh   = lipgloss.Color("#16EC06")
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	labelStyle = lipgloss.NewStyle().Foreground(colorDim).Width(16)
	headerRow  = lipgloss.NewStyle().Bold(true)
)

func renderField(label, value string) string {
	return labelStyle.Render(label) + value
}

func renderScore(score *int) string {
	if score == nil {
		return lipgloss.NewStyle().Foreground(colorDim).Render("  --")
	}

	color := colorLow
	switch {
	case *score >= 85:
		color = colorHigh
	case *score >= 70:
		color = colorMedium
	}
	return lipgloss.NewStyle().Foreground(color).Render(fmt.Sprintf("%4d", *score))
}

func renderDashboard(rows map[string]*dashboardRow) string {
	days := make([]string, 0, len(rows))
	for day := range rows {
		days = append(days, day)
	}
	sort.Strings(days)

	var b strings.Builder
	b.WriteString(headerRow.Render(fmt.Sprintf("%-12s %5s %10s %9s", "Day", "Sleep", "Readiness", "Activity")))
	b.WriteString("\n")
	for _, day := range days {
		r := rows[day]
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			fmt.Sprintf("%-12s", day),
			" ", renderScore(r.sleep),
			"      ", renderScore(r.readiness),
			"     ", renderScore(r.activity),
		)
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
