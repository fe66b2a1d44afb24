// Package cli provides styled terminal output using lipgloss.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/moodring/internal/model"
)

var (
	// PrimaryColor is the main theme color.
	PrimaryColor = lipgloss.Color("#B388FF") // Lavender
	// PositiveColor marks positive verdicts.
	PositiveColor = lipgloss.Color("#4ECDC4") // Teal
	// NegativeColor marks negative verdicts.
	NegativeColor = lipgloss.Color("#FF6B6B") // Red
	// NeutralColor marks neutral verdicts.
	NeutralColor = lipgloss.Color("#FFE66D") // Yellow
	// SubtleColor indicates less prominent UI elements.
	SubtleColor = lipgloss.Color("#666666") // Gray

	// TitleStyle is used for section titles.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(PrimaryColor).
			MarginBottom(1)

	// SuccessStyle formats success messages.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(PositiveColor)

	// ErrorStyle formats error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(NegativeColor)

	// SubtleStyle formats less prominent text.
	SubtleStyle = lipgloss.NewStyle().
			Foreground(SubtleColor)

	// BoldStyle makes text bold.
	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	// BoxStyle is used for bordered content boxes.
	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#333")).
			Padding(1, 2)

	// TableHeaderStyle is used for table headers.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("#333"))

	// TableCellStyle formats table cells with appropriate padding.
	TableCellStyle = lipgloss.NewStyle().
			PaddingRight(2)
)

// Icons.
const (
	SuccessIcon  = "✓"
	ErrorIcon    = "✗"
	MoodIcon     = "💍"
	PositiveIcon = "☀"
	NegativeIcon = "☂"
	NeutralIcon  = "☁"
)

// SentimentStyle returns the label style for a sentiment.
func SentimentStyle(s model.Sentiment) lipgloss.Style {
	style := lipgloss.NewStyle().Bold(true)
	switch s {
	case model.SentimentPositive:
		return style.Foreground(PositiveColor)
	case model.SentimentNegative:
		return style.Foreground(NegativeColor)
	default:
		return style.Foreground(NeutralColor)
	}
}

// SentimentIcon returns the icon shown next to a sentiment label.
func SentimentIcon(s model.Sentiment) string {
	switch s {
	case model.SentimentPositive:
		return PositiveIcon
	case model.SentimentNegative:
		return NegativeIcon
	default:
		return NeutralIcon
	}
}

// FormatSentiment renders a sentiment label with its icon and color.
func FormatSentiment(s model.Sentiment) string {
	return SentimentStyle(s).Render(SentimentIcon(s) + " " + strings.ToUpper(string(s)))
}

// FormatSuccess formats a success message with icon.
func FormatSuccess(message string) string {
	return SuccessStyle.Render(SuccessIcon + " " + message)
}

// FormatError formats an error message with icon.
func FormatError(message string) string {
	return ErrorStyle.Render(ErrorIcon + " " + message)
}

// FormatTitle formats a title with the app icon.
func FormatTitle(title string) string {
	return TitleStyle.Render(MoodIcon + " " + title)
}

// RenderBox renders content in a styled box.
func RenderBox(title, content string) string {
	boxTitle := TitleStyle.
		UnsetMargins().
		Render(title)

	boxContent := lipgloss.JoinVertical(
		lipgloss.Left,
		boxTitle,
		content,
	)

	return BoxStyle.Render(boxContent)
}

// RenderResult renders a verdict as a boxed summary.
func RenderResult(text string, result model.AnalysisResult) string {
	lines := []string{
		SubtleStyle.Render("Text:     ") + text,
		SubtleStyle.Render("Verdict:  ") + FormatSentiment(result.Sentiment),
		SubtleStyle.Render("Score:    ") + fmt.Sprintf("%+.3f", result.Score),
		SubtleStyle.Render("Category: ") + string(result.Category),
	}
	if result.Rule != "" {
		lines = append(lines, SubtleStyle.Render("Rule:     ")+result.Rule)
	}
	if result.ContextInfo != "" {
		lines = append(lines, SubtleStyle.Render("Context:  ")+result.ContextInfo)
	}
	return RenderBox("Analysis", strings.Join(lines, "\n"))
}

// RenderTable renders rows under a bold header with padded columns.
func RenderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i < len(widths) {
				widths[i] = max(widths[i], lipgloss.Width(cell))
			}
		}
	}

	renderRow := func(cells []string, style lipgloss.Style) string {
		rendered := make([]string, len(cells))
		for i, cell := range cells {
			rendered[i] = TableCellStyle.Width(widths[i] + 2).Render(cell)
		}
		return style.Render(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}

	out := []string{renderRow(headers, TableHeaderStyle)}
	for _, row := range rows {
		out = append(out, renderRow(row, lipgloss.NewStyle()))
	}
	return strings.Join(out, "\n")
}
