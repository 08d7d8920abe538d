package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/nashbilliard/billsplit/internal/bill"
	"github.com/nashbilliard/billsplit/internal/i18n"
)

// Gruvbox-inspired colours, one shade per background.
var (
	colorAccent = lipgloss.AdaptiveColor{Light: "#af3a03", Dark: "#fe8019"}
	colorText   = lipgloss.AdaptiveColor{Light: "#3c3836", Dark: "#ebdbb2"}
	colorDim    = lipgloss.AdaptiveColor{Light: "#7c6f64", Dark: "#928374"}
	colorGood   = lipgloss.AdaptiveColor{Light: "#427b58", Dark: "#8ec07c"}
	colorWarn   = lipgloss.AdaptiveColor{Light: "#b57614", Dark: "#fabd2f"}
)

// styles renders for one output and one theme
type styles struct {
	header lipgloss.Style
	key    lipgloss.Style
	value  lipgloss.Style
	dim    lipgloss.Style
	amount lipgloss.Style
	warn   lipgloss.Style
	cell   lipgloss.Style
}

func newStyles(w io.Writer, dark bool) *styles {
	r := lipgloss.NewRenderer(w)
	r.SetHasDarkBackground(dark)

	return &styles{
		header: r.NewStyle().Foreground(colorAccent).Bold(true),
		key:    r.NewStyle().Foreground(colorDim),
		value:  r.NewStyle().Foreground(colorText),
		dim:    r.NewStyle().Foreground(colorDim),
		amount: r.NewStyle().Foreground(colorGood).Bold(true),
		warn:   r.NewStyle().Foreground(colorWarn),
		cell:   r.NewStyle().Foreground(colorText).Padding(0, 1),
	}
}

func (s *styles) section(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", s.header.Render(upper), s.dim.Render(line))
}

// renderSummary lays out a computed bill in the given theme and language
func renderSummary(w io.Writer, dark bool, t *i18n.Translator, summary *bill.Summary) string {
	s := newStyles(w, dark)
	resp := summary.ToResponse(t)

	var b strings.Builder
	b.WriteString(s.section(t.Text(i18n.LabelTitle)))
	b.WriteString("\n")

	facts := [][2]string{
		{t.Text(i18n.LabelTotalAmount), s.amount.Render(resp.TotalAmountDisplay)},
		{t.Text(i18n.LabelSessionDuration), s.value.Render(resp.SessionDuration)},
		{t.Text(i18n.LabelParticipants), s.value.Render(fmt.Sprint(resp.ParticipantCount))},
		{t.Text(i18n.LabelSharedItems), s.value.Render(resp.SharedTotalDisplay)},
		{t.Text(i18n.LabelBaseAmount), s.value.Render(i18n.FormatAmount(resp.BaseAmount))},
	}
	width := 0
	for _, f := range facts {
		width = max(width, lipgloss.Width(f[0]))
	}
	for _, f := range facts {
		pad := strings.Repeat(" ", width-lipgloss.Width(f[0])+2)
		b.WriteString(s.key.Render(f[0]) + pad + f[1] + "\n")
	}

	b.WriteString("\n")
	b.WriteString(s.section(t.Text(i18n.LabelBreakdown)))
	b.WriteString("\n")

	rows := make([][]string, 0, len(resp.Shares))
	for _, share := range resp.Shares {
		rows = append(rows, []string{share.Label, share.IndividualDisplay, share.Display})
	}
	tbl := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(s.dim).
		Headers(t.Text(i18n.LabelPlayers), t.Text(i18n.LabelConsumables), t.Text(i18n.LabelShare)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return s.header.Padding(0, 1)
			case col == 2:
				return s.amount.Padding(0, 1).Align(lipgloss.Right)
			default:
				return s.cell
			}
		})
	b.WriteString(tbl.Render())
	b.WriteString("\n")

	if len(resp.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(s.section(t.Text(i18n.LabelWarnings)))
		b.WriteString("\n")
		for _, warning := range resp.Warnings {
			b.WriteString(s.warn.Render("! "+warning.Message) + "\n")
		}
	}

	return b.String()
}
