package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/nashbilliard/billsplit/internal/allocation"
	"github.com/nashbilliard/billsplit/internal/bill"
	"github.com/nashbilliard/billsplit/internal/i18n"
)

// huhTheme matches the summary colours
func huhTheme() *huh.Theme {
	t := huh.ThemeBase()

	t.Focused.Title = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	t.Focused.Description = lipgloss.NewStyle().Foreground(colorDim)
	t.Focused.SelectSelector = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.SelectedOption = lipgloss.NewStyle().Foreground(colorGood)
	t.Focused.UnselectedOption = lipgloss.NewStyle().Foreground(colorText)
	t.Focused.TextInput.Cursor = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.TextInput.Prompt = lipgloss.NewStyle().Foreground(colorAccent)
	t.Focused.TextInput.Placeholder = lipgloss.NewStyle().Foreground(colorDim)

	t.Blurred.Title = lipgloss.NewStyle().Foreground(colorDim)
	t.Blurred.TextInput.Text = lipgloss.NewStyle().Foreground(colorDim)

	return t
}

// billForm collects a bill interactively. The first form covers the session,
// the second asks per player and per catalog item.
type billForm struct {
	t        *i18n.Translator
	template *bill.Bill

	total   string
	start   string
	end     string
	policy  string
	players []string

	windows map[string]*string
	owned   map[string]*string
	items   map[string]*string
}

func newBillForm(t *i18n.Translator, template *bill.Bill, defaultPolicy allocation.PolicyType) *billForm {
	return &billForm{
		t:        t,
		template: template,
		policy:   string(defaultPolicy),
		windows:  make(map[string]*string),
		owned:    make(map[string]*string),
		items:    make(map[string]*string),
	}
}

func (f *billForm) sessionForm() *huh.Form {
	players := make([]huh.Option[string], 0, len(f.template.Participants))
	for _, p := range f.template.Participants {
		players = append(players, huh.NewOption(p.Name, p.Name))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(f.t.Text(i18n.LabelTotalAmount)+" (k)").
				Placeholder("300").
				Value(&f.total),
			huh.NewInput().
				Title(f.t.Text(i18n.LabelSessionStart)).
				Placeholder("14:00").
				Value(&f.start).
				Validate(validateClock),
			huh.NewInput().
				Title(f.t.Text(i18n.LabelSessionEnd)).
				Placeholder("15:30").
				Value(&f.end).
				Validate(validateClock),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title(f.t.Text(i18n.LabelPlayers)).
				Options(players...).
				Value(&f.players),
			huh.NewSelect[string]().
				Title("Policy").
				Options(
					huh.NewOption("Own consumables (OWNED)", string(allocation.PolicyOwned)),
					huh.NewOption("Shared catalog (CATALOG)", string(allocation.PolicyCatalog)),
				).
				Value(&f.policy),
		),
	).WithTheme(huhTheme()).WithShowHelp(false)
}

func (f *billForm) detailForm() *huh.Form {
	var groups []*huh.Group

	for _, name := range f.players {
		window, owned := new(string), new(string)
		f.windows[name], f.owned[name] = window, owned
		groups = append(groups, huh.NewGroup(
			huh.NewInput().
				Title(name).
				Description("HH:mm-HH:mm, blank for the whole session").
				Value(window).
				Validate(func(s string) error {
					_, _, err := parseWindow(s)
					return err
				}),
			huh.NewInput().
				Title(f.t.Text(i18n.LabelConsumables)).
				Description("NAME:QTY:COST, comma separated").
				Placeholder("Coke:2:15").
				Value(owned).
				Validate(validateOwnedList),
		))
	}

	if f.policy == string(allocation.PolicyCatalog) {
		var inputs []huh.Field
		for _, item := range f.template.Consumables {
			value := new(string)
			f.items[item.Name] = value
			inputs = append(inputs, huh.NewInput().
				Title(item.Name).
				Description("QTY:COST or QTY:COST:PLAYER, blank if nobody had any").
				Value(value))
		}
		if len(inputs) > 0 {
			groups = append(groups, huh.NewGroup(inputs...).Title(f.t.Text(i18n.LabelSharedItems)))
		}
	}

	if len(groups) == 0 {
		return nil
	}
	return huh.NewForm(groups...).WithTheme(huhTheme()).WithShowHelp(false)
}

// input flattens the answers into the same shape the flags produce
func (f *billForm) input() *billInput {
	in := &billInput{total: f.total, start: f.start, end: f.end}

	for _, name := range f.players {
		player := name
		if window := f.windows[name]; window != nil && strings.TrimSpace(*window) != "" {
			player = name + "=" + *window
		}
		in.players = append(in.players, player)

		if owned := f.owned[name]; owned != nil {
			for _, entry := range splitList(*owned) {
				in.owned = append(in.owned, name+":"+entry)
			}
		}
	}

	for _, item := range f.template.Consumables {
		if value := f.items[item.Name]; value != nil && strings.TrimSpace(*value) != "" {
			in.items = append(in.items, item.Name+":"+strings.TrimSpace(*value))
		}
	}

	return in
}

// run shows both forms and returns the collected bill and policy
func (f *billForm) run(ctx context.Context) (*billInput, string, error) {
	if err := f.sessionForm().RunWithContext(ctx); err != nil {
		return nil, "", err
	}
	if detail := f.detailForm(); detail != nil {
		if err := detail.RunWithContext(ctx); err != nil {
			return nil, "", err
		}
	}
	return f.input(), f.policy, nil
}

func splitList(raw string) []string {
	var out []string
	for _, entry := range strings.Split(raw, ",") {
		if entry = strings.TrimSpace(entry); entry != "" {
			out = append(out, entry)
		}
	}
	return out
}

func validateOwnedList(raw string) error {
	for _, entry := range splitList(raw) {
		if _, err := splitFields(entry, "consumable", 3, 3); err != nil {
			return fmt.Errorf("%w (want NAME:QTY:COST)", err)
		}
	}
	return nil
}
