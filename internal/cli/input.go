package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/nashbilliard/billsplit/internal/bill"
	"github.com/nashbilliard/billsplit/internal/timeclock"
)

// ErrInvalidInput marks a flag or form value that cannot be read at all.
// Numbers inside a well-formed value are coerced instead.
var ErrInvalidInput = errors.New("invalid input")

// billInput is the flat description of a bill shared by flags and the form.
//
//	players: NAME or NAME=HH:mm-HH:mm
//	items:   NAME:QTY:COST or NAME:QTY:COST:PLAYER
//	owned:   PLAYER:NAME:QTY:COST
type billInput struct {
	total   string
	start   string
	end     string
	players []string
	items   []string
	owned   []string
}

func (in *billInput) empty() bool {
	return in.total == "" && in.start == "" && in.end == "" &&
		len(in.players) == 0 && len(in.items) == 0 && len(in.owned) == 0
}

// apply layers the input over a bill. Fields left blank keep the bill's
// values, and a player's owned items replace the ones already on the bill.
func (in *billInput) apply(b *bill.Bill) error {
	if in.total != "" {
		b.SetTotalAmount(bill.ParseAmount(in.total))
	}
	if in.start != "" || in.end != "" {
		start, end := in.start, in.end
		if start == "" {
			start = b.SessionStart
		}
		if end == "" {
			end = b.SessionEnd
		}
		b.SetSessionWindow(start, end)
	}

	for _, raw := range in.players {
		name, start, end, err := parsePlayer(raw)
		if err != nil {
			return err
		}
		if err := b.SetParticipated(name, true); err != nil {
			return err
		}
		if start != "" || end != "" {
			if err := setWindow(b, name, start, end); err != nil {
				return err
			}
		}
	}

	for _, raw := range in.items {
		fields, err := splitFields(raw, "item", 3, 4)
		if err != nil {
			return err
		}
		assignee := bill.AssignAll
		if len(fields) == 4 {
			assignee = fields[3]
		}
		err = b.SetConsumable(fields[0], true, bill.ParseQuantity(fields[1]), bill.ParseAmount(fields[2]), assignee)
		if err != nil {
			return err
		}
	}

	replaced := make(map[string]bool)
	for _, raw := range in.owned {
		fields, err := splitFields(raw, "owned", 4, 4)
		if err != nil {
			return err
		}
		if !replaced[fields[0]] {
			if err := b.ClearParticipantConsumables(fields[0]); err != nil {
				return err
			}
			replaced[fields[0]] = true
		}
		err = b.AddParticipantConsumable(fields[0], bill.ConsumableItem{
			Name:        fields[1],
			Selected:    true,
			Quantity:    bill.ParseQuantity(fields[2]),
			CostPerUnit: bill.ParseAmount(fields[3]),
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// setWindow overrides only the bounds that were given. A blank side keeps
// the value back-filled from the session window.
func setWindow(b *bill.Bill, name, start, end string) error {
	p, err := b.Participant(name)
	if err != nil {
		return err
	}
	if start == "" {
		start = p.StartTime
	}
	if end == "" {
		end = p.EndTime
	}
	return b.SetParticipantTimes(name, start, end)
}

// parsePlayer reads NAME, NAME=HH:mm-HH:mm or a half-open NAME=HH:mm- / NAME=-HH:mm
func parsePlayer(raw string) (name, start, end string, err error) {
	name, window, hasWindow := strings.Cut(raw, "=")
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", "", fmt.Errorf("%w: player %q has no name", ErrInvalidInput, raw)
	}
	if !hasWindow {
		return name, "", "", nil
	}
	start, end, err = parseWindow(window)
	if err != nil {
		return "", "", "", fmt.Errorf("player %s: %w", name, err)
	}
	return name, start, end, nil
}

// parseWindow reads HH:mm-HH:mm. Blank means no window and either side may be blank.
func parseWindow(raw string) (start, end string, err error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", "", nil
	}
	start, end, ok := strings.Cut(raw, "-")
	if !ok {
		return "", "", fmt.Errorf("%w: window %q, want HH:mm-HH:mm", ErrInvalidInput, raw)
	}
	start, end = strings.TrimSpace(start), strings.TrimSpace(end)
	if err := validateClock(start); err != nil {
		return "", "", err
	}
	if err := validateClock(end); err != nil {
		return "", "", err
	}
	return start, end, nil
}

func splitFields(raw, kind string, minFields, maxFields int) ([]string, error) {
	fields := strings.Split(raw, ":")
	for i := range fields {
		fields[i] = strings.TrimSpace(fields[i])
	}
	if len(fields) < minFields || len(fields) > maxFields || fields[0] == "" {
		return nil, fmt.Errorf("%w: %s %q", ErrInvalidInput, kind, raw)
	}
	return fields, nil
}

// validateClock accepts blank or HH:mm
func validateClock(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, ok := timeclock.Parse(s); !ok {
		return fmt.Errorf("%w: time %q, want HH:mm", ErrInvalidInput, s)
	}
	return nil
}
