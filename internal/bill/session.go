package bill

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Common errors
var (
	ErrParticipantNotFound  = errors.New("participant not found")
	ErrUnknownParticipant   = errors.New("item assigned to unknown participant")
	ErrDuplicateParticipant = errors.New("participant names must be unique")
	ErrEmptyParticipantName = errors.New("participant name is required")
	ErrEmptyConsumableName  = errors.New("consumable name is required")
)

// New creates a bill for a fixed roster. Nobody is participating yet and every
// catalog item starts unselected, quantity 1, shared by everyone.
func New(roster []string, catalog []CatalogEntry) *Bill {
	b := &Bill{
		ID:           uuid.New().String(),
		TotalAmount:  decimal.Zero,
		Participants: make([]Participant, 0, len(roster)),
		Consumables:  make([]ConsumableItem, 0, len(catalog)),
	}
	for _, name := range roster {
		b.Participants = append(b.Participants, Participant{Name: name})
	}
	for _, entry := range catalog {
		b.Consumables = append(b.Consumables, ConsumableItem{
			Name:        entry.Name,
			Quantity:    1,
			CostPerUnit: nonNegative(entry.CostPerUnit),
			AssignedTo:  AssignAll,
		})
	}
	return b
}

// Validate checks the roster is usable
func (b *Bill) Validate() error {
	seen := make(map[string]bool, len(b.Participants))
	for _, p := range b.Participants {
		if strings.TrimSpace(p.Name) == "" {
			return ErrEmptyParticipantName
		}
		if seen[p.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateParticipant, p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// Participant returns the roster entry with the given name
func (b *Bill) Participant(name string) (*Participant, error) {
	for i := range b.Participants {
		if b.Participants[i].Name == name {
			return &b.Participants[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrParticipantNotFound, name)
}

// ParticipatingNames lists participating names in roster order
func (b *Bill) ParticipatingNames() []string {
	var names []string
	for _, p := range b.Participants {
		if p.Participated {
			names = append(names, p.Name)
		}
	}
	return names
}

// SetTotalAmount stores the amount to distribute. Negative amounts become 0.
func (b *Bill) SetTotalAmount(amount decimal.Decimal) {
	b.TotalAmount = nonNegative(amount)
}

// SetSessionWindow stores the overall session bounds and back-fills
// participants that have no times of their own.
func (b *Bill) SetSessionWindow(start, end string) {
	b.SessionStart = strings.TrimSpace(start)
	b.SessionEnd = strings.TrimSpace(end)
	b.Backfill()
}

// Backfill copies the session bounds into the empty start/end fields of every
// participating participant. Times that are already set are left alone, and
// so is everyone who is not participating.
func (b *Bill) Backfill() {
	if b.SessionStart == "" && b.SessionEnd == "" {
		return
	}
	for i := range b.Participants {
		if b.Participants[i].Participated {
			b.fillTimes(&b.Participants[i])
		}
	}
}

func (b *Bill) fillTimes(p *Participant) {
	if p.StartTime == "" {
		p.StartTime = b.SessionStart
	}
	if p.EndTime == "" {
		p.EndTime = b.SessionEnd
	}
}

// SetParticipated toggles participation. Joining defaults any empty time to
// the session bounds.
func (b *Bill) SetParticipated(name string, participated bool) error {
	p, err := b.Participant(name)
	if err != nil {
		return err
	}
	joining := participated && !p.Participated
	p.Participated = participated
	if joining {
		b.fillTimes(p)
	}
	return nil
}

// SetParticipantTimes overrides a participant's own attendance window
func (b *Bill) SetParticipantTimes(name, start, end string) error {
	p, err := b.Participant(name)
	if err != nil {
		return err
	}
	p.StartTime = strings.TrimSpace(start)
	p.EndTime = strings.TrimSpace(end)
	return nil
}

// SetConsumable updates a catalog item, adding it when the name is new.
// An empty assignee means the item is shared by everyone.
func (b *Bill) SetConsumable(name string, selected bool, quantity int, costPerUnit decimal.Decimal, assignedTo string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyConsumableName
	}

	assignedTo = strings.TrimSpace(assignedTo)
	if assignedTo == "" {
		assignedTo = AssignAll
	}
	if assignedTo != AssignAll {
		if _, err := b.Participant(assignedTo); err != nil {
			return fmt.Errorf("%w: %s", ErrUnknownParticipant, assignedTo)
		}
	}

	item := ConsumableItem{
		Name:        name,
		Selected:    selected,
		Quantity:    max(quantity, 0),
		CostPerUnit: nonNegative(costPerUnit),
		AssignedTo:  assignedTo,
	}
	for i := range b.Consumables {
		if b.Consumables[i].Name == name {
			b.Consumables[i] = item
			return nil
		}
	}
	b.Consumables = append(b.Consumables, item)
	return nil
}

// AddParticipantConsumable appends an item owned by one participant
func (b *Bill) AddParticipantConsumable(name string, item ConsumableItem) error {
	p, err := b.Participant(name)
	if err != nil {
		return err
	}
	if strings.TrimSpace(item.Name) == "" {
		return ErrEmptyConsumableName
	}
	item.Quantity = max(item.Quantity, 0)
	item.CostPerUnit = nonNegative(item.CostPerUnit)
	item.AssignedTo = ""
	p.Consumables = append(p.Consumables, item)
	return nil
}

// ClearParticipantConsumables drops every item owned by one participant
func (b *Bill) ClearParticipantConsumables(name string) error {
	p, err := b.Participant(name)
	if err != nil {
		return err
	}
	p.Consumables = nil
	return nil
}
