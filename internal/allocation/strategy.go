package allocation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// PolicyType defines the cost-decomposition rule used to allocate a bill
type PolicyType string

const (
	// PolicyOwned: every participant carries their own consumables, which are
	// carved out of the total before the time-proportional split.
	PolicyOwned PolicyType = "OWNED"
	// PolicyCatalog: one item catalog where each item is shared by everyone
	// (AssignAll) or belongs to one participant.
	PolicyCatalog PolicyType = "CATALOG"
)

// AssignAll tags a catalog item as shared by every participant
const AssignAll = "ALL"

// Item is a consumable line with its cost already multiplied out (quantity * unit cost)
type Item struct {
	Name       string
	Cost       decimal.Decimal
	AssignedTo string // catalog only: AssignAll or a participant name
}

// Participant is one participating person with their attended minutes
type Participant struct {
	Name        string
	Minutes     int
	Consumables []Item // owned policy only
}

// Input is everything a policy needs. Callers pass only participating
// participants and selected items.
type Input struct {
	TotalAmount  decimal.Decimal
	Participants []Participant
	Catalog      []Item
}

// Share is the computed amount for a single participant
type Share struct {
	Name        string          `json:"name"`
	Minutes     int             `json:"minutes"`
	Weight      decimal.Decimal `json:"weight"`
	BaseShare   decimal.Decimal `json:"base_share"`
	SharedShare decimal.Decimal `json:"shared_share"`
	Individual  decimal.Decimal `json:"individual"`
	Exact       decimal.Decimal `json:"exact"`
	Rounded     decimal.Decimal `json:"rounded"`
}

// Result is the outcome of an allocation
type Result struct {
	Policy           PolicyType      `json:"policy"`
	TotalAmount      decimal.Decimal `json:"total_amount"`
	TotalMinutes     int             `json:"total_minutes"`
	SharedTotal      decimal.Decimal `json:"shared_total"`
	ConsumablesTotal decimal.Decimal `json:"consumables_total"`
	BaseAmount       decimal.Decimal `json:"base_amount"`
	Distributed      decimal.Decimal `json:"distributed"`
	// Overflow is set when consumables alone exceed the total amount, so the
	// shares add up to the consumables rather than the total.
	Overflow bool    `json:"overflow"`
	Shares   []Share `json:"shares"`
}

// Policy is the interface that all allocation policies must implement
type Policy interface {
	// Allocate computes every participant's share
	Allocate(in Input) (*Result, error)

	// Type returns the type identifier for this policy
	Type() PolicyType

	// Validate checks if the inputs are valid for this policy
	Validate(in Input) error
}

// Factory creates allocation policies based on the requested type
type Factory struct{}

// NewPolicyFactory creates a new factory instance
func NewPolicyFactory() *Factory {
	return &Factory{}
}

// Create returns the policy implementation for the given type
func (f *Factory) Create(policyType PolicyType) (Policy, error) {
	switch policyType {
	case PolicyOwned:
		return &OwnedPolicy{}, nil
	case PolicyCatalog:
		return &CatalogPolicy{}, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownPolicy, policyType)
	}
}

// CreateFromString creates a policy from a string type (useful for API requests).
// An empty string selects the owned policy.
func (f *Factory) CreateFromString(policyType string) (Policy, error) {
	policyType = strings.ToUpper(strings.TrimSpace(policyType))
	if policyType == "" {
		return f.Create(PolicyOwned)
	}
	return f.Create(PolicyType(policyType))
}

var (
	ErrUnknownPolicy        = errors.New("unknown allocation policy")
	ErrNegativeAmount       = errors.New("amounts cannot be negative")
	ErrNegativeMinutes      = errors.New("attended minutes cannot be negative")
	ErrDuplicateParticipant = errors.New("participant names must be unique")
)

// validateCommon checks the rules shared by every policy
func validateCommon(in Input) error {
	if in.TotalAmount.IsNegative() {
		return ErrNegativeAmount
	}

	seen := make(map[string]bool, len(in.Participants))
	for _, p := range in.Participants {
		if seen[p.Name] {
			return fmt.Errorf("%w: %s", ErrDuplicateParticipant, p.Name)
		}
		seen[p.Name] = true

		if p.Minutes < 0 {
			return fmt.Errorf("%w: %s", ErrNegativeMinutes, p.Name)
		}
		for _, item := range p.Consumables {
			if item.Cost.IsNegative() {
				return ErrNegativeAmount
			}
		}
	}
	for _, item := range in.Catalog {
		if item.Cost.IsNegative() {
			return ErrNegativeAmount
		}
	}
	return nil
}

// totalMinutes sums attended minutes over all participants
func totalMinutes(participants []Participant) int {
	total := 0
	for _, p := range participants {
		total += p.Minutes
	}
	return total
}

// sumItems adds up item costs
func sumItems(items []Item) decimal.Decimal {
	sum := decimal.Zero
	for _, item := range items {
		sum = sum.Add(item.Cost)
	}
	return sum
}

// proportion returns amount * minutes / total without dividing twice
func proportion(amount decimal.Decimal, minutes, total int) decimal.Decimal {
	if total == 0 {
		return decimal.Zero
	}
	return amount.Mul(decimal.NewFromInt(int64(minutes))).Div(decimal.NewFromInt(int64(total)))
}

// weight returns minutes / total
func weight(minutes, total int) decimal.Decimal {
	return proportion(decimal.NewFromInt(1), minutes, total)
}

// zeroShares is the degenerate outcome when nobody attended any minutes
func zeroShares(participants []Participant) []Share {
	shares := make([]Share, len(participants))
	for i, p := range participants {
		shares[i] = Share{
			Name:        p.Name,
			Minutes:     p.Minutes,
			Weight:      decimal.Zero,
			BaseShare:   decimal.Zero,
			SharedShare: decimal.Zero,
			Individual:  decimal.Zero,
			Exact:       decimal.Zero,
			Rounded:     decimal.Zero,
		}
	}
	return shares
}

// distributed sums the exact shares
func distributed(shares []Share) decimal.Decimal {
	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s.Exact)
	}
	return sum
}
