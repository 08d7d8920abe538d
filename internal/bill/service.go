package bill

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/shopspring/decimal"

	"github.com/nashbilliard/billsplit/internal/allocation"
	"github.com/nashbilliard/billsplit/internal/timeclock"
)

// Warning codes attached to a summary
const (
	WarningConsumablesOverrun = "consumables_exceed_total"
	WarningNoAttendance       = "no_attendance"
	WarningOvernight          = "overnight_session"
	WarningItemsIgnored       = "items_ignored_by_policy"
)

// ErrInvalidBill wraps roster problems that make a bill unusable
var ErrInvalidBill = errors.New("invalid bill")

// Summary is the computed breakdown for a bill
type Summary struct {
	BillID           string
	Policy           allocation.PolicyType
	SessionMinutes   int
	ParticipantCount int
	TotalAmount      decimal.Decimal
	SharedTotal      decimal.Decimal
	ConsumablesTotal decimal.Decimal
	BaseAmount       decimal.Decimal
	Distributed      decimal.Decimal
	TotalMinutes     int
	Shares           []allocation.Share
	Warnings         []string
}

// Options configures the bill service
type Options struct {
	DefaultPolicy allocation.PolicyType
	Overnight     timeclock.OvernightPolicy
	Roster        []string
	Catalog       []CatalogEntry
}

// Service handles bill business logic
type Service struct {
	policies *allocation.Factory
	opts     Options
}

// NewService creates a new bill service with the policy factory injected
func NewService(policies *allocation.Factory, opts Options) *Service {
	if opts.DefaultPolicy == "" {
		opts.DefaultPolicy = allocation.PolicyOwned
	}
	if opts.Overnight == "" {
		opts.Overnight = timeclock.OvernightWrap
	}
	return &Service{
		policies: policies,
		opts:     opts,
	}
}

// DefaultPolicy returns the policy used when a request names none
func (s *Service) DefaultPolicy() allocation.PolicyType {
	return s.opts.DefaultPolicy
}

// Template returns a fresh bill for the configured roster and catalog
func (s *Service) Template() *Bill {
	return New(s.opts.Roster, s.opts.Catalog)
}

// Backfill applies the session-window defaults to the given bill and returns it
func (s *Service) Backfill(b *Bill) *Bill {
	b.Backfill()
	return b
}

// Minutes returns the attended minutes for a participant, or 0 when they are
// not participating
func (s *Service) Minutes(p Participant) int {
	if !p.Participated {
		return 0
	}
	return timeclock.Duration(p.StartTime, p.EndTime, s.opts.Overnight)
}

// SessionMinutes returns the length of the overall session window
func (s *Service) SessionMinutes(b *Bill) int {
	return timeclock.Duration(b.SessionStart, b.SessionEnd, s.opts.Overnight)
}

// Input converts a bill into allocation input. Non-participants and
// unselected items are left out, and negative numbers are treated as 0.
func (s *Service) Input(b *Bill) allocation.Input {
	in := allocation.Input{TotalAmount: nonNegative(b.TotalAmount)}

	for _, p := range b.Participants {
		if !p.Participated {
			continue
		}
		participant := allocation.Participant{
			Name:    p.Name,
			Minutes: s.Minutes(p),
		}
		for _, item := range p.Consumables {
			if item.Selected {
				participant.Consumables = append(participant.Consumables, allocation.Item{Name: item.Name, Cost: item.Cost()})
			}
		}
		in.Participants = append(in.Participants, participant)
	}

	for _, item := range b.Consumables {
		if !item.Selected {
			continue
		}
		assignedTo := item.AssignedTo
		if assignedTo == "" {
			assignedTo = AssignAll
		}
		in.Catalog = append(in.Catalog, allocation.Item{
			Name:       item.Name,
			Cost:       item.Cost(),
			AssignedTo: assignedTo,
		})
	}

	return in
}

// Summarize computes every participant's share using the named policy.
// An empty policy selects the configured default.
func (s *Service) Summarize(ctx context.Context, b *Bill, policyType string) (*Summary, error) {
	if b == nil {
		return nil, fmt.Errorf("%w: missing bill", ErrInvalidBill)
	}
	if err := b.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBill, err)
	}

	if policyType == "" {
		policyType = string(s.opts.DefaultPolicy)
	}
	policy, err := s.policies.CreateFromString(policyType)
	if err != nil {
		return nil, err
	}

	in := s.Input(b)
	result, err := policy.Allocate(in)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate bill: %w", err)
	}

	summary := &Summary{
		BillID:           b.ID,
		Policy:           result.Policy,
		SessionMinutes:   s.SessionMinutes(b),
		ParticipantCount: len(in.Participants),
		TotalAmount:      result.TotalAmount,
		SharedTotal:      result.SharedTotal,
		ConsumablesTotal: result.ConsumablesTotal,
		BaseAmount:       result.BaseAmount,
		Distributed:      result.Distributed,
		TotalMinutes:     result.TotalMinutes,
		Shares:           result.Shares,
		Warnings:         s.warnings(b, in, result),
	}

	for _, share := range summary.Shares {
		slog.DebugContext(ctx, "Participant share",
			"bill_id", b.ID,
			"participant", share.Name,
			"minutes", share.Minutes,
			"exact", share.Exact.StringFixed(2),
			"rounded", share.Rounded.String(),
		)
	}
	slog.InfoContext(ctx, "Bill summarized",
		"bill_id", b.ID,
		"policy", summary.Policy,
		"participants", summary.ParticipantCount,
		"total_minutes", summary.TotalMinutes,
		"total_amount", summary.TotalAmount.String(),
		"warnings", summary.Warnings,
	)

	return summary, nil
}

func (s *Service) warnings(b *Bill, in allocation.Input, result *allocation.Result) []string {
	var warnings []string
	if result.Overflow {
		warnings = append(warnings, WarningConsumablesOverrun)
	}
	if len(in.Participants) > 0 && result.TotalMinutes == 0 {
		warnings = append(warnings, WarningNoAttendance)
	}
	if crossesMidnight(b.SessionStart, b.SessionEnd) {
		warnings = append(warnings, WarningOvernight)
	} else {
		for _, p := range b.Participants {
			if p.Participated && crossesMidnight(p.StartTime, p.EndTime) {
				warnings = append(warnings, WarningOvernight)
				break
			}
		}
	}
	if ignoresItems(result.Policy, in) {
		warnings = append(warnings, WarningItemsIgnored)
	}
	return warnings
}

// ignoresItems reports whether the input carries items the policy never reads.
// OWNED reads only participant items and CATALOG only catalog items.
func ignoresItems(policy allocation.PolicyType, in allocation.Input) bool {
	switch policy {
	case allocation.PolicyOwned:
		return len(in.Catalog) > 0
	case allocation.PolicyCatalog:
		for _, p := range in.Participants {
			if len(p.Consumables) > 0 {
				return true
			}
		}
	}
	return false
}

func crossesMidnight(start, end string) bool {
	from, ok := timeclock.Parse(start)
	if !ok {
		return false
	}
	to, ok := timeclock.Parse(end)
	return ok && to < from
}
