package allocation

import "github.com/shopspring/decimal"

// =============================================================================
// CATALOG POLICY
// A single item list where each item is shared by everyone (ALL) or tagged to
// one participant. Shared items are split equally, tagged items go to their
// owner, and the remainder of the total is split by attended minutes.
// =============================================================================

// CatalogPolicy implements the Policy interface for a shared item catalog
type CatalogPolicy struct{}

// Type returns the policy type identifier
func (p *CatalogPolicy) Type() PolicyType {
	return PolicyCatalog
}

// Validate checks if the inputs are valid for the catalog policy
func (p *CatalogPolicy) Validate(in Input) error {
	return validateCommon(in)
}

// Allocate splits the bill so that shares add up to the total amount:
//
//	base  = max(0, total - shared - sum(individual))
//	share = base * minutes / totalMinutes + shared / participants + individual
//
// Items tagged to someone who is not participating are ignored.
func (p *CatalogPolicy) Allocate(in Input) (*Result, error) {
	if err := p.Validate(in); err != nil {
		return nil, err
	}

	minutes := totalMinutes(in.Participants)

	individual := make(map[string]decimal.Decimal, len(in.Participants))
	for _, participant := range in.Participants {
		individual[participant.Name] = decimal.Zero
	}

	shared := decimal.Zero
	for _, item := range in.Catalog {
		if item.AssignedTo == AssignAll {
			shared = shared.Add(item.Cost)
			continue
		}
		if sum, ok := individual[item.AssignedTo]; ok {
			individual[item.AssignedTo] = sum.Add(item.Cost)
		}
	}

	consumables := shared
	for _, sum := range individual {
		consumables = consumables.Add(sum)
	}

	base := in.TotalAmount.Sub(consumables)
	if base.IsNegative() {
		base = decimal.Zero
	}

	result := &Result{
		Policy:           PolicyCatalog,
		TotalAmount:      in.TotalAmount,
		TotalMinutes:     minutes,
		SharedTotal:      shared,
		ConsumablesTotal: consumables,
		BaseAmount:       base,
		Overflow:         consumables.GreaterThan(in.TotalAmount),
	}

	if minutes == 0 {
		result.Shares = zeroShares(in.Participants)
		result.Distributed = decimal.Zero
		return result, nil
	}

	sharedShare := shared.Div(decimal.NewFromInt(int64(len(in.Participants))))

	shares := make([]Share, len(in.Participants))
	for i, participant := range in.Participants {
		baseShare := proportion(base, participant.Minutes, minutes)
		own := individual[participant.Name]
		shares[i] = Share{
			Name:        participant.Name,
			Minutes:     participant.Minutes,
			Weight:      weight(participant.Minutes, minutes),
			BaseShare:   baseShare,
			SharedShare: sharedShare,
			Individual:  own,
			Exact:       baseShare.Add(sharedShare).Add(own),
		}
	}

	result.Shares = roundShares(shares)
	result.Distributed = distributed(result.Shares)
	return result, nil
}
