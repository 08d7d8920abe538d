package allocation

import "github.com/shopspring/decimal"

// =============================================================================
// OWNED POLICY
// Each participant pays for their own consumables; the rest of the total is
// split by attended minutes.
// =============================================================================

// OwnedPolicy implements the Policy interface for per-participant consumables
type OwnedPolicy struct{}

// Type returns the policy type identifier
func (p *OwnedPolicy) Type() PolicyType {
	return PolicyOwned
}

// Validate checks if the inputs are valid for the owned policy
func (p *OwnedPolicy) Validate(in Input) error {
	return validateCommon(in)
}

// Allocate carves every participant's consumables out of the total and splits
// what remains by attended minutes:
//
//	base  = max(0, total - sum(consumables))
//	share = base * minutes / totalMinutes + own consumables
func (p *OwnedPolicy) Allocate(in Input) (*Result, error) {
	if err := p.Validate(in); err != nil {
		return nil, err
	}

	minutes := totalMinutes(in.Participants)

	own := make([]decimal.Decimal, len(in.Participants))
	consumables := decimal.Zero
	for i, participant := range in.Participants {
		own[i] = sumItems(participant.Consumables)
		consumables = consumables.Add(own[i])
	}

	base := in.TotalAmount.Sub(consumables)
	if base.IsNegative() {
		base = decimal.Zero
	}

	result := &Result{
		Policy:           PolicyOwned,
		TotalAmount:      in.TotalAmount,
		TotalMinutes:     minutes,
		SharedTotal:      decimal.Zero,
		ConsumablesTotal: consumables,
		BaseAmount:       base,
		Overflow:         consumables.GreaterThan(in.TotalAmount),
	}

	if minutes == 0 {
		result.Shares = zeroShares(in.Participants)
		result.Distributed = decimal.Zero
		return result, nil
	}

	shares := make([]Share, len(in.Participants))
	for i, participant := range in.Participants {
		baseShare := proportion(base, participant.Minutes, minutes)
		shares[i] = Share{
			Name:        participant.Name,
			Minutes:     participant.Minutes,
			Weight:      weight(participant.Minutes, minutes),
			BaseShare:   baseShare,
			SharedShare: decimal.Zero,
			Individual:  own[i],
			Exact:       baseShare.Add(own[i]),
		}
	}

	result.Shares = roundShares(shares)
	result.Distributed = distributed(result.Shares)
	return result, nil
}
