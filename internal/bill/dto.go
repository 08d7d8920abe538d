package bill

import (
	"github.com/shopspring/decimal"

	"github.com/nashbilliard/billsplit/internal/i18n"
)

// SummaryResponse represents the computed breakdown for a bill
type SummaryResponse struct {
	BillID             string             `json:"bill_id"`
	Policy             string             `json:"policy"`
	Locale             string             `json:"locale"`
	SessionMinutes     int                `json:"session_minutes"`
	SessionDuration    string             `json:"session_duration"`
	ParticipantCount   int                `json:"participant_count"`
	TotalAmount        decimal.Decimal    `json:"total_amount"`
	TotalAmountDisplay string             `json:"total_amount_display"`
	SharedTotal        decimal.Decimal    `json:"shared_total"`
	SharedTotalDisplay string             `json:"shared_total_display"`
	ConsumablesTotal   decimal.Decimal    `json:"consumables_total"`
	BaseAmount         decimal.Decimal    `json:"base_amount"`
	Distributed        decimal.Decimal    `json:"distributed"`
	TotalMinutes       int                `json:"total_minutes"`
	Shares             []*ShareResponse   `json:"shares"`
	Warnings           []*WarningResponse `json:"warnings,omitempty"`
}

// ShareResponse represents one participant's share
type ShareResponse struct {
	Name              string          `json:"name"`
	Label             string          `json:"label"`
	Minutes           int             `json:"minutes"`
	Weight            decimal.Decimal `json:"weight"`
	BaseShare         decimal.Decimal `json:"base_share"`
	SharedShare       decimal.Decimal `json:"shared_share"`
	Individual        decimal.Decimal `json:"individual"`
	IndividualDisplay string          `json:"individual_display,omitempty"`
	Exact             decimal.Decimal `json:"exact"`
	Rounded           decimal.Decimal `json:"rounded"`
	Display           string          `json:"display"`
}

// WarningResponse represents a localized summary warning
type WarningResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

var warningLabels = map[string]i18n.Label{
	WarningConsumablesOverrun: i18n.LabelConsumablesOverrun,
	WarningNoAttendance:       i18n.LabelNoAttendance,
	WarningOvernight:          i18n.LabelOvernight,
	WarningItemsIgnored:       i18n.LabelItemsIgnored,
}

// ToResponse converts a Summary to a SummaryResponse DTO in the translator's language
func (s *Summary) ToResponse(t *i18n.Translator) *SummaryResponse {
	resp := &SummaryResponse{
		BillID:             s.BillID,
		Policy:             string(s.Policy),
		Locale:             t.Lang(),
		SessionMinutes:     s.SessionMinutes,
		SessionDuration:    t.Text(i18n.LabelMinutes, s.SessionMinutes),
		ParticipantCount:   s.ParticipantCount,
		TotalAmount:        s.TotalAmount,
		TotalAmountDisplay: i18n.FormatAmount(s.TotalAmount),
		SharedTotal:        s.SharedTotal,
		SharedTotalDisplay: i18n.FormatAmount(s.SharedTotal),
		ConsumablesTotal:   s.ConsumablesTotal,
		BaseAmount:         s.BaseAmount,
		Distributed:        s.Distributed.Round(2),
		TotalMinutes:       s.TotalMinutes,
		Shares:             make([]*ShareResponse, len(s.Shares)),
	}

	for i, share := range s.Shares {
		sr := &ShareResponse{
			Name:        share.Name,
			Label:       t.Text(i18n.LabelPlayerMinutes, share.Name, share.Minutes),
			Minutes:     share.Minutes,
			Weight:      share.Weight.Round(4),
			BaseShare:   share.BaseShare.Round(2),
			SharedShare: share.SharedShare.Round(2),
			Individual:  share.Individual,
			Exact:       share.Exact.Round(2),
			Rounded:     share.Rounded,
			Display:     i18n.FormatAmount(share.Rounded),
		}
		if share.Individual.IsPositive() {
			sr.IndividualDisplay = t.Text(i18n.LabelIndividualItems, i18n.FormatAmount(share.Individual))
		}
		resp.Shares[i] = sr
	}

	for _, code := range s.Warnings {
		message := code
		if label, ok := warningLabels[code]; ok {
			message = t.Text(label)
		}
		resp.Warnings = append(resp.Warnings, &WarningResponse{Code: code, Message: message})
	}

	return resp
}
