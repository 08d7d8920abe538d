package bill

import (
	"github.com/shopspring/decimal"

	"github.com/nashbilliard/billsplit/internal/allocation"
)

// AssignAll tags a catalog item as shared by every participant
const AssignAll = allocation.AssignAll

// Bill is the single mutable aggregate for one table session.
// Monetary values are in thousands ("k").
type Bill struct {
	ID           string           `json:"id"`
	TotalAmount  decimal.Decimal  `json:"total_amount"`
	SessionStart string           `json:"session_start"`
	SessionEnd   string           `json:"session_end"`
	Participants []Participant    `json:"participants"`
	Consumables  []ConsumableItem `json:"consumables"`
}

// Participant is one person on the roster.
// StartTime and EndTime only matter while Participated is true.
type Participant struct {
	Name         string           `json:"name"`
	Participated bool             `json:"participated"`
	StartTime    string           `json:"start_time"`
	EndTime      string           `json:"end_time"`
	Consumables  []ConsumableItem `json:"consumables,omitempty"`
}

// ConsumableItem is a purchasable item. Catalog items carry AssignedTo;
// items owned by a participant leave it empty.
type ConsumableItem struct {
	Name        string          `json:"name"`
	Selected    bool            `json:"selected"`
	Quantity    int             `json:"quantity"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
	AssignedTo  string          `json:"assigned_to,omitempty"`
}

// CatalogEntry seeds the default consumable catalog
type CatalogEntry struct {
	Name        string          `json:"name"`
	CostPerUnit decimal.Decimal `json:"cost_per_unit"`
}

// Cost is quantity * cost per unit, or zero when the item is not selected
func (c ConsumableItem) Cost() decimal.Decimal {
	if !c.Selected || c.Quantity <= 0 || c.CostPerUnit.IsNegative() {
		return decimal.Zero
	}
	return c.CostPerUnit.Mul(decimal.NewFromInt(int64(c.Quantity)))
}
