package allocation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogPolicy_Allocate(t *testing.T) {
	tests := []struct {
		name         string
		input        Input
		wantErr      error
		validateFunc func(t *testing.T, result *Result)
	}{
		{
			name: "shared and individual items",
			input: Input{
				TotalAmount: d("360"),
				Participants: []Participant{
					{Name: "Nam", Minutes: 120},
					{Name: "Chung", Minutes: 60},
				},
				Catalog: []Item{
					{Name: "Water", Cost: d("40"), AssignedTo: AssignAll},
					{Name: "Noodle", Cost: d("50"), AssignedTo: "Chung"},
				},
			},
			validateFunc: func(t *testing.T, result *Result) {
				// base = 360 - 40 - 50 = 270
				// Nam:   270 * 120/180 + 20      = 200
				// Chung: 270 * 60/180  + 20 + 50 = 160
				assertAmount(t, "40", result.SharedTotal)
				assertAmount(t, "90", result.ConsumablesTotal)
				assertAmount(t, "270", result.BaseAmount)

				nam := shareByName(t, result, "Nam")
				assertAmount(t, "180", nam.BaseShare)
				assertAmount(t, "20", nam.SharedShare)
				assertAmount(t, "0", nam.Individual)
				assertAmount(t, "200", nam.Exact)

				chung := shareByName(t, result, "Chung")
				assertAmount(t, "50", chung.Individual)
				assertAmount(t, "160", chung.Exact)

				assertAmount(t, "360", result.Distributed)
			},
		},
		{
			name: "items tagged to non-participants are ignored",
			input: Input{
				TotalAmount: d("100"),
				Participants: []Participant{
					{Name: "Nam", Minutes: 30},
					{Name: "Huy", Minutes: 30},
				},
				Catalog: []Item{
					{Name: "Coke", Cost: d("30"), AssignedTo: "Tuan"},
				},
			},
			validateFunc: func(t *testing.T, result *Result) {
				assertAmount(t, "0", result.ConsumablesTotal)
				assertAmount(t, "50", shareByName(t, result, "Nam").Exact)
				assertAmount(t, "50", shareByName(t, result, "Huy").Exact)
			},
		},
		{
			name: "shared items split equally regardless of minutes",
			input: Input{
				TotalAmount: d("30"),
				Participants: []Participant{
					{Name: "Nam", Minutes: 170},
					{Name: "Huy", Minutes: 10},
					{Name: "Hieu", Minutes: 0},
				},
				Catalog: []Item{{Name: "Bread", Cost: d("30"), AssignedTo: AssignAll}},
			},
			validateFunc: func(t *testing.T, result *Result) {
				for _, s := range result.Shares {
					assertAmount(t, "10", s.Exact, s.Name)
				}
			},
		},
		{
			name: "zero minutes zero everything",
			input: Input{
				TotalAmount:  d("90"),
				Participants: []Participant{{Name: "Nam"}, {Name: "Huy"}},
				Catalog:      []Item{{Name: "Water", Cost: d("20"), AssignedTo: AssignAll}},
			},
			validateFunc: func(t *testing.T, result *Result) {
				for _, s := range result.Shares {
					assert.True(t, s.Exact.IsZero())
				}
				assertAmount(t, "20", result.SharedTotal)
			},
		},
		{
			name: "negative item cost is rejected",
			input: Input{
				TotalAmount:  d("90"),
				Participants: []Participant{{Name: "Nam", Minutes: 10}},
				Catalog:      []Item{{Name: "Water", Cost: d("-5"), AssignedTo: AssignAll}},
			},
			wantErr: ErrNegativeAmount,
		},
	}

	policy := &CatalogPolicy{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := policy.Allocate(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, PolicyCatalog, result.Policy)
			tt.validateFunc(t, result)
		})
	}
}
