package allocation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// assertAmount compares decimals to two places
func assertAmount(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	assert.True(t, d(want).Equal(got.Round(2)), append([]interface{}{"want %s, got %s", want, got.StringFixed(4)}, msgAndArgs...)...)
}

func shareByName(t *testing.T, result *Result, name string) Share {
	t.Helper()
	for _, s := range result.Shares {
		if s.Name == name {
			return s
		}
	}
	t.Fatalf("no share for %s", name)
	return Share{}
}

func TestOwnedPolicy_Allocate(t *testing.T) {
	tests := []struct {
		name         string
		input        Input
		wantErr      error
		validateFunc func(t *testing.T, result *Result)
	}{
		{
			name: "alice and bob with bob's drinks",
			input: Input{
				TotalAmount: d("300"),
				Participants: []Participant{
					{Name: "Alice", Minutes: 60},
					{Name: "Bob", Minutes: 30, Consumables: []Item{{Name: "Coke", Cost: d("50")}}},
				},
			},
			validateFunc: func(t *testing.T, result *Result) {
				// base = 300 - 50 = 250
				// Alice: 250 * 60/90 = 166.67
				// Bob:   250 * 30/90 + 50 = 133.33
				assertAmount(t, "50", result.ConsumablesTotal)
				assertAmount(t, "250", result.BaseAmount)
				assert.Equal(t, 90, result.TotalMinutes)

				alice := shareByName(t, result, "Alice")
				assertAmount(t, "166.67", alice.Exact)
				assertAmount(t, "0", alice.Individual)
				assert.True(t, d("167").Equal(alice.Rounded))

				bob := shareByName(t, result, "Bob")
				assertAmount(t, "133.33", bob.Exact)
				assertAmount(t, "50", bob.Individual)
				assert.True(t, d("133").Equal(bob.Rounded))

				assertAmount(t, "300", result.Distributed)
				assert.False(t, result.Overflow)
			},
		},
		{
			name: "equal minutes split evenly",
			input: Input{
				TotalAmount: d("120"),
				Participants: []Participant{
					{Name: "Nam", Minutes: 45},
					{Name: "Huy", Minutes: 45},
					{Name: "Tinh", Minutes: 45},
				},
			},
			validateFunc: func(t *testing.T, result *Result) {
				for _, s := range result.Shares {
					assertAmount(t, "40", s.Exact, s.Name)
				}
			},
		},
		{
			name: "consumables larger than total clamp the base",
			input: Input{
				TotalAmount: d("40"),
				Participants: []Participant{
					{Name: "Nam", Minutes: 60, Consumables: []Item{{Name: "Noodle", Cost: d("30")}}},
					{Name: "Huy", Minutes: 60, Consumables: []Item{{Name: "Bread", Cost: d("20")}}},
				},
			},
			validateFunc: func(t *testing.T, result *Result) {
				assert.True(t, result.Overflow)
				assertAmount(t, "0", result.BaseAmount)
				assertAmount(t, "30", shareByName(t, result, "Nam").Exact)
				assertAmount(t, "20", shareByName(t, result, "Huy").Exact)
			},
		},
		{
			name: "no minutes means every share is zero",
			input: Input{
				TotalAmount: d("300"),
				Participants: []Participant{
					{Name: "Nam", Minutes: 0, Consumables: []Item{{Name: "Coke", Cost: d("10")}}},
					{Name: "Huy", Minutes: 0},
				},
			},
			validateFunc: func(t *testing.T, result *Result) {
				require.Len(t, result.Shares, 2)
				for _, s := range result.Shares {
					assert.True(t, s.Exact.IsZero(), s.Name)
					assert.True(t, s.Rounded.IsZero(), s.Name)
				}
			},
		},
		{
			name:  "nobody participating",
			input: Input{TotalAmount: d("300")},
			validateFunc: func(t *testing.T, result *Result) {
				assert.Empty(t, result.Shares)
				assert.True(t, result.Distributed.IsZero())
			},
		},
		{
			name: "negative minutes are rejected",
			input: Input{
				TotalAmount:  d("100"),
				Participants: []Participant{{Name: "Nam", Minutes: -30}},
			},
			wantErr: ErrNegativeMinutes,
		},
		{
			name: "negative total is rejected",
			input: Input{
				TotalAmount:  d("-1"),
				Participants: []Participant{{Name: "Nam", Minutes: 30}},
			},
			wantErr: ErrNegativeAmount,
		},
		{
			name: "duplicate names are rejected",
			input: Input{
				TotalAmount:  d("100"),
				Participants: []Participant{{Name: "Nam", Minutes: 30}, {Name: "Nam", Minutes: 10}},
			},
			wantErr: ErrDuplicateParticipant,
		},
	}

	policy := &OwnedPolicy{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := policy.Allocate(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, PolicyOwned, result.Policy)
			if tt.validateFunc != nil {
				tt.validateFunc(t, result)
			}
		})
	}
}

func TestOwnedPolicy_SharesSumToTotal(t *testing.T) {
	minutes := []int{5, 17, 60, 90, 133, 240}
	totals := []string{"0", "1", "99", "300", "1234.25", "100000"}

	for _, total := range totals {
		in := Input{TotalAmount: d(total)}
		for i, m := range minutes {
			p := Participant{Name: string(rune('A' + i)), Minutes: m}
			if i%2 == 0 {
				p.Consumables = []Item{{Name: "Water", Cost: d(total).Div(decimal.NewFromInt(100))}}
			}
			in.Participants = append(in.Participants, p)
		}

		result, err := (&OwnedPolicy{}).Allocate(in)
		require.NoError(t, err)

		diff := result.Distributed.Sub(d(total)).Abs()
		assert.True(t, diff.LessThan(d("0.000001")), "total %s distributed %s", total, result.Distributed)

		roundedSum := decimal.Zero
		for _, s := range result.Shares {
			assert.False(t, s.Exact.IsNegative())
			assert.False(t, s.Rounded.IsNegative())
			roundedSum = roundedSum.Add(s.Rounded)
		}
		assert.True(t, d(total).Round(0).Equal(roundedSum), "total %s rounded sum %s", total, roundedSum)
	}
}
