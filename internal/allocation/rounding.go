package allocation

import (
	"sort"

	"github.com/shopspring/decimal"
)

// roundShares fills in Rounded with whole units so that the rounded shares add
// up to the rounded sum of the exact shares. Every share is floored first and
// the missing units go to the largest fractional remainders, earlier
// participants winning ties. Rounded shares are never negative.
func roundShares(shares []Share) []Share {
	if len(shares) == 0 {
		return shares
	}

	exactSum := decimal.Zero
	floorSum := decimal.Zero
	for i := range shares {
		exactSum = exactSum.Add(shares[i].Exact)
		shares[i].Rounded = shares[i].Exact.Floor()
		floorSum = floorSum.Add(shares[i].Rounded)
	}

	missing := exactSum.Round(0).Sub(floorSum).IntPart()
	if missing <= 0 {
		return shares
	}

	order := make([]int, len(shares))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra := shares[order[a]].Exact.Sub(shares[order[a]].Rounded)
		rb := shares[order[b]].Exact.Sub(shares[order[b]].Rounded)
		return ra.GreaterThan(rb)
	})

	one := decimal.NewFromInt(1)
	for i := 0; i < int(missing) && i < len(order); i++ {
		idx := order[i]
		shares[idx].Rounded = shares[idx].Rounded.Add(one)
	}
	return shares
}
