package domain

import "github.com/shopspring/decimal"

func init() {
	// Prices travel as JSON numbers, both on the wire and on disk.
	decimal.MarshalJSONWithoutQuotes = true
}

// NextID returns 1 + the largest id, or 1 for an empty collection.
func NextID(ids ...int) int {
	next := 1
	for _, id := range ids {
		if id >= next {
			next = id + 1
		}
	}
	return next
}
