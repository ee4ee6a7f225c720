package pricing

import "math"

// Policy holds the delivery fee rules. All thresholds come from
// configuration; defaults live in the config package so there is exactly
// one authoritative set of values.
type Policy struct {
	FreeDistanceKm float64
	FreeOrderTotal int64
	PerKmRate      int64
}

// Fee computes the delivery fee in so'm for a given distance and order
// subtotal. Delivery is free within FreeDistanceKm of the restaurant or for
// subtotals at or above FreeOrderTotal; otherwise the fee is the rounded
// per-kilometer rate. The result is never negative.
func (p Policy) Fee(distanceKm float64, subtotal int64) int64 {
	if distanceKm <= p.FreeDistanceKm || subtotal >= p.FreeOrderTotal {
		return 0
	}
	fee := int64(math.Round(distanceKm * float64(p.PerKmRate)))
	if fee < 0 {
		return 0
	}
	return fee
}

// Quote bundles a computed distance and fee for a delivery destination.
type Quote struct {
	DistanceKm float64 `json:"distance_km"`
	Fee        int64   `json:"fee"`
}

// QuoteFor computes the delivery quote from the restaurant origin to dest.
func (p Policy) QuoteFor(origin, dest Coordinate, subtotal int64) Quote {
	d := Distance(origin, dest)
	return Quote{DistanceKm: d, Fee: p.Fee(d, subtotal)}
}
