package scalar

import "golang.org/x/exp/constraints"

// KeepMin returns (q, true) if q < t, otherwise (t, false).
//
// Typical use is a running minimum owned by the caller:
//
//	best, improved = scalar.KeepMin(best, cost)
func KeepMin[T constraints.Ordered](t, q T) (T, bool) {
	if q < t {
		return q, true
	}

	return t, false
}

// KeepMax returns (q, true) if q > t, otherwise (t, false).
func KeepMax[T constraints.Ordered](t, q T) (T, bool) {
	if q > t {
		return q, true
	}

	return t, false
}

// Tracker accumulates the running minimum and maximum of observed values.
// The zero value is ready to use and holds no observations.
//
// Tracker is not safe for concurrent use: guard it externally when several
// goroutines feed the same instance.
type Tracker[T constraints.Ordered] struct {
	min, max T
	n        int
}

// Observe folds v into the tracker and reports whether it became the new
// minimum and/or maximum. The first observation sets both.
func (tr *Tracker[T]) Observe(v T) (newMin, newMax bool) {
	if tr.n == 0 {
		tr.min, tr.max, tr.n = v, v, 1

		return true, true
	}
	tr.n++
	tr.min, newMin = KeepMin(tr.min, v)
	tr.max, newMax = KeepMax(tr.max, v)

	return newMin, newMax
}

// Min returns the smallest observed value; ok is false when empty.
func (tr *Tracker[T]) Min() (v T, ok bool) { return tr.min, tr.n > 0 }

// Max returns the largest observed value; ok is false when empty.
func (tr *Tracker[T]) Max() (v T, ok bool) { return tr.max, tr.n > 0 }

// Count returns the number of observations since the last Reset.
func (tr *Tracker[T]) Count() int { return tr.n }

// Reset discards all observations.
func (tr *Tracker[T]) Reset() { *tr = Tracker[T]{} }
