package domain

// Outcome is the result of parsing one candidate record leniently:
// either the record was included, or it was skipped for a reason.
type Outcome[T any] struct {
	value    T
	reason   string
	included bool
}

// Included wraps a successfully parsed record.
func Included[T any](v T) Outcome[T] {
	return Outcome[T]{value: v, included: true}
}

// Skipped records why a candidate was dropped.
func Skipped[T any](reason string) Outcome[T] {
	return Outcome[T]{reason: reason}
}

// Value returns the record and whether it was included.
func (o Outcome[T]) Value() (T, bool) {
	return o.value, o.included
}

// Reason returns the skip reason. It is empty for included records.
func (o Outcome[T]) Reason() string {
	return o.reason
}
