package entities

// Nullable wraps a value that may be missing in the source data.
// + Value: the value, only meaningful when Valid is true
// + Valid: false when the cell was empty or could not be parsed
type Nullable[T any] struct {
	Value T    `json:"value"`
	Valid bool `json:"valid"`
}

func Some[T any](value T) Nullable[T] {
	return Nullable[T]{Value: value, Valid: true}
}

func None[T any]() Nullable[T] {
	return Nullable[T]{}
}

// Get returns the value and whether it is present
func (n Nullable[T]) Get() (T, bool) {
	return n.Value, n.Valid
}
