package domain

// Sourced is a value tagged with the place it came from.
type Sourced[T any] struct {
	Value  T
	Source string
}

// Number is the set of numeric types a Limited value can hold.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Limited is a numeric value together with its inclusive bounds.
type Limited[T Number] struct {
	Actual T
	Min    T
	Max    T
}

// Within reports whether Actual lies in [Min, Max].
func (l Limited[T]) Within() bool {
	return l.Actual >= l.Min && l.Actual <= l.Max
}

// Converter turns a T into an R.
type Converter[T, R any] interface {
	Convert(obj T) (R, error)
}

// ConverterFunc adapts a plain function to the Converter interface.
type ConverterFunc[T, R any] func(T) (R, error)

// Convert calls f(obj).
func (f ConverterFunc[T, R]) Convert(obj T) (R, error) {
	return f(obj)
}
