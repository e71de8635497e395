package glue

// Input is either a single spec or a batch of them. The two modes are
// mutually exclusive by construction: use One or Many. Singleton input
// serializes the document's data member as one object, batch input as
// an array.
type Input[T any] struct {
	single *T
	batch  []T
}

// One wraps a single spec.
func One[T any](v T) Input[T] {
	return Input[T]{single: &v}
}

// Many wraps a batch of specs.
func Many[T any](vs []T) Input[T] {
	return Input[T]{batch: vs}
}
