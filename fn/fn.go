package fn

// ─────────────────────────────────────────────────────────────────────────────
// Consumers
// ─────────────────────────────────────────────────────────────────────────────

// Consumer accepts a single value and returns nothing.
type Consumer[T any] func(T)

// BiConsumer accepts two values and returns nothing.
type BiConsumer[A, B any] func(A, B)

// ConsumerE is a [Consumer] that can fail.
type ConsumerE[T any] func(T) error

// BiConsumerE is a [BiConsumer] that can fail.
type BiConsumerE[A, B any] func(A, B) error

// AndThen returns a consumer that calls c, then next, with the same value.
func (c Consumer[T]) AndThen(next Consumer[T]) Consumer[T] {
	return func(v T) {
		c(v)
		next(v)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Predicates
// ─────────────────────────────────────────────────────────────────────────────

// Predicate reports whether a value satisfies some condition.
type Predicate[T any] func(T) bool

// BiPredicate reports whether a pair of values satisfies some condition.
type BiPredicate[A, B any] func(A, B) bool

// PredicateE is a [Predicate] that can fail.
type PredicateE[T any] func(T) (bool, error)

// BiPredicateE is a [BiPredicate] that can fail.
type BiPredicateE[A, B any] func(A, B) (bool, error)

// And returns a predicate that is true when both p and q are true.
// q is not evaluated when p is false.
func (p Predicate[T]) And(q Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) && q(v) }
}

// Or returns a predicate that is true when either p or q is true.
// q is not evaluated when p is true.
func (p Predicate[T]) Or(q Predicate[T]) Predicate[T] {
	return func(v T) bool { return p(v) || q(v) }
}

// Negate returns the logical complement of p.
func (p Predicate[T]) Negate() Predicate[T] {
	return func(v T) bool { return !p(v) }
}

// ─────────────────────────────────────────────────────────────────────────────
// Functions, arity 1–5
// ─────────────────────────────────────────────────────────────────────────────

// Function maps a value of type T to a value of type R.
type Function[T, R any] func(T) R

// BiFunction maps two values to a result.
type BiFunction[A, B, R any] func(A, B) R

// TriFunction maps three values to a result.
type TriFunction[A, B, C, R any] func(A, B, C) R

// QuadFunction maps four values to a result.
type QuadFunction[A, B, C, D, R any] func(A, B, C, D) R

// QuintFunction maps five values to a result.
type QuintFunction[A, B, C, D, E, R any] func(A, B, C, D, E) R

// FunctionE is a [Function] that can fail.
type FunctionE[T, R any] func(T) (R, error)

// BiFunctionE is a [BiFunction] that can fail.
type BiFunctionE[A, B, R any] func(A, B) (R, error)

// TriFunctionE is a [TriFunction] that can fail.
type TriFunctionE[A, B, C, R any] func(A, B, C) (R, error)

// QuadFunctionE is a [QuadFunction] that can fail.
type QuadFunctionE[A, B, C, D, R any] func(A, B, C, D) (R, error)

// QuintFunctionE is a [QuintFunction] that can fail.
type QuintFunctionE[A, B, C, D, E, R any] func(A, B, C, D, E) (R, error)

// ─────────────────────────────────────────────────────────────────────────────
// Combinators
// ─────────────────────────────────────────────────────────────────────────────

// Identity returns its argument unchanged.
func Identity[T any](v T) T { return v }

// Constantly returns a function that ignores its argument and always
// returns v.
func Constantly[T, R any](v R) Function[T, R] {
	return func(T) R { return v }
}

// Compose returns f∘g: a function that applies g first, then f.
func Compose[A, B, C any](f Function[B, C], g Function[A, B]) Function[A, C] {
	return func(a A) C { return f(g(a)) }
}

// AndThen reads in application order: AndThen(f, g)(x) == g(f(x)).
func AndThen[A, B, C any](f Function[A, B], g Function[B, C]) Function[A, C] {
	return func(a A) C { return g(f(a)) }
}
