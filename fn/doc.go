// Package fn defines the small functional types shared across this
// module — consumers, predicates and functions of arity one to five —
// together with error-returning ("E") variants and a handful of
// combinators.
//
// These types exist so that APIs taking callbacks name their intent
// instead of repeating anonymous func signatures:
//
//	func (it *Iterator[T]) ForEachRemaining(consume fn.Consumer[T]) error
//
// # Error-returning variants
//
// Every type has an E-suffixed counterpart whose final return value is an
// error, for callbacks that can fail. [ConsumerE], [PredicateE] and
// friends mirror their plain versions exactly:
//
//	var parse fn.FunctionE[string, int] = strconv.Atoi
//
// # Combinators
//
// Predicates compose with [Predicate.And], [Predicate.Or] and
// [Predicate.Negate]; functions chain with [Compose] and [AndThen].
// [Identity] and [Constantly] cover the trivial cases.
package fn
