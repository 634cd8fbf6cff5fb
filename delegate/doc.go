// Package delegate defines collection interfaces matching the method
// sets of the container types in this module, together with forwarding
// wrappers for building decorators.
//
// [Collection] is the least common denominator of plist.List and
// pset.Set; [List] and [Set] extend it with positional and membership
// operations respectively. The wrapper types embed the interface they
// forward to, so a decorator overrides only the methods it cares about:
//
//	type counting[T any] struct {
//	    delegate.DelegateCollection[T]
//	    adds int
//	}
//
//	func (c *counting[T]) Add(v T) bool {
//	    c.adds++
//	    return c.DelegateCollection.Add(v)
//	}
//
// Every other Collection method passes straight through to the wrapped
// target.
package delegate
