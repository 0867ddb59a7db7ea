package filter

// Owner wraps a Filter2D that may or may not have been constructed by the
// driver calling it. When the driver builds the filter itself (the
// filter-name overload), it must release it on every exit path;
// when the caller supplied the filter (the filter-pointer overload),
// ownership stays with the caller and Owner must not touch it.
//
// Go's garbage collector means there's no destructor to call, so "release"
// here is a no-op by construction -- but the Owner type still exists to
// keep the borrowed-vs-owned distinction explicit in the driver code, the
// same way the original's shared_ptr-with-custom-deleter keeps it explicit
// there. A borrowed filter and an owned filter are handled identically by
// every call site that takes an Owner, which is the point: the distinction
// is a documentation and lifetime-intent concern, not a resource one, in
// this runtime.
type Owner struct {
	f     *Filter2D
	owned bool
}

// Borrow wraps a caller-supplied filter. Ownership is not transferred.
func Borrow(f *Filter2D) Owner {
	return Owner{f: f, owned: false}
}

// Own wraps a filter this package constructed on the driver's behalf.
func Own(f *Filter2D) Owner {
	return Owner{f: f, owned: true}
}

// Get returns the wrapped filter.
func (o Owner) Get() *Filter2D { return o.f }

// Owned reports whether this Owner constructed the filter it wraps (as
// opposed to borrowing a caller-supplied one).
func (o Owner) Owned() bool { return o.owned }
