package isobmff

// numeric is the set of integer widths this package casts between at
// stream/box boundaries (wire widths narrowing to host int/int64, or vice
// versa).
type numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// numericCast converts s to D, failing with BadNumericCast if the value
// does not fit in D. This stands in for the C++ source's numeric_cast<>
// template, used at every boundary where an on-wire width (typically
// uint64) is narrowed to a host width (e.g. int or int64 for a slice
// length or a Seek offset).
func numericCast[D, S numeric](s S) (D, error) {
	d := D(s)

	// Round-tripping the converted value back to S and comparing catches
	// both truncation (high bits dropped) and sign changes (e.g. a
	// uint64 with the top bit set aliasing a negative int64 once cast).
	if S(d) != s {
		return 0, newError(BadNumericCast, "value %v does not fit in destination type", s)
	}

	// A value can round-trip through a same-width reinterpretation of the
	// opposite signedness (e.g. math.MaxUint64 aliasing int64(-1)). Since
	// every quantity this package casts (lengths, offsets, counts) is
	// conceptually non-negative, require the sign to agree too. For an
	// unsigned S or D that side's "< 0" test is always false, so the check
	// fires only when a value crosses into or out of a signed type's
	// negative range; between two unsigned types it never fires.
	if (s < 0) != (d < 0) {
		return 0, newError(BadNumericCast, "value %v changes sign when cast", s)
	}

	return d, nil
}
