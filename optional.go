package multiplier

import "strconv"

// OptionalInt is an integer that is either present or absent. The zero value
// is absent.
type OptionalInt struct {
	value   int32
	present bool
}

// Some returns a present OptionalInt holding v.
func Some(v int32) OptionalInt {
	return OptionalInt{value: v, present: true}
}

// None returns an absent OptionalInt.
func None() OptionalInt {
	return OptionalInt{}
}

// Get returns the value and whether it is present. The value is 0 when
// absent.
func (o OptionalInt) Get() (int32, bool) {
	return o.value, o.present
}

// IsPresent reports whether o holds a value.
func (o OptionalInt) IsPresent() bool {
	return o.present
}

// String returns the decimal value, or "null" when absent.
func (o OptionalInt) String() string {
	if !o.present {
		return "null"
	}
	return strconv.FormatInt(int64(o.value), 10)
}
