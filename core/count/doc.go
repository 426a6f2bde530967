// Package count provides the magnitude type used for every size and capacity
// in memcore.
//
// # Negated Storage
//
// A Count stores the arithmetic negation of its logical value. The negative
// range of a two's-complement integer holds one more value than the positive
// range, so a Count[int8] represents magnitudes 0..=128 and a Count[int16]
// represents 0..=32768:
//
//	count.Of8(0)    // stored 0
//	count.Of8(127)  // stored -127
//	count.Max[int8]() // stored -128, magnitude 128
//
// Ordering is the reverse of the stored ordering, so Less and Compare behave
// as expected on the logical magnitude. The zero value is a count of 0.
//
// # Offsets
//
// An Offset is a zero-based position. MaxOffset is the greatest offset a count
// covers (count - 1), and Contains reports whether an offset falls inside it.
//
// # Growth
//
// DoubleOrMax is the capacity growth policy used by alloc and shtick: double,
// but saturate at Max instead of overflowing.
package count
