// Package dtype defines the logical types that colview views are bound to.
//
// A logical type is a zero-size Go type that fixes two things at compile time:
// the native representation N used to hold one decoded value, and the layout
// family the elements are stored in. It supplies the read rule that turns a
// byte buffer and an element index into a value of N.
//
// # Capabilities
//
// Primitive[N] is the base capability every logical type satisfies. Two layout
// families implement it:
//
//   - Numeric[N]: the dense layout. Element i occupies size_of(N) bytes at byte
//     offset i*size_of(N), stored in host byte order. Numeric[N] is an embeddable
//     struct, so a concrete numeric type inherits the read rule by embedding it
//     and only adds its Name.
//   - Boolean: the bit-packed layout. Element i is bit i&7 of byte i>>3,
//     LSB-first. Boolean is the only bit-packed logical type.
//
// The read rule is chosen by the type argument of a view, not by inspecting a
// value at run time, so no per-call type switch exists anywhere.
//
// # Defining a dense type
//
//	type Celsius struct{ dtype.Numeric[float32] }
//
//	func (Celsius) Name() string { return "celsius" }
//
// A type that embeds both Numeric and Boolean has two promoted Index methods at
// the same depth. The selector is ambiguous, the type has no Index method, and
// it does not satisfy Primitive: mixing layout families fails to compile.
package dtype
