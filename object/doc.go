// Package object defines the dataset record shared by all spaces and
// methods: an immutable Object carrying an id, a label and an opaque
// payload of one numeric element type. It includes:
//   - Object and the insertion-ordered Vector container
//   - ElementType tags and the Numeric type constraint
//   - Little-endian payload encoding with length checks
package object
