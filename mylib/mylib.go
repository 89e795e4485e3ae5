// Package mylib provides the arithmetic helpers exposed by this module.
//
// All operations work on 32-bit signed integers and follow Go's native
// two's-complement wraparound on overflow.
package mylib

const version = "1.0.0"

// Add returns the sum of a and b.
func Add(a, b int32) int32 {
	return a + b
}

// Multiply returns the product of a and b.
func Multiply(a, b int32) int32 {
	return a * b
}

// Version returns the library version string.
func Version() string {
	return version
}
