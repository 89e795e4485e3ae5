package mylib

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdd(t *testing.T) {
	tests := []struct {
		name string
		a, b int32
		want int32
	}{
		{"positive", 2, 3, 5},
		{"positive hundreds", 100, 200, 300},
		{"ones", 1, 1, 2},
		{"negative", -1, -1, -2},
		{"negative fives", -5, -10, -15},
		{"negative hundreds", -100, -200, -300},
		{"mixed cancels", -1, 1, 0},
		{"mixed positive result", 10, -5, 5},
		{"mixed negative first", -20, 30, 10},
		{"zeros", 0, 0, 0},
		{"right zero", 5, 0, 5},
		{"left zero", 0, -5, -5},
		{"large", 999999, 1, 1000000},
		{"max int", math.MaxInt32, 0, math.MaxInt32},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Add(tt.a, tt.b))
		})
	}
}

func TestAddWrapsOnOverflow(t *testing.T) {
	assert.Equal(t, int32(math.MinInt32), Add(math.MaxInt32, 1))
	assert.Equal(t, int32(math.MaxInt32), Add(math.MinInt32, -1))
}

func TestMultiply(t *testing.T) {
	tests := []struct {
		name string
		a, b int32
		want int32
	}{
		{"positive", 2, 3, 6},
		{"tens", 10, 10, 100},
		{"seven eight", 7, 8, 56},
		{"negative", -2, -3, 6},
		{"negative fives", -5, -5, 25},
		{"negative one", -10, -1, 10},
		{"mixed", -1, 5, -5},
		{"mixed right negative", 10, -2, -20},
		{"mixed left negative", -7, 3, -21},
		{"zero left", 0, 100, 0},
		{"zero right", 999, 0, 0},
		{"zeros", 0, 0, 0},
		{"one right", 5, 1, 5},
		{"one left", 1, -10, -10},
		{"ones", 1, 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Multiply(tt.a, tt.b))
		})
	}
}

func TestMultiplyIdentities(t *testing.T) {
	for _, a := range []int32{math.MinInt32, -65536, -1, 0, 1, 7, 65536, math.MaxInt32} {
		assert.Equal(t, int32(0), Multiply(a, 0), "Multiply(%d, 0)", a)
		assert.Equal(t, a, Multiply(a, 1), "Multiply(%d, 1)", a)
	}
}

func TestMultiplyWrapsOnOverflow(t *testing.T) {
	assert.Equal(t, int32(math.MinInt32), Multiply(math.MinInt32, -1))
	assert.Equal(t, int32(-2), Multiply(math.MaxInt32, 2))
}

func TestVersion(t *testing.T) {
	assert.NotEmpty(t, Version())
	assert.Equal(t, "1.0.0", Version())
	assert.Equal(t, Version(), Version(), "repeated calls should return the same version")
}

// Values shared by the fixture-style tests below.
const (
	fixtureA int32 = 10
	fixtureB int32 = 20
)

func TestAddWithFixture(t *testing.T) {
	assert.Equal(t, int32(30), Add(fixtureA, fixtureB))
	assert.Equal(t, fixtureA, Add(fixtureA, 0))
}

func TestMultiplyWithFixture(t *testing.T) {
	assert.Equal(t, int32(200), Multiply(fixtureA, fixtureB))
	assert.Equal(t, fixtureA, Multiply(fixtureA, 1))
}

func TestCombinedOperations(t *testing.T) {
	sum := Add(fixtureA, fixtureB)
	assert.Equal(t, int32(60), Multiply(sum, 2))
}

func TestAddMatchesWideArithmetic(t *testing.T) {
	values := []int32{math.MinInt32, -1000003, -1, 0, 1, 4096, 1000003, math.MaxInt32}
	for _, a := range values {
		for _, b := range values {
			assert.Equal(t, int32(int64(a)+int64(b)), Add(a, b), "Add(%d, %d)", a, b)
			assert.Equal(t, int32(int64(a)*int64(b)), Multiply(a, b), "Multiply(%d, %d)", a, b)
		}
	}
}
