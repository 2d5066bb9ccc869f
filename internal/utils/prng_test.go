package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNG_SameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(7)
	b := NewPRNGService(7)
	for i := 0; i < 100; i++ {
		assert.Equal(t, a.Intn(1000), b.Intn(1000))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestPRNG_ZeroSeedUsesTime(t *testing.T) {
	p := NewPRNGService(0)
	assert.NotZero(t, p.Seed())
}

func TestChance_Bounds(t *testing.T) {
	p := NewPRNGService(1)
	for i := 0; i < 1000; i++ {
		assert.False(t, p.Chance(0))
		assert.False(t, p.Chance(-1))
		assert.True(t, p.Chance(1))
	}
}
