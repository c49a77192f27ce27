// internal/defs/unlock.go
package defs

import (
	"layer-defense/internal/config"
	"layer-defense/internal/utils"
)

// RandomSource yields draws in [0, 1). *utils.PRNGService satisfies it.
type RandomSource interface {
	Float64() float64
}

// UnlockedCount returns how many catalog types are available on a wave.
// Waves below 1 count as wave 1; the result never exceeds catalogLen.
func UnlockedCount(wave int, policy config.UnlockPolicy, catalogLen int) int {
	if wave < 1 {
		wave = 1
	}

	var n int
	switch policy {
	case config.UnlockEveryOtherWave:
		n = (wave + 1) / 2 // ceil(wave/2)
	default:
		n = wave
	}

	if n > catalogLen {
		n = catalogLen
	}
	return n
}

// TypesUpToWave returns the unlocked prefix of the catalog for a wave.
func (c *Catalog) TypesUpToWave(wave int, policy config.UnlockPolicy) []*EnemyType {
	return c.Prefix(UnlockedCount(wave, policy, c.Len()))
}

// UnlockWeights gives the i-th unlocked type weight i+1, so later types grow
// more likely as more of them unlock.
func UnlockWeights(n int) []float64 {
	weights := make([]float64, n)
	for i := range weights {
		weights[i] = float64(i + 1)
	}
	return weights
}

// PickWeighted draws one type from the unlocked prefix using UnlockWeights.
// It returns nil when nothing is unlocked.
func PickWeighted(unlocked []*EnemyType, rnd RandomSource) *EnemyType {
	i := utils.WeightedIndex(UnlockWeights(len(unlocked)), rnd.Float64())
	if i < 0 {
		return nil
	}
	return unlocked[i]
}

// PickSequential cycles through the unlocked prefix by spawn ordinal.
func PickSequential(unlocked []*EnemyType, ordinal int) *EnemyType {
	if len(unlocked) == 0 {
		return nil
	}
	if ordinal < 0 {
		ordinal = -ordinal
	}
	return unlocked[ordinal%len(unlocked)]
}
