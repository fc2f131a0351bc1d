//go:build jbm_high_single

package precision

// High is the high precision tier type.
type High = float32

// HighTier is the tier High was selected as.
const HighTier = Single
