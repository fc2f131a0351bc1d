//go:build !jbm_high_single && !jbm_high_extended && !jbm_high_quadruple

package precision

// High is the high precision tier type.
type High = float64

// HighTier is the tier High was selected as.
const HighTier = Double
