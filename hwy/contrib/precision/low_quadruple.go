//go:build jbm_low_quadruple

package precision

// Low is the low precision tier type.
type Low = float64

// LowTier is the tier Low was selected as.
const LowTier = Quadruple
