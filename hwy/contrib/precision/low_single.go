//go:build !jbm_low_double && !jbm_low_extended && !jbm_low_quadruple

package precision

// Low is the low precision tier type.
type Low = float32

// LowTier is the tier Low was selected as.
const LowTier = Single
