//go:build jbm_gauss3

package integral

// DefaultPoints is the rule size used by Gauss.
const DefaultPoints = 3
