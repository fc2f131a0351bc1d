//go:build jbm_gauss1

package integral

// DefaultPoints is the rule size used by Gauss.
const DefaultPoints = 1
