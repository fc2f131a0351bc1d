//go:build jbm_gauss7

package integral

// DefaultPoints is the rule size used by Gauss.
const DefaultPoints = 7
