//go:build !jbm_gauss1 && !jbm_gauss3 && !jbm_gauss7

package integral

// DefaultPoints is the rule size used by Gauss.
const DefaultPoints = 5
