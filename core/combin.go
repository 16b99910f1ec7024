// File: combin.go
// Role: shared pair-count helper used by both engines.
package core

import "gonum.org/v1/gonum/stat/combin"

// PairCount returns C(n,2), the number of unordered pairs among n items.
// Both engines need this constantly (component sizes, K-hop tree sizes,
// impact/gain formulas) so it is centralized here instead of being
// hand-rolled as n*(n-1)/2 at every call site.
func PairCount(n int) int {
	if n < 2 {
		return 0
	}
	return int(combin.Binomial(n, 2))
}
