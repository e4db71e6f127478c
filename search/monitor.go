package search

import "github.com/poiesic/assessrec/core"

// QueryMonitor provides hooks to observe the recommendation process.
// Implement this interface to track intermediate steps during ranking.
type QueryMonitor interface {
	Start(query string)
	AfterRetrieval(rows []int)
	BoostApplied(label string, matches int, boost float64)
	Finish(results []*core.Recommendation)
}

// noopMonitor is a no-op implementation of QueryMonitor
type noopMonitor struct{}

var _ QueryMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                          {}
func (n *noopMonitor) AfterRetrieval(_ []int)                  {}
func (n *noopMonitor) BoostApplied(_ string, _ int, _ float64) {}
func (n *noopMonitor) Finish(_ []*core.Recommendation)         {}
