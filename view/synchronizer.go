package view

import (
	"sync"
	"time"

	"reporting/analytics"
	"reporting/models"
)

// Synchronizer keeps the aggregator's input aligned with whatever subset of
// rows the grid currently shows. Recomputes are coalesced behind a short
// debounce so a burst of sort/filter interactions triggers one reduction,
// not one per tick. The pipeline underneath is pure, so a recompute on
// unchanged inputs yields identical output.
type Synchronizer struct {
	mu sync.Mutex

	rows      []models.Row
	filter    func(models.Row) bool // nil means no grid filter is applied
	sellout   float64
	projected float64

	delay    time.Duration
	timer    *time.Timer
	summary  models.AggregationSummary
	onUpdate func(models.AggregationSummary)
}

// NewSynchronizer builds a synchronizer with the given thresholds and
// debounce delay. onUpdate, if non-nil, fires after every recompute.
func NewSynchronizer(selloutThreshold, projectedQtyThreshold float64, delay time.Duration, onUpdate func(models.AggregationSummary)) *Synchronizer {
	return &Synchronizer{
		sellout:   selloutThreshold,
		projected: projectedQtyThreshold,
		delay:     delay,
		onUpdate:  onUpdate,
	}
}

// SetRows replaces the raw dataset. The latest batch supersedes any prior
// one; there is no partial merge.
func (s *Synchronizer) SetRows(rows []models.Row) {
	s.mu.Lock()
	s.rows = rows
	s.mu.Unlock()
	s.Refresh()
}

// SetFilter installs the grid's current filter predicate, or nil when the
// grid has no filter applied.
func (s *Synchronizer) SetFilter(filter func(models.Row) bool) {
	s.mu.Lock()
	s.filter = filter
	s.mu.Unlock()
	s.Refresh()
}

// SetThresholds updates both thresholds and schedules a recompute.
func (s *Synchronizer) SetThresholds(selloutThreshold, projectedQtyThreshold float64) {
	s.mu.Lock()
	s.sellout = selloutThreshold
	s.projected = projectedQtyThreshold
	s.mu.Unlock()
	s.Refresh()
}

// Refresh schedules a debounced recompute, coalescing with any pending one.
// With a zero delay it recomputes synchronously.
func (s *Synchronizer) Refresh() {
	s.mu.Lock()
	if s.delay > 0 {
		if s.timer != nil {
			s.timer.Stop()
		}
		s.timer = time.AfterFunc(s.delay, s.Flush)
		s.mu.Unlock()
		return
	}
	s.mu.Unlock()
	s.Flush()
}

// Flush recomputes immediately, cancelling any pending debounce.
func (s *Synchronizer) Flush() {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.summary = analytics.Aggregate(s.visibleLocked(), s.sellout, s.projected)
	summary := s.summary
	onUpdate := s.onUpdate
	s.mu.Unlock()

	if onUpdate != nil {
		onUpdate(summary)
	}
}

// Summary returns the most recently computed aggregation.
func (s *Synchronizer) Summary() models.AggregationSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.summary
}

// Visible returns the row set the summary was computed over: the full raw
// dataset when no filter is applied (identity, independent of the grid's
// rendering order), otherwise the rows surviving the filter in input order.
func (s *Synchronizer) Visible() []models.Row {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.visibleLocked()
}

func (s *Synchronizer) visibleLocked() []models.Row {
	if s.filter == nil {
		return s.rows
	}
	out := make([]models.Row, 0, len(s.rows))
	for _, row := range s.rows {
		if s.filter(row) {
			out = append(out, row)
		}
	}
	return out
}
