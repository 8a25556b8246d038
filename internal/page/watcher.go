package page

// VisibilityThreshold is the fraction of a section that must be inside the
// viewport for it to count as intersecting.
const VisibilityThreshold = 0.5

// Entry reports the visibility of one observed section.
type Entry struct {
	ID           ID
	Ratio        float64
	Intersecting bool
}

// Callback receives the entries produced by a single watcher update, in
// registration order.
type Callback func(entries []Entry)

// Watcher reports visibility changes of registered sections.
type Watcher interface {
	Observe(id ID, threshold float64)
	Disconnect()
}

// WatcherFunc creates a watcher that delivers its entries to cb.
type WatcherFunc func(cb Callback) Watcher

type target struct {
	id        ID
	threshold float64
	reported  bool
	inside    bool
}

// ViewportWatcher is a Watcher driven by explicit viewport updates.
type ViewportWatcher struct {
	cb      Callback
	targets []*target
	spans   map[ID]Span
}

// NewViewportWatcher returns a watcher that delivers entries to cb.
func NewViewportWatcher(cb Callback) *ViewportWatcher {
	return &ViewportWatcher{cb: cb, spans: make(map[ID]Span)}
}

// Observe implements Watcher. Observing an id twice replaces its
// threshold and makes the next update report it again.
func (w *ViewportWatcher) Observe(id ID, threshold float64) {
	for _, t := range w.targets {
		if t.id == id {
			t.threshold = threshold
			t.reported = false
			return
		}
	}
	w.targets = append(w.targets, &target{id: id, threshold: threshold})
}

// Disconnect implements Watcher. It drops all observations.
func (w *ViewportWatcher) Disconnect() {
	w.targets = nil
}

// Observed returns the number of registered targets.
func (w *ViewportWatcher) Observed() int {
	return len(w.targets)
}

// SetLayout replaces the known section spans.
func (w *ViewportWatcher) SetLayout(spans []Span) {
	w.spans = make(map[ID]Span, len(spans))
	for _, s := range spans {
		w.spans[s.ID] = s
	}
}

// Update recomputes visibility for a viewport showing lines
// [offset, offset+height) and delivers the targets whose state changed.
// Targets are always reported on their first update.
func (w *ViewportWatcher) Update(offset, height int) {
	var entries []Entry
	for _, t := range w.targets {
		span, ok := w.spans[t.id]
		if !ok {
			continue
		}
		ratio := visibleRatio(span, offset, height)
		inside := ratio >= t.threshold && ratio > 0
		if t.reported && inside == t.inside {
			continue
		}
		t.reported = true
		t.inside = inside
		entries = append(entries, Entry{ID: t.id, Ratio: ratio, Intersecting: inside})
	}
	if len(entries) > 0 && w.cb != nil {
		w.cb(entries)
	}
}

func visibleRatio(span Span, offset, height int) float64 {
	total := span.Height()
	if total <= 0 || height <= 0 {
		return 0
	}
	top := max(span.Start, offset)
	bottom := min(span.End, offset+height)
	if bottom <= top {
		return 0
	}
	return float64(bottom-top) / float64(total)
}
