package explore

import "log/slog"

// Observer receives one notification per refined pair. Implementations
// must not fail the run; observation is strictly best-effort.
type Observer interface {
	Tick(m1, m2 int)
}

// NopObserver ignores all progress. The loop's default.
type NopObserver struct{}

// Tick does nothing.
func (NopObserver) Tick(int, int) {}

// SlogObserver logs one line per refined pair with a running counter.
type SlogObserver struct {
	// Log is the destination logger; nil falls back to slog.Default().
	Log *slog.Logger

	refined int
}

// Tick logs the refined pair.
func (o *SlogObserver) Tick(m1, m2 int) {
	log := o.Log
	if log == nil {
		log = slog.Default()
	}
	o.refined++
	log.Info("pair refined", "m1", m1, "m2", m2, "refined", o.refined)
}
