package debug

// Runtime stats logger started when config.Debug is true. Logs goroutine
// count, stack and heap usage, and the process working set where the
// platform exposes it.

import (
	"context"
	"log/slog"
	"runtime"
	"runtime/metrics"
	"time"

	"github.com/dustin/go-humanize"
)

// Stats is one runtime sample.
type Stats struct {
	Goroutines uint64
	StackInuse uint64
	HeapAlloc  uint64
	HeapSys    uint64
	NumGC      uint32
	RSS        uint64
	HasRSS     bool
}

// Sample reads the current runtime stats.
func Sample() Stats {
	samples := []metrics.Sample{{Name: "/sched/goroutines:goroutines"}}
	metrics.Read(samples)
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)
	s := Stats{
		StackInuse: ms.StackInuse,
		HeapAlloc:  ms.HeapAlloc,
		HeapSys:    ms.HeapSys,
		NumGC:      ms.NumGC,
	}
	if samples[0].Value.Kind() == metrics.KindUint64 {
		s.Goroutines = samples[0].Value.Uint64()
	}
	s.RSS, s.HasRSS = processRSS()
	return s
}

// LogValue renders byte counts in human units.
func (s Stats) LogValue() slog.Value {
	attrs := []slog.Attr{
		slog.Uint64("goroutines", s.Goroutines),
		slog.String("stack_inuse", humanize.Bytes(s.StackInuse)),
		slog.String("heap_alloc", humanize.Bytes(s.HeapAlloc)),
		slog.String("heap_sys", humanize.Bytes(s.HeapSys)),
		slog.Uint64("num_gc", uint64(s.NumGC)),
	}
	if s.HasRSS {
		attrs = append(attrs, slog.String("rss", humanize.Bytes(s.RSS)))
	}
	return slog.GroupValue(attrs...)
}

// StartStatsLogger logs a Stats sample every interval until ctx is done.
func StartStatsLogger(ctx context.Context, interval time.Duration, logger *slog.Logger) {
	if logger == nil {
		return
	}
	if interval <= 0 {
		interval = time.Second
	}
	go func() {
		t := time.NewTicker(interval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				logger.Debug("runtime", "stats", Sample())
			}
		}
	}()
}
