// Package clock projects the active cities onto the current instant and
// drives the once-per-second refresh of the live display.
package clock

import (
	"context"
	"time"

	"github.com/agent-platform/worldclock/internal/cities"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// DefaultInterval is the refresh period of the live display.
const DefaultInterval = time.Second

// Source supplies the cities to project on each tick.
type Source interface {
	Snapshot() []cities.City
}

// RenderFunc receives a freshly computed frame.
type RenderFunc func(now time.Time, cards []Card)

// Loop recomputes every card on each tick and hands the frame to Render.
type Loop struct {
	Clock    clockwork.Clock
	Source   Source
	Interval time.Duration
	Format   Format
	Render   RenderFunc
}

// NewLoop returns a loop on the real clock with the default interval.
func NewLoop(src Source, f Format, render RenderFunc) *Loop {
	return &Loop{
		Clock:    clockwork.NewRealClock(),
		Source:   src,
		Interval: DefaultInterval,
		Format:   f,
		Render:   render,
	}
}

// Tick computes and renders one frame for the given instant.
func (l *Loop) Tick(now time.Time) {
	l.Render(now, Project(l.Source.Snapshot(), now, l.Format))
}

// Run renders once immediately and then on every tick. It blocks until the
// context is cancelled. Frames are rendered on the calling goroutine, so they
// never overlap.
func (l *Loop) Run(ctx context.Context) error {
	clk := l.Clock
	if clk == nil {
		clk = clockwork.NewRealClock()
	}
	interval := l.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	l.Tick(clk.Now())

	ticker := clk.NewTicker(interval)
	defer ticker.Stop()

	log.Debug().Dur("interval", interval).Msg("clock loop started")
	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("clock loop stopped")
			return ctx.Err()
		case t := <-ticker.Chan():
			l.Tick(t)
		}
	}
}
