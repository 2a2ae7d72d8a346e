package sketch

import (
	"time"

	"github.com/san-kum/randwalk/internal/config"
)

type State int

const (
	StateMessage State = iota
	StatePreviewSplash
	StateAnimating
	StateDone
)

func (s State) String() string {
	switch s {
	case StateMessage:
		return "MESSAGE"
	case StatePreviewSplash:
		return "PREVIEW_SPLASH"
	case StateAnimating:
		return "ANIMATING"
	case StateDone:
		return "DONE"
	default:
		return "UNKNOWN"
	}
}

// Options configure how a session draws.
type Options struct {
	Theme           config.Theme
	MessageInterval time.Duration
	DotSize         int
	ShowStats       bool
}

func DefaultOptions() Options {
	return Options{
		Theme:           config.GetTheme(config.DefaultTheme),
		MessageInterval: config.DefaultMessageInterval,
		DotSize:         config.DefaultDotSize,
		ShowStats:       true,
	}
}

// OptionsFromConfig builds Options from the sketch section of a config file.
func OptionsFromConfig(cfg config.SketchConfig) Options {
	opts := Options{
		Theme:           config.GetTheme(cfg.Theme),
		MessageInterval: cfg.MessageInterval,
		DotSize:         cfg.DotSize,
		ShowStats:       cfg.ShowStats,
	}
	if opts.MessageInterval < 0 {
		opts.MessageInterval = 0
	}
	if opts.DotSize < 1 {
		opts.DotSize = config.DefaultDotSize
	}
	return opts
}

// LoadingMessages is the queue a session starts with.
var LoadingMessages = []string{"Loading .", "Loading .."}

// messageIndex picks a queue slot from the milliseconds elapsed since the
// previous message render. Negative deltas and empty queues map to 0.
func messageIndex(deltaMS int64, n int) int {
	if n <= 0 || deltaMS <= 0 {
		return 0
	}
	return int(deltaMS % int64(n))
}

// rateMeter counts ticks over the trailing second.
type rateMeter struct {
	ticks []time.Time
}

func (m *rateMeter) mark(now time.Time) {
	m.ticks = append(m.ticks, now)
	cut := now.Add(-time.Second)
	i := 0
	for i < len(m.ticks) && !m.ticks[i].After(cut) {
		i++
	}
	m.ticks = m.ticks[i:]
}

func (m *rateMeter) rate() int {
	return len(m.ticks)
}
