package sketch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/san-kum/randwalk/internal/raster"
	"github.com/san-kum/randwalk/internal/walk"
)

// Session is the state of one sketch: the message queue, the resolved walk,
// its preview and the animation cursor.
type Session struct {
	name    string
	opts    Options
	surface Surface
	loader  *Loader
	logger  *zap.Logger

	state       State
	messages    []string
	limiter     *rate.Limiter
	lastMessage time.Time
	start       time.Time
	meter       rateMeter

	width, height int
	canvasReady   bool

	config  walk.Config
	label   string
	walk    walk.Walk
	preview *raster.Image
	frame   int
	err     error
}

// NewSession creates a session for the named registry entry. It starts in
// MESSAGE with the loading queue.
func NewSession(name string, surface Surface, loader *Loader, opts Options) *Session {
	s := &Session{
		name:     name,
		opts:     opts,
		surface:  surface,
		loader:   loader,
		logger:   loader.logger,
		state:    StateMessage,
		messages: append([]string(nil), LoadingMessages...),
	}
	s.resetLimiter()
	return s
}

// OnLoad fetches, resolves and generates. It blocks and does not touch
// session state, so it may run on any goroutine.
func (s *Session) OnLoad(ctx context.Context) Outcome {
	return s.loader.Load(ctx, s.name)
}

// Complete applies the result of OnLoad.
func (s *Session) Complete(out Outcome) {
	if out.Err != nil {
		s.fail(out.Err)
		return
	}

	s.config = out.Config
	s.walk = out.Walk
	if label, err := json.Marshal(s.config); err == nil {
		s.label = string(label)
	}
	s.messages = nil

	if s.canvasReady {
		if err := s.renderPreview(); err != nil {
			s.fail(err)
			return
		}
	}
	s.armSplash()
}

// OnCanvasReady records the canvas size and renders the preview if the
// walk is already available.
func (s *Session) OnCanvasReady(width, height int) {
	s.width, s.height = width, height
	s.canvasReady = true
	if s.walk == nil || s.err != nil {
		return
	}
	if err := s.renderPreview(); err != nil {
		s.fail(err)
		return
	}
	s.armSplash()
}

// OnResize regenerates the preview at the new size and re-arms the splash.
// A finished session repaints immediately and stays DONE.
func (s *Session) OnResize(width, height int) {
	s.width, s.height = width, height
	s.canvasReady = true

	if s.walk == nil || s.err != nil {
		s.resetLimiter()
		return
	}
	if s.state == StateDone {
		s.repaint()
		return
	}
	if err := s.renderPreview(); err != nil {
		s.fail(err)
		return
	}

	switch s.state {
	case StateMessage:
		s.resetLimiter()
		s.armSplash()
	default:
		s.state = StatePreviewSplash
	}
	s.logger.Debug("resized", zap.Int("width", width), zap.Int("height", height), zap.Stringer("state", s.state))
}

// OnTick advances the session by one frame and reports whether anything was
// drawn.
func (s *Session) OnTick(now time.Time) bool {
	if s.start.IsZero() {
		s.start = now
	}
	s.meter.mark(now)

	switch s.state {
	case StateMessage:
		return s.drawMessage(now)
	case StatePreviewSplash:
		s.surface.Blit(s.preview)
		s.state = StateAnimating
		return true
	case StateAnimating:
		return s.drawStep(now)
	default:
		return false
	}
}

func (s *Session) State() State { return s.state }

func (s *Session) Messages() []string {
	return append([]string(nil), s.messages...)
}

// Frame is the number of walk points revealed so far.
func (s *Session) Frame() int { return s.frame }

// Config returns the resolved config once a load has succeeded.
func (s *Session) Config() (walk.Config, bool) {
	return s.config, s.walk != nil
}

func (s *Session) Walk() walk.Walk { return s.walk }

func (s *Session) Preview() *raster.Image { return s.preview }

// Err is the failure that put the session in its final MESSAGE state.
func (s *Session) Err() error { return s.err }

func (s *Session) ShowStats() bool { return s.opts.ShowStats }

func (s *Session) SetShowStats(v bool) { s.opts.ShowStats = v }

func (s *Session) fail(err error) {
	s.err = err
	s.state = StateMessage
	s.messages = []string{FailureMessage(err)}
	s.preview = nil
	s.resetLimiter()
}

func (s *Session) armSplash() {
	if len(s.messages) == 0 && s.preview != nil && s.state == StateMessage {
		s.state = StatePreviewSplash
	}
}

func (s *Session) resetLimiter() {
	s.limiter = rate.NewLimiter(rate.Every(s.opts.MessageInterval), 1)
	s.lastMessage = time.Time{}
}

func (s *Session) renderPreview() error {
	img, err := s.render()
	if err != nil {
		return err
	}
	s.preview = img
	return nil
}

func (s *Session) render() (*raster.Image, error) {
	return raster.Render(s.walk, s.width, s.height, s.opts.Theme.PreviewBackground, s.opts.Theme.PreviewPath)
}

// repaint blits the finished walk at the current size. DONE is terminal, so
// a size that cannot be drawn is skipped rather than failed.
func (s *Session) repaint() {
	img, err := s.render()
	if err != nil {
		s.logger.Warn("repaint skipped", zap.Int("width", s.width), zap.Int("height", s.height), zap.Error(err))
		return
	}
	s.preview = img
	s.surface.Blit(img)
}

func (s *Session) drawMessage(now time.Time) bool {
	if len(s.messages) == 0 {
		return false
	}
	if !s.limiter.AllowN(now, 1) {
		return false
	}

	var delta int64
	if !s.lastMessage.IsZero() {
		delta = now.Sub(s.lastMessage).Milliseconds()
	}
	s.lastMessage = now
	msg := s.messages[messageIndex(delta, len(s.messages))]

	w, h := s.surface.Size()
	x := w / 2
	if m, ok := s.surface.(TextMeasurer); ok {
		x -= m.TextWidth(msg) / 2
	}
	y := h/2 - s.surface.LineHeight()/2

	s.surface.Background(s.opts.Theme.MessageBackground)
	s.surface.Text(x, y, msg, s.opts.Theme.MessageText)
	return true
}

func (s *Session) drawStep(now time.Time) bool {
	if s.frame >= len(s.walk) {
		s.state = StateDone
		return false
	}

	ox, oy := s.width/2, s.height/2
	if s.frame > 0 {
		prev := s.walk[s.frame-1]
		s.surface.Dot(ox+prev.X, oy+prev.Y, s.opts.DotSize, s.opts.Theme.Path)
	}
	cur := s.walk[s.frame]
	s.surface.Dot(ox+cur.X, oy+cur.Y, s.opts.DotSize, s.opts.Theme.Dot)
	s.frame++

	if s.opts.ShowStats {
		s.drawStats(now)
	}
	if s.frame >= len(s.walk) {
		s.state = StateDone
		s.logger.Debug("end of walk", zap.String("name", s.config.Name), zap.Int("points", len(s.walk)))
	}
	return true
}

func (s *Session) drawStats(now time.Time) {
	lh := s.surface.LineHeight()
	s.surface.Bar(0, 0, s.width, lh+4, s.opts.Theme.StatsBackground)
	line := fmt.Sprintf("%d fps | %ds | %s", s.meter.rate(), int(now.Sub(s.start)/time.Second), s.label)
	s.surface.Text(4, 2, line, s.opts.Theme.StatsText)
}
