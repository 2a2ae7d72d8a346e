// Package sketch drives the animated presentation of a walk.
//
// A Session moves through four states:
//
//	MESSAGE -> PREVIEW_SPLASH -> ANIMATING -> DONE
//
// MESSAGE shows a rotating status line at most once per message interval.
// When the queue is empty and a preview image exists the session blits the
// preview once (PREVIEW_SPLASH), then reveals one walk point per tick
// (ANIMATING) until the last point has been drawn (DONE). A resize re-arms
// the splash without discarding the walk. A failed load replaces the queue
// with a single message and the session never leaves MESSAGE.
//
// # Hooks
//
// The hosting layer calls OnLoad off the render loop, then hands the result
// to Complete on the render loop. OnCanvasReady, OnResize and OnTick are
// also called on the render loop. Complete and OnTick are the only writers
// of session state, so no locking is needed as long as they do not overlap.
//
//	out := s.OnLoad(ctx) // any goroutine
//	s.Complete(out)      // render loop
//	s.OnTick(time.Now()) // render loop
//
// All drawing goes through a Surface.
package sketch
