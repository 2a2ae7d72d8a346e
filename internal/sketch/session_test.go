package sketch_test

import (
	"context"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/randwalk/internal/raster"
	"github.com/san-kum/randwalk/internal/sketch"
	"github.com/san-kum/randwalk/internal/walk"
)

const registryDoc = `{
  "depth": 100,
  "algo": "davidBau",
  "seeds": [
    {"name": "a", "seed": 7},
    {"name": "short", "seed": 42, "depth": 3, "algo": "pseudoRandom"},
    {"name": "bad", "seed": 1.5}
  ]
}`

var _ = Describe("Session", func() {
	var (
		surface *recorder
		opts    sketch.Options
		t0      time.Time
	)

	newSession := func(name string, f staticFetcher) *sketch.Session {
		return sketch.NewSession(name, surface, sketch.NewLoader(f, nil), opts)
	}
	load := func(s *sketch.Session) {
		s.Complete(s.OnLoad(context.Background()))
	}
	at := func(d time.Duration) time.Time { return t0.Add(d) }

	BeforeEach(func() {
		surface = &recorder{w: 64, h: 48}
		opts = sketch.DefaultOptions()
		opts.ShowStats = false
		t0 = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	})

	Describe("loading", func() {
		It("starts in MESSAGE with the loading queue", func() {
			s := newSession("a", staticFetcher{data: []byte(registryDoc)})
			Expect(s.State()).To(Equal(sketch.StateMessage))
			Expect(s.Messages()).To(Equal(sketch.LoadingMessages))
		})

		It("renders messages no more often than the interval", func() {
			s := newSession("a", staticFetcher{data: []byte(registryDoc)})
			s.OnCanvasReady(64, 48)

			Expect(s.OnTick(at(0))).To(BeTrue())
			Expect(surface.ops("text")[0].text).To(Equal(sketch.LoadingMessages[0]))
			surface.take()

			Expect(s.OnTick(at(500 * time.Millisecond))).To(BeFalse())
			Expect(s.OnTick(at(1400 * time.Millisecond))).To(BeFalse())
			Expect(surface.calls).To(BeEmpty())

			Expect(s.OnTick(at(1600 * time.Millisecond))).To(BeTrue())
			Expect(surface.ops("background")).To(HaveLen(1))
			Expect(surface.ops("text")).To(HaveLen(1))
		})

		It("resolves the entry with registry defaults", func() {
			s := newSession("a", staticFetcher{data: []byte(registryDoc)})
			load(s)

			cfg, ok := s.Config()
			Expect(ok).To(BeTrue())
			Expect(cfg.Depth).To(Equal(100))
			Expect(cfg.Algo).To(Equal("davidBau"))
			Expect(s.Walk()).To(HaveLen(101))
			Expect(cfg.Stats).To(Equal(walk.Bounds(s.Walk())))
		})

		It("waits for the canvas before the splash", func() {
			s := newSession("short", staticFetcher{data: []byte(registryDoc)})
			load(s)
			Expect(s.State()).To(Equal(sketch.StateMessage))
			Expect(s.Messages()).To(BeEmpty())
			Expect(s.OnTick(at(0))).To(BeFalse())

			s.OnCanvasReady(64, 48)
			Expect(s.State()).To(Equal(sketch.StatePreviewSplash))
			Expect(s.Preview().Width).To(Equal(64))
		})
	})

	Describe("animation", func() {
		var s *sketch.Session

		BeforeEach(func() {
			s = newSession("short", staticFetcher{data: []byte(registryDoc)})
			s.OnCanvasReady(64, 48)
			load(s)
		})

		It("blits the preview once and then reveals one point per tick", func() {
			Expect(s.State()).To(Equal(sketch.StatePreviewSplash))

			Expect(s.OnTick(at(0))).To(BeTrue())
			Expect(surface.take()).To(Equal([]call{{op: "blit", x: 64, y: 48}}))
			Expect(s.State()).To(Equal(sketch.StateAnimating))

			w := s.Walk()
			Expect(s.OnTick(at(16 * time.Millisecond))).To(BeTrue())
			Expect(surface.take()).To(Equal([]call{
				{op: "dot", x: 32 + w[0].X, y: 24 + w[0].Y, color: opts.Theme.Dot},
			}))

			Expect(s.OnTick(at(32 * time.Millisecond))).To(BeTrue())
			Expect(surface.take()).To(Equal([]call{
				{op: "dot", x: 32 + w[0].X, y: 24 + w[0].Y, color: opts.Theme.Path},
				{op: "dot", x: 32 + w[1].X, y: 24 + w[1].Y, color: opts.Theme.Dot},
			}))
		})

		It("is DONE after depth+1 animating ticks and draws nothing after", func() {
			Expect(s.Walk()).To(HaveLen(4))
			s.OnTick(at(0))

			for i := 1; i <= 4; i++ {
				Expect(s.State()).To(Equal(sketch.StateAnimating))
				Expect(s.OnTick(at(time.Duration(i) * 16 * time.Millisecond))).To(BeTrue())
			}
			Expect(s.State()).To(Equal(sketch.StateDone))
			Expect(s.Frame()).To(Equal(4))

			surface.take()
			Expect(s.OnTick(at(time.Second))).To(BeFalse())
			Expect(s.OnTick(at(2 * time.Second))).To(BeFalse())
			Expect(surface.calls).To(BeEmpty())
		})

		It("draws the stats overlay when enabled", func() {
			s.SetShowStats(true)
			s.OnTick(at(0))
			s.OnTick(at(2000 * time.Millisecond))
			surface.take()

			s.OnTick(at(2500 * time.Millisecond))
			Expect(surface.ops("bar")).To(HaveLen(1))
			texts := surface.ops("text")
			Expect(texts).To(HaveLen(1))
			Expect(texts[0].text).To(HavePrefix("2 fps | 2s | "))
			Expect(texts[0].text).To(ContainSubstring(`"name":"short"`))
			Expect(texts[0].text).To(ContainSubstring(`"algo":"pseudoRandom"`))
		})

		It("re-arms the splash on resize without restarting the walk", func() {
			s.OnTick(at(0))
			s.OnTick(at(16 * time.Millisecond))
			s.OnTick(at(32 * time.Millisecond))
			Expect(s.Frame()).To(Equal(2))
			surface.take()

			s.OnResize(80, 60)
			Expect(s.State()).To(Equal(sketch.StatePreviewSplash))
			Expect(s.Preview().Width).To(Equal(80))
			Expect(surface.calls).To(BeEmpty())

			Expect(s.OnTick(at(48 * time.Millisecond))).To(BeTrue())
			Expect(surface.take()).To(Equal([]call{{op: "blit", x: 80, y: 60}}))

			w := s.Walk()
			s.OnTick(at(64 * time.Millisecond))
			dots := surface.ops("dot")
			Expect(dots).To(HaveLen(2))
			Expect(dots[1].x).To(Equal(40 + w[2].X))
			Expect(dots[1].y).To(Equal(30 + w[2].Y))
		})

		It("repaints once on resize after DONE and stays DONE", func() {
			for i := 0; i < 5; i++ {
				s.OnTick(at(time.Duration(i) * 16 * time.Millisecond))
			}
			Expect(s.State()).To(Equal(sketch.StateDone))
			surface.take()

			s.OnResize(100, 50)
			Expect(surface.take()).To(Equal([]call{{op: "blit", x: 100, y: 50}}))
			Expect(s.State()).To(Equal(sketch.StateDone))
			Expect(s.OnTick(at(time.Second))).To(BeFalse())
		})

		It("stays DONE on a degenerate resize", func() {
			for i := 0; i < 5; i++ {
				s.OnTick(at(time.Duration(i) * 16 * time.Millisecond))
			}
			Expect(s.State()).To(Equal(sketch.StateDone))
			surface.take()

			s.OnResize(0, 48)
			Expect(s.State()).To(Equal(sketch.StateDone))
			Expect(s.Err()).NotTo(HaveOccurred())
			Expect(s.Messages()).To(BeEmpty())
			Expect(surface.calls).To(BeEmpty())
			Expect(s.OnTick(at(time.Second))).To(BeFalse())

			s.OnResize(40, 30)
			Expect(surface.take()).To(Equal([]call{{op: "blit", x: 40, y: 30}}))
			Expect(s.State()).To(Equal(sketch.StateDone))
		})
	})

	Describe("failures", func() {
		It("shows exactly one message for a missing entry and never animates", func() {
			s := newSession("missing", staticFetcher{data: []byte(`{"seeds":[{"name":"a","seed":1}]}`)})
			s.OnCanvasReady(64, 48)
			load(s)

			Expect(s.Messages()).To(Equal([]string{"Missing key name"}))
			Expect(s.Err()).To(MatchError(walk.ErrNotFound))

			for i := 0; i < 20; i++ {
				s.OnTick(at(time.Duration(i) * 700 * time.Millisecond))
				Expect(s.State()).To(Equal(sketch.StateMessage))
			}
			for _, c := range surface.ops("text") {
				Expect(c.text).To(Equal("Missing key name"))
			}
			Expect(surface.ops("dot")).To(BeEmpty())
			Expect(surface.ops("blit")).To(BeEmpty())
		})

		It("shows the new message on the next tick", func() {
			s := newSession("bad", staticFetcher{data: []byte(registryDoc)})
			s.OnCanvasReady(64, 48)
			Expect(s.OnTick(at(0))).To(BeTrue())
			load(s)
			surface.take()

			Expect(s.OnTick(at(100 * time.Millisecond))).To(BeTrue())
			Expect(surface.ops("text")[0].text).To(Equal("seed is invalid: 1.5"))
		})

		It("reports fetch failures", func() {
			s := newSession("a", staticFetcher{err: walk.Errorf("fetch", walk.ErrNetwork, "Fetch not Ok: 503 Service Unavailable")})
			load(s)
			Expect(s.Messages()).To(Equal([]string{"Fetch not Ok: 503 Service Unavailable"}))
		})

		It("reports malformed documents", func() {
			s := newSession("a", staticFetcher{data: []byte(`{"seeds": [`)})
			load(s)
			Expect(s.Messages()).To(HaveLen(1))
			Expect(s.Err()).To(MatchError(walk.ErrParse))
		})

		It("treats a zero-sized canvas as fatal", func() {
			s := newSession("short", staticFetcher{data: []byte(registryDoc)})
			load(s)
			s.OnCanvasReady(0, 48)

			Expect(s.State()).To(Equal(sketch.StateMessage))
			Expect(s.Err()).To(MatchError(walk.ErrConfiguration))
			Expect(s.Err()).To(MatchError(raster.ErrDegenerate))
			Expect(s.Messages()).To(Equal([]string{"Canvas too small: 0x48"}))
		})
	})
})
