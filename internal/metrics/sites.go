package metrics

import "github.com/san-kum/randwalk/internal/walk"

// UniqueSites counts distinct lattice points visited.
type UniqueSites struct {
	seen map[walk.Point]struct{}
}

func NewUniqueSites() *UniqueSites {
	return &UniqueSites{seen: make(map[walk.Point]struct{})}
}

func (u *UniqueSites) Name() string { return "unique_sites" }

func (u *UniqueSites) Observe(p walk.Point, step int) {
	u.seen[p] = struct{}{}
}

func (u *UniqueSites) Value() float64 { return float64(len(u.seen)) }

func (u *UniqueSites) Reset() {
	u.seen = make(map[walk.Point]struct{})
}

// OriginReturns counts steps that land back on the origin.
type OriginReturns struct {
	returns int
}

func NewOriginReturns() *OriginReturns { return &OriginReturns{} }

func (o *OriginReturns) Name() string { return "origin_returns" }

func (o *OriginReturns) Observe(p walk.Point, step int) {
	if step > 0 && p == (walk.Point{}) {
		o.returns++
	}
}

func (o *OriginReturns) Value() float64 { return float64(o.returns) }

func (o *OriginReturns) Reset() { o.returns = 0 }
