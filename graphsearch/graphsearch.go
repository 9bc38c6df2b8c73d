// Package graphsearch computes the exact offline optimum for integral
// Smoothed Convex Optimization via a layered Bellman relaxation over a
// time-indexed configuration lattice.
//
// The "graph" is never materialized as a persistent object: layer t is
// built from layer t-1 alone and layer t-1 is then dropped, so Search
// keeps only {current layer, previous layer} in memory rather than an
// adjacency structure covering the whole lattice. Grounded in the same
// ordered-precondition-then-solve shape used throughout this module,
// with a sync.RWMutex-guarded MapCache standing in for the one place a
// shared mutable structure (an optional cross-call cache) legitimately
// appears.
package graphsearch

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/soco/objective"
	"github.com/katalvlaran/soco/problem"
	"github.com/katalvlaran/soco/schedule"
)

// ErrUnsupportedProblemKind is returned when Search is called on a
// fractional problem: the lattice search is only defined over the
// integer configuration space.
var ErrUnsupportedProblemKind = errors.New("graphsearch: search requires an integral problem")

// ErrNoFeasibleSchedule is returned when no configuration at some time
// slot can be reached from any configuration in the previous layer
// (every transition's hitting or switching cost was undefined).
var ErrNoFeasibleSchedule = errors.New("graphsearch: no feasible schedule")

// Search finds the exact minimum-cost schedule for p using a layered
// Bellman relaxation in time order. At layer t it keeps, for every legal
// configuration x, the minimum cost of any path reaching (t, x) from the
// virtual source (0, zero-config) together with the schedule achieving
// it. The final answer is the minimum over the last layer, since the
// virtual sink (T+1, zero-config) connects to every configuration with
// zero additional weight.
//
// p must be an Integral problem; WithEpsilon switches to the
// approximate variant, searching a coarsened grid instead of every
// integer point.
//
// Ties are broken deterministically: predecessors and the final layer
// are always walked in the same order as the values slice that built
// the layer, never by ranging the Layer map directly, so the first path
// found with a given cost always wins regardless of Go's randomized map
// iteration order.
func Search(p *problem.Problem, opts ...Option) (schedule.Schedule, float64, error) {
	if p.Kind() != schedule.Integral {
		return nil, 0, ErrUnsupportedProblemKind
	}

	options := DefaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	values := legalValues(p.Bounds(), options.Epsilon)
	fp := fingerprint(p, options.Epsilon)

	zero := schedule.NewConfig(p.Dimension(), schedule.Integral)
	layer := Layer{configKey(zero): {config: zero, schedule: schedule.NewSchedule(p.Horizon()), cost: 0}}

	for t := 1; t <= p.Horizon(); t++ {
		if options.Cache != nil {
			if cached, ok := options.Cache.Load(fp, t, options.Inverted); ok {
				layer = cached
				continue
			}
		}

		next := make(Layer, len(values))
		for _, x := range values {
			var best layerEntry
			found := false
			for _, v := range values {
				prev, ok := layer[configKey(v)]
				if !ok {
					continue
				}
				cost, err := objective.SlotCost(p, t, prev.config, x, options.Inverted)
				if err != nil {
					continue
				}
				total := prev.cost + cost
				if !found || total < best.cost {
					best = layerEntry{config: x, schedule: appendConfig(prev.schedule, x), cost: total}
					found = true
				}
			}
			if found {
				next[configKey(x)] = best
			}
		}

		if len(next) == 0 {
			return nil, 0, fmt.Errorf("graphsearch: t=%d: %w", t, ErrNoFeasibleSchedule)
		}
		layer = next
		if options.Cache != nil {
			options.Cache.Store(fp, t, options.Inverted, layer)
		}
	}

	var best layerEntry
	found := false
	for _, v := range values {
		e, ok := layer[configKey(v)]
		if !ok {
			continue
		}
		if !found || e.cost < best.cost {
			best = e
			found = true
		}
	}
	if !found {
		return nil, 0, ErrNoFeasibleSchedule
	}
	return best.schedule, best.cost, nil
}

// appendConfig returns a new Schedule with x appended, never sharing a
// backing array with s: every legal x at a layer extends the same
// predecessor schedule independently, so naive append could let two
// branches silently overwrite each other's tail.
func appendConfig(s schedule.Schedule, x schedule.Config) schedule.Schedule {
	out := make(schedule.Schedule, len(s)+1)
	copy(out, s)
	out[len(s)] = x
	return out
}

// configKey builds a map key uniquely identifying a Config's values.
func configKey(c schedule.Config) string {
	var b strings.Builder
	for i, v := range c {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(v.String())
	}
	return b.String()
}

// fingerprint identifies a Problem's structural shape for caching
// purposes: two problems with the same fingerprint produce the same
// lattice. It covers only d, bounds, betas and epsilon, not the hitting
// cost or a general switching norm, so a stored layer (whose costs come
// from the hitting cost) is reused for any problem with the same shape.
func fingerprint(p *problem.Problem, epsilon float64) string {
	return fmt.Sprintf("d=%d;bounds=%v;betas=%v;eps=%g", p.Dimension(), p.Bounds(), p.Betas(), epsilon)
}

// legalValues enumerates the configuration lattice over bounds. epsilon
// <= 0 enumerates every integer point; epsilon > 0 keeps only values on
// a grid of that spacing per dimension, always including the bound
// itself so the feasible region's boundary is never pruned away.
func legalValues(bounds schedule.Config, epsilon float64) []schedule.Config {
	d := len(bounds)
	perDim := make([][]int64, d)
	for k, m := range bounds {
		max := m.Int()
		if epsilon <= 0 {
			perDim[k] = allValues(max)
		} else {
			step := int64(epsilon)
			if step < 1 {
				step = 1
			}
			perDim[k] = coarseValues(max, step)
		}
	}
	return cartesian(perDim)
}

func allValues(max int64) []int64 {
	vals := make([]int64, max+1)
	for v := int64(0); v <= max; v++ {
		vals[v] = v
	}
	return vals
}

func coarseValues(max, step int64) []int64 {
	set := make(map[int64]struct{})
	for v := int64(0); v <= max; v += step {
		set[v] = struct{}{}
	}
	set[max] = struct{}{}
	vals := make([]int64, 0, len(set))
	for v := range set {
		vals = append(vals, v)
	}
	sort.Slice(vals, func(i, j int) bool { return vals[i] < vals[j] })
	return vals
}

func cartesian(perDim [][]int64) []schedule.Config {
	d := len(perDim)
	var out []schedule.Config
	cur := make([]int64, d)
	var rec func(i int)
	rec = func(i int) {
		if i == d {
			c := make(schedule.Config, d)
			for k, v := range cur {
				c[k] = schedule.NewIntegral(v)
			}
			out = append(out, c)
			return
		}
		for _, v := range perDim[i] {
			cur[i] = v
			rec(i + 1)
		}
	}
	rec(0)
	return out
}
