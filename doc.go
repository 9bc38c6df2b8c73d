// Package soco provides online and offline algorithms for Smoothed Convex
// Optimization (SCO) applied to right-sizing data-center capacity.
//
// At each of T discrete time slots a controller picks a configuration
// vector x_t describing how many servers of each type are active. The
// objective is to minimize the sum over time of a hitting cost (energy,
// delay-driven revenue loss) plus a switching cost that penalizes the
// distance between successive configurations.
//
// Subpackages:
//
//	problem/      — the SCO instance: dimension, horizon, bounds, hitting cost
//	schedule/     — time-indexed configuration containers
//	objective/    — total-cost evaluation of a schedule against a problem
//	numerics/     — projection, bisection, finite differences
//	optimizer/    — bounded derivative-free minimization
//	bounds/       — the bound oracle behind Lazy Capacity Provisioning
//	lcp/          — the Lazy Capacity Provisioning family of online algorithms
//	graphsearch/  — exact offline optimum for integral SCO via layered search
//	convexsolver/ — offline optimum for fractional SCO via convex optimization
//	streaming/    — drives an online algorithm slot-by-slot
//
// soco is a pure computation library: it performs no I/O and does no
// logging. Every operation returns a value or one of the typed errors
// described in each package; callers decide what to do with failures.
package soco
