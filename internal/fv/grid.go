package fv

import (
	"fmt"
	"math"
)

// Grid is a uniform periodic grid over [x0, x1). Immutable after construction.
type Grid struct {
	n      int
	x0, x1 float64
	dx     float64
}

func NewGrid(x0, x1 float64, n int) (*Grid, error) {
	if n < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrEmptyGrid, n)
	}
	if x1 <= x0 {
		return nil, fmt.Errorf("%w: [%g, %g)", ErrDomainBounds, x0, x1)
	}
	return &Grid{n: n, x0: x0, x1: x1, dx: (x1 - x0) / float64(n)}, nil
}

func (g *Grid) N() int          { return g.n }
func (g *Grid) Dx() float64     { return g.dx }
func (g *Grid) X0() float64     { return g.x0 }
func (g *Grid) X1() float64     { return g.x1 }
func (g *Grid) Length() float64 { return g.x1 - g.x0 }

// Center returns the coordinate of cell i's centroid.
func (g *Grid) Center(i int) float64 {
	return g.x0 + (float64(i)+0.5)*g.dx
}

func (g *Grid) Centers() []float64 {
	centers := make([]float64, g.n)
	for i := range centers {
		centers[i] = g.Center(i)
	}
	return centers
}

// Wrap maps x into [x0, x1) by periodicity.
func (g *Grid) Wrap(x float64) float64 {
	l := g.Length()
	r := math.Mod(x-g.x0, l)
	if r < 0 {
		r += l
	}
	return g.x0 + r
}
