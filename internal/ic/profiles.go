package ic

import "math"

// Gaussian is a smooth pulse centered at Center with characteristic width
// Width. Smooth data shows each scheme's formal order of accuracy.
type Gaussian struct {
	Center, Width, Amplitude float64
}

func NewGaussian(center, width, amplitude float64) *Gaussian {
	if width <= 0 {
		width = 0.1
	}
	return &Gaussian{Center: center, Width: width, Amplitude: amplitude}
}

func (g *Gaussian) Eval(x float64) float64 {
	d := (x - g.Center) / g.Width
	return g.Amplitude * math.Exp(-d*d)
}

func (g *Gaussian) Name() string { return "gauss" }

// Square is a top-hat pulse on [Left, Right). Its discontinuities make each
// scheme's numerical diffusion obvious as smeared edges.
type Square struct {
	Left, Right, Amplitude float64
}

func NewSquare(left, right, amplitude float64) *Square {
	return &Square{Left: left, Right: right, Amplitude: amplitude}
}

func (s *Square) Eval(x float64) float64 {
	if x >= s.Left && x < s.Right {
		return s.Amplitude
	}
	return 0
}

func (s *Square) Name() string { return "square" }

// Sine is a single-frequency wave with Waves full periods across a domain of
// length Length starting at X0.
type Sine struct {
	X0, Length, Amplitude float64
	Waves                 int
}

func NewSine(x0, length, amplitude float64, waves int) *Sine {
	if waves < 1 {
		waves = 1
	}
	return &Sine{X0: x0, Length: length, Amplitude: amplitude, Waves: waves}
}

func (s *Sine) Eval(x float64) float64 {
	return s.Amplitude * math.Sin(2*math.Pi*float64(s.Waves)*(x-s.X0)/s.Length)
}

func (s *Sine) Name() string { return "sine" }

// Triangle is a symmetric tent centered at Center with base half-width
// HalfWidth, continuous but with kinks.
type Triangle struct {
	Center, HalfWidth, Amplitude float64
}

func NewTriangle(center, halfWidth, amplitude float64) *Triangle {
	if halfWidth <= 0 {
		halfWidth = 0.25
	}
	return &Triangle{Center: center, HalfWidth: halfWidth, Amplitude: amplitude}
}

func (t *Triangle) Eval(x float64) float64 {
	d := math.Abs(x - t.Center)
	if d >= t.HalfWidth {
		return 0
	}
	return t.Amplitude * (1 - d/t.HalfWidth)
}

func (t *Triangle) Name() string { return "triangle" }
