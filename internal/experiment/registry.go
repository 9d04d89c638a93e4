package experiment

import (
	"fmt"

	"github.com/san-kum/advect/internal/fv"
	"github.com/san-kum/advect/internal/ic"
	"github.com/san-kum/advect/internal/metrics"
	"github.com/san-kum/advect/internal/schemes"
	"github.com/san-kum/advect/internal/sim"
)

type Registry struct {
	schemes  map[string]func() fv.Scheme
	profiles map[string]func(g *fv.Grid, params map[string]float64) ic.Profile
}

func NewRegistry() *Registry {
	r := &Registry{
		schemes:  make(map[string]func() fv.Scheme),
		profiles: make(map[string]func(g *fv.Grid, params map[string]float64) ic.Profile),
	}

	r.schemes["upwind"] = func() fv.Scheme { return schemes.NewUpwind() }
	r.schemes["laxwendroff"] = func() fv.Scheme { return schemes.NewLaxWendroff() }

	r.profiles["gauss"] = func(g *fv.Grid, params map[string]float64) ic.Profile {
		return ic.NewGaussian(params["center"], params["width"], params["amplitude"])
	}
	r.profiles["square"] = func(g *fv.Grid, params map[string]float64) ic.Profile {
		half := params["width"]
		if half <= 0 {
			half = g.Length() / 4
		}
		return ic.NewSquare(params["center"]-half, params["center"]+half, params["amplitude"])
	}
	r.profiles["sine"] = func(g *fv.Grid, params map[string]float64) ic.Profile {
		return ic.NewSine(g.X0(), g.Length(), params["amplitude"], int(params["waves"]))
	}
	r.profiles["triangle"] = func(g *fv.Grid, params map[string]float64) ic.Profile {
		return ic.NewTriangle(params["center"], params["width"], params["amplitude"])
	}

	return r
}

func (r *Registry) GetScheme(name string) (fv.Scheme, error) {
	fn, ok := r.schemes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scheme: %s", name)
	}
	return fn(), nil
}

func (r *Registry) GetProfile(name string, g *fv.Grid, params map[string]float64) (ic.Profile, error) {
	fn, ok := r.profiles[name]
	if !ok {
		return nil, fmt.Errorf("unknown profile: %s", name)
	}
	return fn(g, params), nil
}

func (r *Registry) ListSchemes() []string {
	names := make([]string, 0, len(r.schemes))
	for name := range r.schemes {
		names = append(names, name)
	}
	return names
}

func (r *Registry) ListProfiles() []string {
	names := make([]string, 0, len(r.profiles))
	for name := range r.profiles {
		names = append(names, name)
	}
	return names
}

func (r *Registry) DefaultMetrics(dx float64) []sim.Metric {
	return []sim.Metric{
		metrics.NewMassDrift(dx),
		metrics.NewVariationGrowth(),
		metrics.NewOvershoot(),
	}
}
