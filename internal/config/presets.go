package config

var Presets = map[string]map[string]*Config{
	"gauss": {
		"smooth": {
			Profile: "gauss", Scheme: "laxwendroff", Cells: 200, Speed: 1.0, Courant: 0.5, Duration: 1.0,
			ProfileParams: ProfileConfig{Center: 0.5, Width: 0.1, Amplitude: 1.0},
		},
		"diffusive": {
			Profile: "gauss", Scheme: "upwind", Cells: 200, Speed: 1.0, Courant: 0.5, Duration: 1.0,
			ProfileParams: ProfileConfig{Center: 0.5, Width: 0.1, Amplitude: 1.0},
		},
		"narrow": {
			Profile: "gauss", Scheme: "laxwendroff", Cells: 400, Speed: 1.0, Courant: 0.8, Duration: 2.0,
			ProfileParams: ProfileConfig{Center: 0.5, Width: 0.05, Amplitude: 1.0},
		},
	},
	"square": {
		"smearing": {
			Profile: "square", Scheme: "upwind", Cells: 200, Speed: 1.0, Courant: 0.5, Duration: 1.0,
			ProfileParams: ProfileConfig{Center: 0.5, Width: 0.25, Amplitude: 1.0},
		},
		"grid-speed": {
			Profile: "square", Scheme: "laxwendroff", Cells: 200, Speed: 1.0, Courant: 1.0, Duration: 1.0,
			ProfileParams: ProfileConfig{Center: 0.5, Width: 0.25, Amplitude: 1.0},
		},
	},
	"sine": {
		"convergence": {
			Profile: "sine", Scheme: "laxwendroff", Cells: 64, Speed: 1.0, Courant: 0.5, Duration: 1.0,
			ProfileParams: ProfileConfig{Amplitude: 1.0, Waves: 1},
		},
		"reverse": {
			Profile: "sine", Scheme: "upwind", Cells: 128, Speed: -1.0, Courant: 0.5, Duration: 1.0,
			ProfileParams: ProfileConfig{Amplitude: 1.0, Waves: 2},
		},
	},
	"triangle": {
		"tent": {
			Profile: "triangle", Scheme: "upwind", Cells: 200, Speed: 1.0, Courant: 0.5, Duration: 1.0,
			ProfileParams: ProfileConfig{Center: 0.5, Width: 0.25, Amplitude: 1.0},
		},
	},
}

func GetPreset(profile, name string) *Config {
	group, ok := Presets[profile]
	if !ok {
		return nil
	}
	cfg, ok := group[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(profile string) []string {
	group, ok := Presets[profile]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(group))
	for name := range group {
		names = append(names, name)
	}
	return names
}
