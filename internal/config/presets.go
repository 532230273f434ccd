package config

import "sort"

// Presets are complete configurations selectable by name.
var Presets = map[string]*Config{
	"odeint": {
		Model: "constant", Stepper: "cashkarp", Matsubara: 100,
		Start: 0, End: 1, Dt: 0.1, AbsTol: 0.01, RelTol: 0.01, Adaptive: true,
		Init: InitConfig{Sig: Complex{Re: 1.1}, Gam: Complex{Re: 1.2}},
	},
	"fine": {
		Model: "constant", Stepper: "dopri5", Matsubara: 100,
		Start: 0, End: 1, Dt: 0.01, AbsTol: 1e-8, RelTol: 1e-8, Adaptive: true,
		Init: InitConfig{Sig: Complex{Re: 1.1}, Gam: Complex{Re: 1.2}},
	},
	"ladder": {
		Model: "ladder", Stepper: "cashkarp", Matsubara: 32,
		Start: 0, End: 5, Dt: 0.05, AbsTol: 1e-6, RelTol: 1e-6, MaxDt: 0.5, Adaptive: true,
		Init: InitConfig{Sig: Complex{Re: 0.5, Im: -0.1}, Gam: Complex{Re: 1.2}},
	},
	"decay": {
		Model: "decay", Stepper: "rk4", Matsubara: 16,
		Start: 0, End: 2, Dt: 0.01, AbsTol: 0.01, RelTol: 0.01, Rate: 2,
		Init: InitConfig{Sig: Complex{Re: 1, Im: 1}, Gam: Complex{Re: 2}},
	},
}

// GetPreset returns a copy of the named preset, or nil.
func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg.Clone()
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
