package wireworld

import (
	"strconv"

	"wireworld/internal/core"
)

// Parameters describes the current configuration and population.
func (w *World) Parameters() core.ParameterSnapshot {
	census := w.board.Census()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", w.board.Width()),
				intParam("h", "Height", w.board.Height()),
				int64Param("seed", "Seed", w.cfg.Seed),
			},
		},
		{
			Name: "Layout",
			Params: []core.Parameter{
				{Key: "pattern", Label: "Pattern", Type: core.ParamTypeString, Value: w.cfg.Pattern},
				floatParam("wire_density", "Wire density", w.cfg.WireDensity),
				floatParam("head_chance", "Head chance", w.cfg.HeadChance),
			},
		},
		{
			Name: "Census",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.FormatUint(w.board.Generation(), 10)},
				intParam("heads", "Heads", census.Count(Head)),
				intParam("tails", "Tails", census.Count(Tail)),
				intParam("wires", "Wires", census.Count(Wire)),
			},
		},
	}}
}

// ParameterControls lists the settings adjustable from the HUD. They take
// effect on the next Reset.
func (w *World) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: "seed", Label: "Seed", Type: core.ParamTypeInt, Step: 1, Min: 1, HasMin: true},
		{Key: "wire_density", Label: "Wire density", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1, HasMin: true, HasMax: true},
		{Key: "head_chance", Label: "Head chance", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates an integer setting.
func (w *World) SetIntParameter(key string, value int) bool {
	switch key {
	case "seed":
		if value < 1 {
			value = 1
		}
		w.cfg.Seed = int64(value)
		return true
	}
	return false
}

// SetFloatParameter updates a floating point setting, clamping to [0, 1].
func (w *World) SetFloatParameter(key string, value float64) bool {
	if value < 0 {
		value = 0
	}
	if value > 1 {
		value = 1
	}
	switch key {
	case "wire_density":
		w.cfg.WireDensity = value
	case "head_chance":
		w.cfg.HeadChance = value
	default:
		return false
	}
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}
