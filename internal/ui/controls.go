package ui

import (
	"math"
	"strconv"

	"github.com/juju/loggo"

	"wireworld/internal/core"
)

var logger = loggo.GetLogger("wireworld.ui")

// controlState tracks the displayed value of one adjustable parameter.
type controlState struct {
	control core.ParameterControl
	value   string

	intValue   int
	floatValue float64
	hasValue   bool
}

// controlSet binds a simulation's adjustable parameters to its setters. It
// holds no drawing state so the adjustment rules work without a window.
type controlSet struct {
	states      []controlState
	intSetter   core.IntParameterSetter
	floatSetter core.FloatParameterSetter
}

func newControlSet(sim core.Sim) *controlSet {
	cs := &controlSet{}
	if provider, ok := sim.(core.ParameterControlsProvider); ok {
		controls := provider.ParameterControls()
		cs.states = make([]controlState, len(controls))
		for i, ctrl := range controls {
			cs.states[i] = controlState{control: ctrl, value: "--"}
		}
	}
	if setter, ok := sim.(core.IntParameterSetter); ok {
		cs.intSetter = setter
	}
	if setter, ok := sim.(core.FloatParameterSetter); ok {
		cs.floatSetter = setter
	}
	return cs
}

// refresh copies current values from the snapshot into the control states.
func (cs *controlSet) refresh(snapshot core.ParameterSnapshot) {
	for i := range cs.states {
		state := &cs.states[i]
		state.hasValue = false
		state.value = "--"
		param, ok := snapshot.Lookup(state.control.Key)
		if !ok {
			continue
		}
		switch state.control.Type {
		case core.ParamTypeInt:
			parsed, err := strconv.Atoi(param.Value)
			if err != nil {
				continue
			}
			state.intValue = parsed
			state.floatValue = float64(parsed)
			state.value = strconv.Itoa(parsed)
			state.hasValue = true
		case core.ParamTypeFloat:
			parsed, err := strconv.ParseFloat(param.Value, 64)
			if err != nil {
				continue
			}
			state.floatValue = parsed
			state.value = formatFloat(state.control, parsed)
			state.hasValue = true
		}
	}
}

// target computes the value one step in direction, clamped to the control's
// bounds. ok is false when the value would not change or no setter exists.
func (cs *controlSet) target(state *controlState, direction int) (float64, bool) {
	if state == nil || direction == 0 || !state.hasValue {
		return 0, false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		if cs.intSetter == nil {
			return 0, false
		}
		step := math.Round(state.control.Step)
		if step <= 0 {
			step = 1
		}
		cur := float64(state.intValue)
		next := math.Round(state.control.Clamp(cur + float64(direction)*step))
		return next, next != cur
	case core.ParamTypeFloat:
		if cs.floatSetter == nil {
			return 0, false
		}
		step := state.control.Step
		if step <= 0 {
			step = 0.05
		}
		next := state.control.Clamp(state.floatValue + float64(direction)*step)
		return next, math.Abs(next-state.floatValue) >= 1e-9
	}
	return 0, false
}

func (cs *controlSet) canAdjust(i, direction int) bool {
	_, ok := cs.target(&cs.states[i], direction)
	return ok
}

// adjust moves control i one step in direction and reports whether the
// simulation accepted the new value.
func (cs *controlSet) adjust(i, direction int) bool {
	state := &cs.states[i]
	next, ok := cs.target(state, direction)
	if !ok {
		return false
	}
	switch state.control.Type {
	case core.ParamTypeInt:
		v := int(next)
		if !cs.intSetter.SetIntParameter(state.control.Key, v) {
			return false
		}
		state.intValue = v
		state.floatValue = next
		state.value = strconv.Itoa(v)
	case core.ParamTypeFloat:
		if !cs.floatSetter.SetFloatParameter(state.control.Key, next) {
			return false
		}
		state.floatValue = next
		state.value = formatFloat(state.control, next)
	}
	logger.Debugf("%s set to %s", state.control.Key, state.value)
	return true
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = 0.05
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}
