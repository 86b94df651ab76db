package core

import "strconv"

// ParamType enumerates supported parameter value kinds.
type ParamType string

const (
	// ParamTypeInt denotes integer-valued parameters.
	ParamTypeInt ParamType = "int"
	// ParamTypeFloat denotes floating-point parameters.
	ParamTypeFloat ParamType = "float"
	// ParamTypeBool denotes boolean parameters.
	ParamTypeBool ParamType = "bool"
	// ParamTypeString denotes free-form parameters such as lists or enums.
	ParamTypeString ParamType = "string"
)

// Parameter describes a single tunable value exposed by a layout.
type Parameter struct {
	Key         string
	Label       string
	Type        ParamType
	Value       string
	Description string
}

// ParameterGroup clusters related parameters for presentation purposes.
type ParameterGroup struct {
	Name    string
	Params  []Parameter
	Summary string
}

// ParameterSnapshot captures the current set of tunables exposed by a layout.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// ParametersProvider exposes a layout's current parameter snapshot.
type ParametersProvider interface {
	Parameters() ParameterSnapshot
}

// Lookup returns the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl describes an adjustable parameter that should be exposed on
// the HUD. Steps and bounds are optional and interpreted based on the
// parameter type.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType

	Step float64

	Min    float64
	Max    float64
	HasMin bool
	HasMax bool
}

// ParameterControlsProvider exposes the list of HUD-adjustable controls.
type ParameterControlsProvider interface {
	ParameterControls() []ParameterControl
}

// IntParameterSetter allows HUD interactions to update integer parameters.
type IntParameterSetter interface {
	SetIntParameter(key string, value int) bool
}

// FloatParameterSetter allows HUD interactions to update floating point
// parameters.
type FloatParameterSetter interface {
	SetFloatParameter(key string, value float64) bool
}

// IntParam builds an integer parameter entry.
func IntParam(key, label string, value int) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

// FloatParam builds a floating point parameter entry.
func FloatParam(key, label string, value float64) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

// BoolParam builds a boolean parameter entry.
func BoolParam(key, label string, value bool) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}

// StringParam builds a free-form parameter entry.
func StringParam(key, label, value string) Parameter {
	return Parameter{
		Key:   key,
		Label: label,
		Type:  ParamTypeString,
		Value: value,
	}
}
