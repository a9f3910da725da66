package manifest

import "slices"

// SkillSpec describes a skill to generate. A spec is built once per request
// and not modified after it is handed to the generator.
type SkillSpec struct {
	Name        string   `yaml:"name" json:"name"`
	Description string   `yaml:"description" json:"description"`
	Version     string   `yaml:"version,omitempty" json:"version,omitempty"`
	Inputs      []string `yaml:"inputs,omitempty" json:"inputs,omitempty"`
	Outputs     []string `yaml:"outputs,omitempty" json:"outputs,omitempty"`
	Template    string   `yaml:"template,omitempty" json:"template,omitempty"`
	// Logic, when set, replaces template interpolation with caller-supplied body text.
	Logic string `yaml:"logic,omitempty" json:"logic,omitempty"`
}

// Defaults applied by WithDefaults.
const (
	DefaultVersion  = "1.0.0"
	DefaultTemplate = "simple"
)

// DefaultInputs and DefaultOutputs are used when a spec leaves them empty.
var (
	DefaultInputs  = []string{"df"}
	DefaultOutputs = []string{"result"}
)

// WithDefaults returns a copy of s with empty fields set to their defaults.
// Slices are cloned so the copy never aliases the caller's spec.
func (s SkillSpec) WithDefaults() SkillSpec {
	out := s
	if out.Version == "" {
		out.Version = DefaultVersion
	}
	if out.Template == "" {
		out.Template = DefaultTemplate
	}
	if len(out.Inputs) == 0 {
		out.Inputs = slices.Clone(DefaultInputs)
	} else {
		out.Inputs = slices.Clone(out.Inputs)
	}
	if len(out.Outputs) == 0 {
		out.Outputs = slices.Clone(DefaultOutputs)
	} else {
		out.Outputs = slices.Clone(out.Outputs)
	}
	return out
}
