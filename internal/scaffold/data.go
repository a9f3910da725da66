package scaffold

import (
	"fmt"
	"slices"
	"strings"

	"github.com/agentx-labs/skillmaker/internal/manifest"
	"github.com/agentx-labs/skillmaker/internal/naming"
	"github.com/agentx-labs/skillmaker/internal/templates"
)

// StructField is one field of a generated struct.
type StructField struct {
	Name string // Go field name, e.g. "ClosePrices"
	Type string
	Key  string // JSON key, e.g. "close_prices"
	Omit bool   // add ",omitempty" to the tag
}

// ScaffoldData holds all template variables available to artifact templates.
type ScaffoldData struct {
	Name        string // e.g., "price_momentum"
	Description string
	Version     string
	Template    string // effective variant key after fallback

	PackageName string // e.g., "pricemomentum"
	TypeName    string // e.g., "PriceMomentum"
	InputType   string // e.g., "PriceMomentumInput"
	OutputType  string // e.g., "PriceMomentumOutput"

	Inputs       []string
	Outputs      []string
	InputFields  []StructField
	OutputFields []StructField
	SampleField  string // input field the generated test fills with sample data

	Body string // resolved execute body
}

// identifiers the primary file declares at package level besides the
// derived type names.
var fixedIdentifiers = []string{"New", "SkillName", "SkillVersion", "SkillDescription"}

// NewScaffoldData derives every name the artifacts need from spec. spec must
// already have defaults applied. The body is left empty.
func NewScaffoldData(spec manifest.SkillSpec) (*ScaffoldData, error) {
	variant := templates.Lookup(spec.Template)

	d := &ScaffoldData{
		Name:        spec.Name,
		Description: spec.Description,
		Version:     spec.Version,
		Template:    variant.Key,
		PackageName: naming.PackageName(spec.Name),
		TypeName:    naming.Pascal(spec.Name),
		InputType:   naming.TypeName(spec.Name, "Input"),
		OutputType:  naming.TypeName(spec.Name, "Output"),
		Inputs:      slices.Clone(spec.Inputs),
		Outputs:     slices.Clone(spec.Outputs),
	}

	if slices.Contains(fixedIdentifiers, d.TypeName) {
		return nil, fmt.Errorf("%w: name %q derives type %s, which the generated file already declares",
			manifest.ErrInvalidSpec, spec.Name, d.TypeName)
	}

	seen := make(map[string]string, len(spec.Inputs))
	for _, in := range spec.Inputs {
		field := naming.Pascal(in)
		if prev, ok := seen[field]; ok {
			return nil, fmt.Errorf("%w: inputs %q and %q both map to field %s",
				manifest.ErrInvalidSpec, prev, in, field)
		}
		seen[field] = in
		d.InputFields = append(d.InputFields, StructField{Name: field, Type: "any", Key: in, Omit: true})
	}
	if len(d.InputFields) > 0 {
		d.SampleField = d.InputFields[0].Name
	}

	d.OutputFields = []StructField{
		{Name: "Success", Type: "bool", Key: "success"},
		{Name: "Data", Type: "map[string]any", Key: "data"},
	}
	for _, f := range variant.OutputFields() {
		d.OutputFields = append(d.OutputFields, StructField{Name: f.Name, Type: f.Type, Key: f.JSON})
	}

	return d, nil
}

// checkLocals rejects inputs that would be redeclared by the variant body.
func checkLocals(variant templates.Variant, inputs []string) error {
	for _, local := range variant.Locals() {
		if slices.Contains(inputs, local) {
			return fmt.Errorf("%w: input %q clashes with a variable of the %s template",
				manifest.ErrInvalidSpec, local, variant.Key)
		}
	}
	return nil
}

// structFields renders fields as gofmt-aligned struct body lines.
func structFields(fields []StructField) string {
	nameW, typeW := 0, 0
	for _, f := range fields {
		nameW = max(nameW, len(f.Name))
		typeW = max(typeW, len(f.Type))
	}

	lines := make([]string, len(fields))
	for i, f := range fields {
		tag := f.Key
		if f.Omit {
			tag += ",omitempty"
		}
		lines[i] = fmt.Sprintf("\t%-*s %-*s `json:%q`", nameW, f.Name, typeW, f.Type, tag)
	}
	return strings.Join(lines, "\n")
}
