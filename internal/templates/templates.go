package templates

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"slices"
	"strings"
	"text/template"
)

//go:embed body/*.go.tmpl
var bodyFS embed.FS

// Variant keys.
const (
	Simple  = "simple"
	Scoring = "scoring"
	Trading = "trading"
)

// DefaultScoringLogic is the statement interpolated into the scoring body
// when the caller does not supply one.
const DefaultScoringLogic = "score += 1 // scoring logic"

// DefaultThreshold is the score a scoring skill needs to succeed when
// params carries no "threshold" entry.
const DefaultThreshold = 3

// paramsName is the extra argument the scoring variant reads its threshold from.
const paramsName = "params"

// Field is an output-record field a body assigns, beyond Success and Data.
type Field struct {
	Name string
	Type string
	JSON string
}

// BodyParams holds every value a body template interpolates.
type BodyParams struct {
	Inputs      []string // input parameter names, in order
	OutputType  string   // e.g. "PriceMomentumOutput"
	Description string
	Logic       string // scoring statement; DefaultScoringLogic when empty
}

// ParamList renders the inputs as a Go parameter list, e.g. "df any, window any".
func (p BodyParams) ParamList() string {
	parts := make([]string, len(p.Inputs))
	for i, in := range p.Inputs {
		parts[i] = in + " any"
	}
	return strings.Join(parts, ", ")
}

// ScoringParamList is ParamList with a trailing "params any" unless an input
// already carries that name.
func (p BodyParams) ScoringParamList() string {
	if slices.Contains(p.Inputs, paramsName) {
		return p.ParamList()
	}
	if len(p.Inputs) == 0 {
		return paramsName + " any"
	}
	return p.ParamList() + ", " + paramsName + " any"
}

// ScoringArgList is the argument list matching ScoringParamList.
func (p BodyParams) ScoringArgList() string {
	args := slices.Clone(p.Inputs)
	if !slices.Contains(args, paramsName) {
		args = append(args, paramsName)
	}
	return strings.Join(args, ", ")
}

// DefaultThreshold exposes the package constant to templates.
func (p BodyParams) DefaultThreshold() int {
	return DefaultThreshold
}

// Variant is one entry of the template library.
type Variant struct {
	Key    string
	fields []Field
	locals []string
	tmpl   *template.Template
}

// Locals returns the identifiers the body declares inside execute. An input
// parameter with one of these names would not compile.
func (v Variant) Locals() []string {
	return slices.Clone(v.locals)
}

// OutputFields returns the output-record fields the body sets in addition
// to Success and Data.
func (v Variant) OutputFields() []Field {
	return slices.Clone(v.fields)
}

// Render interpolates the variant with p and returns the body source.
func (v Variant) Render(p BodyParams) (string, error) {
	if p.Logic == "" {
		p.Logic = DefaultScoringLogic
	}
	var buf bytes.Buffer
	if err := v.tmpl.Execute(&buf, p); err != nil {
		return "", fmt.Errorf("rendering %s body: %w", v.Key, err)
	}
	return buf.String(), nil
}

var (
	keys     = []string{Simple, Scoring, Trading}
	variants = map[string]Variant{
		Simple: {Key: Simple},
		Scoring: {Key: Scoring, fields: []Field{
			{Name: "Score", Type: "int", JSON: "score"},
			{Name: "Reasons", Type: "[]string", JSON: "reasons"},
		}, locals: []string{"score", "reasons", "threshold", "success"}},
		Trading: {Key: Trading, fields: []Field{
			{Name: "ShouldBuy", Type: "bool", JSON: "should_buy"},
			{Name: "ShouldSell", Type: "bool", JSON: "should_sell"},
			{Name: "Score", Type: "int", JSON: "score"},
			{Name: "Reasons", Type: "[]string", JSON: "reasons"},
		}},
	}
)

func init() {
	for _, key := range keys {
		v := variants[key]
		v.tmpl = Must(ParseFS(bodyFS, path.Join("body", key+".go.tmpl")))
		variants[key] = v
	}
}

// Lookup returns the variant for key. Unknown keys silently resolve to Simple.
func Lookup(key string) Variant {
	if v, ok := variants[key]; ok {
		return v
	}
	return variants[Simple]
}

// IsKnown reports whether key names a variant.
func IsKnown(key string) bool {
	_, ok := variants[key]
	return ok
}

// Keys returns the variant keys in their fixed order.
func Keys() []string {
	return slices.Clone(keys)
}
