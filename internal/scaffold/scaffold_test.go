package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/agentx-labs/skillmaker/internal/manifest"
)

func TestNewScaffoldData(t *testing.T) {
	spec := manifest.SkillSpec{
		Name:        "price_momentum",
		Description: "Momentum indicator",
		Template:    "scoring",
		Inputs:      []string{"close_prices", "window"},
	}.WithDefaults()

	d, err := NewScaffoldData(spec)
	if err != nil {
		t.Fatalf("NewScaffoldData() error: %v", err)
	}

	checks := map[string][2]string{
		"PackageName": {d.PackageName, "pricemomentum"},
		"TypeName":    {d.TypeName, "PriceMomentum"},
		"InputType":   {d.InputType, "PriceMomentumInput"},
		"OutputType":  {d.OutputType, "PriceMomentumOutput"},
		"Template":    {d.Template, "scoring"},
		"SampleField": {d.SampleField, "ClosePrices"},
	}
	for field, c := range checks {
		if c[0] != c[1] {
			t.Errorf("%s = %q, want %q", field, c[0], c[1])
		}
	}

	var outputs []string
	for _, f := range d.OutputFields {
		outputs = append(outputs, f.Name)
	}
	if want := []string{"Success", "Data", "Score", "Reasons"}; !reflect.DeepEqual(outputs, want) {
		t.Errorf("OutputFields = %v, want %v", outputs, want)
	}
}

func TestNewScaffoldData_UnknownTemplateFallsBack(t *testing.T) {
	d, err := NewScaffoldData(manifest.SkillSpec{Name: "x", Template: "arbitrage"}.WithDefaults())
	if err != nil {
		t.Fatalf("NewScaffoldData() error: %v", err)
	}
	if d.Template != "simple" {
		t.Errorf("Template = %q, want %q", d.Template, "simple")
	}
	if len(d.OutputFields) != 2 {
		t.Errorf("simple output should only carry Success and Data, got %d fields", len(d.OutputFields))
	}
}

func TestNewScaffoldData_Collisions(t *testing.T) {
	tests := []struct {
		name string
		spec manifest.SkillSpec
	}{
		{"wrapper named New", manifest.SkillSpec{Name: "new"}},
		{"wrapper named SkillName", manifest.SkillSpec{Name: "skill_name"}},
		{"inputs with the same field", manifest.SkillSpec{Name: "x", Inputs: []string{"price1", "price_1"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewScaffoldData(tt.spec.WithDefaults())
			if !errors.Is(err, manifest.ErrInvalidSpec) {
				t.Errorf("error = %v, want ErrInvalidSpec", err)
			}
		})
	}
}

func TestStructFields(t *testing.T) {
	got := structFields([]StructField{
		{Name: "A", Type: "int", Key: "a"},
		{Name: "Bcd", Type: "string", Key: "bcd", Omit: true},
	})
	want := "\tA   int    `json:\"a\"`\n\tBcd string `json:\"bcd,omitempty\"`"
	if got != want {
		t.Errorf("structFields() =\n%s\nwant\n%s", got, want)
	}
}

func TestGenerate_PriceMomentumScoring(t *testing.T) {
	root := t.TempDir()
	g := New(root)

	result, err := g.Generate(context.Background(), manifest.SkillSpec{
		Name:        "price_momentum",
		Description: "Momentum indicator",
		Template:    "scoring",
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	wantDir, _ := filepath.Abs(filepath.Join(root, "price_momentum"))
	if result.OutputDir != wantDir {
		t.Errorf("OutputDir = %q, want %q", result.OutputDir, wantDir)
	}
	if !reflect.DeepEqual(result.Files, Artifacts) {
		t.Errorf("Files = %v, want %v", result.Files, Artifacts)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	entries, err := os.ReadDir(result.OutputDir)
	if err != nil {
		t.Fatalf("reading skill dir: %v", err)
	}
	if len(entries) != len(Artifacts) {
		t.Errorf("skill dir holds %d entries, want %d", len(entries), len(Artifacts))
	}

	skill := readGenerated(t, result.OutputDir, PrimaryFile)
	assertContains(t, skill, `"price_momentum"`)
	assertContains(t, skill, "PriceMomentumOutput")
	assertContains(t, skill, "score >= threshold")
	assertContains(t, skill, "package pricemomentum")
	assertContains(t, skill, "type PriceMomentum struct{}")
	assertContains(t, skill, `SkillVersion     = "1.0.0"`)
	assertContains(t, skill, "func (s *PriceMomentum) Execute(in ...PriceMomentumInput) PriceMomentumOutput {")
	assertContains(t, skill, "\tDf any `json:\"df,omitempty\"`")
	assertContains(t, skill, "\tScore   int            `json:\"score\"`")

	for _, name := range []string{SchemaFile, LogicFile, TestFile} {
		assertContains(t, readGenerated(t, result.OutputDir, name), "package pricemomentum")
	}

	test := readGenerated(t, result.OutputDir, TestFile)
	assertContains(t, test, "func TestPriceMomentumBasic(t *testing.T) {")
	assertContains(t, test, "skill.Execute(PriceMomentumInput{Df: df})")
	assertContains(t, test, "Momentum indicator")
}

func TestGenerate_DescriptionEmbeddedEverywhere(t *testing.T) {
	desc := "Flags volume spikes above the rolling mean"
	for _, tmpl := range []string{"simple", "scoring", "trading"} {
		t.Run(tmpl, func(t *testing.T) {
			result, err := New(t.TempDir()).Generate(context.Background(), manifest.SkillSpec{
				Name:        "volume_spike",
				Description: desc,
				Template:    tmpl,
			})
			if err != nil {
				t.Fatalf("Generate() error: %v", err)
			}
			for _, name := range []string{PrimaryFile, TestFile, DocFile} {
				assertContains(t, readGenerated(t, result.OutputDir, name), desc)
			}
		})
	}
}

func TestGenerate_SkillDoc(t *testing.T) {
	result, err := New(t.TempDir()).Generate(context.Background(), manifest.SkillSpec{
		Name:        "swing_entry",
		Description: "Swing entries: pullbacks",
		Version:     "0.3.0",
		Template:    "trading",
		Inputs:      []string{"df", "atr"},
		Outputs:     []string{"signal"},
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	doc := readGenerated(t, result.OutputDir, DocFile)
	if !strings.HasPrefix(doc, "---\nname: swing_entry\n") {
		t.Errorf("SKILL.md does not open with frontmatter:\n%s", doc)
	}
	assertContains(t, doc, `description: "Swing entries: pullbacks"`)
	assertContains(t, doc, `version: "0.3.0"`)
	assertContains(t, doc, "template: trading")
	assertContains(t, doc, "inputs:\n  - \"df\"\n  - \"atr\"\n")
	assertContains(t, doc, "outputs:\n  - \"signal\"\n---")
	assertContains(t, doc, "| `atr` | `Atr` |")

	skill := readGenerated(t, result.OutputDir, PrimaryFile)
	assertContains(t, skill, "ShouldBuy  bool")
}

func TestGenerate_TwiceOverwrites(t *testing.T) {
	root := t.TempDir()
	g := New(root)
	spec := manifest.SkillSpec{Name: "rsi", Description: "first"}

	if _, err := g.Generate(context.Background(), spec); err != nil {
		t.Fatalf("first Generate() error: %v", err)
	}
	spec.Description = "second"
	result, err := g.Generate(context.Background(), spec)
	if err != nil {
		t.Fatalf("second Generate() error: %v", err)
	}

	skill := readGenerated(t, result.OutputDir, PrimaryFile)
	assertContains(t, skill, "second")
	assertNotContains(t, skill, "first")
}

func TestGenerate_FailIfExists(t *testing.T) {
	root := t.TempDir()
	spec := manifest.SkillSpec{Name: "rsi", Description: "d"}

	if _, err := New(root).Generate(context.Background(), spec); err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	_, err := New(root, WithFailIfExists(true)).Generate(context.Background(), spec)
	if !errors.Is(err, ErrSkillExists) {
		t.Errorf("error = %v, want ErrSkillExists", err)
	}
}

func TestGenerate_InvalidSpecTouchesNothing(t *testing.T) {
	root := filepath.Join(t.TempDir(), "out")

	tests := []manifest.SkillSpec{
		{Name: "Bad-Name"},
		{Name: "ok", Version: "soon"},
		{Name: "ok", Inputs: []string{"type"}},
		{Name: "new"},
		{Name: "type"},
		{Name: "range"},
		{Name: "fall_through"},
		{Name: "ok", Template: "scoring", Inputs: []string{"df", "score"}},
	}
	for _, spec := range tests {
		_, err := New(root).Generate(context.Background(), spec)
		if !errors.Is(err, manifest.ErrInvalidSpec) {
			t.Errorf("Generate(%+v) error = %v, want ErrInvalidSpec", spec, err)
		}
	}

	if _, err := os.Stat(root); !os.IsNotExist(err) {
		t.Errorf("output root was created for invalid specs (stat err: %v)", err)
	}
}

func TestGenerate_UnknownTemplateWarns(t *testing.T) {
	result, err := New(t.TempDir()).Generate(context.Background(), manifest.SkillSpec{
		Name:        "x",
		Description: "d",
		Template:    "arbitrage",
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	if len(result.Warnings) != 1 || !strings.Contains(result.Warnings[0], "arbitrage") {
		t.Errorf("Warnings = %v, want one fallback warning", result.Warnings)
	}
	assertContains(t, readGenerated(t, result.OutputDir, DocFile), "template: simple")
}

func TestGenerate_LogicReplacesTemplate(t *testing.T) {
	logic := "func execute(df any) CustomOutput {\n\treturn CustomOutput{Success: false}\n}"
	result, err := New(t.TempDir()).Generate(context.Background(), manifest.SkillSpec{
		Name:        "custom",
		Description: "d",
		Template:    "scoring",
		Inputs:      []string{"df", "score"},
		Logic:       logic,
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}

	skill := readGenerated(t, result.OutputDir, PrimaryFile)
	assertContains(t, skill, logic)
	assertNotContains(t, skill, "calculateScores")
}

func TestGenerate_EmptyInputsUseDefault(t *testing.T) {
	result, err := New(t.TempDir()).Generate(context.Background(), manifest.SkillSpec{
		Name:        "clock",
		Description: "d",
		Inputs:      []string{},
	})
	if err != nil {
		t.Fatalf("Generate() error: %v", err)
	}
	assertContains(t, readGenerated(t, result.OutputDir, TestFile), "skill.Execute(ClockInput{Df: df})")
}

func readGenerated(t *testing.T, dir, name string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("reading %s: %v", name, err)
	}
	return string(data)
}

func assertContains(t *testing.T, content, substr string) {
	t.Helper()
	if !strings.Contains(content, substr) {
		t.Errorf("content does not contain %q\n--- content ---\n%s", substr, content)
	}
}

func assertNotContains(t *testing.T, content, substr string) {
	t.Helper()
	if strings.Contains(content, substr) {
		t.Errorf("content should not contain %q", substr)
	}
}
