package scaffold

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	"github.com/agentx-labs/skillmaker/internal/logger"
	"github.com/agentx-labs/skillmaker/internal/manifest"
	"github.com/agentx-labs/skillmaker/internal/templates"
)

// Artifact file names.
const (
	PrimaryFile = "skill.go"
	SchemaFile  = "schema.go"
	LogicFile   = "logic.go"
	TestFile    = "skill_test.go"
	DocFile     = "SKILL.md"
)

// Artifacts lists the generated files in write order.
var Artifacts = []string{PrimaryFile, SchemaFile, LogicFile, TestFile, DocFile}

// ErrSkillExists is returned when fail-if-exists is set and the skill
// directory is already present.
var ErrSkillExists = errors.New("skill already exists")

var artifactTemplates = func() map[string]*template.Template {
	extra := template.FuncMap{"structFields": structFields}
	m := make(map[string]*template.Template, len(Artifacts))
	for _, name := range Artifacts {
		m[name] = templates.Must(templates.ParseFS(scaffoldFS, "scaffolds/skill/"+name+".tmpl", extra))
	}
	return m
}()

// Result holds the outcome of a generation.
type Result struct {
	OutputDir string   // absolute skill directory
	Files     []string // artifact names, in write order
	Warnings  []string
}

// Generator writes skill directories under a fixed output root.
type Generator struct {
	root         string
	failIfExists bool
}

// Option configures a Generator.
type Option func(*Generator)

// WithFailIfExists makes Generate return ErrSkillExists instead of
// overwriting an existing skill directory.
func WithFailIfExists(v bool) Option {
	return func(g *Generator) { g.failIfExists = v }
}

// New returns a Generator writing under outputRoot.
func New(outputRoot string, opts ...Option) *Generator {
	g := &Generator{root: outputRoot}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Root returns the output root.
func (g *Generator) Root() string { return g.root }

// SkillDir returns the directory a skill named name is written to.
func (g *Generator) SkillDir(name string) string {
	return filepath.Join(g.root, name)
}

// Generate writes every artifact for spec and returns what it wrote.
// Existing files are overwritten. A failure part way leaves the files
// already written in place.
func (g *Generator) Generate(ctx context.Context, spec manifest.SkillSpec) (*Result, error) {
	spec = spec.WithDefaults()
	if err := spec.Validate(); err != nil {
		return nil, err
	}

	data, err := NewScaffoldData(spec)
	if err != nil {
		return nil, err
	}

	var warnings []string
	if !templates.IsKnown(spec.Template) {
		warnings = append(warnings,
			fmt.Sprintf("unknown template %q, using %q", spec.Template, data.Template))
	}

	data.Body, err = resolveBody(spec, data)
	if err != nil {
		return nil, err
	}

	log := logger.G(ctx).WithField("skill", spec.Name).WithField("template", data.Template)

	if err := os.MkdirAll(g.root, 0o755); err != nil {
		return nil, fmt.Errorf("creating output root: %w", err)
	}

	dir := g.SkillDir(spec.Name)
	if g.failIfExists {
		if _, err := os.Stat(dir); err == nil {
			return nil, fmt.Errorf("%w: %s", ErrSkillExists, dir)
		}
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating skill directory: %w", err)
	}

	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving skill directory: %w", err)
	}

	result := &Result{OutputDir: absDir, Warnings: warnings}
	for _, name := range Artifacts {
		var buf bytes.Buffer
		if err := artifactTemplates[name].Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("rendering %s: %w", name, err)
		}

		outPath := filepath.Join(absDir, name)
		if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("writing %s: %w", outPath, err)
		}
		log.WithField("file", name).Debug("wrote artifact")
		result.Files = append(result.Files, name)
	}

	log.WithField("dir", absDir).Debug("skill generated")
	return result, nil
}

// resolveBody returns spec.Logic verbatim when set, otherwise the rendered
// variant body.
func resolveBody(spec manifest.SkillSpec, data *ScaffoldData) (string, error) {
	if spec.Logic != "" {
		return spec.Logic, nil
	}

	variant := templates.Lookup(spec.Template)
	if err := checkLocals(variant, spec.Inputs); err != nil {
		return "", err
	}
	return variant.Render(templates.BodyParams{
		Inputs:      spec.Inputs,
		OutputType:  data.OutputType,
		Description: spec.Description,
	})
}
