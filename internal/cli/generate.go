package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/skillmaker/internal/logger"
	"github.com/agentx-labs/skillmaker/internal/manifest"
	"github.com/agentx-labs/skillmaker/internal/presenter"
	"github.com/agentx-labs/skillmaker/internal/scaffold"
	"github.com/agentx-labs/skillmaker/internal/templates"
	"github.com/agentx-labs/skillmaker/internal/validate"
)

var (
	genName        string
	genDescription string
	genInputs      []string
	genOutputs     []string
	genTemplate    string
	genVersion     string
	genLogicFile   string
	genSpecFile    string
	genForce       bool
	genValidate    bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a new skill",
	Long: `Generate a skill directory under the output root.

The skill is described either by flags or by a YAML/JSON spec file; flags
given alongside --spec-file override the file's values.

Examples:
  skillmaker generate --name price_momentum --description "Momentum indicator" --template scoring
  skillmaker generate --name rsi --description "RSI" --inputs df,period --outputs signal
  skillmaker generate --spec-file specs/rsi.yaml --validate`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&genName, "name", "", "Skill name, lowercase words separated by underscores")
	f.StringVar(&genDescription, "description", "", "What the skill does")
	f.StringSliceVar(&genInputs, "inputs", nil, "Input parameter names (repeatable, comma or space separated)")
	f.StringSliceVar(&genOutputs, "outputs", nil, "Output names recorded in SKILL.md (repeatable, comma or space separated)")
	f.StringVar(&genTemplate, "template", manifest.DefaultTemplate, "Body template: "+strings.Join(templates.Keys(), ", "))
	f.StringVar(&genVersion, "version", manifest.DefaultVersion, "Semantic version of the skill")
	f.StringVar(&genLogicFile, "logic-file", "", "File whose contents replace the template body verbatim")
	f.StringVar(&genSpecFile, "spec-file", "", "YAML or JSON skill specification")
	f.BoolVar(&genForce, "force", true, "Overwrite an existing skill; --force=false fails instead")
	f.BoolVar(&genValidate, "validate", false, "Validate the skill after generating it")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	spec, err := buildSpec(cmd)
	if err != nil {
		return err
	}

	gen := scaffold.New(settings.OutputDir, scaffold.WithFailIfExists(!genForce))
	result, err := gen.Generate(cmd.Context(), spec)
	if err != nil {
		return fmt.Errorf("generating skill %q: %w", spec.Name, err)
	}

	p := newPresenter(cmd)
	printGenerateResult(p, result)

	if !genValidate {
		return nil
	}
	p.Info("")
	return reportValidation(cmd, p, spec.Name, result.OutputDir)
}

// buildSpec assembles the specification from --spec-file and the flags.
// Flags set explicitly win over the file.
func buildSpec(cmd *cobra.Command) (manifest.SkillSpec, error) {
	var spec manifest.SkillSpec
	if genSpecFile != "" {
		parsed, err := manifest.ParseFile(genSpecFile)
		if err != nil {
			return spec, err
		}
		spec = *parsed
	}

	flags := cmd.Flags()
	if flags.Changed("name") || genSpecFile == "" {
		spec.Name = genName
	}
	if flags.Changed("description") || genSpecFile == "" {
		spec.Description = genDescription
	}
	if flags.Changed("inputs") {
		spec.Inputs = splitNames(genInputs)
	}
	if flags.Changed("outputs") {
		spec.Outputs = splitNames(genOutputs)
	}
	if flags.Changed("template") || spec.Template == "" {
		spec.Template = genTemplate
	}
	if flags.Changed("version") || spec.Version == "" {
		spec.Version = genVersion
	}

	if spec.Name == "" {
		return spec, fmt.Errorf("--name is required (or set name in --spec-file)")
	}
	if spec.Description == "" {
		return spec, fmt.Errorf("--description is required (or set description in --spec-file)")
	}
	if !templates.IsKnown(spec.Template) {
		return spec, fmt.Errorf("--template must be one of %s, got %q",
			strings.Join(templates.Keys(), ", "), spec.Template)
	}

	if genLogicFile != "" {
		data, err := os.ReadFile(genLogicFile)
		if err != nil {
			return spec, fmt.Errorf("reading logic file: %w", err)
		}
		spec.Logic = string(data)
	}
	return spec, nil
}

// splitNames flattens values that themselves hold space separated names.
func splitNames(values []string) []string {
	var names []string
	for _, v := range values {
		names = append(names, strings.Fields(v)...)
	}
	return names
}

func printGenerateResult(p *presenter.Presenter, result *scaffold.Result) {
	p.Success("Skill generated: %s", result.OutputDir)
	for _, f := range result.Files {
		p.Info("  %s", f)
	}
	for _, w := range result.Warnings {
		p.Warning("%s", w)
	}
}

// reportValidation validates dir, prints each check and returns an
// ExitError when any check fails.
func reportValidation(cmd *cobra.Command, p *presenter.Presenter, name, dir string) error {
	report, err := validate.New(settings.OutputDir).Validate(cmd.Context(), dir)
	if err != nil {
		return &ExitError{Code: 1, Err: err}
	}

	p.Info("Validating %s:", name)
	for _, c := range report.Checks {
		p.Check(c.Name, c.Passed, c.Detail)
	}
	p.Info("")

	if !report.Passed() {
		logger.G(cmd.Context()).WithField("dir", dir).WithError(report.Err()).Debug("validation failed")
		p.Failure("Some checks failed")
		return &ExitError{Code: 1}
	}
	p.Success("All principle checks passed")
	return nil
}
