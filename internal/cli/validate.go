package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/skillmaker/internal/manifest"
	"github.com/agentx-labs/skillmaker/internal/validate"
)

var validateSkill string

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check a generated skill against the skill principles",
	Long: `Check that a skill directory holds skill.go, schema.go and skill_test.go,
and that skill.go carries more than a stub. Exits 1 when any check fails.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir, err := skillPath(validateSkill)
		if err != nil {
			return err
		}
		err = reportValidation(cmd, newPresenter(cmd), validateSkill, dir)

		var exitErr *ExitError
		if errors.As(err, &exitErr) && errors.Is(exitErr.Err, validate.ErrSkillNotFound) {
			newPresenter(cmd).Failure("Skill not found: %s", dir)
			return &ExitError{Code: 1}
		}
		return err
	},
}

func init() {
	validateCmd.Flags().StringVar(&validateSkill, "skill", "", "Name of the skill to validate")
	_ = validateCmd.MarkFlagRequired("skill")
	rootCmd.AddCommand(validateCmd)
}

// skillPath resolves a --skill value under the output root. Only names a
// skill could have been generated with are accepted, so the result never
// leaves the root.
func skillPath(name string) (string, error) {
	if err := manifest.ValidateName(name); err != nil {
		return "", fmt.Errorf("--skill: %w", err)
	}
	return filepath.Join(settings.OutputDir, name), nil
}
