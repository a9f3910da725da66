package cli

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/agentx-labs/skillmaker/internal/runtime"
	"github.com/agentx-labs/skillmaker/internal/scaffold"
)

var testSkill string

var testCmd = &cobra.Command{
	Use:   "test",
	Short: "Run a generated skill's tests",
	Long: `Run "go test -v" over the skill's Go files and exit with its exit code.

The skill directory needs no go.mod; its files are passed to go test directly.`,
	Args: cobra.NoArgs,
	RunE: runTest,
}

func init() {
	testCmd.Flags().StringVar(&testSkill, "skill", "", "Name of the skill to test")
	_ = testCmd.MarkFlagRequired("skill")
	rootCmd.AddCommand(testCmd)
}

func runTest(cmd *cobra.Command, args []string) error {
	p := newPresenter(cmd)
	dir, err := skillPath(testSkill)
	if err != nil {
		return err
	}

	// Output is printed once, after the run, so the runner only captures.
	rt := runtime.DispatchRuntime(runtime.RuntimeGo, runtime.WithOutput(io.Discard, io.Discard))

	p.Info("Running tests: %s", testSkill)
	output, err := rt.Run(cmd.Context(), dir)
	if errors.Is(err, runtime.ErrNoTests) {
		p.Failure("Test file not found: %s", filepath.Join(dir, scaffold.TestFile))
		return &ExitError{Code: 1}
	}
	if err != nil {
		return fmt.Errorf("testing skill %q: %w", testSkill, err)
	}

	fmt.Fprint(cmd.OutOrStdout(), output.Stdout)
	if output.Stderr != "" {
		fmt.Fprint(cmd.ErrOrStderr(), output.Stderr)
	}

	if output.ExitCode != 0 {
		return &ExitError{Code: output.ExitCode}
	}
	return nil
}
