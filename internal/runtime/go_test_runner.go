package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"sort"

	"github.com/agentx-labs/skillmaker/internal/logger"
	"github.com/agentx-labs/skillmaker/internal/scaffold"
)

// ErrNoTests is returned when the skill directory has no test file.
var ErrNoTests = errors.New("test file not found")

// GoTestRunner runs `go test -v` over every .go file of a skill directory.
// Passing files instead of a package path means the directory needs no
// go.mod of its own.
type GoTestRunner struct {
	// GoBin overrides the go binary; empty means look it up on PATH.
	GoBin string

	// Stdout and Stderr receive the live output; default to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
}

// Run executes the tests in dir and returns the captured output.
func (g *GoTestRunner) Run(ctx context.Context, dir string) (*Output, error) {
	goBin := g.GoBin
	if goBin == "" {
		var err error
		if goBin, err = exec.LookPath("go"); err != nil {
			return nil, fmt.Errorf("go runtime requires the Go toolchain: %w", err)
		}
	}

	testPath := filepath.Join(dir, scaffold.TestFile)
	if _, err := os.Stat(testPath); err != nil {
		return nil, fmt.Errorf("%w at %s: %w", ErrNoTests, testPath, err)
	}

	files, err := goFiles(dir)
	if err != nil {
		return nil, err
	}

	args := append([]string{"test", "-v"}, files...)
	cmd := exec.CommandContext(ctx, goBin, args...)
	cmd.Dir = dir

	stdout := g.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	stderr := g.Stderr
	if stderr == nil {
		stderr = os.Stderr
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = io.MultiWriter(stdout, &stdoutBuf)
	cmd.Stderr = io.MultiWriter(stderr, &stderrBuf)

	logger.G(ctx).WithField("dir", dir).WithField("files", files).Debug("running go test")
	err = cmd.Run()

	output := &Output{
		Stdout: stdoutBuf.String(),
		Stderr: stderrBuf.String(),
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return output, fmt.Errorf("go test interrupted: %w", ctxErr)
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing go test: %w", err)
	}

	return output, nil
}

// goFiles returns the base names of the .go files in dir, sorted.
func goFiles(dir string) ([]string, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.go"))
	if err != nil {
		return nil, fmt.Errorf("listing go files: %w", err)
	}
	files := make([]string, len(matches))
	for i, m := range matches {
		files[i] = filepath.Base(m)
	}
	sort.Strings(files)
	return files, nil
}
