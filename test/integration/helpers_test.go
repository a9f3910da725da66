//go:build integration

package integration_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// binPath is the skillmaker binary built once for the whole package.
var binPath string

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "skillmaker-bin-")
	if err != nil {
		fmt.Fprintln(os.Stderr, "creating bin dir:", err)
		os.Exit(1)
	}

	binPath = filepath.Join(dir, "skillmaker")
	build := exec.Command("go", "build", "-o", binPath, "../..")
	build.Stdout = os.Stdout
	build.Stderr = os.Stderr
	if err := build.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "building skillmaker:", err)
		os.RemoveAll(dir)
		os.Exit(1)
	}

	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

// testEnv holds paths to isolated test directories.
type testEnv struct {
	HomeDir   string // HOME, holds ~/.skillmaker/config.yaml
	WorkDir   string // working directory of every command
	OutputDir string // --output-dir passed to every command
}

// setupTestEnv creates isolated temp directories so config, .env lookup and
// generated skills never touch the real user environment.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	env := &testEnv{
		HomeDir: t.TempDir(),
		WorkDir: t.TempDir(),
	}
	env.OutputDir = filepath.Join(env.WorkDir, "generated_skills")
	return env
}

// result is the outcome of one CLI invocation.
type result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// run executes the binary with args inside env and the output dir set.
func (env *testEnv) run(t *testing.T, args ...string) result {
	t.Helper()

	args = append(args, "--output-dir", env.OutputDir)
	cmd := exec.Command(binPath, args...)
	cmd.Dir = env.WorkDir
	cmd.Env = append(os.Environ(),
		"HOME="+env.HomeDir,
		"NO_COLOR=1",
		"SKILLMAKER_OUTPUT_DIR=",
		"SKILLMAKER_LOG_LEVEL=",
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := result{}
	err := cmd.Run()
	var exitErr *exec.ExitError
	switch {
	case errors.As(err, &exitErr):
		res.ExitCode = exitErr.ExitCode()
	case err != nil:
		t.Fatalf("running skillmaker %v: %v", args, err)
	}
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	return res
}

// mustRun runs the binary and fails the test on a non-zero exit.
func (env *testEnv) mustRun(t *testing.T, args ...string) result {
	t.Helper()
	res := env.run(t, args...)
	if res.ExitCode != 0 {
		t.Fatalf("skillmaker %v exited %d\nstdout:\n%s\nstderr:\n%s", args, res.ExitCode, res.Stdout, res.Stderr)
	}
	return res
}

// writeFile creates a file with the given content, creating parent directories.
func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

// assertFileExists fails if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file %s to exist: %v", path, err)
	}
}

// assertContains fails if s does not contain substr.
func assertContains(t *testing.T, s, substr string) {
	t.Helper()
	if !strings.Contains(s, substr) {
		t.Errorf("expected output to contain %q\n--- output ---\n%s", substr, s)
	}
}
