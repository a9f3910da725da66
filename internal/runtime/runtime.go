package runtime

import (
	"context"
	"fmt"
	"io"
)

// Runner runs the tests of the skill in dir.
type Runner interface {
	Run(ctx context.Context, dir string) (*Output, error)
}

// Output captures the result of a test run. A non-zero ExitCode is not an
// error; it means the tests ran and failed.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Supported runtime identifiers.
const (
	RuntimeGo = "go"
)

// Option configures a Runner returned by DispatchRuntime.
type Option func(*GoTestRunner)

// WithOutput sets where the live test output is written.
func WithOutput(stdout, stderr io.Writer) Option {
	return func(g *GoTestRunner) {
		g.Stdout = stdout
		g.Stderr = stderr
	}
}

// DispatchRuntime returns the Runner for the given runtime identifier.
// Unknown values yield a runner whose Run always fails.
func DispatchRuntime(runtime string, opts ...Option) Runner {
	switch runtime {
	case RuntimeGo:
		g := &GoTestRunner{}
		for _, opt := range opts {
			opt(g)
		}
		return g
	default:
		return &unknownRuntime{name: runtime}
	}
}

// unknownRuntime is returned when the runtime identifier is not recognized.
type unknownRuntime struct {
	name string
}

func (u *unknownRuntime) Run(_ context.Context, _ string) (*Output, error) {
	return nil, fmt.Errorf("unknown runtime %q: supported runtime is %q", u.name, RuntimeGo)
}
