// Package validate checks a generated skill directory against the structural
// principles every skill must satisfy.
package validate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"

	"github.com/agentx-labs/skillmaker/internal/logger"
	"github.com/agentx-labs/skillmaker/internal/scaffold"
)

// MinPrimaryModuleSize is the length the primary module must exceed for the
// skill to count as holding real logic.
const MinPrimaryModuleSize = 200

// ErrSkillNotFound is returned when the skill directory does not exist.
var ErrSkillNotFound = errors.New("skill not found")

// Check names, in evaluation order.
const (
	CheckPrimary = scaffold.PrimaryFile
	CheckSchema  = scaffold.SchemaFile
	CheckTest    = scaffold.TestFile
	CheckLogic   = "logic code"
)

const skippedPrimaryMissing = "skipped: primary module missing"

// Check is the outcome of one principle.
type Check struct {
	Name   string
	Passed bool
	Detail string
}

// Report holds every check for one skill directory, in order.
type Report struct {
	Dir    string
	Checks []Check
}

// Passed reports whether every check passed.
func (r *Report) Passed() bool {
	for _, c := range r.Checks {
		if !c.Passed {
			return false
		}
	}
	return true
}

// Err combines the failed checks into one error, or returns nil.
func (r *Report) Err() error {
	var result *multierror.Error
	for _, c := range r.Checks {
		if c.Passed {
			continue
		}
		if c.Detail != "" {
			result = multierror.Append(result, fmt.Errorf("%s: %s", c.Name, c.Detail))
		} else {
			result = multierror.Append(result, fmt.Errorf("%s: failed", c.Name))
		}
	}
	return result.ErrorOrNil()
}

// Validator checks skills under a fixed output root.
type Validator struct {
	root string
}

// New returns a Validator resolving skill names under outputRoot.
func New(outputRoot string) *Validator {
	return &Validator{root: outputRoot}
}

// ValidateSkill validates <root>/<name>.
func (v *Validator) ValidateSkill(ctx context.Context, name string) (*Report, error) {
	return v.Validate(ctx, filepath.Join(v.root, name))
}

// Validate runs every check against dir. Only a missing dir is an error;
// failed checks are reported in the Report.
func (v *Validator) Validate(ctx context.Context, dir string) (*Report, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrSkillNotFound, dir)
	}
	if err != nil {
		return nil, fmt.Errorf("checking skill directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s is not a directory", ErrSkillNotFound, dir)
	}

	primary := fileCheck(dir, CheckPrimary)
	report := &Report{
		Dir: dir,
		Checks: []Check{
			primary,
			fileCheck(dir, CheckSchema),
			fileCheck(dir, CheckTest),
			logicCheck(dir, primary.Passed),
		},
	}

	log := logger.G(ctx).WithField("dir", dir)
	for _, c := range report.Checks {
		log.WithField("check", c.Name).WithField("passed", c.Passed).Debug("principle checked")
	}
	return report, nil
}

func fileCheck(dir, name string) Check {
	info, err := os.Stat(filepath.Join(dir, name))
	switch {
	case errors.Is(err, os.ErrNotExist):
		return Check{Name: name, Detail: "missing"}
	case err != nil:
		return Check{Name: name, Detail: err.Error()}
	case info.IsDir():
		return Check{Name: name, Detail: "is a directory"}
	}
	return Check{Name: name, Passed: true}
}

// logicCheck depends on the primary module check and never reads a file that
// check found missing.
func logicCheck(dir string, primaryExists bool) Check {
	if !primaryExists {
		return Check{Name: CheckLogic, Detail: skippedPrimaryMissing}
	}

	data, err := os.ReadFile(filepath.Join(dir, scaffold.PrimaryFile))
	if err != nil {
		return Check{Name: CheckLogic, Detail: err.Error()}
	}
	if n := utf8.RuneCount(data); n <= MinPrimaryModuleSize {
		return Check{
			Name:   CheckLogic,
			Detail: fmt.Sprintf("%s has %d characters, need more than %d", scaffold.PrimaryFile, n, MinPrimaryModuleSize),
		}
	}
	return Check{Name: CheckLogic, Passed: true}
}
