package manifest

import (
	"errors"
	"fmt"
	"go/token"
	"go/types"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/agentx-labs/skillmaker/internal/naming"
)

// ErrInvalidSpec marks a specification that cannot be generated.
var ErrInvalidSpec = errors.New("invalid skill specification")

var (
	namePattern  = regexp.MustCompile(`^[a-z][a-z0-9]*(_[a-z0-9]+)*$`)
	inputPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)
)

// Validate reports the first problem that makes s unusable for generation.
// It expects defaults to have been applied. Every returned error wraps
// ErrInvalidSpec.
func (s SkillSpec) Validate() error {
	if err := ValidateName(s.Name); err != nil {
		return err
	}
	if _, err := ParseVersion(s.Version); err != nil {
		return fmt.Errorf("%w: version %q is not semantic: %v", ErrInvalidSpec, s.Version, err)
	}

	seen := make(map[string]bool, len(s.Inputs))
	for _, in := range s.Inputs {
		if !inputPattern.MatchString(in) {
			return fmt.Errorf("%w: input %q must match %s", ErrInvalidSpec, in, inputPattern)
		}
		if token.IsKeyword(in) {
			return fmt.Errorf("%w: input %q is a Go keyword", ErrInvalidSpec, in)
		}
		if types.Universe.Lookup(in) != nil {
			return fmt.Errorf("%w: input %q shadows a predeclared Go identifier", ErrInvalidSpec, in)
		}
		if seen[in] {
			return fmt.Errorf("%w: input %q declared more than once", ErrInvalidSpec, in)
		}
		seen[in] = true
	}

	for _, out := range s.Outputs {
		if strings.TrimSpace(out) == "" {
			return fmt.Errorf("%w: output names must not be blank", ErrInvalidSpec)
		}
	}
	return nil
}

// ValidateName checks that name is usable both as a directory name and as
// the seed for generated Go identifiers.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidSpec)
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("%w: name %q must be lowercase words separated by underscores", ErrInvalidSpec, name)
	}
	if pkg := naming.PackageName(name); token.IsKeyword(pkg) {
		return fmt.Errorf("%w: name %q derives package %q, which is a Go keyword", ErrInvalidSpec, name, pkg)
	}
	return nil
}

// ParseVersion strips a leading "v" and parses the version string.
func ParseVersion(version string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(version, "v"))
}
