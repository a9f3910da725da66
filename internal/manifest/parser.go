package manifest

import (
	"fmt"
	"os"
	"strings"

	"go.yaml.in/yaml/v3"
)

// SchemaError is returned by ParseFile when a spec file violates the schema.
type SchemaError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *SchemaError) Error() string {
	msgs := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		msgs[i] = issue.String()
	}
	return fmt.Sprintf("spec file %s: %s", e.Path, strings.Join(msgs, "; "))
}

// Unwrap lets errors.Is match ErrInvalidSpec.
func (e *SchemaError) Unwrap() error { return ErrInvalidSpec }

// ParseFile reads a YAML or JSON spec file, validates it against the
// embedded schema, and decodes it. Defaults are not applied.
func ParseFile(path string) (*SkillSpec, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, err
	}

	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating spec file %s: %w", path, err)
	}
	if !result.Valid {
		return nil, &SchemaError{Path: path, Issues: result.Issues}
	}

	return Parse(data, path)
}

// Parse decodes spec bytes without schema validation. path is only used in
// error messages.
func Parse(data []byte, path string) (*SkillSpec, error) {
	var spec SkillSpec
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return nil, fmt.Errorf("parsing spec %s: %w", path, err)
	}
	return &spec, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
