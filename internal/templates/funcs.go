package templates

import (
	"fmt"
	"io/fs"
	"path"
	"strconv"
	"strings"
	"text/template"
)

// Funcs are the helpers available to every generator template.
var Funcs = template.FuncMap{
	"comment": Comment,
	"quote":   strconv.Quote,
	"join":    strings.Join,
}

// Comment renders text as Go line comments, one "// " per line.
func Comment(text string) string {
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	for i, l := range lines {
		if l == "" {
			lines[i] = "//"
			continue
		}
		lines[i] = "// " + l
	}
	return strings.Join(lines, "\n")
}

// ParseFS parses a single template file from fsys with Funcs, then any extra
// maps, installed and missing keys treated as errors.
func ParseFS(fsys fs.FS, name string, extra ...template.FuncMap) (*template.Template, error) {
	src, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("reading template %s: %w", name, err)
	}
	t := template.New(path.Base(name)).Option("missingkey=error").Funcs(Funcs)
	for _, fm := range extra {
		t = t.Funcs(fm)
	}
	t, err = t.Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", name, err)
	}
	return t, nil
}

// Must panics when a built-in template fails to load. Built-in templates are
// embedded, so a failure here is a build defect caught by any test run.
func Must(t *template.Template, err error) *template.Template {
	if err != nil {
		panic(err)
	}
	return t
}
