package registry

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/mitchellh/mapstructure"
	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/parser"

	"github.com/agentx-labs/skillmaker/internal/logger"
)

const skillFileName = "SKILL.md"

// Entry describes one generated skill.
type Entry struct {
	Name        string   `mapstructure:"name" json:"name"`
	Description string   `mapstructure:"description" json:"description,omitempty"`
	Version     string   `mapstructure:"version" json:"version,omitempty"`
	Template    string   `mapstructure:"template" json:"template,omitempty"`
	Inputs      []string `mapstructure:"inputs" json:"inputs,omitempty"`
	Outputs     []string `mapstructure:"outputs" json:"outputs,omitempty"`

	Dir         string `mapstructure:"-" json:"dir"`
	HasManifest bool   `mapstructure:"-" json:"has_manifest"`
}

// Discover lists the skill directories directly under root, sorted by name.
// A missing root yields no entries and no error.
func Discover(ctx context.Context, root string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(root)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading output root: %w", err)
	}

	log := logger.G(ctx)
	var entries []Entry
	for _, de := range dirEntries {
		dir := filepath.Join(root, de.Name())

		info, err := os.Stat(dir)
		if err != nil || !info.IsDir() {
			continue
		}

		entry, err := loadEntry(dir)
		if err != nil {
			log.WithField("dir", dir).WithError(err).Debug("skill has no readable frontmatter")
			entry = Entry{}
		} else {
			entry.HasManifest = true
		}
		// The directory name is authoritative; generation always writes there.
		entry.Name = de.Name()
		entry.Dir = dir
		entries = append(entries, entry)
	}

	return entries, nil
}

// loadEntry reads dir/SKILL.md and decodes its frontmatter.
func loadEntry(dir string) (Entry, error) {
	content, err := os.ReadFile(filepath.Join(dir, skillFileName))
	if err != nil {
		return Entry{}, fmt.Errorf("reading skill file: %w", err)
	}

	md := goldmark.New(
		goldmark.WithExtensions(meta.Meta),
	)

	var buf bytes.Buffer
	pctx := parser.NewContext()
	if err := md.Convert(content, &buf, parser.WithContext(pctx)); err != nil {
		return Entry{}, fmt.Errorf("parsing markdown: %w", err)
	}

	metaData, err := meta.TryGet(pctx)
	if err != nil {
		return Entry{}, fmt.Errorf("parsing frontmatter: %w", err)
	}
	if len(metaData) == 0 {
		return Entry{}, errors.New("missing frontmatter")
	}

	var entry Entry
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &entry,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Entry{}, fmt.Errorf("creating frontmatter decoder: %w", err)
	}
	if err := decoder.Decode(metaData); err != nil {
		return Entry{}, fmt.Errorf("decoding frontmatter: %w", err)
	}
	return entry, nil
}
