// Package manifest defines the skill specification consumed by the generator.
// It applies defaults, rejects unusable specifications before any filesystem
// work, and loads YAML or JSON spec files validated against an embedded JSON
// Schema.
package manifest
