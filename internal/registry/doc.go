// Package registry discovers generated skills under an output root. Each skill
// directory is described by the frontmatter of its SKILL.md; directories
// without one are still listed by name.
package registry
