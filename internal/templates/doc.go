// Package templates is the body-template library used by the skill generator.
// It maps a closed set of variant keys (simple, scoring, trading) to embedded
// text templates that render a complete execute function, and records which
// output-record fields each variant's body assigns. Interpolation values are
// passed as a typed BodyParams and every template is parsed when the package
// loads.
package templates
