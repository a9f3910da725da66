// Package scaffold generates skill directories from embedded artifact
// templates. It powers the "skillmaker generate" command, writing the primary
// module, schema and logic placeholders, a test module and SKILL.md for each
// skill, with the execute body taken from the template library or supplied
// verbatim by the caller.
package scaffold
