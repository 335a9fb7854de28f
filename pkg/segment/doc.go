// Package segment tokenizes filesystem page path segments and renders them
// as router path patterns.
//
// A page file name like "[id].html" or "[...slug].html" encodes route
// parameters in its name. Parse runs a single forward scan over the segment
// with an explicit state machine:
//
//	initial  --'['--> dynamic  --'['--> optional
//	initial  --'('--> group
//	initial  --any--> static
//	dynamic  --"..."--> catchall
//
// "]" closes a dynamic or catch-all param; an optional param closes only on
// "]]". ")" closes a group. Empty params, empty groups and segments that end
// inside brackets are rejected with ErrEmptyParam, ErrEmptyGroup and
// ErrUnterminatedParam.
//
// Path renders tokens back into the pattern syntax used by localized routes:
//
//	tokens, _ := segment.Parse("[...slug]")
//	segment.Path(tokens) // "/:slug(.*)*"
package segment
