// Package metadata rewrites named fields of the two structured files a theme
// template carries: the stylesheet header WordPress reads theme details from,
// and the package.json manifest.
//
// Field rewriting is line oriented and independent of token substitution; it
// runs after substitution on the same buffer. The manifest is parsed before a
// run starts so that a malformed manifest aborts generation before anything is
// written.
package metadata
