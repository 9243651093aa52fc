// Package generate runs the theme generation pipeline:
//
//	Prompt -> Derive -> Acquire -> Classify -> Manifest check -> Transform+Write -> PostActions
//
// Every stage before Transform+Write is fatal on error and runs before
// anything is written. Transform+Write handles files independently on a
// bounded worker pool; a file that fails is recorded in the result and the
// run continues.
package generate
