// Package output places generated files in the output tree.
//
// Paths are renamed segment by segment so that template files named after
// the placeholder ("flair-header.php") take the theme's short name. Content
// is written atomically through a temporary sibling file, and nothing in the
// output tree is ever deleted.
package output
