// Package substitute rewrites template text by applying an ordered table of
// placeholder replacement rules.
//
// Each rule names a placeholder token and the literal context around it.
// Matching is global and non-overlapping: the context is part of the match,
// so in " Flair Flair " only the first token is replaced because the second
// has lost its leading space. Rules are applied one after another over the
// whole buffer; anchored rules come first so they still see their context.
package substitute

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/types"
)

const (
	// Placeholder is the lowercase template token
	Placeholder = "flair"
	// PlaceholderTitle is the capitalised template token
	PlaceholderTitle = "Flair"
)

// Rule replaces every occurrence of Token that is immediately preceded by
// Before and followed by After.
type Rule struct {
	Name    string
	Before  string
	Token   string
	After   string
	Replace func(id types.ProjectIdentity) string
}

// Pattern returns the text the rule matches, context included
func (r Rule) Pattern() string {
	return r.Before + r.Token + r.After
}

// String implements fmt.Stringer
func (r Rule) String() string {
	return fmt.Sprintf("%s %q", r.Name, r.Pattern())
}

// apply rewrites every match of the rule in content, context included
func (r Rule) apply(content, replacement string) string {
	return strings.ReplaceAll(content, r.Pattern(), r.Before+replacement+r.After)
}

// Rules returns the default rule table, in application order
func Rules() []Rule {
	return []Rule{
		{
			Name:    "text-domain",
			Before:  "Text Domain: ",
			Token:   PlaceholderTitle,
			Replace: shortName,
		},
		{
			Name:    "quoted",
			Before:  "'",
			Token:   Placeholder,
			After:   "'",
			Replace: shortName,
		},
		{
			Name:    "underscore-prefix",
			Token:   Placeholder,
			After:   "_",
			Replace: func(id types.ProjectIdentity) string { return id.UnderscoredName },
		},
		{
			Name:    "space-before",
			Before:  " ",
			Token:   Placeholder,
			Replace: shortName,
		},
		{
			Name:    "space-after",
			Token:   Placeholder,
			After:   " ",
			Replace: shortName,
		},
		{
			Name:    "display-name",
			Before:  " ",
			Token:   PlaceholderTitle,
			After:   " ",
			Replace: func(id types.ProjectIdentity) string { return id.ThemeName },
		},
		{
			Name:    "hyphen-prefix",
			Token:   Placeholder,
			After:   "-",
			Replace: shortName,
		},
		{
			Name:    "class-prefix",
			Token:   PlaceholderTitle,
			After:   "_",
			Replace: func(id types.ProjectIdentity) string { return id.TitleizedName },
		},
	}
}

func shortName(id types.ProjectIdentity) string {
	return id.ShortName
}

// Engine applies a fixed, validated rule table
type Engine struct {
	rules []Rule
}

// NewEngine validates rules and returns an engine applying them in order.
// A rule whose pattern spans a line break is rejected.
func NewEngine(rules []Rule) (*Engine, error) {
	for i, r := range rules {
		if r.Token == "" {
			return nil, errors.Newf(errors.ErrInvalidInput, "rule %d (%s) has an empty token", i, r.Name)
		}
		if r.Replace == nil {
			return nil, errors.Newf(errors.ErrInvalidInput, "rule %d (%s) has no replacement", i, r.Name)
		}
		if strings.ContainsAny(r.Pattern(), "\r\n") {
			return nil, errors.Newf(errors.ErrInvalidInput, "rule %d (%s) spans a line boundary", i, r.Name)
		}
	}
	copied := make([]Rule, len(rules))
	copy(copied, rules)
	return &Engine{rules: copied}, nil
}

// Default returns an engine over Rules()
func Default() *Engine {
	engine, err := NewEngine(Rules())
	if err != nil {
		panic(fmt.Sprintf("invalid default substitution rules: %v", err))
	}
	return engine
}

// Rules returns a copy of the engine's table
func (e *Engine) Rules() []Rule {
	copied := make([]Rule, len(e.rules))
	copy(copied, e.rules)
	return copied
}

// Apply runs every rule over content in order. Engines hold no mutable
// state, so Apply is safe for concurrent use.
func (e *Engine) Apply(content string, id types.ProjectIdentity) string {
	for _, r := range e.rules {
		content = r.apply(content, r.Replace(id))
	}
	return content
}

// Apply rewrites content with the default rule table
func Apply(content string, id types.ProjectIdentity) string {
	return defaultEngine.Apply(content, id)
}

var defaultEngine = Default()
