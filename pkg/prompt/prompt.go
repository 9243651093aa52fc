// Package prompt collects the raw theme names and metadata from the user.
package prompt

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/identity"
	"github.com/arthur-debert/flairgen/pkg/logging"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Prompter asks for the values a theme is derived from. Fields of defaults
// are offered as answers and used where the user gives none.
type Prompter interface {
	Ask(ctx context.Context, defaults identity.Input) (identity.Input, error)
}

// withDefaults fills every empty field of in from defaults
func withDefaults(in, defaults identity.Input) identity.Input {
	pick := func(v, d string) string {
		if strings.TrimSpace(v) == "" {
			return d
		}
		return v
	}
	return identity.Input{
		ThemeName:   pick(in.ThemeName, defaults.ThemeName),
		ShortName:   pick(in.ShortName, defaults.ShortName),
		ThemeURI:    pick(in.ThemeURI, defaults.ThemeURI),
		Author:      pick(in.Author, defaults.Author),
		AuthorURI:   pick(in.AuthorURI, defaults.AuthorURI),
		Description: pick(in.Description, defaults.Description),
	}
}

// StaticPrompter answers with fixed values, typically from flags
type StaticPrompter struct {
	Input identity.Input
}

// Ask returns the fixed input completed from defaults
func (s StaticPrompter) Ask(ctx context.Context, defaults identity.Input) (identity.Input, error) {
	if err := ctx.Err(); err != nil {
		return identity.Input{}, errors.Wrap(err, errors.ErrPrompt, "prompt cancelled")
	}
	return withDefaults(s.Input, defaults), nil
}

// FilePrompter reads answers from a YAML or TOML file
type FilePrompter struct {
	Path string
}

// Ask loads the answers file. Keys missing from it keep their defaults.
func (f FilePrompter) Ask(ctx context.Context, defaults identity.Input) (identity.Input, error) {
	if err := ctx.Err(); err != nil {
		return identity.Input{}, errors.Wrap(err, errors.ErrPrompt, "prompt cancelled")
	}

	var parser koanf.Parser
	switch strings.ToLower(filepath.Ext(f.Path)) {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".toml":
		parser = toml.Parser()
	default:
		return identity.Input{}, errors.Newf(errors.ErrPrompt, "unsupported answers file %s", f.Path).
			WithDetail("path", f.Path)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(f.Path), parser); err != nil {
		return identity.Input{}, errors.Wrapf(err, errors.ErrPrompt, "cannot read answers from %s", f.Path).
			WithDetail("path", f.Path)
	}

	var in identity.Input
	if err := k.Unmarshal("", &in); err != nil {
		return identity.Input{}, errors.Wrapf(err, errors.ErrPrompt, "invalid answers in %s", f.Path).
			WithDetail("path", f.Path)
	}

	logger := logging.GetLogger("prompt")
	logger.Debug().Str("path", f.Path).Msg("Loaded answers file")
	return withDefaults(in, defaults), nil
}

// askOneFunc matches survey.AskOne
type askOneFunc func(p survey.Prompt, response interface{}, opts ...survey.AskOpt) error

// SurveyPrompter asks interactively on the terminal
type SurveyPrompter struct {
	askOne askOneFunc
}

// NewSurveyPrompter creates a terminal prompter
func NewSurveyPrompter() *SurveyPrompter {
	return &SurveyPrompter{askOne: survey.AskOne}
}

type question struct {
	message  string
	help     string
	target   *string
	fallback string
	required bool
}

// Ask runs the prompts in order. The short name default follows the
// project name the user just entered.
func (s *SurveyPrompter) Ask(ctx context.Context, defaults identity.Input) (identity.Input, error) {
	var in identity.Input

	themeName := defaults.ThemeName
	if themeName == "" {
		themeName = "Flair"
	}

	if err := s.ask(ctx, question{
		message:  "What is the name of your project?",
		target:   &in.ThemeName,
		fallback: themeName,
		required: true,
	}); err != nil {
		return identity.Input{}, err
	}

	shortName := defaults.ShortName
	if shortName == "" {
		shortName = identity.Slugify(in.ThemeName)
	}

	questions := []question{
		{message: "What is the short name of your project?", help: "Used for the text domain, function prefixes and file names", target: &in.ShortName, fallback: shortName, required: true},
		{message: "What is the URL of your theme?", target: &in.ThemeURI, fallback: defaults.ThemeURI},
		{message: "What is your name?", target: &in.Author, fallback: defaults.Author},
		{message: "What is your URL?", target: &in.AuthorURI, fallback: defaults.AuthorURI},
		{message: "Describe your theme:", target: &in.Description, fallback: defaults.Description},
	}
	for _, q := range questions {
		if err := s.ask(ctx, q); err != nil {
			return identity.Input{}, err
		}
	}
	return in, nil
}

func (s *SurveyPrompter) ask(ctx context.Context, q question) error {
	if err := ctx.Err(); err != nil {
		return errors.Wrap(err, errors.ErrPrompt, "prompt cancelled")
	}

	prompt := &survey.Input{
		Message: q.message,
		Default: q.fallback,
		Help:    q.help,
	}
	var opts []survey.AskOpt
	if q.required {
		opts = append(opts, survey.WithValidator(survey.Required))
	}
	if err := s.askOne(prompt, q.target, opts...); err != nil {
		return errors.Wrapf(err, errors.ErrPrompt, "prompt %q failed", q.message)
	}
	*q.target = strings.TrimSpace(*q.target)
	return nil
}
