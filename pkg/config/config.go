package config

import (
	"time"

	"github.com/arthur-debert/flairgen/pkg/identity"
)

// Config is the effective flairgen configuration
type Config struct {
	Template TemplateConfig `koanf:"template" toml:"template"`
	Defaults DefaultsConfig `koanf:"defaults" toml:"defaults"`
	Generate GenerateConfig `koanf:"generate" toml:"generate"`
	Post     PostConfig     `koanf:"post" toml:"post"`
}

// TemplateConfig locates the template repository and its local checkout
type TemplateConfig struct {
	Repository string        `koanf:"repository" toml:"repository"`
	Branch     string        `koanf:"branch" toml:"branch"`
	CacheDir   string        `koanf:"cache_dir" toml:"cache_dir"`
	Timeout    time.Duration `koanf:"timeout" toml:"timeout"`
}

// DefaultsConfig holds the values offered as prompt defaults
type DefaultsConfig struct {
	ThemeName   string `koanf:"theme_name" toml:"theme_name"`
	ThemeURI    string `koanf:"theme_uri" toml:"theme_uri"`
	Author      string `koanf:"author" toml:"author"`
	AuthorURI   string `koanf:"author_uri" toml:"author_uri"`
	Description string `koanf:"description" toml:"description"`
}

// GenerateConfig tunes the transform stage
type GenerateConfig struct {
	Workers int `koanf:"workers" toml:"workers"`
}

// PostConfig lists the commands run in the generated project
type PostConfig struct {
	SkipInstall    bool     `koanf:"skip_install" toml:"skip_install"`
	InstallCommand []string `koanf:"install_command" toml:"install_command"`
	BuildCommand   []string `koanf:"build_command" toml:"build_command"`
}

// Input converts the prompt defaults into identity input
func (d DefaultsConfig) Input() identity.Input {
	return identity.Input{
		ThemeName:   d.ThemeName,
		ThemeURI:    d.ThemeURI,
		Author:      d.Author,
		AuthorURI:   d.AuthorURI,
		Description: d.Description,
	}
}

// Commands returns the post-generation commands in run order, skipping
// empty ones.
func (p PostConfig) Commands() [][]string {
	var cmds [][]string
	for _, c := range [][]string{p.InstallCommand, p.BuildCommand} {
		if len(c) > 0 {
			cmds = append(cmds, c)
		}
	}
	return cmds
}
