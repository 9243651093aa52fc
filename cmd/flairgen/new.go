package flairgen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/arthur-debert/flairgen/pkg/acquire"
	"github.com/arthur-debert/flairgen/pkg/filesystem"
	"github.com/arthur-debert/flairgen/pkg/generate"
	"github.com/arthur-debert/flairgen/pkg/identity"
	"github.com/arthur-debert/flairgen/pkg/logging"
	"github.com/arthur-debert/flairgen/pkg/postaction"
	"github.com/arthur-debert/flairgen/pkg/prompt"
	"github.com/arthur-debert/flairgen/pkg/ui"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// ErrReported is returned once a failure has already been shown to the user
var ErrReported = errors.New(MsgNeedsAttention)

type newOptions struct {
	dryRun      bool
	output      ui.Format
	template    string
	answers     string
	input       identity.Input
	skipInstall bool
	workers     int
}

func newNewCmd(global *globalOptions) *cobra.Command {
	opts := &newOptions{}

	cmd := &cobra.Command{
		Use:     "new [DIR]",
		Short:   MsgNewShort,
		Long:    MsgNewLong,
		Example: MsgNewExample,
		GroupID: "core",
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			outputDir := "."
			if len(args) == 1 {
				outputDir = args[0]
			}
			return runNew(cmd, global, opts, outputDir)
		},
	}

	f := cmd.Flags()
	f.BoolVar(&opts.dryRun, "dry-run", false, MsgFlagDryRun)
	f.VarP(&opts.output, "output", "o", MsgFlagOutput)
	_ = cmd.RegisterFlagCompletionFunc("output", cobra.FixedCompletions(ui.FormatNames(), cobra.ShellCompDirectiveNoFileComp))
	f.StringVar(&opts.template, "template", "", MsgFlagTemplate)
	f.StringVar(&opts.answers, "answers", "", MsgFlagAnswers)
	f.StringVar(&opts.input.ThemeName, "name", "", MsgFlagName)
	f.StringVar(&opts.input.ShortName, "short-name", "", MsgFlagShortName)
	f.StringVar(&opts.input.ThemeURI, "theme-uri", "", MsgFlagThemeURI)
	f.StringVar(&opts.input.Author, "author", "", MsgFlagAuthor)
	f.StringVar(&opts.input.AuthorURI, "author-uri", "", MsgFlagAuthorURI)
	f.StringVar(&opts.input.Description, "description", "", MsgFlagDescription)
	f.BoolVar(&opts.skipInstall, "skip-install", false, MsgFlagSkipInstall)
	f.IntVar(&opts.workers, "workers", 0, MsgFlagWorkers)

	return cmd
}

func runNew(cmd *cobra.Command, global *globalOptions, opts *newOptions, outputDir string) error {
	logger := logging.GetLogger("cmd.new")

	format := opts.output.Resolve(cmd.OutOrStdout())
	renderer, err := ui.NewRenderer(format, cmd.OutOrStdout())
	if err != nil {
		return fmt.Errorf(MsgErrRenderer, err)
	}

	overrides := map[string]interface{}{}
	if cmd.Flags().Changed("skip-install") {
		overrides["post.skip_install"] = opts.skipInstall
	}
	if cmd.Flags().Changed("workers") {
		overrides["generate.workers"] = opts.workers
	}
	cfg, err := global.loadConfig(overrides)
	if err != nil {
		_ = renderer.RenderError(err)
		return ErrReported
	}

	if format == ui.FormatTerminal {
		_ = renderer.RenderMessage(MsgGreeting)
	}

	fs := filesystem.NewOS()
	templateDir := cfg.Template.CacheDir
	var acquirer acquire.Acquirer = acquire.NewGitAcquirer(cfg.Template.Repository, cfg.Template.Branch, cfg.Template.Timeout)
	if opts.template != "" {
		templateDir = opts.template
		acquirer = acquire.NewLocalAcquirer(fs)
	}

	absOutput, err := filepath.Abs(outputDir)
	if err != nil {
		absOutput = outputDir
	}

	gen := generate.New(generate.Dependencies{
		TemplateFS: filesystem.NewReadOnlyFS(filesystem.NewAferoOS()),
		OutputFS:   fs,
		Prompter:   choosePrompter(cmd, opts),
		Acquirer:   acquirer,
		Runner:     postaction.ExecRunner{Stdout: cmd.ErrOrStderr(), Stderr: cmd.ErrOrStderr()},
	})

	logger.Info().
		Str("template", templateDir).
		Str("output", absOutput).
		Bool("dryRun", opts.dryRun).
		Msg("Starting generation")

	result, err := gen.Run(cmd.Context(), cfg.Defaults.Input(), generate.Options{
		TemplateDir:     templateDir,
		OutputDir:       absOutput,
		Workers:         cfg.Generate.Workers,
		DryRun:          opts.dryRun,
		PostCommands:    cfg.Post.Commands(),
		SkipPostActions: cfg.Post.SkipInstall,
	})
	if err != nil {
		_ = renderer.RenderError(err)
		return ErrReported
	}

	if err := renderer.RenderResult(result); err != nil {
		return err
	}
	if result.HasFailures() {
		return ErrReported
	}
	return nil
}

// choosePrompter picks where the theme values come from: an answers file,
// flags, the terminal, or config defaults alone when nobody can answer.
func choosePrompter(cmd *cobra.Command, opts *newOptions) prompt.Prompter {
	switch {
	case opts.answers != "":
		return prompt.FilePrompter{Path: opts.answers}
	case opts.input.ThemeName != "" || !stdinIsTerminal():
		return prompt.StaticPrompter{Input: opts.input}
	default:
		return prompt.NewSurveyPrompter()
	}
}

func stdinIsTerminal() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
