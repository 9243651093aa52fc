package generate

import (
	"context"
	"encoding/json"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/arthur-debert/flairgen/pkg/acquire"
	"github.com/arthur-debert/flairgen/pkg/classify"
	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/identity"
	"github.com/arthur-debert/flairgen/pkg/logging"
	"github.com/arthur-debert/flairgen/pkg/metadata"
	"github.com/arthur-debert/flairgen/pkg/output"
	"github.com/arthur-debert/flairgen/pkg/postaction"
	"github.com/arthur-debert/flairgen/pkg/prompt"
	"github.com/arthur-debert/flairgen/pkg/substitute"
	"github.com/arthur-debert/flairgen/pkg/types"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers bounds the transform pool when Options.Workers is unset
const DefaultWorkers = 8

// Options configures one generation run
type Options struct {
	TemplateDir string
	OutputDir   string
	Workers     int
	DryRun      bool
	// PostCommands run in OutputDir after writing, unless SkipPostActions
	PostCommands    [][]string
	SkipPostActions bool
}

// Dependencies are the collaborators a Generator drives. TemplateFS and
// OutputFS may be the same filesystem.
type Dependencies struct {
	TemplateFS types.FS
	OutputFS   types.FS
	Prompter   prompt.Prompter
	Acquirer   acquire.Acquirer
	Runner     postaction.Runner
	// Engine defaults to substitute.Default()
	Engine *substitute.Engine
}

// Generator instantiates themes from the template
type Generator struct {
	deps   Dependencies
	logger zerolog.Logger
}

// New creates a generator
func New(deps Dependencies) *Generator {
	if deps.Engine == nil {
		deps.Engine = substitute.Default()
	}
	if deps.OutputFS == nil {
		deps.OutputFS = deps.TemplateFS
	}
	return &Generator{
		deps:   deps,
		logger: logging.GetLogger("generate"),
	}
}

// Run executes the whole pipeline. A returned error is always fatal. Errors
// from prompting through manifest validation happen before any output is
// written; if ctx is cancelled while files are being written, files already
// in place are left on disk. Per-file problems are reported in the result.
func (g *Generator) Run(ctx context.Context, defaults identity.Input, opts Options) (*types.GenerateResult, error) {
	done := logging.LogOperationStart(g.logger, "generate")
	defer done()

	in, err := g.deps.Prompter.Ask(ctx, defaults)
	if err != nil {
		return nil, err
	}

	id, err := identity.Derive(in)
	if err != nil {
		return nil, err
	}

	if err := g.deps.Acquirer.Acquire(ctx, opts.TemplateDir); err != nil {
		return nil, err
	}

	records, failures, err := classify.New(g.deps.TemplateFS).Classify(opts.TemplateDir)
	if err != nil {
		return nil, err
	}

	manifest, err := g.checkManifest(opts.TemplateDir, id)
	if err != nil {
		return nil, err
	}
	g.logger.Info().Str("version", manifest.Version).Msgf("Generating from Flair v%s", manifest.Version)

	result := &types.GenerateResult{
		Identity:        id,
		TemplateDir:     opts.TemplateDir,
		TemplateVersion: manifest.Version,
		OutputDir:       opts.OutputDir,
		DryRun:          opts.DryRun,
		Renamed:         map[string]string{},
		Failures:        failures,
	}

	if err := g.transformAll(ctx, records, id, opts, result); err != nil {
		return nil, err
	}

	if !opts.DryRun && !opts.SkipPostActions && g.deps.Runner != nil {
		result.PostActions = postaction.Run(ctx, g.deps.Runner, opts.OutputDir, opts.PostCommands)
	}

	result.Timestamp = time.Now()
	g.logger.Info().
		Int("written", len(result.Written)).
		Int("copied", len(result.Copied)).
		Int("ignored", len(result.Ignored)).
		Int("failures", len(result.Failures)).
		Msg("Generation finished")
	return result, nil
}

// checkManifest parses the template manifest and makes sure the rewritten
// manifest is still valid JSON, before any output exists.
func (g *Generator) checkManifest(root string, id types.ProjectIdentity) (*metadata.Manifest, error) {
	manifest, err := metadata.LoadManifest(g.deps.TemplateFS, root)
	if err != nil {
		return nil, err
	}

	data, err := g.deps.TemplateFS.ReadFile(filepath.Join(root, metadata.ManifestFile))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrManifestParse, "cannot read package manifest")
	}
	rewritten := metadata.RewriteManifest(g.deps.Engine.Apply(string(data), id), id)
	if !json.Valid([]byte(rewritten)) {
		return nil, errors.New(errors.ErrManifestParse, "package manifest is not valid JSON after rewriting").
			WithDetail("path", filepath.Join(root, metadata.ManifestFile))
	}
	return manifest, nil
}

// transform runs the substitution rules and then the structured rewriters
func (g *Generator) transform(relPath, content string, id types.ProjectIdentity) string {
	content = g.deps.Engine.Apply(content, id)
	content, _ = metadata.Rewrite(relPath, content, id)
	return content
}

func (g *Generator) transformAll(ctx context.Context, records []types.FileRecord, id types.ProjectIdentity, opts Options, result *types.GenerateResult) error {
	workers := opts.Workers
	if workers <= 0 {
		workers = DefaultWorkers
	}
	writer := output.NewWriter(g.deps.OutputFS, opts.OutputDir, opts.DryRun)

	var mu sync.Mutex
	fail := func(rel string, err error) {
		g.logger.Warn().Err(err).Str("file", rel).Msg("File needs attention")
		mu.Lock()
		defer mu.Unlock()
		result.Failures = append(result.Failures, types.FileFailure{
			Path:  rel,
			Stage: errors.Stage(err),
			Error: err.Error(),
		})
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for _, record := range records {
		if record.Classification == types.Ignored {
			g.logger.Debug().Str("file", record.RelPath).Msg("Ignoring template file")
			result.Ignored = append(result.Ignored, record.RelPath)
			continue
		}

		record := record
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}

			src := filepath.Join(opts.TemplateDir, filepath.FromSlash(record.RelPath))
			dst := output.RenamePath(record.RelPath, id.ShortName)

			var err error
			switch record.Classification {
			case types.TextRewrite:
				err = g.rewriteFile(writer, src, record, dst, id)
			default:
				err = writer.Copy(g.deps.TemplateFS, src, dst, record.Mode)
			}
			if err != nil {
				fail(record.RelPath, err)
				return nil
			}

			mu.Lock()
			defer mu.Unlock()
			if record.Classification == types.TextRewrite {
				result.Written = append(result.Written, record.RelPath)
			} else {
				result.Copied = append(result.Copied, record.RelPath)
			}
			if dst != record.RelPath {
				result.Renamed[record.RelPath] = dst
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return errors.Wrap(err, errors.ErrInternal, "generation interrupted")
	}

	sort.Strings(result.Written)
	sort.Strings(result.Copied)
	sort.Slice(result.Failures, func(i, j int) bool {
		return result.Failures[i].Path < result.Failures[j].Path
	})
	return nil
}

func (g *Generator) rewriteFile(writer *output.Writer, src string, record types.FileRecord, dst string, id types.ProjectIdentity) error {
	data, err := g.deps.TemplateFS.ReadFile(src)
	if err != nil {
		return errors.Wrapf(err, errors.ErrFileRead, "cannot read %s", record.RelPath).WithDetail("path", src)
	}
	content := g.transform(record.RelPath, string(data), id)
	return writer.Write(dst, []byte(content), record.Mode)
}
