// Package acquire materialises the template repository on local disk.
package acquire

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/arthur-debert/flairgen/pkg/errors"
	"github.com/arthur-debert/flairgen/pkg/logging"
	"github.com/arthur-debert/flairgen/pkg/metadata"
	"github.com/arthur-debert/flairgen/pkg/types"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/rs/zerolog"
)

// Acquirer makes an up to date template tree available at dir
type Acquirer interface {
	Acquire(ctx context.Context, dir string) error
}

// GitAcquirer clones the template repository, submodules included, or
// refreshes an existing checkout.
type GitAcquirer struct {
	URL     string
	Branch  string
	Timeout time.Duration
	logger  zerolog.Logger
}

// NewGitAcquirer creates an acquirer for the repository at url
func NewGitAcquirer(url, branch string, timeout time.Duration) *GitAcquirer {
	return &GitAcquirer{
		URL:     url,
		Branch:  branch,
		Timeout: timeout,
		logger:  logging.GetLogger("acquire"),
	}
}

// Acquire clones into dir when it holds no template yet, otherwise pulls and
// updates submodules in place.
func (g *GitAcquirer) Acquire(ctx context.Context, dir string) error {
	if g.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.Timeout)
		defer cancel()
	}

	if _, err := os.Stat(filepath.Join(dir, metadata.ManifestFile)); err != nil {
		return g.clone(ctx, dir)
	}
	return g.update(ctx, dir)
}

func (g *GitAcquirer) reference() plumbing.ReferenceName {
	if g.Branch == "" {
		return ""
	}
	return plumbing.NewBranchReferenceName(g.Branch)
}

func (g *GitAcquirer) clone(ctx context.Context, dir string) error {
	g.logger.Info().Str("url", g.URL).Str("dir", dir).Msg("Cloning template")

	if err := os.MkdirAll(filepath.Dir(dir), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrAcquisition, "cannot create %s", filepath.Dir(dir)).
			WithDetail("dir", dir)
	}

	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:               g.URL,
		ReferenceName:     g.reference(),
		SingleBranch:      g.Branch != "",
		RecurseSubmodules: git.DefaultSubmoduleRecursionDepth,
	})
	if err != nil {
		return errors.Wrapf(err, errors.ErrAcquisition, "failed to clone %s", g.URL).
			WithDetail("url", g.URL).
			WithDetail("dir", dir)
	}
	return nil
}

func (g *GitAcquirer) update(ctx context.Context, dir string) error {
	g.logger.Info().Str("dir", dir).Msg("Updating template")

	repo, err := git.PlainOpen(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrAcquisition, "%s is not a git checkout", dir).
			WithDetail("dir", dir)
	}
	wt, err := repo.Worktree()
	if err != nil {
		return errors.Wrap(err, errors.ErrAcquisition, "cannot open worktree").WithDetail("dir", dir)
	}

	err = wt.PullContext(ctx, &git.PullOptions{
		RemoteName:        git.DefaultRemoteName,
		ReferenceName:     g.reference(),
		SingleBranch:      g.Branch != "",
		RecurseSubmodules: git.DefaultSubmoduleRecursionDepth,
	})
	if err != nil && err != git.NoErrAlreadyUpToDate {
		return errors.Wrap(err, errors.ErrAcquisition, "failed to pull template").WithDetail("dir", dir)
	}

	subs, err := wt.Submodules()
	if err != nil {
		return errors.Wrap(err, errors.ErrAcquisition, "cannot list submodules").WithDetail("dir", dir)
	}
	if err := subs.UpdateContext(ctx, &git.SubmoduleUpdateOptions{
		Init:              true,
		RecurseSubmodules: git.DefaultSubmoduleRecursionDepth,
	}); err != nil {
		return errors.Wrap(err, errors.ErrAcquisition, "failed to update submodules").WithDetail("dir", dir)
	}
	return nil
}

// LocalAcquirer uses a template directory that already exists
type LocalAcquirer struct {
	fs types.FS
}

// NewLocalAcquirer creates an acquirer checking directories through fs
func NewLocalAcquirer(fs types.FS) *LocalAcquirer {
	return &LocalAcquirer{fs: fs}
}

// Acquire only checks that dir is a directory
func (l *LocalAcquirer) Acquire(_ context.Context, dir string) error {
	info, err := l.fs.Stat(dir)
	if err != nil {
		return errors.Wrapf(err, errors.ErrAcquisition, "template directory %s not found", dir).
			WithDetail("dir", dir)
	}
	if !info.IsDir() {
		return errors.Newf(errors.ErrAcquisition, "template path %s is not a directory", dir).
			WithDetail("dir", dir)
	}
	return nil
}
