package builder

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/google/uuid"
	perrors "github.com/pkg/errors"

	"github.com/melih/lighthouse-desktop/internal/adapters/docker"
	"github.com/melih/lighthouse-desktop/internal/core/domain"
	"github.com/melih/lighthouse-desktop/internal/logger"
)

// CloneFunc checks out repoURL into dir, writing progress to progress.
type CloneFunc func(ctx context.Context, dir string, repoURL string, progress io.Writer) error

// Adapter implements ports.BuilderService: it clones a repository and
// builds it with the runtime CLI.
type Adapter struct {
	runner docker.Runner
	clone  CloneFunc
}

func NewBuilderAdapter(runner docker.Runner) *Adapter {
	return &Adapter{runner: runner, clone: gitClone}
}

// gitClone does a shallow clone of the default branch.
func gitClone(ctx context.Context, dir string, repoURL string, progress io.Writer) error {
	_, err := git.PlainCloneContext(ctx, dir, false, &git.CloneOptions{
		URL:      repoURL,
		Progress: progress,
		Depth:    1,
	})
	return err
}

// BuildImage clones a repo and builds an image from its Dockerfile.
func (a *Adapter) BuildImage(ctx context.Context, repoURL string, imageName string) (domain.BuildResult, error) {
	result := domain.BuildResult{
		ID:        uuid.NewString(),
		Image:     imageName,
		RepoURL:   repoURL,
		Status:    domain.BuildFailed,
		StartedAt: time.Now(),
	}
	if repoURL == "" || imageName == "" {
		result.FinishedAt = time.Now()
		return result, fmt.Errorf("repository URL and image name are required")
	}

	log := logger.Get().With("build", result.ID, "image", imageName)

	tmpDir, err := os.MkdirTemp("", "lighthouse-build-*")
	if err != nil {
		result.FinishedAt = time.Now()
		return result, perrors.Wrap(err, "create build dir")
	}
	defer os.RemoveAll(tmpDir)

	var progress bytes.Buffer
	log.Infof("cloning %s into %s", repoURL, tmpDir)
	if err := a.clone(ctx, tmpDir, repoURL, &progress); err != nil {
		result.FinishedAt = time.Now()
		result.Output = progress.String()
		return result, perrors.Wrapf(err, "clone %s", repoURL)
	}

	log.Infof("building image")
	out, err := a.runner.Run(ctx, "build", "-t", imageName, tmpDir)
	result.FinishedAt = time.Now()
	result.Output = progress.String() + out
	if err != nil {
		log.Warnf("build failed after %s: %v", result.FinishedAt.Sub(result.StartedAt), err)
		result.Output += err.Error()
		return result, perrors.Wrap(err, "build image")
	}

	result.Status = domain.BuildSuccess
	log.Infof("build finished in %s", result.FinishedAt.Sub(result.StartedAt))
	return result, nil
}
