package ports

import (
	"context"

	"github.com/melih/lighthouse-desktop/internal/core/domain"
)

// BuilderService defines operations for building container images from source code.
type BuilderService interface {
	// BuildImage clones a repository and builds an image tagged imageName from it.
	// The result is returned even when the build fails.
	BuildImage(ctx context.Context, repoURL string, imageName string) (domain.BuildResult, error)
}
