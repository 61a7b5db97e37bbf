package docker

import (
	"context"

	"github.com/melih/lighthouse-desktop/internal/core/domain"
)

// ListImages returns the locally stored images.
func (a *Adapter) ListImages(ctx context.Context) ([]domain.Image, error) {
	out, err := a.runner.Run(ctx, "images", "--format", jsonFormat)
	if err != nil {
		return nil, err
	}
	return decodeLines(out, "image", decodeImage), nil
}

// RemoveImage removes an image by id or reference.
func (a *Adapter) RemoveImage(ctx context.Context, id string) (string, error) {
	return a.runner.Run(ctx, "rmi", id)
}

// PullImage pulls an image and returns the pull progress output.
func (a *Adapter) PullImage(ctx context.Context, name string) (string, error) {
	return a.runner.Run(ctx, "pull", name)
}
