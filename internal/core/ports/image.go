package ports

import (
	"context"

	"github.com/melih/lighthouse-desktop/internal/core/domain"
)

// ImageService defines operations on locally stored images.
type ImageService interface {
	ListImages(ctx context.Context) ([]domain.Image, error)
	RemoveImage(ctx context.Context, id string) (string, error)
	PullImage(ctx context.Context, name string) (string, error)
}
