package ports

import (
	"context"

	"github.com/melih/lighthouse-desktop/internal/core/domain"
)

// VolumeService defines operations on named volumes.
type VolumeService interface {
	ListVolumes(ctx context.Context) ([]domain.Volume, error)
	CreateVolume(ctx context.Context, name string) (string, error)
	RemoveVolume(ctx context.Context, name string) (string, error)
}
