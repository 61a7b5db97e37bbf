package docker

import (
	"context"

	"github.com/melih/lighthouse-desktop/internal/core/domain"
)

func (a *Adapter) ListVolumes(ctx context.Context) ([]domain.Volume, error) {
	out, err := a.runner.Run(ctx, "volume", "ls", "--format", jsonFormat)
	if err != nil {
		return nil, err
	}
	return decodeLines(out, "volume", decodeVolume), nil
}

func (a *Adapter) CreateVolume(ctx context.Context, name string) (string, error) {
	return a.runner.Run(ctx, "volume", "create", name)
}

func (a *Adapter) RemoveVolume(ctx context.Context, name string) (string, error) {
	return a.runner.Run(ctx, "volume", "rm", name)
}
