package ports

import (
	"context"

	"github.com/melih/lighthouse-desktop/internal/core/domain"
)

// ContainerService defines the core operations for managing containers.
// This interface allows us to switch between the docker CLI, Podman, or a
// direct API integration without changing the callers.
type ContainerService interface {
	ListContainers(ctx context.Context) ([]domain.Container, error)
	// ContainerAction runs one lifecycle action (start, stop, restart,
	// remove, pause, unpause) and returns the runtime's raw output.
	ContainerAction(ctx context.Context, id string, action string) (string, error)
	ContainerLogs(ctx context.Context, id string, tail uint32) (string, error)
	// InspectContainer returns the inspect document of one container as JSON.
	InspectContainer(ctx context.Context, id string) (string, error)
	ContainerStats(ctx context.Context, id string) (domain.ContainerStats, error)
	// AllContainerStats collects stats for every id. Ids whose stats could
	// not be read are left out of the result.
	AllContainerStats(ctx context.Context, ids []string) (map[string]domain.ContainerStats, error)
}
