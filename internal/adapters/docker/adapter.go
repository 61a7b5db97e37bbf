package docker

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/melih/lighthouse-desktop/internal/core/domain"
	"github.com/melih/lighthouse-desktop/internal/logger"
)

const jsonFormat = "{{json .}}"

// actionArgs maps a lifecycle action name to its subcommand tokens.
var actionArgs = map[string][]string{
	"start":   {"start"},
	"stop":    {"stop"},
	"restart": {"restart"},
	"remove":  {"rm", "-f"},
	"pause":   {"pause"},
	"unpause": {"unpause"},
}

// Adapter implements ports.ContainerService, ports.ImageService and
// ports.VolumeService on top of the runtime CLI. It is the only place that
// knows the CLI's subcommands and output formats.
type Adapter struct {
	runner           Runner
	statsConcurrency int
}

// NewAdapter creates a new adapter. statsConcurrency bounds the number of
// stats subprocesses AllContainerStats runs at once.
func NewAdapter(runner Runner, statsConcurrency int) *Adapter {
	if statsConcurrency < 1 {
		statsConcurrency = 1
	}
	return &Adapter{runner: runner, statsConcurrency: statsConcurrency}
}

// ListContainers returns every container, running or not.
func (a *Adapter) ListContainers(ctx context.Context) ([]domain.Container, error) {
	out, err := a.runner.Run(ctx, "ps", "-a", "--format", jsonFormat)
	if err != nil {
		return nil, err
	}
	return decodeLines(out, "container", decodeContainer), nil
}

// ContainerAction runs a lifecycle action on a container. Unknown actions
// are rejected before anything is spawned.
func (a *Adapter) ContainerAction(ctx context.Context, id string, action string) (string, error) {
	sub, ok := actionArgs[action]
	if !ok {
		return "", fmt.Errorf("%w: %s", domain.ErrUnknownAction, action)
	}

	args := append(append([]string{}, sub...), id)
	return a.runner.Run(ctx, args...)
}

// ContainerLogs returns the last tail lines of a container's logs.
func (a *Adapter) ContainerLogs(ctx context.Context, id string, tail uint32) (string, error) {
	return a.runner.Run(ctx, "logs", "--tail", strconv.FormatUint(uint64(tail), 10), id)
}

// InspectContainer returns the first element of the inspect array as compact JSON.
func (a *Adapter) InspectContainer(ctx context.Context, id string) (string, error) {
	out, err := a.runner.Run(ctx, "inspect", id)
	if err != nil {
		return "", err
	}

	if !gjson.Valid(out) {
		return "", &DecodeError{What: "inspect output", Err: errInvalidJSON}
	}
	parsed := gjson.Parse(out)
	if !parsed.IsArray() {
		return "", &DecodeError{What: "inspect output", Err: errors.New("expected a JSON array")}
	}
	items := parsed.Array()
	if len(items) == 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrNotFound, id)
	}

	var buf bytes.Buffer
	if err := json.Compact(&buf, []byte(items[0].Raw)); err != nil {
		return "", &DecodeError{What: "inspect output", Err: err}
	}
	return buf.String(), nil
}

// ContainerStats takes a single, non-streaming stats sample of a container.
func (a *Adapter) ContainerStats(ctx context.Context, id string) (domain.ContainerStats, error) {
	out, err := a.runner.Run(ctx, "stats", "--no-stream", "--format", jsonFormat, id)
	if err != nil {
		return domain.ContainerStats{}, err
	}

	line := firstLine(out)
	if line == "" {
		return domain.ContainerStats{}, fmt.Errorf("%w for %s", domain.ErrNoStats, id)
	}
	return decodeStats(line)
}

// AllContainerStats samples stats of every id, one subprocess per id.
func (a *Adapter) AllContainerStats(ctx context.Context, ids []string) (map[string]domain.ContainerStats, error) {
	var (
		mu     sync.Mutex
		result = make(map[string]domain.ContainerStats, len(ids))
	)

	g := new(errgroup.Group)
	g.SetLimit(a.statsConcurrency)
	for _, id := range ids {
		g.Go(func() error {
			stats, err := a.ContainerStats(ctx, id)
			if err != nil {
				logger.Get().Warnf("stats for %s: %v", id, err)
				return nil
			}
			mu.Lock()
			result[id] = stats
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func firstLine(out string) string {
	for _, line := range strings.Split(out, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
