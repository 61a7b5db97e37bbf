package docker

import (
	"errors"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/melih/lighthouse-desktop/internal/core/domain"
	"github.com/melih/lighthouse-desktop/internal/logger"
)

const (
	noneValue      = "<none>"
	imageIDPrefix  = "sha256:"
	defaultScope   = "local"
	emptyUsagePair = "0B / 0B"
)

var (
	errInvalidJSON = errors.New("invalid JSON")
	errNotObject   = errors.New("line is not a JSON object")
)

// parseObject parses one line of `--format {{json .}}` output.
func parseObject(line string) (gjson.Result, error) {
	if !gjson.Valid(line) {
		return gjson.Result{}, errInvalidJSON
	}
	obj := gjson.Parse(line)
	if !obj.IsObject() {
		return gjson.Result{}, errNotObject
	}
	return obj, nil
}

// str returns the string field key of obj, or def when it is absent or not a string.
func str(obj gjson.Result, key, def string) string {
	v := obj.Get(key)
	if v.Type != gjson.String {
		return def
	}
	return v.Str
}

// decodeLines decodes every non-empty line of out with decode. Lines that
// fail to decode are skipped.
func decodeLines[T any](out string, what string, decode func(string) (T, error)) []T {
	records := make([]T, 0)
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		rec, err := decode(line)
		if err != nil {
			logger.Get().Debugw("skipping malformed line", "kind", what, "line", line, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records
}

func decodeContainer(line string) (domain.Container, error) {
	obj, err := parseObject(line)
	if err != nil {
		return domain.Container{}, err
	}

	return domain.Container{
		ID:      str(obj, "ID", ""),
		Names:   strings.Split(str(obj, "Names", ""), ","),
		Image:   str(obj, "Image", ""),
		ImageID: "",
		Command: str(obj, "Command", ""),
		Created: parseCreatedAt(str(obj, "CreatedAt", "")),
		Ports:   parsePorts(str(obj, "Ports", "")),
		State:   str(obj, "State", ""),
		Status:  str(obj, "Status", ""),
		Labels:  parseLabels(str(obj, "Labels", "")),
	}, nil
}

func decodeImage(line string) (domain.Image, error) {
	obj, err := parseObject(line)
	if err != nil {
		return domain.Image{}, err
	}

	repo := str(obj, "Repository", noneValue)
	tag := str(obj, "Tag", noneValue)
	repoTags := []string{}
	if repo != noneValue {
		repoTags = append(repoTags, repo+":"+tag)
	}

	id := str(obj, "ID", "")
	if !strings.HasPrefix(id, imageIDPrefix) {
		id = imageIDPrefix + id
	}

	return domain.Image{
		ID:       id,
		RepoTags: repoTags,
		Created:  parseCreatedAt(str(obj, "CreatedAt", "")),
		Size:     int64(parseSize(str(obj, "Size", "0B"))),
	}, nil
}

func decodeVolume(line string) (domain.Volume, error) {
	obj, err := parseObject(line)
	if err != nil {
		return domain.Volume{}, err
	}

	return domain.Volume{
		Name:       str(obj, "Name", ""),
		Driver:     str(obj, "Driver", ""),
		Mountpoint: str(obj, "Mountpoint", ""),
		Scope:      str(obj, "Scope", defaultScope),
	}, nil
}

func decodeStats(line string) (domain.ContainerStats, error) {
	obj, err := parseObject(line)
	if err != nil {
		return domain.ContainerStats{}, &DecodeError{What: "stats", Err: err}
	}

	memUsage, memLimit := parseUsagePair(str(obj, "MemUsage", emptyUsagePair))
	netRx, netTx := parseUsagePair(str(obj, "NetIO", emptyUsagePair))
	blockRead, blockWrite := parseUsagePair(str(obj, "BlockIO", emptyUsagePair))

	return domain.ContainerStats{
		CPUPercent:    parsePercent(str(obj, "CPUPerc", "0%")),
		MemoryUsage:   memUsage,
		MemoryLimit:   memLimit,
		MemoryPercent: parsePercent(str(obj, "MemPerc", "0%")),
		NetworkRx:     netRx,
		NetworkTx:     netTx,
		BlockRead:     blockRead,
		BlockWrite:    blockWrite,
	}, nil
}
