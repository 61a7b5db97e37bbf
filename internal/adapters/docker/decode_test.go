package docker

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/melih/lighthouse-desktop/internal/core/domain"
)

const psLine = `{"Command":"\"docker-entrypoint.s…\"","CreatedAt":"2024-01-15 10:30:00 +0000","ID":"4c01db0b339c","Image":"postgres:16","Labels":"com.docker.compose.project=shop","Names":"shop-db-1","Ports":"0.0.0.0:5432->5432/tcp, :::5432->5432/tcp","State":"running","Status":"Up 2 hours"}`

func TestDecodeContainer(t *testing.T) {
	c, err := decodeContainer(psLine)
	require.NoError(t, err)

	assert.Equal(t, "4c01db0b339c", c.ID)
	assert.Equal(t, []string{"shop-db-1"}, c.Names)
	assert.Equal(t, "postgres:16", c.Image)
	assert.Empty(t, c.ImageID)
	assert.Equal(t, `"docker-entrypoint.s…"`, c.Command)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC).Unix(), c.Created)
	assert.Equal(t, "running", c.State)
	assert.Equal(t, "Up 2 hours", c.Status)
	assert.Equal(t, map[string]string{"com.docker.compose.project": "shop"}, c.Labels)
	assert.Equal(t, []domain.Port{
		{IP: "0.0.0.0", PublicPort: 5432, PrivatePort: 5432, Type: "tcp"},
		{IP: "::", PublicPort: 5432, PrivatePort: 5432, Type: "tcp"},
	}, c.Ports)
}

func TestDecodeContainerDefaults(t *testing.T) {
	c, err := decodeContainer(`{"ID":"abc","Names":"web,web-alias","State":1}`)
	require.NoError(t, err)

	assert.Equal(t, "abc", c.ID)
	assert.Equal(t, []string{"web", "web-alias"}, c.Names)
	assert.Empty(t, c.Image)
	assert.Empty(t, c.State, "non-string fields default to empty")
	assert.NotNil(t, c.Ports)
	assert.Empty(t, c.Ports)
	assert.NotNil(t, c.Labels)

	data, err := json.Marshal(c)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Ports":[]`)
	assert.Contains(t, string(data), `"Labels":{}`)
	assert.Contains(t, string(data), `"Id":"abc"`)
}

func TestDecodeContainerMalformed(t *testing.T) {
	for _, line := range []string{`{"ID":`, `not json`, `["ID"]`, `42`} {
		_, err := decodeContainer(line)
		assert.Error(t, err, line)
	}
}

func TestDecodeImage(t *testing.T) {
	img, err := decodeImage(`{"CreatedAt":"2024-01-15 10:30:00 +0000","ID":"d2c94e258dcb","Repository":"nginx","Size":"187MB","Tag":"1.25"}`)
	require.NoError(t, err)

	assert.Equal(t, "sha256:d2c94e258dcb", img.ID)
	assert.Equal(t, []string{"nginx:1.25"}, img.RepoTags)
	assert.Equal(t, int64(187<<20), img.Size)
	assert.Equal(t, time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC).Unix(), img.Created)
	assert.Zero(t, img.SharedSize)
	assert.Zero(t, img.Containers)
	assert.Nil(t, img.RepoDigests)
	assert.Nil(t, img.VirtualSize)
	assert.Nil(t, img.Labels)
}

func TestDecodeImageDangling(t *testing.T) {
	img, err := decodeImage(`{"ID":"sha256:0123456789ab","Repository":"<none>","Tag":"<none>","Size":"1.5GB"}`)
	require.NoError(t, err)

	assert.Equal(t, "sha256:0123456789ab", img.ID, "prefix is not added twice")
	assert.NotNil(t, img.RepoTags)
	assert.Empty(t, img.RepoTags)
	assert.Equal(t, int64(1610612736), img.Size)

	data, err := json.Marshal(img)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"RepoTags":[]`)
	assert.Contains(t, string(data), `"RepoDigests":null`)
	assert.Contains(t, string(data), `"VirtualSize":null`)
}

func TestDecodeImageMissingRepository(t *testing.T) {
	img, err := decodeImage(`{"ID":"abc"}`)
	require.NoError(t, err)
	assert.Empty(t, img.RepoTags)
	assert.Zero(t, img.Size)
}

func TestDecodeVolume(t *testing.T) {
	v, err := decodeVolume(`{"Driver":"local","Mountpoint":"/var/lib/docker/volumes/pgdata/_data","Name":"pgdata","Scope":"global"}`)
	require.NoError(t, err)
	assert.Equal(t, domain.Volume{
		Name:       "pgdata",
		Driver:     "local",
		Mountpoint: "/var/lib/docker/volumes/pgdata/_data",
		Scope:      "global",
	}, v)

	v, err = decodeVolume(`{"Name":"cache"}`)
	require.NoError(t, err)
	assert.Equal(t, "local", v.Scope)
	assert.Nil(t, v.UsageData)
	assert.Nil(t, v.CreatedAt)
}

func TestDecodeStats(t *testing.T) {
	s, err := decodeStats(`{"BlockIO":"4MB / 1GB","CPUPerc":"12.5%","MemPerc":"20.00%","MemUsage":"100MiB / 500MiB","NetIO":"1kB / 2kB","Name":"web"}`)
	require.NoError(t, err)

	assert.Equal(t, domain.ContainerStats{
		CPUPercent:    12.5,
		MemoryUsage:   104857600,
		MemoryLimit:   524288000,
		MemoryPercent: 20,
		NetworkRx:     1024,
		NetworkTx:     2048,
		BlockRead:     4 << 20,
		BlockWrite:    1 << 30,
	}, s)
}

func TestDecodeStatsDefaults(t *testing.T) {
	s, err := decodeStats(`{"CPUPerc":"--","MemUsage":"-- / --"}`)
	require.NoError(t, err)
	assert.Equal(t, domain.ContainerStats{}, s)
}

func TestDecodeStatsMalformed(t *testing.T) {
	_, err := decodeStats(`{"CPUPerc":`)
	var decodeErr *DecodeError
	require.True(t, errors.As(err, &decodeErr))
	assert.Equal(t, "stats", decodeErr.What)
}

func TestDecodeLinesSkipsMalformed(t *testing.T) {
	out := psLine + "\n" +
		`{"ID":"broken"` + "\n" +
		"\n" +
		`{"ID":"second","Names":"b"}` + "\r\n" +
		`{"ID":"third","Names":"c"}` + "\n"

	containers := decodeLines(out, "container", decodeContainer)
	require.Len(t, containers, 3)
	assert.Equal(t, "4c01db0b339c", containers[0].ID)
	assert.Equal(t, "second", containers[1].ID)
	assert.Equal(t, "third", containers[2].ID)
}

func TestDecodeLinesEmptyOutput(t *testing.T) {
	volumes := decodeLines("", "volume", decodeVolume)
	assert.NotNil(t, volumes)
	assert.Empty(t, volumes)
}
