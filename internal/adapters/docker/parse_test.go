package docker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/melih/lighthouse-desktop/internal/core/domain"
)

func TestParseSize(t *testing.T) {
	tests := []struct {
		in   string
		want uint64
	}{
		{"1GB", 1 << 30},
		{"1.5GiB", 1610612736},
		{"1.2GB", 1288490188},
		{"100MiB", 104857600},
		{"2MB", 2 << 20},
		{"1kB", 1024},
		{"1KB", 1024},
		{"4KiB", 4096},
		{"0.5kB", 512},
		{"512B", 512},
		{"42", 42},
		{" 10MiB ", 10485760},
		{"0B", 0},
		{"1.5TB", 1},
		{"", 0},
		{"abc", 0},
		{"GB", 0},
		{"1.2.3MB", 0},
		{"-5MB", 0},
		{"1gb", 1},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSize(tt.in))
		})
	}
}

func TestParsePercent(t *testing.T) {
	assert.Equal(t, 12.5, parsePercent("12.5%"))
	assert.Equal(t, 100.0, parsePercent("100%"))
	assert.Equal(t, 0.0, parsePercent("0.00%"))
	assert.Equal(t, 3.0, parsePercent("3"))
	assert.Equal(t, 0.0, parsePercent("--"))
	assert.Equal(t, 0.0, parsePercent(""))
	assert.Equal(t, 0.0, parsePercent("NaN%"))
}

func TestParseUsagePair(t *testing.T) {
	used, limit := parseUsagePair("12MiB / 500MiB")
	assert.Equal(t, uint64(12<<20), used)
	assert.Equal(t, uint64(500<<20), limit)

	rx, tx := parseUsagePair("1.2kB / 3kB")
	assert.Equal(t, uint64(1228), rx)
	assert.Equal(t, uint64(3072), tx)

	for _, in := range []string{"", "12MiB", "1 / 2 / 3", "12MiB/500MiB"} {
		a, b := parseUsagePair(in)
		assert.Zero(t, a, in)
		assert.Zero(t, b, in)
	}
}

func TestParseCreatedAt(t *testing.T) {
	want := time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC).Unix()
	assert.Equal(t, want, parseCreatedAt("2024-01-15 10:30:00 +0000"))
	assert.Equal(t, want, parseCreatedAt("2024-01-15 12:30:00 +0200"))
	assert.Equal(t, want, parseCreatedAt("2024-01-15 05:30:00 -0500"))
}

func TestParseCreatedAtFallsBackToNow(t *testing.T) {
	for _, in := range []string{
		"",
		"yesterday",
		"2024-01-15T10:30:00Z",
		"2024-13-45 99:99:99 +0000",
		"2024-01-15 10:30:00",
	} {
		t.Run(in, func(t *testing.T) {
			now := time.Now().Unix()
			assert.InDelta(t, now, parseCreatedAt(in), 5)
		})
	}
}

func TestParsePorts(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []domain.Port
	}{
		{
			name: "ipv4 published",
			in:   "0.0.0.0:8080->80/tcp",
			want: []domain.Port{{IP: "0.0.0.0", PublicPort: 8080, PrivatePort: 80, Type: "tcp"}},
		},
		{
			name: "exposed only",
			in:   "80/tcp",
			want: []domain.Port{},
		},
		{
			name: "no type",
			in:   "8080->80",
			want: []domain.Port{{PublicPort: 8080, PrivatePort: 80, Type: "tcp"}},
		},
		{
			name: "ipv6 host splits on last colon",
			in:   ":::8080->80/tcp",
			want: []domain.Port{{IP: "::", PublicPort: 8080, PrivatePort: 80, Type: "tcp"}},
		},
		{
			name: "udp",
			in:   "0.0.0.0:53->53/udp",
			want: []domain.Port{{IP: "0.0.0.0", PublicPort: 53, PrivatePort: 53, Type: "udp"}},
		},
		{
			name: "mixed list keeps order and duplicates",
			in:   "0.0.0.0:8080->80/tcp, 443/tcp, 0.0.0.0:8080->80/tcp, 127.0.0.1:5432->5432/tcp",
			want: []domain.Port{
				{IP: "0.0.0.0", PublicPort: 8080, PrivatePort: 80, Type: "tcp"},
				{IP: "0.0.0.0", PublicPort: 8080, PrivatePort: 80, Type: "tcp"},
				{IP: "127.0.0.1", PublicPort: 5432, PrivatePort: 5432, Type: "tcp"},
			},
		},
		{
			name: "unparseable numbers degrade to zero",
			in:   "0.0.0.0:abc->xyz/tcp",
			want: []domain.Port{{IP: "0.0.0.0", PublicPort: 0, PrivatePort: 0, Type: "tcp"}},
		},
		{
			name: "ranges are not numbers",
			in:   "0.0.0.0:8000-8001->8000-8001/tcp",
			want: []domain.Port{{IP: "0.0.0.0", Type: "tcp"}},
		},
		{
			name: "empty",
			in:   "",
			want: []domain.Port{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parsePorts(tt.in)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseLabels(t *testing.T) {
	assert.Equal(t, map[string]string{
		"com.docker.compose.project": "shop",
		"maintainer":                 "",
	}, parseLabels("com.docker.compose.project=shop,maintainer="))
	assert.Equal(t, map[string]string{}, parseLabels(""))
	assert.Equal(t, map[string]string{"a": "b"}, parseLabels("=ignored,a=b"))
}
