package docker

import (
	"math"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/docker/go-connections/nat"

	"github.com/melih/lighthouse-desktop/internal/core/domain"
)

// createdAtLayout is the shape of the CreatedAt column of ps and images.
const createdAtLayout = "2006-01-02 15:04:05 -0700"

const (
	kib = 1024
	mib = 1024 * kib
	gib = 1024 * mib
)

// Decimal and binary spellings are both treated as binary multiples.
var sizeUnits = []struct {
	suffix     string
	multiplier float64
}{
	{"GB", gib}, {"GiB", gib},
	{"MB", mib}, {"MiB", mib},
	{"KB", kib}, {"KiB", kib}, {"kB", kib},
}

// parseSize converts a human readable size such as "1.2GB" or "512B" to
// bytes. Anything that is not a plain decimal number yields 0.
func parseSize(s string) uint64 {
	s = strings.TrimSpace(s)
	multiplier := 1.0
	for _, u := range sizeUnits {
		if strings.HasSuffix(s, u.suffix) {
			multiplier = u.multiplier
			break
		}
	}

	num := strings.TrimRightFunc(s, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	})
	if num == "" || strings.ContainsFunc(num, func(r rune) bool {
		return !unicode.IsDigit(r) && r != '.'
	}) {
		return 0
	}

	v, err := strconv.ParseFloat(num, 64)
	if err != nil || v < 0 {
		return 0
	}
	return uint64(v * multiplier)
}

// parsePercent converts "45.3%" to 45.3, or 0 when it is not a number.
func parsePercent(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimRight(strings.TrimSpace(s), "%"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// parseUsagePair splits "used / limit" and parses both halves as sizes.
func parseUsagePair(s string) (uint64, uint64) {
	parts := strings.Split(s, " / ")
	if len(parts) != 2 {
		return 0, 0
	}
	return parseSize(parts[0]), parseSize(parts[1])
}

// parseCreatedAt returns the epoch seconds of a CreatedAt value, or the
// current time when it does not match createdAtLayout.
func parseCreatedAt(s string) int64 {
	t, err := time.Parse(createdAtLayout, s)
	if err != nil {
		return time.Now().Unix()
	}
	return t.Unix()
}

// parsePorts parses the Ports column of ps, e.g.
// "0.0.0.0:8080->80/tcp, :::8080->80/tcp, 443/tcp". Only published
// mappings are returned.
func parsePorts(s string) []domain.Port {
	ports := []domain.Port{}
	if s == "" {
		return ports
	}

	for _, token := range strings.Split(s, ", ") {
		parts := strings.Split(token, "->")
		if len(parts) != 2 {
			continue
		}
		host, container := parts[0], parts[1]

		var port domain.Port
		if i := strings.LastIndex(host, ":"); i >= 0 {
			port.IP = host[:i]
			port.PublicPort = parsePortNumber(host[i+1:])
		} else {
			port.PublicPort = parsePortNumber(host)
		}

		proto, private := nat.SplitProtoPort(container)
		if proto == "" {
			proto = "tcp"
		}
		port.PrivatePort = parsePortNumber(private)
		port.Type = proto

		ports = append(ports, port)
	}
	return ports
}

func parsePortNumber(s string) uint16 {
	n, err := nat.ParsePort(s)
	if err != nil {
		return 0
	}
	return uint16(n)
}

// parseLabels parses the Labels column of ps, "k1=v1,k2=v2".
func parseLabels(s string) map[string]string {
	labels := map[string]string{}
	if s == "" {
		return labels
	}
	for _, pair := range strings.Split(s, ",") {
		key, value, _ := strings.Cut(pair, "=")
		if key == "" {
			continue
		}
		labels[key] = value
	}
	return labels
}
