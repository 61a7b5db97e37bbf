package cmd

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/docker/go-units"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/melih/lighthouse-desktop/internal/core/domain"
)

// newTable returns a borderless, tab padded table like `docker ps` prints.
func newTable(w io.Writer, headers ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetTablePadding("\t")
	table.SetNoWhiteSpace(true)
	return table
}

var stateColors = map[string]*color.Color{
	"running":    color.New(color.FgGreen),
	"paused":     color.New(color.FgYellow),
	"restarting": color.New(color.FgYellow),
	"exited":     color.New(color.FgRed),
	"dead":       color.New(color.FgRed),
}

func colorState(state string) string {
	if c, ok := stateColors[state]; ok {
		return c.Sprint(state)
	}
	return state
}

// formatPorts renders ports back into the runtime's own notation.
func formatPorts(ports []domain.Port) string {
	parts := make([]string, 0, len(ports))
	for _, p := range ports {
		host := fmt.Sprintf("%d", p.PublicPort)
		if p.IP != "" {
			host = p.IP + ":" + host
		}
		parts = append(parts, fmt.Sprintf("%s->%d/%s", host, p.PrivatePort, p.Type))
	}
	return strings.Join(parts, ", ")
}

func formatAge(created int64, now time.Time) string {
	return units.HumanDuration(now.Sub(time.Unix(created, 0))) + " ago"
}

func formatUsage(used, limit uint64) string {
	return units.BytesSize(float64(used)) + " / " + units.BytesSize(float64(limit))
}
