package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/docker/docker/pkg/stringid"
	"github.com/spf13/cobra"
)

var logsTail uint32

var psCmd = &cobra.Command{
	Use:     "ps",
	Short:   "List containers",
	Aliases: []string{"containers"},
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		containers, err := adapter.ListContainers(cmd.Context())
		if err != nil {
			return err
		}

		now := time.Now()
		table := newTable(cmd.OutOrStdout(), "CONTAINER ID", "IMAGE", "CREATED", "STATE", "STATUS", "PORTS", "NAMES")
		for _, c := range containers {
			table.Append([]string{
				stringid.TruncateID(c.ID),
				c.Image,
				formatAge(c.Created, now),
				colorState(c.State),
				c.Status,
				formatPorts(c.Ports),
				c.Name(),
			})
		}
		table.Render()
		return nil
	},
}

var actionCmd = &cobra.Command{
	Use:       "action ACTION CONTAINER...",
	Short:     "Run a lifecycle action (start, stop, restart, remove, pause, unpause) on containers",
	Args:      cobra.MinimumNArgs(2),
	ValidArgs: []string{"start", "stop", "restart", "remove", "pause", "unpause"},
	RunE: func(cmd *cobra.Command, args []string) error {
		action := args[0]
		for _, id := range args[1:] {
			out, err := adapter.ContainerAction(cmd.Context(), id, action)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

var logsCmd = &cobra.Command{
	Use:   "logs CONTAINER",
	Short: "Print the last lines of a container's logs",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tail := cfg.Logs.DefaultTail
		if cmd.Flags().Changed("tail") {
			tail = logsTail
		}
		out, err := adapter.ContainerLogs(cmd.Context(), args[0], tail)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var inspectCmd = &cobra.Command{
	Use:   "inspect CONTAINER",
	Short: "Show the inspect document of a container",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := adapter.InspectContainer(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		var pretty bytes.Buffer
		if err := json.Indent(&pretty, []byte(doc), "", "    "); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), pretty.String())
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats [CONTAINER...]",
	Short: "Show a resource usage snapshot of containers (all running ones by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		ids := args
		if len(ids) == 0 {
			containers, err := adapter.ListContainers(cmd.Context())
			if err != nil {
				return err
			}
			for _, c := range containers {
				if c.Running() {
					ids = append(ids, c.ID)
				}
			}
		}

		stats, err := adapter.AllContainerStats(cmd.Context(), ids)
		if err != nil {
			return err
		}

		sorted := make([]string, 0, len(stats))
		for id := range stats {
			sorted = append(sorted, id)
		}
		sort.Strings(sorted)

		table := newTable(cmd.OutOrStdout(), "CONTAINER ID", "CPU %", "MEM USAGE / LIMIT", "MEM %", "NET I/O", "BLOCK I/O")
		for _, id := range sorted {
			s := stats[id]
			table.Append([]string{
				stringid.TruncateID(id),
				fmt.Sprintf("%.2f%%", s.CPUPercent),
				formatUsage(s.MemoryUsage, s.MemoryLimit),
				fmt.Sprintf("%.2f%%", s.MemoryPercent),
				formatUsage(s.NetworkRx, s.NetworkTx),
				formatUsage(s.BlockRead, s.BlockWrite),
			})
		}
		table.Render()
		return nil
	},
}

func addContainerCommands(root *cobra.Command) {
	logsCmd.Flags().Uint32Var(&logsTail, "tail", 0, "Number of lines to show (defaults to logs.default_tail)")

	root.AddCommand(psCmd, actionCmd, logsCmd, inspectCmd, statsCmd)
}
