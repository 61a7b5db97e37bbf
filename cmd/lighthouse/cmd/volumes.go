package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// volumeCmd lists volumes when run bare, so `lighthouse volumes` works too.
var volumeCmd = &cobra.Command{
	Use:     "volume",
	Short:   "Manage volumes",
	Aliases: []string{"volumes"},
	Args:    cobra.NoArgs,
	RunE:    listVolumes,
}

var volumeListCmd = &cobra.Command{
	Use:     "ls",
	Short:   "List volumes",
	Aliases: []string{"list"},
	Args:    cobra.NoArgs,
	RunE:    listVolumes,
}

func listVolumes(cmd *cobra.Command, args []string) error {
	volumes, err := adapter.ListVolumes(cmd.Context())
	if err != nil {
		return err
	}

	table := newTable(cmd.OutOrStdout(), "DRIVER", "SCOPE", "VOLUME NAME", "MOUNTPOINT")
	for _, v := range volumes {
		table.Append([]string{v.Driver, v.Scope, v.Name, v.Mountpoint})
	}
	table.Render()
	return nil
}

var volumeCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a volume",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := adapter.CreateVolume(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var volumeRemoveCmd = &cobra.Command{
	Use:     "rm NAME...",
	Short:   "Remove volumes",
	Aliases: []string{"remove"},
	Args:    cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, name := range args {
			out, err := adapter.RemoveVolume(cmd.Context(), name)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

func addVolumeCommands(root *cobra.Command) {
	volumeCmd.AddCommand(volumeListCmd, volumeCreateCmd, volumeRemoveCmd)
	root.AddCommand(volumeCmd)
}
