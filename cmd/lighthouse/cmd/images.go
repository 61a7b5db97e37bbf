package cmd

import (
	"fmt"
	"strings"
	"time"

	"github.com/docker/docker/pkg/stringid"
	"github.com/docker/go-units"
	"github.com/spf13/cobra"

	"github.com/melih/lighthouse-desktop/internal/adapters/builder"
	"github.com/melih/lighthouse-desktop/internal/logger"
)

var (
	buildRepo string
	buildTag  string
)

var imagesCmd = &cobra.Command{
	Use:   "images",
	Short: "List images",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		images, err := adapter.ListImages(cmd.Context())
		if err != nil {
			return err
		}

		now := time.Now()
		table := newTable(cmd.OutOrStdout(), "IMAGE ID", "TAGS", "CREATED", "SIZE")
		for _, img := range images {
			tags := strings.Join(img.RepoTags, ", ")
			if tags == "" {
				tags = "<none>"
			}
			table.Append([]string{
				stringid.TruncateID(img.ID),
				tags,
				formatAge(img.Created, now),
				units.BytesSize(float64(img.Size)),
			})
		}
		table.Render()
		return nil
	},
}

var pullCmd = &cobra.Command{
	Use:   "pull IMAGE",
	Short: "Pull an image",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		out, err := adapter.PullImage(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

var rmiCmd = &cobra.Command{
	Use:   "rmi IMAGE...",
	Short: "Remove images",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, id := range args {
			out, err := adapter.RemoveImage(cmd.Context(), id)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
		}
		return nil
	},
}

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Clone a git repository and build an image from it",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		result, err := builder.NewBuilderAdapter(runner).BuildImage(cmd.Context(), buildRepo, buildTag)
		fmt.Fprint(cmd.OutOrStdout(), result.Output)
		if err != nil {
			return err
		}
		logger.Get().Infof("built %s in %s", result.Image, result.FinishedAt.Sub(result.StartedAt).Round(time.Second))
		return nil
	},
}

func addImageCommands(root *cobra.Command) {
	buildCmd.Flags().StringVar(&buildRepo, "repo", "", "Git repository URL")
	buildCmd.Flags().StringVarP(&buildTag, "tag", "t", "", "Name of the image to build")
	_ = buildCmd.MarkFlagRequired("repo")
	_ = buildCmd.MarkFlagRequired("tag")

	root.AddCommand(imagesCmd, pullCmd, rmiCmd, buildCmd)
}
