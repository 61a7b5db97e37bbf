package cmd

import (
	"github.com/spf13/cobra"

	"github.com/melih/lighthouse-desktop/internal/adapters/docker"
	"github.com/melih/lighthouse-desktop/internal/config"
	"github.com/melih/lighthouse-desktop/internal/logger"
)

var (
	// Global flags
	cfgFile     string
	binaryFlag  string
	verboseFlag bool

	// Set up by PersistentPreRunE for every command.
	cfg     *config.Config
	runner  *docker.CLIRunner
	adapter *docker.Adapter
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lighthouse",
	Short: "lighthouse is the backend of the Lighthouse container desktop.",
	Long: `lighthouse drives a container runtime CLI (docker by default) and
serves containers, images and volumes to the desktop UI over a local HTTP API.
The same operations are available as subcommands.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if binaryFlag != "" {
			loaded.Runtime.Binary = binaryFlag
		}
		if verboseFlag {
			loaded.Log.Level = "debug"
		}

		logOpts := logger.DefaultOptions()
		logOpts.Level = loaded.Log.Level
		logOpts.File = loaded.Log.File
		logOpts.MaxSizeMB = loaded.Log.MaxSizeMB
		if err := logger.Init(logOpts); err != nil {
			return err
		}

		cfg = loaded
		runner = docker.NewCLIRunner(cfg.Runtime)
		adapter = docker.NewAdapter(runner, cfg.Stats.Concurrency)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&binaryFlag, "binary", "", "Container runtime CLI to run (overrides runtime.binary)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable verbose output")

	rootCmd.AddCommand(serveCmd)
	addContainerCommands(rootCmd)
	addImageCommands(rootCmd)
	addVolumeCommands(rootCmd)
}
