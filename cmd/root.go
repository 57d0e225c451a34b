package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"bedrock-setup/internal/config"
	"bedrock-setup/internal/execx"
	"bedrock-setup/internal/logger"
	"bedrock-setup/internal/setup"
)

// debug toggles verbose logging via the `--debug` flag.
var debug bool

// settingsPath is the optional settings.yaml location. All run inputs come
// from the .env file and the interactive model prompt, not from flags.
var settingsPath string

// executionDir optionally anchors a relative .env path to another directory
// than the one the tool was invoked from.
var executionDir string

// rootCmd is the single entry point. One invocation runs the whole
// bootstrap pipeline top to bottom; there are no subcommands.
var rootCmd = &cobra.Command{
	Use:   "bedrock-setup",
	Short: "Bootstrap a workstation to run AWS Bedrock inference",
	Long: `bedrock-setup prepares the local machine to invoke an AWS Bedrock model:
it loads credentials from a .env file, lets you pick a model from the
built-in catalog, provisions the Python runtime, AWS CLI v2 and SDK
packages if they are missing, writes the credentials into a named AWS
profile, and runs the external inference program once, printing its
response.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.LoadSettings(settingsPath)
		if err != nil {
			return err
		}
		settings.ResolveRelative(executionDir)
		if err := logger.Init(settings.LogFile, debug); err != nil {
			return err
		}
		defer logger.Close()

		pipe := &setup.Pipeline{
			Settings: settings,
			Runner:   execx.System{},
			In:       os.Stdin,
			Out:      os.Stdout,
		}
		return pipe.Run()
	},
}

// Execute runs the CLI and exits with the failed step's code.
func Execute() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&settingsPath, "config", "c", "settings.yaml", "Path to the tool settings file")
	rootCmd.PersistentFlags().StringVar(&executionDir, "execution-dir", "", "Directory containing the .env file")

	if err := rootCmd.Execute(); err != nil {
		// Pipeline failures were already dual-reported by the step that
		// raised them; anything else still needs a line on stderr.
		var se *setup.StepError
		if !errors.As(err, &se) {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(setup.ExitCode(err))
	}
}
