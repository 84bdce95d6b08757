package main

import (
	"github.com/spf13/cobra"

	"github.com/scandir-io/scandir/cmd"
)

// rootMain is the entry point for the root command. It simply displays help
// information, since all functionality lives in subcommands.
func rootMain(command *cobra.Command, arguments []string) error {
	return command.Help()
}

// rootCommand is the root command.
var rootCommand = &cobra.Command{
	Use:   "scandir",
	Short: "Fast, platform-abstracted directory listing",
	Run:   cmd.Mainify(rootMain),
}

// rootConfiguration stores configuration for the root command.
var rootConfiguration struct {
	// help indicates whether or not help information should be shown for the
	// command.
	help bool
}

func init() {
	// Grab a handle for the command line flags.
	flags := rootCommand.Flags()

	// Disable alphabetical sorting of flags in help output.
	flags.SortFlags = false

	// Manually add a help flag to override the default message. Cobra will
	// still implement its logic automatically.
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")

	// Register commands.
	rootCommand.AddCommand(
		listCommand,
		versionCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		cmd.Fatal(err)
	}
}
