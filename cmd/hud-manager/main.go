package main

import (
	"os"

	"github.com/MrWheatley/hud-manager/cli"
	"github.com/MrWheatley/hud-manager/cmd"
	"github.com/MrWheatley/hud-manager/version"
)

func main() {
	rootCmd := cli.NewStandardCommand(
		"hud-manager",
		"Manage custom HUDs for Team Fortress 2",
	)
	rootCmd.Long = `hud-manager keeps a collection of TF2 HUDs under the game's custom
directory and swaps which one is active. Running it with no arguments
opens an interactive navigator.`
	rootCmd.Version = version.Version
	rootCmd.RunE = cmd.RunNavigator

	cli.SetVersionTemplate(rootCmd, version.GetInfo())

	// Add subcommands
	rootCmd.AddCommand(cmd.NewNavCmd())
	rootCmd.AddCommand(cmd.NewListCmd())
	rootCmd.AddCommand(cmd.NewActivateCmd())
	rootCmd.AddCommand(cmd.NewFavoriteCmd())
	rootCmd.AddCommand(cmd.NewPathsCmd())
	rootCmd.AddCommand(cli.NewVersionCommand("hud-manager"))

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
