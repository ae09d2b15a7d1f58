package cmd

import (
	"github.com/spf13/cobra"

	"github.com/MrWheatley/hud-manager/cli"
	"github.com/MrWheatley/hud-manager/errors"
	"github.com/MrWheatley/hud-manager/logging"
)

// NewFavoriteCmd creates the `favorite` command.
func NewFavoriteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "favorite <name>",
		Short: "Mark a HUD as a favorite",
		Long: `Mark the named HUD as a favorite so it sorts to the top of the list.
Use --remove to unmark it. The favorites file under the huds directory
is rewritten immediately.`,
		Args: cobra.ExactArgs(1),
		Example: `  # Favorite a HUD
  hud-manager favorite budhud

  # Remove a favorite
  hud-manager favorite budhud --remove`,
	}

	cmd.Flags().Bool("remove", false, "Remove the HUD from favorites instead")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		handler := cli.NewErrorHandler(cli.GetOptions(cmd).Verbose)
		pretty := logging.NewPrettyLogger()

		huds, err := loadCollection(cmd)
		if err != nil {
			return handler.Handle(err)
		}

		name := args[0]
		target := huds.Find(name)
		if target == nil {
			return handler.Handle(errors.HudNotFound(name))
		}

		remove, _ := cmd.Flags().GetBool("remove")
		if target.Favorite == !remove {
			// Already in the requested state; nothing to write.
			pretty.InfoPretty("No change for " + name)
			return nil
		}

		if err := huds.ToggleFavorite(name); err != nil {
			return handler.Handle(err)
		}
		if err := huds.SaveFavorites(); err != nil {
			return handler.Handle(err)
		}

		if remove {
			pretty.Success("Removed " + name + " from favorites")
		} else {
			pretty.Success("Added " + name + " to favorites")
		}
		return nil
	}

	return cmd
}
