package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrWheatley/hud-manager/cli"
	"github.com/MrWheatley/hud-manager/logging"
	"github.com/MrWheatley/hud-manager/state"
)

// NewActivateCmd creates the `activate` command.
func NewActivateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "activate [name]",
		Short: "Make the named HUD the active one",
		Long: `Move the named HUD to the content root so the game loads it. The
previously active HUD, if any, is moved back into the huds directory
first. Use --previous to switch back to the HUD that was active before
the last activation.`,
		Args: cobra.MaximumNArgs(1),
		Example: `  # Activate a HUD by name
  hud-manager activate budhud

  # Switch back to the previously active HUD
  hud-manager activate --previous`,
	}

	cmd.Flags().Bool("previous", false, "Activate the previously active HUD")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		handler := cli.NewErrorHandler(cli.GetOptions(cmd).Verbose)
		logger := cli.GetLogger(cmd)
		pretty := logging.NewPrettyLogger()

		previous, _ := cmd.Flags().GetBool("previous")
		var name string
		switch {
		case previous && len(args) > 0:
			return fmt.Errorf("cannot combine --previous with a HUD name")
		case previous:
			stored, err := state.GetString(state.KeyPreviousActive)
			if err != nil {
				return handler.Handle(err)
			}
			if stored == "" {
				return fmt.Errorf("no previously active HUD recorded")
			}
			name = stored
		case len(args) == 1:
			name = args[0]
		default:
			return cmd.Help()
		}

		huds, err := loadCollection(cmd)
		if err != nil {
			return handler.Handle(err)
		}

		var prev string
		if huds.Active != nil {
			prev = huds.Active.Name
		}

		if err := huds.SetActive(name); err != nil {
			return handler.Handle(err)
		}

		if err := state.RecordActivation(name, prev); err != nil {
			// History is best-effort; the swap already happened.
			logger.WithError(err).Warn("failed to record activation history")
		}

		pretty.Success("Activated " + name)
		pretty.Path("Location", huds.Active.Path)
		return nil
	}

	return cmd
}
