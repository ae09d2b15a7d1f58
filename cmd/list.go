package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MrWheatley/hud-manager/cli"
	"github.com/MrWheatley/hud-manager/hud"
	"github.com/MrWheatley/hud-manager/search"
	"github.com/MrWheatley/hud-manager/tui/components/table"
	"github.com/MrWheatley/hud-manager/tui/theme"
)

// NewListCmd creates the `list` command.
func NewListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every HUD under the content root",
		Long: `List every HUD discovered under the content root, favorites first,
with the active HUD marked. Use --filter to narrow the list with a
fuzzy match on HUD names.`,
		Example: `  # List all HUDs
  hud-manager list

  # Fuzzy-filter by name
  hud-manager list --filter budhud

  # Machine-readable output
  hud-manager list --json`,
	}

	cmd.Flags().String("filter", "", "Fuzzy-filter HUDs by name")

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		handler := cli.NewErrorHandler(cli.GetOptions(cmd).Verbose)

		huds, err := loadCollection(cmd)
		if err != nil {
			return handler.Handle(err)
		}

		visible := huds.All
		if filter, _ := cmd.Flags().GetString("filter"); filter != "" {
			matches, err := search.Filter(filter, huds.Names())
			if err != nil {
				return handler.Handle(err)
			}
			var kept []hud.Hud
			for _, h := range huds.All {
				if _, ok := matches[h.Name]; ok {
					kept = append(kept, h)
				}
			}
			visible = kept
		}

		if jsonOutput, _ := cmd.Flags().GetBool("json"); jsonOutput {
			jsonData, err := json.MarshalIndent(visible, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal HUDs to JSON: %w", err)
			}
			fmt.Println(string(jsonData))
			return nil
		}

		if len(visible) == 0 {
			fmt.Println("No HUDs found.")
			return nil
		}

		t := theme.DefaultTheme
		var rows [][]string
		for _, h := range visible {
			star := " "
			if h.Favorite {
				star = t.FavoriteHud.Render("★")
			}
			name := h.Name
			if huds.Active != nil && huds.Active.Name == h.Name {
				name = t.ActiveHud.Render(name + " (active)")
			}
			rows = append(rows, []string{star, name, t.Muted.Render(h.Path)})
		}
		fmt.Println(table.SimpleTable([]string{"★", "HUD", "PATH"}, rows))
		return nil
	}

	return cmd
}
