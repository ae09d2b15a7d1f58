package cli

import (
	"encoding/json"
	"fmt"

	"github.com/MrWheatley/hud-manager/version"
	"github.com/spf13/cobra"
)

// SetVersionTemplate sets a custom version template for a cobra command
func SetVersionTemplate(cmd *cobra.Command, info version.Info) {
	cmd.SetVersionTemplate(fmt.Sprintf(`{{.Name}} {{.Version}}
  Commit:    %s
  Built:     %s
  Platform:  %s
`, info.Commit, info.BuildDate, info.Platform))
}

// NewVersionCommand creates a standard version command
func NewVersionCommand(componentName string) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: fmt.Sprintf("Print the version number of %s", componentName),
		RunE: func(cmd *cobra.Command, args []string) error {
			info := version.GetInfo()
			jsonOutput, _ := cmd.Flags().GetBool("json")
			if jsonOutput {
				data, err := json.MarshalIndent(info, "", "  ")
				if err != nil {
					return err
				}
				fmt.Println(string(data))
				return nil
			}
			fmt.Printf("%s %s\n", componentName, info.Version)
			fmt.Printf("  Commit:    %s\n", info.Commit)
			fmt.Printf("  Built:     %s\n", info.BuildDate)
			fmt.Printf("  Platform:  %s\n", info.Platform)
			return nil
		},
	}
	return cmd
}
