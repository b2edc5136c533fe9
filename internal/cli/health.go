package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check whether the server is up",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := api.Health(cmd.Context()); err != nil {
			fmt.Println(defaultTheme.errorStyle().Render("server is not healthy"))
			return err
		}
		fmt.Println(defaultTheme.successStyle().Render("server is up"))
		return nil
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show server runtime statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := api.Stats(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Println(string(raw))
		return nil
	},
}
