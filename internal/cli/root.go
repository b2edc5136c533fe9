// Package cli provides the command-line interface for breedsnap.
package cli

import (
	"github.com/breedsnap/breedsnap-go/internal/client"
	"github.com/spf13/cobra"
)

var (
	// Version is set at build time.
	Version = "0.1.0"

	// Global flags
	serverURL  string
	deviceFlag string

	// API client, created in PersistentPreRunE
	api *client.Client
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "breedsnap",
	Short: "Cat breed identification from photos",
	Long: `Breedsnap identifies cat breeds from photos using a vision model.

Point it at a running breedsnap-server, snap a photo of a cat, and get
the breed, confidence, alternatives and a few fun facts. Every
identification is stored per device and can be browsed later.`,
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// No server connection needed for version and help
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		id, err := resolveDeviceID(deviceFlag)
		if err != nil {
			return err
		}
		api = client.New(serverURL, id)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "server URL (default http://localhost:3001 or BREEDSNAP_SERVER_URL)")
	rootCmd.PersistentFlags().StringVar(&deviceFlag, "device", "", "device identifier (default: generated once and cached)")

	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(healthCmd)
	rootCmd.AddCommand(statsCmd)
}
