package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List this device's identifications, newest first",
	RunE:  runHistory,
}

func runHistory(cmd *cobra.Command, args []string) error {
	sightings, err := api.ListSightings(cmd.Context())
	if err != nil {
		return err
	}

	if len(sightings) == 0 {
		fmt.Println(defaultTheme.hintStyle().Render("No cats identified yet."))
		return nil
	}

	fmt.Println(defaultTheme.statusStyle().Render(
		fmt.Sprintf("%d identification(s):", len(sightings))))
	for _, s := range sightings {
		fmt.Printf("  %s  %s (%.0f%%)  %s\n",
			s.CreatedAt.Local().Format("2006-01-02 15:04"),
			s.BreedName,
			s.Confidence,
			defaultTheme.hintStyle().Render(s.PlaceOfOrigin))
	}
	return nil
}
