package cli

import (
	"errors"
	"fmt"
	"mime"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/breedsnap/breedsnap-go/internal/client"
	"github.com/spf13/cobra"
)

var classifyCmd = &cobra.Command{
	Use:   "classify <image-file>",
	Short: "Identify the cat breed in a photo",
	Long: `Upload a photo to the server for breed identification.

The result is stored in this device's history.

Examples:
  breedsnap classify whiskers.jpg
  breedsnap classify --server http://cats.example.com photo.png`,
	Args: cobra.ExactArgs(1),
	RunE: runClassify,
}

func runClassify(cmd *cobra.Command, args []string) error {
	path := args[0]
	image, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}

	mimeType := mime.TypeByExtension(filepath.Ext(path))
	if !strings.HasPrefix(mimeType, "image/") {
		mimeType = http.DetectContentType(image)
	}

	fmt.Println(defaultTheme.statusStyle().Render("Identifying..."))

	sighting, err := api.Upload(cmd.Context(), filepath.Base(path), image, mimeType)
	if err != nil {
		var apiErr *client.APIError
		if errors.As(err, &apiErr) && apiErr.Reason != "" {
			fmt.Println(defaultTheme.errorStyle().Render(apiErr.Message))
			fmt.Println(defaultTheme.hintStyle().Render(apiErr.Reason))
			return fmt.Errorf("classification rejected")
		}
		return err
	}

	printSighting(*sighting)
	return nil
}

func printSighting(s client.Sighting) {
	fmt.Println(defaultTheme.successStyle().Render(
		fmt.Sprintf("%s (%.0f%% confident)", s.BreedName, s.Confidence)))
	fmt.Printf("  origin:     %s\n", s.PlaceOfOrigin)
	fmt.Printf("  rarity:     %s\n", s.Rarity)
	fmt.Printf("  difficulty: %s\n", s.Difficulty)

	if len(s.AlternativeBreeds) > 0 {
		fmt.Println("  could also be:")
		for _, alt := range s.AlternativeBreeds {
			fmt.Printf("    %s (%.0f%%)\n", alt.Breed, alt.Percentage)
		}
	}

	if len(s.FunFacts) > 0 {
		fmt.Println()
		for _, fact := range s.FunFacts {
			fmt.Println(defaultTheme.hintStyle().Render("  * " + fact))
		}
	}
}
