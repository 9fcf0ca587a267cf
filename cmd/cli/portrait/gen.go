package portrait

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"strings"

	"github.com/myrjola/icaro/internal/errors"
	"github.com/myrjola/icaro/internal/game"
	"github.com/myrjola/icaro/internal/portrait"
	"github.com/sashabaranov/go-openai"
	"github.com/spf13/cobra"
)

var Group = &cobra.Group{
	ID:    "portrait",
	Title: "Portraits",
}

// NewPortraitCmd groups the portrait commands.
func NewPortraitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "portrait",
		GroupID: "portrait",
		Short:   "Suspect portraits",
	}
	cmd.AddCommand(newGenerateCmd())
	return cmd
}

func newGenerateCmd() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "gen [dossier id, code or prompt]",
		Short: "Generate a portrait",
		Long: `Generates a portrait with Dall-E that can be attached to a dossier.

A dossier id or code such as SXP-02 describes the suspect from the case files. Anything else is used as the prompt.
Needs OPENAI_API_KEY, OPENAI_BASE_URL optionally points to another endpoint.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := openai.DefaultConfig(os.Getenv("OPENAI_API_KEY"))
			if baseURL := os.Getenv("OPENAI_BASE_URL"); baseURL != "" {
				cfg.BaseURL = baseURL
			}
			c := openai.NewClientWithConfig(cfg)

			request := openai.ImageRequest{ //nolint:exhaustruct // defaults are fine
				Model:          openai.CreateImageModelDallE3,
				Prompt:         prompt(args),
				Size:           openai.CreateImageSize1024x1024,
				ResponseFormat: openai.CreateImageResponseFormatB64JSON,
				N:              1,
			}

			response, err := c.CreateImage(cmd.Context(), request)
			if err != nil {
				return errors.Wrap(err, "create image")
			}
			if len(response.Data) == 0 {
				return errors.New("no image in response")
			}

			imgBytes, err := base64.StdEncoding.DecodeString(response.Data[0].B64JSON)
			if err != nil {
				return errors.Wrap(err, "decode base64")
			}
			imgData, err := png.Decode(bytes.NewReader(imgBytes))
			if err != nil {
				return errors.Wrap(err, "decode png")
			}

			var buf bytes.Buffer
			if err = png.Encode(&buf, imgData); err != nil {
				return errors.Wrap(err, "encode png")
			}
			if err = os.WriteFile(outPath, buf.Bytes(), 0o600); err != nil { //nolint:mnd // rw owner
				return errors.Wrap(err, "write image", slog.String("path", outPath))
			}

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "The image was saved as %s\n", outPath)
			if buf.Len() > portrait.DefaultMaxBytes {
				_, _ = fmt.Fprintf(out, "The image is larger than the %d bytes a dossier accepts, shrink it before "+
					"attaching.\n", portrait.DefaultMaxBytes)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outPath, "out", "./out.png", "path to generated image file")
	return cmd
}

// prompt describes the suspect when args name a dossier.
func prompt(args []string) string {
	joined := strings.Join(args, " ")
	for _, c := range game.Catalog() {
		if c.Type != game.CardTypeDossier || (c.ID != joined && !strings.EqualFold(c.Code, joined)) {
			continue
		}
		return fmt.Sprintf("Black and white surveillance photo of a suspect in a 1980s military intelligence case "+
			"file, no text. The suspect: %s. %s", c.Title, c.Description)
	}
	return joined
}
