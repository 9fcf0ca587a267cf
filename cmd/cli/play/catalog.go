package play

import (
	"encoding/json"
	"fmt"
	"slices"
	"text/tabwriter"

	"github.com/myrjola/icaro/internal/errors"
	"github.com/myrjola/icaro/internal/game"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var Group = &cobra.Group{
	ID:    "play",
	Title: "Table",
}

var cardTypes = []game.CardType{
	game.CardTypeDossier,
	game.CardTypeEvidence,
	game.CardTypeInterrogation,
	game.CardTypeResource,
}

// NewCatalogCmd lists the cards of the game.
func NewCatalogCmd() *cobra.Command {
	var (
		cardType string
		format   string
	)
	cmd := &cobra.Command{
		Use:     "catalog",
		GroupID: "play",
		Short:   "List the cards",
		Long:    `Lists every card of the game, optionally only the ones of one type.`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cards := game.Catalog()
			if cardType != "" {
				if !slices.Contains(cardTypes, game.CardType(cardType)) {
					return errors.New(fmt.Sprintf("unknown card type %q", cardType))
				}
				cards = slices.DeleteFunc(cards, func(c game.Card) bool { return c.Type != game.CardType(cardType) })
			}

			out := cmd.OutOrStdout()
			switch format {
			case "yaml":
				enc := yaml.NewEncoder(out)
				defer func() {
					_ = enc.Close()
				}()
				return errors.Wrap(enc.Encode(cards), "encode yaml")
			case "json":
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return errors.Wrap(enc.Encode(cards), "encode json")
			case "text":
				tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0) //nolint:mnd // column padding
				_, _ = fmt.Fprintln(tw, "ID\tCÓDIGO\tTIPO\tTÍTULO")
				for _, c := range cards {
					_, _ = fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", c.ID, c.Code, c.Type.Label(), c.Title)
				}
				return errors.Wrap(tw.Flush(), "flush table")
			default:
				return errors.New(fmt.Sprintf("unknown format %q", format))
			}
		},
	}
	cmd.Flags().StringVar(&cardType, "type", "", "only list cards of this type (dossier, evidence, interrogation, resource)")
	cmd.Flags().StringVar(&format, "format", "text", "output format (text, yaml, json)")
	return cmd
}
