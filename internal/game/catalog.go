package game

import (
	_ "embed"
	"log/slog"
	"slices"
	"sync"

	"github.com/myrjola/icaro/internal/errors"
	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var catalogYAML []byte

const (
	dossierCount       = 5
	evidenceCount      = 12
	interrogationCount = 8
	resourceCount      = 6
)

type catalogDocument struct {
	Dossiers       []Card `yaml:"dossiers"`
	Evidence       []Card `yaml:"evidence"`
	Interrogations []Card `yaml:"interrogations"`
	Resources      []Card `yaml:"resources"`
}

var loadCatalog = sync.OnceValues(func() ([]Card, error) {
	return parseCatalog(catalogYAML)
})

// Catalog returns every card of the game in catalog order: dossiers, evidence, interrogations and resources.
// The returned slice is a fresh copy.
func Catalog() []Card {
	cards, err := loadCatalog()
	if err != nil {
		// The catalog is embedded at build time so a broken one is a programming error.
		panic(err)
	}
	return slices.Clone(cards)
}

func parseCatalog(data []byte) ([]Card, error) {
	var doc catalogDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(err, "unmarshal catalog")
	}

	sections := []struct {
		cardType CardType
		cards    []Card
		want     int
	}{
		{CardTypeDossier, doc.Dossiers, dossierCount},
		{CardTypeEvidence, doc.Evidence, evidenceCount},
		{CardTypeInterrogation, doc.Interrogations, interrogationCount},
		{CardTypeResource, doc.Resources, resourceCount},
	}

	var (
		cards = make([]Card, 0, dossierCount+evidenceCount+interrogationCount+resourceCount)
		seen  = make(map[string]bool)
	)
	for _, s := range sections {
		if len(s.cards) != s.want {
			return nil, errors.New("unexpected card count",
				slog.String("type", string(s.cardType)), slog.Int("count", len(s.cards)), slog.Int("want", s.want))
		}
		for _, c := range s.cards {
			c.Type = s.cardType
			if c.ID == "" || c.Title == "" || c.Description == "" || c.Code == "" {
				return nil, errors.New("card has empty fields",
					slog.String("card_id", c.ID), slog.String("type", string(s.cardType)))
			}
			if seen[c.ID] {
				return nil, errors.New("duplicate card id", slog.String("card_id", c.ID))
			}
			seen[c.ID] = true
			cards = append(cards, c)
		}
	}
	return cards, nil
}
