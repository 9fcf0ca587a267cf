package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseCatalog(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		data    string
		wantErr bool
	}{
		{
			name:    "embedded catalog",
			data:    string(catalogYAML),
			wantErr: false,
		},
		{
			name:    "malformed yaml",
			data:    "dossiers: [",
			wantErr: true,
		},
		{
			name:    "missing sections",
			data:    "dossiers: []",
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := parseCatalog([]byte(tt.data))
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestParseCatalogRejectsDuplicatesAndBlanks(t *testing.T) {
	t.Parallel()
	valid, err := parseCatalog(catalogYAML)
	require.NoError(t, err)

	doc := catalogDocument{}
	for _, c := range valid {
		switch c.Type {
		case CardTypeDossier:
			doc.Dossiers = append(doc.Dossiers, c)
		case CardTypeEvidence:
			doc.Evidence = append(doc.Evidence, c)
		case CardTypeInterrogation:
			doc.Interrogations = append(doc.Interrogations, c)
		case CardTypeResource:
			doc.Resources = append(doc.Resources, c)
		}
	}

	duplicated := doc
	duplicated.Resources = append([]Card{}, doc.Resources...)
	duplicated.Resources[5].ID = "rec-1"
	_, err = parseCatalog(mustMarshal(t, duplicated))
	require.ErrorContains(t, err, "duplicate card id")

	blank := doc
	blank.Evidence = append([]Card{}, doc.Evidence...)
	blank.Evidence[0].Code = ""
	_, err = parseCatalog(mustMarshal(t, blank))
	require.ErrorContains(t, err, "empty fields")
}
