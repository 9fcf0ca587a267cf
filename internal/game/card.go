package game

// CardType classifies a card. Only dossiers are kept out of the deck.
type CardType string

const (
	CardTypeDossier       CardType = "dossier"
	CardTypeEvidence      CardType = "evidence"
	CardTypeInterrogation CardType = "interrogation"
	CardTypeResource      CardType = "resource"
)

// Label is the Portuguese name shown on the card face.
func (t CardType) Label() string {
	switch t {
	case CardTypeDossier:
		return "Dossiê"
	case CardTypeEvidence:
		return "Evidência Forense"
	case CardTypeInterrogation:
		return "Interrogatório"
	case CardTypeResource:
		return "Recurso Tático"
	default:
		return string(t)
	}
}

// Card is an immutable piece of content. ImageURL is only ever set on dossier cards through [AttachPortrait].
type Card struct {
	ID          string   `json:"id"                 yaml:"id"`
	Type        CardType `json:"type"               yaml:"-"`
	Title       string   `json:"title"              yaml:"title"`
	Description string   `json:"description"        yaml:"description"`
	Code        string   `json:"code"               yaml:"code"`
	ImageURL    string   `json:"imageUrl,omitempty" yaml:"-"`
}

// Dossier is the filing slot of one suspect. The slot shares its ID with the dossier card it owns.
type Dossier struct {
	ID            string `json:"id"`
	Card          Card   `json:"dossierCard"`
	AssignedCards []Card `json:"assignedCards"`
}
