package game

// Drag tracks a card being moved by the players. It is the input-agnostic half of drag and drop: a pointer, a
// keyboard or an HTML form all boil down to picking a card up and dropping it on a target.
//
// The zero value holds nothing.
type Drag struct {
	cardID string
}

// PickUp starts dragging cardID. Only revealed cards can be filed so anything else is refused.
func (d *Drag) PickUp(s State, cardID string) bool {
	if s.GameOver || indexOf(s.Revealed, cardID) < 0 {
		d.cardID = ""
		return false
	}
	d.cardID = cardID
	return true
}

// Holding returns the id of the card being dragged.
func (d *Drag) Holding() (string, bool) {
	return d.cardID, d.cardID != ""
}

// Cancel drops the card back where it came from.
func (d *Drag) Cancel() {
	d.cardID = ""
}

// Drop releases the dragged card over targetID. When the target is a dossier the resulting assignment is returned.
// The drag is over either way.
func (d *Drag) Drop(s State, targetID string) (AssignAction, bool) {
	cardID := d.cardID
	d.cardID = ""
	if cardID == "" || s.dossierIndex(targetID) < 0 {
		return AssignAction{}, false
	}
	return AssignAction{CardID: cardID, DossierID: targetID}, true
}
