package mananki

import "context"

// Note represents one flashcard to be created in the note store. The note
// store is the system of record; no local copy is retained after creation.
type Note struct {
	// Deck is the target deck name.
	Deck string

	// Front and Back are the two sides of the card. Both must be non-empty;
	// extraction blocks on interactive input rather than producing a note
	// with missing content.
	Front string
	Back  string

	// Hint is supplementary text shown with the front of the card.
	Hint string

	// Links holds an anchor tag pointing at the cached HTML rendering the
	// card was extracted from.
	Links string

	// Tags are attached to the note for filtering in the note store.
	Tags []string
}

// Validate returns an error if the note contains invalid fields.
func (n *Note) Validate() error {
	if n.Deck == "" {
		return Errorf(EINVALID, "note deck required")
	}
	if n.Front == "" {
		return Errorf(EINVALID, "note front required")
	}
	if n.Back == "" {
		return Errorf(EINVALID, "note back required")
	}
	return nil
}

// NoteService creates and surfaces notes in the external note store.
type NoteService interface {
	// AddNote creates a note and returns its store-assigned identifier.
	// Returns EUNAVAILABLE if the store cannot be reached and EINTERNAL if
	// the store rejects the note or replies with a malformed response.
	AddNote(ctx context.Context, note *Note) (int64, error)

	// BrowseNotes opens the store's browser on exactly the given notes so
	// the operator can visually confirm them. Returns the identifiers the
	// browser displays.
	BrowseNotes(ctx context.Context, ids []int64) ([]int64, error)
}
