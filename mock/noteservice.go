// Package mock provides hand-written mocks for the mananki interfaces.
package mock

import (
	"context"

	mananki "github.com/maiatoja152/man-to-anki"
)

var _ mananki.NoteService = (*NoteService)(nil)

// NoteService is a mock implementation of mananki.NoteService.
type NoteService struct {
	AddNoteFn     func(ctx context.Context, note *mananki.Note) (int64, error)
	BrowseNotesFn func(ctx context.Context, ids []int64) ([]int64, error)
}

func (s *NoteService) AddNote(ctx context.Context, note *mananki.Note) (int64, error) {
	return s.AddNoteFn(ctx, note)
}

func (s *NoteService) BrowseNotes(ctx context.Context, ids []int64) ([]int64, error) {
	return s.BrowseNotesFn(ctx, ids)
}
