// Package slog provides logging decorators for the mananki interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	mananki "github.com/maiatoja152/man-to-anki"
)

// Ensure LoggingNoteService implements mananki.NoteService.
var _ mananki.NoteService = (*LoggingNoteService)(nil)

// LoggingNoteService wraps a NoteService with debug logging.
type LoggingNoteService struct {
	next   mananki.NoteService
	logger *slog.Logger
}

// NewLoggingNoteService creates a new LoggingNoteService.
func NewLoggingNoteService(next mananki.NoteService, logger *slog.Logger) *LoggingNoteService {
	return &LoggingNoteService{next: next, logger: logger}
}

// AddNote delegates to the wrapped service and logs the operation.
func (s *LoggingNoteService) AddNote(ctx context.Context, note *mananki.Note) (id int64, err error) {
	defer func(begin time.Time) {
		s.logger.Info("add note",
			"deck", note.Deck,
			"back", note.Back,
			"id", id,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.AddNote(ctx, note)
}

// BrowseNotes delegates to the wrapped service and logs the operation.
func (s *LoggingNoteService) BrowseNotes(ctx context.Context, ids []int64) (shown []int64, err error) {
	defer func(begin time.Time) {
		s.logger.Info("browse notes",
			"count", len(ids),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.BrowseNotes(ctx, ids)
}
