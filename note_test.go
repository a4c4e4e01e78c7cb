package mananki_test

import (
	"testing"

	mananki "github.com/maiatoja152/man-to-anki"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete note", func(t *testing.T) {
		t.Parallel()

		note := &mananki.Note{Deck: "Linux", Front: "List directory contents", Back: "ls"}

		assert.NoError(t, note.Validate())
	})

	t.Run("requires a non-empty front", func(t *testing.T) {
		t.Parallel()

		note := &mananki.Note{Deck: "Linux", Back: "ls"}

		err := note.Validate()

		require.Error(t, err)
		assert.Equal(t, mananki.EINVALID, mananki.ErrorCode(err))
	})

	t.Run("requires a non-empty back", func(t *testing.T) {
		t.Parallel()

		note := &mananki.Note{Deck: "Linux", Front: "List directory contents"}

		assert.Equal(t, mananki.EINVALID, mananki.ErrorCode(note.Validate()))
	})

	t.Run("requires a deck", func(t *testing.T) {
		t.Parallel()

		note := &mananki.Note{Front: "List directory contents", Back: "ls"}

		assert.Equal(t, mananki.EINVALID, mananki.ErrorCode(note.Validate()))
	})
}
