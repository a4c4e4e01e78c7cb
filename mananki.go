// Package mananki turns Unix manual pages into Anki flashcards. It shells
// out to the system manual-page locator and pandoc to produce an HTML
// rendering, extracts a one-line description and per-option entries from it,
// and creates notes through the local AnkiConnect API.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, pandoc/, ankiconnect/).
package mananki
