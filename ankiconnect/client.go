// Package ankiconnect implements mananki.NoteService over the AnkiConnect
// JSON/HTTP API exposed by the Anki desktop application.
package ankiconnect

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	mananki "github.com/maiatoja152/man-to-anki"
)

// Version is the AnkiConnect protocol version carried by every request.
const Version = 6

// modelName is the note template used for every card. Basic is Anki's
// built-in two-sided template.
const modelName = "Basic"

// DefaultTimeout is the default timeout for requests to the local endpoint.
const DefaultTimeout = 10 * time.Second

// Ensure Client implements mananki.NoteService at compile time.
var _ mananki.NoteService = (*Client)(nil)

// Client talks to a local AnkiConnect endpoint.
type Client struct {
	url     string
	client  *http.Client
	timeout time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the timeout for requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// NewClient creates a Client for the given endpoint URL.
func NewClient(url string, opts ...Option) *Client {
	c := &Client{
		url:     url,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	c.client = &http.Client{
		Timeout: c.timeout,
	}

	return c
}

// request is the fixed AnkiConnect request envelope.
type request struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params"`
}

// AddNote creates a note and returns its store-assigned identifier.
func (c *Client) AddNote(ctx context.Context, note *mananki.Note) (int64, error) {
	if err := note.Validate(); err != nil {
		return 0, err
	}

	result, err := c.invoke(ctx, "addNote", map[string]any{
		"note": map[string]any{
			"deckName":  note.Deck,
			"modelName": modelName,
			"fields": map[string]string{
				"Front": note.Front,
				"Back":  note.Back,
				"Hint":  note.Hint,
				"Links": note.Links,
			},
			"tags": note.Tags,
		},
	})
	if err != nil {
		return 0, err
	}

	var id int64
	if err := json.Unmarshal(result, &id); err != nil {
		return 0, mananki.Errorf(mananki.EINTERNAL, "addNote result is not a note id: %v", err)
	}
	return id, nil
}

// BrowseNotes opens the Anki browser on exactly the given notes.
func (c *Client) BrowseNotes(ctx context.Context, ids []int64) ([]int64, error) {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = fmt.Sprintf("%d", id)
	}

	result, err := c.invoke(ctx, "guiBrowse", map[string]any{
		"query": "nid:" + strings.Join(parts, ","),
	})
	if err != nil {
		return nil, err
	}

	var shown []int64
	if err := json.Unmarshal(result, &shown); err != nil {
		return nil, mananki.Errorf(mananki.EINTERNAL, "guiBrowse result is not a list of note ids: %v", err)
	}
	return shown, nil
}

// invoke sends one request and validates the response envelope. AnkiConnect
// responses must contain exactly an error field and a result field; anything
// else is treated as a protocol violation rather than silently accepted.
func (c *Client) invoke(ctx context.Context, action string, params any) (json.RawMessage, error) {
	body, err := json.Marshal(request{Action: action, Version: Version, Params: params})
	if err != nil {
		return nil, mananki.Errorf(mananki.EINTERNAL, "failed to encode %s request: %v", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return nil, mananki.Errorf(mananki.EINTERNAL, "failed to build %s request: %v", action, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, mananki.Errorf(mananki.EUNAVAILABLE, "AnkiConnect unreachable at %s: %v", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, mananki.Errorf(mananki.EUNAVAILABLE, "AnkiConnect returned HTTP %d for %s", resp.StatusCode, action)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, mananki.Errorf(mananki.EUNAVAILABLE, "failed to read %s response: %v", action, err)
	}

	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, mananki.Errorf(mananki.EINTERNAL, "malformed %s response: %v", action, err)
	}
	if len(fields) != 2 {
		return nil, mananki.Errorf(mananki.EINTERNAL, "response has an unexpected number of fields: %d", len(fields))
	}
	errField, ok := fields["error"]
	if !ok {
		return nil, mananki.Errorf(mananki.EINTERNAL, "response is missing required error field")
	}
	result, ok := fields["result"]
	if !ok {
		return nil, mananki.Errorf(mananki.EINTERNAL, "response is missing required result field")
	}

	var storeErr *string
	if err := json.Unmarshal(errField, &storeErr); err != nil {
		return nil, mananki.Errorf(mananki.EINTERNAL, "malformed error field in %s response: %v", action, err)
	}
	if storeErr != nil {
		return nil, mananki.Errorf(mananki.EINTERNAL, "%s", *storeErr)
	}

	return result, nil
}
