// Package pandoc implements mananki.PageRenderer by shelling out to the
// system manual-page locator and the pandoc document converter.
package pandoc

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	mananki "github.com/maiatoja152/man-to-anki"
)

// Runner executes external commands. It exists so tests can script the
// locator and converter without spawning processes.
type Runner interface {
	// Output runs the command and returns its standard output.
	Output(ctx context.Context, name string, args ...string) ([]byte, error)

	// Run runs the command with the given standard input and output.
	Run(ctx context.Context, stdin io.Reader, stdout io.Writer, name string, args ...string) error
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

func (ExecRunner) Run(ctx context.Context, stdin io.Reader, stdout io.Writer, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// Ensure Renderer implements mananki.PageRenderer at compile time.
var _ mananki.PageRenderer = (*Renderer)(nil)

// Renderer converts manual pages to HTML and caches the result on disk.
type Renderer struct {
	dir    string
	runner Runner
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithRunner replaces the command runner. Defaults to ExecRunner.
func WithRunner(r Runner) Option {
	return func(rd *Renderer) {
		rd.runner = r
	}
}

// NewRenderer creates a Renderer that writes renderings into dir.
func NewRenderer(dir string, opts ...Option) *Renderer {
	r := &Renderer{
		dir:    dir,
		runner: ExecRunner{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render locates the manual source with man --path, decompresses it if
// needed, converts it to HTML with pandoc and writes the result to
// <dir>/_man-<section>-<name>.html, overwriting any prior rendering.
func (r *Renderer) Render(ctx context.Context, ref mananki.PageRef) (*mananki.RenderResult, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	out, err := r.runner.Output(ctx, "man", "--path", strconv.Itoa(ref.Section), ref.Name)
	if err != nil {
		return nil, mananki.Errorf(mananki.ENOTFOUND, "man page %s(%d) not found", ref.Name, ref.Section)
	}
	sourcePath := strings.TrimSpace(string(out))

	source, err := readManSource(sourcePath)
	if err != nil {
		return nil, mananki.Errorf(mananki.EINTERNAL, "failed to read man source %s: %v", sourcePath, err)
	}

	var html bytes.Buffer
	if err := r.runner.Run(ctx, bytes.NewReader(source), &html, "pandoc", "--from", "man", "--to", "html"); err != nil {
		return nil, mananki.Errorf(mananki.EINTERNAL, "pandoc conversion failed: %v", err)
	}
	if html.Len() == 0 {
		return nil, mananki.Errorf(mananki.EINTERNAL, "pandoc produced empty output for %s", sourcePath)
	}

	path, err := filepath.Abs(filepath.Join(r.dir, ref.CacheFileName()))
	if err != nil {
		return nil, mananki.Errorf(mananki.EINTERNAL, "failed to resolve cache path: %v", err)
	}

	changed := contentChanged(path, html.Bytes())

	if err := os.WriteFile(path, html.Bytes(), 0644); err != nil {
		return nil, mananki.Errorf(mananki.EINTERNAL, "failed to write %s: %v", path, err)
	}

	return &mananki.RenderResult{
		Path:     path,
		FileName: ref.CacheFileName(),
		Changed:  changed,
	}, nil
}

// readManSource reads the located manual source, gunzipping when the
// locator points at a compressed file.
func readManSource(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var reader io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return nil, err
		}
		defer gz.Close()
		reader = gz
	}

	return io.ReadAll(reader)
}

// contentChanged reports whether the new rendering differs from the cached
// file. A missing cache file counts as changed.
func contentChanged(path string, content []byte) bool {
	prev, err := os.ReadFile(path)
	if err != nil {
		return true
	}
	return xxhash.Sum64(prev) != xxhash.Sum64(content)
}
