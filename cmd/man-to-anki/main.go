package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	mananki "github.com/maiatoja152/man-to-anki"
	"github.com/maiatoja152/man-to-anki/ankiconnect"
	"github.com/maiatoja152/man-to-anki/card"
	"github.com/maiatoja152/man-to-anki/goquery"
	"github.com/maiatoja152/man-to-anki/pandoc"
	"github.com/maiatoja152/man-to-anki/prompt"
	manslog "github.com/maiatoja152/man-to-anki/slog"
	"github.com/maiatoja152/man-to-anki/viper"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Preloaded configuration. When nil, Run loads the file named by the
	// --config flag.
	Config *mananki.Config

	// Services for end-to-end testing. When nil, Run wires the real
	// implementations.
	Renderer  mananki.PageRenderer
	Notes     mananki.NoteService
	Extractor mananki.Extractor
	Prompter  mananki.Prompter
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("man-to-anki"),
		kong.Description("Automatically create Anki flashcards for a given man page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	ref := mananki.PageRef{
		Section:    cli.Section,
		Name:       cli.Page,
		Subcommand: cli.Subcommand,
	}
	if err := ref.Validate(); err != nil {
		return fmt.Errorf("%s", mananki.ErrorMessage(err))
	}

	cfg, err := m.config(cli.Config)
	if err != nil {
		return fmt.Errorf("%s", mananki.ErrorMessage(err))
	}

	renderer := m.Renderer
	if renderer == nil {
		renderer = pandoc.NewRenderer(cfg.CollectionDir)
	}

	notes := m.Notes
	if notes == nil {
		notes = ankiconnect.NewClient(cfg.AnkiConnectURL)
	}
	if cli.Verbose {
		notes = manslog.NewLoggingNoteService(notes, slog.New(slog.NewTextHandler(stderr, nil)))
	}

	extractor := m.Extractor
	if extractor == nil {
		extractor = goquery.NewExtractor()
	}

	prompter := m.Prompter
	if prompter == nil {
		prompter = prompt.NewPrompter(stdin, stdout)
	}

	result, err := renderer.Render(ctx, ref)
	if err != nil {
		return fmt.Errorf("%s", mananki.ErrorMessage(err))
	}
	if result.Changed {
		fmt.Fprintf(stdout, "Created (or updated) an html file for %s(%d) at: %s\n", ref.Name, ref.Section, result.Path)
	} else {
		fmt.Fprintf(stdout, "Cached html file for %s(%d) unchanged at: %s\n", ref.Name, ref.Section, result.Path)
	}

	html, err := os.ReadFile(result.Path)
	if err != nil {
		return fmt.Errorf("failed to read rendering %s: %w", result.Path, err)
	}

	link := fmt.Sprintf("<a href=%q>%s(%d)</a>", result.FileName, ref.Command(), ref.Section)

	builder := &card.Builder{
		Extractor: extractor,
		Prompter:  prompter,
		Config:    cfg,
	}

	var ids []int64

	if cli.Description {
		note, err := builder.DescriptionNote(ref, string(html), link, cli.Tags)
		if err != nil {
			return fmt.Errorf("%s", mananki.ErrorMessage(err))
		}
		id, err := notes.AddNote(ctx, note)
		if err != nil {
			return fmt.Errorf("%s", mananki.ErrorMessage(err))
		}
		fmt.Fprintf(stdout, "Added one liner note (%d) for the man page: %s(%d)\n", id, ref.Command(), ref.Section)
		ids = append(ids, id)
	}

	for _, option := range cli.Option {
		flag := mananki.NormalizeFlag(option)
		note, err := builder.OptionNote(ref, string(html), flag, link, cli.Tags)
		if err != nil {
			return fmt.Errorf("%s", mananki.ErrorMessage(err))
		}
		id, err := notes.AddNote(ctx, note)
		if err != nil {
			return fmt.Errorf("%s", mananki.ErrorMessage(err))
		}
		fmt.Fprintf(stdout, "Added option description note (%d) for the man page: %s(%d)\n", id, ref.Command(), ref.Section)
		ids = append(ids, id)
	}

	if len(ids) > 0 {
		if _, err := notes.BrowseNotes(ctx, ids); err != nil {
			return fmt.Errorf("%s", mananki.ErrorMessage(err))
		}
	}

	return nil
}

// config returns the preloaded configuration or loads it from path.
func (m *Main) config(path string) (mananki.Config, error) {
	if m.Config != nil {
		return *m.Config, nil
	}
	return viper.Load(path)
}
