package main

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Page    string `arg:"" help:"Name of the man page"`
	Section int    `arg:"" help:"Section number for the man page (1-9)"`

	Description bool     `short:"d" help:"Create a flashcard for a short description of the man page"`
	Option      []string `short:"o" help:"Create flashcards for command options (repeatable)"`
	Subcommand  bool     `short:"s" help:"Indicate that this is a man page for a subcommand such as git-commit"`
	Tags        []string `short:"t" help:"Extra tags merged into the configured defaults (repeatable)"`
	Config      string   `help:"Path to the configuration file" default:"config.json"`
	Verbose     bool     `short:"v" help:"Log note store calls"`
}
