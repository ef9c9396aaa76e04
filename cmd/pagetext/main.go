package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagetext"
	"github.com/fwojciec/pagetext/fs"
	"github.com/fwojciec/pagetext/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		ReportError(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Extractor produces the extracted content. Defaults to the
	// trafilatura engine with recall favored; replaceable for tests.
	Extractor pagetext.Extractor
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		Extractor: trafilatura.NewExtractor(),
	}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagetext"),
		kong.Description("Extract the main content of a local HTML or text file"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if len(args) < 2 {
		return pagetext.Errorf(pagetext.EINVALID, "Usage: pagetext <file_path> <output_format>")
	}

	if _, err := parser.Parse(args); err != nil {
		return pagetext.Errorf(pagetext.EINVALID, "%v", err)
	}

	format, err := pagetext.ParseFormat(cli.Format)
	if err != nil {
		return err
	}

	content, err := fs.ReadFileContent(cli.File)
	if err != nil {
		return err
	}

	extracted, err := m.Extractor.Extract(content, format)
	if err != nil {
		return err
	}

	fmt.Fprintln(stdout, extracted)
	return nil
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	File   string `arg:"" help:"Path to the local document to extract"`
	Format string `arg:"" help:"Output format (html or txt)"`
}

// ReportError writes a single diagnostic line for err to w. Known error
// kinds (invalid argument, not found, I/O) report as errors; anything
// else, including extraction engine failures, reports as unexpected.
func ReportError(w io.Writer, err error) {
	switch pagetext.ErrorCode(err) {
	case pagetext.EINVALID, pagetext.ENOTFOUND, pagetext.EIO:
		fmt.Fprintf(w, "Error: %s\n", pagetext.ErrorMessage(err))
	default:
		fmt.Fprintf(w, "Unexpected error: %s\n", pagetext.ErrorMessage(err))
	}
}
