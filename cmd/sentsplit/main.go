// Command sentsplit splits vertical token streams into sentences.
package main

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/antchfx/xmlquery"

	sentsplit "github.com/jamesainslie/go-sentsplit"
	"github.com/jamesainslie/go-sentsplit/internal/batch"
	"github.com/jamesainslie/go-sentsplit/internal/config"
	"github.com/jamesainslie/go-sentsplit/internal/vertical"
	"github.com/jamesainslie/go-sentsplit/internal/wire"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// CLI defines the command-line interface using Kong
var CLI struct {
	Config      string   `name:"config" short:"c" help:"YAML config file" type:"path"`
	Language    string   `name:"language" short:"l" help:"Language rules: de, de_CMC, en, ..."`
	XML         bool     `name:"xml" short:"x" help:"Insert sentence tags and repair markup"`
	EOSTags     []string `name:"eos-tag" short:"e" help:"Element that always ends a sentence (repeatable, implies --xml)"`
	SentenceTag string   `name:"sentence-tag" help:"Name of the inserted sentence element"`
	Format      string   `name:"format" short:"f" help:"Output format: vertical, text or binary"`
	Output      string   `name:"output" short:"o" help:"Output file (default: stdout)" type:"path"`
	Jobs        int      `name:"jobs" short:"j" help:"Files split in parallel (default: number of CPUs)"`
	Verify      bool     `name:"verify" help:"Parse the XML output and check the sentence count"`
	Verbose     bool     `name:"verbose" short:"v" help:"Log boundary decisions to stderr"`
	Version     bool     `name:"version" help:"Print version information"`

	Inputs []string `arg:"" optional:"" help:"Vertical input files (default: stdin)" type:"path"`
}

func main() {
	kctx := kong.Parse(&CLI,
		kong.Name("sentsplit"),
		kong.Description("Rule-based sentence splitter for tokenized text with inline markup"),
		kong.UsageOnError(),
	)

	if CLI.Version {
		fmt.Printf("sentsplit %s (%s, %s)\n", version, commit, date)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kctx.FatalIfErrorf(run(ctx))
}

func run(ctx context.Context) error {
	level := slog.LevelInfo
	if CLI.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if CLI.Verify && !cfg.XML {
		return errors.New("--verify requires --xml")
	}

	opts, err := cfg.Options()
	if err != nil {
		return err
	}

	jobs, err := readInputs(CLI.Inputs)
	if err != nil {
		return err
	}

	size := CLI.Jobs
	if size <= 0 {
		size = runtime.GOMAXPROCS(0)
	}
	size = min(size, len(jobs))
	pool, err := batch.NewPool(size, append(opts, sentsplit.WithLogger(logger))...)
	if err != nil {
		return err
	}
	defer pool.Close()

	results, err := batch.Split(ctx, pool, jobs, batch.Mode{XML: cfg.XML, EOSTags: cfg.EOSTags})
	if err != nil {
		return fmt.Errorf("split: %w", err)
	}

	var (
		all  [][]sentsplit.Token
		errs []error
	)
	for i, sentences := range results {
		logger.Debug("split complete", "input", jobs[i].Name, "tokens", len(jobs[i].Tokens), "sentences", len(sentences))
		if CLI.Verify {
			n, err := verify(sentences, cfg.SentenceTag)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", jobs[i].Name, err))
				continue
			}
			logger.Info("output verified", "input", jobs[i].Name, "sentences", n)
		}
		all = append(all, sentences...)
	}
	if err := errors.Join(errs...); err != nil {
		return err
	}

	return writeOutput(CLI.Output, cfg.Format, all)
}

// loadConfig merges the config file, if any, with command line flags.
func loadConfig() (config.Config, error) {
	cfg := config.Default()
	if CLI.Config != "" {
		var err error
		if cfg, err = config.Load(CLI.Config); err != nil {
			return config.Config{}, err
		}
	}

	if CLI.Language != "" {
		cfg.Language = CLI.Language
	}
	if len(CLI.EOSTags) > 0 {
		cfg.EOSTags = CLI.EOSTags
		cfg.XML = true
	}
	if CLI.XML {
		cfg.XML = true
	}
	if CLI.SentenceTag != "" {
		cfg.SentenceTag = CLI.SentenceTag
	}
	if CLI.Format != "" {
		cfg.Format = CLI.Format
	}

	return cfg, cfg.Validate()
}

func readInputs(paths []string) ([]batch.Job, error) {
	if len(paths) == 0 {
		paths = []string{"-"}
	}
	jobs := make([]batch.Job, 0, len(paths))
	for _, path := range paths {
		tokens, err := readInput(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		jobs = append(jobs, batch.Job{Name: path, Tokens: tokens})
	}
	return jobs, nil
}

func readInput(path string) ([]sentsplit.Token, error) {
	if path == "-" {
		return vertical.Read(os.Stdin)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	defer func() { _ = f.Close() }()

	return vertical.Read(f)
}

func writeOutput(path, format string, sentences [][]sentsplit.Token) (err error) {
	var w io.Writer = os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer func() {
			if cerr := f.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		w = f
	}

	switch format {
	case config.FormatText:
		_, err = io.WriteString(w, vertical.Render(sentences))
	case config.FormatBinary:
		_, err = w.Write(wire.Marshal(sentences))
	default:
		err = vertical.Write(w, sentences)
	}
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// verify parses the tagged sentences as one XML document and checks that
// every sentence produced exactly one sentence element.
func verify(sentences [][]sentsplit.Token, tag string) (int, error) {
	var b strings.Builder
	b.WriteString("<doc>")
	for _, sent := range sentences {
		for _, tok := range sent {
			if tok.Markup {
				b.WriteString(tok.Text)
			} else {
				_ = xml.EscapeText(&b, []byte(tok.Text))
			}
			b.WriteByte(' ')
		}
	}
	b.WriteString("</doc>")

	doc, err := xmlquery.Parse(strings.NewReader(b.String()))
	if err != nil {
		return 0, fmt.Errorf("verify: output is not well-formed: %w", err)
	}

	want := 0
	for _, sent := range sentences {
		for _, tok := range sent {
			if !tok.Markup {
				want++
				break
			}
		}
	}
	nodes, err := xmlquery.QueryAll(doc, "//"+tag)
	if err != nil {
		return 0, fmt.Errorf("verify: sentence tag %q: %w", tag, err)
	}
	got := len(nodes)
	if got != want {
		return got, fmt.Errorf("verify: found %d <%s> elements, want %d", got, tag, want)
	}
	return got, nil
}
