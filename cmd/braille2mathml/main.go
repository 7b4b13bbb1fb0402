package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/boynton/mathbraille"
	"github.com/boynton/mathbraille/internal/logging"
	cli "github.com/jawher/mow.cli"
)

var log = slog.New(slog.NewTextHandler(io.Discard, nil))

func main() {
	app := cli.App("braille2mathml", "Translate UEB technical braille mathematics to MathML")
	verbose := app.BoolOpt("v verbose", false, "log debug output to stderr")
	app.Before = func() {
		level := slog.LevelWarn
		if *verbose {
			level = slog.LevelDebug
		}
		log = logging.Init(false, level)
	}

	app.Command("translate", "translate braille arguments, or standard input", cmdTranslate)
	app.Command("doc", "translate the braille-math blocks of a Markdown file", cmdDoc)
	app.Command("repl", "translate interactively", cmdRepl)
	app.Command("serve", "run the HTTP translation service", cmdServe)

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newTranslator(configPath string) (*mathbraille.Translator, error) {
	opts := []mathbraille.Option{mathbraille.WithLogger(log)}
	if configPath != "" {
		conf, err := mathbraille.DataFromFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("cannot read config %s: %w", configPath, err)
		}
		opts = append(opts, mathbraille.WithConfig(conf))
	}
	return mathbraille.NewTranslator(opts...), nil
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "***", err)
	cli.Exit(1)
}
