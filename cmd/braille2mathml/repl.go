package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/boynton/mathbraille"
	cli "github.com/jawher/mow.cli"
	"github.com/peterh/liner"
)

const historyFile = ".braille2mathml_history"

const replHelp = `Enter braille cells to translate them. Commands:
  :ast     toggle printing the semantic tree instead of MathML
  :quit    exit`

func cmdRepl(cmd *cli.Cmd) {
	configPath := cmd.StringOpt("c config", "", "MathML generator configuration (JSON or YAML)")

	cmd.Action = func() {
		t, err := newTranslator(*configPath)
		if err != nil {
			fatal(err)
		}
		repl(t)
	}
}

func repl(t *mathbraille.Translator) {
	fmt.Println(replHelp)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	format := "mathml"
	for {
		line, err := ln.Prompt("⠿ ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Println()
			return
		}
		if err != nil {
			fmt.Fprintln(os.Stderr, "***", err)
			return
		}
		line = strings.TrimSpace(line)
		switch line {
		case "":
			continue
		case ":quit", ":q":
			return
		case ":ast":
			if format == "ast" {
				format = "mathml"
			} else {
				format = "ast"
			}
			fmt.Println("output:", format)
			continue
		}
		ln.AppendHistory(line)
		emit(t, line, format)
	}
}
