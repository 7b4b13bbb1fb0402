package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/boynton/mathbraille"
	"github.com/boynton/mathbraille/document"
	"github.com/boynton/mathbraille/util"
	cli "github.com/jawher/mow.cli"
)

func cmdTranslate(cmd *cli.Cmd) {
	cmd.Spec = "[--json | --format] [--config] [INPUT...]"
	asJSON := cmd.BoolOpt("j json", false, "print the full result as JSON")
	format := cmd.StringOpt("f format", "mathml", "output format: mathml, json or ast")
	configPath := cmd.StringOpt("c config", "", "MathML generator configuration (JSON or YAML)")
	inputs := cmd.StringsArg("INPUT", nil, "braille expressions; standard input is read when none are given")

	cmd.Action = func() {
		t, err := newTranslator(*configPath)
		if err != nil {
			fatal(err)
		}
		if *asJSON {
			*format = "json"
		}
		sources := *inputs
		if len(sources) == 0 {
			raw, err := io.ReadAll(os.Stdin)
			if err != nil {
				fatal(err)
			}
			sources = []string{strings.TrimRight(string(raw), "\n")}
		}
		failures := 0
		for _, src := range sources {
			if !emit(t, src, *format) {
				failures++
			}
		}
		if failures > 0 {
			cli.Exit(2)
		}
	}
}

// emit prints one translation in the given format and reports whether it
// produced output.
func emit(t *mathbraille.Translator, src string, format string) bool {
	switch format {
	case "json":
		res := t.Translate(src)
		fmt.Println(util.Pretty(res))
		return res.HasOutput()
	case "ast":
		node, warnings, err := t.Parse(src)
		if err != nil {
			report("", src, err)
			return false
		}
		fmt.Println(util.Pretty(mathbraille.Dump(node)))
		printWarnings("", warnings)
		return true
	case "mathml":
		res := t.Translate(src)
		if res.Failed() {
			report("", src, res.Err())
			return false
		}
		fmt.Println(res.MathML)
		printWarnings("", res.Warnings)
		return true
	default:
		fatal(fmt.Errorf("unsupported format: %s", format))
		return false
	}
}

func report(filename string, src string, err error) {
	list, ok := err.(mathbraille.ErrorList)
	if !ok {
		fmt.Fprintln(os.Stderr, "***", err)
		return
	}
	for _, e := range list {
		fmt.Fprint(os.Stderr, mathbraille.Annotate(filename, src, e, util.RED))
		fmt.Fprintln(os.Stderr)
	}
}

func printWarnings(prefix string, warnings []mathbraille.Warning) {
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "%swarning: %v\n", prefix, w)
	}
}

func cmdDoc(cmd *cli.Cmd) {
	cmd.Spec = "[--json] [--config] FILE"
	asJSON := cmd.BoolOpt("j json", false, "print the translations as JSON")
	configPath := cmd.StringOpt("c config", "", "MathML generator configuration (JSON or YAML)")
	path := cmd.StringArg("FILE", "", "Markdown document")

	cmd.Action = func() {
		t, err := newTranslator(*configPath)
		if err != nil {
			fatal(err)
		}
		raw, err := os.ReadFile(*path)
		if err != nil {
			fatal(err)
		}
		translations := document.TranslateAll(t, raw)
		if *asJSON {
			fmt.Println(util.Pretty(translations))
			return
		}
		failures := 0
		for _, tr := range translations {
			where := fmt.Sprintf("%s:%d: ", *path, tr.Line)
			if tr.Result.Failed() {
				failures++
				for _, e := range tr.Result.Errors {
					fmt.Fprintf(os.Stderr, "%s%v\n", where, e)
				}
				continue
			}
			fmt.Printf("%s%s\n", where, tr.Result.MathML)
			printWarnings(where, tr.Result.Warnings)
		}
		log.Debug("document translated", "file", *path, "blocks", len(translations), "failures", failures)
		if failures > 0 {
			cli.Exit(2)
		}
	}
}
