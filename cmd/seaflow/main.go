// seaflow: tokenize text against a declarative rule table.
//
// Usage:
//
//	seaflow -rules table.yaml file.txt ...   Tokenize files, one token per line.
//	seaflow -rules table.yaml                Interactive REPL over stdin.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/davecgh/go-spew/spew"
	"github.com/peterh/liner"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/caydenlund/seaflow"
	"github.com/caydenlund/seaflow/ruleconf"
)

const (
	appName     = "seaflow"
	historyFile = ".seaflow_history"
	promptMain  = "==> "
)

var banner = "seaflow REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit."

const helpText = `
REPL commands:
  :quit    Exit the REPL
  :help    Show this help
`

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

func main() {
	rulesPath := flag.String("rules", "", "rule table file (YAML)")
	verbose := flag.Bool("v", false, "debug logging and full token dumps")
	flag.Usage = usage
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if *verbose {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	if *rulesPath == "" {
		usage()
		os.Exit(2)
	}

	f, err := ruleconf.LoadFile(*rulesPath)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read rule file")
	}
	rs, err := f.Ruleset()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot compile rule table")
	}
	log.Debug().
		Int("rules", len(f.Rules)).
		Int("skip", len(f.Skip)).
		Str("file", *rulesPath).
		Msg("rule table compiled")

	if flag.NArg() == 0 {
		os.Exit(runRepl(rs, *verbose))
	}

	exit := 0
	for _, path := range flag.Args() {
		if err := lexFile(rs, path, *verbose); err != nil {
			fmt.Fprintln(os.Stderr, red(err.Error()))
			exit = 1
		}
	}
	os.Exit(exit)
}

func usage() {
	fmt.Fprintf(os.Stderr, `Usage:
  %s -rules table.yaml [file ...]    Tokenize files (REPL when no files given)

Flags:
  -rules path    Rule table file (YAML); required
  -v             Debug logging and full token dumps
`, appName)
}

func lexFile(rs *seaflow.Ruleset[ruleconf.Token], path string, verbose bool) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("cannot read %s: %w", path, err)
	}
	tokens, err := seaflow.Lex(rs, string(src))
	if err != nil {
		return seaflow.WrapErrorWithName(err, path, string(src))
	}
	log.Debug().Str("file", path).Int("tokens", len(tokens)).Msg("lexed")
	printTokens(tokens, verbose, false)
	return nil
}

func printTokens(tokens []seaflow.TokenInfo[ruleconf.Token], verbose, color bool) {
	for _, tok := range tokens {
		if verbose {
			fmt.Print(spew.Sdump(tok))
			continue
		}
		line := tok.String()
		if color {
			line = blue(tok.Kind.String()) + " " + green(fmt.Sprintf("%q", tok.Text)) +
				fmt.Sprintf(" @%d..%d", tok.Start, tok.End)
		}
		fmt.Println(line)
	}
}

func runRepl(rs *seaflow.Ruleset[ruleconf.Token], verbose bool) int {
	fmt.Println(banner)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, os.Interrupt, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) {
			fmt.Println()
			return 0
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			continue
		}
		if err != nil {
			return 1
		}

		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			switch strings.ToLower(trimmed) {
			case ":quit":
				return 0
			case ":help":
				fmt.Print(helpText)
			default:
				fmt.Println("unknown command. Type :help for commands.")
			}
			continue
		}

		tokens, lerr := seaflow.Lex(rs, line)
		if lerr != nil {
			fmt.Fprintln(os.Stderr, red(seaflow.WrapErrorWithSource(lerr, line).Error()))
			ln.AppendHistory(line)
			continue
		}
		printTokens(tokens, verbose, true)
		ln.AppendHistory(line)
	}
}
