package main

import (
	"bufio"
	"io"
	"os"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/npillmayer/pcfg/cyk"
	"github.com/npillmayer/pcfg/grammar"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
)

// tracing keys of all packages of this module
var traceKeys = []string{"pcfg.tree", "pcfg.grammar", "pcfg.cyk", "pcfg.eval", "pcfg.cli"}

var tlevel string

func pcfgCmd() *commander.Command {
	cmd := &commander.Command{
		UsageLine: "pcfg <command> [options]",
		Short:     "Viterbi CYK parsing with probabilistic context-free grammars",
		Subcommands: []*commander.Command{
			parseCmd(),
			binarizeCmd(),
			debinarizeCmd(),
			productionsCmd(),
			evalCmd(),
			replCmd(),
		},
		Flag: *flag.NewFlagSet("pcfg", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&tlevel, "trace", "Error", "Trace level [Debug|Info|Error]")
	return cmd
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	if err := pcfgCmd().Dispatch(os.Args[1:]); err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(1)
	}
}

// setup is called first thing by every sub-command, after flags are parsed.
func setup() {
	level := tracing.TraceLevelFromString(tlevel)
	for _, key := range traceKeys {
		tracing.Select(key).SetTraceLevel(level)
	}
	tracer().Infof("Trace level is %s", tlevel)
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// newParser loads a grammar and an optional vocabulary. Errors are fatal to
// the run of a command.
func newParser(grammarFile, vocabFile string, fixpoint bool) (*cyk.Parser, error) {
	if grammarFile == "" {
		return nil, errors.New("no grammar file given (flag -g)")
	}
	g, err := grammar.LoadFile(grammarFile)
	if err != nil {
		return nil, err
	}
	g.Dump() // only visible in debug mode
	var opts []cyk.Option
	if vocabFile != "" {
		v, err := grammar.LoadVocabularyFile(vocabFile)
		if err != nil {
			return nil, err
		}
		opts = append(opts, cyk.WithVocabulary(v))
	}
	if fixpoint {
		opts = append(opts, cyk.UnaryFixpoint(true))
	}
	return cyk.NewParser(g, opts...), nil
}

// eachLine calls f for every line of the files given as arguments, or of
// stdin if there are none. Line numbers start at 1 for each file.
func eachLine(args []string, f func(line string, lineno int)) error {
	if len(args) == 0 {
		return scanLines(os.Stdin, f)
	}
	for _, name := range args {
		file, err := os.Open(name)
		if err != nil {
			return errors.Wrap(err, "cannot open input")
		}
		err = scanLines(file, f)
		file.Close()
		if err != nil {
			return errors.Wrapf(err, "reading %s", name)
		}
	}
	return nil
}

func scanLines(r io.Reader, f func(line string, lineno int)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 16*1024*1024) // treebank lines may be long
	lineno := 0
	for scanner.Scan() {
		lineno++
		f(scanner.Text(), lineno)
	}
	return scanner.Err()
}
