package main

import (
	"fmt"
	"strings"

	"github.com/chzyer/readline"
	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/npillmayer/pcfg"
	"github.com/npillmayer/pcfg/cyk"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pterm/pterm"
)

func replCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       startREPL,
		UsageLine: "repl -g <grammar> [-v <vocabulary>] [-fixpoint]",
		Short:     "parse sentences interactively",
		Long: `
Start an interactive session for parsing sentences.

Every line entered is parsed as a sentence and the most probable parse tree
is displayed. Lines starting with ':' are commands:

	:chart     toggle tracing of charts
	:quit      end the session

Quit with <ctrl>D.
`,
		Flag: *flag.NewFlagSet("repl", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&grammarFile, "g", "", "Grammar file (LHS -> RHS # PROB)")
	cmd.Flag.StringVar(&vocabFile, "v", "", "Training vocabulary, one word per line")
	cmd.Flag.BoolVar(&fixpoint, "fixpoint", false, "Iterate unary rules until no chart entry improves")
	return cmd
}

// Intp is our interpreter object
type Intp struct {
	parser *cyk.Parser
	repl   *readline.Instance
	chart  bool
}

func startREPL(cmd *commander.Command, args []string) error {
	setup()
	parser, err := newParser(grammarFile, vocabFile, fixpoint)
	if err != nil {
		return err
	}
	repl, err := readline.New("pcfg> ")
	if err != nil {
		return err
	}
	defer repl.Close()
	pterm.Info.Printf("Grammar %s with %d rules\n", parser.Grammar().Name, parser.Grammar().Size())
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	intp := &Intp{parser: parser, repl: repl}
	intp.REPL()
	return nil
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.Eval(line); quit {
			break
		}
	}
	println("Good bye!")
}

// Eval parses a sentence, given on a line by itself, or executes a command.
func (intp *Intp) Eval(line string) bool {
	switch line {
	case ":quit", ":q":
		return true
	case ":chart":
		intp.chart = !intp.chart
		pterm.Info.Printf("chart tracing is %v\n", intp.chart)
		return false
	}
	tokens := strings.Fields(line)
	if intp.chart {
		level := tracing.Select("pcfg.cyk").GetTraceLevel()
		tracing.Select("pcfg.cyk").SetTraceLevel(tracing.LevelDebug)
		intp.parser.BuildChart(tokens).Dump()
		tracing.Select("pcfg.cyk").SetTraceLevel(level)
	}
	result, err := intp.parser.Parse(tokens)
	if err != nil {
		pterm.Error.Println(err.Error())
		return false
	}
	if !result.Found() {
		pterm.Error.Println(pcfg.NoParse)
		return false
	}
	pterm.Info.Println(fmt.Sprintf("p = %g", result.Prob))
	pterm.Println(result.Tree.String())
	renderTree(result.Tree)
	return false
}
