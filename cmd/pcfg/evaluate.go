package main

import (
	"fmt"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/npillmayer/pcfg"
	"github.com/npillmayer/pcfg/eval"
	"github.com/npillmayer/pcfg/tree"
	"github.com/pkg/errors"
	"github.com/pterm/pterm"
)

var (
	goldFile string
	testFile string
)

func evalCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       evaluate,
		UsageLine: "eval -gold <treebank> -test <parses>",
		Short:     "score parse trees against gold trees",
		Long: `
Score parse trees against gold trees by counting matching labeled brackets.

	$ pcfg eval -gold dev.trees -test dev.parses

Both files hold one tree per line, line by line corresponding to each other.
Test lines reading NONE count as sentences without a parse.
`,
		Flag: *flag.NewFlagSet("eval", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&goldFile, "gold", "", "Gold standard trees")
	cmd.Flag.StringVar(&testFile, "test", "", "Parse trees to evaluate")
	return cmd
}

func evaluate(cmd *commander.Command, args []string) error {
	setup()
	if goldFile == "" || testFile == "" {
		return errors.New("flags -gold and -test are required")
	}
	var gold, test []string
	if err := eachLine([]string{goldFile}, func(line string, _ int) { gold = append(gold, line) }); err != nil {
		return err
	}
	if err := eachLine([]string{testFile}, func(line string, _ int) { test = append(test, line) }); err != nil {
		return err
	}
	if len(gold) != len(test) {
		return errors.Errorf("gold has %d lines, test has %d", len(gold), len(test))
	}
	ev := eval.NewEvaluator()
	for i := range gold {
		g, err := tree.Parse(gold[i], tree.StripFunctionalTags())
		if err != nil {
			tracer().Errorf("gold line %d: %v", i+1, err)
			continue
		}
		var t *tree.Tree
		if strings.TrimSpace(test[i]) != pcfg.NoParse {
			if t, err = tree.Parse(test[i]); err != nil {
				tracer().Errorf("test line %d: %v", i+1, err)
				continue
			}
		}
		ev.Add(g, t)
	}
	return report(ev)
}

func report(ev *eval.Evaluator) error {
	data := pterm.TableData{{"Label", "Gold", "Test", "Matched", "Precision", "Recall", "F1"}}
	row := func(label string, s eval.Score) []string {
		return []string{label,
			fmt.Sprint(s.Gold), fmt.Sprint(s.Test), fmt.Sprint(s.Matched),
			fmt.Sprintf("%.4f", s.Precision()), fmt.Sprintf("%.4f", s.Recall()), fmt.Sprintf("%.4f", s.F1()),
		}
	}
	for _, label := range ev.Labels() {
		data = append(data, row(label, ev.Label(label)))
	}
	data = append(data, row("all", ev.Total()))
	if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
		return err
	}
	all, parsed := ev.Sentences()
	pterm.Info.Printf("%d sentences, %d parsed\n", all, parsed)
	pterm.Info.Println(ev.Total().String())
	return nil
}
