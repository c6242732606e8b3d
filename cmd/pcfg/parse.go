package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/npillmayer/pcfg"
	"github.com/npillmayer/pcfg/tree"
	"github.com/pterm/pterm"
)

var (
	grammarFile string
	vocabFile   string
	fixpoint    bool
	workers     int
	pretty      bool
)

func parseCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       parseSentences,
		UsageLine: "parse -g <grammar> [-v <vocabulary>] [options] [files]",
		Short:     "parse sentences, one per line",
		Long: `
Parse sentences with a probabilistic context-free grammar in binary form.

	$ pcfg parse -g grammar.pcfg -v vocab.txt < sentences.txt

Every input line holds a sentence of whitespace-separated tokens.
For every line either the most probable parse tree is printed,
or NONE if the grammar does not derive the sentence.
`,
		Flag: *flag.NewFlagSet("parse", flag.ExitOnError),
	}
	cmd.Flag.StringVar(&grammarFile, "g", "", "Grammar file (LHS -> RHS # PROB)")
	cmd.Flag.StringVar(&vocabFile, "v", "", "Training vocabulary, one word per line")
	cmd.Flag.BoolVar(&fixpoint, "fixpoint", false, "Iterate unary rules until no chart entry improves")
	cmd.Flag.IntVar(&workers, "workers", 0, "Number of concurrent parsers; 0 = all CPUs")
	cmd.Flag.BoolVar(&pretty, "pretty", false, "Print trees as indented outlines")
	return cmd
}

func parseSentences(cmd *commander.Command, args []string) error {
	setup()
	parser, err := newParser(grammarFile, vocabFile, fixpoint)
	if err != nil {
		return err
	}
	var sentences [][]string
	if err = eachLine(args, func(line string, _ int) {
		sentences = append(sentences, strings.Fields(line))
	}); err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	results, err := parser.ParseAll(ctx, sentences, workers)
	if err != nil {
		return err
	}
	found := 0
	for i, r := range results {
		if r.Err != nil {
			tracer().Errorf("sentence %d: %v", i+1, r.Err)
		}
		if !r.Found() {
			fmt.Println(pcfg.NoParse)
			continue
		}
		found++
		if pretty {
			renderTree(r.Tree)
		} else {
			fmt.Println(r.Tree.String())
		}
	}
	tracer().Infof("%d of %d sentences parsed", found, len(results))
	return nil
}

// renderTree prints a tree as an indented outline.
func renderTree(t *tree.Tree) {
	root := pterm.NewTreeFromLeveledList(leveledTree(t, pterm.LeveledList{}, 0))
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledTree(t *tree.Tree, ll pterm.LeveledList, level int) pterm.LeveledList {
	if t.IsLeaf() {
		return append(ll, pterm.LeveledListItem{
			Level: level,
			Text:  fmt.Sprintf("%s %s", t.Label(), t.Word()),
		})
	}
	ll = append(ll, pterm.LeveledListItem{
		Level: level,
		Text:  t.LabelSpan(),
	})
	for _, ch := range t.Children() {
		ll = leveledTree(ch, ll, level+1)
	}
	return ll
}
