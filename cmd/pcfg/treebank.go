package main

import (
	"fmt"
	"strings"

	"github.com/gonuts/commander"
	"github.com/gonuts/flag"
	"github.com/npillmayer/pcfg"
	"github.com/npillmayer/pcfg/tree"
)

var (
	clean    bool
	check    bool
	binarize bool
)

func binarizeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       binarizeTrees,
		UsageLine: "binarize [-clean] [-check] [files]",
		Short:     "binarize the trees of a treebank",
		Long: `
Binarize the trees of a treebank, one bracketed tree per line.

	$ pcfg binarize -clean < treebank.txt > binarized.txt

Nodes with more than two children are replaced by a cascade of binary nodes.
Labels of the nodes introduced carry a trailing "'". Input trees must not
use this marker themselves.
`,
		Flag: *flag.NewFlagSet("binarize", flag.ExitOnError),
	}
	cmd.Flag.BoolVar(&clean, "clean", false, "Strip functional tags and remove empty elements")
	cmd.Flag.BoolVar(&check, "check", false, "Verify that every tree may be restored by debinarize")
	return cmd
}

func debinarizeCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       debinarizeTrees,
		UsageLine: "debinarize [files]",
		Short:     "undo binarization of trees",
		Long: `
Remove the nodes introduced by binarization, one bracketed tree per line.

	$ pcfg parse -g grammar.pcfg < sentences.txt | pcfg debinarize
`,
		Flag: *flag.NewFlagSet("debinarize", flag.ExitOnError),
	}
	return cmd
}

func productionsCmd() *commander.Command {
	cmd := &commander.Command{
		Run:       listProductions,
		UsageLine: "productions [-clean] [-binarize] [files]",
		Short:     "list the productions of a treebank",
		Long: `
List the productions used in the trees of a treebank, one per line,
in the form LHS -> RHS.
`,
		Flag: *flag.NewFlagSet("productions", flag.ExitOnError),
	}
	cmd.Flag.BoolVar(&clean, "clean", false, "Strip functional tags and remove empty elements")
	cmd.Flag.BoolVar(&binarize, "binarize", false, "Binarize trees first")
	return cmd
}

// readTree parses a line of a treebank. Errors are reported, and the line
// should be skipped.
func readTree(line string, lineno int, opts ...tree.ParseOption) (*tree.Tree, bool) {
	if clean {
		opts = append(opts, tree.StripFunctionalTags())
	}
	t, err := tree.Parse(line, opts...)
	if err != nil {
		tracer().Errorf("line %d: %v", lineno, err)
		return nil, false
	}
	return t, true
}

func binarizeTrees(cmd *commander.Command, args []string) error {
	setup()
	return eachLine(args, func(line string, lineno int) {
		t, ok := readTree(line, lineno, tree.ForbidSyntheticLabels())
		if !ok {
			return
		}
		hash := t.Hash()
		t.Binarize()
		out := t.String()
		if check {
			checkRoundTrip(out, hash, lineno)
		}
		fmt.Println(out)
	})
}

// checkRoundTrip re-reads a binarized tree and compares its debinarized
// form to the hash of the input tree. Failures are reported with the line number.
func checkRoundTrip(out string, hash string, lineno int) bool {
	u, err := tree.Parse(out)
	if err != nil {
		tracer().Errorf("line %d: cannot re-read binarized tree: %v", lineno, err)
		return false
	}
	if u.Debinarize(); u.Hash() != hash {
		tracer().Errorf("line %d: tree does not survive binarization", lineno)
		return false
	}
	return true
}

func debinarizeTrees(cmd *commander.Command, args []string) error {
	setup()
	return eachLine(args, func(line string, lineno int) {
		if strings.TrimSpace(line) == pcfg.NoParse {
			fmt.Println(pcfg.NoParse)
			return
		}
		t, ok := readTree(line, lineno)
		if !ok {
			return
		}
		t.Debinarize()
		fmt.Println(t.String())
	})
}

func listProductions(cmd *commander.Command, args []string) error {
	setup()
	return eachLine(args, func(line string, lineno int) {
		t, ok := readTree(line, lineno)
		if !ok {
			return
		}
		if binarize {
			t.Binarize()
		}
		for _, p := range t.Productions() {
			fmt.Println(p.String())
		}
	})
}
