package grammar

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// ErrGrammarLine is flagged for lines of a grammar file which do not encode a rule.
var ErrGrammarLine = errors.New("malformed grammar line")

// ParseRule reads a rule in the encoding of grammar files:
//
//     LHS -> RHS # PROBABILITY
//
// The probability follows the last '#', the left-hand side precedes the first
// "->". This way '#' may be used as a symbol, as is customary for treebank
// part-of-speech tags.
func ParseRule(line string) (Rule, error) {
	hash := strings.LastIndex(line, "#")
	if hash < 0 {
		return Rule{}, errors.Wrap(ErrGrammarLine, "missing '#'")
	}
	arrow := strings.Index(line[:hash], "->")
	if arrow < 0 {
		return Rule{}, errors.Wrap(ErrGrammarLine, "missing '->'")
	}
	lhs := strings.TrimSpace(line[:arrow])
	rhs := strings.Fields(line[arrow+2 : hash])
	if lhs == "" || strings.ContainsAny(lhs, " \t") {
		return Rule{}, errors.Wrapf(ErrGrammarLine, "bad left-hand side %q", lhs)
	}
	if len(rhs) < 1 || len(rhs) > 2 {
		return Rule{}, errors.Wrapf(ErrGrammarLine, "%d right-hand side symbols", len(rhs))
	}
	prob, err := strconv.ParseFloat(strings.TrimSpace(line[hash+1:]), 64)
	if err != nil {
		return Rule{}, errors.Wrapf(ErrGrammarLine, "bad probability: %v", err)
	}
	return Rule{LHS: lhs, RHS: rhs, Prob: prob}, nil
}

// Load reads a grammar from r, one rule per line. Empty lines and lines
// starting with ';' are skipped.
func Load(r io.Reader, name string) (*Grammar, error) {
	b := NewBuilder(name)
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, ";") {
			continue
		}
		rule, err := ParseRule(line)
		if err != nil {
			return nil, errors.Wrapf(err, "%s:%d", name, lineno)
		}
		if err = b.Add(rule.LHS, rule.RHS, rule.Prob); err != nil {
			return nil, errors.Wrapf(err, "%s:%d", name, lineno)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "reading grammar %s", name)
	}
	return b.Grammar()
}

// LoadFile reads a grammar from a file. The grammar is named after the file.
func LoadFile(path string) (*Grammar, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "cannot open grammar")
	}
	defer f.Close()
	return Load(f, path)
}
