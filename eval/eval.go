package eval

import (
	"fmt"

	"github.com/npillmayer/pcfg/tree"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Score counts brackets of gold trees, of test trees, and brackets present
// in both.
type Score struct {
	Matched int
	Gold    int
	Test    int
}

// Precision is the fraction of test brackets which are correct.
func (s Score) Precision() float64 {
	if s.Test == 0 {
		return 0
	}
	return float64(s.Matched) / float64(s.Test)
}

// Recall is the fraction of gold brackets which have been found.
func (s Score) Recall() float64 {
	if s.Gold == 0 {
		return 0
	}
	return float64(s.Matched) / float64(s.Gold)
}

// F1 is the harmonic mean of precision and recall.
func (s Score) F1() float64 {
	p, r := s.Precision(), s.Recall()
	if p+r == 0 {
		return 0
	}
	return 2 * p * r / (p + r)
}

// Add returns the sum of two scores.
func (s Score) Add(other Score) Score {
	return Score{
		Matched: s.Matched + other.Matched,
		Gold:    s.Gold + other.Gold,
		Test:    s.Test + other.Test,
	}
}

func (s Score) String() string {
	return fmt.Sprintf("P=%.4f R=%.4f F1=%.4f (%d/%d/%d)",
		s.Precision(), s.Recall(), s.F1(), s.Matched, s.Gold, s.Test)
}

// Compare scores a test tree against a gold tree. A test tree of nil
// stands for a sentence which could not be parsed; only gold brackets are
// counted then.
func Compare(gold, test *tree.Tree) Score {
	return compare(gold.LabelSpanCounts(), counts(test))
}

func counts(t *tree.Tree) map[tree.LabeledSpan]int {
	if t == nil {
		return nil
	}
	return t.LabelSpanCounts()
}

func compare(gold, test map[tree.LabeledSpan]int) Score {
	var s Score
	for ls, n := range gold {
		s.Gold += n
		if m := test[ls]; m < n {
			s.Matched += m
		} else {
			s.Matched += n
		}
	}
	for _, n := range test {
		s.Test += n
	}
	return s
}

// byLabel groups bracket counts by label.
func byLabel(c map[tree.LabeledSpan]int) map[string]map[tree.LabeledSpan]int {
	grouped := make(map[string]map[tree.LabeledSpan]int)
	for ls, n := range c {
		if grouped[ls.Label] == nil {
			grouped[ls.Label] = make(map[tree.LabeledSpan]int)
		}
		grouped[ls.Label][ls] = n
	}
	return grouped
}

// --- Evaluator -------------------------------------------------------------

// Evaluator accumulates scores over a corpus, in total and per label.
type Evaluator struct {
	total     Score
	labels    map[string]Score
	sentences int
	parsed    int
}

// NewEvaluator creates an evaluator without any scores.
func NewEvaluator() *Evaluator {
	return &Evaluator{labels: make(map[string]Score)}
}

// Add scores a test tree against a gold tree and adds the result to the
// running totals. test may be nil for sentences without a parse.
func (ev *Evaluator) Add(gold, test *tree.Tree) Score {
	goldCounts, testCounts := gold.LabelSpanCounts(), counts(test)
	s := compare(goldCounts, testCounts)
	ev.total = ev.total.Add(s)
	ev.sentences++
	if test != nil {
		ev.parsed++
	}
	g, t := byLabel(goldCounts), byLabel(testCounts)
	for label := range g {
		ev.labels[label] = ev.labels[label].Add(compare(g[label], t[label]))
	}
	for label := range t {
		if _, ok := g[label]; !ok {
			ev.labels[label] = ev.labels[label].Add(compare(nil, t[label]))
		}
	}
	tracer().Debugf("sentence #%d: %s", ev.sentences, s)
	return s
}

// Total returns the accumulated score over all sentences.
func (ev *Evaluator) Total() Score {
	return ev.total
}

// Sentences returns the number of sentences evaluated and the number of
// them which had a parse.
func (ev *Evaluator) Sentences() (int, int) {
	return ev.sentences, ev.parsed
}

// Labels returns all labels seen in gold or test trees, sorted.
func (ev *Evaluator) Labels() []string {
	labels := maps.Keys(ev.labels)
	slices.Sort(labels)
	return labels
}

// Label returns the accumulated score for brackets of a label.
func (ev *Evaluator) Label(label string) Score {
	return ev.labels[label]
}
