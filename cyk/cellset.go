package cyk

// cell addresses a chart entry.
type cell struct {
	begin, end, label int
}

// cellset holds the cells visited along a chain of unary derivations.
type cellset map[cell]struct{}

var exists = struct{}{}

func (set cellset) add(c cell) cellset {
	if set == nil {
		set = cellset{}
	}
	set[c] = exists
	return set
}

func (set cellset) contains(c cell) bool {
	if set == nil {
		return false
	}
	_, ok := set[c]
	return ok
}
