package vbe

import "github.com/pkg/errors"

// Eliminate runs dense variable elimination over factors in order
// (order[0] eliminated first), the `-vbe` execution path (§6.1). Unlike
// bucket.CompileBucketTree it needs no pseudo-tree: a table's
// replacement is simply re-scanned into whichever remaining factors
// still mention the eliminated variable. Prob is the returned scalar —
// the fully eliminated factor's single entry.
func Eliminate(factors []*TableFunction, order []int, maximize bool) (float64, error) {
	live := append([]*TableFunction(nil), factors...)

	for _, v := range order {
		var mentioning, rest []*TableFunction
		for _, f := range live {
			if f.Domain().Contains(v) {
				mentioning = append(mentioning, f)
			} else {
				rest = append(rest, f)
			}
		}
		if len(mentioning) == 0 {
			continue
		}
		combined := mentioning[0]
		for _, f := range mentioning[1:] {
			var err error
			combined, err = combined.Multiply(f)
			if err != nil {
				return 0, errors.Wrapf(err, "Eliminate: combining bucket %d", v)
			}
		}
		var summed *TableFunction
		var err error
		if maximize {
			summed, err = combined.Maximize([]int{v})
		} else {
			summed, err = combined.Marginalize([]int{v})
		}
		if err != nil {
			return 0, errors.Wrapf(err, "Eliminate: eliminating %d", v)
		}
		live = append(rest, summed)
	}

	result := 1.0
	for _, f := range live {
		if f.Domain().Len() != 0 {
			return 0, errors.New("Eliminate: variables remain after eliminating the full ordering")
		}
		result *= f.values[0]
	}
	return result, nil
}
