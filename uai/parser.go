package uai

import (
	"bufio"
	"io"
	"os"
	"strconv"

	pkgerrors "github.com/pkg/errors"

	"github.com/dechterlab/aomdd/scope"
)

// Factor is one row of the factor file: the variable ids in the file's
// own declared order (least-significant first, §6.2) plus its
// row-major table under that same order.
type Factor struct {
	Vars   []int
	Values []float64
}

// Model is a parsed UAI factor file: N variables (ids 0..N-1,
// cardinalities by position) and F factors.
type Model struct {
	Cardinalities []int
	Factors       []Factor
}

// ScopeForDD returns f's scope with variable order reversed from the
// file's declaration, matching dd.Store.CreateMetaNodeFromTable's
// convention that the first variable in a scope is the table's
// most-significant (outermost) dimension — the opposite of the UAI
// file's own least-significant-first declaration order. f.Values is
// reused unchanged: only the label ordering differs.
func (m *Model) ScopeForDD(f Factor) (*scope.Scope, error) {
	vars := make([]scope.Var, len(f.Vars))
	for i, v := range f.Vars {
		vars[len(f.Vars)-1-i] = scope.Var{ID: v, Card: m.Cardinalities[v]}
	}
	sc, err := scope.NewScope(vars...)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "uai: building dd scope for factor")
	}
	return sc, nil
}

// ScopeForVBE returns f's scope in the file's own declared order,
// matching scope.Assignment.GetIndexOrder's least-significant-first
// convention directly — the same convention §6.2 uses for the
// on-disk table.
func (m *Model) ScopeForVBE(f Factor) (*scope.Scope, error) {
	vars := make([]scope.Var, len(f.Vars))
	for i, v := range f.Vars {
		vars[i] = scope.Var{ID: v, Card: m.Cardinalities[v]}
	}
	sc, err := scope.NewScope(vars...)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "uai: building vbe scope for factor")
	}
	return sc, nil
}

// tokenizer reads whitespace/newline-separated tokens from r, matching
// the UAI format's tolerance for arbitrary line breaks between fields.
type tokenizer struct {
	sc  *bufio.Scanner
	err error
}

func newTokenizer(r io.Reader) *tokenizer {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)
	return &tokenizer{sc: sc}
}

func (t *tokenizer) next() (string, bool) {
	if t.err != nil {
		return "", false
	}
	if !t.sc.Scan() {
		t.err = t.sc.Err()
		return "", false
	}
	return t.sc.Text(), true
}

func (t *tokenizer) nextInt() (int, error) {
	tok, ok := t.next()
	if !ok {
		return 0, pkgerrors.Wrap(ErrParse, "unexpected end of input reading integer")
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, pkgerrors.Wrapf(ErrParse, "expected integer, got %q", tok)
	}
	return n, nil
}

func (t *tokenizer) nextFloat() (float64, error) {
	tok, ok := t.next()
	if !ok {
		return 0, pkgerrors.Wrap(ErrParse, "unexpected end of input reading float")
	}
	f, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, pkgerrors.Wrapf(ErrParse, "expected float, got %q", tok)
	}
	return f, nil
}

// ParseFactorFile reads a UAI factor file from path (§6.2).
func ParseFactorFile(path string) (*Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(ErrIO, "opening factor file %q: %v", path, err)
	}
	defer f.Close()
	return ParseFactorReader(f)
}

// ParseFactorReader parses the UAI factor grammar from r.
func ParseFactorReader(r io.Reader) (*Model, error) {
	t := newTokenizer(r)

	if _, ok := t.next(); !ok {
		return nil, pkgerrors.Wrap(ErrParse, "missing type token")
	}

	n, err := t.nextInt()
	if err != nil {
		return nil, err
	}
	cards := make([]int, n)
	for i := 0; i < n; i++ {
		c, err := t.nextInt()
		if err != nil {
			return nil, pkgerrors.Wrapf(ErrParse, "reading cardinality of variable %d: %v", i, err)
		}
		cards[i] = c
	}

	numFactors, err := t.nextInt()
	if err != nil {
		return nil, err
	}

	scopes := make([][]int, numFactors)
	for i := 0; i < numFactors; i++ {
		k, err := t.nextInt()
		if err != nil {
			return nil, pkgerrors.Wrapf(ErrParse, "reading scope size of factor %d: %v", i, err)
		}
		vars := make([]int, k)
		for j := 0; j < k; j++ {
			v, err := t.nextInt()
			if err != nil {
				return nil, pkgerrors.Wrapf(ErrParse, "reading variable %d of factor %d: %v", j, i, err)
			}
			if v < 0 || v >= n {
				return nil, pkgerrors.Wrapf(ErrParse, "factor %d references out-of-range variable %d", i, v)
			}
			vars[j] = v
		}
		scopes[i] = vars
	}

	factors := make([]Factor, numFactors)
	for i := 0; i < numFactors; i++ {
		m, err := t.nextInt()
		if err != nil {
			return nil, pkgerrors.Wrapf(ErrParse, "reading table size of factor %d: %v", i, err)
		}
		values := make([]float64, m)
		for j := 0; j < m; j++ {
			v, err := t.nextFloat()
			if err != nil {
				return nil, pkgerrors.Wrapf(ErrParse, "reading value %d of factor %d: %v", j, i, err)
			}
			values[j] = v
		}
		factors[i] = Factor{Vars: scopes[i], Values: values}
	}

	if t.err != nil {
		return nil, pkgerrors.Wrap(ErrIO, t.err.Error())
	}

	return &Model{Cardinalities: cards, Factors: factors}, nil
}

// ParseOrderingFile reads an elimination ordering file from path
// (§6.3). The returned slice is in the convention
// pseudotree.BuildFromOrdering and dd/bucket expect: index 0 is
// eliminated first. The file lists ids in the opposite order (last id
// read is eliminated first), so each id read is pushed to the front.
func ParseOrderingFile(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(ErrIO, "opening ordering file %q: %v", path, err)
	}
	defer f.Close()
	return ParseOrderingReader(f)
}

// ParseOrderingReader parses the ordering grammar from r.
func ParseOrderingReader(r io.Reader) ([]int, error) {
	t := newTokenizer(r)

	if _, ok := t.next(); !ok {
		return nil, pkgerrors.Wrap(ErrParse, "missing header line")
	}

	n, err := t.nextInt()
	if err != nil {
		return nil, err
	}

	order := make([]int, 0, n)
	for i := 0; i < n; i++ {
		v, err := t.nextInt()
		if err != nil {
			return nil, pkgerrors.Wrapf(ErrParse, "reading ordering entry %d: %v", i, err)
		}
		order = append([]int{v}, order...)
	}

	if t.err != nil {
		return nil, pkgerrors.Wrap(ErrIO, t.err.Error())
	}
	return order, nil
}

// Evidence is one (varId, value) observation from an evidence file.
type Evidence struct {
	Var   int
	Value int
}

// ParseEvidenceFile reads an evidence file from path (§6.4).
func ParseEvidenceFile(path string) ([]Evidence, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrapf(ErrIO, "opening evidence file %q: %v", path, err)
	}
	defer f.Close()
	return ParseEvidenceReader(f)
}

// ParseEvidenceReader parses the evidence grammar from r.
func ParseEvidenceReader(r io.Reader) ([]Evidence, error) {
	t := newTokenizer(r)

	if _, ok := t.next(); !ok {
		return nil, pkgerrors.Wrap(ErrParse, "missing header line")
	}

	k, err := t.nextInt()
	if err != nil {
		return nil, err
	}

	out := make([]Evidence, k)
	for i := 0; i < k; i++ {
		v, err := t.nextInt()
		if err != nil {
			return nil, pkgerrors.Wrapf(ErrParse, "reading evidence entry %d var: %v", i, err)
		}
		val, err := t.nextInt()
		if err != nil {
			return nil, pkgerrors.Wrapf(ErrParse, "reading evidence entry %d value: %v", i, err)
		}
		out[i] = Evidence{Var: v, Value: val}
	}

	if t.err != nil {
		return nil, pkgerrors.Wrap(ErrIO, t.err.Error())
	}
	return out, nil
}
