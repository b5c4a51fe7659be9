package dd

import (
	"encoding/binary"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/dechterlab/aomdd/scope"
)

// weightTolerance is the absolute tolerance used to canonicalize
// weights before they enter the unique table or an operation-cache key
// (§4.B). Two weights that round to the same multiple of this value are
// treated as identical for hashing and equality.
const weightTolerance = 1e-10

func quantize(w float64) float64 {
	return math.Round(w/weightTolerance) * weightTolerance
}

// Store is a hash-consed node store plus operation cache: the spec's
// NodeManager, reshaped per the design notes in §9 into an explicit
// handle instead of a process-wide singleton so tests and concurrent
// compiles can each own an isolated store. RunID tags a Store instance
// for log correlation when several stores are alive at once (e.g. one
// per -verify cross-check run).
type Store struct {
	RunID uuid.UUID

	zero *MetaNode
	one  *MetaNode

	nextMetaID uint64
	nextANDID  uint64

	uniqueMeta map[string]*MetaNode
	uniqueAND  map[string]*ANDNode

	opCache map[string]*MetaNode
}

// NewStore creates an empty Store with freshly minted Zero/One
// terminals. Complexity: O(1).
func NewStore() *Store {
	s := &Store{
		RunID:      uuid.New(),
		uniqueMeta: make(map[string]*MetaNode),
		uniqueAND:  make(map[string]*ANDNode),
		opCache:    make(map[string]*MetaNode),
	}
	s.zero = &MetaNode{id: 0, varID: zeroVarID, card: 1, weight: 0}
	s.one = &MetaNode{id: 1, varID: oneVarID, card: 1, weight: 1}
	s.nextMetaID = 2
	return s
}

// Zero returns the Store's Zero terminal singleton.
func (s *Store) Zero() *MetaNode { return s.zero }

// One returns the Store's One terminal singleton.
func (s *Store) One() *MetaNode { return s.one }

// UniqueCount returns the number of distinct interned MetaNodes and
// ANDNodes currently held by the store, for diagnostics.
func (s *Store) UniqueCount() (metaCount, andCount int) {
	return len(s.uniqueMeta), len(s.uniqueAND)
}

func idsKey(ids []uint64) string {
	buf := make([]byte, 8*len(ids))
	for i, id := range ids {
		binary.LittleEndian.PutUint64(buf[i*8:], id)
	}
	return string(buf)
}

func metaStructKey(varID, card int, weight float64, childIDs []uint64) string {
	var b strings.Builder
	b.WriteString("M|")
	b.WriteString(strconv.Itoa(varID))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(card))
	b.WriteByte('|')
	b.WriteString(strconv.FormatFloat(quantize(weight), 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(idsKey(childIDs))
	return b.String()
}

func andStructKey(weight float64, childIDs []uint64) string {
	var b strings.Builder
	b.WriteString("A|")
	b.WriteString(strconv.FormatFloat(quantize(weight), 'g', -1, 64))
	b.WriteByte('|')
	b.WriteString(idsKey(childIDs))
	return b.String()
}

// internAND returns the canonical ANDNode for (weight, children),
// creating and inserting a new one if none exists yet.
func (s *Store) internAND(weight float64, children []*MetaNode) *ANDNode {
	ids := make([]uint64, len(children))
	for i, c := range children {
		ids[i] = c.id
	}
	key := andStructKey(weight, ids)
	if existing, ok := s.uniqueAND[key]; ok {
		return existing
	}
	n := &ANDNode{id: s.nextANDID, weight: quantize(weight), children: children}
	s.nextANDID++
	s.uniqueAND[key] = n
	return n
}

// internMeta returns the canonical MetaNode for (varID, card, weight,
// children), creating and inserting a new one if none exists yet.
// Terminal varIDs always resolve to the fixed Zero/One singletons.
func (s *Store) internMeta(varID, card int, weight float64, children []*ANDNode) *MetaNode {
	if varID == zeroVarID {
		return s.zero
	}
	if varID == oneVarID {
		return s.one
	}
	ids := make([]uint64, len(children))
	for i, c := range children {
		ids[i] = c.id
	}
	key := metaStructKey(varID, card, weight, ids)
	if existing, ok := s.uniqueMeta[key]; ok {
		return existing
	}
	n := &MetaNode{id: s.nextMetaID, varID: varID, card: card, weight: quantize(weight), children: children}
	s.nextMetaID++
	s.uniqueMeta[key] = n
	return n
}

// CreateMetaNode interns a MetaNode labeled varID with the given
// cardinality, one ANDNode child per value, and weight. If a
// structurally equal node already exists it is returned unchanged;
// otherwise a new canonical node is created (§4.C.2, overloads 1 & 2).
func (s *Store) CreateMetaNode(varID, card int, children []*ANDNode, weight float64) (*MetaNode, error) {
	if len(children) != card {
		return nil, errors.Wrapf(ErrPreconditionViolation,
			"CreateMetaNode: card=%d but got %d children", card, len(children))
	}
	return s.internMeta(varID, card, weight, children), nil
}

// CreateANDNode interns an ANDNode with the given weight and meta-node
// children (one per pseudo-tree child of the owning OR node).
func (s *Store) CreateANDNode(weight float64, children []*MetaNode) *ANDNode {
	return s.internAND(weight, children)
}

// CreateMetaNodeFromTable builds and interns a MetaNode representing a
// dense factor table: vars gives the variable ordering and
// cardinalities, values is the row-major table under that ordering, and
// weight is the multiplicative weight attached to the resulting root
// (§4.C.2, overload 3). Precondition: vars' cardinality equals
// len(values).
func (s *Store) CreateMetaNodeFromTable(vars *scope.Scope, values []float64, weight float64) (*MetaNode, error) {
	total, overflow := vars.Cardinality()
	if overflow || uint64(len(values)) != total {
		return nil, errors.Wrapf(ErrPreconditionViolation,
			"CreateMetaNodeFromTable: scope cardinality does not match %d values", len(values))
	}
	if vars.Len() == 0 {
		return nil, errors.Wrap(ErrPreconditionViolation, "CreateMetaNodeFromTable: empty scope")
	}
	return s.buildFromTable(vars, values, weight)
}

// buildFromTable is the recursive worker behind CreateMetaNodeFromTable.
// nodeWeight is attached only to the node being built at this call; all
// recursively constructed descendants get weight 1 (the table's values
// live entirely at the AND-node leaves).
func (s *Store) buildFromTable(vars *scope.Scope, values []float64, nodeWeight float64) (*MetaNode, error) {
	ord := vars.Order()
	v0 := ord[0]
	c0, _ := vars.CardOf(v0)
	chunkLen := len(values) / c0

	if len(ord) == 1 {
		andChildren := make([]*ANDNode, c0)
		for k := 0; k < c0; k++ {
			term := s.one
			if values[k] == 0 {
				term = s.zero
			}
			andChildren[k] = s.internAND(values[k], []*MetaNode{term})
		}
		return s.internMeta(v0, c0, nodeWeight, andChildren), nil
	}

	rest := vars.Clone()
	rest.RemoveVar(v0)

	andChildren := make([]*ANDNode, c0)
	for k := 0; k < c0; k++ {
		chunk := values[k*chunkLen : (k+1)*chunkLen]
		childMeta, err := s.buildFromTable(rest, chunk, 1.0)
		if err != nil {
			return nil, err
		}
		andChildren[k] = s.internAND(1.0, []*MetaNode{childMeta})
	}
	return s.internMeta(v0, c0, nodeWeight, andChildren), nil
}

// --- operation cache keying -------------------------------------------------

// opKey builds a deterministic operation-cache key from a kind, a set of
// node identities, and an auxiliary list of ints (e.g. the eliminated
// variables for Marginalize/Maximize, empty for Apply/FullReduce). When
// commutative is true, params is treated as an unordered multiset
// (sorted before hashing) so Apply(a,[b,c]) and Apply(b,[a,c]) hash
// equal for a commutative operator, per §4.C.1.
func opKey(kind OpKind, params []uint64, aux []int, commutative bool) string {
	ps := params
	if commutative {
		ps = append([]uint64(nil), params...)
		sort.Slice(ps, func(i, j int) bool { return ps[i] < ps[j] })
	}
	auxSorted := append([]int(nil), aux...)
	sort.Ints(auxSorted)

	var b strings.Builder
	b.WriteString("OP|")
	b.WriteString(strconv.Itoa(int(kind)))
	b.WriteByte('|')
	for i, v := range auxSorted {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte('|')
	b.WriteString(idsKey(ps))
	return b.String()
}
