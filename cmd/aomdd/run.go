package main

import (
	"fmt"
	"math"
	"os"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/dechterlab/aomdd/bucket"
	"github.com/dechterlab/aomdd/dd"
	"github.com/dechterlab/aomdd/dot"
	"github.com/dechterlab/aomdd/function"
	"github.com/dechterlab/aomdd/pseudotree"
	"github.com/dechterlab/aomdd/scope"
	"github.com/dechterlab/aomdd/uai"
	"github.com/dechterlab/aomdd/vbe"
)

func run(opts *options) error {
	model, err := uai.ParseFactorFile(opts.factorPath)
	if err != nil {
		return err
	}

	order, err := uai.ParseOrderingFile(opts.orderPath)
	if err != nil {
		return err
	}

	var evidenceEntries []uai.Evidence
	if opts.evidencePath != "" {
		evidenceEntries, err = uai.ParseEvidenceFile(opts.evidencePath)
		if err != nil {
			return err
		}
	}
	evidence, err := buildEvidenceAssignment(model, evidenceEntries)
	if err != nil {
		return err
	}

	factorScopes := make([][]int, len(model.Factors))
	for i, f := range model.Factors {
		factorScopes[i] = f.Vars
	}
	pt, err := pseudotree.BuildFromOrdering(order, factorScopes, dd.DummyVarID)
	if err != nil {
		return errors.Wrap(err, "building pseudo-tree")
	}

	if opts.dotPath != "" {
		if err := writeDotFile(opts.dotPath, pt); err != nil {
			return err
		}
	}

	if opts.vbe {
		if opts.compile {
			fmt.Fprintln(os.Stderr, "aomdd: -c has no effect with -vbe (no diagram is built)")
		}
		return runVBE(model, order, evidence, opts)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		return errors.Wrap(err, "building logger")
	}
	defer logger.Sync()

	return runDiagram(model, order, pt, evidence, logger, opts)
}

// buildEvidenceAssignment lifts the evidence file's (varId, value)
// pairs into one Assignment spanning every observed variable, or nil
// if no evidence file was given.
func buildEvidenceAssignment(model *uai.Model, entries []uai.Evidence) (*scope.Assignment, error) {
	if len(entries) == 0 {
		return nil, nil
	}
	vars := make([]scope.Var, len(entries))
	for i, ev := range entries {
		if ev.Var < 0 || ev.Var >= len(model.Cardinalities) {
			return nil, errors.Errorf("evidence references out-of-range variable %d", ev.Var)
		}
		vars[i] = scope.Var{ID: ev.Var, Card: model.Cardinalities[ev.Var]}
	}
	sc, err := scope.NewScope(vars...)
	if err != nil {
		return nil, errors.Wrap(err, "building evidence scope")
	}
	a := scope.NewAssignment(sc)
	for _, ev := range entries {
		if err := a.SetVal(ev.Var, ev.Value); err != nil {
			return nil, errors.Wrapf(err, "setting evidence value for variable %d", ev.Var)
		}
	}
	return a, nil
}

func writeDotFile(path string, pt pseudotree.PseudoTree) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "creating dot file %q", path)
	}
	defer f.Close()
	return dot.WriteTree(f, pt)
}

// runDiagram lifts every factor into an AOMDDFunction, conditions it on
// evidence, then (per -c/-p/-verify) dumps the compiled diagram,
// computes P(e), and/or cross-checks against the dense engine.
func runDiagram(model *uai.Model, order []int, pt pseudotree.PseudoTree, evidence *scope.Assignment, logger *zap.Logger, opts *options) error {
	store := dd.NewStore()
	funcs := make([]*function.AOMDDFunction, 0, len(model.Factors))
	for _, fac := range model.Factors {
		sc, err := model.ScopeForDD(fac)
		if err != nil {
			return err
		}
		fn, err := function.FromTable(store, sc, fac.Values, pt)
		if err != nil {
			return errors.Wrap(err, "compiling factor into a diagram")
		}
		if evidence != nil {
			fn, err = fn.Condition(evidence)
			if err != nil {
				return errors.Wrap(err, "conditioning factor on evidence")
			}
		}
		funcs = append(funcs, fn)
	}

	if opts.verify {
		if err := verify(model, funcs, evidence); err != nil {
			return err
		}
	}

	if !opts.compile && !opts.prob {
		return nil
	}

	tree, err := bucket.CompileBucketTree(funcs, order, pt, false, logger)
	if err != nil {
		return errors.Wrap(err, "compiling bucket tree")
	}

	if opts.compile {
		fmt.Println(store.Dump(tree.Root.Root()))
	}
	if opts.prob {
		p, err := tree.Prob(opts.logSpace)
		if err != nil {
			return errors.Wrap(err, "computing P(e)")
		}
		fmt.Println(p)
	}
	return nil
}

// runVBE lifts every factor into a dense TableFunction and, if -p was
// given, computes P(e) by straight variable elimination (no pseudo-tree
// needed for the dense path).
func runVBE(model *uai.Model, order []int, evidence *scope.Assignment, opts *options) error {
	tables, err := buildTables(model, evidence)
	if err != nil {
		return err
	}
	if !opts.prob {
		return nil
	}
	p, err := vbe.Eliminate(tables, order, false)
	if err != nil {
		return errors.Wrap(err, "running dense variable elimination")
	}
	if opts.logSpace {
		p = math.Log(p)
	}
	fmt.Println(p)
	return nil
}

func buildTables(model *uai.Model, evidence *scope.Assignment) ([]*vbe.TableFunction, error) {
	tables := make([]*vbe.TableFunction, 0, len(model.Factors))
	for _, fac := range model.Factors {
		sc, err := model.ScopeForVBE(fac)
		if err != nil {
			return nil, err
		}
		tf, err := vbe.NewTableFunction(sc, fac.Values)
		if err != nil {
			return nil, errors.Wrap(err, "building dense factor table")
		}
		if evidence != nil {
			tf, err = tf.Condition(evidence)
			if err != nil {
				return nil, errors.Wrap(err, "conditioning factor on evidence")
			}
		}
		tables = append(tables, tf)
	}
	return tables, nil
}

// verify multiplies every (already evidence-conditioned) factor into
// one joint diagram and one joint dense table, then walks up to 2048
// assignments comparing the two (§6.1, §8 property 3).
func verify(model *uai.Model, funcs []*function.AOMDDFunction, evidence *scope.Assignment) error {
	if len(funcs) == 0 {
		return nil
	}

	productDD := funcs[0]
	for _, f := range funcs[1:] {
		var err error
		productDD, err = productDD.Multiply(f)
		if err != nil {
			return errors.Wrap(err, "verify: multiplying diagram factors")
		}
	}

	tables, err := buildTables(model, evidence)
	if err != nil {
		return err
	}
	productTable := tables[0]
	for _, t := range tables[1:] {
		productTable, err = productTable.Multiply(t)
		if err != nil {
			return errors.Wrap(err, "verify: multiplying dense factors")
		}
	}

	domain := productDD.Domain()
	total, overflow := domain.Cardinality()
	n := total
	if overflow || n > 2048 {
		n = 2048
	}

	a := scope.NewAssignment(domain)
	a.Reset()
	mismatches := 0
	for i := uint64(0); i < n; i++ {
		ddVal, err := productDD.GetVal(a, false)
		if err != nil {
			return errors.Wrap(err, "verify: evaluating diagram")
		}
		tableVal, err := productTable.GetVal(a)
		if err != nil {
			return errors.Wrap(err, "verify: evaluating dense table")
		}
		if diff := ddVal - tableVal; diff > 1e-20 || diff < -1e-20 {
			mismatches++
			fmt.Fprintf(os.Stderr, "aomdd: verify mismatch at assignment %d: diagram=%v table=%v\n", i, ddVal, tableVal)
		}
		if i+1 < n {
			a.Iterate()
		}
	}
	if mismatches > 0 {
		return errors.Errorf("verify: %d of %d assignments mismatched", mismatches, n)
	}
	fmt.Fprintf(os.Stderr, "aomdd: verify ok (%d assignments)\n", n)
	return nil
}
