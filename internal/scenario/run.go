package scenario

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/lvds/bfs"
	"github.com/katalvlaran/lvds/bst"
	"github.com/katalvlaran/lvds/dfs"
	"github.com/katalvlaran/lvds/maxheap"
)

// Report is the observable outcome of replaying a Scenario.
type Report struct {
	Tree TreeReport `json:"tree"`
	Heap HeapReport `json:"heap"`
}

// TreeReport captures the tree after the insert phase and after the remove phase.
type TreeReport struct {
	Inserted   *bst.Shape[int]   `json:"inserted"`
	Successors []SuccessorAnswer `json:"successors"`
	Removed    *bst.Shape[int]   `json:"removed"`
	InOrder    []int             `json:"in_order"`
	PreOrder   []int             `json:"pre_order"`
	PostOrder  []int             `json:"post_order"`
	Levels     [][]int           `json:"levels"`
}

// SuccessorAnswer is one successor query; Next is nil for the maximum.
type SuccessorAnswer struct {
	Value int  `json:"value"`
	Next  *int `json:"next"`
}

// HeapReport holds the backing sequence after all inserts and the
// ExtractMax results, nil once the heap ran empty.
type HeapReport struct {
	Sequence  []int  `json:"sequence"`
	Extracted []*int `json:"extracted"`
}

// Run replays s and returns its Report. Both structures are validated
// after replay; a violated invariant is returned as an error.
// A nil logger is replaced with a no-op one; a nil s is ErrInvalidScenario.
func Run(s *Scenario, logger *zap.Logger) (*Report, error) {
	if s == nil {
		return nil, fmt.Errorf("%w: nil scenario", ErrInvalidScenario)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}

	tree, err := runTree(s.Tree, logger.Named("bst"))
	if err != nil {
		return nil, err
	}
	heap, err := runHeap(s.Heap, logger.Named("maxheap"))
	if err != nil {
		return nil, err
	}

	return &Report{Tree: *tree, Heap: *heap}, nil
}

func runTree(ts TreeScript, log *zap.Logger) (*TreeReport, error) {
	tr := bst.New(
		bst.WithOnInsert(func(v int, inserted bool) {
			log.Debug("insert", zap.Int("value", v), zap.Bool("inserted", inserted))
		}),
		bst.WithOnRemove(func(v int, c bst.RemoveCase) {
			log.Debug("remove", zap.Int("value", v), zap.Stringer("case", c))
		}),
	)

	for _, v := range ts.Insert {
		tr.Insert(v)
	}
	rep := &TreeReport{Inserted: tr.Shape(), Successors: []SuccessorAnswer{}}

	for _, v := range ts.Successor {
		n := tr.Lookup(v)
		if n == nil {
			return nil, fmt.Errorf("%w: successor query for %d", ErrUnknownValue, v)
		}
		ans := SuccessorAnswer{Value: v}
		if next := bst.Successor(n); next != nil {
			nv := next.Value()
			ans.Next = &nv
		}
		rep.Successors = append(rep.Successors, ans)
	}

	for _, v := range ts.Remove {
		if !tr.Remove(v) {
			log.Warn("remove of missing value", zap.Int("value", v))
		}
	}
	if err := tr.Validate(); err != nil {
		return nil, fmt.Errorf("scenario: tree after replay: %w", err)
	}

	rep.Removed = tr.Shape()
	rep.InOrder = tr.InOrder()
	if err := traverse(tr, rep); err != nil {
		return nil, err
	}
	log.Info("tree replayed",
		zap.Int("size", tr.Len()),
		zap.Int("height", tr.Height()),
		zap.Stringer("shape", rep.Removed))

	return rep, nil
}

// traverse fills the level-order and depth-first views of the final tree.
func traverse(tr *bst.Tree[int], rep *TreeReport) error {
	root := tr.Root()
	if root == nil {
		rep.PreOrder, rep.PostOrder, rep.Levels = []int{}, []int{}, [][]int{}
		return nil
	}

	levels, err := bfs.Walk(root)
	if err != nil {
		return fmt.Errorf("scenario: level order: %w", err)
	}
	rep.Levels = levels.Levels()

	pre, err := dfs.Walk(root, dfs.PreOrder)
	if err != nil {
		return fmt.Errorf("scenario: %s: %w", dfs.PreOrder, err)
	}
	post, err := dfs.Walk(root, dfs.PostOrder)
	if err != nil {
		return fmt.Errorf("scenario: %s: %w", dfs.PostOrder, err)
	}
	rep.PreOrder, rep.PostOrder = pre.Order, post.Order

	return nil
}

func runHeap(hs HeapScript, log *zap.Logger) (*HeapReport, error) {
	h := maxheap.New[int](maxheap.WithOnSwap(func(i, j int) {
		log.Debug("swap", zap.Int("i", i), zap.Int("j", j))
	}))

	for _, v := range hs.Insert {
		h.Insert(v)
	}
	rep := &HeapReport{Sequence: h.Values(), Extracted: make([]*int, 0, hs.Extract)}

	for i := 0; i < hs.Extract; i++ {
		v, ok := h.ExtractMax()
		if !ok {
			rep.Extracted = append(rep.Extracted, nil)
			continue
		}
		rep.Extracted = append(rep.Extracted, &v)
		if err := h.Validate(); err != nil {
			return nil, fmt.Errorf("scenario: heap after extract %d: %w", i+1, err)
		}
	}
	log.Info("heap replayed", zap.Int("remaining", h.Len()), zap.Int("extracted", hs.Extract))

	return rep, nil
}
