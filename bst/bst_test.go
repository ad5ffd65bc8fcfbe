package bst_test

import (
	"encoding/json"
	"math/rand"
	"testing"

	"github.com/emirpasic/gods/trees/redblacktree"
	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvds/bst"
)

// sampleValues builds the reference tree
//
//	    9
//	 4     20
//	1 6  15  170
var sampleValues = []int{9, 4, 20, 1, 6, 15, 170}

func TestTree_Empty(t *testing.T) {
	tr := bst.New[int]()
	assert.Nil(t, tr.Root())
	assert.Equal(t, 0, tr.Len())
	assert.Nil(t, tr.Lookup(1))
	assert.False(t, tr.Remove(1), "remove on empty tree is a no-op")
	assert.Nil(t, tr.Shape())
	assert.Empty(t, tr.InOrder())
	_, ok := tr.Min()
	assert.False(t, ok)
	_, ok = tr.Max()
	assert.False(t, ok)
	assert.NoError(t, tr.Validate())
}

func TestTree_SampleShape(t *testing.T) {
	tr := bst.Build(sampleValues...)
	require.NoError(t, tr.Validate())

	assert.Equal(t, "{9,{4,{1},{6}},{20,{15},{170}}}", tr.Shape().String())
	assert.Equal(t, 7, tr.Len())
	assert.Equal(t, 3, tr.Height())
	assert.Nil(t, tr.Root().Parent())

	raw, err := json.Marshal(tr.Shape())
	require.NoError(t, err)
	assert.JSONEq(t, `{"value":9,
		"left":{"value":4,"left":{"value":1,"left":null,"right":null},"right":{"value":6,"left":null,"right":null}},
		"right":{"value":20,"left":{"value":15,"left":null,"right":null},"right":{"value":170,"left":null,"right":null}}}`,
		string(raw))
}

func TestTree_Lookup(t *testing.T) {
	tr := bst.Build(sampleValues...)
	for _, v := range sampleValues {
		n := tr.Lookup(v)
		require.NotNil(t, n, "Lookup(%d)", v)
		assert.Equal(t, v, n.Value())
		assert.True(t, tr.Contains(v))
	}
	for _, v := range []int{0, 5, 40, 171} {
		assert.Nil(t, tr.Lookup(v), "Lookup(%d)", v)
		assert.False(t, tr.Contains(v))
	}
}

func TestTree_InsertDuplicate(t *testing.T) {
	tr := bst.Build(sampleValues...)
	before := tr.Shape().String()

	assert.False(t, tr.Insert(6))
	assert.False(t, tr.Insert(9))
	assert.Equal(t, 7, tr.Len())
	assert.Equal(t, before, tr.Shape().String())
}

func TestTree_ParentLinks(t *testing.T) {
	tr := bst.Build(sampleValues...)
	four := tr.Lookup(4)
	assert.Same(t, tr.Root(), four.Parent())
	assert.Same(t, four, four.Left().Parent())
	assert.Same(t, four, four.Right().Parent())
	assert.Same(t, tr.Lookup(20), tr.Lookup(170).Parent())
}

func TestMinMax(t *testing.T) {
	tr := bst.Build(sampleValues...)
	assert.Equal(t, 1, bst.FindMin(tr.Root()).Value())
	assert.Equal(t, 170, bst.FindMax(tr.Root()).Value())
	assert.Equal(t, 15, bst.FindMin(tr.Lookup(20)).Value())
	assert.Equal(t, 6, bst.FindMin(tr.Lookup(6)).Value(), "a leaf is its own minimum")

	lo, ok := tr.Min()
	assert.True(t, ok)
	assert.Equal(t, 1, lo)
	hi, ok := tr.Max()
	assert.True(t, ok)
	assert.Equal(t, 170, hi)
}

func TestSuccessor_Sample(t *testing.T) {
	tr := bst.Build(sampleValues...)
	want := map[int]int{1: 4, 4: 6, 6: 9, 9: 15, 15: 20, 20: 170}
	for v, next := range want {
		s := bst.Successor(tr.Lookup(v))
		require.NotNil(t, s, "Successor(%d)", v)
		assert.Equal(t, next, s.Value(), "Successor(%d)", v)
	}
	assert.Nil(t, bst.Successor(tr.Lookup(170)))
}

func TestPredecessor_Sample(t *testing.T) {
	tr := bst.Build(sampleValues...)
	want := map[int]int{4: 1, 6: 4, 9: 6, 15: 9, 20: 15, 170: 20}
	for v, prev := range want {
		p := bst.Predecessor(tr.Lookup(v))
		require.NotNil(t, p, "Predecessor(%d)", v)
		assert.Equal(t, prev, p.Value(), "Predecessor(%d)", v)
	}
	assert.Nil(t, bst.Predecessor(tr.Lookup(1)))
}

func TestNavigation_NilNodePanics(t *testing.T) {
	assert.PanicsWithValue(t, bst.ErrNilNode, func() { bst.FindMin[int](nil) })
	assert.PanicsWithValue(t, bst.ErrNilNode, func() { bst.FindMax[int](nil) })
	assert.PanicsWithValue(t, bst.ErrNilNode, func() { bst.Successor[int](nil) })
	assert.PanicsWithValue(t, bst.ErrNilNode, func() { bst.Predecessor[int](nil) })
}

// TestSuccessor_MatchesBTree checks the successor and predecessor laws
// against google/btree ordered scans on a random tree.
func TestSuccessor_MatchesBTree(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	tr := bst.New[int]()
	oracle := btree.NewOrderedG[int](8)
	for i := 0; i < 600; i++ {
		v := r.Intn(2000)
		tr.Insert(v)
		oracle.ReplaceOrInsert(v)
	}
	require.Equal(t, oracle.Len(), tr.Len())

	oracle.Ascend(func(v int) bool {
		n := tr.Lookup(v)
		require.NotNil(t, n)

		next, hasNext := 0, false
		oracle.AscendGreaterOrEqual(v+1, func(x int) bool {
			next, hasNext = x, true
			return false
		})
		if s := bst.Successor(n); hasNext {
			if assert.NotNil(t, s, "Successor(%d)", v) {
				assert.Equal(t, next, s.Value(), "Successor(%d)", v)
			}
		} else {
			assert.Nil(t, s, "Successor(%d) of maximum", v)
		}

		prev, hasPrev := 0, false
		oracle.DescendLessOrEqual(v-1, func(x int) bool {
			prev, hasPrev = x, true
			return false
		})
		if p := bst.Predecessor(n); hasPrev {
			if assert.NotNil(t, p, "Predecessor(%d)", v) {
				assert.Equal(t, prev, p.Value(), "Predecessor(%d)", v)
			}
		} else {
			assert.Nil(t, p, "Predecessor(%d) of minimum", v)
		}

		return true
	})
}

// TestTree_RandomOpsMatchRedBlack drives random inserts and removals and
// compares membership and order with a gods red-black tree.
func TestTree_RandomOpsMatchRedBlack(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	tr := bst.New[int]()
	oracle := redblacktree.NewWithIntComparator()

	for i := 0; i < 4000; i++ {
		v := r.Intn(300)
		if r.Intn(3) == 0 {
			_, present := oracle.Get(v)
			before := tr.Len()
			assert.Equal(t, present, tr.Remove(v), "Remove(%d)", v)
			oracle.Remove(v)
			assert.Nil(t, tr.Lookup(v), "Lookup(%d) after Remove", v)
			if present {
				assert.Equal(t, before-1, tr.Len())
			} else {
				assert.Equal(t, before, tr.Len())
			}
		} else {
			_, present := oracle.Get(v)
			assert.Equal(t, !present, tr.Insert(v), "Insert(%d)", v)
			oracle.Put(v, struct{}{})
		}
		if i%250 == 0 {
			require.NoError(t, tr.Validate(), "after op %d", i)
		}
	}

	require.NoError(t, tr.Validate())
	require.Equal(t, oracle.Size(), tr.Len())
	keys := oracle.Keys()
	got := tr.InOrder()
	require.Len(t, got, len(keys))
	for i, k := range keys {
		assert.Equal(t, k.(int), got[i])
	}
}

func TestTree_StringValues(t *testing.T) {
	tr := bst.Build("m", "c", "x", "a")
	assert.Equal(t, "{m,{c,{a},nil},{x}}", tr.Shape().String())
	assert.Equal(t, []string{"a", "c", "m", "x"}, tr.InOrder())
	assert.Equal(t, "m", bst.Successor(tr.Lookup("c")).Value())
}

func TestTree_Hooks(t *testing.T) {
	var inserts []int
	dupes := 0
	cases := map[int]bst.RemoveCase{}
	tr := bst.New(
		bst.WithOnInsert(func(v int, inserted bool) {
			if inserted {
				inserts = append(inserts, v)
			} else {
				dupes++
			}
		}),
		bst.WithOnRemove(func(v int, c bst.RemoveCase) { cases[v] = c }),
	)
	for _, v := range sampleValues {
		tr.Insert(v)
	}
	tr.Insert(9)
	tr.Remove(1)   // leaf
	tr.Remove(4)   // one child (6)
	tr.Remove(20)  // two children
	tr.Remove(999) // missing: no hook

	assert.Equal(t, sampleValues, inserts)
	assert.Equal(t, 1, dupes)
	assert.Equal(t, map[int]bst.RemoveCase{
		1:  bst.RemoveLeaf,
		4:  bst.RemoveOneChild,
		20: bst.RemoveTwoChildren,
	}, cases)
}

func TestRemoveCase_String(t *testing.T) {
	assert.Equal(t, "leaf", bst.RemoveLeaf.String())
	assert.Equal(t, "one-child", bst.RemoveOneChild.String())
	assert.Equal(t, "two-children", bst.RemoveTwoChildren.String())
	assert.Equal(t, "unknown", bst.RemoveCase(9).String())
}
