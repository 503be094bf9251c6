package avl

import (
	"bytes"
	"math/rand/v2"
	"slices"
	"sync"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
	"github.com/tidwall/hashmap"
	"gopkg.in/typ.v4"
)

func newIntTree(values ...int) Tree[int] {
	tree := NewOrderedTree[int]()
	for _, v := range values {
		tree.Add(v)
	}
	return tree
}

func TestTreeScenarios(t *testing.T) {
	t.Run("balanced insertion order", func(t *testing.T) {
		tree := newIntTree(5, 3, 8, 1, 4, 7, 9)
		require.NoError(t, tree.Validate())
		require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tree.Values())
		require.Equal(t, 5, tree.Root().Value())
		require.Equal(t, 3, tree.Height())
		require.Equal(t, 7, tree.Count())
	})

	t.Run("ascending insertion order", func(t *testing.T) {
		tree := NewOrderedTree[int]()
		for v := 1; v <= 7; v++ {
			tree.Add(v)
			require.NoError(t, tree.Validate())
		}
		require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7}, tree.Values())
		require.Equal(t, 3, tree.Height())
		require.Equal(t, 4, tree.Root().Value())
	})

	t.Run("descending insertion order", func(t *testing.T) {
		tree := newIntTree(7, 6, 5, 4, 3, 2, 1)
		require.NoError(t, tree.Validate())
		require.Equal(t, 3, tree.Height())
		require.Equal(t, 4, tree.Root().Value())
	})

	t.Run("remove root of three nodes", func(t *testing.T) {
		tree := newIntTree(2, 1, 3)
		require.True(t, tree.Remove(2))
		require.NoError(t, tree.Validate())
		require.Equal(t, []int{1, 3}, tree.Values())
		require.Equal(t, 2, tree.Count())
		require.Equal(t, 2, tree.Height())
	})
}

func TestTreeEmpty(t *testing.T) {
	tree := NewOrderedTree[string]()
	require.Equal(t, 0, tree.Count())
	require.Equal(t, 0, tree.Height())
	require.False(t, tree.Contains("a"))
	require.Nil(t, tree.Find("a"))
	require.False(t, tree.Remove("a"))
	require.Nil(t, tree.MostLeft())
	require.Nil(t, tree.MostRight())
	require.Empty(t, tree.Values())
	require.NoError(t, tree.Validate())

	it := tree.Iterator()
	require.False(t, it.Next())
	require.False(t, it.Valid())
}

func TestTreeRemove(t *testing.T) {
	t.Run("node without right child", func(t *testing.T) {
		/*
			    5
			   / \
			  3   8
			 /
			1
		*/
		tree := newIntTree(5, 3, 8, 1)
		require.True(t, tree.Remove(3))
		require.NoError(t, tree.Validate())
		require.Equal(t, 1, tree.Root().Left().Value())
		require.Equal(t, []int{1, 5, 8}, tree.Values())
	})

	t.Run("leaf", func(t *testing.T) {
		tree := newIntTree(5, 3, 8)
		require.True(t, tree.Remove(8))
		require.NoError(t, tree.Validate())
		require.Nil(t, tree.Root().Right())
		require.Equal(t, []int{3, 5}, tree.Values())
	})

	t.Run("right child without left subtree", func(t *testing.T) {
		tree := newIntTree(5, 3, 8, 9)
		require.True(t, tree.Remove(8))
		require.NoError(t, tree.Validate())
		require.Equal(t, 9, tree.Root().Right().Value())
		require.Equal(t, []int{3, 5, 9}, tree.Values())
	})

	t.Run("promoted right child becomes unbalanced", func(t *testing.T) {
		/*
			        20
			       /  \
			     10    30
			    /  \   / \
			   5   15 25  35
			  /
			 3
		*/
		tree := newIntTree(20, 10, 30, 5, 15, 25, 35, 3)
		require.True(t, tree.Remove(10))
		require.NoError(t, tree.Validate())
		require.Equal(t, 5, tree.Root().Left().Value())
		require.Equal(t, []int{3, 5, 15, 20, 25, 30, 35}, tree.Values())
	})

	t.Run("successor from right subtree", func(t *testing.T) {
		/*
			      4
			     / \
			    2   8
			   / \  / \
			  1  3 6   9
			      / \
			     5   7
		*/
		tree := newIntTree(4, 2, 8, 1, 3, 6, 9, 5, 7)
		require.True(t, tree.Remove(4))
		require.NoError(t, tree.Validate())
		require.Equal(t, 5, tree.Root().Value())
		require.Nil(t, tree.Find(8).Left().Left())
		require.Equal(t, []int{1, 2, 3, 5, 6, 7, 8, 9}, tree.Values())
	})

	t.Run("successor with right subtree", func(t *testing.T) {
		tree := newIntTree(4, 2, 8, 1, 3, 6, 9, 7)
		require.True(t, tree.Remove(4))
		require.NoError(t, tree.Validate())
		require.Equal(t, 6, tree.Root().Value())
		require.Equal(t, []int{1, 2, 3, 6, 7, 8, 9}, tree.Values())
	})

	t.Run("absent value", func(t *testing.T) {
		tree := newIntTree(5, 3, 8, 1, 4, 7, 9)
		before := tree.Values()
		require.False(t, tree.Remove(6))
		require.Equal(t, 7, tree.Count())
		require.Equal(t, before, tree.Values())
		require.NoError(t, tree.Validate())
	})

	t.Run("all values", func(t *testing.T) {
		values := []int{50, 20, 80, 10, 30, 70, 90, 25, 35, 75, 5, 1}
		tree := newIntTree(values...)
		for i, v := range values {
			require.True(t, tree.Remove(v))
			require.NoError(t, tree.Validate())
			require.Equal(t, len(values)-i-1, tree.Count())
			require.False(t, tree.Contains(v))
		}
		require.Nil(t, tree.Root())
	})

	t.Run("specific node", func(t *testing.T) {
		tree := NewOrderedTree[int]()
		tree.Add(1)
		second := tree.Add(1)
		tree.Add(1)
		tree.RemoveNode(second)
		require.NoError(t, tree.Validate())
		require.Equal(t, []int{1, 1}, tree.Values())
	})
}

func TestTreeDuplicates(t *testing.T) {
	type entry struct {
		key int
		seq int
	}
	tree := NewTree(func(a, b entry) int { return typ.Compare(a.key, b.key) })
	keys := []int{3, 1, 3, 2, 3, 1, 3, 3, 2, 3}
	for seq, key := range keys {
		tree.Add(entry{key: key, seq: seq})
		require.NoError(t, tree.Validate())
	}
	require.Equal(t, len(keys), tree.Count())

	// Equal values keep their insertion order
	var got []entry
	for e := range tree.All() {
		got = append(got, e)
	}
	require.True(t, slices.IsSortedFunc(got, func(a, b entry) int {
		if a.key != b.key {
			return a.key - b.key
		}
		return a.seq - b.seq
	}), "got %v", got)

	for i := 0; i < 6; i++ {
		require.True(t, tree.Remove(entry{key: 3}))
		require.NoError(t, tree.Validate())
	}
	require.False(t, tree.Remove(entry{key: 3}))
	require.False(t, tree.Contains(entry{key: 3}))
	require.Equal(t, 4, tree.Count())
}

func TestTreeRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewPCG(1, 2))
	tree := NewOrderedTree[int]()
	for i := 0; i < 200; i++ {
		tree.Add(rnd.IntN(100))
	}
	for i := 0; i < 100; i++ {
		v := rnd.IntN(120)
		before := tree.Values()
		tree.Add(v)
		require.True(t, tree.Remove(v))
		require.NoError(t, tree.Validate())
		require.Equal(t, before, tree.Values())
	}
}

func TestTreeRandomOperations(t *testing.T) {
	rnd := rand.New(rand.NewPCG(42, 1024))
	tree := NewOrderedTree[int]()
	counts := hashmap.New[int, int](64)
	total := 0
	for i := 0; i < 5000; i++ {
		v := rnd.IntN(64)
		if rnd.IntN(3) == 0 {
			n, _ := counts.Get(v)
			require.Equal(t, n > 0, tree.Remove(v))
			if n > 1 {
				counts.Set(v, n-1)
				total--
			} else if n == 1 {
				counts.Delete(v)
				total--
			}
		} else {
			tree.Add(v)
			n, _ := counts.Get(v)
			counts.Set(v, n+1)
			total++
		}
		require.NoError(t, tree.Validate())
		require.Equal(t, total, tree.Count())
		_, ok := counts.Get(v)
		require.Equal(t, ok, tree.Contains(v))
	}

	var want []int
	counts.Scan(func(v, n int) bool {
		for ; n > 0; n-- {
			want = append(want, v)
		}
		return true
	})
	slices.Sort(want)
	require.Equal(t, want, tree.Values())
}

func TestTreePooled(t *testing.T) {
	allocated := 0
	pool := &sync.Pool{New: func() any {
		allocated++
		return new(Node[int])
	}}
	tree := NewTreePooled(typ.Compare[int], pool)
	for v := 0; v < 32; v++ {
		tree.Add(v)
	}
	require.NoError(t, tree.Validate())
	require.Equal(t, 32, allocated)
	for v := 0; v < 32; v += 2 {
		require.True(t, tree.Remove(v))
	}
	require.NoError(t, tree.Validate())
	require.Equal(t, 16, tree.Count())
	tree.Clear()
	require.Equal(t, 0, tree.Count())
	require.Nil(t, tree.Root())

	// Reused nodes must not carry stale links
	for v := 0; v < 8; v++ {
		tree.Add(v)
	}
	require.NoError(t, tree.Validate())
	require.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7}, tree.Values())
}

func TestTreeTraversal(t *testing.T) {
	tree := newIntTree(5, 3, 8, 1, 4, 7, 9)

	t.Run("restartable sequence", func(t *testing.T) {
		seq := tree.All()
		var first, second []int
		for v := range seq {
			first = append(first, v)
		}
		for v := range seq {
			second = append(second, v)
		}
		require.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, first)
		require.Equal(t, first, second)
	})

	t.Run("early stop", func(t *testing.T) {
		var got []int
		for v := range tree.All() {
			if v > 4 {
				break
			}
			got = append(got, v)
		}
		require.Equal(t, []int{1, 3, 4}, got)
	})

	t.Run("iterator", func(t *testing.T) {
		it := tree.Iterator()
		require.False(t, it.Valid())
		require.True(t, it.Next())
		require.Equal(t, 1, it.Current().Value())
		require.True(t, it.Valid())
		for it.Next() {
		}
		require.False(t, it.Valid())
		require.Nil(t, it.Current())
	})

	t.Run("pre order", func(t *testing.T) {
		var got []int
		tree.IteratePreOrder(func(v int) bool {
			got = append(got, v)
			return false
		})
		require.Equal(t, []int{5, 3, 1, 4, 8, 7, 9}, got)

		clone := newIntTree(got...)
		require.Equal(t, tree.Root().Value(), clone.Root().Value())
		require.Equal(t, tree.Height(), clone.Height())
	})

	t.Run("in order", func(t *testing.T) {
		var got []int
		tree.IterateInOrder(func(v int) bool {
			got = append(got, v)
			return v == 5
		})
		require.Equal(t, []int{1, 3, 4, 5}, got)
	})

	t.Run("post order", func(t *testing.T) {
		var got []int
		tree.IteratePostOrder(func(v int) bool {
			got = append(got, v)
			return false
		})
		require.Equal(t, []int{1, 4, 3, 7, 9, 8, 5}, got)
	})
}

func TestTreeValidate(t *testing.T) {
	t.Run("stale height", func(t *testing.T) {
		tree := newIntTree(2, 1, 3)
		tree.root.height = 5
		require.ErrorIs(t, tree.Validate(), ErrorTreeHeightMismatch)
	})

	t.Run("out of order", func(t *testing.T) {
		tree := newIntTree(2, 1, 3)
		tree.root.left.value = 4
		require.ErrorIs(t, tree.Validate(), ErrorTreeUnordered)
	})

	t.Run("broken parent", func(t *testing.T) {
		tree := newIntTree(2, 1, 3)
		tree.root.right.parent = nil
		require.ErrorIs(t, tree.Validate(), ErrorTreeParentMismatch)
	})

	t.Run("wrong count", func(t *testing.T) {
		tree := newIntTree(2, 1, 3)
		tree.count++
		require.ErrorIs(t, tree.Validate(), ErrorTreeCountMismatch)
	})

	t.Run("unbalanced", func(t *testing.T) {
		tree := NewOrderedTree[int]()
		tree.root = link(&intNode{value: 1, right: &intNode{value: 2, right: leaf(3)}})
		tree.count = 3
		require.ErrorIs(t, tree.Validate(), ErrorTreeUnbalanced)
	})
}

func TestTreeFprint(t *testing.T) {
	var buf bytes.Buffer
	empty := NewOrderedTree[int]()
	require.NoError(t, empty.Fprint(&buf))
	require.Equal(t, "<empty>\n", buf.String())

	buf.Reset()
	tree := newIntTree(2, 1, 3)
	require.NoError(t, tree.Fprint(&buf))
	want := "" +
		"       /------+ 3 (h=1)\n" +
		"|------+ 2 (h=2)\n" +
		"       \\------+ 1 (h=1)\n"
	require.Equal(t, want, buf.String())
}

func FuzzOrderedTree_AddRemove(f *testing.F) {
	testcases := []string{
		"abcdefg",
		"gfedcba",
		"aaaaaaa",
		"a",
	}
	for _, tc := range testcases {
		f.Add(tc)
	}
	f.Fuzz(func(t *testing.T, str string) {
		tree := NewOrderedTree[rune]()
		t.Logf("using runes: %q", str)
		strLen := utf8.RuneCountInString(str)
		for _, r := range str {
			tree.Add(r)
			if !tree.Contains(r) {
				t.Errorf("just added, but contains(%q) == false", string(r))
			}
		}
		if tree.Count() != strLen {
			t.Errorf("want len=%d, got len=%d", strLen, tree.Count())
		}
		if err := tree.Validate(); err != nil {
			t.Errorf("invalid tree after adding: %v", err)
		}
		values := tree.Values()
		if !slices.IsSorted(values) {
			t.Errorf("values are not sorted: %q", string(values))
		}
		for _, r := range str {
			lenBefore := tree.Count()
			if !tree.Remove(r) {
				t.Errorf("failed to remove value %q", r)
			}
			if lenBefore-1 != tree.Count() {
				t.Errorf("len did not shrink by 1: want %d, got %d", lenBefore-1, tree.Count())
			}
			if err := tree.Validate(); err != nil {
				t.Errorf("invalid tree after removing %q: %v", r, err)
			}
		}
		if tree.Count() != 0 {
			t.Errorf("want empty, got len=%d", tree.Count())
		}
	})
}
