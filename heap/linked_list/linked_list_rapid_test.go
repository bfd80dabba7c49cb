package linked_list

import (
	"slices"
	"testing"

	"pgregory.net/rapid"
)

// TestLinkedListModel checks the list against a slice holding the same values
// in insertion order.
func TestLinkedListModel(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := New[int]()
		model := []int{}
		// small domain so removals hit duplicates often
		value := rapid.IntRange(0, 8)

		t.Repeat(map[string]func(*rapid.T){
			"add": func(t *rapid.T) {
				v := value.Draw(t, "v")
				l.Add(v)
				model = append(model, v)
				if l.tail.value != v {
					t.Fatalf("tail is %d after adding %d", l.tail.value, v)
				}
			},
			"remove": func(t *rapid.T) {
				v := value.Draw(t, "v")
				i := slices.Index(model, v)
				if got := l.Remove(v); got != (i >= 0) {
					t.Fatalf("Remove(%d) = %v, model %v", v, got, model)
				}
				if i >= 0 {
					model = slices.Delete(model, i, i+1)
				}
			},
			"": func(t *rapid.T) {
				if got := chain(t, l); !slices.Equal(got, model) {
					t.Fatalf("chain %v, want %v", got, model)
				}
			},
		})
	})
}

func TestAddGrowth(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vals := rapid.SliceOfN(rapid.Int(), 1, 50).Draw(t, "vals")
		l := New[int]()
		for _, v := range vals {
			l.Add(v)
		}
		if got := chain(t, l); !slices.Equal(got, vals) {
			t.Fatalf("chain %v, want %v", got, vals)
		}
		if l.tail.value != vals[len(vals)-1] {
			t.Fatalf("tail %d, want %d", l.tail.value, vals[len(vals)-1])
		}
	})
}

func TestRemoveMissingLeavesChain(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vals := rapid.SliceOf(rapid.IntRange(0, 100)).Draw(t, "vals")
		missing := rapid.IntRange(101, 200).Draw(t, "missing")
		l := New[int]()
		for _, v := range vals {
			l.Add(v)
		}
		if l.Remove(missing) {
			t.Fatalf("removed %d which was never added", missing)
		}
		if got := chain(t, l); !slices.Equal(got, vals) {
			t.Fatalf("chain %v, want %v", got, vals)
		}
	})
}

func TestRemoveTailMovesToPredecessor(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		vals := rapid.SliceOfNDistinct(rapid.Int(), 1, 30, rapid.ID[int]).Draw(t, "vals")
		l := New[int]()
		for _, v := range vals {
			l.Add(v)
		}
		pred := l.root
		for pred.next != l.tail {
			pred = pred.next
		}
		if !l.Remove(l.tail.value) {
			t.Fatalf("failed to remove tail")
		}
		if l.tail != pred || l.tail.next != nil {
			t.Fatalf("tail did not move to its predecessor")
		}
	})
}
