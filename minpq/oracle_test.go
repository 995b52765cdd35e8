package minpq_test

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/katalvlaran/lvlath-paths/minpq"
)

// step records the observable result of one operation.
type step struct {
	Op   string
	Item int
	Err  string
	Size int
}

// errName reduces an error to its sentinel so both queues compare equal.
func errName(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, minpq.ErrDuplicateItem):
		return "duplicate"
	case errors.Is(err, minpq.ErrEmptyQueue):
		return "empty"
	case errors.Is(err, minpq.ErrItemNotFound):
		return "not found"
	default:
		return err.Error()
	}
}

// run replays a seeded random workload and returns its trace.
// Priorities come from a small set so ties are frequent.
func run(pq minpq.ExtrinsicMinPQ[int], seed int64, ops int) []step {
	rng := rand.New(rand.NewSource(seed))
	trace := make([]step, 0, ops)
	for i := 0; i < ops; i++ {
		item := rng.Intn(50)
		prio := float64(rng.Intn(8))
		var s step
		switch rng.Intn(5) {
		case 0, 1:
			s = step{Op: "add", Item: item, Err: errName(pq.Add(item, prio))}
		case 2:
			got, err := pq.PeekMin()
			s = step{Op: "peek", Item: got, Err: errName(err)}
		case 3:
			got, err := pq.RemoveMin()
			s = step{Op: "remove", Item: got, Err: errName(err)}
		default:
			s = step{Op: "change", Item: item, Err: errName(pq.ChangePriority(item, prio))}
		}
		s.Size = pq.Size()
		trace = append(trace, s)
	}

	return trace
}

// TestHeapMatchesUnsortedOracle drives both queues with identical random
// workloads and requires identical traces, ties included.
func TestHeapMatchesUnsortedOracle(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		want := run(minpq.NewUnsorted[int](), seed, 2000)
		got := run(minpq.NewHeap[int](), seed, 2000)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Fatalf("seed %d: heap diverged from unsorted (-want +got):\n%s", seed, diff)
		}
	}
}

// TestRemoveMinIsMinimum checks every removed priority is ≤ all remaining ones.
func TestRemoveMinIsMinimum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	prio := make(map[int]float64)
	pq := minpq.NewUnsorted[int]()
	for i := 0; i < 200; i++ {
		p := rng.Float64() * 100
		prio[i] = p
		if err := pq.Add(i, p); err != nil {
			t.Fatal(err)
		}
	}
	for !pq.IsEmpty() {
		item, err := pq.RemoveMin()
		if err != nil {
			t.Fatal(err)
		}
		for other, p := range prio {
			if other != item && pq.Contains(other) && p < prio[item] {
				t.Fatalf("removed %d (%.3f) while %d (%.3f) remained", item, prio[item], other, p)
			}
		}
		delete(prio, item)
	}
}
