package dish_test

import (
	"testing"

	"washline/internal/dish"
)

func TestStatusOrderIsForwardOnly(t *testing.T) {
	statuses := dish.AllStatuses()
	if len(statuses) != 5 {
		t.Fatalf("expected 5 statuses, got %d", len(statuses))
	}
	for i, status := range statuses[:len(statuses)-1] {
		next, ok := status.Next()
		if !ok {
			t.Fatalf("expected successor for %q", status)
		}
		if next != statuses[i+1] {
			t.Fatalf("successor of %q: got %q, want %q", status, next, statuses[i+1])
		}
	}
	if _, ok := dish.StatusStored.Next(); ok {
		t.Fatal("stored must be terminal")
	}
	if !dish.StatusStored.Terminal() {
		t.Fatal("Terminal() should report stored as terminal")
	}
}

func TestAdvanceFollowsLifecycle(t *testing.T) {
	d := &dish.Dish{ID: 1, Kind: dish.KindPlate, Status: dish.StatusDirty}
	for _, to := range []dish.Status{dish.StatusPreRinsed, dish.StatusWashed, dish.StatusDried, dish.StatusStored} {
		d.Advance(to)
		if d.Status != to {
			t.Fatalf("advance: got %q, want %q", d.Status, to)
		}
	}
}

func TestAdvancePanicsOnSkippedStage(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on skipped stage")
		}
	}()
	d := &dish.Dish{ID: 1, Kind: dish.KindBowl, Status: dish.StatusDirty}
	d.Advance(dish.StatusWashed)
}

func TestAdvancePanicsPastTerminal(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic advancing a stored dish")
		}
	}()
	d := &dish.Dish{ID: 1, Kind: dish.KindUtensil, Status: dish.StatusStored}
	d.Advance(dish.StatusStored)
}

func TestParseStatus(t *testing.T) {
	cases := []struct {
		input string
		want  dish.Status
		ok    bool
	}{
		{"dirty", dish.StatusDirty, true},
		{"  Pre-Rinsed ", dish.StatusPreRinsed, true},
		{"STORED", dish.StatusStored, true},
		{"", "", false},
		{"soaking", "", false},
	}
	for _, tc := range cases {
		got, ok := dish.ParseStatus(tc.input)
		if ok != tc.ok || got != tc.want {
			t.Fatalf("ParseStatus(%q) = (%q, %v), want (%q, %v)", tc.input, got, ok, tc.want, tc.ok)
		}
	}
}

func TestGenerateDeterministicUnderSeed(t *testing.T) {
	first := dish.Generate(50, 42)
	second := dish.Generate(50, 42)
	if len(first) != 50 || len(second) != 50 {
		t.Fatalf("expected 50 dishes, got %d and %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != int64(i+1) {
			t.Fatalf("dish %d: ID %d, want %d", i, first[i].ID, i+1)
		}
		if first[i].Status != dish.StatusDirty {
			t.Fatalf("dish %d: status %q, want dirty", i, first[i].Status)
		}
		if first[i].Kind != second[i].Kind {
			t.Fatalf("dish %d: kinds differ across seeded runs: %q vs %q", i, first[i].Kind, second[i].Kind)
		}
	}
}

func TestGenerateZeroAndNegativeCounts(t *testing.T) {
	if got := dish.Generate(0, 1); got != nil {
		t.Fatalf("Generate(0) = %v, want nil", got)
	}
	if got := dish.Generate(-3, 1); got != nil {
		t.Fatalf("Generate(-3) = %v, want nil", got)
	}
}
