package order

import "testing"

func TestPendingOrderMergesRepeatedItems(t *testing.T) {
	p := NewPendingOrder()
	if merged := p.Add(1, 2); merged {
		t.Fatal("first selection reported as merged")
	}
	if merged := p.Add(2, 1); merged {
		t.Fatal("distinct item reported as merged")
	}
	if merged := p.Add(1, 3); !merged {
		t.Fatal("repeated selection not merged")
	}

	lines := p.Lines()
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].MenuID != 1 || lines[0].Quantity != 5 {
		t.Fatalf("line 0 = %+v, want menu 1 qty 5", lines[0])
	}
	if lines[1].MenuID != 2 || lines[1].Quantity != 1 {
		t.Fatalf("line 1 = %+v, want menu 2 qty 1", lines[1])
	}
}

func TestPendingOrderReduceToSentinel(t *testing.T) {
	p := NewPendingOrder()
	p.Add(1, 2)
	p.Reduce(1, 2)

	lines := p.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected the rejected line to keep its slot, got %d lines", len(lines))
	}
	if !lines[0].Invalid() {
		t.Fatalf("line = %+v, want invalid sentinel", lines[0])
	}

	// The id is free again after a full reduction.
	if merged := p.Add(1, 4); merged {
		t.Fatal("selection after full reduction reported as merged")
	}
}

func TestPendingOrderReducePartial(t *testing.T) {
	p := NewPendingOrder()
	p.Add(1, 2)
	p.Add(1, 5)
	p.Reduce(1, 5)

	lines := p.Lines()
	if lines[0].MenuID != 1 || lines[0].Quantity != 2 {
		t.Fatalf("line = %+v, want menu 1 qty 2", lines[0])
	}
}
