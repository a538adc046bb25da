package services

import (
	"testing"

	"spice-garden/models"
)

func TestLedgerAddOrMerge(t *testing.T) {
	l := NewLedger(nil)
	l.AddOrMerge("Idlis", 2)
	l.AddOrMerge("Dosa", 1)
	l.AddOrMerge("idlis", 3) // case-insensitive merge

	lines := l.Lines()
	if len(lines) != 2 {
		t.Fatalf("len(lines) = %d, want 2", len(lines))
	}
	if lines[0].Item != "Idlis" || lines[0].Quantity != 5 {
		t.Errorf("lines[0] = %+v, want {Idlis 5}", lines[0])
	}
	if lines[1].Item != "Dosa" || lines[1].Quantity != 1 {
		t.Errorf("lines[1] = %+v, want {Dosa 1}", lines[1])
	}
}

func TestLedgerPreservesInsertionOrder(t *testing.T) {
	l := NewLedger(nil)
	for _, name := range []string{"Vadas", "Idlis", "Dosas"} {
		l.AddOrMerge(name, 1)
	}
	want := []string{"Vadas", "Idlis", "Dosas"}
	for i, line := range l.Lines() {
		if line.Item != want[i] {
			t.Errorf("lines[%d].Item = %q, want %q", i, line.Item, want[i])
		}
	}
}

func TestLedgerCheckoutAndClear(t *testing.T) {
	l := NewLedger([]models.OrderLine{{Item: "Idlis", Quantity: 2}})
	if l.IsEmpty() {
		t.Error("ledger with one line reported empty")
	}

	ordered := l.CheckoutAndClear()
	if len(ordered) != 1 || ordered[0].Item != "Idlis" || ordered[0].Quantity != 2 {
		t.Errorf("ordered = %+v, want [{Idlis 2}]", ordered)
	}
	if !l.IsEmpty() {
		t.Error("ledger not empty after checkout")
	}
	if got := l.CheckoutAndClear(); len(got) != 0 {
		t.Errorf("second checkout returned %+v, want empty", got)
	}
}
