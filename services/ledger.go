package services

import (
	"strings"

	"spice-garden/models"
)

// Ledger accumulates a single session's order lines. It is not safe for
// concurrent use; the dispatcher serializes access per session.
type Ledger struct {
	lines []models.OrderLine
}

// NewLedger wraps previously persisted lines; pass nil for a fresh session.
func NewLedger(lines []models.OrderLine) *Ledger {
	return &Ledger{lines: lines}
}

// AddOrMerge increments an existing line whose display name matches
// case-insensitively, or appends a new line, preserving insertion order.
func (l *Ledger) AddOrMerge(displayName string, quantity int) {
	for i := range l.lines {
		if strings.EqualFold(l.lines[i].Item, displayName) {
			l.lines[i].Quantity += quantity
			return
		}
	}
	l.lines = append(l.lines, models.OrderLine{Item: displayName, Quantity: quantity})
}

// CheckoutAndClear returns the current lines and empties the ledger.
func (l *Ledger) CheckoutAndClear() []models.OrderLine {
	ordered := l.lines
	l.lines = nil
	return ordered
}

func (l *Ledger) IsEmpty() bool {
	return len(l.lines) == 0
}

// Lines returns the current order lines in insertion order.
func (l *Ledger) Lines() []models.OrderLine {
	return l.lines
}
