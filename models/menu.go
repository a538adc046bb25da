package models

// MenuEntry maps a canonical (lowercase) dish name to the meal period it is
// served in.
type MenuEntry struct {
	Name   string
	Period string
}

const (
	PeriodBreakfast = "breakfast"
	PeriodLunch     = "lunch"
	PeriodDinner    = "dinner"
)
