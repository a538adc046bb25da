package services

import (
	"strings"
	"testing"

	"spice-garden/models"
)

func TestLookupMenuItemFirstMatchWins(t *testing.T) {
	tests := []struct {
		text string
		want string
	}{
		{"idli", "idli"},
		{"idli sambar", "idli"},          // "idli" precedes "idli sambar"
		{"masala dosa", "dosa"},          // "dosa" precedes "masala dosa"
		{"plain dosa with chutney", "dosa"},
		{"appam with milk", "appam with milk"}, // precedes "milk"
		{"a cup of coffee", "coffee"},
		{"chicken fried rice", "chicken fried rice"},
	}
	for _, tt := range tests {
		got, ok := LookupMenuItem(tt.text)
		if !ok {
			t.Errorf("LookupMenuItem(%q) = no match, want %q", tt.text, tt.want)
			continue
		}
		if got.Name != tt.want {
			t.Errorf("LookupMenuItem(%q) = %q, want %q", tt.text, got.Name, tt.want)
		}
	}
}

func TestLookupMenuItemNoMatch(t *testing.T) {
	for _, text := range []string{"", "asdf", "pizza", "idl"} {
		if _, ok := LookupMenuItem(text); ok {
			t.Errorf("LookupMenuItem(%q) matched, want no match", text)
		}
	}
}

func TestIdiyappamBelongsToDinner(t *testing.T) {
	// Listed in the breakfast block of the menu source but also assigned to
	// dinner; the dinner association wins.
	got, ok := LookupMenuItem("idiyappam with coconut milk")
	if !ok {
		t.Fatal("idiyappam with coconut milk not found in catalog")
	}
	if got.Period != models.PeriodDinner {
		t.Errorf("period = %q, want %q", got.Period, models.PeriodDinner)
	}
}

func TestMenuHasItem(t *testing.T) {
	if !MenuHasItem("idli") {
		t.Error("MenuHasItem(\"idli\") = false, want true")
	}
	if MenuHasItem("idlis") {
		t.Error("MenuHasItem(\"idlis\") = true, want false")
	}
	if MenuHasItem("parotta") {
		// only "parotta with salna" is a key
		t.Error("MenuHasItem(\"parotta\") = true, want false")
	}
}

func TestMenuText(t *testing.T) {
	for _, period := range []string{models.PeriodBreakfast, models.PeriodLunch, models.PeriodDinner} {
		if MenuText(period) == "" {
			t.Errorf("MenuText(%q) is empty", period)
		}
	}
	if MenuText("brunch") != "" {
		t.Error("MenuText for unknown period should be empty")
	}
	if !strings.HasPrefix(FullMenuText(), "Full Menu:\n\nBreakfast: ") {
		t.Errorf("FullMenuText has unexpected prefix: %q", FullMenuText()[:30])
	}
}
