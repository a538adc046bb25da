package services

import (
	"regexp"
	"strconv"
	"strings"

	"spice-garden/models"
)

// Intent kinds produced by Interpret.
const (
	IntentCheckout    = "checkout"
	IntentPlaceOrder  = "place_order"
	IntentMealInquiry = "meal_inquiry"
	IntentFullMenu    = "full_menu"
	IntentFallback    = "fallback"
)

// Intent is the interpreted form of one user utterance.
type Intent struct {
	Kind     string
	Item     models.MenuEntry // place_order only
	Quantity int              // place_order only
	Period   string           // meal_inquiry only
}

// Closed set of phrases that end the order.
var checkoutPhrases = map[string]bool{
	"no":          true,
	"nope":        true,
	"nothing":     true,
	"done":        true,
	"that's all":  true,
	"that is all": true,
}

// quantityRe captures "<digits> <letters/spaces>", e.g. "2 parottas".
// This is deliberately naive tokenization, not NLP: "please get 2 idli now"
// parses fine, while something like "table 5 please" misparses as a
// quantity. Do not widen it.
var quantityRe = regexp.MustCompile(`(\d+)\s+([a-zA-Z ]+)`)

// Interpret parses a raw utterance into an Intent.
func Interpret(raw string) Intent {
	q := strings.ToLower(strings.TrimSpace(raw))

	if checkoutPhrases[q] {
		return Intent{Kind: IntentCheckout}
	}

	quantity := 1
	itemText := q
	if m := quantityRe.FindStringSubmatch(q); m != nil {
		if n, err := strconv.Atoi(m[1]); err == nil && n >= 1 {
			quantity = n
		}
		itemText = strings.TrimSpace(m[2])
	}

	// Singularize plural input ("idlis" -> "idli") only when the stem is an
	// exact menu key.
	if strings.HasSuffix(itemText, "s") && MenuHasItem(strings.TrimSuffix(itemText, "s")) {
		itemText = strings.TrimSuffix(itemText, "s")
	}

	if entry, ok := LookupMenuItem(itemText); ok {
		return Intent{Kind: IntentPlaceOrder, Item: entry, Quantity: quantity}
	}

	for _, period := range []string{models.PeriodBreakfast, models.PeriodLunch, models.PeriodDinner} {
		if strings.Contains(q, period) {
			return Intent{Kind: IntentMealInquiry, Period: period}
		}
	}

	if strings.Contains(q, "menu") {
		return Intent{Kind: IntentFullMenu}
	}

	return Intent{Kind: IntentFallback}
}
