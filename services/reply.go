package services

import (
	"fmt"
	"strings"

	"spice-garden/models"
)

const (
	// FallbackReply is sent when nothing in the utterance is recognized.
	FallbackReply = "Sorry! I'm here to help you with the restaurant menu. Please check our menu."
	// InternalErrorReply is the only thing a failed request ever says.
	InternalErrorReply = "Sorry, something went wrong. Please try again."

	emptyCheckoutReply = "Thank you! No items were ordered."
)

// CheckoutReply thanks the user and lists every ordered line, or reports
// that nothing was ordered.
func CheckoutReply(ordered []models.OrderLine) string {
	if len(ordered) == 0 {
		return emptyCheckoutReply
	}
	parts := make([]string, len(ordered))
	for i, line := range ordered {
		parts[i] = fmt.Sprintf("%d %s", line.Quantity, line.Item)
	}
	return fmt.Sprintf("Thank you for your order! You ordered: %s. Your food will be served soon.", strings.Join(parts, ", "))
}

// OrderAcceptedReply confirms an addition to the order.
func OrderAcceptedReply(quantity int, displayName string) string {
	return fmt.Sprintf("Added %d %s to your order. Anything else?", quantity, displayName)
}

// OrderRejectedReply is sent when the dish's meal period is not being served.
func OrderRejectedReply(period string) string {
	return fmt.Sprintf("%s is served only at specific hours. Please check the menu.", titleCase(period))
}

// MealInquiryReply answers "breakfast"/"lunch"/"dinner" questions with the
// period's menu, prefixed by availability.
func MealInquiryReply(period string, serving bool) string {
	if serving {
		return fmt.Sprintf("%s available now: %s", titleCase(period), MenuText(period))
	}
	return fmt.Sprintf("%s is served only between %s.\nHere is the menu: %s", titleCase(period), ServingHours(period), MenuText(period))
}

// FullMenuReply returns the fixed three-section listing.
func FullMenuReply() string {
	return FullMenuText()
}
