package services

import (
	"testing"

	"spice-garden/models"
)

func TestCheckoutReply(t *testing.T) {
	lines := []models.OrderLine{
		{Item: "Idlis", Quantity: 2},
		{Item: "Dosa", Quantity: 1},
	}
	want := "Thank you for your order! You ordered: 2 Idlis, 1 Dosa. Your food will be served soon."
	if got := CheckoutReply(lines); got != want {
		t.Errorf("CheckoutReply = %q, want %q", got, want)
	}

	want = "Thank you! No items were ordered."
	if got := CheckoutReply(nil); got != want {
		t.Errorf("CheckoutReply(nil) = %q, want %q", got, want)
	}
}

func TestOrderReplies(t *testing.T) {
	want := "Added 3 Idlis to your order. Anything else?"
	if got := OrderAcceptedReply(3, "Idlis"); got != want {
		t.Errorf("OrderAcceptedReply = %q, want %q", got, want)
	}

	want = "Dinner is served only at specific hours. Please check the menu."
	if got := OrderRejectedReply(models.PeriodDinner); got != want {
		t.Errorf("OrderRejectedReply = %q, want %q", got, want)
	}
}

func TestMealInquiryReply(t *testing.T) {
	want := "Breakfast available now: Idli & Sambar, Dosa, Pongal, Upma, Appam with Milk, Idiyappam with Coconut Milk, Vada, Poori with Potato Curry, Chapati with Kurma, Milk/Coffee/Tea."
	if got := MealInquiryReply(models.PeriodBreakfast, true); got != want {
		t.Errorf("available reply = %q, want %q", got, want)
	}

	want = "Lunch is served only between 12:00 PM – 2:00 PM.\nHere is the menu: Sambar Rice, Rasam Rice, Lemon Rice, Curd Rice, Tamarind Rice, Kurma with Chapati, Chicken Curry with Rice, Fish Curry with Rice, Mutton Biryani, Veg Thali."
	if got := MealInquiryReply(models.PeriodLunch, false); got != want {
		t.Errorf("unavailable reply = %q, want %q", got, want)
	}
}
