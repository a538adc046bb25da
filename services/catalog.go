package services

import (
	"strings"

	"spice-garden/models"
)

// menuEntries is the fixed menu in its original enumeration order.
// LookupMenuItem scans this slice front to back, so when several canonical
// names substring-match the same input the earliest entry wins (e.g. "idli"
// beats "idli sambar", "dosa" beats "masala dosa"). Reordering entries
// changes replies; don't.
//
// "idiyappam with coconut milk" is listed with the breakfast dishes but is
// served at dinner: the menu source assigned it to both periods and the
// later (dinner) association wins.
var menuEntries = []models.MenuEntry{
	{Name: "idli", Period: models.PeriodBreakfast},
	{Name: "idli sambar", Period: models.PeriodBreakfast},
	{Name: "dosa", Period: models.PeriodBreakfast},
	{Name: "plain dosa", Period: models.PeriodBreakfast},
	{Name: "masala dosa", Period: models.PeriodBreakfast},
	{Name: "pongal", Period: models.PeriodBreakfast},
	{Name: "upma", Period: models.PeriodBreakfast},
	{Name: "appam with milk", Period: models.PeriodBreakfast},
	{Name: "idiyappam with coconut milk", Period: models.PeriodDinner},
	{Name: "vada", Period: models.PeriodBreakfast},
	{Name: "poori with potato curry", Period: models.PeriodBreakfast},
	{Name: "chapati with kurma", Period: models.PeriodBreakfast},
	{Name: "milk", Period: models.PeriodBreakfast},
	{Name: "coffee", Period: models.PeriodBreakfast},
	{Name: "tea", Period: models.PeriodBreakfast},

	{Name: "sambar rice", Period: models.PeriodLunch},
	{Name: "rasam rice", Period: models.PeriodLunch},
	{Name: "lemon rice", Period: models.PeriodLunch},
	{Name: "curd rice", Period: models.PeriodLunch},
	{Name: "tamarind rice", Period: models.PeriodLunch},
	{Name: "kurma with chapati", Period: models.PeriodLunch},
	{Name: "chicken curry with rice", Period: models.PeriodLunch},
	{Name: "fish curry with rice", Period: models.PeriodLunch},
	{Name: "mutton biryani", Period: models.PeriodLunch},
	{Name: "veg thali", Period: models.PeriodLunch},

	{Name: "chapati with dal curry", Period: models.PeriodDinner},
	{Name: "parotta with salna", Period: models.PeriodDinner},
	{Name: "onion dosa", Period: models.PeriodDinner},
	{Name: "uttapam", Period: models.PeriodDinner},
	{Name: "kichadi", Period: models.PeriodDinner},
	{Name: "veg noodles", Period: models.PeriodDinner},
	{Name: "chicken fried rice", Period: models.PeriodDinner},
	{Name: "mutton sukka with chapati", Period: models.PeriodDinner},
}

// LookupMenuItem returns the first catalog entry whose canonical name occurs
// as a substring of text. Text must already be lowercased.
func LookupMenuItem(text string) (models.MenuEntry, bool) {
	for _, e := range menuEntries {
		if strings.Contains(text, e.Name) {
			return e, true
		}
	}
	return models.MenuEntry{}, false
}

// MenuHasItem reports whether name is exactly a canonical menu key.
func MenuHasItem(name string) bool {
	for _, e := range menuEntries {
		if e.Name == name {
			return true
		}
	}
	return false
}

var periodMenuText = map[string]string{
	models.PeriodBreakfast: "Idli & Sambar, Dosa, Pongal, Upma, Appam with Milk, Idiyappam with Coconut Milk, Vada, Poori with Potato Curry, Chapati with Kurma, Milk/Coffee/Tea.",
	models.PeriodLunch:     "Sambar Rice, Rasam Rice, Lemon Rice, Curd Rice, Tamarind Rice, Kurma with Chapati, Chicken Curry with Rice, Fish Curry with Rice, Mutton Biryani, Veg Thali.",
	models.PeriodDinner:    "Idiyappam with Coconut Milk, Chapati with Dal Curry, Parotta with Salna, Onion Dosa, Uttapam, Kichadi, Veg Noodles, Chicken Fried Rice, Mutton Sukka with Chapati.",
}

// MenuText returns the canned human-readable listing for one period.
func MenuText(period string) string {
	return periodMenuText[period]
}

const fullMenuText = "Full Menu:\n\n" +
	"Breakfast: Idli & Sambar, Dosa, Pongal, Upma, Appam with Milk, Idiyappam with Coconut Milk, Vada, Poori with Potato Curry, Chapati with Kurma, Milk / Coffee / Tea\n\n" +
	"Lunch: Sambar Rice, Rasam Rice, Lemon Rice, Curd Rice, Tamarind Rice, Kurma with Chapati, Chicken Curry with Rice, Fish Curry with Rice, Mutton Biryani, Veg Thali\n\n" +
	"Dinner: Idiyappam with Coconut Milk, Chapati with Dal Curry, Parotta with Salna, Onion Dosa, Uttapam, Kichadi, Veg Noodles, Chicken Fried Rice, Mutton Sukka with Chapati"

// FullMenuText returns the fixed three-section listing.
func FullMenuText() string {
	return fullMenuText
}
