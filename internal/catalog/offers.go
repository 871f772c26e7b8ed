package catalog

import "shopmate/internal/domain"

// Offers is the static weekly promotion set shown on the offers page.
var Offers = []domain.Offer{
	{ID: 1, Category: "bakery", Title: "Morning Bliss", Subtitle: "Fresh French Croissants", Discount: "25%",
		Desc: "Buttery, flaky, and baked fresh every morning. Perfect for your breakfast."},
	{ID: 2, Category: "dairy", Title: "Creamy Delight", Subtitle: "Imported Cheddar Cheese", Discount: "20%",
		Desc: "Aged for 12 months. Rich flavor that melts perfectly in your sandwiches."},
	{ID: 3, Category: "meat", Title: "Grill Master", Subtitle: "Premium Angus Beef", Discount: "18%",
		Desc: "Freshly minced, high-quality beef. Ideal for juicy burgers and kofta."},
	{ID: 4, Category: "fresh", Title: "Orchard Fresh", Subtitle: "Organic Red Apples", Discount: "15%",
		Desc: "Crisp, sweet, and hand-picked. Full of vitamins for a healthy snack."},
	{ID: 5, Category: "pantry", Title: "Italian Touch", Subtitle: "Premium Pasta Selection", Discount: "Buy 2 Get 1",
		Desc: "Authentic Italian pasta. Made from 100% durum wheat semolina."},
}

// OffersByCategory filters the offer set; "all" or empty returns everything.
func OffersByCategory(category string) []domain.Offer {
	if category == "" || category == "all" {
		out := make([]domain.Offer, len(Offers))
		copy(out, Offers)
		return out
	}
	out := []domain.Offer{}
	for _, o := range Offers {
		if o.Category == category {
			out = append(out, o)
		}
	}
	return out
}
