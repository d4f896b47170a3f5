package models

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Price pairs an amount with a display label. The label ("DH") is what the
// market writes on listings, not a validated ISO currency code.
type Price struct {
	Value    float64 `json:"value" bson:"value"`
	Currency string  `json:"currency" bson:"currency"`
}

var pricePrinter = message.NewPrinter(language.French)

// FormatPrice renders a price with French digit grouping followed by the
// listing's own currency label, e.g. "898 350 DH".
func FormatPrice(p Price) string {
	return pricePrinter.Sprintf("%v %s",
		number.Decimal(p.Value, number.MaxFractionDigits(0)), p.Currency)
}
