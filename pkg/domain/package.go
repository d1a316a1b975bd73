package domain

import "strconv"

// PlaceholderLink is used for the booking button of packages that carry no
// booking link. It does not navigate anywhere.
const PlaceholderLink = "#"

// Price is the display value of a package price. Upstreams send either a
// JSON number or a free-form string such as "Contact for pricing"; Text keeps
// the value as received and Numeric records which of the two it was.
type Price struct {
	Text    string
	Numeric bool
}

// NumberPrice builds a numeric Price.
func NumberPrice(v float64) Price {
	return Price{Text: strconv.FormatFloat(v, 'f', -1, 64), Numeric: true}
}

// TextPrice builds a free-form Price.
func TextPrice(s string) Price {
	return Price{Text: s}
}

func (p Price) String() string { return p.Text }

// Package is a health-checkup offering from a hospital.
type Package struct {
	Hospital    string
	Price       Price
	Description string
	Features    []string
	// BookingLink is optional.
	BookingLink string
}

// Link returns the booking link or PlaceholderLink when there is none.
func (p Package) Link() string {
	if p.BookingLink == "" {
		return PlaceholderLink
	}

	return p.BookingLink
}
