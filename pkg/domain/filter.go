package domain

// Filter is a category shortcut that expands into a canned query phrase.
type Filter string

const (
	FilterElderly       Filter = "elderly"
	FilterChildren      Filter = "children"
	FilterWomen         Filter = "women"
	FilterBasic         Filter = "basic"
	FilterComprehensive Filter = "comprehensive"
)

var filterPhrases = map[Filter]string{ //nolint: gochecknoglobals
	FilterElderly:       "Find comprehensive health checkup packages for elderly people",
	FilterChildren:      "Find health checkup packages suitable for children",
	FilterWomen:         "Find women's health checkup packages",
	FilterBasic:         "Find basic health checkup packages",
	FilterComprehensive: "Find comprehensive health checkup packages",
}

// Filters lists the known category shortcuts in display order.
func Filters() []Filter {
	return []Filter{FilterElderly, FilterChildren, FilterWomen, FilterBasic, FilterComprehensive}
}

// Phrase returns the canned query for the filter. ok is false for unknown
// filters, in which case phrase is empty.
func (f Filter) Phrase() (phrase string, ok bool) {
	phrase, ok = filterPhrases[f]

	return phrase, ok
}
