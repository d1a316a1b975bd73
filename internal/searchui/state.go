package searchui

import "checkups/pkg/domain"

type State struct {
	// Query is the raw content of the search field.
	Query   string
	Loading bool
	Panel   Panel
	// Seq is the sequence number of the latest search.
	Seq uint64
}

// Panel is the content of the results area: PanelNone, PanelResults,
// PanelEmpty or PanelError.
type Panel interface {
	isPanel()
}

type PanelNone struct{}

type PanelResults struct {
	Packages []domain.Package
}

// PanelEmpty is shown for a successful search without packages.
type PanelEmpty struct{}

type PanelError struct {
	Message string
}

func (PanelNone) isPanel()    {}
func (PanelResults) isPanel() {}
func (PanelEmpty) isPanel()   {}
func (PanelError) isPanel()   {}

var (
	// EmptySuggestions are listed when no packages match.
	EmptySuggestions = []string{ //nolint: gochecknoglobals
		"Using different keywords",
		"Broadening your search criteria",
		"Checking the spelling of hospital names",
	}
)

const (
	EmptyTitle   = "No Packages Found"
	EmptyMessage = "No health packages found matching your criteria. Please try:"
	ErrorTitle   = "Error!"
	ErrorFooter  = "Please try again or contact support if the problem persists."
	BookLabel    = "Book Now"
	Currency     = "₹"
)
