package domain

// SearchResult is the outcome of one search round-trip. It is either a
// success carrying an ordered list of packages or a failure carrying a
// message, never both. The zero value is an empty success.
type SearchResult struct {
	packages []Package
	message  string
	failed   bool
}

// Success builds a successful result. Zero packages is a valid success
// meaning nothing matched.
func Success(packages ...Package) SearchResult {
	return SearchResult{packages: packages}
}

// Failure builds a failed result carrying a user-facing message.
func Failure(message string) SearchResult {
	return SearchResult{message: message, failed: true}
}

// Failed reports whether r is a failure.
func (r SearchResult) Failed() bool { return r.failed }

// Packages returns the packages of a success, nil for a failure.
func (r SearchResult) Packages() []Package {
	if r.failed {
		return nil
	}

	return r.packages
}

// Message returns the failure message, empty for a success.
func (r SearchResult) Message() string { return r.message }

// Outcome classifies r for history and metrics.
func (r SearchResult) Outcome() Outcome {
	switch {
	case r.failed:
		return OutcomeError
	case len(r.packages) == 0:
		return OutcomeEmpty
	default:
		return OutcomeSuccess
	}
}
