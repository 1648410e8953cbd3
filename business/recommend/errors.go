package recommend

import "errors"

var (
	// ErrInsufficientInput is returned before any upstream call when the
	// request carries fewer than the minimum number of liked items.
	ErrInsufficientInput = errors.New("at least 3 liked items are required")

	// ErrNoCandidates is the exhaustion outcome: every candidate was
	// rejected, already recommended, or the catalog returned nothing. Not a
	// failure; handlers translate it into an empty result with a message.
	ErrNoCandidates = errors.New("no suitable recommendations found")
)

// ExhaustionMessage is the user-facing notice for the empty outcome.
const ExhaustionMessage = "That's all the recommendations we have for now! " +
	"We've explored the best matches for your preferences. " +
	"Try different picks or check your watchlist."
