package binlist

import "fmt"

// Kind classifies a failed lookup.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindRateLimited
	KindBadRequest
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindRateLimited:
		return "rate_limited"
	case KindBadRequest:
		return "bad_request"
	default:
		return "internal_error"
	}
}

// LookupError is returned for every unsuccessful ResolveCountry call.
// Message carries the remote status text or the underlying error text.
type LookupError struct {
	Kind    Kind
	Message string
}

func (e *LookupError) Error() string {
	return fmt.Sprintf("binlist %s: %s", e.Kind, e.Message)
}
