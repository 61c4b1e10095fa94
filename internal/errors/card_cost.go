package errors

// Sentinels for errors.Is checks. Their messages are generic; the service
// returns errors with the same code and a specific message.
var (
	ErrInvalidArgument = &DomainError{
		Code:    CodeInvalidArgument,
		Message: "invalid argument",
	}
	ErrNotFound = &DomainError{
		Code:    CodeNotFound,
		Message: "not found",
	}
	ErrConflict = &DomainError{
		Code:    CodeConflict,
		Message: "conflict",
	}
	ErrRateLimited = &DomainError{
		Code:    CodeRateLimited,
		Message: "too many requests",
	}
	ErrUpstream = &DomainError{
		Code:    CodeUpstream,
		Message: "upstream error",
	}
)
