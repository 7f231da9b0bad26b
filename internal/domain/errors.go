package domain

import "errors"

var (
	// Draft validation errors
	ErrInvalidType     = errors.New("transaction type must be income or expense")
	ErrMissingCategory = errors.New("category is required")
	ErrInvalidAmount   = errors.New("amount must be a positive number")
	ErrMissingDate     = errors.New("date is required")
	ErrMissingAccount  = errors.New("account is required")

	// Referential errors
	ErrInvalidAccount = errors.New("account not found for this user")

	// Not-found errors
	ErrTransactionNotFound = errors.New("transaction not found")

	// Configuration errors
	ErrNoAccounts = errors.New("no accounts configured for this user")

	// Identity errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrInvalidToken = errors.New("invalid session token")
	ErrExpiredToken = errors.New("session token expired")
)

// ErrorKind buckets errors into the categories callers act on.
type ErrorKind int

const (
	KindTransient ErrorKind = iota
	KindValidation
	KindReferential
	KindNotFound
	KindConfiguration
	KindUnauthorized
)

// String returns the kind as a lowercase label.
func (k ErrorKind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindReferential:
		return "referential"
	case KindNotFound:
		return "not_found"
	case KindConfiguration:
		return "configuration"
	case KindUnauthorized:
		return "unauthorized"
	default:
		return "transient"
	}
}

// Kind classifies an error. Anything unrecognized counts as a transient
// store failure: surfaced generically, logged with detail.
func Kind(err error) ErrorKind {
	switch {
	case errors.Is(err, ErrInvalidType),
		errors.Is(err, ErrMissingCategory),
		errors.Is(err, ErrInvalidAmount),
		errors.Is(err, ErrMissingDate),
		errors.Is(err, ErrMissingAccount):
		return KindValidation
	case errors.Is(err, ErrInvalidAccount):
		return KindReferential
	case errors.Is(err, ErrTransactionNotFound):
		return KindNotFound
	case errors.Is(err, ErrNoAccounts):
		return KindConfiguration
	case errors.Is(err, ErrUnauthorized),
		errors.Is(err, ErrInvalidToken),
		errors.Is(err, ErrExpiredToken):
		return KindUnauthorized
	default:
		return KindTransient
	}
}
