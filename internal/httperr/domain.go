package httperr

import "errors"

// Kind classifies a per-request rejection. Every kind is recoverable by the
// caller; none is fatal to the process.
type Kind string

const (
	KindValidation    Kind = "validation"
	KindAuthorization Kind = "authorization"
	KindNotFound      Kind = "not_found"
	KindConflict      Kind = "conflict"
	KindPolicy        Kind = "policy"
)

type DomainError struct {
	Kind Kind
	Code string
}

func (e DomainError) Error() string {
	return e.Code
}

func ErrValidation(code string) error    { return DomainError{Kind: KindValidation, Code: code} }
func ErrAuthorization(code string) error { return DomainError{Kind: KindAuthorization, Code: code} }
func ErrNotFound(code string) error      { return DomainError{Kind: KindNotFound, Code: code} }
func ErrConflict(code string) error      { return DomainError{Kind: KindConflict, Code: code} }
func ErrPolicy(code string) error        { return DomainError{Kind: KindPolicy, Code: code} }

func IsKind(err error, kind Kind) bool {
	var de DomainError
	if errors.As(err, &de) {
		return de.Kind == kind
	}
	return false
}

func CodeOf(err error) string {
	var de DomainError
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}
