package stew

import "fmt"

// ArgumentError is raised when a sort initialisation, generator or operation
// is applied with inappropriate arguments: wrong arity, a wrong-sorted
// argument, or (at specification-load time) a guard whose codomain is not
// Boolean.
type ArgumentError struct {
	msg string
}

// NewArgumentError constructs an ArgumentError with a formatted message.
func NewArgumentError(format string, args ...any) *ArgumentError {
	return &ArgumentError{fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return e.msg
}

// SortError is raised when a self-reference made during a sort's
// declaration (e.g. a generator domain naming the sort being declared)
// cannot be resolved once the sort's declaration has finished.
type SortError struct {
	msg  string
	sort string
}

// NewSortError constructs a SortError naming the offending sort.
func NewSortError(sort string, format string, args ...any) *SortError {
	return &SortError{fmt.Sprintf(format, args...), sort}
}

// Sort returns the name of the sort whose self-reference could not be
// resolved.
func (e *SortError) Sort() string {
	return e.sort
}

// Error implements the error interface.
func (e *SortError) Error() string {
	return e.msg
}

// StewError is raised when a sort, generator or operation is registered
// under a name already taken in the signature registry.
type StewError struct {
	msg  string
	name string
}

// NewStewError constructs a StewError naming the duplicated name.
func NewStewError(name string, format string, args ...any) *StewError {
	return &StewError{fmt.Sprintf(format, args...), name}
}

// Name returns the name which was already registered.
func (e *StewError) Name() string {
	return e.name
}

// Error implements the error interface.
func (e *StewError) Error() string {
	return e.msg
}

// RewritingError is raised when no rule of an operation applies to its
// (normalised) arguments.
type RewritingError struct {
	operation string
}

// NewRewritingError constructs a RewritingError naming the operation whose
// rules were all exhausted.
func NewRewritingError(operation string) *RewritingError {
	return &RewritingError{operation}
}

// Operation returns the qualified name of the operation which could not be
// rewritten.
func (e *RewritingError) Operation() string {
	return e.operation
}

// Error implements the error interface.
func (e *RewritingError) Error() string {
	return fmt.Sprintf("no rule of `%s` applies to the given arguments", e.operation)
}

// TranslationError is raised when the optional external translator cannot
// map a construct into its output format.
type TranslationError struct {
	msg string
}

// NewTranslationError constructs a TranslationError with a formatted message.
func NewTranslationError(format string, args ...any) *TranslationError {
	return &TranslationError{fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *TranslationError) Error() string {
	return e.msg
}
