// Package ggoerr defines the error kinds surfaced by ggo.
//
// Every failure a user can see is an [*Error] carrying a [Kind] and the
// structured fields for that kind. Messages are rendered lazily in
// [Error.Error] so callers can branch on the kind with [IsKind] instead of
// matching strings.
package ggoerr

import (
	"errors"
	"fmt"
	"strings"
)

// Kind identifies the category of an error.
type Kind int

const (
	NotARepository Kind = iota + 1
	BranchNotFound
	NoMatchingBranches
	InvalidName
	AliasStale
	Storage
	CheckoutFailed
	NoPreviousBranch
	Cancelled
)

func (k Kind) String() string {
	switch k {
	case NotARepository:
		return "not a repository"
	case BranchNotFound:
		return "branch not found"
	case NoMatchingBranches:
		return "no matching branches"
	case InvalidName:
		return "invalid name"
	case AliasStale:
		return "alias stale"
	case Storage:
		return "storage"
	case CheckoutFailed:
		return "checkout failed"
	case NoPreviousBranch:
		return "no previous branch"
	case Cancelled:
		return "cancelled"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// NameKind says which validator rejected an InvalidName error.
type NameKind string

const (
	NameBranch   NameKind = "branch name"
	NameAlias    NameKind = "alias name"
	NamePattern  NameKind = "pattern"
	NameRepoPath NameKind = "repository path"
)

// Error is the single error type returned across package boundaries.
// Only the fields relevant to Kind are populated.
type Error struct {
	Kind Kind

	Name     string   // BranchNotFound, CheckoutFailed, InvalidName (the offending value)
	Pattern  string   // NoMatchingBranches
	NameKind NameKind // InvalidName
	Reason   string   // InvalidName
	Alias    string   // AliasStale
	Target   string   // AliasStale
	Fuzzy    bool     // NoMatchingBranches: whether fuzzy matching was active

	Err error // Storage, CheckoutFailed, NotARepository
}

func (e *Error) Error() string {
	switch e.Kind {
	case NotARepository:
		return "not in a git repository\n\nRun this command from within a git repository."
	case BranchNotFound:
		return fmt.Sprintf("branch '%s' not found\n\nRun 'git branch' to see available branches.", e.Name)
	case NoMatchingBranches:
		var b strings.Builder
		fmt.Fprintf(&b, "no branches match pattern '%s'\n\nTry:\n", e.Pattern)
		b.WriteString("  - Using a shorter pattern\n")
		b.WriteString("  - Running 'ggo --list \"\"' to see all branches\n")
		b.WriteString("  - Using case-insensitive mode with '-i'")
		if !e.Fuzzy {
			b.WriteString("\n  - Enabling fuzzy matching (remove --no-fuzzy)")
		}
		return b.String()
	case InvalidName:
		return fmt.Sprintf("invalid %s: %q\n\n%s", e.NameKind, e.Name, e.Reason)
	case AliasStale:
		return fmt.Sprintf("alias '%s' points to non-existent branch '%s'; falling back to pattern matching", e.Alias, e.Target)
	case Storage:
		return fmt.Sprintf("database error: %v", e.Err)
	case CheckoutFailed:
		return fmt.Sprintf("failed to checkout branch '%s': %v", e.Name, e.Err)
	case NoPreviousBranch:
		return "no previous branch found\n\nYou need to switch branches at least once before using 'ggo -'."
	case Cancelled:
		return "selection cancelled"
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error of the same kind, so errors.Is(err, &Error{Kind: k})
// works for sentinels built with the constructors below.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind && (t.Name == "" || t.Name == e.Name)
}

// KindOf returns the kind of the first *Error in err's chain, or 0.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}

// IsKind reports whether err's chain contains an *Error of the given kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

func NewNotARepository(cause error) *Error {
	return &Error{Kind: NotARepository, Err: cause}
}

func NewBranchNotFound(name string) *Error {
	return &Error{Kind: BranchNotFound, Name: name}
}

func NewNoMatchingBranches(pattern string, fuzzy bool) *Error {
	return &Error{Kind: NoMatchingBranches, Pattern: pattern, Fuzzy: fuzzy}
}

func NewInvalidName(kind NameKind, value, reason string) *Error {
	return &Error{Kind: InvalidName, NameKind: kind, Name: value, Reason: reason}
}

func NewAliasStale(alias, target string) *Error {
	return &Error{Kind: AliasStale, Alias: alias, Target: target}
}

// NewStorage wraps a datastore failure. A nil cause yields nil so call sites
// can wrap unconditionally.
func NewStorage(cause error) error {
	if cause == nil {
		return nil
	}
	var e *Error
	if errors.As(cause, &e) && e.Kind == Storage {
		return cause
	}
	return &Error{Kind: Storage, Err: cause}
}

func NewCheckoutFailed(branch string, cause error) *Error {
	return &Error{Kind: CheckoutFailed, Name: branch, Err: cause}
}

func NewNoPreviousBranch() *Error {
	return &Error{Kind: NoPreviousBranch}
}

func NewCancelled() *Error {
	return &Error{Kind: Cancelled}
}
