package ggoerr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestErrorMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want []string
	}{
		{"not a repository", NewNotARepository(nil), []string{"not in a git repository", "from within"}},
		{"branch not found", NewBranchNotFound("feature/auth"), []string{"feature/auth", "not found", "git branch"}},
		{"no match fuzzy", NewNoMatchingBranches("xyz", true), []string{"no branches match pattern 'xyz'", "Try:", "shorter pattern", "-i"}},
		{"no match substring", NewNoMatchingBranches("xyz", false), []string{"--no-fuzzy"}},
		{"invalid name", NewInvalidName(NameBranch, "-bad", "cannot start with '-'"), []string{"invalid branch name", "-bad", "cannot start with '-'"}},
		{"alias stale", NewAliasStale("m", "master"), []string{"'m'", "'master'", "falling back"}},
		{"storage", NewStorage(errors.New("disk full")), []string{"database error", "disk full"}},
		{"checkout failed", NewCheckoutFailed("main", errors.New("uncommitted changes")), []string{"'main'", "uncommitted changes"}},
		{"no previous", NewNoPreviousBranch(), []string{"no previous branch", "ggo -"}},
		{"cancelled", NewCancelled(), []string{"cancelled"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			msg := tt.err.Error()
			for _, w := range tt.want {
				if !strings.Contains(msg, w) {
					t.Errorf("Error() = %q, want to contain %q", msg, w)
				}
			}
		})
	}
}

func TestNoMatchingBranchesFuzzyOmitsHint(t *testing.T) {
	t.Parallel()

	if msg := NewNoMatchingBranches("x", true).Error(); strings.Contains(msg, "--no-fuzzy") {
		t.Errorf("fuzzy error should not suggest enabling fuzzy: %q", msg)
	}
}

func TestIsKindThroughWrapping(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("resolve: %w", NewBranchNotFound("dev"))
	if !IsKind(err, BranchNotFound) {
		t.Errorf("IsKind(BranchNotFound) = false, want true")
	}
	if IsKind(err, Storage) {
		t.Errorf("IsKind(Storage) = true, want false")
	}
	if KindOf(errors.New("plain")) != 0 {
		t.Errorf("KindOf(plain) should be 0")
	}
	if !errors.Is(err, &Error{Kind: BranchNotFound}) {
		t.Errorf("errors.Is should match by kind")
	}
	if errors.Is(err, &Error{Kind: BranchNotFound, Name: "main"}) {
		t.Errorf("errors.Is should respect Name when set")
	}
}

func TestNewStorage(t *testing.T) {
	t.Parallel()

	if NewStorage(nil) != nil {
		t.Fatal("NewStorage(nil) should be nil")
	}

	cause := errors.New("locked")
	err := NewStorage(cause)
	if !errors.Is(err, cause) {
		t.Errorf("storage error should unwrap to cause")
	}
	if again := NewStorage(err); again != err {
		t.Errorf("NewStorage should not double wrap")
	}
}
