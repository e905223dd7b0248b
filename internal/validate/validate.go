// Package validate checks user-supplied names before ggo acts on them.
//
// Each validator returns nil or an InvalidName [ggoerr.Error] whose Reason
// says what is wrong. Failures are input errors and are never retried.
package validate

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"unicode"

	"github.com/raphi011/ggo/internal/ggoerr"
)

// Length limits in bytes.
const (
	MaxBranchNameLength = 255
	MaxPatternLength    = 255
	MaxAliasLength      = 50
	MaxRepoPathLength   = 4096
)

// ReservedAliases are subcommand and flag names an alias may not shadow.
var ReservedAliases = []string{"stats", "alias", "list", "remove", "cleanup", "config", "completion"}

// BranchName applies git's ref-name rules that matter for checkout.
func BranchName(name string) error {
	fail := func(reason string) error {
		return ggoerr.NewInvalidName(ggoerr.NameBranch, name, reason)
	}

	switch {
	case name == "":
		return fail("Branch name cannot be empty")
	case len(name) > MaxBranchNameLength:
		return fail(fmt.Sprintf("Branch name too long (max %d characters)", MaxBranchNameLength))
	case strings.ContainsAny(name, "\x00\n\r"):
		return fail("Branch name contains invalid characters (null, newline, or carriage return)")
	case strings.HasPrefix(name, "-"):
		return fail("Branch name cannot start with '-' (conflicts with git flags)")
	case strings.HasPrefix(name, "."):
		return fail("Branch name cannot start with '.'")
	case strings.Contains(name, ".."):
		return fail("Branch name cannot contain '..'")
	case strings.HasSuffix(name, "/"):
		return fail("Branch name cannot end with '/'")
	case strings.HasSuffix(name, "."):
		return fail("Branch name cannot end with '.'")
	case strings.HasSuffix(name, ".lock"):
		return fail("Branch name cannot end with '.lock'")
	case strings.Contains(name, "//"):
		return fail("Branch name cannot contain '//'")
	case strings.Contains(name, " "):
		return fail("Branch name cannot contain spaces")
	case strings.Contains(name, "@{"):
		return fail("Branch name cannot contain '@{' (git revision syntax)")
	case strings.ContainsAny(name, "~^:"):
		return fail("Branch name cannot contain '~', '^' or ':' (git revision syntax)")
	case strings.ContainsAny(name, "?*["):
		return fail("Branch name cannot contain wildcards (?, *, [)")
	case strings.Contains(name, `\`):
		return fail("Branch name cannot contain '\\'")
	}
	return nil
}

// Pattern accepts anything short enough and free of NUL bytes.
// The empty pattern is valid and matches every branch.
func Pattern(pattern string) error {
	if len(pattern) > MaxPatternLength {
		return ggoerr.NewInvalidName(ggoerr.NamePattern, pattern,
			fmt.Sprintf("Search pattern too long (max %d characters)", MaxPatternLength))
	}
	if strings.ContainsRune(pattern, 0) {
		return ggoerr.NewInvalidName(ggoerr.NamePattern, pattern, "Search pattern contains null bytes")
	}
	return nil
}

// AliasName is stricter than BranchName: letters, digits, '-' and '_' only.
func AliasName(alias string) error {
	fail := func(reason string) error {
		return ggoerr.NewInvalidName(ggoerr.NameAlias, alias, reason)
	}

	if alias == "" {
		return fail("Alias name cannot be empty")
	}
	if len(alias) > MaxAliasLength {
		return fail(fmt.Sprintf("Alias name too long (max %d characters)", MaxAliasLength))
	}
	if strings.HasPrefix(alias, "-") {
		return fail("Alias name cannot start with '-' (conflicts with command flags)")
	}
	if slices.Contains(ReservedAliases, alias) {
		return fail(fmt.Sprintf("Alias name '%s' is reserved and cannot be used", alias))
	}
	for _, r := range alias {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-' && r != '_' {
			return fail("Alias name must contain only letters, digits, dash (-), or underscore (_)")
		}
	}
	return nil
}

// RepoPath requires an absolute path to an existing directory.
func RepoPath(path string) error {
	fail := func(reason string) error {
		return ggoerr.NewInvalidName(ggoerr.NameRepoPath, path, reason)
	}

	if path == "" {
		return fail("Repository path cannot be empty")
	}
	if len(path) > MaxRepoPathLength {
		return fail(fmt.Sprintf("Repository path too long (max %d characters)", MaxRepoPathLength))
	}
	if strings.ContainsRune(path, 0) {
		return fail("Repository path contains null bytes")
	}
	if !filepath.IsAbs(path) {
		return fail("Repository path must be absolute")
	}
	info, err := os.Stat(path)
	if err != nil {
		return fail(fmt.Sprintf("Repository path does not exist: %s", path))
	}
	if !info.IsDir() {
		return fail(fmt.Sprintf("Repository path is not a directory: %s", path))
	}
	return nil
}
