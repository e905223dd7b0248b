package validate

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/raphi011/ggo/internal/ggoerr"
)

func TestBranchName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		wantErr bool
	}{
		{"feature/auth", false},
		{"main", false},
		{"bugfix-123", false},
		{"feature/issue-#123_v2.0", false},
		{"feature/🚀-rocket", false},
		{"", true},
		{strings.Repeat("a", MaxBranchNameLength+1), true},
		{"-bad", true},
		{".hidden", true},
		{"has..dots", true},
		{"trailing/", true},
		{"trailing.", true},
		{"refs.lock", true},
		{"double//slash", true},
		{"has space", true},
		{"rev@{1}", true},
		{"tilde~1", true},
		{"caret^", true},
		{"colon:ref", true},
		{"glob*", true},
		{"q?", true},
		{"br[acket", true},
		{"new\nline", true},
		{`back\slash`, true},
	}

	for _, tt := range tests {
		err := BranchName(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("BranchName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if err != nil && !ggoerr.IsKind(err, ggoerr.InvalidName) {
			t.Errorf("BranchName(%q) kind = %v, want InvalidName", tt.name, ggoerr.KindOf(err))
		}
	}
}

func TestPattern(t *testing.T) {
	t.Parallel()

	for _, p := range []string{"", "feat", "FEAT/*", "日本"} {
		if err := Pattern(p); err != nil {
			t.Errorf("Pattern(%q) = %v, want nil", p, err)
		}
	}
	for _, p := range []string{strings.Repeat("x", MaxPatternLength+1), "a\x00b"} {
		if err := Pattern(p); err == nil {
			t.Errorf("Pattern(%q) = nil, want error", p)
		}
	}
}

func TestAliasName(t *testing.T) {
	t.Parallel()

	tests := []struct {
		alias   string
		wantErr bool
	}{
		{"m", false},
		{"my-alias_2", false},
		{"café", false},
		{"", true},
		{strings.Repeat("a", MaxAliasLength+1), true},
		{"-x", true},
		{"stats", true},
		{"list", true},
		{"has/slash", true},
		{"has space", true},
		{"dot.ted", true},
	}

	for _, tt := range tests {
		err := AliasName(tt.alias)
		if (err != nil) != tt.wantErr {
			t.Errorf("AliasName(%q) error = %v, wantErr %v", tt.alias, err, tt.wantErr)
		}
	}
}

func TestRepoPath(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	if err := os.WriteFile(file, nil, 0644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path    string
		wantErr bool
	}{
		{dir, false},
		{"", true},
		{"relative/path", true},
		{filepath.Join(dir, "missing"), true},
		{file, true},
		{"/a\x00b", true},
	}

	for _, tt := range tests {
		err := RepoPath(tt.path)
		if (err != nil) != tt.wantErr {
			t.Errorf("RepoPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
		}
	}
}
