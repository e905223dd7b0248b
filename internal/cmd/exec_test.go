package cmd

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/raphi011/ggo/internal/log"
)

func logCtx(buf *bytes.Buffer, verbose bool) context.Context {
	return log.WithLogger(context.Background(), log.New(buf, verbose, false))
}

func TestOutputContext(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		dir     string
		args    []string
		want    string
		wantErr string
	}{
		{name: "stdout", args: []string{"echo", "hello"}, want: "hello\n"},
		{name: "dir", dir: "/", args: []string{"pwd"}, want: "/\n"},
		{name: "stderr becomes error", args: []string{"sh", "-c", "echo 'bad thing' >&2; exit 1"}, wantErr: "bad thing"},
		{name: "exit status without stderr", args: []string{"sh", "-c", "exit 3"}, wantErr: "exit status 3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			out, err := OutputContext(logCtx(&bytes.Buffer{}, false), tt.dir, tt.args[0], tt.args[1:]...)
			if tt.wantErr != "" {
				if err == nil || err.Error() != tt.wantErr {
					t.Fatalf("OutputContext error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("OutputContext = %v, want nil", err)
			}
			if string(out) != tt.want {
				t.Errorf("OutputContext output = %q, want %q", out, tt.want)
			}
		})
	}
}

func TestRunContext_ContextCancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(logCtx(&bytes.Buffer{}, false))
	cancel()
	if err := RunContext(ctx, "", "sleep", "10"); !errors.Is(err, context.Canceled) {
		t.Errorf("RunContext error = %v, want context.Canceled", err)
	}
}

func TestRunContext_VerboseTrace(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := RunContext(logCtx(&buf, true), "/tmp", "true"); err != nil {
		t.Fatalf("RunContext = %v", err)
	}
	if !strings.Contains(buf.String(), "[/tmp] $ true") {
		t.Errorf("verbose trace = %q", buf.String())
	}
}
