package output

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/charmbracelet/colorprofile"
)

func TestFromContext(t *testing.T) {
	t.Parallel()

	t.Run("attached printer", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		want := New(&buf)
		ctx := WithPrinter(context.Background(), want)
		if got := FromContext(ctx); got != want {
			t.Error("FromContext should return the attached printer")
		}
	})

	t.Run("defaults to a terminal printer on stdout", func(t *testing.T) {
		t.Parallel()
		w, ok := FromContext(context.Background()).Writer().(*colorprofile.Writer)
		if !ok {
			t.Fatalf("default writer should downsample colours, got %T", FromContext(context.Background()).Writer())
		}
		if w.Forward != os.Stdout {
			t.Error("default printer should forward to os.Stdout")
		}
	})
}

func TestPrinter(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	p := New(&buf)

	p.Print("Switched to branch ", "'main'")
	p.Println()
	p.Printf("Removed %d old branch records\n", 3)
	p.Println("(2 matches)")

	want := "Switched to branch 'main'\nRemoved 3 old branch records\n(2 matches)\n"
	if got := buf.String(); got != want {
		t.Errorf("printer wrote %q, want %q", got, want)
	}
}

func TestNewTerminal_StripsStylingForFiles(t *testing.T) {
	t.Parallel()

	f, err := os.Create(t.TempDir() + "/out.txt")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	p := NewTerminal(f, []string{"TERM=xterm-256color"})
	p.Print("\x1b[1mbold\x1b[0m")

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatal(err)
	}
	if got := string(data); got != "bold" {
		t.Errorf("file output = %q, want styling stripped", got)
	}
}
