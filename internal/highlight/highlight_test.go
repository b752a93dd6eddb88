package highlight

import (
	"strings"
	"testing"
)

func joinSpans(spans []Span) string {
	var b strings.Builder
	for _, sp := range spans {
		b.WriteString(sp.Text)
	}
	return b.String()
}

func TestLine_PreservesText(t *testing.T) {
	line := "func main() { return }"
	spans := Line("main.go", line)
	if got := joinSpans(spans); got != line {
		t.Fatalf("spans reassemble to %q, want %q", got, line)
	}
	if len(spans) < 2 {
		t.Fatalf("expected multiple spans for Go source, got %d", len(spans))
	}
	styled := false
	for _, sp := range spans {
		if sp.Color != "" || sp.Bold {
			styled = true
		}
	}
	if !styled {
		t.Fatal("expected at least one styled span for a keyword line")
	}
}

func TestLine_UnknownFileDegrades(t *testing.T) {
	line := "some opaque bytes"
	spans := Line("data.xyzzy", line)
	if got := joinSpans(spans); got != line {
		t.Fatalf("spans reassemble to %q, want %q", got, line)
	}
}

func TestLine_Empty(t *testing.T) {
	if spans := Line("main.go", ""); spans != nil {
		t.Fatalf("empty line should yield no spans, got %v", spans)
	}
}
