package app

import (
	"strings"
	"testing"

	xansi "github.com/charmbracelet/x/ansi"
)

func TestDescriptionStyleDisablesDocumentOuterMargins(t *testing.T) {
	cfg := descriptionStyle()
	if cfg.Document.StylePrimitive.BlockPrefix != "" {
		t.Fatalf("expected empty document block prefix, got %q", cfg.Document.StylePrimitive.BlockPrefix)
	}
	if cfg.Document.Margin == nil || *cfg.Document.Margin != 0 {
		t.Fatalf("expected document margin 0")
	}
}

func TestRenderDescriptionKeepsTextWithinWidth(t *testing.T) {
	out := renderDescription("Work every **major** muscle group with a short circuit of bodyweight moves.", 30)
	plain := xansi.Strip(out)
	if !strings.Contains(plain, "major") {
		t.Fatalf("expected rendered text, got %q", plain)
	}
	if strings.Contains(plain, "**") {
		t.Fatalf("expected markdown emphasis to be rendered, got %q", plain)
	}
	for _, line := range strings.Split(out, "\n") {
		if w := xansi.StringWidth(line); w > 30 {
			t.Fatalf("line exceeds width (%d): %q", w, xansi.Strip(line))
		}
	}
}

func TestRenderDescriptionEmpty(t *testing.T) {
	if got := renderDescription("   ", 40); got != "" {
		t.Fatalf("expected empty output, got %q", got)
	}
}
