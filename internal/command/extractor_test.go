package command

import (
	"errors"
	"testing"
)

func TestExtractTarget_QuotedLabel(t *testing.T) {
	step := Classify(1, `click on "Save As"`)
	label, err := ExtractTarget(step)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "Save As" {
		t.Fatalf("expected %q, got %q", "Save As", label)
	}
}

func TestExtractTarget_QuotedLabelIsOpaque(t *testing.T) {
	// A quoted label that happens to contain an action verb is returned
	// verbatim, not truncated.
	step := Classify(1, `click "Click here to open"`)
	label, err := ExtractTarget(step)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "Click here to open" {
		t.Fatalf("expected quoted text intact, got %q", label)
	}
}

func TestExtractTarget_AfterVerb(t *testing.T) {
	step := Classify(1, "click the Save button")
	label, err := ExtractTarget(step)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "Save button" {
		t.Fatalf("expected %q, got %q", "Save button", label)
	}
}

func TestExtractTarget_SpanishVerbPhrase(t *testing.T) {
	step := Classify(1, "haz clic en Guardar")
	label, err := ExtractTarget(step)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "Guardar" {
		t.Fatalf("expected %q, got %q", "Guardar", label)
	}
}

func TestExtractTarget_StopsAtNextVerb(t *testing.T) {
	step := Step{Ordinal: 1, Text: "click Save press enter", Kind: KindUIAction}
	label, err := ExtractTarget(step)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "Save" {
		t.Fatalf("expected %q, got %q", "Save", label)
	}
}

func TestExtractTarget_NoTarget(t *testing.T) {
	step := Classify(1, "click")
	if _, err := ExtractTarget(step); !errors.Is(err, ErrNoTarget) {
		t.Fatalf("expected ErrNoTarget, got %v", err)
	}
}

func TestExtractTarget_TypingUsesFocusTarget(t *testing.T) {
	step := Classify(1, "type hello in the name field")
	label, err := ExtractTarget(step)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if label != "name field" {
		t.Fatalf("expected %q, got %q", "name field", label)
	}
}

func TestExtractTarget_KeyComboHasNone(t *testing.T) {
	step := Classify(1, "press enter")
	if _, err := ExtractTarget(step); !errors.Is(err, ErrNoTarget) {
		t.Fatalf("expected ErrNoTarget for key combo, got %v", err)
	}
}
