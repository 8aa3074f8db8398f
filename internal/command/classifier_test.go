package command

import "testing"

func TestClassify_PressEnter(t *testing.T) {
	step := Classify(1, "Press Enter")
	if step.Kind != KindKeyCombo {
		t.Fatalf("expected keyboard-combo, got %s", step.Kind)
	}
	if len(step.Keys) != 1 || step.Keys[0] != "enter" {
		t.Fatalf("expected keys [enter], got %v", step.Keys)
	}
}

func TestClassify_PressComboWithModifier(t *testing.T) {
	step := Classify(1, "press ctrl and c")
	if step.Kind != KindKeyCombo {
		t.Fatalf("expected keyboard-combo, got %s", step.Kind)
	}
	if len(step.Keys) != 2 || step.Keys[0] != "ctrl" || step.Keys[1] != "c" {
		t.Fatalf("expected keys [ctrl c], got %v", step.Keys)
	}
}

func TestClassify_SpanishKeyPress(t *testing.T) {
	step := Classify(1, "presiona abajo")
	if step.Kind != KindKeyCombo {
		t.Fatalf("expected keyboard-combo, got %s", step.Kind)
	}
	if len(step.Keys) != 1 || step.Keys[0] != "down" {
		t.Fatalf("expected keys [down], got %v", step.Keys)
	}
}

func TestClassify_PressNamedButtonIsUIAction(t *testing.T) {
	// "press" followed by non-key words falls through to element action.
	step := Classify(1, "press the red button")
	if step.Kind != KindUIAction {
		t.Fatalf("expected ui-element-action, got %s", step.Kind)
	}
}

func TestClassify_Scroll(t *testing.T) {
	step := Classify(1, "scroll up 5")
	if step.Kind != KindScroll {
		t.Fatalf("expected scroll, got %s", step.Kind)
	}
	if step.Direction != "up" || step.Amount != 5 {
		t.Fatalf("expected up/5, got %s/%d", step.Direction, step.Amount)
	}
}

func TestClassify_ScrollDefaults(t *testing.T) {
	step := Classify(1, "scroll")
	if step.Direction != "down" || step.Amount != defaultScrollAmount {
		t.Fatalf("expected default down/%d, got %s/%d", defaultScrollAmount, step.Direction, step.Amount)
	}
}

func TestClassify_TypingLiteral(t *testing.T) {
	step := Classify(1, "Type, hello world")
	if step.Kind != KindTyping {
		t.Fatalf("expected typing, got %s", step.Kind)
	}
	if step.Payload != "hello world" {
		t.Fatalf("expected payload %q, got %q", "hello world", step.Payload)
	}
	if step.Target != "" {
		t.Fatalf("literal typing must not carry a focus target, got %q", step.Target)
	}
}

func TestClassify_TypingWithFocusTarget(t *testing.T) {
	step := Classify(1, "type golang tutorials in the search box")
	if step.Kind != KindTyping {
		t.Fatalf("expected typing, got %s", step.Kind)
	}
	if step.Payload != "golang tutorials" {
		t.Fatalf("expected payload %q, got %q", "golang tutorials", step.Payload)
	}
	if step.Target != "search box" {
		t.Fatalf("expected target %q, got %q", "search box", step.Target)
	}
}

func TestClassify_Reference(t *testing.T) {
	for _, text := range []string{"click it", "click there", "haz clic ahí"} {
		step := Classify(1, text)
		if step.Kind != KindReference {
			t.Fatalf("%q: expected reference-action, got %s", text, step.Kind)
		}
	}
}

func TestClassify_DefaultUIAction(t *testing.T) {
	step := Classify(1, "click the Save button")
	if step.Kind != KindUIAction {
		t.Fatalf("expected ui-element-action, got %s", step.Kind)
	}
}

func TestClassifySteps_Ordinals(t *testing.T) {
	steps := ClassifySteps([]string{"press enter", "click Save"})
	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
	if steps[0].Ordinal != 1 || steps[1].Ordinal != 2 {
		t.Fatalf("expected ordinals 1,2, got %d,%d", steps[0].Ordinal, steps[1].Ordinal)
	}
}
