package command

import (
	"strconv"
	"strings"
)

// defaultScrollAmount is the number of scroll clicks when the utterance
// doesn't specify one.
const defaultScrollAmount = 3

// Classify assigns an action kind to one step string. Predicates are
// evaluated in order, most specific first: keyboard-combo > scroll > typing >
// reference-action; anything unrecognized is a ui-element-action. Kind
// parameters (key list, typed payload, scroll direction) are filled in here;
// target labels are the extractor's job.
func Classify(ordinal int, text string) Step {
	step := Step{Ordinal: ordinal, Text: text}
	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		step.Kind = KindUIAction
		return step
	}
	first := normalizeToken(tokens[0])

	if keys, ok := keyCombo(first, tokens[1:]); ok {
		step.Kind = KindKeyCombo
		step.Keys = keys
		return step
	}

	if scrollVerbs[first] {
		step.Kind = KindScroll
		step.Direction, step.Amount = scrollParams(tokens[1:])
		return step
	}

	if typingVerbs[first] {
		step.Kind = KindTyping
		step.Payload, step.Target = typingParams(text, tokens)
		return step
	}

	if isReference(first, tokens[1:]) {
		step.Kind = KindReference
		return step
	}

	step.Kind = KindUIAction
	return step
}

// ClassifySteps classifies every step string with 1-based ordinals.
func ClassifySteps(texts []string) []Step {
	steps := make([]Step, 0, len(texts))
	for i, t := range texts {
		steps = append(steps, Classify(i+1, t))
	}
	return steps
}

// keyCombo reports whether a press-verb step names only keys and modifiers,
// and returns the canonical key list. "press the red button" fails here and
// falls through to ui-element-action.
func keyCombo(first string, rest []string) ([]string, bool) {
	if !pressVerbs[first] || len(rest) == 0 {
		return nil, false
	}
	var keys []string
	for _, tok := range rest {
		norm := normalizeToken(tok)
		if norm == "" || keyConnectors[norm] || norm == "key" || norm == "tecla" || norm == "the" || norm == "la" {
			continue
		}
		k, ok := canonicalKey(norm)
		if !ok {
			return nil, false
		}
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return nil, false
	}
	return keys, true
}

// scrollParams extracts direction and amount from scroll step tokens.
func scrollParams(rest []string) (string, int) {
	direction := "down"
	amount := defaultScrollAmount
	for _, tok := range rest {
		norm := normalizeToken(tok)
		switch keyNames[norm] {
		case "up", "down", "left", "right":
			direction = keyNames[norm]
			continue
		}
		if n, err := strconv.Atoi(norm); err == nil && n > 0 {
			amount = n
		}
	}
	return direction, amount
}

// typingParams splits a typing step into literal payload and optional focus
// target. The "<verb>, <text>" form is fully literal; otherwise a trailing
// "in <field>" / "en <field>" clause names the element to focus first.
func typingParams(text string, tokens []string) (payload, target string) {
	rest := strings.TrimSpace(text[len(tokens[0]):])
	if strings.HasSuffix(tokens[0], ",") {
		return rest, ""
	}
	if strings.HasPrefix(rest, ",") {
		return strings.TrimSpace(rest[1:]), ""
	}
	for _, sep := range []string{" in ", " into ", " en el ", " en la ", " en "} {
		if idx := strings.LastIndex(strings.ToLower(rest), sep); idx > 0 {
			return strings.TrimSpace(rest[:idx]), stripFillers(strings.TrimSpace(rest[idx+len(sep):]))
		}
	}
	return rest, ""
}

// stripFillers drops leading articles/prepositions from a label phrase.
func stripFillers(s string) string {
	tokens := strings.Fields(s)
	i := 0
	for i < len(tokens)-1 && fillerWords[normalizeToken(tokens[i])] {
		i++
	}
	return strings.Join(tokens[i:], " ")
}

// isReference reports whether a click-verb step targets a pronoun ("click
// it", "click there") instead of a named element.
func isReference(first string, rest []string) bool {
	if !clickVerbs[first] {
		return false
	}
	sawReference := false
	for _, tok := range rest {
		norm := normalizeToken(tok)
		if norm == "" || fillerWords[norm] || clickVerbs[norm] {
			continue
		}
		if !referenceWords[norm] {
			return false
		}
		sawReference = true
	}
	return sawReference
}
