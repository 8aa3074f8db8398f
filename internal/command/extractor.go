package command

import (
	"errors"
	"strings"
)

// ErrNoTarget is returned when no extraction pattern yields target text.
// Callers record it and move on; a target is never invented.
var ErrNoTarget = errors.New("no target label in step")

// quotePairs are the quote styles accepted around a literal target label.
var quotePairs = [][2]string{
	{`"`, `"`}, {`'`, `'`}, {"“", "”"}, {"«", "»"},
}

// ExtractTarget pulls the literal label describing a step's target element
// using deterministic patterns: quoted text right after the verb, else
// everything after the verb up to the next recognized action verb. Label
// text is opaque: it is returned exactly as written, never translated or
// reworded.
func ExtractTarget(step Step) (string, error) {
	switch step.Kind {
	case KindTyping:
		if step.Target != "" {
			return step.Target, nil
		}
		return "", ErrNoTarget
	case KindUIAction:
	default:
		return "", ErrNoTarget
	}

	tokens := strings.Fields(step.Text)
	if len(tokens) == 0 {
		return "", ErrNoTarget
	}

	// Skip leading action verbs if present; a verb phrase may span more
	// than one token ("haz clic"). Unknown leading words are kept since
	// the whole step may be just the label ("Save button").
	rest := tokens
	for len(rest) > 0 && isActionVerb(normalizeToken(rest[0])) {
		rest = rest[1:]
	}
	if len(rest) == 0 {
		return "", ErrNoTarget
	}
	restText := strings.Join(rest, " ")

	if quoted, ok := quotedText(restText); ok {
		return quoted, nil
	}

	// Everything up to the next action verb, minus leading fillers.
	var kept []string
	for _, tok := range rest {
		if isActionVerb(normalizeToken(tok)) {
			break
		}
		if len(kept) == 0 && fillerWords[normalizeToken(tok)] {
			continue
		}
		kept = append(kept, tok)
	}
	if len(kept) == 0 {
		return "", ErrNoTarget
	}
	return strings.Join(kept, " "), nil
}

// quotedText returns the first quoted span in s, if any.
func quotedText(s string) (string, bool) {
	for _, pair := range quotePairs {
		start := strings.Index(s, pair[0])
		if start < 0 {
			continue
		}
		end := strings.Index(s[start+len(pair[0]):], pair[1])
		if end < 0 {
			continue
		}
		quoted := s[start+len(pair[0]) : start+len(pair[0])+end]
		if strings.TrimSpace(quoted) != "" {
			return quoted, true
		}
	}
	return "", false
}
