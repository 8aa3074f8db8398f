package command

import "strings"

// Segment splits one utterance into ordered step strings. It splits on
// sentence separators and action-verb boundaries, with one exception: an
// utterance of the form "<typing-verb>, <text>" where <text> does not start
// with a recognized action verb is a single typing step whose payload is the
// literal remainder. A merge pass re-attaches fragments split off a trailing
// "<typing-verb>," so literal text containing commas survives intact.
func Segment(utterance string) []string {
	utterance = strings.TrimSpace(utterance)
	if utterance == "" {
		return nil
	}

	if isTypingLiteral(utterance) {
		return []string{utterance}
	}

	fragments := mergeTypingFragments(splitSentences(utterance))

	var steps []string
	for _, frag := range fragments {
		if isTypingLiteral(frag) {
			steps = append(steps, frag)
			continue
		}
		steps = append(steps, splitOnVerbs(frag)...)
	}
	return steps
}

// isTypingLiteral reports whether s is "<typing-verb>, <text>" with <text>
// not itself starting a recognized action.
func isTypingLiteral(s string) bool {
	comma := strings.Index(s, ",")
	if comma <= 0 {
		return false
	}
	verb := normalizeToken(s[:comma])
	if !typingVerbs[verb] {
		return false
	}
	rest := strings.TrimSpace(s[comma+1:])
	if rest == "" {
		return false
	}
	first := normalizeToken(strings.Fields(rest)[0])
	return !isActionVerb(first)
}

// fragment pairs a sentence fragment with the separator that preceded it.
type fragment struct {
	text string
	sep  rune
}

// splitSentences splits on sentence separators, remembering which separator
// produced each fragment so the merge pass can distinguish commas.
func splitSentences(s string) []fragment {
	var frags []fragment
	var b strings.Builder
	lastSep := rune(0)
	flush := func(next rune) {
		text := strings.TrimSpace(b.String())
		if text != "" {
			frags = append(frags, fragment{text: text, sep: lastSep})
		}
		b.Reset()
		lastSep = next
	}
	for _, r := range s {
		switch r {
		case '.', ';', ',':
			flush(r)
		default:
			b.WriteRune(r)
		}
	}
	flush(0)
	return frags
}

// mergeTypingFragments re-attaches any fragment whose predecessor ends in a
// typing verb followed by a comma, so "escribe, hola, mundo" stays one step.
func mergeTypingFragments(frags []fragment) []string {
	var out []string
	for _, f := range frags {
		if len(out) > 0 && f.sep == ',' {
			prev := out[len(out)-1]
			fields := strings.Fields(prev)
			lastTok := normalizeToken(fields[len(fields)-1])
			firstTok := normalizeToken(strings.Fields(f.text)[0])
			if typingVerbs[lastTok] && !isActionVerb(firstTok) {
				out[len(out)-1] = prev + ", " + f.text
				continue
			}
			// A fragment already merged into a typing literal absorbs
			// further comma-separated pieces of the same payload.
			if isTypingLiteral(prev) {
				out[len(out)-1] = prev + ", " + f.text
				continue
			}
		}
		out = append(out, f.text)
	}
	return out
}

// splitOnVerbs splits a fragment into steps at action-verb boundaries:
// every recognized action verb past the first token opens a new step, so
// "press down press down press down" yields three steps. Contiguous verbs
// at a step's start are one verb phrase ("haz clic en Guardar"), not a
// boundary.
func splitOnVerbs(frag string) []string {
	tokens := strings.Fields(frag)
	var steps []string
	start := 0
	appendStep := func(toks []string) {
		if s := joinStep(toks); s != "" {
			steps = append(steps, s)
		}
	}
	for i, tok := range tokens {
		if i == start {
			continue
		}
		if isActionVerb(normalizeToken(tok)) && !allActionVerbs(tokens[start:i]) {
			appendStep(tokens[start:i])
			start = i
		}
	}
	if start < len(tokens) {
		appendStep(tokens[start:])
	}
	return steps
}

// allActionVerbs reports whether every token is a recognized action verb.
func allActionVerbs(tokens []string) bool {
	for _, tok := range tokens {
		if !isActionVerb(normalizeToken(tok)) {
			return false
		}
	}
	return true
}

// connectorWords are sequencing words dropped from step boundaries
// ("click Save and then click Cancel").
var connectorWords = map[string]bool{
	"and": true, "then": true, "y": true, "luego": true, "despues": true,
}

// joinStep joins tokens into a step string, dropping leading and trailing
// connectors. Returns "" when only connectors remain.
func joinStep(tokens []string) string {
	start, end := 0, len(tokens)
	for start < end && connectorWords[normalizeToken(tokens[start])] {
		start++
	}
	for end > start && connectorWords[normalizeToken(tokens[end-1])] {
		end--
	}
	return strings.Join(tokens[start:end], " ")
}
