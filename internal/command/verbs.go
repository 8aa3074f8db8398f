package command

import "strings"

// Localized verb and keyword tables. Utterances may arrive in English or
// Spanish depending on the transcription locale; quoted target labels are
// opaque and never run through these tables.

var typingVerbs = map[string]bool{
	"type": true, "write": true, "input": true,
	"escribe": true, "teclea": true, "ingresa": true,
}

var pressVerbs = map[string]bool{
	"press": true, "hit": true,
	"presiona": true, "pulsa": true, "oprime": true,
}

var clickVerbs = map[string]bool{
	"click": true, "tap": true, "select": true, "choose": true, "open": true,
	"clic": true, "cliquea": true, "haz": true, "selecciona": true, "elige": true, "abre": true,
}

var scrollVerbs = map[string]bool{
	"scroll": true, "desplaza": true, "desplazate": true,
}

// referenceWords are pronoun-like targets resolved against the session's
// last resolved coordinate rather than a fresh search.
var referenceWords = map[string]bool{
	"it": true, "there": true, "that": true, "here": true,
	"ahi": true, "alli": true, "eso": true, "esto": true, "aqui": true,
}

// keyNames maps spoken key words to canonical key tokens understood by the
// action-primitive layer.
var keyNames = map[string]string{
	"enter": "enter", "return": "enter", "intro": "enter",
	"tab": "tab", "tabulador": "tab",
	"escape": "escape", "esc": "escape",
	"space": "space", "espacio": "space",
	"up": "up", "arriba": "up",
	"down": "down", "abajo": "down",
	"left": "left", "izquierda": "left",
	"right": "right", "derecha": "right",
	"delete": "delete", "suprimir": "delete",
	"backspace": "backspace", "borrar": "backspace",
	"home": "home", "inicio": "home",
	"end": "end", "fin": "end",
	"pageup": "pageup", "pagedown": "pagedown",
	"f1": "f1", "f2": "f2", "f3": "f3", "f4": "f4", "f5": "f5", "f6": "f6",
	"f7": "f7", "f8": "f8", "f9": "f9", "f10": "f10", "f11": "f11", "f12": "f12",
}

// modifierNames maps spoken modifier words to canonical modifier tokens.
var modifierNames = map[string]string{
	"ctrl": "ctrl", "control": "ctrl",
	"alt": "alt", "option": "alt",
	"shift": "shift", "mayus": "shift",
	"cmd": "cmd", "command": "cmd", "comando": "cmd",
	"win": "win", "windows": "win", "super": "win",
}

// keyConnectors are ignorable tokens inside a key combination ("ctrl and c").
var keyConnectors = map[string]bool{
	"and": true, "y": true, "+": true, "plus": true, "mas": true,
}

// fillerWords are leading articles/prepositions stripped from extracted
// target labels ("click on the Save button" -> "Save button").
var fillerWords = map[string]bool{
	"on": true, "in": true, "the": true, "a": true, "an": true, "to": true,
	"el": true, "la": true, "los": true, "las": true, "un": true, "una": true,
	"al": true, "en": true, "sobre": true,
}

// normalizeToken lowercases a token and strips surrounding punctuation and
// common Spanish accents so verb lookups work on transcribed speech.
func normalizeToken(tok string) string {
	tok = strings.Trim(strings.ToLower(tok), ".,;:!?¡¿")
	replacer := strings.NewReplacer("á", "a", "é", "e", "í", "i", "ó", "o", "ú", "u")
	return replacer.Replace(tok)
}

// isActionVerb reports whether a normalized token starts any recognized step.
func isActionVerb(tok string) bool {
	return typingVerbs[tok] || pressVerbs[tok] || clickVerbs[tok] || scrollVerbs[tok]
}

// canonicalKey resolves a token to a key or modifier name, if it is one.
func canonicalKey(tok string) (string, bool) {
	if k, ok := modifierNames[tok]; ok {
		return k, true
	}
	if k, ok := keyNames[tok]; ok {
		return k, true
	}
	// Single letters and digits are valid combo members ("press ctrl c").
	if len(tok) == 1 && (tok[0] >= 'a' && tok[0] <= 'z' || tok[0] >= '0' && tok[0] <= '9') {
		return tok, true
	}
	return "", false
}
