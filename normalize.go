// normalize.go — text normalization ahead of tokenization.
//
// WHAT THIS MODULE DOES
// ======================
// Before an address string can be tokenized it is rewritten by a fixed,
// ordered list of regex substitutions that strip information which would
// otherwise confuse the grammar: parenthetical clarifications, locality
// names, orientation markers, stray punctuation and trailing dashes. A
// second pass separates letter runs that are glued directly to a digit
// run ("Tucuman123" -> "Tucuman 123") so that the tokenizer — which
// classifies whitespace-delimited fragments, not arbitrary substrings —
// sees them as two fragments instead of one unclassifiable blob.
//
// Every rule here is a straight value-preserving rewrite: noise removed
// or whitespace inserted. The result is collapsed to single spaces and
// trimmed; finally a few two-word markers ("planta baja", "entre calles",
// "sin numero") are joined with an underscore into one fragment, the
// only characters this pass adds.
package addrparse

import (
	"regexp"
	"strings"
)

// normalizationRules run in order, each replacing a match with a single
// space followed by the text of the rule's "keep" group, if it has one.
// Order matters: later rules run against the output of earlier
// ones, so broader rules (parenthetical removal) are listed before the
// narrower punctuation cleanup that follows them.
var normalizationRules = []*regexp.Regexp{
	// Parenthetical clarifications: "(ex Belgrano)", "(antes San Martin)".
	regexp.MustCompile(`(?i)\((ex|antes|frente|mano|(al\s)?lado)[^)]*\)`),
	// Locality markers: "B° Centro", "barrio Centro", "Bo. Centro".
	regexp.MustCompile(`(?i)([vb][°ºª]|barrio\s|bo\.\s).*`),
	// Orientation clarifications: "(N)", "(S)", "(E)", "(O)".
	regexp.MustCompile(`(?i)\([sneo]\)`),
	// Commas used purely as separators.
	regexp.MustCompile(`,(\s|$)|\s,`),
	// Characters removable without changing meaning.
	regexp.MustCompile(`[()"|]`),
	// Trailing dashes.
	regexp.MustCompile(`-+$`),
	// Dashes surrounded by whitespace.
	regexp.MustCompile(`\s-+|-+\s`),
	// "al" immediately before a number ("altura al 1200" -> "altura 1200").
	regexp.MustCompile(`(?i)\sal\s+(?P<keep>\d)`),
}

// separationRule splits a run of two or more letters directly glued to a
// following digit, e.g. "ruta3" -> "ruta 3". A single letter is left
// alone, since single-letter + digit is itself meaningful in this
// grammar (an ordinal suffix, a unit letter) and must not be split.
var separationRule = regexp.MustCompile(`(?i)([^\W\d]{2,}\.?)(\d)`)

// nLabelGlueRule splits the bare house-number marker "n"/"N" from a digit
// run it is glued to ("N1331" -> "N 1331"). This is narrower than
// separationRule (which requires two or more letters) because "n" alone
// is a valid NUM_LABEL_S token, distinct from longer words like "nro". The
// marker letter is captured, not hardcoded, so its original case survives.
var nLabelGlueRule = regexp.MustCompile(`(?i)\b([nN])(\d)`)

var spaceRun = regexp.MustCompile(`\s+`)

// phraseMergeRules fuse a fixed set of two-word idioms into a single
// underscore-joined fragment, run after whitespace collapsing and before
// the tokenizer's per-fragment classification. The tokenizer only ever
// classifies whole whitespace-delimited fragments, so multi-word markers
// like "planta baja" need to become one fragment to be recognized at all.
var phraseMergeRules = []struct {
	pattern *regexp.Regexp
	merged  string
}{
	{regexp.MustCompile(`(?i)\bplanta\s+baja\b`), "planta_baja"},
	{regexp.MustCompile(`(?i)\bentre\s+calles\b`), "entre_calles"},
	{regexp.MustCompile(`(?i)\bsin\s+n[uú]mero\b`), "sin_numero"},
	{regexp.MustCompile(`(?i)\bsin\s+nro\.?\b`), "sin_nro"},
	{regexp.MustCompile(`(?i)\bsin\s+n[°º]\b`), "sin_n°"},
}

// normalize rewrites raw input into the space-collapsed, noise-stripped
// form the tokenizer expects. It never panics and never fails: worst
// case it returns a string the tokenizer then rejects fragment by
// fragment, which surfaces as Kind == KindUnknown further down the
// pipeline.
func normalize(address string) string {
	s := address
	for _, rule := range normalizationRules {
		s = rule.ReplaceAllString(s, " ${keep}")
	}
	s = separationRule.ReplaceAllString(s, "$1 $2")
	s = nLabelGlueRule.ReplaceAllString(s, "$1 $2")
	s = spaceRun.ReplaceAllString(s, " ")
	s = strings.TrimSpace(s)
	for _, rule := range phraseMergeRules {
		s = rule.pattern.ReplaceAllString(s, rule.merged)
	}
	return s
}
