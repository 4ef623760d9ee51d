// token.go — fragment classification: normalized text -> []Token.
//
// WHAT THIS MODULE DOES
// ======================
// The tokenizer splits a normalized address on whitespace and classifies
// each resulting fragment into exactly one Category (category.go). Unlike
// a conventional lexer that scans character by character, classification
// here works fragment-at-a-time: each whitespace-delimited run of bytes is
// tried against an ordered table of whole-fragment patterns, and the first
// pattern to match wins. A handful of categories can't be decided from a
// fragment in isolation (a bare "y" is AND_WORD before a name but AND_NUM
// before a number; a bare "n" is NUM_LABEL_S before a number but N
// otherwise) — those are resolved by a short second pass that looks at
// the category already assigned to the *next* token.
//
// A fragment that matches none of the known patterns is impossible by
// construction: WORD, the last entry in the table, matches any non-blank
// run of bytes. Tokenize therefore never fails on its own account; the
// only way classification surfaces as a problem is indirectly, when the
// grammar has no production that accepts the resulting category sequence
// (handled in chart.go).
//
// DEPENDENCIES ON OTHER FILES
// ============================
//   - category.go: the Category type and orderedCategories table this
//     module classifies fragments into.
//   - normalize.go: normalize() must run before Tokenize(); Tokenize
//     assumes its input is already normalized (single spaces, phrase
//     markers fused).
package addrparse

import "regexp"

// Span is a half-open byte interval [Start, End) into the normalized
// address string that was tokenized. End is exclusive.
type Span struct {
	Start int
	End   int
}

// Token is one classified fragment of a normalized address.
type Token struct {
	Category Category
	Text     string
	Span     Span
}

// fragmentPattern matches an entire fragment (never a substring of it)
// against one category. catAndPseudo and catNPseudo mark the two
// categories that resolvePseudoCategories() may still rewrite after the
// first pass.
type fragmentPattern struct {
	category Category
	re       *regexp.Regexp
}

var fragmentPatterns = buildFragmentPatterns()

func buildFragmentPatterns() []fragmentPattern {
	anchored := func(cat Category, pattern string) fragmentPattern {
		return fragmentPattern{cat, regexp.MustCompile(`(?i)^(?:` + pattern + `)$`)}
	}
	return []fragmentPattern{
		// AND_WORD / AND_NUM are both provisionally tagged catAndPseudo
		// here; resolvePseudoCategories splits them by looking at the
		// next token's category.
		anchored(catAndPseudo, `y|e`),
		anchored(CatOf, `de\.?`),
		anchored(CatFloor, `piso`),
		anchored(CatDoorType, `d(e?p)?to\.?|departamento|oficina|of\.?`),
		anchored(CatGroundFloor, `p\.?b\.?|planta_baja`),
		anchored(CatIsctSep, `esquina|esq\.?|esq/`),
		anchored(CatBtwnSep, `e/(calles)?|entre_calles`),
		anchored(CatBetween, `entre`),
		anchored(CatKm, `kil[oó]metro|km\.?`),
		anchored(CatMissingName, `s/nombre`),
		anchored(CatMissingNum, `sin_numero|sin_nro\.?|sin_n[°º]|s/n[uú]mero|s/nro\.?|s/n[°º]`),
		anchored(CatSN, `s[/-]n|sn`),
		anchored(CatStreetTypeS, `avda\.?|av\.?|bv\.?|diag\.?`),
		anchored(CatStreetTypeL, `calle|avenida|bo?ulevard?|diagonal`),
		anchored(CatRoute, `ruta|rta\.?|rn\.?|rp\.?`),
		anchored(CatNumLabelS, `n[°ºª*]|#`),
		// A bare "n" is provisionally tagged catNPseudo; resolved below.
		anchored(catNPseudo, `n`),
		anchored(CatNumLabelL, `nro\.?|n[uú]mero`),
		anchored(CatDecimal, `\d+[.,]\d+`),
		anchored(CatNumRange, `\d+[/-]\d+([/-]\d+)*`),
		anchored(CatOrdinal, `\d+(era?|nd[oa]|[nmtvr][oa])\.?`),
		anchored(CatNumsLetter, `\d{1,2}[^\d\W]`),
		anchored(CatNum, `\d+[°º]?`),
		anchored(CatLetter, `[^\d\W]\.?`),
		anchored(CatWord, `\S+`),
	}
}

// catAndPseudo and catNPseudo never escape this file: every token
// carrying one of them is rewritten by resolvePseudoCategories before
// Tokenize returns.
const (
	catAndPseudo Category = "_AND_PSEUDO"
	catNPseudo   Category = "_N_PSEUDO"
)

// Tokenize splits a normalized address into classified fragments.
func Tokenize(normalized string) []Token {
	var tokens []Token
	start := -1
	flush := func(end int) {
		if start < 0 {
			return
		}
		frag := normalized[start:end]
		tokens = append(tokens, Token{
			Category: classifyFragment(frag),
			Text:     frag,
			Span:     Span{Start: start, End: end},
		})
		start = -1
	}
	for i := 0; i < len(normalized); i++ {
		if normalized[i] == ' ' {
			flush(i)
			continue
		}
		if start < 0 {
			start = i
		}
	}
	flush(len(normalized))

	resolvePseudoCategories(tokens)
	return tokens
}

// classifyFragment returns the category of the first pattern (in
// priority order) that matches frag in its entirety.
func classifyFragment(frag string) Category {
	for _, fp := range fragmentPatterns {
		if fp.re.MatchString(frag) {
			return fp.category
		}
	}
	// Unreachable: CatWord matches any non-blank fragment.
	return CatWord
}

// numberish reports whether cat is a category that begins with a digit,
// used to disambiguate the two pseudo-categories against the following
// token.
func numberish(cat Category) bool {
	switch cat {
	case CatDecimal, CatNumRange, CatOrdinal, CatNumsLetter, CatNum:
		return true
	}
	return false
}

// resolvePseudoCategories rewrites catAndPseudo/catNPseudo tokens in
// place once the full sequence is known, using only the category of the
// token that immediately follows.
func resolvePseudoCategories(tokens []Token) {
	for i := range tokens {
		var next Category
		if i+1 < len(tokens) {
			next = tokens[i+1].Category
		}
		switch tokens[i].Category {
		case catAndPseudo:
			if numberish(next) {
				tokens[i].Category = CatAndNum
			} else {
				tokens[i].Category = CatAndWord
			}
		case catNPseudo:
			if numberish(next) {
				tokens[i].Category = CatNumLabelS
			} else {
				tokens[i].Category = CatN
			}
		}
	}
}

// categories extracts the category sequence of tokens, the key used for
// grammar parsing and for the parse-tree cache (cache.go).
func categories(tokens []Token) []Category {
	cats := make([]Category, len(tokens))
	for i, t := range tokens {
		cats[i] = t.Category
	}
	return cats
}
