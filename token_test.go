package addrparse

import "testing"

func mustCategories(t *testing.T, input string, want ...Category) {
	t.Helper()
	tokens := Tokenize(normalize(input))
	if len(tokens) != len(want) {
		t.Fatalf("Tokenize(%q): got %d tokens, want %d (%v)", input, len(tokens), len(want), tokens)
	}
	for i, tok := range tokens {
		if tok.Category != want[i] {
			t.Fatalf("Tokenize(%q)[%d] = %q, want %q", input, i, tok.Category, want[i])
		}
	}
}

func TestTokenizeSimpleStreetAndNumber(t *testing.T) {
	mustCategories(t, "Tucumán 1300", CatWord, CatNum)
}

func TestTokenizeDisambiguatesAndWordFromAndNum(t *testing.T) {
	mustCategories(t, "Belgrano y Mitre", CatWord, CatAndWord, CatWord)
	mustCategories(t, "100 y 200", CatNum, CatAndNum, CatNum)
}

func TestTokenizeDisambiguatesBareNFromNumLabel(t *testing.T) {
	mustCategories(t, "n 123", CatNumLabelS, CatNum)
	mustCategories(t, "n Belgrano", CatN, CatWord)
}

func TestTokenizeFloorWithOrdinal(t *testing.T) {
	mustCategories(t, "1300 1° A", CatNum, CatNum, CatLetter)
}

func TestTokenizeMissingNumberMarker(t *testing.T) {
	mustCategories(t, "Belgrano s/n", CatWord, CatSN)
}

func TestTokenizeGroundFloorPhrase(t *testing.T) {
	mustCategories(t, "Mitre 50 planta baja", CatWord, CatNum, CatGroundFloor)
}

func TestTokenizeNumsLetterStaysGlued(t *testing.T) {
	mustCategories(t, "Mitre 50 2B", CatWord, CatNum, CatNumsLetter)
	mustCategories(t, "Mitre 50 12C", CatWord, CatNum, CatNumsLetter)
}

func TestSkeletonKeyMatchesForEquivalentCategorySequences(t *testing.T) {
	a := Tokenize(normalize("Tucumán 1000"))
	b := Tokenize(normalize("Córdoba 2000"))
	if skeletonKey(categories(a)) != skeletonKey(categories(b)) {
		t.Fatalf("expected equal skeleton keys for %v and %v", categories(a), categories(b))
	}
}
