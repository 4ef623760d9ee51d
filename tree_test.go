package addrparse

import "testing"

func TestSkeletonProjectRoundTrips(t *testing.T) {
	tokens := Tokenize(normalize("Tucumán 1000"))
	trees := parseAll(tokens)
	best, ok := pickBest(trees)
	if !ok {
		t.Fatalf("expected a winning tree for %v", categories(tokens))
	}

	sk := skeletonOf(best, tokens)
	got := project(sk.project(tokens))

	other := Tokenize(normalize("Córdoba 2000"))
	got2 := project(sk.project(other))

	if got.Kind != KindSimple || len(got.StreetNames) != 1 || got.StreetNames[0] != "Tucumán" {
		t.Fatalf("unexpected projection from original tokens: %+v", got)
	}
	if got2.Kind != KindSimple || len(got2.StreetNames) != 1 || got2.StreetNames[0] != "Córdoba" {
		t.Fatalf("unexpected projection from swapped tokens: %+v", got2)
	}
	if got.DoorNumber.Value != "1000" || got2.DoorNumber.Value != "2000" {
		t.Fatalf("door numbers did not rebind to the new tokens: %+v / %+v", got, got2)
	}
}

func TestSkeletonKeyStableAcrossCalls(t *testing.T) {
	tokens := Tokenize(normalize("Belgrano 123"))
	k1 := skeletonKey(categories(tokens))
	k2 := skeletonKey(categories(tokens))
	if k1 != k2 {
		t.Fatalf("skeletonKey not stable: %q != %q", k1, k2)
	}
}
