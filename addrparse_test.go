package addrparse

import (
	"reflect"
	"testing"
)

func mustParse(t *testing.T, p *Parser, address string) AddressResult {
	t.Helper()
	return p.Parse(address)
}

func TestParseSimpleStreetWithDoorNumber(t *testing.T) {
	p := New()
	got := mustParse(t, p, "Tucumán 1300")
	want := AddressResult{Kind: KindSimple, StreetNames: []string{"Tucumán"}, DoorNumber: DoorNumber{Value: "1300"}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestParseSimpleStreetWithFloorAndUnit(t *testing.T) {
	p := New()
	got := mustParse(t, p, "Tucumán 1300 1° A")
	if got.Kind != KindSimple {
		t.Fatalf("got Kind %q, want simple", got.Kind)
	}
	if len(got.StreetNames) != 1 || got.StreetNames[0] != "Tucumán" {
		t.Fatalf("got street names %v", got.StreetNames)
	}
	if got.DoorNumber.Value != "1300" {
		t.Fatalf("got door number %+v", got.DoorNumber)
	}
	if got.Floor != "1° A" {
		t.Fatalf("got floor %q", got.Floor)
	}
}

func TestParseFloorAsNumsLetterShortForm(t *testing.T) {
	p := New()
	got := mustParse(t, p, "Tucumán 1300 2B")
	if got.Kind != KindSimple {
		t.Fatalf("got Kind %q, want simple", got.Kind)
	}
	if got.DoorNumber.Value != "1300" {
		t.Fatalf("got door number %+v", got.DoorNumber)
	}
	if got.Floor != "2B" {
		t.Fatalf("got floor %q, want 2B", got.Floor)
	}
}

func TestParseDoorNumberWithLeadingLabel(t *testing.T) {
	p := New()
	got := mustParse(t, p, "Sarmiento N° 1100")
	if got.Kind != KindSimple {
		t.Fatalf("got Kind %q, want simple", got.Kind)
	}
	if got.DoorNumber.Unit != "N°" {
		t.Fatalf("got door number unit %q, want N°", got.DoorNumber.Unit)
	}
	if got.DoorNumber.Value != "1100" {
		t.Fatalf("got door number value %q, want 1100", got.DoorNumber.Value)
	}
}

func TestParseDoorNumberGluedLeadingLabel(t *testing.T) {
	p := New()
	got := mustParse(t, p, "Av. Libertador N1331")
	if got.Kind != KindSimple {
		t.Fatalf("got Kind %q, want simple", got.Kind)
	}
	if got.DoorNumber.Unit != "N" {
		t.Fatalf("got door number unit %q, want N", got.DoorNumber.Unit)
	}
	if got.DoorNumber.Value != "1331" {
		t.Fatalf("got door number value %q, want 1331", got.DoorNumber.Value)
	}
}

func TestParseMissingNumberMarkerHasValue(t *testing.T) {
	p := New()
	got := mustParse(t, p, "Belgrano s/n")
	if got.Kind != KindSimple {
		t.Fatalf("got Kind %q, want simple", got.Kind)
	}
	if got.DoorNumber.Value != "s/n" {
		t.Fatalf("got door number %+v, want value \"s/n\"", got.DoorNumber)
	}
	if got.DoorNumber.Unit != "" {
		t.Fatalf("got door number unit %q, want empty", got.DoorNumber.Unit)
	}
}

func TestParseTrailingLocalityIsMultiWord(t *testing.T) {
	p := New()
	got := mustParse(t, p, "Ruta 33 s/n Villa Chacón")
	if got.Kind != KindSimple {
		t.Fatalf("got Kind %q, want simple", got.Kind)
	}
	if got.DoorNumber.Value != "s/n" {
		t.Fatalf("got door number %+v, want value \"s/n\"", got.DoorNumber)
	}
}

func TestParseIntersectionWithDoorNumber(t *testing.T) {
	p := New()
	got := mustParse(t, p, "Belgrano 1200 y Mitre")
	if got.Kind != KindIntersection {
		t.Fatalf("got Kind %q, want intersection", got.Kind)
	}
	if len(got.StreetNames) != 2 {
		t.Fatalf("got street names %v", got.StreetNames)
	}
	if got.DoorNumber.Value != "1200" {
		t.Fatalf("got door number %+v, want value \"1200\"", got.DoorNumber)
	}
}

func TestParseQualifiedStreetWithoutDoorNumber(t *testing.T) {
	p := New()
	got := mustParse(t, p, "Avenida Belgrano")
	if got.Kind != KindSimple {
		t.Fatalf("got Kind %q, want simple", got.Kind)
	}
	if len(got.StreetNames) != 1 {
		t.Fatalf("got street names %v", got.StreetNames)
	}
}

func TestParseIntersection(t *testing.T) {
	p := New()
	got := mustParse(t, p, "Belgrano y Mitre")
	if got.Kind != KindIntersection {
		t.Fatalf("got Kind %q, want intersection", got.Kind)
	}
	if len(got.StreetNames) != 2 {
		t.Fatalf("got street names %v", got.StreetNames)
	}
}

func TestParseBetween(t *testing.T) {
	p := New()
	got := mustParse(t, p, "San Martín 123 entre Belgrano y Mitre")
	if got.Kind != KindBetween {
		t.Fatalf("got Kind %q, want between", got.Kind)
	}
	if len(got.StreetNames) != 3 {
		t.Fatalf("got street names %v", got.StreetNames)
	}
	if got.DoorNumber.Value != "123" {
		t.Fatalf("got door number %+v", got.DoorNumber)
	}
}

func TestParseSingleBareWordIsUnknown(t *testing.T) {
	p := New()
	got := mustParse(t, p, "qwerty")
	if got.Kind != KindUnknown {
		t.Fatalf("got Kind %q, want unknown", got.Kind)
	}
}

func TestParseEmptyStringIsUnknown(t *testing.T) {
	p := New()
	if got := mustParse(t, p, "   "); got.Kind != KindUnknown {
		t.Fatalf("got Kind %q, want unknown", got.Kind)
	}
}

func TestParseMissingNameMarker(t *testing.T) {
	p := New()
	got := mustParse(t, p, "s/nombre 123")
	if got.Kind != KindSimple {
		t.Fatalf("got Kind %q, want simple", got.Kind)
	}
}

func TestParseIsPureWithoutCache(t *testing.T) {
	p := New()
	a := mustParse(t, p, "Tucumán 1300")
	b := mustParse(t, p, "Tucumán 1300")
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("repeated calls diverged: %+v vs %+v", a, b)
	}
}

func TestParseCacheAgreesWithUncached(t *testing.T) {
	cache := newMapCache()
	cached := New(WithCache(cache))
	plain := New()

	addrs := []string{"Tucumán 1300", "Córdoba 2000", "Belgrano y Mitre", "qwerty"}
	for _, a := range addrs {
		got := cached.Parse(a)
		want := plain.Parse(a)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("parse(%q): cached %+v != uncached %+v", a, got, want)
		}
	}
	// Second pass exercises the cache hit path.
	for _, a := range addrs {
		got := cached.Parse(a)
		want := plain.Parse(a)
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("cached parse(%q) on repeat: %+v != %+v", a, got, want)
		}
	}
}

func TestParseWithTraceExplainsUnknown(t *testing.T) {
	p := New()
	res, trace := p.ParseWithTrace("qwerty")
	if res.Kind != KindUnknown {
		t.Fatalf("got Kind %q, want unknown", res.Kind)
	}
	if trace == "" {
		t.Fatalf("expected a non-empty trace explaining the unknown result")
	}
}
