// addrparse.go — the public façade wiring normalize -> tokenize ->
// chart-parse -> rank -> project into one entry point.
//
// WHAT THIS MODULE DOES
// ======================
// Parser is the only type most callers need. New constructs one with
// functional options (the same shape as this package's teacher uses for
// wiring up its own top-level object), Parse runs the full pipeline for
// one address string, and ParseWithTrace additionally returns a
// human-readable explanation of a KindUnknown result, for callers that
// want to show *why* an address didn't parse (cmd/addrline -debug).
//
// A zero-value Parser (New with no options) has no cache and is
// completely stateless: Parse is a pure function of its argument, safe
// to call from any number of goroutines concurrently. Passing WithCache
// trades that statelessness for reuse of prior parse/rank work across
// calls that tokenize to the same category sequence; the Cache returned
// by NewLRUCache is safe for concurrent use (the package's internal
// map-backed cache is not), and a caller supplying its own Cache is
// responsible for that guarantee itself.
package addrparse

// Parser runs the address-parsing pipeline. The zero value is ready to
// use and has no cache.
type Parser struct {
	cache Cache
}

// Option configures a Parser constructed with New.
type Option func(*Parser)

// WithCache installs a Cache for memoizing parse/rank results by
// category sequence. Passing a nil Cache is equivalent to omitting the
// option.
func WithCache(c Cache) Option {
	return func(p *Parser) { p.cache = c }
}

// New constructs a Parser. With no options it has no cache.
func New(opts ...Option) *Parser {
	p := &Parser{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Parse extracts the components of a single address string. It never
// returns an error: an address this pipeline cannot confidently
// classify comes back as Unknown (Kind == KindUnknown, every other
// field zero).
func (p *Parser) Parse(address string) AddressResult {
	res, _ := p.parse(address)
	return res
}

// ParseWithTrace behaves like Parse but additionally returns a
// human-readable rendering of why the result was unknown (empty string
// when Kind != KindUnknown).
func (p *Parser) ParseWithTrace(address string) (AddressResult, string) {
	return p.parse(address)
}

func (p *Parser) parse(address string) (AddressResult, string) {
	normalized := normalize(address)
	if normalized == "" {
		return Unknown, renderFailure(normalized, failureDetail{Reason: "empty after normalization"})
	}

	tokens := Tokenize(normalized)
	cats := categories(tokens)
	key := skeletonKey(cats)

	if p.cache != nil {
		if entry, hit := p.cache.Get(key); hit {
			return resultFromEntry(entry, tokens)
		}
	}

	trees := parseAll(tokens)
	best, ok := pickBest(trees)

	entry := cacheEntry{Found: ok}
	if ok {
		entry.Skeleton = skeletonOf(best, tokens)
	}
	if p.cache != nil {
		p.cache.Set(key, entry)
	}

	return resultFromEntry(entry, tokens)
}

func resultFromEntry(entry cacheEntry, tokens []Token) (AddressResult, string) {
	if !entry.Found {
		reason := "no single best grammar derivation covers this token sequence"
		if len(tokens) == 0 {
			reason = "empty after normalization"
		}
		return Unknown, renderFailure(joinTokenText(tokens), failureDetail{Reason: reason})
	}
	tree := entry.Skeleton.project(tokens)
	return project(tree), ""
}

func joinTokenText(tokens []Token) string {
	var parts []string
	for _, t := range tokens {
		parts = append(parts, t.Text)
	}
	return joinSpace(parts)
}
