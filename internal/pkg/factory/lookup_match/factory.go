package lookup_match

import "strings"

// Mode selects how the public lookup matches customers. The exact mode
// only answers full document matches, which keeps a name or document
// fragment from enumerating customers; the partial mode trades that for
// counter convenience (unaccented contains over cpf, rg and name).
type Mode string

const (
	ModeExact   Mode = "exact"
	ModePartial Mode = "partial"
)

const DefaultMode = ModeExact

func (m Mode) String() string {
	return string(m)
}

func ParseMode(s string) (Mode, bool) {
	switch Mode(strings.ToLower(strings.TrimSpace(s))) {
	case ModeExact:
		return ModeExact, true
	case ModePartial:
		return ModePartial, true
	case "":
		return DefaultMode, true
	default:
		return DefaultMode, false
	}
}

// MatcherFactory turns a raw query string into the terms a repository
// needs for the configured matching strategy.
type MatcherFactory struct {
	mode Mode
}

func New(mode Mode) *MatcherFactory {
	return &MatcherFactory{mode: mode}
}

func (f *MatcherFactory) Mode() Mode {
	return f.mode
}

// Terms normalizes the query: the raw trimmed form plus a variant with
// document punctuation stripped ("123.456.789-09" -> "12345678909").
func (f *MatcherFactory) Terms(query string) (raw, cleaned string) {
	raw = strings.TrimSpace(query)
	cleaned = strings.NewReplacer(".", "", "-", "", " ", "").Replace(raw)
	return raw, cleaned
}
