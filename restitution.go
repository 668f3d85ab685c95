package bounce

// DefaultRestitution is used for every pair without an explicit entry.
const DefaultRestitution = 0.9

// BodyPair is an unordered pair of body ids, stored with the smaller id first.
type BodyPair struct {
	A, B BodyID
}

func newPair(a, b BodyID) BodyPair {
	if a > b {
		return BodyPair{b, a}
	}
	return BodyPair{a, b}
}

// RestitutionTable maps unordered body pairs to a bounce coefficient.
// Values are kept verbatim, range checks belong to the caller.
type RestitutionTable struct {
	entries  map[BodyPair]float64
	fallback float64
}

func NewRestitutionTable(fallback float64) *RestitutionTable {
	return &RestitutionTable{
		entries:  make(map[BodyPair]float64),
		fallback: fallback,
	}
}

func (t *RestitutionTable) Get(a, b BodyID) float64 {
	if e, ok := t.entries[newPair(a, b)]; ok {
		return e
	}
	return t.fallback
}

// Lookup is Get that also reports whether an explicit entry exists.
func (t *RestitutionTable) Lookup(a, b BodyID) (float64, bool) {
	e, ok := t.entries[newPair(a, b)]
	if !ok {
		return t.fallback, false
	}
	return e, true
}

func (t *RestitutionTable) Set(a, b BodyID, e float64) {
	t.entries[newPair(a, b)] = e
}

func (t *RestitutionTable) Default() float64 {
	return t.fallback
}

func (t *RestitutionTable) Len() int {
	return len(t.entries)
}
