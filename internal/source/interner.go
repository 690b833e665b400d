package source

import (
	"slices"
	"sync"

	"golang.org/x/text/unicode/norm"
)

// SymbolID is a dense, small handle for an interned byte string.
type SymbolID uint32

// NoSymbolID is the reserved handle for the empty string.
const NoSymbolID SymbolID = 0

// StringInterner maps arbitrary byte strings to dense SymbolIDs. Distinct
// byte sequences yield distinct IDs; identical sequences yield identical
// IDs. Interned text is NFC-normalized first, so visually identical Unicode
// identifiers that differ only in combining-mark order intern to the same
// SymbolID — this is the front end's resolution of the spec's open question
// about Unicode identifier equivalence.
type StringInterner struct {
	byID  []string
	index map[string]SymbolID
}

// NewStringInterner creates an interner with NoSymbolID pre-bound to "".
func NewStringInterner() *StringInterner {
	return &StringInterner{
		byID:  []string{""},
		index: map[string]SymbolID{"": 0},
	}
}

// Intern inserts s (after NFC normalization), returning its SymbolID. A
// repeated call with an equal string returns the same ID.
func (in *StringInterner) Intern(s string) SymbolID {
	s = norm.NFC.String(s)
	if id, ok := in.index[s]; ok {
		return id
	}
	// Copy so the interner never aliases the caller's buffer.
	cpy := string([]byte(s))
	id := SymbolID(len(in.byID))
	in.byID = append(in.byID, cpy)
	in.index[cpy] = id
	return id
}

// InternBytes interns b without requiring the caller to allocate a string
// first.
func (in *StringInterner) InternBytes(b []byte) SymbolID {
	return in.Intern(string(b))
}

// Lookup returns the string for id, or ("", false) if id is not valid.
func (in *StringInterner) Lookup(id SymbolID) (string, bool) {
	if !in.Has(id) {
		return "", false
	}
	return in.byID[id], true
}

// MustLookup returns the string for id, panicking if id is not valid.
func (in *StringInterner) MustLookup(id SymbolID) string {
	s, ok := in.Lookup(id)
	if !ok {
		panic("source: invalid SymbolID")
	}
	return s
}

// Has reports whether id was produced by this interner.
func (in *StringInterner) Has(id SymbolID) bool {
	return int(id) < len(in.byID)
}

// Len returns the number of interned strings, including NoSymbolID.
func (in *StringInterner) Len() int {
	return len(in.byID)
}

// Snapshot returns a copy of every interned string, indexed by SymbolID.
func (in *StringInterner) Snapshot() []string {
	return slices.Clone(in.byID)
}

// Interner is the subset of StringInterner the lexer and parser depend on.
// A single compilation unit uses a bare *StringInterner directly; code that
// fans parsing out across multiple files concurrently passes a *SyncInterner
// instead, so both satisfy this without the parser knowing which it holds.
type Interner interface {
	Intern(s string) SymbolID
	InternBytes(b []byte) SymbolID
	Lookup(id SymbolID) (string, bool)
	MustLookup(id SymbolID) string
	Has(id SymbolID) bool
	Len() int
}

var (
	_ Interner = (*StringInterner)(nil)
	_ Interner = (*SyncInterner)(nil)
)

// SyncInterner wraps a StringInterner with a mutex so it can be shared by
// several goroutines parsing independent files at once. spec.md's
// scheduling model calls the bare StringInterner single-owner and expects
// cross-file parallelism to share "a synchronised interner" instead — this
// is that type.
type SyncInterner struct {
	mu sync.Mutex
	in *StringInterner
}

// NewSyncInterner wraps a fresh StringInterner for concurrent use.
func NewSyncInterner() *SyncInterner {
	return &SyncInterner{in: NewStringInterner()}
}

func (s *SyncInterner) Intern(str string) SymbolID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.in.Intern(str)
}

func (s *SyncInterner) InternBytes(b []byte) SymbolID {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.in.InternBytes(b)
}

func (s *SyncInterner) Lookup(id SymbolID) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.in.Lookup(id)
}

func (s *SyncInterner) MustLookup(id SymbolID) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.in.MustLookup(id)
}

func (s *SyncInterner) Has(id SymbolID) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.in.Has(id)
}

func (s *SyncInterner) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.in.Len()
}

// Snapshot returns a copy of every interned string, indexed by SymbolID.
func (s *SyncInterner) Snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.in.Snapshot()
}
