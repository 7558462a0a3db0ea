package state

import "github.com/atomicstack/search-menu/internal/query"

// QueryStore holds the active query in canonical form.
type QueryStore interface {
	Query() string
	Hash() int64
	Parsed() *query.Query
	SetQuery(raw string)
}

type queryStore struct {
	parsed    *query.Query
	canonical string
	hash      int64
}

func NewQueryStore(raw string) QueryStore {
	s := &queryStore{}
	s.SetQuery(raw)
	return s
}

func (s *queryStore) Query() string {
	return s.canonical
}

func (s *queryStore) Hash() int64 {
	return s.hash
}

func (s *queryStore) Parsed() *query.Query {
	return s.parsed.Clone()
}

func (s *queryStore) SetQuery(raw string) {
	s.parsed = query.Parse(raw)
	s.canonical = s.parsed.Canonical()
	s.hash = query.HashString(s.canonical)
}
