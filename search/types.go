package search

import "github.com/arthur-debert/assetstore/types"

// Field names an asset attribute that can be searched
type Field string

const (
	FieldID       Field = "id"
	FieldName     Field = "name"
	FieldCategory Field = "category"
)

// AllFields lists the searchable fields in the order they are reported
var AllFields = []Field{FieldID, FieldName, FieldCategory}

// SearchOptions configures search behavior
type SearchOptions struct {
	// Query is the term to look for. Surrounding whitespace is ignored and a
	// blank query matches nothing.
	Query string

	// Fields restricts the search. Empty means AllFields.
	Fields []Field

	// CaseSensitive controls whether search is case-sensitive
	CaseSensitive bool

	// ExactMatch requires the entire field to match the query
	ExactMatch bool

	// MaxResults limits the number of ranked results
	// nil means no limit
	MaxResults *int
}

// SearchResult represents a search match with metadata
type SearchResult struct {
	// Asset is the matched asset
	Asset types.Asset

	// Score represents match relevance (0.0 to 1.0, higher is better)
	Score float64

	// MatchType is the best kind of match found across fields
	MatchType MatchType

	// MatchedFields lists all fields that contained matches
	MatchedFields []Field
}

// MatchType indicates how a field matched the query
type MatchType string

const (
	MatchExact   MatchType = "exact"
	MatchPrefix  MatchType = "prefix"
	MatchPartial MatchType = "partial"
)

// AssetProvider gives the engine access to the assets to search.
// This allows for dependency injection and easy mocking in tests.
type AssetProvider interface {
	// Assets returns the assets in their natural order
	Assets() ([]types.Asset, error)
}

// Searcher defines the main search interface
type Searcher interface {
	// Search performs a search and returns ranked results
	Search(options SearchOptions) ([]SearchResult, error)
}

// AssetSlice adapts a plain slice to AssetProvider
type AssetSlice []types.Asset

// Assets implements AssetProvider
func (s AssetSlice) Assets() ([]types.Asset, error) {
	return s, nil
}
