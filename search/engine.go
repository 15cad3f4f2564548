package search

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/arthur-debert/assetstore/types"
)

// Engine implements the Searcher interface
type Engine struct {
	provider AssetProvider
}

// NewEngine creates a new search engine with the given asset provider
func NewEngine(provider AssetProvider) *Engine {
	return &Engine{
		provider: provider,
	}
}

// Search performs a search and returns results ranked by score. Ties keep
// ascending id order.
func (e *Engine) Search(options SearchOptions) ([]SearchResult, error) {
	results, err := e.collect(options)
	if err != nil {
		return nil, err
	}

	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score != results[j].Score {
			return results[i].Score > results[j].Score
		}
		return results[i].Asset.ID < results[j].Asset.ID
	})

	// Apply max results limit
	if options.MaxResults != nil && *options.MaxResults > 0 && len(results) > *options.MaxResults {
		results = results[:*options.MaxResults]
	}

	return results, nil
}

// Filter returns the matching assets in provider order, without ranking
func (e *Engine) Filter(options SearchOptions) ([]types.Asset, error) {
	results, err := e.collect(options)
	if err != nil {
		return nil, err
	}
	assets := make([]types.Asset, 0, len(results))
	for _, r := range results {
		assets = append(assets, r.Asset)
	}
	return assets, nil
}

func (e *Engine) collect(options SearchOptions) ([]SearchResult, error) {
	query := strings.TrimSpace(options.Query)
	if query == "" {
		return []SearchResult{}, nil
	}
	if !options.CaseSensitive {
		query = strings.ToLower(query)
	}

	assets, err := e.provider.Assets()
	if err != nil {
		return nil, fmt.Errorf("failed to get assets: %w", err)
	}

	fields := options.Fields
	if len(fields) == 0 {
		fields = AllFields
	}

	results := []SearchResult{}
	for _, asset := range assets {
		if result := e.searchAsset(asset, query, fields, options); result != nil {
			results = append(results, *result)
		}
	}
	return results, nil
}

// searchAsset searches a single asset and returns a result if it matches
func (e *Engine) searchAsset(asset types.Asset, query string, fields []Field, options SearchOptions) *SearchResult {
	var result *SearchResult

	for _, field := range AllFields {
		if !slices.Contains(fields, field) {
			continue
		}
		value := fieldValue(asset, field)
		if !options.CaseSensitive {
			value = strings.ToLower(value)
		}

		matchType, ok := matchField(value, query, options.ExactMatch)
		if !ok {
			continue
		}
		if result == nil {
			result = &SearchResult{Asset: asset}
		}
		result.MatchedFields = append(result.MatchedFields, field)

		if score := calculateScore(value, query, field, matchType); score > result.Score {
			result.Score = score
			result.MatchType = matchType
		}
	}

	return result
}

func fieldValue(asset types.Asset, field Field) string {
	switch field {
	case FieldID:
		return asset.ID
	case FieldName:
		return asset.Name
	case FieldCategory:
		return asset.Category
	default:
		return ""
	}
}

func matchField(value, query string, exact bool) (MatchType, bool) {
	switch {
	case value == query:
		return MatchExact, true
	case exact:
		return "", false
	case strings.HasPrefix(value, query):
		return MatchPrefix, true
	case strings.Contains(value, query):
		return MatchPartial, true
	default:
		return "", false
	}
}

// calculateScore computes a relevance score for a match
func calculateScore(value, query string, field Field, matchType MatchType) float64 {
	var score float64
	switch matchType {
	case MatchExact:
		score = 0.9
	case MatchPrefix:
		score = 0.7
	default:
		score = 0.5
	}

	// Boost name matches, they are what users type
	if field == FieldName {
		score += 0.1
	}

	// Boost if query takes up a large portion of the field
	if matchType != MatchExact && len(value) > 0 {
		coverage := float64(len(query)) / float64(len(value))
		if coverage > 0.5 {
			score += 0.05
		}
	}

	if score > 1.0 {
		score = 1.0
	}
	return score
}
