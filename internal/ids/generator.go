// Package ids generates the human-readable identifiers used by the asset
// store.
//
// Assets are numbered per category initial (R0001, R0002, ...), sub-assets
// per parent asset (R0001-SUB001) and tender projects by a single counter
// (TNR0001). Asset and sub-asset numbers follow the configured IDPolicy;
// tender numbers are never reused.
package ids

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/arthur-debert/assetstore/types"
)

const (
	subAssetInfix = "-SUB"
	tenderPrefix  = "TNR"
)

// Generator hands out ids. It is not safe for concurrent use; the store
// calls it under its write lock.
type Generator struct {
	policy   types.IDPolicy
	counters map[string]int
	tenders  int
}

// NewGenerator creates a generator for the given policy. An empty policy
// means IDPolicyMonotonic.
func NewGenerator(policy types.IDPolicy) *Generator {
	if policy == "" {
		policy = types.IDPolicyMonotonic
	}
	return &Generator{
		policy:   policy,
		counters: make(map[string]int),
	}
}

// Policy returns the active policy
func (g *Generator) Policy() types.IDPolicy {
	return g.policy
}

// AssetPrefix returns the upper-cased first letter of category
func AssetPrefix(category string) string {
	r, _ := utf8.DecodeRuneInString(strings.TrimSpace(category))
	if r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

// AssetID returns the next id for an asset filed under category. live holds
// the ids of the assets currently in the store.
func (g *Generator) AssetID(category string, live []string) string {
	prefix := AssetPrefix(category)
	var scoped []string
	for _, id := range live {
		if strings.HasPrefix(id, prefix) {
			scoped = append(scoped, id)
		}
	}
	return fmt.Sprintf("%s%04d", prefix, g.next(prefix, prefix, scoped))
}

// SubAssetID returns the next id for a sub-asset of parentAssetID. siblings
// holds the ids of the live sub-assets that belong to the same asset.
func (g *Generator) SubAssetID(parentAssetID string, siblings []string) string {
	prefix := parentAssetID + subAssetInfix
	return fmt.Sprintf("%s%03d", prefix, g.next(prefix, prefix, siblings))
}

// TenderID returns the next tender id. The counter only moves forward.
func (g *Generator) TenderID() string {
	g.tenders++
	return fmt.Sprintf("%s%04d", tenderPrefix, g.tenders)
}

// next picks the sequence number for a scope. Under the live-count policy
// it is the number of live ids plus one. Under the monotonic policy it is one
// past the highest number ever handed out or still alive in the scope.
func (g *Generator) next(scope, prefix string, live []string) int {
	if g.policy == types.IDPolicyLiveCount {
		return len(live) + 1
	}

	highest := g.counters[scope]
	for _, id := range live {
		if n, ok := sequence(id, prefix); ok && n > highest {
			highest = n
		}
	}
	highest++
	g.counters[scope] = highest
	return highest
}

// sequence extracts the numeric suffix of id when it directly follows prefix
func sequence(id, prefix string) (int, bool) {
	rest, ok := strings.CutPrefix(id, prefix)
	if !ok || rest == "" {
		return 0, false
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
