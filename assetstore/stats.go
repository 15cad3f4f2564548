package assetstore

import (
	"strings"

	"github.com/arthur-debert/assetstore/types"
)

// Snapshot is a deep copy of the whole store, used for reports and exports
type Snapshot struct {
	StoreID     string                    `json:"store_id" yaml:"store_id"`
	Categories  []types.Category          `json:"categories" yaml:"categories"`
	Assets      []types.Asset             `json:"assets" yaml:"assets"`
	Values      []types.AssetValueDetails `json:"values" yaml:"values"`
	Connections []types.AssetConnection   `json:"connections" yaml:"connections"`
	SubAssets   []types.SubAssetNode      `json:"sub_assets" yaml:"sub_assets"`
	Tenders     []types.TenderProject     `json:"tenders" yaml:"tenders"`
	History     []types.AssetHistory      `json:"history" yaml:"history"`
	Stats       types.Stats               `json:"stats" yaml:"stats"`
}

// CategoryCounts returns the number of assets per category, in category order
func (s *Store) CategoryCounts() []types.CategoryCount {
	return read(s.lockManager, s.categoryCounts)
}

// Stats aggregates counts and valuation totals
func (s *Store) Stats() types.Stats {
	return read(s.lockManager, s.stats)
}

// Snapshot copies every collection. Sub-assets are listed per asset in
// pre-order with their depth; the synthetic roots are left out.
func (s *Store) Snapshot() Snapshot {
	return read(s.lockManager, func() Snapshot {
		snap := Snapshot{
			StoreID:     s.id,
			Categories:  s.categories.Items(),
			Assets:      s.assets.Items(),
			Values:      s.values.Items(),
			Connections: s.connections.Items(),
			SubAssets:   []types.SubAssetNode{},
			Tenders:     s.tenders.Items(),
			History:     s.history.Items(),
			Stats:       s.stats(),
		}
		for a := range s.assets.All() {
			tree, ok := s.trees[a.ID]
			if !ok {
				continue
			}
			for _, node := range treeNodes(tree) {
				if node.Depth > 0 {
					snap.SubAssets = append(snap.SubAssets, node)
				}
			}
		}
		return snap
	})
}

func (s *Store) categoryCounts() []types.CategoryCount {
	counts := make([]types.CategoryCount, 0, s.categories.Len())
	for c := range s.categories.All() {
		n := 0
		for a := range s.assets.All() {
			if strings.EqualFold(a.Category, c.Name) {
				n++
			}
		}
		counts = append(counts, types.CategoryCount{Category: c.Name, Count: n})
	}
	return counts
}

func (s *Store) stats() types.Stats {
	st := types.Stats{
		CategoryCounts: s.categoryCounts(),
		TotalAssets:    s.assets.Len(),
		Connections:    s.connections.Len(),
		SubAssets:      s.subAssetCount(),
		QueuedTenders:  s.tenders.Len(),
		HistoryEntries: s.history.Len(),
	}
	for v := range s.values.All() {
		st.TotalValue += v.CurrentValue
		st.TotalMaintenance += v.MaintenanceCost
		st.TotalTax += v.PropertyTax
	}
	return st
}
