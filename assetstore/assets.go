package assetstore

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/assetstore/search"
	"github.com/arthur-debert/assetstore/types"
)

// AddAsset creates an asset under an existing category, together with its
// default valuation record. The id is derived from the category initial.
func (s *Store) AddAsset(name, category string) (asset types.Asset, err error) {
	defer s.observe("add_asset", time.Now(), &err)

	name = strings.TrimSpace(name)
	if name == "" {
		return types.Asset{}, fmt.Errorf("asset name is required: %w", ErrInvalidInput)
	}

	err = s.lockManager.execute(writeOperation, func() error {
		cat, ok := s.findCategory(category)
		if !ok {
			return fmt.Errorf("category %q: %w", strings.TrimSpace(category), ErrCategoryNotFound)
		}

		id := s.idGenerator.AssetID(cat.Name, s.assetIDs())
		if s.assetExists(id) {
			s.logger.Warn("generated asset id is already in use", "asset_id", id, "id_policy", s.idGenerator.Policy())
		}

		asset = types.Asset{ID: id, Name: name, Category: cat.Name}
		s.assets.Append(asset)
		s.values.Append(s.defaultValue(id))
		s.logger.Debug("asset added", "asset_id", id, "category", cat.Name)
		return nil
	})
	return asset, err
}

// GetAsset returns the asset with the given id
func (s *Store) GetAsset(id string) (types.Asset, bool) {
	type result struct {
		asset types.Asset
		ok    bool
	}
	r := read(s.lockManager, func() result {
		a, ok := s.findAsset(id)
		return result{a, ok}
	})
	return r.asset, r.ok
}

// ListAssets returns the assets in insertion order
func (s *Store) ListAssets() []types.Asset {
	return read(s.lockManager, s.assets.Items)
}

// AssetName returns the name of the asset, or the id itself when no such
// asset exists
func (s *Store) AssetName(id string) string {
	return read(s.lockManager, func() string {
		if a, ok := s.findAsset(id); ok {
			return a.Name
		}
		return id
	})
}

// DeleteAsset removes an asset and everything that refers to it: its
// valuation record, its connections, its sub-asset tree and the history
// entries of the asset and its sub-assets.
func (s *Store) DeleteAsset(id string) (err error) {
	defer s.observe("delete_asset", time.Now(), &err)

	return s.lockManager.execute(writeOperation, func() error {
		if !s.assetExists(id) {
			return fmt.Errorf("asset %q: %w", id, ErrAssetNotFound)
		}
		s.deleteAssetLocked(id)
		return nil
	})
}

// SearchAssets returns, in insertion order, the assets whose id, name or
// category contains term, ignoring case. A blank term matches nothing.
func (s *Store) SearchAssets(term string) []types.Asset {
	return read(s.lockManager, func() []types.Asset {
		assets, err := search.NewEngine(search.AssetSlice(s.assets.Items())).
			Filter(search.SearchOptions{Query: term})
		if err != nil {
			s.logger.Error("asset search failed", "error", err)
			return []types.Asset{}
		}
		return assets
	})
}

// SearchRanked runs a search with explicit options and returns scored results
func (s *Store) SearchRanked(options search.SearchOptions) ([]search.SearchResult, error) {
	assets := s.ListAssets()
	return search.NewEngine(search.AssetSlice(assets)).Search(options)
}

// ViewAsset opens an asset: it returns the asset with its valuation record,
// creating a default record on first view, and records the access in the
// history.
func (s *Store) ViewAsset(id string) (asset types.Asset, value types.AssetValueDetails, err error) {
	defer s.observe("view_asset", time.Now(), &err)

	err = s.lockManager.execute(writeOperation, func() error {
		var ok bool
		if asset, ok = s.findAsset(id); !ok {
			return fmt.Errorf("asset %q: %w", id, ErrAssetNotFound)
		}
		value = s.ensureValue(id)
		s.pushHistory(asset.ID, asset.Name, types.HistoryAsset)
		return nil
	})
	return asset, value, err
}

// deleteAssetLocked runs the asset cascade. The caller holds the write lock
// and has checked that the asset exists.
func (s *Store) deleteAssetLocked(id string) {
	s.assets.RemoveIf(func(a types.Asset) bool { return a.ID == id })

	values := s.values.RemoveIf(func(v types.AssetValueDetails) bool { return v.AssetID == id })
	connections := s.connections.RemoveIf(func(c types.AssetConnection) bool { return c.Touches(id) })

	forgotten := map[string]bool{id: true}
	subAssets := 0
	if tree, ok := s.trees[id]; ok {
		for _, sub := range tree.Flatten() {
			forgotten[sub.ID] = true
			subAssets++
		}
		tree.DeleteSubtree(tree.Root())
		delete(s.trees, id)
	}
	history := s.history.RemoveIf(func(h types.AssetHistory) bool { return forgotten[h.AssetID] })

	s.cascaded(CascadeValues, values)
	s.cascaded(CascadeConnections, connections)
	s.cascaded(CascadeSubAssets, subAssets)
	s.cascaded(CascadeHistory, history)
	s.logger.Info("asset deleted",
		"asset_id", id,
		"values_removed", values,
		"connections_removed", connections,
		"sub_assets_removed", subAssets,
		"history_removed", history)
}

func (s *Store) findAsset(id string) (types.Asset, bool) {
	return s.assets.Find(func(a types.Asset) bool { return a.ID == id })
}

func (s *Store) assetExists(id string) bool {
	return s.assets.Contains(func(a types.Asset) bool { return a.ID == id })
}

func (s *Store) assetIDs() []string {
	ids := make([]string, 0, s.assets.Len())
	for a := range s.assets.All() {
		ids = append(ids, a.ID)
	}
	return ids
}
