package assetstore

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/assetstore/assetstore/hierarchy"
	"github.com/arthur-debert/assetstore/types"
)

// AddSubAsset creates a sub-asset inside the tree of its parent asset. It is
// attached under ParentSubAssetID when that node exists in the tree, and
// under the asset's root otherwise.
func (s *Store) AddSubAsset(in types.SubAssetInput) (sub types.SubAsset, err error) {
	defer s.observe("add_sub_asset", time.Now(), &err)

	in.Name = strings.TrimSpace(in.Name)
	in.ParentAssetID = strings.TrimSpace(in.ParentAssetID)
	in.ParentSubAssetID = strings.TrimSpace(in.ParentSubAssetID)
	switch {
	case in.Name == "":
		return types.SubAsset{}, fmt.Errorf("sub-asset name is required: %w", ErrInvalidInput)
	case in.ParentAssetID == "":
		return types.SubAsset{}, fmt.Errorf("parent asset is required: %w", ErrInvalidInput)
	}

	err = s.lockManager.execute(writeOperation, func() error {
		asset, ok := s.findAsset(in.ParentAssetID)
		if !ok {
			return fmt.Errorf("asset %q: %w", in.ParentAssetID, ErrAssetNotFound)
		}
		tree := s.treeFor(asset)

		parent := tree.Root()
		if in.ParentSubAssetID != "" && in.ParentSubAssetID != types.RootSubAssetID(asset.ID) {
			if n := tree.Find(in.ParentSubAssetID); n != nil {
				parent = n
			} else {
				s.logger.Debug("parent sub-asset not found, attaching to root",
					"asset_id", asset.ID, "parent_sub_asset_id", in.ParentSubAssetID)
			}
		}

		siblings := make([]string, 0, tree.Len())
		for _, existing := range tree.Flatten() {
			siblings = append(siblings, existing.ID)
		}
		sub = types.SubAsset{
			ID:            s.idGenerator.SubAssetID(asset.ID, siblings),
			Name:          in.Name,
			ParentAssetID: asset.ID,
			Description:   strings.TrimSpace(in.Description),
		}
		if err := tree.AddChild(parent, hierarchy.NewNode(sub)); err != nil {
			return fmt.Errorf("failed to attach sub-asset: %w", err)
		}
		s.logger.Debug("sub-asset added", "sub_asset_id", sub.ID, "parent", parent.Value.ID)
		return nil
	})
	if err != nil {
		return types.SubAsset{}, err
	}
	return sub, nil
}

// DeleteSubAsset removes a sub-asset together with its whole subtree and the
// history entries of every removed node. It returns the number of
// sub-assets removed.
func (s *Store) DeleteSubAsset(id string) (removed int, err error) {
	defer s.observe("delete_sub_asset", time.Now(), &err)

	if types.IsRootSubAssetID(id) {
		return 0, fmt.Errorf("the root of a sub-asset tree cannot be deleted: %w", ErrInvalidInput)
	}

	err = s.lockManager.execute(writeOperation, func() error {
		tree, node := s.findSubAsset(id)
		if node == nil {
			return fmt.Errorf("sub-asset %q: %w", id, ErrSubAssetNotFound)
		}

		forgotten := make(map[string]bool)
		for _, released := range tree.DeleteSubtree(node) {
			forgotten[released.ID] = true
		}
		removed = len(forgotten)
		history := s.history.RemoveIf(func(h types.AssetHistory) bool { return forgotten[h.AssetID] })

		s.cascaded(CascadeSubAssets, removed-1)
		s.cascaded(CascadeHistory, history)
		s.logger.Info("sub-asset deleted", "sub_asset_id", id, "sub_assets_removed", removed, "history_removed", history)
		return nil
	})
	return removed, err
}

// ListSubAssets returns the sub-assets of an asset in depth-first pre-order
func (s *Store) ListSubAssets(assetID string) []types.SubAsset {
	return read(s.lockManager, func() []types.SubAsset {
		if tree, ok := s.trees[assetID]; ok {
			return tree.Flatten()
		}
		return []types.SubAsset{}
	})
}

// ListAllSubAssets returns every sub-asset, grouped by asset in asset order
func (s *Store) ListAllSubAssets() []types.SubAsset {
	return read(s.lockManager, func() []types.SubAsset {
		out := []types.SubAsset{}
		for a := range s.assets.All() {
			if tree, ok := s.trees[a.ID]; ok {
				out = append(out, tree.Flatten()...)
			}
		}
		return out
	})
}

// GetSubAsset returns the sub-asset with the given id
func (s *Store) GetSubAsset(id string) (types.SubAsset, bool) {
	type result struct {
		sub types.SubAsset
		ok  bool
	}
	r := read(s.lockManager, func() result {
		if types.IsRootSubAssetID(id) {
			return result{}
		}
		if _, node := s.findSubAsset(id); node != nil {
			return result{node.Value, true}
		}
		return result{}
	})
	return r.sub, r.ok
}

// SubAssetTree returns the tree of an asset in pre-order, root included.
// The root has depth 0 and its children depth 1.
func (s *Store) SubAssetTree(assetID string) []types.SubAssetNode {
	return read(s.lockManager, func() []types.SubAssetNode {
		tree, ok := s.trees[assetID]
		if !ok {
			return nil
		}
		return treeNodes(tree)
	})
}

// SubAssetDepth returns the depth of a node in its tree. Root ids are
// accepted and have depth 0.
func (s *Store) SubAssetDepth(id string) (int, bool) {
	type result struct {
		depth int
		ok    bool
	}
	r := read(s.lockManager, func() result {
		tree, node := s.findSubAsset(id)
		if node == nil {
			return result{}
		}
		return result{tree.Depth(node), true}
	})
	return r.depth, r.ok
}

// UpdateSubAssetRental sets the rental fields of a sub-asset
func (s *Store) UpdateSubAssetRental(id string, isRented bool, renterName string, price int) error {
	return s.UpdateSubAsset(id, func(sub *types.SubAsset) error {
		sub.IsRented = isRented
		sub.RenterName = strings.TrimSpace(renterName)
		sub.RentalPrice = price
		return nil
	})
}

// UpdateSubAsset edits a sub-asset in place. fn receives a copy; the copy is
// validated and stored only if fn returns nil. ID and ParentAssetID cannot
// change. The edit is recorded in the history.
func (s *Store) UpdateSubAsset(id string, fn func(*types.SubAsset) error) (err error) {
	defer s.observe("update_sub_asset", time.Now(), &err)

	if types.IsRootSubAssetID(id) {
		return fmt.Errorf("the root of a sub-asset tree cannot be edited: %w", ErrInvalidInput)
	}

	return s.lockManager.execute(writeOperation, func() error {
		_, node := s.findSubAsset(id)
		if node == nil {
			return fmt.Errorf("sub-asset %q: %w", id, ErrSubAssetNotFound)
		}

		edited := node.Value
		if err := fn(&edited); err != nil {
			return err
		}
		switch {
		case edited.ID != node.Value.ID || edited.ParentAssetID != node.Value.ParentAssetID:
			return fmt.Errorf("sub-asset id and parent asset cannot change: %w", ErrInvalidInput)
		case strings.TrimSpace(edited.Name) == "":
			return fmt.Errorf("sub-asset name is required: %w", ErrInvalidInput)
		case edited.RentalPrice < 0:
			return fmt.Errorf("rental price cannot be negative: %w", ErrInvalidInput)
		}

		node.Value = edited
		s.pushHistory(edited.ID, edited.Name, types.HistorySubAsset)
		s.logger.Debug("sub-asset updated", "sub_asset_id", id)
		return nil
	})
}

// treeFor returns the tree of asset, creating it with its synthetic root on
// first use. The caller holds the write lock.
func (s *Store) treeFor(asset types.Asset) *subAssetTree {
	if tree, ok := s.trees[asset.ID]; ok {
		return tree
	}
	root := types.SubAsset{
		ID:            types.RootSubAssetID(asset.ID),
		Name:          asset.Name,
		ParentAssetID: asset.ID,
	}
	tree := hierarchy.New(root, func(sub types.SubAsset) string { return sub.ID })
	s.trees[asset.ID] = tree
	return tree
}

// findSubAsset locates a node in any tree. Root ids resolve to the root of
// the matching tree.
func (s *Store) findSubAsset(id string) (*subAssetTree, *hierarchy.Node[types.SubAsset]) {
	for a := range s.assets.All() {
		tree, ok := s.trees[a.ID]
		if !ok {
			continue
		}
		if node := tree.Find(id); node != nil {
			return tree, node
		}
	}
	return nil, nil
}

func (s *Store) subAssetCount() int {
	total := 0
	for _, tree := range s.trees {
		total += tree.Len()
	}
	return total
}

func treeNodes(tree *subAssetTree) []types.SubAssetNode {
	var out []types.SubAssetNode
	tree.Walk(func(n *hierarchy.Node[types.SubAsset], depth int) bool {
		node := types.SubAssetNode{SubAsset: n.Value, Depth: depth}
		if p := n.Parent(); p != nil {
			node.ParentID = p.Value.ID
		}
		out = append(out, node)
		return true
	})
	return out
}
