package assetstore

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/assetstore/types"
)

// CategoryExists reports whether a category with this name exists, ignoring case
func (s *Store) CategoryExists(name string) bool {
	return read(s.lockManager, func() bool {
		_, ok := s.findCategory(name)
		return ok
	})
}

// AddCategory creates a category. Names are trimmed and must be unique
// ignoring case.
func (s *Store) AddCategory(name string) (category types.Category, err error) {
	defer s.observe("add_category", time.Now(), &err)

	name = strings.TrimSpace(name)
	if name == "" {
		return types.Category{}, fmt.Errorf("category name is required: %w", ErrInvalidInput)
	}

	err = s.lockManager.execute(writeOperation, func() error {
		if existing, ok := s.findCategory(name); ok {
			return fmt.Errorf("category %q: %w", existing.Name, ErrCategoryExists)
		}
		category = types.Category{Name: name}
		s.categories.Append(category)
		s.logger.Debug("category added", "category", name)
		return nil
	})
	return category, err
}

// DeleteCategory removes a category and every asset filed under it, each
// with the full asset cascade. Valuation records left without an asset are
// dropped as well. It returns the number of assets removed.
func (s *Store) DeleteCategory(name string) (removed int, err error) {
	defer s.observe("delete_category", time.Now(), &err)

	err = s.lockManager.execute(writeOperation, func() error {
		category, ok := s.findCategory(name)
		if !ok {
			return fmt.Errorf("category %q: %w", strings.TrimSpace(name), ErrCategoryNotFound)
		}

		var doomed []string
		s.assets.Each(func(a types.Asset) bool {
			if strings.EqualFold(a.Category, category.Name) {
				doomed = append(doomed, a.ID)
			}
			return true
		})
		for _, id := range doomed {
			s.deleteAssetLocked(id)
		}
		removed = len(doomed)

		orphans := s.values.RemoveIf(func(v types.AssetValueDetails) bool {
			return !s.assetExists(v.AssetID)
		})
		s.cascaded(CascadeValues, orphans)

		s.categories.RemoveIf(func(c types.Category) bool {
			return strings.EqualFold(c.Name, category.Name)
		})

		s.cascaded(CascadeAssets, removed)
		s.logger.Info("category deleted",
			"category", category.Name,
			"assets_removed", removed,
			"orphan_values_removed", orphans)
		return nil
	})
	return removed, err
}

// ListCategories returns the categories in insertion order
func (s *Store) ListCategories() []types.Category {
	return read(s.lockManager, s.categories.Items)
}

func (s *Store) findCategory(name string) (types.Category, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return types.Category{}, false
	}
	return s.categories.Find(func(c types.Category) bool {
		return strings.EqualFold(c.Name, name)
	})
}
