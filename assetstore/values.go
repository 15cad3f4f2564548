package assetstore

import (
	"fmt"
	"time"

	"github.com/arthur-debert/assetstore/types"
)

// UpsertAssetValue creates or replaces the valuation record of an asset.
// Amounts cannot be negative.
func (s *Store) UpsertAssetValue(assetID string, value, maintenance, tax int) (details types.AssetValueDetails, err error) {
	defer s.observe("upsert_asset_value", time.Now(), &err)

	details = types.AssetValueDetails{
		AssetID:         assetID,
		CurrentValue:    value,
		MaintenanceCost: maintenance,
		PropertyTax:     tax,
	}
	if err := validateValue(details); err != nil {
		return types.AssetValueDetails{}, err
	}

	err = s.lockManager.execute(writeOperation, func() error {
		if !s.assetExists(assetID) {
			return fmt.Errorf("asset %q: %w", assetID, ErrAssetNotFound)
		}
		s.putValue(details)
		s.logger.Debug("asset value saved", "asset_id", assetID, "current_value", value)
		return nil
	})
	if err != nil {
		return types.AssetValueDetails{}, err
	}
	return details, nil
}

// UpdateAssetValue edits the valuation record of an asset in place. fn
// receives a copy of the record (a default one if none exists yet); the copy
// is validated and stored only if fn returns nil. The edit is recorded in
// the history.
func (s *Store) UpdateAssetValue(assetID string, fn func(*types.AssetValueDetails) error) (err error) {
	defer s.observe("update_asset_value", time.Now(), &err)

	return s.lockManager.execute(writeOperation, func() error {
		asset, ok := s.findAsset(assetID)
		if !ok {
			return fmt.Errorf("asset %q: %w", assetID, ErrAssetNotFound)
		}

		details, ok := s.findValue(assetID)
		if !ok {
			details = s.defaultValue(assetID)
		}
		if err := fn(&details); err != nil {
			return err
		}
		if details.AssetID != assetID {
			return fmt.Errorf("asset id of a valuation record cannot change: %w", ErrInvalidInput)
		}
		if err := validateValue(details); err != nil {
			return err
		}

		s.putValue(details)
		s.pushHistory(asset.ID, asset.Name, types.HistoryAssetValue)
		return nil
	})
}

// GetAssetValue returns the valuation record of an asset
func (s *Store) GetAssetValue(assetID string) (types.AssetValueDetails, bool) {
	type result struct {
		details types.AssetValueDetails
		ok      bool
	}
	r := read(s.lockManager, func() result {
		d, ok := s.findValue(assetID)
		return result{d, ok}
	})
	return r.details, r.ok
}

// ListAssetValues returns every valuation record in insertion order
func (s *Store) ListAssetValues() []types.AssetValueDetails {
	return read(s.lockManager, s.values.Items)
}

// EnsureDefaultValues creates a default valuation record for every asset that
// has none and returns how many were created
func (s *Store) EnsureDefaultValues() int {
	created := 0
	_ = s.lockManager.execute(writeOperation, func() error {
		for a := range s.assets.All() {
			if _, ok := s.findValue(a.ID); !ok {
				s.values.Append(s.defaultValue(a.ID))
				created++
			}
		}
		return nil
	})
	if created > 0 {
		s.logger.Debug("default values created", "count", created)
	}
	return created
}

func (s *Store) defaultValue(assetID string) types.AssetValueDetails {
	return types.AssetValueDetails{AssetID: assetID, CurrentValue: s.config.DefaultValue}
}

// ensureValue returns the valuation record of assetID, creating a default
// one when missing. The caller holds the write lock.
func (s *Store) ensureValue(assetID string) types.AssetValueDetails {
	if d, ok := s.findValue(assetID); ok {
		return d
	}
	d := s.defaultValue(assetID)
	s.values.Append(d)
	return d
}

func (s *Store) findValue(assetID string) (types.AssetValueDetails, bool) {
	return s.values.Find(func(v types.AssetValueDetails) bool { return v.AssetID == assetID })
}

func (s *Store) putValue(details types.AssetValueDetails) {
	updated := s.values.Update(
		func(v types.AssetValueDetails) bool { return v.AssetID == details.AssetID },
		func(v *types.AssetValueDetails) { *v = details },
	)
	if !updated {
		s.values.Append(details)
	}
}

func validateValue(d types.AssetValueDetails) error {
	if d.CurrentValue < 0 || d.MaintenanceCost < 0 || d.PropertyTax < 0 {
		return fmt.Errorf("asset value, maintenance cost and property tax cannot be negative: %w", ErrInvalidInput)
	}
	return nil
}
