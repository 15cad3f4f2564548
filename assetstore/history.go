package assetstore

import (
	"strings"

	"github.com/arthur-debert/assetstore/types"
)

// RecordAccess pushes an entry on the recently-accessed stack, stamped with
// the store clock. An entry for the same id is promoted to the top instead of
// duplicated, and accessing the current top again changes nothing. It
// reports whether the history changed.
func (s *Store) RecordAccess(assetID, assetName, assetType string) bool {
	assetID = strings.TrimSpace(assetID)
	if assetID == "" {
		return false
	}
	var changed bool
	_ = s.lockManager.execute(writeOperation, func() error {
		changed = s.pushHistory(assetID, assetName, assetType)
		return nil
	})
	return changed
}

// History returns the entries from most to least recent
func (s *Store) History() []types.AssetHistory {
	return read(s.lockManager, s.history.Items)
}

// LatestAccess returns the most recent entry
func (s *Store) LatestAccess() (types.AssetHistory, bool) {
	type result struct {
		entry types.AssetHistory
		ok    bool
	}
	r := read(s.lockManager, func() result {
		h, ok := s.history.Peek()
		return result{h, ok}
	})
	return r.entry, r.ok
}

// PopHistory discards the most recent entry. It returns false when the
// history is empty.
func (s *Store) PopHistory() bool {
	var popped bool
	_ = s.lockManager.execute(writeOperation, func() error {
		popped = s.history.Pop()
		return nil
	})
	return popped
}

// ClearHistory empties the history and returns how many entries were dropped
func (s *Store) ClearHistory() int {
	var cleared int
	_ = s.lockManager.execute(writeOperation, func() error {
		cleared = s.history.Clear()
		return nil
	})
	s.logger.Debug("history cleared", "entries", cleared)
	return cleared
}

// pushHistory records an access. The caller holds the write lock.
func (s *Store) pushHistory(assetID, assetName, assetType string) bool {
	before := s.history.Evictions()
	changed := s.history.Push(types.AssetHistory{
		AssetID:    assetID,
		AssetName:  assetName,
		AssetType:  assetType,
		AccessTime: s.config.FormatTime(s.now()),
	})
	if evicted := s.history.Evictions() - before; evicted > 0 {
		s.recorder.Evicted(evicted)
	}
	return changed
}
