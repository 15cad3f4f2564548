package assetstore

import (
	"testing"

	"github.com/arthur-debert/assetstore/types"
)

// dropValue removes a valuation record behind the store's back, the state a
// store reaches when records are imported without their valuations
func dropValue(s *Store, assetID string) {
	s.values.RemoveIf(func(v types.AssetValueDetails) bool { return v.AssetID == assetID })
}

func TestEnsureDefaultValuesBackfills(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	a, _ := s.AddAsset("Villa", "Rumah")
	b, _ := s.AddAsset("Cincin", "Emas")
	dropValue(s, a.ID)
	dropValue(s, b.ID)

	if n := s.EnsureDefaultValues(); n != 2 {
		t.Fatalf("expected 2 records created, got %d", n)
	}
	v, ok := s.GetAssetValue(a.ID)
	if !ok || v != (types.AssetValueDetails{AssetID: a.ID, CurrentValue: 1000}) {
		t.Errorf("unexpected backfilled record %+v", v)
	}
	if n := s.EnsureDefaultValues(); n != 0 {
		t.Errorf("second backfill should create nothing, got %d", n)
	}
}

func TestViewAssetCreatesDefaultValue(t *testing.T) {
	s, err := New()
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	a, _ := s.AddAsset("Villa", "Rumah")
	dropValue(s, a.ID)

	_, v, err := s.ViewAsset(a.ID)
	if err != nil {
		t.Fatalf("ViewAsset failed: %v", err)
	}
	if v.CurrentValue != 1000 {
		t.Errorf("expected default value, got %+v", v)
	}
	if _, ok := s.GetAssetValue(a.ID); !ok {
		t.Error("view should persist the default record")
	}
}

func TestReadHelper(t *testing.T) {
	lm := newLockManager()
	if got := read(lm, func() int { return 42 }); got != 42 {
		t.Errorf("read returned %d", got)
	}
}
