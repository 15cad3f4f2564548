package testutil

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arthur-debert/assetstore/types"
)

// AssetIDs returns the ids of assets in order
func AssetIDs(assets []types.Asset) []string {
	ids := make([]string, 0, len(assets))
	for _, a := range assets {
		ids = append(ids, a.ID)
	}
	return ids
}

// SubAssetIDs returns the ids of sub-assets in order
func SubAssetIDs(subs []types.SubAsset) []string {
	ids := make([]string, 0, len(subs))
	for _, s := range subs {
		ids = append(ids, s.ID)
	}
	return ids
}

// HistoryIDs returns the record ids of history entries, most recent first
func HistoryIDs(entries []types.AssetHistory) []string {
	ids := make([]string, 0, len(entries))
	for _, h := range entries {
		ids = append(ids, h.AssetID)
	}
	return ids
}

// TenderIDs returns the ids of tenders in queue order
func TenderIDs(tenders []types.TenderProject) []string {
	ids := make([]string, 0, len(tenders))
	for _, tp := range tenders {
		ids = append(ids, tp.ID)
	}
	return ids
}

// AssertIDs fails the test when got differs from want
func AssertIDs(t *testing.T, want, got []string, context string) {
	t.Helper()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", context, diff)
	}
}

// AssertErrorIs fails the test unless err wraps target
func AssertErrorIs(t *testing.T, err, target error) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected error wrapping %v, got nil", target)
	}
	if !errors.Is(err, target) {
		t.Fatalf("expected error wrapping %v, got %v", target, err)
	}
}
