package assetstore_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/arthur-debert/assetstore/assetstore"
	"github.com/arthur-debert/assetstore/testutil"
	"github.com/arthur-debert/assetstore/types"
)

func TestEndToEndScenario(t *testing.T) {
	store := testutil.NewStore(t, assetstore.WithConfig(emptyConfig()))

	if _, err := store.AddCategory("Rumah"); err != nil {
		t.Fatalf("AddCategory failed: %v", err)
	}

	villaA, err := store.AddAsset("Villa A", "Rumah")
	if err != nil {
		t.Fatalf("AddAsset failed: %v", err)
	}
	if villaA.ID != "R0001" {
		t.Errorf("expected R0001, got %s", villaA.ID)
	}
	if v, ok := store.GetAssetValue("R0001"); !ok || v != (types.AssetValueDetails{AssetID: "R0001", CurrentValue: 1000}) {
		t.Errorf("expected default value record (1000,0,0), got %+v", v)
	}

	villaB, err := store.AddAsset("Villa B", "Rumah")
	if err != nil {
		t.Fatalf("AddAsset failed: %v", err)
	}
	if villaB.ID != "R0002" {
		t.Errorf("expected R0002, got %s", villaB.ID)
	}

	if _, err := store.AddConnection("R0001", "R0002", 5, ""); err != nil {
		t.Fatalf("AddConnection failed: %v", err)
	}
	_, err = store.AddConnection("R0002", "R0001", 9, "")
	testutil.AssertErrorIs(t, err, assetstore.ErrConnectionExists)

	conns := store.ListConnections()
	if len(conns) != 1 || conns[0].Weight != 5 {
		t.Fatalf("expected one connection with weight 5, got %+v", conns)
	}

	removed, err := store.DeleteCategory("Rumah")
	if err != nil {
		t.Fatalf("DeleteCategory failed: %v", err)
	}
	if removed != 2 {
		t.Errorf("expected 2 assets removed, got %d", removed)
	}
	if n := len(store.ListAssets()); n != 0 {
		t.Errorf("expected no assets, got %d", n)
	}
	if n := len(store.ListAssetValues()); n != 0 {
		t.Errorf("expected no value records, got %d", n)
	}
	if n := len(store.ListConnections()); n != 0 {
		t.Errorf("expected no connections, got %d", n)
	}
}

func TestSnapshot(t *testing.T) {
	store, u := testutil.LoadUniverse(t)

	snap := store.Snapshot()
	if snap.StoreID != store.ID() {
		t.Errorf("snapshot should carry the store id")
	}
	if len(snap.Assets) != 7 || len(snap.Values) != 7 || len(snap.Connections) != 3 {
		t.Errorf("unexpected collection sizes: %d assets, %d values, %d connections",
			len(snap.Assets), len(snap.Values), len(snap.Connections))
	}
	if len(snap.SubAssets) != 5 {
		t.Fatalf("expected 5 sub-assets without roots, got %d", len(snap.SubAssets))
	}
	for _, n := range snap.SubAssets {
		if types.IsRootSubAssetID(n.ID) || n.Depth < 1 {
			t.Errorf("unexpected node in snapshot: %+v", n)
		}
	}
	if snap.SubAssets[0].ID != u.Lantai1.ID {
		t.Errorf("snapshot should follow asset order, got %s first", snap.SubAssets[0].ID)
	}
	if diff := cmp.Diff(store.Stats(), snap.Stats); diff != "" {
		t.Errorf("snapshot stats differ from live stats (-live +snapshot):\n%s", diff)
	}

	snap.Assets[0].Name = "mutated"
	snap.Tenders[0].Status = "mutated"
	if a, _ := store.GetAsset(u.RumahUtama.ID); a.Name != "Rumah Utama" {
		t.Error("snapshot must be a copy")
	}
	if tp, _ := store.PeekNextTender(); tp.Status != types.TenderPending {
		t.Error("snapshot tenders must be copies")
	}
}
