package assetstore_test

import (
	"testing"

	"github.com/arthur-debert/assetstore/assetstore"
	"github.com/arthur-debert/assetstore/search"
	"github.com/arthur-debert/assetstore/testutil"
	"github.com/arthur-debert/assetstore/types"
)

func TestAddAsset(t *testing.T) {
	store := testutil.NewStore(t)

	asset, err := store.AddAsset("  Villa A ", "rumah")
	if err != nil {
		t.Fatalf("AddAsset failed: %v", err)
	}
	want := types.Asset{ID: "R0001", Name: "Villa A", Category: "Rumah"}
	if asset != want {
		t.Errorf("want %+v, got %+v", want, asset)
	}

	value, ok := store.GetAssetValue("R0001")
	if !ok {
		t.Fatal("a default value record should be created")
	}
	if value != (types.AssetValueDetails{AssetID: "R0001", CurrentValue: 1000}) {
		t.Errorf("unexpected default value %+v", value)
	}

	t.Run("validation", func(t *testing.T) {
		_, err := store.AddAsset(" ", "Rumah")
		testutil.AssertErrorIs(t, err, assetstore.ErrInvalidInput)

		_, err = store.AddAsset("Villa", "Apartemen")
		testutil.AssertErrorIs(t, err, assetstore.ErrCategoryNotFound)

		if len(store.ListAssets()) != 1 {
			t.Error("declined adds must not create assets")
		}
	})

	t.Run("configured default value", func(t *testing.T) {
		cfg := types.DefaultConfig()
		cfg.DefaultValue = 0
		s := testutil.NewStore(t, assetstore.WithConfig(cfg))
		a, _ := s.AddAsset("Cincin", "Emas")
		if v, _ := s.GetAssetValue(a.ID); v.CurrentValue != 0 {
			t.Errorf("expected configured default 0, got %d", v.CurrentValue)
		}
	})
}

func TestAssetIDPolicies(t *testing.T) {
	t.Run("monotonic", func(t *testing.T) {
		store := testutil.NewStore(t)
		a1, _ := store.AddAsset("A", "Rumah")
		_, _ = store.AddAsset("B", "Rumah")
		if err := store.DeleteAsset(a1.ID); err != nil {
			t.Fatalf("DeleteAsset failed: %v", err)
		}
		a3, _ := store.AddAsset("C", "Rumah")
		if a3.ID != "R0003" {
			t.Errorf("expected R0003, got %s", a3.ID)
		}
	})

	t.Run("live-count", func(t *testing.T) {
		cfg := types.DefaultConfig()
		cfg.IDPolicy = types.IDPolicyLiveCount
		store := testutil.NewStore(t, assetstore.WithConfig(cfg))
		a1, _ := store.AddAsset("A", "Rumah")
		_, _ = store.AddAsset("B", "Rumah")
		_ = store.DeleteAsset(a1.ID)
		a3, _ := store.AddAsset("C", "Rumah")
		if a3.ID != "R0002" {
			t.Errorf("expected legacy R0002, got %s", a3.ID)
		}
	})

	t.Run("shared initial", func(t *testing.T) {
		store, u := testutil.LoadUniverse(t)
		if u.LaptopKerja.ID != "E0002" || u.MobilDinas.ID != "K0002" {
			t.Errorf("categories sharing an initial share a sequence, got %s and %s", u.LaptopKerja.ID, u.MobilDinas.ID)
		}
		a, _ := store.AddAsset("Kalung", "Emas")
		if a.ID != "E0003" {
			t.Errorf("expected E0003, got %s", a.ID)
		}
	})
}

func TestGetAssetAndName(t *testing.T) {
	store, u := testutil.LoadUniverse(t)

	got, ok := store.GetAsset(u.GedungKantor.ID)
	if !ok || got != u.GedungKantor {
		t.Errorf("GetAsset returned %+v, %v", got, ok)
	}
	if _, ok := store.GetAsset("X9999"); ok {
		t.Error("unknown id should not be found")
	}

	if name := store.AssetName(u.KostMelati.ID); name != "Kost Melati" {
		t.Errorf("unexpected name %q", name)
	}
	if name := store.AssetName("X9999"); name != "X9999" {
		t.Errorf("unknown asset name should fall back to the id, got %q", name)
	}
}

func TestListAssetsReturnsCopies(t *testing.T) {
	store, u := testutil.LoadUniverse(t)

	assets := store.ListAssets()
	assets[0].Name = "mutated"
	if got, _ := store.GetAsset(u.RumahUtama.ID); got.Name != "Rumah Utama" {
		t.Error("mutating a returned slice must not change the store")
	}
}

func TestDeleteAssetCascade(t *testing.T) {
	store, u := testutil.LoadUniverse(t)
	rec := newCaptureRecorder()
	store2, u2 := testutil.LoadUniverse(t, assetstore.WithRecorder(rec))

	t.Run("kost melati", func(t *testing.T) {
		store.RecordAccess(u.Lemari.ID, u.Lemari.Name, types.HistorySubAsset)

		if err := store.DeleteAsset(u.KostMelati.ID); err != nil {
			t.Fatalf("DeleteAsset failed: %v", err)
		}
		if _, ok := store.GetAsset(u.KostMelati.ID); ok {
			t.Error("asset still present")
		}
		if _, ok := store.GetAssetValue(u.KostMelati.ID); ok {
			t.Error("value record still present")
		}
		if len(store.ConnectionsForAsset(u.KostMelati.ID)) != 0 {
			t.Error("connections still present")
		}
		if len(store.ListSubAssets(u.KostMelati.ID)) != 0 {
			t.Error("sub-assets still present")
		}
		if _, ok := store.GetSubAsset(u.Lemari.ID); ok {
			t.Error("nested sub-asset still reachable")
		}
		for _, h := range store.History() {
			if h.AssetID == u.Lemari.ID || h.AssetID == u.Kamar1.ID {
				t.Errorf("history entry %s survived", h.AssetID)
			}
		}
		if st := store.Stats(); st.SubAssets != 2 || st.Connections != 2 {
			t.Errorf("unexpected stats after delete: %+v", st)
		}
	})

	t.Run("unknown", func(t *testing.T) {
		err := store.DeleteAsset("X0001")
		testutil.AssertErrorIs(t, err, assetstore.ErrAssetNotFound)
	})

	t.Run("cascade metrics", func(t *testing.T) {
		if err := store2.DeleteAsset(u2.GedungKantor.ID); err != nil {
			t.Fatalf("DeleteAsset failed: %v", err)
		}
		if rec.cascades[assetstore.CascadeConnections] != 2 {
			t.Errorf("expected 2 cascaded connections, got %d", rec.cascades[assetstore.CascadeConnections])
		}
		if rec.cascades[assetstore.CascadeSubAssets] != 2 {
			t.Errorf("expected 2 cascaded sub-assets, got %d", rec.cascades[assetstore.CascadeSubAssets])
		}
		if rec.cascades[assetstore.CascadeValues] != 1 {
			t.Errorf("expected 1 cascaded value, got %d", rec.cascades[assetstore.CascadeValues])
		}
	})
}

func TestSearchAssets(t *testing.T) {
	store, u := testutil.LoadUniverse(t)

	tests := []struct {
		term string
		want []string
	}{
		{"rumah", []string{u.RumahUtama.ID, u.RumahPantai.ID}},
		{"E000", []string{u.EmasBatangan.ID, u.LaptopKerja.ID}},
		{"KOST", []string{u.KostMelati.ID}},
		{"lek", []string{u.LaptopKerja.ID}},
		{"", []string{}},
		{"   ", []string{}},
		{"zzz", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			testutil.AssertIDs(t, tt.want, testutil.AssetIDs(store.SearchAssets(tt.term)), "search "+tt.term)
		})
	}
}

func TestSearchRanked(t *testing.T) {
	store, u := testutil.LoadUniverse(t)

	results, err := store.SearchRanked(search.SearchOptions{Query: "kost"})
	if err != nil {
		t.Fatalf("SearchRanked failed: %v", err)
	}
	if len(results) != 1 || results[0].Asset.ID != u.KostMelati.ID {
		t.Fatalf("unexpected results %+v", results)
	}
	if results[0].MatchType != search.MatchExact {
		t.Errorf("category match should be exact, got %s", results[0].MatchType)
	}
}

func TestViewAsset(t *testing.T) {
	store, u := testutil.LoadUniverse(t)

	asset, value, err := store.ViewAsset(u.GedungKantor.ID)
	if err != nil {
		t.Fatalf("ViewAsset failed: %v", err)
	}
	if asset != u.GedungKantor || value.CurrentValue != 900000 {
		t.Errorf("unexpected view %+v %+v", asset, value)
	}
	latest, _ := store.LatestAccess()
	if latest.AssetID != u.GedungKantor.ID || latest.AssetType != types.HistoryAsset {
		t.Errorf("view should be recorded, got %+v", latest)
	}

	_, _, err = store.ViewAsset("X0001")
	testutil.AssertErrorIs(t, err, assetstore.ErrAssetNotFound)
}
