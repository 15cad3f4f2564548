package testutil

import (
	_ "embed"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/assetstore/assetstore"
	"github.com/arthur-debert/assetstore/types"
)

// FixtureTime is the clock of every store built by LoadUniverse
var FixtureTime = time.Date(2024, 3, 9, 14, 5, 0, 0, time.UTC)

//go:embed testdata/universe.yaml
var universeYAML []byte

// UniverseData provides typed access to the records created by LoadUniverse
type UniverseData struct {
	// Assets, in creation order
	RumahUtama   types.Asset // ID: "R0001" - custom valuation, viewed once
	RumahPantai  types.Asset // ID: "R0002" - added with a lower-case category
	GedungKantor types.Asset // ID: "G0001" - custom valuation
	KostMelati   types.Asset // ID: "K0001" - owns the deepest sub-asset tree
	EmasBatangan types.Asset // ID: "E0001"
	LaptopKerja  types.Asset // ID: "E0002" - shares the "E" prefix with Emas
	MobilDinas   types.Asset // ID: "K0002" - shares the "K" prefix with Kost

	// Kost Melati tree
	Kamar1 types.SubAsset // ID: "K0001-SUB001" - rented to Budi
	Kamar2 types.SubAsset // ID: "K0001-SUB002"
	Lemari types.SubAsset // ID: "K0001-SUB003" - child of Kamar1

	// Gedung Kantor tree
	Lantai1    types.SubAsset // ID: "G0001-SUB001"
	RuangRapat types.SubAsset // ID: "G0001-SUB002" - child of Lantai1

	// Tender queue, front to back
	RenovasiAtap  types.TenderProject // ID: "TNR0001" - priority 2
	Pengecatan    types.TenderProject // ID: "TNR0002" - default priority
	InstalasiCCTV types.TenderProject // ID: "TNR0003" - priority 1

	// ByKey maps fixture keys to asset ids, sub-asset ids and tender ids
	ByKey map[string]string
}

type fixtureValue struct {
	Current     int `yaml:"current"`
	Maintenance int `yaml:"maintenance"`
	Tax         int `yaml:"tax"`
}

type fixtureAsset struct {
	Key      string        `yaml:"key"`
	Name     string        `yaml:"name"`
	Category string        `yaml:"category"`
	Value    *fixtureValue `yaml:"value"`
}

type fixtureConnection struct {
	From        string `yaml:"from"`
	To          string `yaml:"to"`
	Weight      int    `yaml:"weight"`
	Description string `yaml:"description"`
}

type fixtureSubAsset struct {
	Key         string `yaml:"key"`
	Asset       string `yaml:"asset"`
	Parent      string `yaml:"parent"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
}

type fixtureRental struct {
	SubAsset string `yaml:"sub_asset"`
	Renter   string `yaml:"renter"`
	Price    int    `yaml:"price"`
}

type fixtureTender struct {
	Key               string `yaml:"key"`
	types.TenderInput `yaml:",inline"`
}

type fixtureData struct {
	Categories  []string            `yaml:"categories"`
	Assets      []fixtureAsset      `yaml:"assets"`
	Connections []fixtureConnection `yaml:"connections"`
	SubAssets   []fixtureSubAsset   `yaml:"sub_assets"`
	Rentals     []fixtureRental     `yaml:"rentals"`
	Tenders     []fixtureTender     `yaml:"tenders"`
	Views       []string            `yaml:"views"`
}

// NewStore creates an empty store with the default configuration and the
// fixture clock. Extra options are applied after the defaults.
func NewStore(t *testing.T, opts ...assetstore.Option) *assetstore.Store {
	t.Helper()

	opts = append([]assetstore.Option{
		assetstore.WithTimeFunc(func() time.Time { return FixtureTime }),
	}, opts...)
	store, err := assetstore.New(opts...)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	return store
}

// LoadUniverse returns a store populated with the fixture data
func LoadUniverse(t *testing.T, opts ...assetstore.Option) (*assetstore.Store, *UniverseData) {
	t.Helper()

	var fixture fixtureData
	if err := yaml.Unmarshal(universeYAML, &fixture); err != nil {
		t.Fatalf("failed to parse fixture: %v", err)
	}

	store := NewStore(t, opts...)
	universe := &UniverseData{ByKey: make(map[string]string)}

	for _, name := range fixture.Categories {
		if _, err := store.AddCategory(name); err != nil {
			t.Fatalf("failed to add category %s: %v", name, err)
		}
	}

	for _, fa := range fixture.Assets {
		asset, err := store.AddAsset(fa.Name, fa.Category)
		if err != nil {
			t.Fatalf("failed to add asset %s: %v", fa.Key, err)
		}
		if fa.Value != nil {
			if _, err := store.UpsertAssetValue(asset.ID, fa.Value.Current, fa.Value.Maintenance, fa.Value.Tax); err != nil {
				t.Fatalf("failed to set value of %s: %v", fa.Key, err)
			}
		}
		universe.ByKey[fa.Key] = asset.ID
		universe.assignAsset(fa.Key, asset)
	}

	for _, fc := range fixture.Connections {
		if _, err := store.AddConnection(universe.ByKey[fc.From], universe.ByKey[fc.To], fc.Weight, fc.Description); err != nil {
			t.Fatalf("failed to connect %s and %s: %v", fc.From, fc.To, err)
		}
	}

	for _, fs := range fixture.SubAssets {
		sub, err := store.AddSubAsset(types.SubAssetInput{
			ParentAssetID:    universe.ByKey[fs.Asset],
			ParentSubAssetID: universe.ByKey[fs.Parent],
			Name:             fs.Name,
			Description:      fs.Description,
		})
		if err != nil {
			t.Fatalf("failed to add sub-asset %s: %v", fs.Key, err)
		}
		universe.ByKey[fs.Key] = sub.ID
	}

	for _, fr := range fixture.Rentals {
		if err := store.UpdateSubAssetRental(universe.ByKey[fr.SubAsset], true, fr.Renter, fr.Price); err != nil {
			t.Fatalf("failed to rent %s: %v", fr.SubAsset, err)
		}
	}

	for _, ft := range fixture.Tenders {
		tender, err := store.AddTender(ft.TenderInput)
		if err != nil {
			t.Fatalf("failed to add tender %s: %v", ft.Key, err)
		}
		universe.ByKey[ft.Key] = tender.ID
		universe.assignTender(ft.Key, tender)
	}

	for _, key := range fixture.Views {
		if _, _, err := store.ViewAsset(universe.ByKey[key]); err != nil {
			t.Fatalf("failed to view %s: %v", key, err)
		}
	}

	// Sub-assets are read back after the rentals so the records are current
	for key, field := range map[string]*types.SubAsset{
		"kamar_1":     &universe.Kamar1,
		"kamar_2":     &universe.Kamar2,
		"lemari":      &universe.Lemari,
		"lantai_1":    &universe.Lantai1,
		"ruang_rapat": &universe.RuangRapat,
	} {
		sub, ok := store.GetSubAsset(universe.ByKey[key])
		if !ok {
			t.Fatalf("fixture sub-asset %s missing", key)
		}
		*field = sub
	}

	return store, universe
}

func (u *UniverseData) assignAsset(key string, asset types.Asset) {
	switch key {
	case "rumah_utama":
		u.RumahUtama = asset
	case "rumah_pantai":
		u.RumahPantai = asset
	case "gedung_kantor":
		u.GedungKantor = asset
	case "kost_melati":
		u.KostMelati = asset
	case "emas_batangan":
		u.EmasBatangan = asset
	case "laptop_kerja":
		u.LaptopKerja = asset
	case "mobil_dinas":
		u.MobilDinas = asset
	}
}

func (u *UniverseData) assignTender(key string, tender types.TenderProject) {
	switch key {
	case "renovasi_atap":
		u.RenovasiAtap = tender
	case "pengecatan":
		u.Pengecatan = tender
	case "instalasi_cctv":
		u.InstalasiCCTV = tender
	}
}

// Assets returns the fixture assets in creation order
func (u *UniverseData) Assets() []types.Asset {
	return []types.Asset{
		u.RumahUtama, u.RumahPantai, u.GedungKantor, u.KostMelati,
		u.EmasBatangan, u.LaptopKerja, u.MobilDinas,
	}
}
