package assetstore_test

import (
	"bytes"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/arthur-debert/assetstore/assetstore"
	"github.com/arthur-debert/assetstore/testutil"
	"github.com/arthur-debert/assetstore/types"
)

// captureRecorder implements MetricsRecorder for assertions
type captureRecorder struct {
	mu        sync.Mutex
	ops       []string
	cascades  map[string]int
	evictions int
}

func newCaptureRecorder() *captureRecorder {
	return &captureRecorder{cascades: make(map[string]int)}
}

func (c *captureRecorder) Observe(op string, success bool, _ time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	outcome := "ok"
	if !success {
		outcome = "declined"
	}
	c.ops = append(c.ops, op+":"+outcome)
}

func (c *captureRecorder) Cascaded(kind string, count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cascades[kind] += count
}

func (c *captureRecorder) Evicted(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.evictions += count
}

func (c *captureRecorder) has(op string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, o := range c.ops {
		if o == op {
			return true
		}
	}
	return false
}

func emptyConfig() types.Config {
	cfg := types.DefaultConfig()
	cfg.SeedCategories = false
	return cfg
}

func TestNewSeedsDefaultCategories(t *testing.T) {
	store := testutil.NewStore(t)

	var names []string
	for _, c := range store.ListCategories() {
		names = append(names, c.Name)
	}
	testutil.AssertIDs(t, []string{"Kost", "Gedung", "Rumah", "Emas", "Kendaraan", "Elektronik"}, names, "default categories")

	if store.ID() == "" {
		t.Error("store should have an id")
	}
	other := testutil.NewStore(t)
	if other.ID() == store.ID() {
		t.Error("store ids should be unique")
	}
}

func TestNewWithoutSeeding(t *testing.T) {
	store := testutil.NewStore(t, assetstore.WithConfig(emptyConfig()))
	if n := len(store.ListCategories()); n != 0 {
		t.Errorf("expected no categories, got %d", n)
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	cfg := types.DefaultConfig()
	cfg.HistoryCapacity = 0
	if _, err := assetstore.New(assetstore.WithConfig(cfg)); err == nil {
		t.Fatal("expected an error for zero history capacity")
	}

	cfg = types.DefaultConfig()
	cfg.DefaultCategories = []string{"Rumah", "RUMAH"}
	if _, err := assetstore.New(assetstore.WithConfig(cfg)); err == nil {
		t.Fatal("expected an error for duplicate default categories")
	}
}

func TestConfigIsCopied(t *testing.T) {
	store := testutil.NewStore(t)
	cfg := store.Config()
	cfg.DefaultCategories[0] = "changed"
	if store.Config().DefaultCategories[0] != "Kost" {
		t.Error("Config should return a copy")
	}
}

func TestLoggerCarriesStoreID(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	store := testutil.NewStore(t, assetstore.WithLogger(logger))

	if _, err := store.AddAsset("Villa", "Rumah"); err != nil {
		t.Fatalf("AddAsset failed: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, "store_id="+store.ID()) {
		t.Errorf("log output does not carry the store id:\n%s", out)
	}
	if !strings.Contains(out, "asset added") {
		t.Errorf("expected an asset added record:\n%s", out)
	}
}

func TestRecorderObservesOutcomes(t *testing.T) {
	rec := newCaptureRecorder()
	store := testutil.NewStore(t, assetstore.WithRecorder(rec))

	if _, err := store.AddAsset("Villa", "Rumah"); err != nil {
		t.Fatalf("AddAsset failed: %v", err)
	}
	if _, err := store.AddAsset("Villa", "Unknown"); err == nil {
		t.Fatal("expected AddAsset to fail for unknown category")
	}

	if !rec.has("add_asset:ok") || !rec.has("add_asset:declined") {
		t.Errorf("expected both outcomes to be observed, got %v", rec.ops)
	}
	if !rec.has("add_category:ok") {
		t.Error("seeding should be observed as add_category")
	}
}

func TestConcurrentAccess(t *testing.T) {
	store := testutil.NewStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				a, err := store.AddAsset("Villa", "Rumah")
				if err != nil {
					t.Errorf("AddAsset failed: %v", err)
					return
				}
				store.RecordAccess(a.ID, a.Name, types.HistoryAsset)
				_ = store.SearchAssets("villa")
				_ = store.Stats()
			}
		}()
	}
	wg.Wait()

	assets := store.ListAssets()
	if len(assets) != 200 {
		t.Fatalf("expected 200 assets, got %d", len(assets))
	}
	seen := make(map[string]bool)
	for _, a := range assets {
		if seen[a.ID] {
			t.Fatalf("duplicate id %s", a.ID)
		}
		seen[a.ID] = true
	}
	if len(store.History()) != 15 {
		t.Errorf("history should be full, got %d", len(store.History()))
	}
}
