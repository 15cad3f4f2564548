package assetstore

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/arthur-debert/assetstore/assetstore/container"
	"github.com/arthur-debert/assetstore/assetstore/hierarchy"
	"github.com/arthur-debert/assetstore/internal/ids"
	"github.com/arthur-debert/assetstore/types"
)

// subAssetTree is the owning tree of one asset's sub-assets, keyed by id
type subAssetTree = hierarchy.Tree[string, types.SubAsset]

// Store holds every collection of the asset data layer. Create it with New
// and pass it explicitly to whatever needs it.
type Store struct {
	id          string
	config      types.Config
	logger      *slog.Logger
	recorder    MetricsRecorder
	lockManager *lockManager
	idGenerator *ids.Generator
	// timeFunc is used to stamp history entries, defaults to time.Now
	timeFunc func() time.Time

	categories  *container.List[types.Category]
	assets      *container.List[types.Asset]
	values      *container.List[types.AssetValueDetails]
	connections *container.List[types.AssetConnection]
	trees       map[string]*subAssetTree
	tenders     *container.Queue[types.TenderProject]
	history     *container.BoundedStack[types.AssetHistory, string]
}

// New creates a store. With the default configuration the six default
// categories are created up front.
func New(opts ...Option) (*Store, error) {
	s := &Store{
		id:          uuid.NewString(),
		config:      types.DefaultConfig(),
		logger:      slog.New(slog.DiscardHandler),
		recorder:    noopRecorder{},
		lockManager: newLockManager(),
		timeFunc:    time.Now,
		categories:  container.NewList[types.Category](),
		assets:      container.NewList[types.Asset](),
		values:      container.NewList[types.AssetValueDetails](),
		connections: container.NewList[types.AssetConnection](),
		trees:       make(map[string]*subAssetTree),
		tenders:     container.NewQueue[types.TenderProject](),
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid store configuration: %w", err)
	}
	policy, err := types.ParseIDPolicy(string(s.config.IDPolicy))
	if err != nil {
		return nil, fmt.Errorf("invalid store configuration: %w", err)
	}
	s.idGenerator = ids.NewGenerator(policy)

	history, err := container.NewBoundedStack(s.config.HistoryCapacity, func(h types.AssetHistory) string {
		return h.AssetID
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create history stack: %w", err)
	}
	s.history = history

	s.logger = s.logger.With("store_id", s.id)

	if s.config.SeedCategories {
		for _, name := range s.config.DefaultCategories {
			if _, err := s.AddCategory(name); err != nil {
				return nil, fmt.Errorf("failed to seed category %q: %w", name, err)
			}
		}
	}

	s.logger.Debug("store created",
		"id_policy", policy,
		"history_capacity", s.config.HistoryCapacity,
		"categories", s.categories.Len())
	return s, nil
}

// ID returns the identifier of this store instance, attached to every log line
func (s *Store) ID() string {
	return s.id
}

// Config returns the configuration the store was built with
func (s *Store) Config() types.Config {
	cfg := s.config
	cfg.DefaultCategories = append([]string(nil), s.config.DefaultCategories...)
	return cfg
}

// now returns the current time from the configured clock
func (s *Store) now() time.Time {
	return s.timeFunc()
}
