package assetstore

import (
	"fmt"
	"strings"
	"time"

	"github.com/arthur-debert/assetstore/types"
)

// AddConnection links two distinct existing assets with a positive weight.
// Connections are undirected: a pair can be linked only once, whatever the
// orientation.
func (s *Store) AddConnection(from, to string, weight int, description string) (conn types.AssetConnection, err error) {
	defer s.observe("add_connection", time.Now(), &err)

	from, to = strings.TrimSpace(from), strings.TrimSpace(to)
	switch {
	case from == "" || to == "":
		return types.AssetConnection{}, fmt.Errorf("both connection endpoints are required: %w", ErrInvalidInput)
	case from == to:
		return types.AssetConnection{}, fmt.Errorf("cannot connect asset %q to itself: %w", from, ErrInvalidInput)
	case weight <= 0:
		return types.AssetConnection{}, fmt.Errorf("connection weight must be positive, got %d: %w", weight, ErrInvalidInput)
	}

	err = s.lockManager.execute(writeOperation, func() error {
		for _, id := range []string{from, to} {
			if !s.assetExists(id) {
				return fmt.Errorf("asset %q: %w", id, ErrAssetNotFound)
			}
		}
		if s.connectionExists(from, to) {
			return fmt.Errorf("connection %s <-> %s: %w", from, to, ErrConnectionExists)
		}

		conn = types.AssetConnection{
			FromAssetID: from,
			ToAssetID:   to,
			Weight:      weight,
			Description: strings.TrimSpace(description),
		}
		s.connections.Append(conn)
		s.logger.Debug("connection added", "from", from, "to", to, "weight", weight)
		return nil
	})
	if err != nil {
		return types.AssetConnection{}, err
	}
	return conn, nil
}

// ConnectionExists reports whether a and b are connected, in either orientation
func (s *Store) ConnectionExists(a, b string) bool {
	return read(s.lockManager, func() bool {
		return s.connectionExists(a, b)
	})
}

// DeleteConnection removes the connection between from and to, whichever
// orientation it was created with
func (s *Store) DeleteConnection(from, to string) (err error) {
	defer s.observe("delete_connection", time.Now(), &err)

	return s.lockManager.execute(writeOperation, func() error {
		removed := s.connections.RemoveIf(func(c types.AssetConnection) bool {
			return c.Connects(from, to)
		})
		if removed == 0 {
			return fmt.Errorf("connection %s <-> %s: %w", from, to, ErrConnectionNotFound)
		}
		s.logger.Debug("connection deleted", "from", from, "to", to)
		return nil
	})
}

// ListConnections returns every connection in insertion order
func (s *Store) ListConnections() []types.AssetConnection {
	return read(s.lockManager, s.connections.Items)
}

// ConnectionsForAsset returns the connections touching the asset
func (s *Store) ConnectionsForAsset(id string) []types.AssetConnection {
	return read(s.lockManager, func() []types.AssetConnection {
		var out []types.AssetConnection
		s.connections.Each(func(c types.AssetConnection) bool {
			if c.Touches(id) {
				out = append(out, c)
			}
			return true
		})
		return out
	})
}

func (s *Store) connectionExists(a, b string) bool {
	return s.connections.Contains(func(c types.AssetConnection) bool {
		return c.Connects(a, b)
	})
}
