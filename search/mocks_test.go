package search

import "github.com/arthur-debert/assetstore/types"

// MockAssetProvider implements AssetProvider for testing
type MockAssetProvider struct {
	assets []types.Asset
	err    error
}

// NewMockAssetProvider creates a new mock with the given assets
func NewMockAssetProvider(assets []types.Asset) *MockAssetProvider {
	return &MockAssetProvider{
		assets: assets,
	}
}

// SetError configures the mock to return an error
func (m *MockAssetProvider) SetError(err error) {
	m.err = err
}

// Assets returns the mock assets or error
func (m *MockAssetProvider) Assets() ([]types.Asset, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.assets, nil
}

// SampleAssets provides sample assets for testing
func SampleAssets() []types.Asset {
	return []types.Asset{
		{ID: "R0001", Name: "Rumah Utama", Category: "Rumah"},
		{ID: "G0001", Name: "Gedung Rumah Sakit", Category: "Gedung"},
		{ID: "K0001", Name: "Kost Melati", Category: "Kost"},
		{ID: "R0002", Name: "Villa", Category: "Rumah"},
		{ID: "E0001", Name: "rumah", Category: "Elektronik"},
	}
}
