// Package types holds the plain records shared by the asset store, its
// search engine, the renderers and the CLI.
package types

import "strings"

// Category groups assets. Names are unique ignoring case.
type Category struct {
	Name string `json:"name" yaml:"name"`
}

// Asset is a tracked asset. ID is generated from the category initial.
type Asset struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
}

// AssetValueDetails is the valuation record of an asset (one per asset)
type AssetValueDetails struct {
	AssetID         string `json:"asset_id" yaml:"asset_id"`
	CurrentValue    int    `json:"current_value" yaml:"current_value"`
	MaintenanceCost int    `json:"maintenance_cost" yaml:"maintenance_cost"`
	PropertyTax     int    `json:"property_tax" yaml:"property_tax"`
}

// AssetConnection is an undirected, weighted edge between two assets.
// From/To only record the orientation used when the edge was created.
type AssetConnection struct {
	FromAssetID string `json:"from_asset_id" yaml:"from_asset_id"`
	ToAssetID   string `json:"to_asset_id" yaml:"to_asset_id"`
	Weight      int    `json:"weight" yaml:"weight"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

// Connects reports whether the edge joins a and b, in either orientation
func (c AssetConnection) Connects(a, b string) bool {
	return (c.FromAssetID == a && c.ToAssetID == b) ||
		(c.FromAssetID == b && c.ToAssetID == a)
}

// Touches reports whether id is one of the endpoints
func (c AssetConnection) Touches(id string) bool {
	return c.FromAssetID == id || c.ToAssetID == id
}

// Other returns the endpoint opposite to id.
// If id is not an endpoint, FromAssetID is returned.
func (c AssetConnection) Other(id string) string {
	if c.FromAssetID == id {
		return c.ToAssetID
	}
	return c.FromAssetID
}

// SubAsset is a part of an asset (a room, a unit, a component) that may be
// rented out on its own. Sub-assets nest under each other inside the tree
// owned by their parent asset.
type SubAsset struct {
	ID            string `json:"id" yaml:"id"`
	Name          string `json:"name" yaml:"name"`
	ParentAssetID string `json:"parent_asset_id" yaml:"parent_asset_id"`
	Description   string `json:"description,omitempty" yaml:"description,omitempty"`
	IsRented      bool   `json:"is_rented" yaml:"is_rented"`
	RenterName    string `json:"renter_name,omitempty" yaml:"renter_name,omitempty"`
	RentalPrice   int    `json:"rental_price" yaml:"rental_price"`
}

// SubAssetNode is a sub-asset positioned in its tree.
// Depth is 0 for the synthetic root and 1 for its direct children.
type SubAssetNode struct {
	SubAsset `yaml:",inline"`
	Depth    int    `json:"depth" yaml:"depth"`
	ParentID string `json:"parent_id,omitempty" yaml:"parent_id,omitempty"`
}

// RootSubAssetID is the key of the synthetic root node of an asset's tree
func RootSubAssetID(assetID string) string {
	return "ROOT-" + assetID
}

// IsRootSubAssetID reports whether id names a synthetic root node
func IsRootSubAssetID(id string) bool {
	return strings.HasPrefix(id, "ROOT-")
}

// TenderStatus values are a recommended vocabulary; the queue accepts any string.
const (
	TenderPending  = "Pending"
	TenderInReview = "In Review"
	TenderApproved = "Approved"
	TenderRejected = "Rejected"
)

// TenderStatuses lists the recommended tender statuses in workflow order
var TenderStatuses = []string{TenderPending, TenderInReview, TenderApproved, TenderRejected}

// Tender priorities; 1 is the highest.
const (
	MinTenderPriority     = 1
	MaxTenderPriority     = 5
	DefaultTenderPriority = 3
)

// TenderProject is a work item waiting in the tender queue
type TenderProject struct {
	ID             string `json:"id" yaml:"id"`
	Name           string `json:"name" yaml:"name"`
	Category       string `json:"category" yaml:"category"`
	Description    string `json:"description,omitempty" yaml:"description,omitempty"`
	Status         string `json:"status" yaml:"status"`
	TenderDate     string `json:"tender_date,omitempty" yaml:"tender_date,omitempty"`
	EstimatedValue int    `json:"estimated_value" yaml:"estimated_value"`
	ClientName     string `json:"client_name,omitempty" yaml:"client_name,omitempty"`
	Priority       int    `json:"priority" yaml:"priority"`
}

// TenderInput carries the caller-supplied fields of a new tender project
type TenderInput struct {
	Name           string `yaml:"name"`
	Category       string `yaml:"category"`
	Description    string `yaml:"description"`
	TenderDate     string `yaml:"tender_date"`
	EstimatedValue int    `yaml:"estimated_value"`
	ClientName     string `yaml:"client_name"`
	Priority       int    `yaml:"priority"` // 0 means DefaultTenderPriority
}

// SubAssetInput carries the caller-supplied fields of a new sub-asset.
// ParentSubAssetID is optional: empty (or the root id) attaches under the
// asset root, an unknown id falls back to the root.
type SubAssetInput struct {
	ParentAssetID    string `yaml:"parent_asset_id"`
	ParentSubAssetID string `yaml:"parent_sub_asset_id"`
	Name             string `yaml:"name"`
	Description      string `yaml:"description"`
}

// History entry types recorded by the store
const (
	HistoryAsset      = "Asset"
	HistorySubAsset   = "SubAsset"
	HistoryAssetValue = "Asset Value"
)

// AssetHistory is one entry of the recently-accessed stack
type AssetHistory struct {
	AssetID    string `json:"asset_id" yaml:"asset_id"`
	AssetName  string `json:"asset_name" yaml:"asset_name"`
	AssetType  string `json:"asset_type" yaml:"asset_type"`
	AccessTime string `json:"access_time" yaml:"access_time"`
}

// CategoryCount is the number of assets filed under a category
type CategoryCount struct {
	Category string `json:"category" yaml:"category"`
	Count    int    `json:"count" yaml:"count"`
}

// Stats aggregates the store contents for the statistics view
type Stats struct {
	CategoryCounts   []CategoryCount `json:"category_counts" yaml:"category_counts"`
	TotalAssets      int             `json:"total_assets" yaml:"total_assets"`
	TotalValue       int             `json:"total_value" yaml:"total_value"`
	TotalMaintenance int             `json:"total_maintenance" yaml:"total_maintenance"`
	TotalTax         int             `json:"total_tax" yaml:"total_tax"`
	Connections      int             `json:"connections" yaml:"connections"`
	SubAssets        int             `json:"sub_assets" yaml:"sub_assets"`
	QueuedTenders    int             `json:"queued_tenders" yaml:"queued_tenders"`
	HistoryEntries   int             `json:"history_entries" yaml:"history_entries"`
}
