// Package assetstore is the in-memory data layer for an organization's
// tracked assets.
//
// A Store keeps categories, assets and their valuation records, weighted
// connections between assets, a tree of sub-assets per asset, a FIFO queue
// of tender projects and a bounded stack of recently accessed records.
//
// All query methods return copies. In-place edits go through mutator
// callbacks (UpdateAssetValue, UpdateSubAsset, UpdateTender) that run under
// the store's write lock and are validated before being applied. A returned
// error always means the store was left unchanged.
//
// Deleting a record cascades to everything that refers to it:
//
//	DeleteCategory -> DeleteAsset for each asset in the category
//	DeleteAsset    -> valuation record, connections touching the asset,
//	                  the asset's sub-asset tree, history entries
//	DeleteSubAsset -> the whole subtree and its history entries
//
// Callbacks must not call back into the store; the lock is not reentrant.
package assetstore
