package assetstore

import "errors"

// Sentinel errors returned (wrapped) by Store methods. Check them with
// errors.Is.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrCategoryExists     = errors.New("category already exists")
	ErrCategoryNotFound   = errors.New("category not found")
	ErrAssetNotFound      = errors.New("asset not found")
	ErrConnectionExists   = errors.New("connection already exists")
	ErrConnectionNotFound = errors.New("connection not found")
	ErrSubAssetNotFound   = errors.New("sub-asset not found")
	ErrTenderNotFound     = errors.New("tender not found")
)
