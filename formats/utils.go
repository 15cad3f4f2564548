package formats

import (
	"strings"

	"github.com/arthur-debert/assetstore/types"
)

// valueOf returns the valuation record of assetID from a snapshot's values
func valueOf(values []types.AssetValueDetails, assetID string) (types.AssetValueDetails, bool) {
	for _, v := range values {
		if v.AssetID == assetID {
			return v, true
		}
	}
	return types.AssetValueDetails{}, false
}

// indent returns two spaces per tree level below the first
func indent(depth int) string {
	if depth <= 1 {
		return ""
	}
	return strings.Repeat("  ", depth-1)
}

func rentalLabel(s types.SubAsset) string {
	if !s.IsRented {
		return "available"
	}
	if s.RenterName == "" {
		return "rented"
	}
	return "rented to " + s.RenterName
}
