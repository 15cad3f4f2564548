package types

import "testing"

func TestAssetConnectionOrientation(t *testing.T) {
	conn := AssetConnection{FromAssetID: "R0001", ToAssetID: "R0002", Weight: 5}

	if !conn.Connects("R0001", "R0002") || !conn.Connects("R0002", "R0001") {
		t.Error("connection should match both orientations")
	}
	if conn.Connects("R0001", "R0003") {
		t.Error("connection should not match a different pair")
	}
	if !conn.Touches("R0002") || conn.Touches("K0001") {
		t.Error("Touches reported wrong endpoints")
	}
	if got := conn.Other("R0002"); got != "R0001" {
		t.Errorf("Other(R0002) = %q, want R0001", got)
	}
	if got := conn.Other("R0001"); got != "R0002" {
		t.Errorf("Other(R0001) = %q, want R0002", got)
	}
}

func TestRootSubAssetID(t *testing.T) {
	id := RootSubAssetID("R0001")
	if id != "ROOT-R0001" {
		t.Errorf("unexpected root id %q", id)
	}
	if !IsRootSubAssetID(id) {
		t.Error("root id not recognized")
	}
	if IsRootSubAssetID("R0001-SUB001") {
		t.Error("sub-asset id recognized as root")
	}
}
