package formats

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/assetstore/assetstore"
)

// Markdown renders the snapshot as a document with one table per collection.
// Sub-assets become a nested bullet list.
var Markdown = &ReportFormat{
	Name:      "markdown",
	Extension: ".md",
	Render: func(snap assetstore.Snapshot) ([]byte, error) {
		var b strings.Builder

		b.WriteString("# Asset report\n\n")

		b.WriteString("## Categories\n\n| Category | Assets |\n|---|---|\n")
		for _, c := range snap.Stats.CategoryCounts {
			fmt.Fprintf(&b, "| %s | %d |\n", cell(c.Category), c.Count)
		}

		b.WriteString("\n## Assets\n\n| ID | Name | Category | Value | Maintenance | Tax |\n|---|---|---|---|---|---|\n")
		for _, a := range snap.Assets {
			v, _ := valueOf(snap.Values, a.ID)
			fmt.Fprintf(&b, "| %s | %s | %s | %d | %d | %d |\n",
				a.ID, cell(a.Name), cell(a.Category), v.CurrentValue, v.MaintenanceCost, v.PropertyTax)
		}

		if len(snap.Connections) > 0 {
			b.WriteString("\n## Connections\n\n| From | To | Weight | Description |\n|---|---|---|---|\n")
			for _, c := range snap.Connections {
				fmt.Fprintf(&b, "| %s | %s | %d | %s |\n", c.FromAssetID, c.ToAssetID, c.Weight, cell(c.Description))
			}
		}

		if len(snap.SubAssets) > 0 {
			b.WriteString("\n## Sub-assets\n\n")
			for _, n := range snap.SubAssets {
				fmt.Fprintf(&b, "%s- **%s** %s (%s)\n", indent(n.Depth), n.ID, n.Name, rentalLabel(n.SubAsset))
			}
		}

		if len(snap.Tenders) > 0 {
			b.WriteString("\n## Tender queue\n\n| ID | Name | Status | Priority | Estimated value |\n|---|---|---|---|---|\n")
			for _, t := range snap.Tenders {
				fmt.Fprintf(&b, "| %s | %s | %s | %d | %d |\n", t.ID, cell(t.Name), cell(t.Status), t.Priority, t.EstimatedValue)
			}
		}

		if len(snap.History) > 0 {
			b.WriteString("\n## Recently accessed\n\n")
			for i, h := range snap.History {
				fmt.Fprintf(&b, "%d. %s %s `%s` at %s\n", i+1, h.AssetType, cell(h.AssetName), h.AssetID, h.AccessTime)
			}
		}

		st := snap.Stats
		fmt.Fprintf(&b, "\n## Totals\n\n- Assets: %d\n- Value: %d\n- Maintenance: %d\n- Tax: %d\n",
			st.TotalAssets, st.TotalValue, st.TotalMaintenance, st.TotalTax)

		return []byte(b.String()), nil
	},
}

// cell escapes the characters that would break a table row
func cell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}

func init() {
	mustRegister(Markdown)
}
