package formats

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/arthur-debert/assetstore/assetstore"
)

// PlainText renders one aligned section per collection, followed by totals
var PlainText = &ReportFormat{
	Name:      "text",
	Extension: ".txt",
	Render: func(snap assetstore.Snapshot) ([]byte, error) {
		var buf bytes.Buffer
		w := tabwriter.NewWriter(&buf, 0, 4, 2, ' ', 0)

		fmt.Fprintf(w, "Categories (%d)\n", len(snap.Stats.CategoryCounts))
		for _, c := range snap.Stats.CategoryCounts {
			fmt.Fprintf(w, "  %s\t%d\n", c.Category, c.Count)
		}

		fmt.Fprintf(w, "\nAssets (%d)\n", len(snap.Assets))
		for _, a := range snap.Assets {
			v, _ := valueOf(snap.Values, a.ID)
			fmt.Fprintf(w, "  %s\t%s\t%s\tvalue %d\tmaintenance %d\ttax %d\n",
				a.ID, a.Name, a.Category, v.CurrentValue, v.MaintenanceCost, v.PropertyTax)
		}

		fmt.Fprintf(w, "\nConnections (%d)\n", len(snap.Connections))
		for _, c := range snap.Connections {
			fmt.Fprintf(w, "  %s <-> %s\tweight %d\t%s\n", c.FromAssetID, c.ToAssetID, c.Weight, c.Description)
		}

		fmt.Fprintf(w, "\nSub-assets (%d)\n", len(snap.SubAssets))
		for _, n := range snap.SubAssets {
			fmt.Fprintf(w, "  %s%s\t%s\t%s\n", indent(n.Depth), n.ID, n.Name, rentalLabel(n.SubAsset))
		}

		fmt.Fprintf(w, "\nTenders (%d)\n", len(snap.Tenders))
		for _, t := range snap.Tenders {
			fmt.Fprintf(w, "  %s\t%s\t%s\tpriority %d\tvalue %d\n", t.ID, t.Name, t.Status, t.Priority, t.EstimatedValue)
		}

		fmt.Fprintf(w, "\nHistory (%d)\n", len(snap.History))
		for _, h := range snap.History {
			fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n", h.AccessTime, h.AssetType, h.AssetID, h.AssetName)
		}

		st := snap.Stats
		fmt.Fprintf(w, "\nTotals\n")
		fmt.Fprintf(w, "  assets\t%d\n  value\t%d\n  maintenance\t%d\n  tax\t%d\n",
			st.TotalAssets, st.TotalValue, st.TotalMaintenance, st.TotalTax)

		if err := w.Flush(); err != nil {
			return nil, fmt.Errorf("failed to render text report: %w", err)
		}
		return buf.Bytes(), nil
	},
}

func init() {
	mustRegister(PlainText)
}
