package main

// demoSteps is the walkthrough run by "assetctl demo": two houses joined by a
// connection, a duplicate connection that is declined, a boarding house with
// a small sub-asset tree, the tender queue, and finally a category delete
// that cascades through assets, values, connections and history.
func demoSteps() []Step {
	return []Step{
		{Op: "add_category", Name: "Rumah"},
		{Op: "add_category", Name: "Kost"},
		{Op: "add_asset", Name: "Villa A", Category: "Rumah"},
		{Op: "add_asset", Name: "Villa B", Category: "Rumah"},
		{Op: "add_connection", From: "R0001", To: "R0002", Weight: 5, Description: "same owner"},
		{Op: "add_connection", From: "R0002", To: "R0001", Weight: 9},
		{Op: "add_asset", Name: "Kost Melati", Category: "Kost"},
		{Op: "set_value", Asset: "K0001", Value: 500000, Maintenance: 12000, Tax: 3000},
		{Op: "add_sub_asset", Asset: "K0001", Name: "Kamar 1", Description: "ground floor"},
		{Op: "add_sub_asset", Asset: "K0001", Parent: "K0001-SUB001", Name: "Lemari"},
		{Op: "rent_sub_asset", ID: "K0001-SUB001", Renter: "Budi", Price: 750},
		{Op: "add_tender", Name: "Renovasi Atap", Category: "Kost", Estimate: 50000, Client: "PT Maju", Priority: 2},
		{Op: "add_tender", Name: "Pengecatan", Category: "Rumah", Estimate: 12000},
		{Op: "process_tender"},
		{Op: "view_asset", ID: "R0001"},
		{Op: "view_asset", ID: "K0001"},
		{Op: "search", Query: "villa"},
		{Op: "delete_category", Name: "Rumah"},
	}
}
