package entities

// StockItem is an inventory item. PurchasePrice is the unit cost basis used
// to derive part margins.
type StockItem struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PurchasePrice float64 `json:"purchase_price"`
}
