package entities

import "time"

// EstimateStatus represents the lifecycle of an estimate (repair order).
//
// Domain notes:
//   - Only COMPLETED estimates count towards revenue and profit.
//   - DRAFT and AWAITING_PAYMENT still count as client visits.
//
//go:generate stringer -type=EstimateStatus

type EstimateStatus string

const (
	EstimateStatusDraft           EstimateStatus = "DRAFT"
	EstimateStatusAwaitingPayment EstimateStatus = "AWAITING_PAYMENT"
	EstimateStatusCompleted       EstimateStatus = "COMPLETED"
)

// Customer holds the identity fields captured on an estimate.
// Phone and Email are optional; an empty string means "not informed".
type Customer struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
	Email string `json:"email,omitempty"`
}

// Part is a sold part line. StockID, when set, references the StockItem
// holding the purchase cost of the part.
type Part struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Price    float64 `json:"price"`
	StockID  string  `json:"stock_id,omitempty"`
}

type LaborLine struct {
	Description string  `json:"description"`
	Hours       float64 `json:"hours"`
	Rate        float64 `json:"rate"`
}

// Estimate is the repair order owned by the CRUD layer. The analytics engine
// only reads it.
//
// Storage model (DynamoDB):
//   - PK: id
//
// Monetary representation:
//   - Part.Price and LaborLine.Rate are gross unit amounts.
//   - A nil discount percentage means 0%.
type Estimate struct {
	ID                   string         `json:"id"`
	Date                 time.Time      `json:"date"`
	Status               EstimateStatus `json:"status"`
	Customer             Customer       `json:"customer"`
	Parts                []Part         `json:"parts"`
	Labor                []LaborLine    `json:"labor"`
	PartsDiscountPercent *float64       `json:"parts_discount_percent,omitempty"`
	LaborDiscountPercent *float64       `json:"labor_discount_percent,omitempty"`
	MechanicIDs          []string       `json:"mechanic_ids"`
}

func (e Estimate) IsCompleted() bool {
	return e.Status == EstimateStatusCompleted
}

func (e Estimate) HasMechanic(id string) bool {
	for _, m := range e.MechanicIDs {
		if m == id {
			return true
		}
	}
	return false
}
