package repository

import (
	"context"
	"fmt"
	"time"

	"npc_garage/internal/domain/entities"
	"npc_garage/internal/usecase/interfaces"
)

type partItem struct {
	Name     string  `dynamodbav:"name"`
	Quantity float64 `dynamodbav:"quantity"`
	Price    float64 `dynamodbav:"price"`
	StockID  string  `dynamodbav:"stock_id,omitempty"`
}

type laborItem struct {
	Description string  `dynamodbav:"description"`
	Hours       float64 `dynamodbav:"hours"`
	Rate        float64 `dynamodbav:"rate"`
}

type estimateItem struct {
	ID                   string      `dynamodbav:"id"`
	Date                 string      `dynamodbav:"date"`
	Status               string      `dynamodbav:"status"`
	CustomerName         string      `dynamodbav:"customer_name"`
	CustomerPhone        string      `dynamodbav:"customer_phone,omitempty"`
	CustomerEmail        string      `dynamodbav:"customer_email,omitempty"`
	Parts                []partItem  `dynamodbav:"parts"`
	Labor                []laborItem `dynamodbav:"labor"`
	PartsDiscountPercent *float64    `dynamodbav:"parts_discount_percent,omitempty"`
	LaborDiscountPercent *float64    `dynamodbav:"labor_discount_percent,omitempty"`
	MechanicIDs          []string    `dynamodbav:"mechanic_ids,omitempty"`
}

// EstimateDynamoRepository reads repair orders from DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// Parts and labor lines are stored as nested lists on the estimate item;
// the analytics engine always needs them together with the header.
type EstimateDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb DynamoAPI, tableName string) *EstimateDynamoRepository {
	return &EstimateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EstimateDynamoRepository) ListAll(ctx context.Context) ([]entities.Estimate, error) {
	items, err := scanAll[estimateItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Estimate, 0, len(items))
	for _, it := range items {
		e, err := fromEstimateItem(it)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toEstimateItem(e)); err != nil {
		return entities.Estimate{}, err
	}
	return e, nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	parts := make([]partItem, 0, len(e.Parts))
	for _, p := range e.Parts {
		parts = append(parts, partItem{Name: p.Name, Quantity: p.Quantity, Price: p.Price, StockID: p.StockID})
	}
	labor := make([]laborItem, 0, len(e.Labor))
	for _, l := range e.Labor {
		labor = append(labor, laborItem{Description: l.Description, Hours: l.Hours, Rate: l.Rate})
	}
	return estimateItem{
		ID:                   e.ID,
		Date:                 e.Date.UTC().Format(time.RFC3339Nano),
		Status:               string(e.Status),
		CustomerName:         e.Customer.Name,
		CustomerPhone:        e.Customer.Phone,
		CustomerEmail:        e.Customer.Email,
		Parts:                parts,
		Labor:                labor,
		PartsDiscountPercent: e.PartsDiscountPercent,
		LaborDiscountPercent: e.LaborDiscountPercent,
		MechanicIDs:          e.MechanicIDs,
	}
}

func fromEstimateItem(it estimateItem) (entities.Estimate, error) {
	date, err := time.Parse(time.RFC3339Nano, it.Date)
	if err != nil {
		return entities.Estimate{}, fmt.Errorf("estimate %s: invalid date %q: %w", it.ID, it.Date, err)
	}

	var parts []entities.Part
	for _, p := range it.Parts {
		parts = append(parts, entities.Part{Name: p.Name, Quantity: p.Quantity, Price: p.Price, StockID: p.StockID})
	}
	var labor []entities.LaborLine
	for _, l := range it.Labor {
		labor = append(labor, entities.LaborLine{Description: l.Description, Hours: l.Hours, Rate: l.Rate})
	}

	return entities.Estimate{
		ID:     it.ID,
		Date:   date,
		Status: entities.EstimateStatus(it.Status),
		Customer: entities.Customer{
			Name:  it.CustomerName,
			Phone: it.CustomerPhone,
			Email: it.CustomerEmail,
		},
		Parts:                parts,
		Labor:                labor,
		PartsDiscountPercent: it.PartsDiscountPercent,
		LaborDiscountPercent: it.LaborDiscountPercent,
		MechanicIDs:          it.MechanicIDs,
	}, nil
}
