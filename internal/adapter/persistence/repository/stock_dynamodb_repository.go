package repository

import (
	"context"

	"npc_garage/internal/domain/entities"
	"npc_garage/internal/usecase/interfaces"
)

type stockItem struct {
	ID            string  `dynamodbav:"id"`
	Name          string  `dynamodbav:"name"`
	PurchasePrice float64 `dynamodbav:"purchase_price"`
}

type StockDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IStockRepository = (*StockDynamoRepository)(nil)

func NewStockDynamoRepository(ddb DynamoAPI, tableName string) *StockDynamoRepository {
	return &StockDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *StockDynamoRepository) ListAll(ctx context.Context) ([]entities.StockItem, error) {
	items, err := scanAll[stockItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.StockItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.StockItem{ID: it.ID, Name: it.Name, PurchasePrice: it.PurchasePrice})
	}
	return out, nil
}

func (r *StockDynamoRepository) Create(ctx context.Context, s entities.StockItem) (entities.StockItem, error) {
	it := stockItem{ID: s.ID, Name: s.Name, PurchasePrice: s.PurchasePrice}
	if err := putNew(ctx, r.ddb, r.tableName, it); err != nil {
		return entities.StockItem{}, err
	}
	return s, nil
}
