package interfaces

import (
	"context"
	"npc_garage/internal/domain/entities"
)

// IStockRepository abstracts DynamoDB persistence for StockItem.
// Stock is only consulted for purchase prices; analytics never mutates it.

//go:generate mockgen -source=stock_repository_interface.go -destination=mocks/stock_repository_mock.go -package=mock_interfaces

type IStockRepository interface {
	ListAll(ctx context.Context) ([]entities.StockItem, error)
	Create(ctx context.Context, s entities.StockItem) (entities.StockItem, error)
}
