package repository

import (
	"context"

	"npc_garage/internal/domain/entities"
	"npc_garage/internal/usecase/interfaces"
)

type mechanicItem struct {
	ID   string `dynamodbav:"id"`
	Name string `dynamodbav:"name"`
}

type MechanicDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IMechanicRepository = (*MechanicDynamoRepository)(nil)

func NewMechanicDynamoRepository(ddb DynamoAPI, tableName string) *MechanicDynamoRepository {
	return &MechanicDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *MechanicDynamoRepository) ListAll(ctx context.Context) ([]entities.Mechanic, error) {
	items, err := scanAll[mechanicItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	out := make([]entities.Mechanic, 0, len(items))
	for _, it := range items {
		out = append(out, entities.Mechanic{ID: it.ID, Name: it.Name})
	}
	return out, nil
}

func (r *MechanicDynamoRepository) Create(ctx context.Context, m entities.Mechanic) (entities.Mechanic, error) {
	if err := putNew(ctx, r.ddb, r.tableName, mechanicItem{ID: m.ID, Name: m.Name}); err != nil {
		return entities.Mechanic{}, err
	}
	return m, nil
}
