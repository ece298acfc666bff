package interfaces

import (
	"context"
	"npc_garage/internal/domain/entities"
)

//go:generate mockgen -source=mechanic_repository_interface.go -destination=mocks/mechanic_repository_mock.go -package=mock_interfaces

type IMechanicRepository interface {
	ListAll(ctx context.Context) ([]entities.Mechanic, error)
	Create(ctx context.Context, mechanic entities.Mechanic) (entities.Mechanic, error)
}
