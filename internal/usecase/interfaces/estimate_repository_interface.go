package interfaces

import (
	"context"
	"npc_garage/internal/domain/entities"
)

// IEstimateRepository abstracts DynamoDB persistence for Estimate.
//
// The analytics service must be able to:
//   - read the full estimate history (segmentation needs every visit)
//   - insert demo estimates when seeding a local environment

//go:generate mockgen -source=estimate_repository_interface.go -destination=mocks/estimate_repository_mock.go -package=mock_interfaces

type IEstimateRepository interface {
	ListAll(ctx context.Context) ([]entities.Estimate, error)
	Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error)
}
