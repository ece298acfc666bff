package mock_interfaces_test

import (
	"context"
	"testing"

	"npc_garage/internal/domain/entities"
	"npc_garage/internal/usecase/interfaces"
	mock_interfaces "npc_garage/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

var (
	_ interfaces.IEstimateRepository = (*mock_interfaces.MockIEstimateRepository)(nil)
	_ interfaces.IStockRepository    = (*mock_interfaces.MockIStockRepository)(nil)
	_ interfaces.IMechanicRepository = (*mock_interfaces.MockIMechanicRepository)(nil)
)

func TestMockIMechanicRepository_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mock_interfaces.NewMockIMechanicRepository(ctrl)

	in := entities.Mechanic{ID: "m1", Name: "Carlos"}
	repo.EXPECT().Create(gomock.Any(), in).Return(in, nil)

	out, err := repo.Create(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if out != in {
		t.Fatalf("expected %+v, got %+v", in, out)
	}
}
