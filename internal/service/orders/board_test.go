package orders_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"live-orders-dispatch/internal/domain"
	"live-orders-dispatch/internal/service/orders"
)

func newCtrl(t *testing.T) *gomock.Controller {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	return ctrl
}

func TestLive_EmptyIsNotNil(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMockliveOrderRepository(ctrl)
	repo.EXPECT().ListLive(gomock.Any()).Return(nil, nil)

	got, err := orders.NewService(repo, NewMockdriverLister(ctrl), time.Second).Live(context.Background())

	require.NoError(t, err)
	require.NotNil(t, got)
	require.Empty(t, got)
}

func TestBoard(t *testing.T) {
	t.Parallel()

	ctrl := newCtrl(t)
	repo := NewMockliveOrderRepository(ctrl)
	drivers := NewMockdriverLister(ctrl)

	live := []domain.LiveOrder{{Order: domain.Order{ID: 2}}, {Order: domain.Order{ID: 1}, DriverName: "Sam"}}
	roster := []domain.DriverWithAreas{{Driver: domain.Driver{ID: 7, Name: "Sam"}, Areas: []string{"S1"}}}

	repo.EXPECT().ListLive(gomock.Any()).Return(live, nil)
	drivers.EXPECT().ListDriversWithAreas(gomock.Any()).Return(roster, nil)

	got, err := orders.NewService(repo, drivers, 0).Board(context.Background())

	require.NoError(t, err)
	require.Equal(t, live, got.Orders)
	require.Equal(t, roster, got.Drivers)
}

func TestBoard_Errors(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")

	t.Run("orders", func(t *testing.T) {
		ctrl := newCtrl(t)
		repo := NewMockliveOrderRepository(ctrl)
		repo.EXPECT().ListLive(gomock.Any()).Return(nil, boom)

		_, err := orders.NewService(repo, NewMockdriverLister(ctrl), time.Second).Board(context.Background())
		require.ErrorIs(t, err, boom)
	})

	t.Run("drivers", func(t *testing.T) {
		ctrl := newCtrl(t)
		repo := NewMockliveOrderRepository(ctrl)
		drivers := NewMockdriverLister(ctrl)
		repo.EXPECT().ListLive(gomock.Any()).Return([]domain.LiveOrder{}, nil)
		drivers.EXPECT().ListDriversWithAreas(gomock.Any()).Return(nil, boom)

		_, err := orders.NewService(repo, drivers, time.Second).Board(context.Background())
		require.ErrorIs(t, err, boom)
	})
}
