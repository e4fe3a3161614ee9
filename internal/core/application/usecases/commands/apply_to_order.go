package commands

import (
	"context"

	"loading/internal/core/domain/model/order"
)

// applyToOrder loads the order, runs mutate and writes it back guarded by the version
// it was loaded with. A concurrent writer surfaces as errs.VersionIsInvalidError.
func applyToOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderNumber string,
	mutate func(*order.Order) error,
) (*order.Order, error) {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	if err = mutate(o); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return o, nil
}
