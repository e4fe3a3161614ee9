package queries

import (
	"context"

	"loading/internal/pkg/errs"

	"gorm.io/gorm"
)

// requireOrder yields errs.ObjectNotFoundError when no order has the given number.
func requireOrder(ctx context.Context, db *gorm.DB, number string) error {
	var count int64
	if err := db.WithContext(ctx).Raw(`SELECT COUNT(*) FROM orders WHERE number = ?`, number).Scan(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return errs.NewObjectNotFoundError("order", number)
	}
	return nil
}
