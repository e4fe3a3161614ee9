package alarmrepo

import (
	"context"
	"errors"

	"loading/internal/core/domain/model/alarm"
	"loading/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAlarmRepository implements AlarmRepository using GORM.
type GormAlarmRepository struct {
	db *gorm.DB
}

func NewGormAlarmRepository(db *gorm.DB) *GormAlarmRepository {
	return &GormAlarmRepository{db: db}
}

// Add inserts the alarm and assigns the generated id back to it.
func (r *GormAlarmRepository) Add(ctx context.Context, a *alarm.Alarm) error {
	if err := a.Validate(); err != nil {
		return err
	}

	dto := alarmFromDomain(a)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	a.AssignID(dto.ID)
	return nil
}

// Update writes the acknowledgement columns. The breach data is immutable.
func (r *GormAlarmRepository) Update(ctx context.Context, a *alarm.Alarm) error {
	if err := a.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&AlarmDTO{}).
		Where("id = ?", a.ID()).
		Updates(map[string]any{
			"acknowledged":       a.Acknowledged(),
			"acknowledged_by":    a.AcknowledgedBy(),
			"observations":       a.Observations(),
			"accepted_date_time": a.AcceptedAt(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("alarm", a.ID())
	}

	return nil
}

func (r *GormAlarmRepository) Get(ctx context.Context, id int64) (*alarm.Alarm, error) {
	var dto AlarmDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("alarm", id)
		}
		return nil, err
	}

	return alarmToDomain(dto)
}

// GormAlertConfigRepository implements AlertConfigRepository on the row with id
// alarm.ConfigID. The row is created with defaults the first time it is needed.
type GormAlertConfigRepository struct {
	db *gorm.DB
}

func NewGormAlertConfigRepository(db *gorm.DB) *GormAlertConfigRepository {
	return &GormAlertConfigRepository{db: db}
}

func (r *GormAlertConfigRepository) Get(ctx context.Context) (alarm.AlertConfig, error) {
	if err := r.ensure(ctx); err != nil {
		return alarm.AlertConfig{}, err
	}

	var dto AlertConfigDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", alarm.ConfigID).Error; err != nil {
		return alarm.AlertConfig{}, err
	}

	return configToDomain(dto)
}

// Save stores threshold and recipients only; the dedup flag keeps its value.
func (r *GormAlertConfigRepository) Save(ctx context.Context, config alarm.AlertConfig) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&AlertConfigDTO{ID: alarm.ConfigID}).
		Select("threshold", "recipients").
		Updates(&AlertConfigDTO{
			Threshold:  config.Threshold(),
			Recipients: config.Recipients(),
		}).Error
}

// ClaimNotification is a test-and-set on the flag: only the caller whose update
// matched the unset row owns the notification.
func (r *GormAlertConfigRepository) ClaimNotification(ctx context.Context) (bool, error) {
	if err := r.ensure(ctx); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).
		Model(&AlertConfigDTO{}).
		Where("id = ? AND email_already_sent = ?", alarm.ConfigID, false).
		Update("email_already_sent", true)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected == 1, nil
}

func (r *GormAlertConfigRepository) ResetNotification(ctx context.Context) error {
	if err := r.ensure(ctx); err != nil {
		return err
	}

	return r.db.WithContext(ctx).
		Model(&AlertConfigDTO{}).
		Where("id = ?", alarm.ConfigID).
		Update("email_already_sent", false).Error
}

func (r *GormAlertConfigRepository) ensure(ctx context.Context) error {
	dto := defaultConfigDTO()
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&dto).Error
}
