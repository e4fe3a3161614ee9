// Package alarmrepo persists temperature alarms and the single alert configuration row.
package alarmrepo

import (
	"time"

	"loading/internal/core/domain/model/alarm"
)

type AlarmDTO struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement"`
	OrderNumber          string    `gorm:"size:64;index;not null"`
	EventAt              time.Time `gorm:"column:event_date_time;index;not null"`
	CurrentTemperature   float64
	ThresholdTemperature float64
	Acknowledged         bool `gorm:"index;not null;default:false"`
	AcknowledgedBy       string
	Observations         string
	AcceptedAt           *time.Time `gorm:"column:accepted_date_time"`
}

func (AlarmDTO) TableName() string {
	return "alarms"
}

// AlertConfigDTO is the configuration singleton. Recipients are stored as a JSON array.
type AlertConfigDTO struct {
	ID               int      `gorm:"primaryKey;autoIncrement:false"`
	Threshold        float64  `gorm:"not null"`
	Recipients       []string `gorm:"type:text;serializer:json"`
	EmailAlreadySent bool     `gorm:"not null;default:false"`
}

func (AlertConfigDTO) TableName() string {
	return "temperature_alert_configs"
}

func alarmFromDomain(a *alarm.Alarm) AlarmDTO {
	return AlarmDTO{
		ID:                   a.ID(),
		OrderNumber:          a.OrderNumber(),
		EventAt:              a.EventAt(),
		CurrentTemperature:   a.CurrentTemperature(),
		ThresholdTemperature: a.ThresholdTemperature(),
		Acknowledged:         a.Acknowledged(),
		AcknowledgedBy:       a.AcknowledgedBy(),
		Observations:         a.Observations(),
		AcceptedAt:           a.AcceptedAt(),
	}
}

func alarmToDomain(dto AlarmDTO) (*alarm.Alarm, error) {
	var accepted *time.Time
	if dto.AcceptedAt != nil {
		t := dto.AcceptedAt.UTC()
		accepted = &t
	}
	return alarm.RestoreAlarm(alarm.AlarmSnapshot{
		ID:                   dto.ID,
		OrderNumber:          dto.OrderNumber,
		EventAt:              dto.EventAt,
		CurrentTemperature:   dto.CurrentTemperature,
		ThresholdTemperature: dto.ThresholdTemperature,
		Acknowledged:         dto.Acknowledged,
		AcknowledgedBy:       dto.AcknowledgedBy,
		Observations:         dto.Observations,
		AcceptedAt:           accepted,
	})
}

func defaultConfigDTO() AlertConfigDTO {
	def := alarm.DefaultAlertConfig()
	return AlertConfigDTO{
		ID:         alarm.ConfigID,
		Threshold:  def.Threshold(),
		Recipients: def.Recipients(),
	}
}

func configToDomain(dto AlertConfigDTO) (alarm.AlertConfig, error) {
	return alarm.NewAlertConfig(dto.Threshold, dto.Recipients, dto.EmailAlreadySent)
}
