// Package events fans live readouts and alarms out to subscribers over Redis pub/sub.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"loading/internal/core/domain/model/alarm"
	"loading/internal/core/domain/model/order"

	redis "github.com/redis/go-redis/v9"
)

const DefaultChannel = "loading.events"

const (
	KindReading = "reading"
	KindAlarm   = "alarm"
)

// Event is the envelope published on the channel. Exactly one of Reading and Alarm is set.
type Event struct {
	Kind        string        `json:"kind"`
	OrderNumber string        `json:"order_number"`
	Reading     *ReadingEvent `json:"reading,omitempty"`
	Alarm       *AlarmEvent   `json:"alarm,omitempty"`
}

type ReadingEvent struct {
	DetailID        int64     `json:"detail_id"`
	Timestamp       time.Time `json:"timestamp"`
	AccumulatedMass float64   `json:"accumulated_mass"`
	Density         float64   `json:"density"`
	Temperature     float64   `json:"temperature"`
	FlowRate        float64   `json:"flow_rate"`
}

type AlarmEvent struct {
	ID                   int64     `json:"id"`
	EventDateTime        time.Time `json:"event_date_time"`
	CurrentTemperature   float64   `json:"current_temperature"`
	ThresholdTemperature float64   `json:"threshold_temperature"`
}

// publisher is the part of *redis.Client the publisher needs.
type publisher interface {
	Publish(ctx context.Context, channel string, message any) *redis.IntCmd
}

type RedisPublisher struct {
	client  publisher
	channel string
}

func NewRedisPublisher(client *redis.Client, channel string) *RedisPublisher {
	return newRedisPublisher(client, channel)
}

func newRedisPublisher(client publisher, channel string) *RedisPublisher {
	if channel == "" {
		channel = DefaultChannel
	}
	return &RedisPublisher{client: client, channel: channel}
}

func (p *RedisPublisher) PublishReading(ctx context.Context, d *order.Detail) error {
	r := d.Reading()
	return p.publish(ctx, Event{
		Kind:        KindReading,
		OrderNumber: d.OrderNumber(),
		Reading: &ReadingEvent{
			DetailID:        d.ID(),
			Timestamp:       r.Timestamp(),
			AccumulatedMass: r.AccumulatedMass(),
			Density:         r.Density(),
			Temperature:     r.Temperature(),
			FlowRate:        r.FlowRate(),
		},
	})
}

func (p *RedisPublisher) PublishAlarm(ctx context.Context, a *alarm.Alarm) error {
	return p.publish(ctx, Event{
		Kind:        KindAlarm,
		OrderNumber: a.OrderNumber(),
		Alarm: &AlarmEvent{
			ID:                   a.ID(),
			EventDateTime:        a.EventAt(),
			CurrentTemperature:   a.CurrentTemperature(),
			ThresholdTemperature: a.ThresholdTemperature(),
		},
	})
}

func (p *RedisPublisher) publish(ctx context.Context, e Event) error {
	payload, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("encode %s event: %w", e.Kind, err)
	}
	if err = p.client.Publish(ctx, p.channel, payload).Err(); err != nil {
		return fmt.Errorf("publish %s event: %w", e.Kind, err)
	}
	return nil
}

// NoOp drops every event. It is used when Redis is not configured.
type NoOp struct{}

func (NoOp) PublishReading(context.Context, *order.Detail) error { return nil }
func (NoOp) PublishAlarm(context.Context, *alarm.Alarm) error { return nil }
