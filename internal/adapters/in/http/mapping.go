package http

import (
	"loading/internal/core/application/usecases/commands"
	"loading/internal/core/application/usecases/queries"
	"loading/internal/core/domain/model/alarm"
	"loading/internal/core/domain/model/order"
	"loading/internal/core/domain/services"
	"loading/internal/generated/servers"
)

func toOrder(o queries.GetOrderQueryResponse) servers.Order {
	out := servers.Order{
		Number:            o.Number,
		ExternalCode:      optional(o.ExternalCode),
		ScheduledDate:     o.ScheduledDate,
		Preset:            o.Preset,
		Status:            servers.OrderStatus(o.Status),
		Client:            o.Client,
		Driver:            o.Driver,
		Truck:             o.Truck,
		Product:           o.Product,
		InitialWeight:     o.InitialWeight,
		FinalWeight:       o.FinalWeight,
		ActivationCode:    o.ActivationCode,
		InitialWeighingAt: o.InitialWeighingAt,
		StartLoadingAt:    o.StartLoadingAt,
		EndWeighingAt:     o.EndWeighingAt,
	}
	if r := o.Readout; r != nil {
		out.Readout = &servers.Readout{
			Timestamp:       r.Timestamp,
			AccumulatedMass: r.AccumulatedMass,
			Density:         r.Density,
			Temperature:     r.Temperature,
			FlowRate:        r.FlowRate,
		}
	}
	return out
}

func toOrderDetail(d queries.OrderDetailResponse) servers.OrderDetail {
	return servers.OrderDetail{
		Id:              d.ID,
		Timestamp:       d.Timestamp,
		AccumulatedMass: d.AccumulatedMass,
		Density:         d.Density,
		Temperature:     d.Temperature,
		FlowRate:        d.FlowRate,
	}
}

func detailFromDomain(d *order.Detail) servers.OrderDetail {
	r := d.Reading()
	return servers.OrderDetail{
		Id:              d.ID(),
		Timestamp:       r.Timestamp(),
		AccumulatedMass: r.AccumulatedMass(),
		Density:         r.Density(),
		Temperature:     r.Temperature(),
		FlowRate:        r.FlowRate(),
	}
}

func toStatusLogEntry(e queries.StatusLogEntryResponse) servers.StatusLogEntry {
	return servers.StatusLogEntry{
		Id:        e.ID,
		From:      e.From,
		To:        e.To,
		Actor:     e.Actor,
		Note:      optional(e.Note),
		ChangedAt: e.ChangedAt,
	}
}

func toConciliation(c services.Conciliation) servers.Conciliation {
	return servers.Conciliation{
		OrderNumber:        c.OrderNumber,
		InitialWeight:      c.InitialWeight,
		FinalWeight:        c.FinalWeight,
		NetWeight:          c.NetWeight,
		AccumulatedMass:    c.AccumulatedMass,
		DifferenceWeight:   c.DifferenceWeight,
		AverageTemperature: c.AverageTemperature,
		AverageDensity:     c.AverageDensity,
		AverageCaudal:      c.AverageCaudal,
		Samples:            c.Samples,
		Classification:     servers.ConciliationClassification(c.Classification),
	}
}

func toTelemetryResponse(r commands.IngestTelemetryResult) servers.TelemetryResponse {
	out := servers.TelemetryResponse{
		Detail:  detailFromDomain(r.Detail),
		Outcome: servers.TelemetryResponseOutcome(r.Outcome),
	}
	if r.Alarm != nil {
		a := alarmFromDomain(r.Alarm)
		out.Alarm = &a
	}
	return out
}

func alarmFromDomain(a *alarm.Alarm) servers.Alarm {
	return servers.Alarm{
		Id:                   a.ID(),
		OrderNumber:          a.OrderNumber(),
		EventDateTime:        a.EventAt(),
		CurrentTemperature:   a.CurrentTemperature(),
		ThresholdTemperature: a.ThresholdTemperature(),
		Acknowledged:         a.Acknowledged(),
		AcknowledgedBy:       optional(a.AcknowledgedBy()),
		Observations:         optional(a.Observations()),
		AcceptedDateTime:     a.AcceptedAt(),
	}
}

func alarmFromQuery(a queries.AlarmResponse) servers.Alarm {
	return servers.Alarm{
		Id:                   a.ID,
		OrderNumber:          a.OrderNumber,
		EventDateTime:        a.EventAt,
		CurrentTemperature:   a.CurrentTemperature,
		ThresholdTemperature: a.ThresholdTemperature,
		Acknowledged:         a.Acknowledged,
		AcknowledgedBy:       optional(a.AcknowledgedBy),
		Observations:         optional(a.Observations),
		AcceptedDateTime:     a.AcceptedAt,
	}
}

// optional maps empty strings to absent fields.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
