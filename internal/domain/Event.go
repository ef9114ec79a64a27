package domain

import "time"

type EventType string

const (
	EventTypeLead       EventType = "lead"
	EventTypeConversion EventType = "conversion"
)

type EventStatus string

const (
	EventStatusSuccess EventStatus = "success"
	EventStatusFailed  EventStatus = "failed"
	EventStatusPending EventStatus = "pending"
)

// Event é uma linha do log de eventos gravado pelo receptor de webhooks.
// Esta aplicação apenas lê e agrega; o registro é imutável depois de escrito.
type Event struct {
	ID        int64       `json:"id"`
	AccountID string      `json:"account_id"`
	EventType EventType   `json:"event_type"`
	Status    EventStatus `json:"status"`
	EventName string      `json:"event_name"`
	CreatedAt time.Time   `json:"created_at"`
}

// EventCounts são os totais de hoje por tipo de evento enviado com sucesso
type EventCounts struct {
	LeadCount       int `json:"lead_count"`
	ConversionCount int `json:"conversion_count"`
}
