package events

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Event struct {
	Event         string          `json:"event"`     // e.g., "item.created"
	Version       string          `json:"version"`   // e.g., "v1"
	Timestamp     time.Time       `json:"timestamp"` // Event occurrence time
	Payload       json.RawMessage `json:"payload"`
	TraceID       string          `json:"traceId"`
	CorrelationID string          `json:"correlationId"`
}

type Headers struct {
	TraceID       string
	CorrelationID string
	Service       string
}

func NewEvent(eventName, version string, payload any, headers Headers) (*Event, error) {
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	return &Event{
		Event:         eventName,
		Version:       version,
		Timestamp:     time.Now().UTC(),
		Payload:       raw,
		TraceID:       headers.TraceID,
		CorrelationID: headers.CorrelationID,
	}, nil
}

func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// DecodePayload unmarshals the payload into v.
func (e *Event) DecodePayload(v any) error {
	return json.Unmarshal(e.Payload, v)
}

func (e *Event) GetRoutingKey() string {
	return e.Event + "." + e.Version
}

// NewHeaders returns headers with fresh trace and correlation ids. A non-empty
// correlationID (usually the request id) is kept as is.
func NewHeaders(service, correlationID string) Headers {
	if correlationID == "" {
		correlationID = uuid.NewString()
	}
	return Headers{
		TraceID:       uuid.NewString(),
		CorrelationID: correlationID,
		Service:       service,
	}
}
