package domain

import (
	"encoding/base64"
	"time"

	"github.com/google/uuid"
)

// CreateMessageRequest is the wire shape for creating (or overwriting) a
// message. Data holds plain text for TEXT payloads and base64 for binary
// kinds, mirroring the deployed API.
type CreateMessageRequest struct {
	Date time.Time `json:"date" validate:"required"`
	From uuid.UUID `json:"from" validate:"required"`
	To   uuid.UUID `json:"to" validate:"required"`
	Data string    `json:"data" validate:"required"`
	Type string    `json:"type" validate:"required"`
}

// IsTextMessage reports whether the request declares a text payload.
func (r CreateMessageRequest) IsTextMessage() bool {
	kind, ok := ParseKind(r.Type)
	return ok && kind == KindText
}

// IsBinaryMessage reports whether the payload is carried as base64.
func (r CreateMessageRequest) IsBinaryMessage() bool {
	kind, ok := ParseKind(r.Type)
	return ok && kind != KindText
}

// DataBytes returns the payload bytes. Binary kinds are base64-decoded;
// if the data is not valid base64 it is passed through as raw bytes, the
// same tolerance the deployed API shows.
func (r CreateMessageRequest) DataBytes() []byte {
	if r.Data == "" {
		return nil
	}
	if r.IsBinaryMessage() {
		if decoded, err := base64.StdEncoding.DecodeString(r.Data); err == nil {
			return decoded
		}
	}
	return []byte(r.Data)
}

// MessageResponse is the wire shape handed back to API clients.
type MessageResponse struct {
	ID   uuid.UUID `json:"id"`
	Date time.Time `json:"date"`
	From uuid.UUID `json:"from"`
	To   uuid.UUID `json:"to"`
	Data string    `json:"data"`
	Type string    `json:"type"`
}

// ToResponse maps a message to its API representation: text payloads as
// plain UTF-8, binary payloads as base64.
func (m Message) ToResponse() MessageResponse {
	data := ""
	switch m.Payload.Kind() {
	case KindText:
		data = string(m.Payload.data)
	default:
		data = base64.StdEncoding.EncodeToString(m.Payload.data)
	}
	return MessageResponse{
		ID:   m.ID,
		Date: m.Date,
		From: m.From,
		To:   m.To,
		Data: data,
		Type: string(m.Payload.Kind()),
	}
}
