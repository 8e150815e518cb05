package domain

import (
	"time"

	"chat-relay/errs"

	"github.com/google/uuid"
)

// Message is an immutable chat record: who sent what to whom, and when.
// Instances are only created through the validating factories below;
// an "update" is always a new Message value.
type Message struct {
	ID      uuid.UUID
	Date    time.Time
	From    uuid.UUID
	To      uuid.UUID
	Payload Payload
}

// NewMessage builds a message with a fresh random identifier.
func NewMessage(date time.Time, from, to uuid.UUID, payload Payload) errs.Result[Message] {
	return NewMessageWithID(date, from, to, payload, uuid.New())
}

// NewMessageWithID builds a message under a caller-chosen identifier,
// typically when rehydrating a stored record. Required fields are
// checked in a fixed order: sender, receiver, date, payload.
func NewMessageWithID(date time.Time, from, to uuid.UUID, payload Payload, id uuid.UUID) errs.Result[Message] {
	if from == uuid.Nil {
		return errs.Fail[Message](errs.ValueIsEmpty("from"))
	}
	if to == uuid.Nil {
		return errs.Fail[Message](errs.ValueIsEmpty("to"))
	}
	if date.IsZero() {
		return errs.Fail[Message](errs.ValueIsEmpty("date"))
	}
	if len(payload.data) == 0 {
		return errs.Fail[Message](errs.ValueIsEmpty("payload"))
	}
	if id == uuid.Nil {
		id = uuid.New()
	}
	return errs.Ok(Message{ID: id, Date: date, From: from, To: to, Payload: payload})
}

// FromCreateRequest builds a Payload from the request's raw bytes and
// kind string, then delegates to the message factory. Payload factory
// failures propagate verbatim.
func FromCreateRequest(req CreateMessageRequest) errs.Result[Message] {
	if req.Type == "" {
		return errs.Fail[Message](errs.ValueIsEmpty("type"))
	}
	if req.Date.IsZero() {
		return errs.Fail[Message](errs.ValueIsEmpty("date"))
	}
	payloadResult := NewPayload(req.DataBytes(), req.Type)
	if payloadResult.IsFailure() {
		return errs.Fail[Message](payloadResult.Err())
	}
	return NewMessage(req.Date, req.From, req.To, payloadResult.Value())
}

// Equal compares messages by identity. Two messages with the same ID are
// the same record regardless of body, matching how the store keys them.
func (m Message) Equal(other Message) bool {
	return m.ID == other.ID
}
