package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"chat-relay/domain"

	"github.com/google/uuid"
)

// record is the JSON body stored under record:{id}. The deployed data
// was written as JSON, so this shape is a compatibility contract: field
// names must not change. Data is base64 on the wire (encoding/json does
// that for []byte).
type record struct {
	ID   string    `json:"id"`
	Date time.Time `json:"date"`
	From string    `json:"from"`
	To   string    `json:"to"`
	Data []byte    `json:"data"`
	Kind string    `json:"kind"`
}

func fromMessage(m domain.Message) ([]byte, error) {
	return json.Marshal(record{
		ID:   m.ID.String(),
		Date: m.Date,
		From: m.From.String(),
		To:   m.To.String(),
		Data: m.Payload.Bytes(),
		Kind: string(m.Payload.Kind()),
	})
}

func toMessage(raw []byte) (domain.Message, error) {
	var rec record
	if err := json.Unmarshal(raw, &rec); err != nil {
		return domain.Message{}, fmt.Errorf("unmarshal record: %w", err)
	}
	id, err := uuid.Parse(rec.ID)
	if err != nil {
		return domain.Message{}, fmt.Errorf("parse record id: %w", err)
	}
	from, err := uuid.Parse(rec.From)
	if err != nil {
		return domain.Message{}, fmt.Errorf("parse record sender: %w", err)
	}
	to, err := uuid.Parse(rec.To)
	if err != nil {
		return domain.Message{}, fmt.Errorf("parse record receiver: %w", err)
	}
	payloadResult := domain.NewPayload(rec.Data, rec.Kind)
	if payloadResult.IsFailure() {
		return domain.Message{}, fmt.Errorf("rebuild payload: %s", payloadResult.Err().Message)
	}
	messageResult := domain.NewMessageWithID(rec.Date, from, to, payloadResult.Value(), id)
	if messageResult.IsFailure() {
		return domain.Message{}, fmt.Errorf("rebuild message: %s", messageResult.Err().Message)
	}
	return messageResult.Value(), nil
}
