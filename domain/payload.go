// Package domain contains the core concepts of the chat system: the
// payload value, the immutable message entity and the request/response
// shapes the transport layer exchanges with it. Entities are only built
// through validating factories and never mutated afterwards.
package domain

import (
	"fmt"
	"strings"

	"chat-relay/errs"

	"github.com/gabriel-vasile/mimetype"
)

// Kind discriminates the payload contents.
type Kind string

const (
	KindText  Kind = "TEXT"
	KindImage Kind = "IMAGE"
	KindAudio Kind = "AUDIO"
)

// ParseKind resolves a kind string case-insensitively.
func ParseKind(s string) (Kind, bool) {
	switch Kind(strings.ToUpper(strings.TrimSpace(s))) {
	case KindText:
		return KindText, true
	case KindImage:
		return KindImage, true
	case KindAudio:
		return KindAudio, true
	default:
		return "", false
	}
}

// Payload is an immutable typed binary payload. The stored bytes are
// never handed out directly; Bytes returns a defensive copy.
type Payload struct {
	data []byte
	kind Kind
}

// NewPayload validates and wraps raw payload bytes.
func NewPayload(data []byte, kind string) errs.Result[Payload] {
	if strings.TrimSpace(kind) == "" {
		return errs.Fail[Payload](errs.ValueIsEmpty("type"))
	}
	if len(data) == 0 {
		return errs.Fail[Payload](errs.ValueIsEmpty("data"))
	}
	parsed, ok := ParseKind(kind)
	if !ok {
		return errs.Fail[Payload](errs.IllegalState(fmt.Sprintf("unknown payload type %q", kind)))
	}
	return errs.Ok(Payload{data: cloneBytes(data), kind: parsed})
}

func (p Payload) Kind() Kind { return p.kind }

func (p Payload) Size() int { return len(p.data) }

// Bytes returns a copy of the payload contents. Callers can never mutate
// the stored payload through the returned buffer.
func (p Payload) Bytes() []byte { return cloneBytes(p.data) }

// ImageContent is the decoded view of an IMAGE payload: the sniffed MIME
// type, the canonical file extension and a copy of the raw bytes.
type ImageContent struct {
	MIME string
	Ext  string
	Data []byte
}

// AudioContent is the decoded view of an AUDIO payload.
type AudioContent struct {
	MIME string
	Ext  string
	Data []byte
}

// DecodeText interprets the payload as UTF-8 text. Only valid for TEXT.
func (p Payload) DecodeText() errs.Result[string] {
	if p.kind != KindText {
		return errs.Fail[string](errs.IllegalState(
			fmt.Sprintf("cannot decode as text, payload type is %s", p.kind)))
	}
	return errs.Ok(string(p.data))
}

// DecodeImage sniffs the payload as an image. Only valid for IMAGE;
// bytes that do not carry a recognizable image format fail with a
// deserialization error rather than a panic.
func (p Payload) DecodeImage() errs.Result[ImageContent] {
	if p.kind != KindImage {
		return errs.Fail[ImageContent](errs.IllegalState(
			fmt.Sprintf("cannot decode as image, payload type is %s", p.kind)))
	}
	mt := mimetype.Detect(p.data)
	if !strings.HasPrefix(mt.String(), "image/") {
		return errs.Fail[ImageContent](errs.DeserializationError(
			fmt.Sprintf("failed to decode image, unsupported format or corrupted data (detected %s)", mt.String())))
	}
	return errs.Ok(ImageContent{MIME: mt.String(), Ext: mt.Extension(), Data: cloneBytes(p.data)})
}

// DecodeAudio sniffs the payload as audio. Only valid for AUDIO.
func (p Payload) DecodeAudio() errs.Result[AudioContent] {
	if p.kind != KindAudio {
		return errs.Fail[AudioContent](errs.IllegalState(
			fmt.Sprintf("cannot decode as audio, payload type is %s", p.kind)))
	}
	mt := mimetype.Detect(p.data)
	if !strings.HasPrefix(mt.String(), "audio/") {
		return errs.Fail[AudioContent](errs.DeserializationError(
			fmt.Sprintf("failed to decode audio, unsupported format or corrupted data (detected %s)", mt.String())))
	}
	return errs.Ok(AudioContent{MIME: mt.String(), Ext: mt.Extension(), Data: cloneBytes(p.data)})
}

func cloneBytes(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
