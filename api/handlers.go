package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"chat-relay/domain"
	"chat-relay/errs"
	"chat-relay/services"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// MessageHandler exposes the message store over REST.
type MessageHandler struct {
	service  services.IMessageService
	validate *validator.Validate
	log      *slog.Logger
}

func NewMessageHandler(service services.IMessageService, log *slog.Logger) *MessageHandler {
	return &MessageHandler{
		service:  service,
		validate: validator.New(),
		log:      log,
	}
}

// Create handles POST /messages.
func (h *MessageHandler) Create(w http.ResponseWriter, r *http.Request) {
	request, apiErr := h.decodeRequest(r)
	if apiErr != nil {
		writeError(w, apiErr)
		return
	}

	result := h.service.Save(r.Context(), request)
	if result.IsFailure() {
		writeError(w, result.Err())
		return
	}
	writeSuccess(w, http.StatusCreated, result.Value())
}

// List handles GET /messages. With ?from= or ?to= it narrows to one
// side of the secondary indexes; without either it returns everything.
func (h *MessageHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	switch {
	case query.Has("from"):
		userID, err := parseUserID(query.Get("from"), "from")
		if err != nil {
			writeError(w, err)
			return
		}
		h.writeList(w, h.service.FindAllByFrom(r.Context(), userID))
	case query.Has("to"):
		userID, err := parseUserID(query.Get("to"), "to")
		if err != nil {
			writeError(w, err)
			return
		}
		h.writeList(w, h.service.FindAllByTo(r.Context(), userID))
	default:
		h.writeList(w, h.service.FindAll(r.Context()))
	}
}

// GetByID handles GET /messages/{id}.
func (h *MessageHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, apiErr := parsePathID(r)
	if apiErr != nil {
		writeError(w, apiErr)
		return
	}

	result := h.service.FindByID(r.Context(), id)
	if result.IsFailure() {
		writeError(w, result.Err())
		return
	}
	if result.Value() == nil {
		writeError(w, errs.NotFound("Message", id))
		return
	}
	writeSuccess(w, http.StatusOK, result.Value())
}

// Conversation handles GET /messages/conversation?user1=&user2=. The
// exchange is symmetric in its two participants.
func (h *MessageHandler) Conversation(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	userA, apiErr := parseUserID(query.Get("user1"), "user1")
	if apiErr != nil {
		writeError(w, apiErr)
		return
	}
	userB, apiErr := parseUserID(query.Get("user2"), "user2")
	if apiErr != nil {
		writeError(w, apiErr)
		return
	}

	h.writeList(w, h.service.FindConversation(r.Context(), userA, userB))
}

// Count handles GET /messages/count?from= or ?to=. Counts come from the
// index cardinality and may exceed the number of live records.
func (h *MessageHandler) Count(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var result errs.Result[int64]
	switch {
	case query.Has("from"):
		userID, apiErr := parseUserID(query.Get("from"), "from")
		if apiErr != nil {
			writeError(w, apiErr)
			return
		}
		result = h.service.CountByFrom(r.Context(), userID)
	case query.Has("to"):
		userID, apiErr := parseUserID(query.Get("to"), "to")
		if apiErr != nil {
			writeError(w, apiErr)
			return
		}
		result = h.service.CountByTo(r.Context(), userID)
	default:
		writeError(w, errs.ValueIsRequired("from or to"))
		return
	}

	if result.IsFailure() {
		writeError(w, result.Err())
		return
	}
	writeSuccess(w, http.StatusOK, map[string]int64{"count": result.Value()})
}

// Update handles PUT /messages/{id}.
func (h *MessageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, apiErr := parsePathID(r)
	if apiErr != nil {
		writeError(w, apiErr)
		return
	}

	request, apiErr := h.decodeRequest(r)
	if apiErr != nil {
		writeError(w, apiErr)
		return
	}

	result := h.service.Update(r.Context(), id, request)
	if result.IsFailure() {
		writeError(w, result.Err())
		return
	}
	writeSuccess(w, http.StatusOK, result.Value())
}

// Delete handles DELETE /messages/{id}.
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, apiErr := parsePathID(r)
	if apiErr != nil {
		writeError(w, apiErr)
		return
	}

	result := h.service.DeleteByID(r.Context(), id)
	if result.IsFailure() {
		writeError(w, result.Err())
		return
	}
	writeSuccess(w, http.StatusOK, map[string]string{"deleted": id.String()})
}

// DeleteAll handles DELETE /messages.
func (h *MessageHandler) DeleteAll(w http.ResponseWriter, r *http.Request) {
	result := h.service.DeleteAll(r.Context())
	if result.IsFailure() {
		writeError(w, result.Err())
		return
	}
	writeSuccess(w, http.StatusOK, nil)
}

func (h *MessageHandler) decodeRequest(r *http.Request) (domain.CreateMessageRequest, *errs.Error) {
	var request domain.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.log.Warn("Rejected unreadable request body", "error", err)
		return request, errs.DeserializationError(err.Error())
	}
	if err := h.validate.Struct(request); err != nil {
		return request, validationError(err)
	}
	return request, nil
}

func (h *MessageHandler) writeList(w http.ResponseWriter, result errs.Result[[]domain.MessageResponse]) {
	if result.IsFailure() {
		writeError(w, result.Err())
		return
	}
	responses := result.Value()
	if responses == nil {
		responses = []domain.MessageResponse{}
	}
	writeSuccess(w, http.StatusOK, responses)
}

func validationError(err error) *errs.Error {
	violations, ok := err.(validator.ValidationErrors)
	if !ok {
		return errs.Validation(errs.FieldError{Field: "request", Message: err.Error()})
	}
	fields := make([]errs.FieldError, 0, len(violations))
	for _, v := range violations {
		fields = append(fields, errs.FieldError{
			Field:   v.Field(),
			Message: "failed on the '" + v.Tag() + "' rule",
		})
	}
	return errs.Validation(fields...)
}

func parsePathID(r *http.Request) (uuid.UUID, *errs.Error) {
	return parseUserID(mux.Vars(r)["id"], "id")
}

func parseUserID(raw, field string) (uuid.UUID, *errs.Error) {
	if raw == "" {
		return uuid.Nil, errs.ValueIsEmpty(field)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.ValueIsEmpty(field)
	}
	return id, nil
}
