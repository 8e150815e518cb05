//go:generate go run go.uber.org/mock/mockgen -source=message_service.go -destination=../mocks/mock_message_service.go -package=mocks
package services

import (
	"context"
	"log/slog"

	"chat-relay/domain"
	"chat-relay/errs"
	"chat-relay/repositories"

	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IMessageService interface {
	FindAll(ctx context.Context) errs.Result[[]domain.MessageResponse]
	FindByID(ctx context.Context, id uuid.UUID) errs.Result[*domain.MessageResponse]
	FindAllByFrom(ctx context.Context, fromUserID uuid.UUID) errs.Result[[]domain.MessageResponse]
	FindAllByTo(ctx context.Context, toUserID uuid.UUID) errs.Result[[]domain.MessageResponse]
	FindConversation(ctx context.Context, userA, userB uuid.UUID) errs.Result[[]domain.MessageResponse]
	CountByFrom(ctx context.Context, fromUserID uuid.UUID) errs.Result[int64]
	CountByTo(ctx context.Context, toUserID uuid.UUID) errs.Result[int64]
	ExistsByID(ctx context.Context, id uuid.UUID) errs.Result[bool]
	Save(ctx context.Context, request domain.CreateMessageRequest) errs.Result[domain.MessageResponse]
	Update(ctx context.Context, id uuid.UUID, request domain.CreateMessageRequest) errs.Result[domain.MessageResponse]
	DeleteByID(ctx context.Context, id uuid.UUID) errs.UnitResult
	DeleteAll(ctx context.Context) errs.UnitResult
}

// MessageService turns transport requests into validated message
// entities, drives the store and maps entities back to responses.
type MessageService struct {
	repository repositories.IMessageRepository
	log        *slog.Logger
}

func NewMessageService(repository repositories.IMessageRepository, log *slog.Logger) *MessageService {
	return &MessageService{repository: repository, log: log}
}

func (s *MessageService) FindAll(ctx context.Context) errs.Result[[]domain.MessageResponse] {
	return mapList(s.repository.FindAll(ctx))
}

func (s *MessageService) FindByID(ctx context.Context, id uuid.UUID) errs.Result[*domain.MessageResponse] {
	result := s.repository.FindByID(ctx, id)
	if result.IsFailure() {
		return errs.Fail[*domain.MessageResponse](result.Err())
	}
	message := result.Value()
	if message == nil {
		return errs.Ok[*domain.MessageResponse](nil)
	}
	response := message.ToResponse()
	return errs.Ok(&response)
}

func (s *MessageService) FindAllByFrom(ctx context.Context, fromUserID uuid.UUID) errs.Result[[]domain.MessageResponse] {
	return mapList(s.repository.FindAllByFrom(ctx, fromUserID))
}

func (s *MessageService) FindAllByTo(ctx context.Context, toUserID uuid.UUID) errs.Result[[]domain.MessageResponse] {
	return mapList(s.repository.FindAllByTo(ctx, toUserID))
}

func (s *MessageService) FindConversation(ctx context.Context, userA, userB uuid.UUID) errs.Result[[]domain.MessageResponse] {
	return mapList(s.repository.FindConversation(ctx, userA, userB))
}

func (s *MessageService) CountByFrom(ctx context.Context, fromUserID uuid.UUID) errs.Result[int64] {
	return s.repository.CountByFrom(ctx, fromUserID)
}

func (s *MessageService) CountByTo(ctx context.Context, toUserID uuid.UUID) errs.Result[int64] {
	return s.repository.CountByTo(ctx, toUserID)
}

func (s *MessageService) ExistsByID(ctx context.Context, id uuid.UUID) errs.Result[bool] {
	return s.repository.ExistsByID(ctx, id)
}

// Save builds a new message from the request and persists it.
func (s *MessageService) Save(ctx context.Context, request domain.CreateMessageRequest) errs.Result[domain.MessageResponse] {
	entityResult := domain.FromCreateRequest(request)
	if entityResult.IsFailure() {
		s.log.Warn("Failed to build message entity from request", "error", entityResult.Err())
		return errs.Fail[domain.MessageResponse](entityResult.Err())
	}
	message := entityResult.Value()

	if saved := s.repository.Save(ctx, &message); saved.IsFailure() {
		return errs.Fail[domain.MessageResponse](saved.Err())
	}
	s.log.Info("Created message", "id", message.ID, "from", message.From, "to", message.To)
	return errs.Ok(message.ToResponse())
}

// Update verifies the target exists, then overwrites it with a new
// message built from the request. The replacement carries a fresh
// identifier; the superseded record lives on until its TTL runs out.
func (s *MessageService) Update(ctx context.Context, id uuid.UUID, request domain.CreateMessageRequest) errs.Result[domain.MessageResponse] {
	if id == uuid.Nil {
		return errs.Fail[domain.MessageResponse](errs.ValueIsEmpty("id"))
	}

	existing := s.repository.FindByID(ctx, id)
	if existing.IsFailure() {
		return errs.Fail[domain.MessageResponse](existing.Err())
	}
	if existing.Value() == nil {
		s.log.Warn("Cannot update: message not found", "id", id)
		return errs.Fail[domain.MessageResponse](errs.NotFound("Message", id))
	}

	entityResult := domain.FromCreateRequest(request)
	if entityResult.IsFailure() {
		return errs.Fail[domain.MessageResponse](entityResult.Err())
	}
	replacement := entityResult.Value()

	if saved := s.repository.Save(ctx, &replacement); saved.IsFailure() {
		return errs.Fail[domain.MessageResponse](saved.Err())
	}
	s.log.Info("Updated message", "previous", id, "id", replacement.ID)
	return errs.Ok(replacement.ToResponse())
}

func (s *MessageService) DeleteByID(ctx context.Context, id uuid.UUID) errs.UnitResult {
	return s.repository.DeleteByID(ctx, id)
}

func (s *MessageService) DeleteAll(ctx context.Context) errs.UnitResult {
	return s.repository.DeleteAll(ctx)
}

func mapList(result errs.Result[[]domain.Message]) errs.Result[[]domain.MessageResponse] {
	if result.IsFailure() {
		return errs.Fail[[]domain.MessageResponse](result.Err())
	}
	responses := lo.Map(result.Value(), func(m domain.Message, _ int) domain.MessageResponse {
		return m.ToResponse()
	})
	return errs.Ok(responses)
}
