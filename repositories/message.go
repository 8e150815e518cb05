//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"chat-relay/domain"
	"chat-relay/errs"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// DefaultMessageTTL time-boxes message records. Index sets carry no
// expiry of their own: an index may reference an expired record until
// the id is deleted, and the batch fetch filters those out. Cardinality
// queries can therefore overcount stale ids.
const DefaultMessageTTL = 30 * 24 * time.Hour

// Keyspace names the store's keys. The defaults are a compatibility
// contract with deployed data and must match it byte-for-byte; a
// non-default keyspace isolates a second store (per tenant or per
// environment) inside the same Redis.
type Keyspace struct {
	RecordPrefix string // record:{id} -> serialized message
	FromPrefix   string // index:from:{userId} -> set of message ids
	ToPrefix     string // index:to:{userId} -> set of message ids
	AllKey       string // index:all -> set of every stored message id
}

func DefaultKeyspace() Keyspace {
	return Keyspace{
		RecordPrefix: "record:",
		FromPrefix:   "index:from:",
		ToPrefix:     "index:to:",
		AllKey:       "index:all",
	}
}

func (k Keyspace) record(id string) string { return k.RecordPrefix + id }
func (k Keyspace) from(userID string) string { return k.FromPrefix + userID }
func (k Keyspace) to(userID string) string   { return k.ToPrefix + userID }

type IMessageRepository interface {
	Save(ctx context.Context, message *domain.Message) errs.UnitResult
	FindByID(ctx context.Context, id uuid.UUID) errs.Result[*domain.Message]
	FindAll(ctx context.Context) errs.Result[[]domain.Message]
	FindAllByFrom(ctx context.Context, fromUserID uuid.UUID) errs.Result[[]domain.Message]
	FindAllByTo(ctx context.Context, toUserID uuid.UUID) errs.Result[[]domain.Message]
	FindConversation(ctx context.Context, userA, userB uuid.UUID) errs.Result[[]domain.Message]
	CountByFrom(ctx context.Context, fromUserID uuid.UUID) errs.Result[int64]
	CountByTo(ctx context.Context, toUserID uuid.UUID) errs.Result[int64]
	ExistsByID(ctx context.Context, id uuid.UUID) errs.Result[bool]
	DeleteByID(ctx context.Context, id uuid.UUID) errs.UnitResult
	DeleteAll(ctx context.Context) errs.UnitResult
}

// MessageRepository stores messages in Redis under record:{id} and keeps
// three index sets (by sender, by receiver, global) consistent with the
// records through MULTI/EXEC transactions. Queries answer through set
// algebra and pipelined batch reads instead of scans.
type MessageRepository struct {
	client *redis.Client
	log    *slog.Logger
	keys   Keyspace
	ttl    time.Duration
}

func NewMessageRepository(client *redis.Client, log *slog.Logger, keys Keyspace, ttl time.Duration) MessageRepository {
	if ttl <= 0 {
		ttl = DefaultMessageTTL
	}
	return MessageRepository{client: client, log: log, keys: keys, ttl: ttl}
}

// Save writes the record and its three index memberships in one atomic
// transaction and applies the record TTL. No partial record/index state
// is ever observable by another caller.
func (r MessageRepository) Save(ctx context.Context, message *domain.Message) errs.UnitResult {
	if message == nil {
		r.log.Warn("Save called with nil message")
		return errs.FailUnit(errs.ValueIsRequired("message"))
	}
	if message.ID == uuid.Nil {
		r.log.Warn("Save called with message without ID")
		return errs.FailUnit(errs.ValueIsRequired("message.id"))
	}

	raw, err := fromMessage(*message)
	if err != nil {
		r.log.Error("Failed to serialize message", "id", message.ID, "error", err)
		return errs.FailUnit(errs.SerializationError(err.Error()))
	}

	id := message.ID.String()
	recordKey := r.keys.record(id)
	cmds, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, recordKey, raw, 0)
		pipe.SAdd(ctx, r.keys.from(message.From.String()), id)
		pipe.SAdd(ctx, r.keys.to(message.To.String()), id)
		pipe.SAdd(ctx, r.keys.AllKey, id)
		pipe.Expire(ctx, recordKey, r.ttl)
		return nil
	})
	if err != nil {
		r.log.Error("Transaction failed while saving message", "id", id, "error", err)
		return errs.FailUnit(errs.StorageError(err.Error()))
	}
	if len(cmds) == 0 {
		r.log.Error("Transaction returned no result while saving message", "id", id)
		return errs.FailUnit(errs.StorageError("transaction returned no result"))
	}

	r.log.Info("Saved message", "id", id, "from", message.From, "to", message.To)
	return errs.OkUnit()
}

// FindByID returns the message stored under id. A missing record is not
// an error: the result is successful with a nil message. A record that
// exists but cannot be deserialized fails the call, unlike the bulk
// paths which drop such records.
func (r MessageRepository) FindByID(ctx context.Context, id uuid.UUID) errs.Result[*domain.Message] {
	if id == uuid.Nil {
		r.log.Warn("FindByID called with nil id")
		return errs.Fail[*domain.Message](errs.ValueIsEmpty("id"))
	}

	raw, err := r.client.Get(ctx, r.keys.record(id.String())).Result()
	if errors.Is(err, redis.Nil) {
		return errs.Ok[*domain.Message](nil)
	}
	if err != nil {
		r.log.Error("Failed to read message", "id", id, "error", err)
		return errs.Fail[*domain.Message](errs.StorageError(err.Error()))
	}

	message, err := toMessage([]byte(raw))
	if err != nil {
		r.log.Error("Failed to deserialize message", "id", id, "error", err)
		return errs.Fail[*domain.Message](errs.DeserializationError(err.Error()))
	}
	return errs.Ok(&message)
}

// FindAll reads the global index and batch-fetches every record in one
// pipelined round trip. Result order follows the index set's iteration
// order, not save order.
func (r MessageRepository) FindAll(ctx context.Context) errs.Result[[]domain.Message] {
	ids, err := r.client.SMembers(ctx, r.keys.AllKey).Result()
	if err != nil {
		r.log.Error("Failed to read global index", "error", err)
		return errs.Fail[[]domain.Message](errs.StorageError(err.Error()))
	}
	return r.fetchByIDs(ctx, ids)
}

// FindAllByFrom returns every message sent by a user, in index order.
// An empty index yields an empty list, never an error.
func (r MessageRepository) FindAllByFrom(ctx context.Context, fromUserID uuid.UUID) errs.Result[[]domain.Message] {
	if fromUserID == uuid.Nil {
		r.log.Warn("FindAllByFrom called with nil user id")
		return errs.Fail[[]domain.Message](errs.ValueIsEmpty("fromUserId"))
	}
	ids, err := r.client.SMembers(ctx, r.keys.from(fromUserID.String())).Result()
	if err != nil {
		r.log.Error("Failed to read sender index", "user", fromUserID, "error", err)
		return errs.Fail[[]domain.Message](errs.StorageError(err.Error()))
	}
	return r.fetchByIDs(ctx, ids)
}

// FindAllByTo returns every message addressed to a user, in index order.
func (r MessageRepository) FindAllByTo(ctx context.Context, toUserID uuid.UUID) errs.Result[[]domain.Message] {
	if toUserID == uuid.Nil {
		r.log.Warn("FindAllByTo called with nil user id")
		return errs.Fail[[]domain.Message](errs.ValueIsEmpty("toUserId"))
	}
	ids, err := r.client.SMembers(ctx, r.keys.to(toUserID.String())).Result()
	if err != nil {
		r.log.Error("Failed to read receiver index", "user", toUserID, "error", err)
		return errs.Fail[[]domain.Message](errs.StorageError(err.Error()))
	}
	return r.fetchByIDs(ctx, ids)
}

// FindConversation computes (from:A ∩ to:B) ∪ (from:B ∩ to:A) with
// server-side set intersection, batch-fetches the union and sorts
// ascending by timestamp. No other user's data is touched.
func (r MessageRepository) FindConversation(ctx context.Context, userA, userB uuid.UUID) errs.Result[[]domain.Message] {
	if userA == uuid.Nil {
		r.log.Warn("FindConversation called with nil first user id")
		return errs.Fail[[]domain.Message](errs.ValueIsEmpty("userA"))
	}
	if userB == uuid.Nil {
		r.log.Warn("FindConversation called with nil second user id")
		return errs.Fail[[]domain.Message](errs.ValueIsEmpty("userB"))
	}

	aToB, err := r.client.SInter(ctx, r.keys.from(userA.String()), r.keys.to(userB.String())).Result()
	if err != nil {
		r.log.Error("Failed to intersect indexes", "error", err)
		return errs.Fail[[]domain.Message](errs.StorageError(err.Error()))
	}
	bToA, err := r.client.SInter(ctx, r.keys.from(userB.String()), r.keys.to(userA.String())).Result()
	if err != nil {
		r.log.Error("Failed to intersect indexes", "error", err)
		return errs.Fail[[]domain.Message](errs.StorageError(err.Error()))
	}

	result := r.fetchByIDs(ctx, lo.Union(aToB, bToA))
	if result.IsFailure() {
		return result
	}
	messages := result.Value()
	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Date.Before(messages[j].Date)
	})
	return errs.Ok(messages)
}

// CountByFrom returns the cardinality of the sender index. O(1), no
// record reads; stale ids of expired records are included.
func (r MessageRepository) CountByFrom(ctx context.Context, fromUserID uuid.UUID) errs.Result[int64] {
	if fromUserID == uuid.Nil {
		return errs.Fail[int64](errs.ValueIsEmpty("fromUserId"))
	}
	count, err := r.client.SCard(ctx, r.keys.from(fromUserID.String())).Result()
	if err != nil {
		r.log.Error("Failed to count sender index", "user", fromUserID, "error", err)
		return errs.Fail[int64](errs.StorageError(err.Error()))
	}
	return errs.Ok(count)
}

// CountByTo returns the cardinality of the receiver index.
func (r MessageRepository) CountByTo(ctx context.Context, toUserID uuid.UUID) errs.Result[int64] {
	if toUserID == uuid.Nil {
		return errs.Fail[int64](errs.ValueIsEmpty("toUserId"))
	}
	count, err := r.client.SCard(ctx, r.keys.to(toUserID.String())).Result()
	if err != nil {
		r.log.Error("Failed to count receiver index", "user", toUserID, "error", err)
		return errs.Fail[int64](errs.StorageError(err.Error()))
	}
	return errs.Ok(count)
}

// ExistsByID checks record existence without deserializing.
func (r MessageRepository) ExistsByID(ctx context.Context, id uuid.UUID) errs.Result[bool] {
	if id == uuid.Nil {
		return errs.Fail[bool](errs.ValueIsEmpty("id"))
	}
	n, err := r.client.Exists(ctx, r.keys.record(id.String())).Result()
	if err != nil {
		r.log.Error("Failed to check message existence", "id", id, "error", err)
		return errs.Fail[bool](errs.StorageError(err.Error()))
	}
	return errs.Ok(n == 1)
}

// DeleteByID reads the record to recover sender and receiver, then
// removes the record and its three index memberships in one atomic
// transaction. A missing record is a domain not-found failure, unlike
// FindByID.
func (r MessageRepository) DeleteByID(ctx context.Context, id uuid.UUID) errs.UnitResult {
	if id == uuid.Nil {
		r.log.Warn("DeleteByID called with nil id")
		return errs.FailUnit(errs.ValueIsEmpty("id"))
	}

	recordKey := r.keys.record(id.String())
	raw, err := r.client.Get(ctx, recordKey).Result()
	if errors.Is(err, redis.Nil) {
		r.log.Warn("Cannot delete: message not found", "id", id)
		return errs.FailUnit(errs.NotFound("Message", id))
	}
	if err != nil {
		r.log.Error("Failed to read message before delete", "id", id, "error", err)
		return errs.FailUnit(errs.StorageError(err.Error()))
	}

	message, err := toMessage([]byte(raw))
	if err != nil {
		r.log.Error("Failed to deserialize message before delete", "id", id, "error", err)
		return errs.FailUnit(errs.DeserializationError(err.Error()))
	}

	idStr := id.String()
	cmds, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, recordKey)
		pipe.SRem(ctx, r.keys.from(message.From.String()), idStr)
		pipe.SRem(ctx, r.keys.to(message.To.String()), idStr)
		pipe.SRem(ctx, r.keys.AllKey, idStr)
		return nil
	})
	if err != nil {
		r.log.Error("Transaction failed while deleting message", "id", id, "error", err)
		return errs.FailUnit(errs.StorageError(err.Error()))
	}
	if len(cmds) == 0 {
		r.log.Error("Transaction returned no result while deleting message", "id", id)
		return errs.FailUnit(errs.StorageError("transaction returned no result"))
	}

	r.log.Info("Deleted message", "id", id, "from", message.From, "to", message.To)
	return errs.OkUnit()
}

// DeleteAll enumerates the global index, derives every record key,
// pattern-matches both index prefixes and bulk-deletes everything in one
// pipelined, non-transactional batch. Best effort: a partial failure can
// leave stray index keys behind.
func (r MessageRepository) DeleteAll(ctx context.Context) errs.UnitResult {
	r.log.Warn("Deleting ALL messages and indexes")

	ids, err := r.client.SMembers(ctx, r.keys.AllKey).Result()
	if err != nil {
		r.log.Error("Failed to read global index", "error", err)
		return errs.FailUnit(errs.StorageError(err.Error()))
	}
	if len(ids) == 0 {
		r.log.Info("No messages to delete")
		return errs.OkUnit()
	}

	keys := make([]string, 0, len(ids)+2)
	for _, id := range ids {
		keys = append(keys, r.keys.record(id))
	}
	fromKeys, err := r.client.Keys(ctx, r.keys.FromPrefix+"*").Result()
	if err != nil {
		return errs.FailUnit(errs.StorageError(err.Error()))
	}
	toKeys, err := r.client.Keys(ctx, r.keys.ToPrefix+"*").Result()
	if err != nil {
		return errs.FailUnit(errs.StorageError(err.Error()))
	}
	keys = append(keys, fromKeys...)
	keys = append(keys, toKeys...)
	keys = append(keys, r.keys.AllKey)

	_, err = r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, key := range lo.Uniq(keys) {
			pipe.Del(ctx, key)
		}
		return nil
	})
	if err != nil {
		r.log.Error("Failed to delete all messages", "error", err)
		return errs.FailUnit(errs.StorageError(err.Error()))
	}

	r.log.Warn("Deleted all messages and indexes", "records", len(ids))
	return errs.OkUnit()
}

// fetchByIDs queues one point read per id on a single pipeline, flushes
// once and filters out missing or unreadable records. Bulk reads degrade
// gracefully: a corrupt record is logged and dropped, never fails the
// whole call. Result order follows the input id order.
func (r MessageRepository) fetchByIDs(ctx context.Context, ids []string) errs.Result[[]domain.Message] {
	messages := make([]domain.Message, 0, len(ids))
	if len(ids) == 0 {
		return errs.Ok(messages)
	}

	cmds := make([]*redis.StringCmd, 0, len(ids))
	_, err := r.client.Pipelined(ctx, func(pipe redis.Pipeliner) error {
		for _, id := range ids {
			cmds = append(cmds, pipe.Get(ctx, r.keys.record(id)))
		}
		return nil
	})
	// Pipelined surfaces redis.Nil when any key is absent; absent records
	// are expected here (index staleness) and handled per command below.
	if err != nil && !errors.Is(err, redis.Nil) {
		r.log.Error("Pipelined batch fetch failed", "error", err)
		return errs.Fail[[]domain.Message](errs.StorageError(err.Error()))
	}

	for i, cmd := range cmds {
		raw, err := cmd.Result()
		if err != nil || raw == "" {
			continue
		}
		message, err := toMessage([]byte(raw))
		if err != nil {
			r.log.Error("Dropping unreadable record from batch", "id", ids[i], "error", err)
			continue
		}
		messages = append(messages, message)
	}
	r.log.Debug(fmt.Sprintf("Batch fetched %d of %d records", len(messages), len(ids)))
	return errs.Ok(messages)
}
