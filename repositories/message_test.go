package repositories

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"chat-relay/domain"
	"chat-relay/errs"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) (MessageRepository, *miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewMessageRepository(client, slog.Default(), DefaultKeyspace(), DefaultMessageTTL), mr, client
}

func newTextMessage(t *testing.T, from, to uuid.UUID, at time.Time, content string) domain.Message {
	t.Helper()
	payload := domain.NewPayload([]byte(content), "TEXT")
	require.True(t, payload.IsSuccess())
	result := domain.NewMessage(at, from, to, payload.Value())
	require.True(t, result.IsSuccess())
	return result.Value()
}

func messageIDs(messages []domain.Message) []uuid.UUID {
	return lo.Map(messages, func(m domain.Message, _ int) uuid.UUID { return m.ID })
}

func TestMessageRepository_SaveAndFindByID(t *testing.T) {
	ctx := context.Background()

	t.Run("should round-trip a saved message", func(t *testing.T) {
		req := require.New(t)
		repo, _, _ := newTestRepository(t)
		m := newTextMessage(t, uuid.New(), uuid.New(), time.Now().UTC(), "hello")

		req.True(repo.Save(ctx, &m).IsSuccess())

		result := repo.FindByID(ctx, m.ID)
		req.True(result.IsSuccess())
		found := result.Value()
		req.NotNil(found)
		req.Equal(m.ID, found.ID)
		req.Equal(m.From, found.From)
		req.Equal(m.To, found.To)
		req.True(m.Date.Equal(found.Date))
		req.Equal(m.Payload.Bytes(), found.Payload.Bytes())
		req.Equal(domain.KindText, found.Payload.Kind())
	})

	t.Run("should return empty success for an unknown id", func(t *testing.T) {
		req := require.New(t)
		repo, _, _ := newTestRepository(t)

		result := repo.FindByID(ctx, uuid.New())
		req.True(result.IsSuccess())
		req.Nil(result.Value())
	})

	t.Run("should fail with value required for nil message", func(t *testing.T) {
		req := require.New(t)
		repo, _, _ := newTestRepository(t)

		result := repo.Save(ctx, nil)
		req.True(result.IsFailure())
		req.Equal(errs.CodeValueRequired, result.Err().Code)
	})

	t.Run("should fail with value required when id is missing", func(t *testing.T) {
		req := require.New(t)
		repo, _, _ := newTestRepository(t)
		m := newTextMessage(t, uuid.New(), uuid.New(), time.Now().UTC(), "hello")
		m.ID = uuid.Nil

		result := repo.Save(ctx, &m)
		req.True(result.IsFailure())
		req.Equal(errs.CodeValueRequired, result.Err().Code)
	})

	t.Run("should fail with value empty for nil id lookups", func(t *testing.T) {
		req := require.New(t)
		repo, _, _ := newTestRepository(t)

		result := repo.FindByID(ctx, uuid.Nil)
		req.True(result.IsFailure())
		req.Equal(errs.CodeValueEmpty, result.Err().Code)
	})
}

func TestMessageRepository_KeyLayout(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo, mr, client := newTestRepository(t)
	m := newTextMessage(t, uuid.New(), uuid.New(), time.Now().UTC(), "hello")

	req.True(repo.Save(ctx, &m).IsSuccess())

	// Deployed-data compatibility: these exact key strings are the contract.
	id := m.ID.String()
	req.True(mr.Exists("record:" + id))
	req.True(client.SIsMember(ctx, "index:from:"+m.From.String(), id).Val())
	req.True(client.SIsMember(ctx, "index:to:"+m.To.String(), id).Val())
	req.True(client.SIsMember(ctx, "index:all", id).Val())

	// The record is time-boxed; the index sets never expire.
	req.Greater(mr.TTL("record:"+id), time.Duration(0))
	req.Equal(time.Duration(0), mr.TTL("index:from:"+m.From.String()))
	req.Equal(time.Duration(0), mr.TTL("index:all"))
}

func TestMessageRepository_KeyspaceIsolation(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	_, _, client := newTestRepository(t)

	tenantA := NewMessageRepository(client, slog.Default(), Keyspace{
		RecordPrefix: "a:record:", FromPrefix: "a:index:from:", ToPrefix: "a:index:to:", AllKey: "a:index:all",
	}, 0)
	tenantB := NewMessageRepository(client, slog.Default(), Keyspace{
		RecordPrefix: "b:record:", FromPrefix: "b:index:from:", ToPrefix: "b:index:to:", AllKey: "b:index:all",
	}, 0)

	m := newTextMessage(t, uuid.New(), uuid.New(), time.Now().UTC(), "tenant a only")
	req.True(tenantA.Save(ctx, &m).IsSuccess())

	req.Len(tenantA.FindAll(ctx).Value(), 1)
	req.Empty(tenantB.FindAll(ctx).Value())
	req.Nil(tenantB.FindByID(ctx, m.ID).Value())
}

func TestMessageRepository_DeleteByID(t *testing.T) {
	ctx := context.Background()

	t.Run("should delete a fresh message and clean its indexes", func(t *testing.T) {
		req := require.New(t)
		repo, _, client := newTestRepository(t)
		m := newTextMessage(t, uuid.New(), uuid.New(), time.Now().UTC(), "hello")
		req.True(repo.Save(ctx, &m).IsSuccess())

		req.True(repo.DeleteByID(ctx, m.ID).IsSuccess())

		// A deleted record reads back as empty success, not an error.
		result := repo.FindByID(ctx, m.ID)
		req.True(result.IsSuccess())
		req.Nil(result.Value())

		id := m.ID.String()
		req.False(client.SIsMember(ctx, "index:from:"+m.From.String(), id).Val())
		req.False(client.SIsMember(ctx, "index:to:"+m.To.String(), id).Val())
		req.False(client.SIsMember(ctx, "index:all", id).Val())
	})

	t.Run("should fail with not found for a never-saved id", func(t *testing.T) {
		req := require.New(t)
		repo, _, _ := newTestRepository(t)

		result := repo.DeleteByID(ctx, uuid.New())
		req.True(result.IsFailure())
		req.Equal(errs.CodeNotFound, result.Err().Code)
	})

	t.Run("should fail with value empty for a nil id", func(t *testing.T) {
		req := require.New(t)
		repo, _, _ := newTestRepository(t)

		result := repo.DeleteByID(ctx, uuid.Nil)
		req.True(result.IsFailure())
		req.Equal(errs.CodeValueEmpty, result.Err().Code)
	})
}

func TestMessageRepository_FindAllByUser(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo, _, _ := newTestRepository(t)

	alice := uuid.New()
	bob := uuid.New()
	clara := uuid.New()
	at := time.Now().UTC()

	sent := []domain.Message{
		newTextMessage(t, alice, bob, at, "one"),
		newTextMessage(t, alice, clara, at.Add(time.Minute), "two"),
		newTextMessage(t, alice, bob, at.Add(2*time.Minute), "three"),
	}
	other := newTextMessage(t, bob, clara, at, "not alice")
	for i := range sent {
		req.True(repo.Save(ctx, &sent[i]).IsSuccess())
	}
	req.True(repo.Save(ctx, &other).IsSuccess())

	// Index order, not save order: compare as sets.
	fromAlice := repo.FindAllByFrom(ctx, alice)
	req.True(fromAlice.IsSuccess())
	req.ElementsMatch(messageIDs(sent), messageIDs(fromAlice.Value()))

	req.Equal(int64(3), repo.CountByFrom(ctx, alice).Value())
	req.Equal(int64(1), repo.CountByFrom(ctx, bob).Value())
	req.Equal(int64(0), repo.CountByFrom(ctx, clara).Value())

	toBob := repo.FindAllByTo(ctx, bob)
	req.True(toBob.IsSuccess())
	req.ElementsMatch([]uuid.UUID{sent[0].ID, sent[2].ID}, messageIDs(toBob.Value()))
	req.Equal(int64(2), repo.CountByTo(ctx, bob).Value())

	// An indexless user yields an empty list, never an error.
	nobody := repo.FindAllByFrom(ctx, uuid.New())
	req.True(nobody.IsSuccess())
	req.Empty(nobody.Value())

	// A missing argument is an error, unlike an empty index.
	req.Equal(errs.CodeValueEmpty, repo.FindAllByFrom(ctx, uuid.Nil).Err().Code)
	req.Equal(errs.CodeValueEmpty, repo.CountByTo(ctx, uuid.Nil).Err().Code)
}

func TestMessageRepository_FindConversation(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo, _, _ := newTestRepository(t)

	alice := uuid.New()
	bob := uuid.New()
	clara := uuid.New()
	base := time.Now().UTC()

	m1 := newTextMessage(t, alice, bob, base.Add(10*time.Second), "hello")
	m2 := newTextMessage(t, bob, alice, base.Add(20*time.Second), "hi")
	noise1 := newTextMessage(t, alice, clara, base.Add(5*time.Second), "other thread")
	noise2 := newTextMessage(t, clara, bob, base.Add(15*time.Second), "third party")
	for _, m := range []*domain.Message{&m1, &m2, &noise1, &noise2} {
		req.True(repo.Save(ctx, m).IsSuccess())
	}

	result := repo.FindConversation(ctx, alice, bob)
	req.True(result.IsSuccess())
	conversation := result.Value()

	// Only the bidirectional exchange, sorted ascending by timestamp.
	req.Equal([]uuid.UUID{m1.ID, m2.ID}, messageIDs(conversation))
	for _, m := range conversation {
		req.Contains([]uuid.UUID{alice, bob}, m.From)
		req.Contains([]uuid.UUID{alice, bob}, m.To)
	}

	// Symmetric regardless of argument order.
	reversed := repo.FindConversation(ctx, bob, alice)
	req.Equal([]uuid.UUID{m1.ID, m2.ID}, messageIDs(reversed.Value()))

	// Deleting one side shrinks the exchange.
	req.True(repo.DeleteByID(ctx, m1.ID).IsSuccess())
	afterDelete := repo.FindConversation(ctx, alice, bob)
	req.Equal([]uuid.UUID{m2.ID}, messageIDs(afterDelete.Value()))
}

func TestMessageRepository_SpecScenario(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo, _, _ := newTestRepository(t)

	alice := uuid.New()
	bob := uuid.New()
	base := time.Unix(0, 0).UTC()

	m1 := newTextMessage(t, alice, bob, base.Add(10*time.Second), "hello")
	m2 := newTextMessage(t, bob, alice, base.Add(20*time.Second), "hi")
	req.True(repo.Save(ctx, &m1).IsSuccess())
	req.True(repo.Save(ctx, &m2).IsSuccess())

	req.Equal([]uuid.UUID{m1.ID, m2.ID}, messageIDs(repo.FindConversation(ctx, alice, bob).Value()))
	req.Equal(int64(1), repo.CountByFrom(ctx, alice).Value())

	req.True(repo.DeleteByID(ctx, m1.ID).IsSuccess())
	req.Empty(repo.FindAllByFrom(ctx, alice).Value())
	req.Equal([]uuid.UUID{m2.ID}, messageIDs(repo.FindConversation(ctx, alice, bob).Value()))
}

func TestMessageRepository_FindAll_DropsUnreadableRecords(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo, mr, _ := newTestRepository(t)

	good1 := newTextMessage(t, uuid.New(), uuid.New(), time.Now().UTC(), "fine")
	good2 := newTextMessage(t, uuid.New(), uuid.New(), time.Now().UTC(), "also fine")
	req.True(repo.Save(ctx, &good1).IsSuccess())
	req.True(repo.Save(ctx, &good2).IsSuccess())

	// Plant a corrupt record behind a valid index entry.
	corruptID := uuid.New().String()
	req.NoError(mr.Set("record:"+corruptID, "{definitely-not-json"))
	_, err := mr.SetAdd("index:all", corruptID)
	req.NoError(err)

	// Bulk path degrades gracefully: the corrupt record is dropped.
	all := repo.FindAll(ctx)
	req.True(all.IsSuccess())
	req.ElementsMatch([]uuid.UUID{good1.ID, good2.ID}, messageIDs(all.Value()))

	// Single-record path surfaces the corruption instead.
	single := repo.FindByID(ctx, uuid.MustParse(corruptID))
	req.True(single.IsFailure())
	req.Equal(errs.CodeDeserialization, single.Err().Code)
}

func TestMessageRepository_ExpiredRecordLeavesStaleIndex(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo, mr, _ := newTestRepository(t)

	m := newTextMessage(t, uuid.New(), uuid.New(), time.Now().UTC(), "fleeting")
	req.True(repo.Save(ctx, &m).IsSuccess())

	mr.FastForward(DefaultMessageTTL + time.Hour)

	// The record is gone; reads treat it as absent.
	result := repo.FindByID(ctx, m.ID)
	req.True(result.IsSuccess())
	req.Nil(result.Value())
	req.Empty(repo.FindAllByFrom(ctx, m.From).Value())

	// The index entry survives the record: counts overcount stale ids.
	req.Equal(int64(1), repo.CountByFrom(ctx, m.From).Value())
}

func TestMessageRepository_ExistsByID(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo, _, _ := newTestRepository(t)

	m := newTextMessage(t, uuid.New(), uuid.New(), time.Now().UTC(), "hello")
	req.True(repo.Save(ctx, &m).IsSuccess())

	req.True(repo.ExistsByID(ctx, m.ID).Value())
	req.False(repo.ExistsByID(ctx, uuid.New()).Value())
	req.Equal(errs.CodeValueEmpty, repo.ExistsByID(ctx, uuid.Nil).Err().Code)
}

func TestMessageRepository_DeleteAll(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	repo, mr, _ := newTestRepository(t)

	alice := uuid.New()
	bob := uuid.New()
	at := time.Now().UTC()
	messages := []domain.Message{
		newTextMessage(t, alice, bob, at, "one"),
		newTextMessage(t, bob, alice, at.Add(time.Minute), "two"),
		newTextMessage(t, alice, bob, at.Add(2*time.Minute), "three"),
	}
	for i := range messages {
		req.True(repo.Save(ctx, &messages[i]).IsSuccess())
	}

	req.True(repo.DeleteAll(ctx).IsSuccess())

	req.Empty(repo.FindAll(ctx).Value())
	req.Equal(int64(0), repo.CountByFrom(ctx, alice).Value())
	req.Equal(int64(0), repo.CountByFrom(ctx, bob).Value())
	req.Equal(int64(0), repo.CountByTo(ctx, alice).Value())
	req.Equal(int64(0), repo.CountByTo(ctx, bob).Value())
	req.Empty(mr.Keys())

	// Idempotent on an already-empty store.
	req.True(repo.DeleteAll(ctx).IsSuccess())
}
