package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-client/internal/entity"
)

const journalTTL = 7 * 24 * time.Hour

type JournalRepository interface {
	Record(ctx context.Context, entry *entity.JournalEntry) error
	Entries(ctx context.Context) ([]entity.JournalEntry, error)
}

type dbJournal struct {
	client    *redis.Client
	sessionID string
}

// NewJournalRepository appends entries to the Redis list of one client session.
func NewJournalRepository(client *redis.Client, sessionID string) JournalRepository {
	return &dbJournal{
		client:    client,
		sessionID: sessionID,
	}
}

func journalKey(sessionID string) string {
	return "journal:" + sessionID
}

func (that *dbJournal) Record(ctx context.Context, entry *entity.JournalEntry) error {
	entryJSON, err := json.Marshal(entry)
	if err != nil {
		return fmt.Errorf("could not marshal journal entry: %w", err)
	}

	key := journalKey(that.sessionID)
	_, err = that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, entryJSON)
		pipe.Expire(ctx, key, journalTTL)

		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append journal entry: %w", err)
	}

	return nil
}

func (that *dbJournal) Entries(ctx context.Context) ([]entity.JournalEntry, error) {
	response, err := that.client.LRange(ctx, journalKey(that.sessionID), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}

	entries := make([]entity.JournalEntry, 0, len(response))
	for _, raw := range response {
		var entry entity.JournalEntry
		if err = json.Unmarshal([]byte(raw), &entry); err != nil {
			return nil, fmt.Errorf("failed to unmarshal journal entry: %w", err)
		}

		entries = append(entries, entry)
	}

	return entries, nil
}

type noopJournal struct{}

// NewNoopJournal is used when no Redis is configured.
func NewNoopJournal() JournalRepository {
	return noopJournal{}
}

func (noopJournal) Record(context.Context, *entity.JournalEntry) error {
	return nil
}

func (noopJournal) Entries(context.Context) ([]entity.JournalEntry, error) {
	return []entity.JournalEntry{}, nil
}
