package triage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Record is one completed symptom check in a patient's history.
type Record struct {
	ID        string    `json:"id"`
	PatientID string    `json:"patient_id"`
	Symptoms  string    `json:"symptoms"`
	Result    Result    `json:"result"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryStore persists symptom check records per patient, newest-first.
// Records are append-only.
type HistoryStore interface {
	Append(ctx context.Context, rec *Record) error
	ListByPatient(ctx context.Context, patientID string) ([]*Record, error)
}

// InMemoryHistory keeps records in process memory. Used in tests and when
// no redis address is configured.
type InMemoryHistory struct {
	mu        sync.RWMutex
	byPatient map[string][]*Record
}

func NewInMemoryHistory() *InMemoryHistory {
	return &InMemoryHistory{byPatient: make(map[string][]*Record)}
}

func (h *InMemoryHistory) Append(ctx context.Context, rec *Record) error {
	if rec.PatientID == "" {
		return errors.New("triage: history patientID required")
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	cp := *rec
	// prepend: listing order is newest-first
	h.byPatient[rec.PatientID] = append([]*Record{&cp}, h.byPatient[rec.PatientID]...)
	return nil
}

func (h *InMemoryHistory) ListByPatient(ctx context.Context, patientID string) ([]*Record, error) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	recs := h.byPatient[patientID]
	out := make([]*Record, 0, len(recs))
	for _, r := range recs {
		cp := *r
		out = append(out, &cp)
	}
	return out, nil
}

const historyKeyPrefix = "symptom_history:"

// maxHistoryEntries caps the per-patient list so an automated client
// cannot grow a key without bound.
const maxHistoryEntries = 250

// RedisHistory stores each patient's checks in a redis list. LPUSH keeps
// the list newest-first so reads are a plain LRANGE.
type RedisHistory struct {
	redis *redis.Client
}

func NewRedisHistory(client *redis.Client) *RedisHistory {
	if client == nil {
		return nil
	}
	return &RedisHistory{redis: client}
}

func (h *RedisHistory) Append(ctx context.Context, rec *Record) error {
	if h == nil || h.redis == nil {
		return nil
	}
	if rec.PatientID == "" {
		return errors.New("triage: history patientID required")
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("triage: marshal history record: %w", err)
	}

	key := historyKey(rec.PatientID)
	pipe := h.redis.TxPipeline()
	pipe.LPush(ctx, key, data)
	pipe.LTrim(ctx, key, 0, maxHistoryEntries-1)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("triage: append history record: %w", err)
	}
	return nil
}

func (h *RedisHistory) ListByPatient(ctx context.Context, patientID string) ([]*Record, error) {
	if h == nil || h.redis == nil {
		return nil, nil
	}

	raw, err := h.redis.LRange(ctx, historyKey(patientID), 0, -1).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []*Record{}, nil
		}
		return nil, fmt.Errorf("triage: list history: %w", err)
	}

	out := make([]*Record, 0, len(raw))
	for _, item := range raw {
		var rec Record
		if err := json.Unmarshal([]byte(item), &rec); err != nil {
			continue
		}
		out = append(out, &rec)
	}
	return out, nil
}

func historyKey(patientID string) string {
	return historyKeyPrefix + patientID
}
