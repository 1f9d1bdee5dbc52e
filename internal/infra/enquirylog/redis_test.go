package enquirylog

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"

	"github.com/construction-sites/crm/internal/usecase"
)

func TestRedisLogger_AppendPushesToList(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	logger := NewRedisLogger(client)

	err := logger.Append(context.Background(), usecase.EnquiryLogEntry{
		SiteID:    "demo-builders",
		Service:   "Extensions",
		Timestamp: "2026-08-28T10:00:00Z",
	})
	assert.NoError(t, err)

	err = logger.Append(context.Background(), usecase.EnquiryLogEntry{
		SiteID:    "demo-builders",
		Service:   "New Builds",
		Timestamp: "2026-08-28T11:00:00Z",
	})
	assert.NoError(t, err)

	entries, err := mr.List("enquiry:log")
	assert.NoError(t, err)
	assert.Len(t, entries, 2)

	// LPUSH puts the newest entry first.
	var newest usecase.EnquiryLogEntry
	assert.NoError(t, json.Unmarshal([]byte(entries[0]), &newest))
	assert.Equal(t, "New Builds", newest.Service)
	assert.Equal(t, "demo-builders", newest.SiteID)
}

func TestRedisLogger_HoldsNoPersonalData(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	logger := NewRedisLogger(client)

	err := logger.Append(context.Background(), usecase.EnquiryLogEntry{
		SiteID:    "demo-builders",
		Service:   "Extensions",
		Timestamp: "2026-08-28T10:00:00Z",
	})
	assert.NoError(t, err)

	entries, err := mr.List("enquiry:log")
	assert.NoError(t, err)

	var raw map[string]any
	assert.NoError(t, json.Unmarshal([]byte(entries[0]), &raw))
	assert.Equal(t, map[string]any{
		"site_id":   "demo-builders",
		"service":   "Extensions",
		"timestamp": "2026-08-28T10:00:00Z",
	}, raw)
}
