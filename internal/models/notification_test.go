package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Empty snapshot fields are encoded as explicit nulls, never omitted, so
// every post_completed payload has the same shape.
func TestSnapshotNullShape(t *testing.T) {
	p := &Post{Title: "Bread", Description: "Fresh"}
	raw := SnapshotOf(p).JSON()

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal([]byte(raw), &decoded))
	for _, key := range []string{"postTitle", "postDescription", "postCategory", "location", "goBadDate", "foodAllergens"} {
		assert.Contains(t, decoded, key)
	}
	assert.Equal(t, "null", string(decoded["postCategory"]))
	assert.Equal(t, "null", string(decoded["goBadDate"]))
	assert.Equal(t, `"Bread"`, string(decoded["postTitle"]))
}

func TestSnapshotGoBadDate(t *testing.T) {
	d := time.Date(2026, 9, 14, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))
	p := &Post{Title: "Milk", Description: "1L", GoBadDate: &d}
	s := SnapshotOf(p)
	require.NotNil(t, s.GoBadDate)
	assert.Equal(t, "2026-09-14T10:00:00Z", *s.GoBadDate, "snapshot dates are UTC RFC 3339")
}

func TestPostExpired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	assert.False(t, (&Post{}).Expired(now), "no go-bad date means never expired")
	assert.True(t, (&Post{GoBadDate: &past}).Expired(now))
	assert.False(t, (&Post{GoBadDate: &future}).Expired(now))
}
