package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasContent(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		image string
		want  bool
	}{
		{"text only", "hello", "", true},
		{"image only", "", "data:image/png;base64,AAAA", true},
		{"blank text", "  \n\t", "", false},
		{"empty", "", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HasContent(tt.text, tt.image))
			assert.Equal(t, tt.want, Entry{Text: tt.text, Image: tt.image}.HasContent())
			assert.Equal(t, tt.want, Reply{Text: tt.text, Image: tt.image}.HasContent())
		})
	}
}

func TestCreatedAt(t *testing.T) {
	e := Entry{Id: 1000000000000}
	assert.Equal(t, time.Date(2001, 9, 9, 1, 46, 40, 0, time.UTC), e.CreatedAt().UTC())
}

func TestClone_DoesNotShareReplies(t *testing.T) {
	e := Entry{Id: 1, Replies: []Reply{{Id: 2, Text: "a"}}}
	c := e.Clone()
	c.Replies[0].Text = "b"
	assert.Equal(t, "a", e.Replies[0].Text)
}

func TestEntry_WireShape(t *testing.T) {
	e := Entry{
		Id:        1700000000000,
		User:      Author{Name: "Me", Avatar: "M"},
		Text:      "hi",
		Timestamp: "10:00",
		Replies:   []Reply{{Id: 1700000000001, User: Author{Name: "Me", Avatar: "M"}, Text: "re", Timestamp: "10:01"}},
	}
	b, err := json.Marshal(e)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	assert.ElementsMatch(t, []string{"id", "user", "text", "timestamp", "replies"}, keys(m))
	assert.Equal(t, map[string]any{"name": "Me", "avatar": "M"}, m["user"])

	reply := m["replies"].([]any)[0].(map[string]any)
	assert.NotContains(t, reply, "image")
	assert.NotContains(t, reply, "replies")
}

func keys(m map[string]any) []string {
	out := make([]string, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	return out
}
