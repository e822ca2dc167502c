// Package models defines the journal records shared by storage, the entry
// log model and export.
package models

import (
	"strings"
	"time"
)

// Author identifies who wrote an entry. There is no user registry; the
// author is carried along as opaque data.
type Author struct {
	Name   string `json:"name" msgpack:"name"`
	Avatar string `json:"avatar" msgpack:"avatar"`
}

// Reply is a second-level post nested under exactly one Entry.
type Reply struct {
	// Id is the creation time in Unix milliseconds.
	Id   int64  `json:"id" msgpack:"id"`
	User Author `json:"user" msgpack:"user"`
	Text string `json:"text" msgpack:"text"`

	// Timestamp is the display time formatted once at creation.
	Timestamp string `json:"timestamp" msgpack:"timestamp"`

	// Image is an optional data URI (data:<mime>;base64,<payload>).
	Image string `json:"image,omitempty" msgpack:"image,omitempty"`
}

// Entry is a top-level journal post.
type Entry struct {
	Id        int64   `json:"id" msgpack:"id"`
	User      Author  `json:"user" msgpack:"user"`
	Text      string  `json:"text" msgpack:"text"`
	Timestamp string  `json:"timestamp" msgpack:"timestamp"`
	Image     string  `json:"image,omitempty" msgpack:"image,omitempty"`
	Replies   []Reply `json:"replies,omitempty" msgpack:"replies,omitempty"`
}

// HasContent reports whether text is non-blank or an image is attached.
func HasContent(text, image string) bool {
	return strings.TrimSpace(text) != "" || image != ""
}

func (e Entry) HasContent() bool { return HasContent(e.Text, e.Image) }

func (r Reply) HasContent() bool { return HasContent(r.Text, r.Image) }

// CreatedAt interprets Id as a Unix-millisecond timestamp.
func (e Entry) CreatedAt() time.Time { return time.UnixMilli(e.Id) }

func (r Reply) CreatedAt() time.Time { return time.UnixMilli(r.Id) }

// Clone returns a deep copy; the replies slice is never shared.
func (e Entry) Clone() Entry {
	if e.Replies != nil {
		e.Replies = append([]Reply(nil), e.Replies...)
	}
	return e
}
