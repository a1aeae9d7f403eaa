// Package session carries per-user session state through a conversation.
// The context is owned by the surrounding application; the controller and
// assistants only read it and never retain it beyond a single turn.
package session

import (
	"time"

	"github.com/google/uuid"
)

// Context is the per-user session state threaded through every turn.
// The user ID is assigned once at construction and never changes; the
// preferred topic set is editable at any time by the owning application.
type Context struct {
	userID          string
	preferredTopics []string
	startedAt       time.Time
}

// NewContext returns a fully initialized Context. Every field is defaulted
// up front: a missing user ID gets a generated one, a missing topic list
// stays an empty (non-nil) slice and the start time is now.
func NewContext(userID string, preferredTopics []string) *Context {
	if userID == "" {
		userID = uuid.NewString()
	}
	topics := make([]string, len(preferredTopics))
	copy(topics, preferredTopics)
	return &Context{
		userID:          userID,
		preferredTopics: topics,
		startedAt:       time.Now(),
	}
}

// UserID returns the opaque user identifier.
func (c *Context) UserID() string {
	return c.userID
}

// StartedAt returns the session start timestamp.
func (c *Context) StartedAt() time.Time {
	return c.startedAt
}

// PreferredTopics returns a copy of the preferred topic labels.
func (c *Context) PreferredTopics() []string {
	topics := make([]string, len(c.preferredTopics))
	copy(topics, c.preferredTopics)
	return topics
}

// SetPreferredTopics replaces the preferred topic labels. Last write wins;
// the design assumes a single writer per session.
func (c *Context) SetPreferredTopics(topics []string) {
	c.preferredTopics = make([]string, len(topics))
	copy(c.preferredTopics, topics)
}
