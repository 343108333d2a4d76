// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package bus carries notifications between the coordinator and the UI and
// relay contexts attached to it. Contexts never share state through it;
// they only learn that something changed and re-read storage.
package bus

import (
	"sync"
	"time"
)

// Topic names one kind of notification.
type Topic string

const (
	// TopicLocked tells every context to drop its keyring.
	TopicLocked Topic = "locked"
	// TopicUnlocked announces a fresh session snapshot to rehydrate from.
	TopicUnlocked Topic = "unlocked"
	// TopicApprovalsPending carries the current pending approval count.
	TopicApprovalsPending Topic = "approvals.pending"
	// TopicUIFocus asks the UI to show the approval with the given id.
	TopicUIFocus Topic = "ui.focus"
)

const defaultBuffer = 16

// Event is one published notification.
type Event struct {
	Topic   Topic     `json:"topic"`
	Payload any       `json:"payload,omitempty"`
	At      time.Time `json:"at"`
}

// Bus is an in-process fan-out publisher. Slow subscribers lose events
// instead of blocking publishers.
type Bus struct {
	mu     sync.RWMutex
	nextID int
	subs   map[Topic]map[int]chan Event
	now    func() time.Time
}

// New returns an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[Topic]map[int]chan Event), now: time.Now}
}

// Subscribe registers for topic. The returned cancel func closes the channel
// and must be called once the subscriber is done.
func (b *Bus) Subscribe(topic Topic) (<-chan Event, func()) {
	b.mu.Lock()
	defer b.mu.Unlock()

	id := b.nextID
	b.nextID++

	ch := make(chan Event, defaultBuffer)
	if b.subs[topic] == nil {
		b.subs[topic] = make(map[int]chan Event)
	}
	b.subs[topic][id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			delete(b.subs[topic], id)
			close(ch)
		})
	}
}

// Publish delivers payload to every current subscriber of topic and reports
// how many received it.
func (b *Bus) Publish(topic Topic, payload any) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ev := Event{Topic: topic, Payload: payload, At: b.now()}
	delivered := 0
	for _, ch := range b.subs[topic] {
		select {
		case ch <- ev:
			delivered++
		default:
		}
	}
	return delivered
}
