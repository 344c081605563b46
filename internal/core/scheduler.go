package core

import (
	"sort"
	"time"
)

// EventID identifies a scheduled event so it can be cancelled.
type EventID int

type scheduled struct {
	id  EventID
	at  time.Duration
	tag string
}

// Scheduler holds events due at a point in game time. Game time only
// advances through Advance, which games call from Update, so a paused
// game's deadlines are frozen along with everything else.
type Scheduler struct {
	now    time.Duration
	nextID EventID
	events []scheduled
}

// Now returns the current game time.
func (s *Scheduler) Now() time.Duration {
	return s.now
}

// After schedules tag to fire once delay of game time has elapsed.
func (s *Scheduler) After(delay time.Duration, tag string) EventID {
	s.nextID++
	s.events = append(s.events, scheduled{id: s.nextID, at: s.now + delay, tag: tag})
	return s.nextID
}

// Cancel removes a pending event. Returns false if it already fired.
func (s *Scheduler) Cancel(id EventID) bool {
	for i, ev := range s.events {
		if ev.id == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return true
		}
	}
	return false
}

// Pending reports whether the event is still waiting.
func (s *Scheduler) Pending(id EventID) bool {
	for _, ev := range s.events {
		if ev.id == id {
			return true
		}
	}
	return false
}

// Len returns the number of pending events.
func (s *Scheduler) Len() int {
	return len(s.events)
}

// Advance moves game time forward by dt and returns the tags of every event
// that became due, in deadline order.
func (s *Scheduler) Advance(dt time.Duration) []string {
	if dt > 0 {
		s.now += dt
	}
	if len(s.events) == 0 {
		return nil
	}

	var due []scheduled
	kept := s.events[:0]
	for _, ev := range s.events {
		if ev.at <= s.now {
			due = append(due, ev)
		} else {
			kept = append(kept, ev)
		}
	}
	s.events = kept

	sort.SliceStable(due, func(i, j int) bool { return due[i].at < due[j].at })
	tags := make([]string, len(due))
	for i, ev := range due {
		tags[i] = ev.tag
	}
	return tags
}

// Reset drops all events and rewinds game time to zero.
func (s *Scheduler) Reset() {
	s.now = 0
	s.events = s.events[:0]
}
