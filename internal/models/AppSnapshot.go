package models

import (
	"bytes"
	"strconv"

	json "github.com/goccy/go-json"
)

// AppSnapshot is the portable backup document. Items of every sequence and the values
// of every mapping are opaque and kept as raw JSON.
type AppSnapshot struct {
	Tasks                 []json.RawMessage `json:"tasks"`
	OtherTasks            []json.RawMessage `json:"otherTasks"`
	WeeklyProgressTasks   []json.RawMessage `json:"weeklyProgressTasks"`
	ReadingTrackerTasks   []json.RawMessage `json:"readingTrackerTasks"`
	TodaysFocusItems      []json.RawMessage `json:"todaysFocusItems"`
	Countdowns            []json.RawMessage `json:"countdowns"`
	OtherTasksWeeklyStats json.RawMessage   `json:"otherTasksWeeklyStats"`
	TimeByUser            string            `json:"timeByUser"`
	ComponentVisibility   json.RawMessage   `json:"componentVisibility,omitempty"`
	ExportDate            string            `json:"exportDate"`
	Version               string            `json:"version"`
}

// NewEmptySnapshot returns a snapshot with every field at its default.
func NewEmptySnapshot() *AppSnapshot {
	return &AppSnapshot{
		Tasks:                 []json.RawMessage{},
		OtherTasks:            []json.RawMessage{},
		WeeklyProgressTasks:   []json.RawMessage{},
		ReadingTrackerTasks:   []json.RawMessage{},
		TodaysFocusItems:      []json.RawMessage{},
		Countdowns:            []json.RawMessage{},
		OtherTasksWeeklyStats: json.RawMessage("{}"),
		TimeByUser:            DefaultTimeByUser,
		Version:               SnapshotVersion,
	}
}

// Sequence returns the slot for a sequence key, or nil when key is not one.
func (s *AppSnapshot) Sequence(key string) *[]json.RawMessage {
	switch key {
	case KeyTasks:
		return &s.Tasks
	case KeyOtherTasks:
		return &s.OtherTasks
	case KeyWeeklyProgressTasks:
		return &s.WeeklyProgressTasks
	case KeyReadingTrackerTasks:
		return &s.ReadingTrackerTasks
	case KeyTodaysFocusItems:
		return &s.TodaysFocusItems
	case KeyCountdowns:
		return &s.Countdowns
	}
	return nil
}

// Candidate converts the snapshot into the form accepted by restore.
func (s *AppSnapshot) Candidate() (Candidate, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var c Candidate
	if err = json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return c, nil
}

type Kind int

const (
	KindMissing Kind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// Candidate is an untrusted backup document: top-level field name to raw JSON value.
// A nil Candidate stands for a document that parsed but was not a JSON object.
type Candidate map[string]json.RawMessage

func KindOf(raw []byte) Kind {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return KindMissing
	}
	switch raw[0] {
	case 'n':
		return KindNull
	case 't', 'f':
		return KindBool
	case '"':
		return KindString
	case '[':
		return KindArray
	case '{':
		return KindObject
	}
	return KindNumber
}

func (c Candidate) Has(field string) bool {
	_, ok := c[field]
	return ok
}

func (c Candidate) Kind(field string) Kind {
	raw, ok := c[field]
	if !ok {
		return KindMissing
	}
	return KindOf(raw)
}

// Truthy follows JavaScript truthiness: null, false, 0 and "" are false;
// arrays and objects, even empty ones, are true.
func (c Candidate) Truthy(field string) bool {
	raw := bytes.TrimSpace(c[field])
	switch KindOf(raw) {
	case KindMissing, KindNull:
		return false
	case KindBool:
		return string(raw) == "true"
	case KindNumber:
		f, err := strconv.ParseFloat(string(raw), 64)
		return err == nil && f != 0
	case KindString:
		return string(raw) != `""`
	}
	return true
}

// String decodes a string field.
func (c Candidate) String(field string) (string, error) {
	var s string
	err := json.Unmarshal(c[field], &s)
	return s, err
}
