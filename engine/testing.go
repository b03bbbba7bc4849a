package engine

import (
	"fmt"
	"sync"

	"github.com/lixenwraith/vi-snake/input"
)

// RecordingRenderer records draw calls instead of drawing, for testing
type RecordingRenderer struct {
	mu  sync.Mutex
	ops []string
}

// NewRecordingRenderer creates an empty recording renderer
func NewRecordingRenderer() *RecordingRenderer {
	return &RecordingRenderer{}
}

func (r *RecordingRenderer) record(op string) {
	r.mu.Lock()
	r.ops = append(r.ops, op)
	r.mu.Unlock()
}

func (r *RecordingRenderer) Clear()      { r.record("clear") }
func (r *RecordingRenderer) DrawBorder() { r.record("border") }
func (r *RecordingRenderer) Refresh()    { r.record("refresh") }
func (r *RecordingRenderer) HideCursor() { r.record("hide") }

func (r *RecordingRenderer) DrawGlyph(row, col int, glyph rune) {
	r.record(fmt.Sprintf("%c@%d,%d", glyph, row, col))
}

// Ops returns the recorded calls and resets the log
func (r *RecordingRenderer) Ops() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ops := r.ops
	r.ops = nil
	return ops
}

// ScriptedInput replays a fixed key sequence, then reports no key
type ScriptedInput struct {
	keys []input.Key
}

// NewScriptedInput creates an input source yielding keys in order, one per poll
func NewScriptedInput(keys ...input.Key) *ScriptedInput {
	return &ScriptedInput{keys: keys}
}

// PollKey returns the next scripted key or KeyNone
func (s *ScriptedInput) PollKey() input.Key {
	if len(s.keys) == 0 {
		return input.KeyNone
	}
	k := s.keys[0]
	s.keys = s.keys[1:]
	return k
}
