package log

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withDebug(t *testing.T, sections ...string) {
	previousLevel := level.Level()
	sectionsMu.RLock()
	previousSections := enabledSections
	sectionsMu.RUnlock()
	t.Cleanup(func() {
		SetLevel(previousLevel)
		EnableSections(previousSections...)
	})
	SetLevel(slog.LevelDebug)
	EnableSections(sections...)
}

func TestSectionsFilterDebugRecords(t *testing.T) {
	withDebug(t, "parser", "eval")
	buf := &bytes.Buffer{}
	logger := New(buf)

	logger.With("section", "parser").Debug("shown")
	logger.With("section", "inference").Debug("hidden")
	logger.Debug("per record", "section", "eval")
	logger.Info("no section")

	assert.Contains(t, buf.String(), "msg=shown")
	assert.Contains(t, buf.String(), `msg="per record"`)
	assert.NotContains(t, buf.String(), "hidden")
	assert.NotContains(t, buf.String(), "no section")
}

func TestWarningsIgnoreSections(t *testing.T) {
	withDebug(t)
	buf := &bytes.Buffer{}

	New(buf).With("section", "inference").Warn("conflicting arity")
	assert.Contains(t, buf.String(), `msg="conflicting arity"`)
}

func TestSectionsMatchByPrefix(t *testing.T) {
	withDebug(t, "front")
	buf := &bytes.Buffer{}

	New(buf).With("section", "frontend").WithGroup("g").Debug("nested")
	assert.Contains(t, buf.String(), "msg=nested")
}

func TestLevel(t *testing.T) {
	withDebug(t, "parser")
	SetLevel(slog.LevelError)
	buf := &bytes.Buffer{}

	New(buf).With("section", "parser").Warn("too low")
	assert.Empty(t, buf.String())
}
