package store

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alanh90/TimesheetSimplifier/internal/core/model"
)

func mustTemplate(t *testing.T, name string, hours float64) model.EntryTemplate {
	t.Helper()
	tmpl, err := model.NewEntryTemplate(name, "cc-1", "Tooling", hours, "")
	require.NoError(t, err)
	return tmpl
}

func TestTemplateStoreRoundTrip(t *testing.T) {
	cfg := testConfig(t)
	s := NewTemplateStore(cfg)
	assert.Empty(t, s.All())

	standup := mustTemplate(t, "Standup", 0.5)
	focus := mustTemplate(t, "Focus Block", 4)
	require.NoError(t, s.Add(standup))
	require.NoError(t, s.Add(focus))

	reloaded := NewTemplateStore(cfg)
	require.Len(t, reloaded.All(), 2)
	assert.Equal(t, standup.ID, reloaded.All()[0].ID)
	assert.Equal(t, 0.5, reloaded.All()[0].DefaultHours)
}

func TestTemplateStoreDelete(t *testing.T) {
	cfg := testConfig(t)
	s := NewTemplateStore(cfg)

	standup := mustTemplate(t, "Standup", 0.5)
	require.NoError(t, s.Add(standup))

	removed, err := s.Delete(standup.ID)
	require.NoError(t, err)
	assert.True(t, removed)
	assert.Empty(t, s.All())

	removed, err = s.Delete("missing")
	require.NoError(t, err)
	assert.False(t, removed)
}

func TestTemplateStoreFindByName(t *testing.T) {
	s := NewTemplateStore(testConfig(t))
	require.NoError(t, s.Add(mustTemplate(t, "Standup", 0.5)))

	found, ok := s.FindByName("standup")
	require.True(t, ok)
	assert.Equal(t, "Standup", found.Name)

	_, ok = s.FindByName("retro")
	assert.False(t, ok)
}

func TestTemplateStoreCorruptFileDegradesToEmpty(t *testing.T) {
	cfg := testConfig(t)
	require.NoError(t, os.WriteFile(cfg.TemplatesFilePath(), []byte("[broken"), 0644))

	s := NewTemplateStore(cfg)
	assert.Empty(t, s.All())
}
