package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/alanh90/TimesheetSimplifier/internal/config"
	"github.com/alanh90/TimesheetSimplifier/internal/core/model"
	"github.com/alanh90/TimesheetSimplifier/internal/util"
)

// TemplateStore persists quick-entry templates next to the entry store,
// using the same whole-document rewrite model.
type TemplateStore struct {
	path      string
	templates []model.EntryTemplate
}

// NewTemplateStore loads the persisted templates; a corrupt or unreadable
// file degrades to an empty list.
func NewTemplateStore(cfg *config.Config) *TemplateStore {
	s := &TemplateStore{path: cfg.TemplatesFilePath()}
	s.load()
	return s
}

func (s *TemplateStore) load() {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return
	}
	if err != nil {
		util.LogWarnf("Cannot read templates file %s, starting empty: %v", s.path, err)
		return
	}

	var templates []model.EntryTemplate
	if err := sonic.Unmarshal(data, &templates); err != nil {
		util.LogWarnf("Corrupt templates file %s, starting empty: %v", s.path, err)
		return
	}
	s.templates = templates
}

func (s *TemplateStore) save() error {
	data, err := sonic.MarshalIndent(s.templates, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal templates: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("create data directory: %w", err)
	}

	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("write templates temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace templates file: %w", err)
	}
	return nil
}

// Add appends a template and persists; a failed write rolls back.
func (s *TemplateStore) Add(template model.EntryTemplate) error {
	s.templates = append(s.templates, template)
	if err := s.save(); err != nil {
		s.templates = s.templates[:len(s.templates)-1]
		return err
	}
	return nil
}

// Delete removes the template with the given id and persists. Reports
// whether a template was removed.
func (s *TemplateStore) Delete(id string) (bool, error) {
	previous := s.templates
	kept := make([]model.EntryTemplate, 0, len(previous))
	for _, t := range previous {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	if len(kept) == len(previous) {
		return false, nil
	}

	s.templates = kept
	if err := s.save(); err != nil {
		s.templates = previous
		return false, err
	}
	return true, nil
}

// All returns the templates in creation order.
func (s *TemplateStore) All() []model.EntryTemplate {
	return s.templates
}

// FindByName returns the first template whose name matches,
// case-insensitively.
func (s *TemplateStore) FindByName(name string) (model.EntryTemplate, bool) {
	for _, t := range s.templates {
		if strings.EqualFold(t.Name, name) {
			return t, true
		}
	}
	return model.EntryTemplate{}, false
}
