package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Bhaskar0624/FUTURE-FS-01/internal/domain"
)

// FileStore keeps the whole content snapshot in one JSON document on disk,
// top-level keys matching section names. Every operation reads or rewrites
// the full document; a mutex serializes writers within the process.
//
// Cross-section semantics stay last-write-wins, same as the database store.
type FileStore struct {
	path string

	mu    sync.Mutex
	now   func() time.Time
	newID func() uuid.UUID
}

// NewFileStore opens (or creates) the document at path. A fresh document is
// seeded with the profile singleton, since profile updates require an
// existing record.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, now: time.Now, newID: uuid.New}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		seed := domain.Snapshot{
			Profile: domain.Profile{ID: s.newID(), CreatedAt: s.now().UTC()},
		}
		seed.Normalize()
		if err := s.write(seed); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return s, nil
}

func (s *FileStore) Snapshot(ctx context.Context) (domain.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

func (s *FileStore) UpdateProfile(ctx context.Context, fields map[string]any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	if doc.Profile.ID == uuid.Nil {
		return domain.ErrProfileNotFound
	}

	// Merge through a map so only the supplied keys change.
	buf, err := json.Marshal(doc.Profile)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	var merged map[string]any
	if err := json.Unmarshal(buf, &merged); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	for _, k := range domain.ProfileFields {
		if v, ok := fields[k]; ok {
			merged[k] = v
		}
	}

	buf, err = json.Marshal(merged)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	id, createdAt := doc.Profile.ID, doc.Profile.CreatedAt
	if err := json.Unmarshal(buf, &doc.Profile); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	doc.Profile.ID = id
	doc.Profile.CreatedAt = createdAt

	return s.write(doc)
}

func (s *FileStore) ReplaceCollection(ctx context.Context, section domain.Section, items any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}

	now := s.now().UTC()
	switch section {
	case domain.SectionProjects:
		rows, ok := items.([]domain.Project)
		if !ok {
			return fmt.Errorf("%w: projects payload has wrong type", domain.ErrValidation)
		}
		for i := range rows {
			rows[i].ID = s.newID()
			rows[i].CreatedAt = now
			if rows[i].Tags == nil {
				rows[i].Tags = []string{}
			}
		}
		doc.Projects = rows
	case domain.SectionExperiences:
		rows, ok := items.([]domain.Experience)
		if !ok {
			return fmt.Errorf("%w: experiences payload has wrong type", domain.ErrValidation)
		}
		for i := range rows {
			rows[i].ID = s.newID()
			rows[i].CreatedAt = now
		}
		doc.Experiences = rows
	case domain.SectionSkills:
		rows, ok := items.([]domain.SkillCategory)
		if !ok {
			return fmt.Errorf("%w: skills payload has wrong type", domain.ErrValidation)
		}
		for i := range rows {
			rows[i].ID = s.newID()
			rows[i].CreatedAt = now
			if rows[i].Items == nil {
				rows[i].Items = []string{}
			}
		}
		doc.Skills = rows
	case domain.SectionCertificates:
		rows, ok := items.([]domain.Certificate)
		if !ok {
			return fmt.Errorf("%w: certificates payload has wrong type", domain.ErrValidation)
		}
		for i := range rows {
			rows[i].ID = s.newID()
			rows[i].CreatedAt = now
		}
		doc.Certificates = rows
	case domain.SectionJourney:
		rows, ok := items.([]domain.JourneyEntry)
		if !ok {
			return fmt.Errorf("%w: journey payload has wrong type", domain.ErrValidation)
		}
		for i := range rows {
			rows[i].ID = s.newID()
			rows[i].CreatedAt = now
		}
		doc.Journey = rows
	default:
		return fmt.Errorf("%w: section %s is not a collection", domain.ErrValidation, section)
	}

	return s.write(doc)
}

func (s *FileStore) Ping(ctx context.Context) error {
	if _, err := os.Stat(s.path); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}

func (s *FileStore) load() (domain.Snapshot, error) {
	buf, err := os.ReadFile(s.path)
	if err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	var doc domain.Snapshot
	if err := json.Unmarshal(buf, &doc); err != nil {
		return domain.Snapshot{}, fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	doc.Normalize()
	return doc, nil
}

// write swaps the document atomically via a temp file rename, so readers
// never observe a half-written file.
func (s *FileStore) write(doc domain.Snapshot) error {
	buf, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf, 0o644); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrStorage, err)
	}
	return nil
}
