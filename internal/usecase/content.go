package usecase

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/Bhaskar0624/FUTURE-FS-01/internal/domain"
	"github.com/Bhaskar0624/FUTURE-FS-01/internal/model"
)

// Store is the persistence boundary for the content snapshot. Implemented
// by the Postgres store and the JSON file store.
type Store interface {
	// Snapshot returns the full current content state. Reads are uncached;
	// every call reflects the latest committed write.
	Snapshot(ctx context.Context) (domain.Snapshot, error)

	// UpdateProfile patches the profile singleton with the given writable
	// fields. Returns domain.ErrProfileNotFound when the singleton was
	// never seeded.
	UpdateProfile(ctx context.Context, fields map[string]any) error

	// ReplaceCollection discards a list section's entire prior contents and
	// inserts the supplied rows wholesale, assigning fresh identity to each.
	// items is the section's typed slice ([]domain.Project and friends).
	ReplaceCollection(ctx context.Context, section domain.Section, items any) error

	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}

// ContentService orchestrates snapshot reads and section-at-a-time writes.
type ContentService struct {
	store Store
	log   zerolog.Logger
}

func NewContentService(store Store, log zerolog.Logger) *ContentService {
	return &ContentService{store: store, log: log}
}

// Ping reports persistence store reachability for health checks.
func (s *ContentService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *ContentService) FetchSnapshot(ctx context.Context) (domain.Snapshot, error) {
	snap, err := s.store.Snapshot(ctx)
	if err != nil {
		return domain.Snapshot{}, err
	}
	snap.Normalize()
	return snap, nil
}

// SaveSection validates and commits one named section. Profile is an
// in-place singleton update; every other section is a full-array replace.
// Caller-supplied id and created_at values never survive the write.
func (s *ContentService) SaveSection(ctx context.Context, name string, data json.RawMessage) error {
	section, err := domain.ParseSection(name)
	if err != nil {
		return err
	}
	if err := model.ValidateSection(section, data); err != nil {
		return err
	}

	if section.IsSingleton() {
		return s.saveProfile(ctx, data)
	}

	items, err := decodeCollection(section, data)
	if err != nil {
		return err
	}

	if err := s.store.ReplaceCollection(ctx, section, items); err != nil {
		return err
	}
	s.log.Info().Str("section", section.String()).Msg("section replaced")
	return nil
}

func (s *ContentService) saveProfile(ctx context.Context, data json.RawMessage) error {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}

	// Only whitelisted columns are writable; id and created_at fall out here.
	fields := make(map[string]any, len(raw))
	for _, k := range domain.ProfileFields {
		if v, ok := raw[k]; ok {
			fields[k] = v
		}
	}

	if err := s.store.UpdateProfile(ctx, fields); err != nil {
		return err
	}
	s.log.Info().Int("fields", len(fields)).Msg("profile updated")
	return nil
}

// decodeCollection turns a validated payload into the section's typed
// slice. Caller-supplied id and created_at are dropped first: the editor
// may send temporary client-side identities that are not store ids.
func decodeCollection(section domain.Section, data json.RawMessage) (any, error) {
	var rawRows []map[string]any
	if err := json.Unmarshal(data, &rawRows); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	for _, row := range rawRows {
		delete(row, "id")
		delete(row, "created_at")
	}
	stripped, err := json.Marshal(rawRows)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	data = stripped

	var items any
	switch section {
	case domain.SectionProjects:
		var rows []domain.Project
		err = json.Unmarshal(data, &rows)
		items = rows
	case domain.SectionExperiences:
		var rows []domain.Experience
		err = json.Unmarshal(data, &rows)
		items = rows
	case domain.SectionSkills:
		var rows []domain.SkillCategory
		err = json.Unmarshal(data, &rows)
		items = rows
	case domain.SectionCertificates:
		var rows []domain.Certificate
		err = json.Unmarshal(data, &rows)
		items = rows
	case domain.SectionJourney:
		var rows []domain.JourneyEntry
		err = json.Unmarshal(data, &rows)
		items = rows
	default:
		return nil, fmt.Errorf("%w: section %s has no collection", domain.ErrValidation, section)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	return items, nil
}
