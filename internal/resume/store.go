// Package resume provides the resume data store: the aggregate root plus the
// CRUD surface the wizard screens mutate. Every mutation persists the full
// aggregate as a snapshot before returning.
package resume

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/jonathan/resume-builder/internal/schemas"
	"github.com/jonathan/resume-builder/internal/storage"
	"github.com/jonathan/resume-builder/internal/types"
)

// SnapshotKey is the storage key for the persisted resume aggregate.
const SnapshotKey = "resumeData"

// Store owns the in-memory resume aggregate and its persistence. It is safe
// for concurrent use; HTTP handlers mutate it from separate goroutines.
type Store struct {
	mu      sync.Mutex
	data    *types.ResumeData
	backend *storage.Store
}

// Load rehydrates a Store from persisted storage. An absent, unparseable, or
// schema-invalid snapshot falls back to the empty default aggregate; a
// discarded snapshot is removed from storage so later loads start clean.
func Load(backend *storage.Store) (*Store, error) {
	if backend == nil {
		return nil, fmt.Errorf("storage backend is required")
	}

	s := &Store{data: types.NewResumeData(), backend: backend}

	raw, err := backend.GetRaw(SnapshotKey)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return s, nil
		}
		log.Printf("[STORE] discarding unreadable snapshot: %v", err)
		discardSnapshot(backend)
		return s, nil
	}

	if err := schemas.ValidateResumeSnapshot(raw); err != nil {
		log.Printf("[STORE] discarding invalid snapshot: %v", err)
		discardSnapshot(backend)
		return s, nil
	}

	data := types.NewResumeData()
	if err := backend.Get(SnapshotKey, data); err != nil {
		log.Printf("[STORE] discarding unparseable snapshot: %v", err)
		discardSnapshot(backend)
		return s, nil
	}
	if !data.Template.Valid() {
		data.Template = types.TemplateModern
	}
	s.data = data
	return s, nil
}

// Data returns a deep copy of the current aggregate.
func (s *Store) Data() *types.ResumeData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// UpdatePersonalInfo replaces the personal info section wholesale.
func (s *Store) UpdatePersonalInfo(info types.PersonalInfo) error {
	return s.mutate(func(data *types.ResumeData) {
		data.PersonalInfo = info
	})
}

// SetTemplate selects the visual template for rendering and export.
func (s *Store) SetTemplate(id types.TemplateID) error {
	if !id.Valid() {
		return fmt.Errorf("unknown template %q", id)
	}
	return s.mutate(func(data *types.ResumeData) {
		data.Template = id
	})
}

// AddExperience appends an experience entry with a generated identifier and
// returns the stored entry.
func (s *Store) AddExperience(exp types.Experience) (types.Experience, error) {
	exp.ID = newID()
	err := s.mutate(func(data *types.ResumeData) {
		data.Experiences = append(data.Experiences, exp)
	})
	return exp, err
}

// UpdateExperience replaces the entry with the given id. Updating an absent
// id is a silent no-op.
func (s *Store) UpdateExperience(id string, exp types.Experience) error {
	return s.mutate(func(data *types.ResumeData) {
		for i := range data.Experiences {
			if data.Experiences[i].ID == id {
				exp.ID = id
				data.Experiences[i] = exp
				return
			}
		}
	})
}

// RemoveExperience deletes the entry with the given id. Removing an absent
// id is a silent no-op.
func (s *Store) RemoveExperience(id string) error {
	return s.mutate(func(data *types.ResumeData) {
		data.Experiences = removeByID(data.Experiences, id, func(e types.Experience) string { return e.ID })
	})
}

// AddEducation appends an education entry with a generated identifier.
func (s *Store) AddEducation(edu types.Education) (types.Education, error) {
	edu.ID = newID()
	err := s.mutate(func(data *types.ResumeData) {
		data.Education = append(data.Education, edu)
	})
	return edu, err
}

// UpdateEducation replaces the entry with the given id; no-op when absent.
func (s *Store) UpdateEducation(id string, edu types.Education) error {
	return s.mutate(func(data *types.ResumeData) {
		for i := range data.Education {
			if data.Education[i].ID == id {
				edu.ID = id
				data.Education[i] = edu
				return
			}
		}
	})
}

// RemoveEducation deletes the entry with the given id; no-op when absent.
func (s *Store) RemoveEducation(id string) error {
	return s.mutate(func(data *types.ResumeData) {
		data.Education = removeByID(data.Education, id, func(e types.Education) string { return e.ID })
	})
}

// AddSkill appends a skill entry with a generated identifier.
func (s *Store) AddSkill(skill types.Skill) (types.Skill, error) {
	skill.ID = newID()
	err := s.mutate(func(data *types.ResumeData) {
		data.Skills = append(data.Skills, skill)
	})
	return skill, err
}

// UpdateSkill replaces the entry with the given id; no-op when absent.
func (s *Store) UpdateSkill(id string, skill types.Skill) error {
	return s.mutate(func(data *types.ResumeData) {
		for i := range data.Skills {
			if data.Skills[i].ID == id {
				skill.ID = id
				data.Skills[i] = skill
				return
			}
		}
	})
}

// RemoveSkill deletes the entry with the given id; no-op when absent.
func (s *Store) RemoveSkill(id string) error {
	return s.mutate(func(data *types.ResumeData) {
		data.Skills = removeByID(data.Skills, id, func(sk types.Skill) string { return sk.ID })
	})
}

// AddProject appends a project entry with a generated identifier.
func (s *Store) AddProject(proj types.Project) (types.Project, error) {
	proj.ID = newID()
	err := s.mutate(func(data *types.ResumeData) {
		data.Projects = append(data.Projects, proj)
	})
	return proj, err
}

// UpdateProject replaces the entry with the given id; no-op when absent.
func (s *Store) UpdateProject(id string, proj types.Project) error {
	return s.mutate(func(data *types.ResumeData) {
		for i := range data.Projects {
			if data.Projects[i].ID == id {
				proj.ID = id
				data.Projects[i] = proj
				return
			}
		}
	})
}

// RemoveProject deletes the entry with the given id; no-op when absent.
func (s *Store) RemoveProject(id string) error {
	return s.mutate(func(data *types.ResumeData) {
		data.Projects = removeByID(data.Projects, id, func(p types.Project) string { return p.ID })
	})
}

// AddCertificate appends a certificate entry with a generated identifier.
func (s *Store) AddCertificate(cert types.Certificate) (types.Certificate, error) {
	cert.ID = newID()
	err := s.mutate(func(data *types.ResumeData) {
		data.Certificates = append(data.Certificates, cert)
	})
	return cert, err
}

// UpdateCertificate replaces the entry with the given id; no-op when absent.
func (s *Store) UpdateCertificate(id string, cert types.Certificate) error {
	return s.mutate(func(data *types.ResumeData) {
		for i := range data.Certificates {
			if data.Certificates[i].ID == id {
				cert.ID = id
				data.Certificates[i] = cert
				return
			}
		}
	})
}

// RemoveCertificate deletes the entry with the given id; no-op when absent.
func (s *Store) RemoveCertificate(id string) error {
	return s.mutate(func(data *types.ResumeData) {
		data.Certificates = removeByID(data.Certificates, id, func(c types.Certificate) string { return c.ID })
	})
}

// Apply runs fn against a staged copy of the aggregate and commits the result
// as one unit: the copy is persisted once and swapped in only if both fn and
// the persistence write succeed. A failure leaves the store untouched.
func (s *Store) Apply(fn func(*types.ResumeData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.data.Clone()
	if err := fn(staged); err != nil {
		return err
	}
	if err := s.backend.Put(SnapshotKey, staged); err != nil {
		return fmt.Errorf("failed to persist resume: %w", err)
	}
	s.data = staged
	return nil
}

// mutate applies a CRUD mutation and synchronously persists the aggregate.
func (s *Store) mutate(fn func(*types.ResumeData)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	staged := s.data.Clone()
	fn(staged)
	if err := s.backend.Put(SnapshotKey, staged); err != nil {
		return fmt.Errorf("failed to persist resume: %w", err)
	}
	s.data = staged
	return nil
}

// discardSnapshot removes a snapshot that failed to load.
func discardSnapshot(backend *storage.Store) {
	if err := backend.Delete(SnapshotKey); err != nil {
		log.Printf("[STORE] failed to remove discarded snapshot: %v", err)
	}
}

func newID() string {
	return uuid.NewString()
}

func removeByID[T any](list []T, id string, idOf func(T) string) []T {
	out := list[:0]
	for _, item := range list {
		if idOf(item) != id {
			out = append(out, item)
		}
	}
	return out
}
