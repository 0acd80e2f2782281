package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-builder/internal/types"
)

// TemplateRequest represents the request body for PUT /resume/template
type TemplateRequest struct {
	Template string `json:"template"`
}

// handleGetResume returns the full resume document
func (s *Server) handleGetResume(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.store.Data())
}

// handleResetResume replaces the resume with an empty default document
func (s *Server) handleResetResume(w http.ResponseWriter, _ *http.Request) {
	err := s.store.Apply(func(data *types.ResumeData) error {
		*data = *types.NewResumeData()
		return nil
	})
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	if err := s.wiz.GoTo(types.StepPersonal); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.Data())
}

// handleUpdatePersonal replaces the personal info section
func (s *Server) handleUpdatePersonal(w http.ResponseWriter, r *http.Request) {
	var info types.PersonalInfo
	if err := json.NewDecoder(r.Body).Decode(&info); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := info.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.UpdatePersonalInfo(info); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.store.Data().PersonalInfo)
}

// handleSetTemplate selects the resume template
func (s *Server) handleSetTemplate(w http.ResponseWriter, r *http.Request) {
	var req TemplateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.store.SetTemplate(types.TemplateID(req.Template)); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]string{"template": req.Template})
}

// handleAddExperience appends a work history entry
func (s *Server) handleAddExperience(w http.ResponseWriter, r *http.Request) {
	var exp types.Experience
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := exp.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := s.store.AddExperience(exp)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdateExperience replaces the entry with the given id
func (s *Server) handleUpdateExperience(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.experienceExists(id) {
		s.errorResponse(w, http.StatusNotFound, (&ErrEntryNotFound{Kind: "experience", ID: id}).Error())
		return
	}

	var exp types.Experience
	if err := json.NewDecoder(r.Body).Decode(&exp); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := exp.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.UpdateExperience(id, exp); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	exp.ID = id
	s.jsonResponse(w, http.StatusOK, exp)
}

// handleRemoveExperience deletes the entry with the given id
func (s *Server) handleRemoveExperience(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.experienceExists(id) {
		s.errorResponse(w, http.StatusNotFound, (&ErrEntryNotFound{Kind: "experience", ID: id}).Error())
		return
	}
	if err := s.store.RemoveExperience(id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAddEducation appends an education entry
func (s *Server) handleAddEducation(w http.ResponseWriter, r *http.Request) {
	var edu types.Education
	if err := json.NewDecoder(r.Body).Decode(&edu); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := edu.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := s.store.AddEducation(edu)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdateEducation replaces the entry with the given id
func (s *Server) handleUpdateEducation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.educationExists(id) {
		s.errorResponse(w, http.StatusNotFound, (&ErrEntryNotFound{Kind: "education", ID: id}).Error())
		return
	}

	var edu types.Education
	if err := json.NewDecoder(r.Body).Decode(&edu); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := edu.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.UpdateEducation(id, edu); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	edu.ID = id
	s.jsonResponse(w, http.StatusOK, edu)
}

// handleRemoveEducation deletes the entry with the given id
func (s *Server) handleRemoveEducation(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.educationExists(id) {
		s.errorResponse(w, http.StatusNotFound, (&ErrEntryNotFound{Kind: "education", ID: id}).Error())
		return
	}
	if err := s.store.RemoveEducation(id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAddSkill appends a skill entry
func (s *Server) handleAddSkill(w http.ResponseWriter, r *http.Request) {
	var skill types.Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := skill.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := s.store.AddSkill(skill)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdateSkill replaces the entry with the given id
func (s *Server) handleUpdateSkill(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.skillExists(id) {
		s.errorResponse(w, http.StatusNotFound, (&ErrEntryNotFound{Kind: "skill", ID: id}).Error())
		return
	}

	var skill types.Skill
	if err := json.NewDecoder(r.Body).Decode(&skill); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := skill.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.UpdateSkill(id, skill); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	skill.ID = id
	s.jsonResponse(w, http.StatusOK, skill)
}

// handleRemoveSkill deletes the entry with the given id
func (s *Server) handleRemoveSkill(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.skillExists(id) {
		s.errorResponse(w, http.StatusNotFound, (&ErrEntryNotFound{Kind: "skill", ID: id}).Error())
		return
	}
	if err := s.store.RemoveSkill(id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAddProject appends a project entry
func (s *Server) handleAddProject(w http.ResponseWriter, r *http.Request) {
	var proj types.Project
	if err := json.NewDecoder(r.Body).Decode(&proj); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := proj.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := s.store.AddProject(proj)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdateProject replaces the entry with the given id
func (s *Server) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.projectExists(id) {
		s.errorResponse(w, http.StatusNotFound, (&ErrEntryNotFound{Kind: "project", ID: id}).Error())
		return
	}

	var proj types.Project
	if err := json.NewDecoder(r.Body).Decode(&proj); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := proj.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.UpdateProject(id, proj); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	proj.ID = id
	s.jsonResponse(w, http.StatusOK, proj)
}

// handleRemoveProject deletes the entry with the given id
func (s *Server) handleRemoveProject(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.projectExists(id) {
		s.errorResponse(w, http.StatusNotFound, (&ErrEntryNotFound{Kind: "project", ID: id}).Error())
		return
	}
	if err := s.store.RemoveProject(id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAddCertificate appends a certification entry
func (s *Server) handleAddCertificate(w http.ResponseWriter, r *http.Request) {
	var cert types.Certificate
	if err := json.NewDecoder(r.Body).Decode(&cert); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := cert.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	created, err := s.store.AddCertificate(cert)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusCreated, created)
}

// handleUpdateCertificate replaces the entry with the given id
func (s *Server) handleUpdateCertificate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.certificateExists(id) {
		s.errorResponse(w, http.StatusNotFound, (&ErrEntryNotFound{Kind: "certificate", ID: id}).Error())
		return
	}

	var cert types.Certificate
	if err := json.NewDecoder(r.Body).Decode(&cert); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := cert.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.store.UpdateCertificate(id, cert); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	cert.ID = id
	s.jsonResponse(w, http.StatusOK, cert)
}

// handleRemoveCertificate deletes the entry with the given id
func (s *Server) handleRemoveCertificate(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if !s.certificateExists(id) {
		s.errorResponse(w, http.StatusNotFound, (&ErrEntryNotFound{Kind: "certificate", ID: id}).Error())
		return
	}
	if err := s.store.RemoveCertificate(id); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) experienceExists(id string) bool {
	for _, exp := range s.store.Data().Experiences {
		if exp.ID == id {
			return true
		}
	}
	return false
}

func (s *Server) educationExists(id string) bool {
	for _, edu := range s.store.Data().Education {
		if edu.ID == id {
			return true
		}
	}
	return false
}

func (s *Server) skillExists(id string) bool {
	for _, skill := range s.store.Data().Skills {
		if skill.ID == id {
			return true
		}
	}
	return false
}

func (s *Server) projectExists(id string) bool {
	for _, proj := range s.store.Data().Projects {
		if proj.ID == id {
			return true
		}
	}
	return false
}

func (s *Server) certificateExists(id string) bool {
	for _, cert := range s.store.Data().Certificates {
		if cert.ID == id {
			return true
		}
	}
	return false
}
