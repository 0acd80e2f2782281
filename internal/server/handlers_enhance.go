package server

import "net/http"

// EnhanceResponse summarizes what an enhancement run changed
type EnhanceResponse struct {
	Summary            bool `json:"summary"`
	ExperiencesUpdated int  `json:"experiences_updated"`
	ProjectsUpdated    int  `json:"projects_updated"`
	SkillsReplaced     int  `json:"skills_replaced"`
}

// handleEnhance sends the resume to Gemini and applies the parsed result
func (s *Server) handleEnhance(w http.ResponseWriter, r *http.Request) {
	if s.enhancer == nil {
		err := &ErrEnhancementUnavailable{}
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	result, err := s.enhancer.Enhance(r.Context())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	resp := EnhanceResponse{
		Summary:            result.HasSummary,
		ExperiencesUpdated: len(result.Experiences),
		ProjectsUpdated:    len(result.Projects),
	}
	if result.HasSkills {
		resp.SkillsReplaced = len(result.Skills)
	}
	s.jsonResponse(w, http.StatusOK, resp)
}
