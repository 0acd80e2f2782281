package server

import (
	"encoding/json"
	"net/http"

	"github.com/jonathan/resume-builder/internal/types"
)

// StepRequest represents the request body for PUT /wizard/step
type StepRequest struct {
	Step string `json:"step"`
}

// StepResponse represents the wizard position
type StepResponse struct {
	Step  string `json:"step"`
	Index int    `json:"index"`
	Total int    `json:"total"`
}

func (s *Server) stepResponse() StepResponse {
	current := s.wiz.Current()
	return StepResponse{
		Step:  string(current),
		Index: types.StepIndex(current),
		Total: len(types.StepOrder),
	}
}

// handleGetStep returns the current wizard step
func (s *Server) handleGetStep(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.stepResponse())
}

// handleGoToStep jumps directly to a named step
func (s *Server) handleGoToStep(w http.ResponseWriter, r *http.Request) {
	var req StepRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := s.wiz.GoTo(types.Step(req.Step)); err != nil {
		s.errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.stepResponse())
}

// handleNextStep advances to the next step; clamped at the last step
func (s *Server) handleNextStep(w http.ResponseWriter, _ *http.Request) {
	if err := s.wiz.Next(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.stepResponse())
}

// handlePrevStep moves back one step; clamped at the first step
func (s *Server) handlePrevStep(w http.ResponseWriter, _ *http.Request) {
	if err := s.wiz.Prev(); err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, s.stepResponse())
}
