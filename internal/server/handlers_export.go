package server

import (
	"fmt"
	"net/http"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/rendering"
)

// handleRender returns the resume rendered with its selected template
func (s *Server) handleRender(w http.ResponseWriter, _ *http.Request) {
	html, err := rendering.Render(s.store.Data())
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(html))
}

// handleExportPDF prints the resume to PDF and serves it as a download
func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	data := s.store.Data()
	path, err := s.exporter.PDF(r.Context(), data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	filename := export.ArtifactName(data.PersonalInfo.FullName, "pdf")
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}

// handleExportHTML writes the standalone HTML artifact and serves it as a download
func (s *Server) handleExportHTML(w http.ResponseWriter, r *http.Request) {
	data := s.store.Data()
	path, err := s.exporter.HTML(data)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	filename := export.ArtifactName(data.PersonalInfo.FullName, "html")
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	http.ServeFile(w, r, path)
}
