package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"go.uber.org/zap"

	"github.com/hyperjump/ruiji/internal/batch"
	"github.com/hyperjump/ruiji/internal/docsource"
	"github.com/hyperjump/ruiji/internal/extract"
	"github.com/hyperjump/ruiji/internal/models"
	"github.com/hyperjump/ruiji/internal/report"
)

// uploadField is the multipart form field carrying document files.
const uploadField = "files"

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUploadBytes)
	var req models.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, http.StatusRequestEntityTooLarge, "request too large")
			return
		}
		s.respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		s.respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.logger.Debug("analyze request", zap.Int("documents", len(req.Documents)), zap.String("sort", req.Sort))
	rep, err := s.analyzer.AnalyzeDocuments(r.Context(), req.Documents, req.Sort)
	if err != nil {
		s.respondAnalyzeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, rep)
}

func (s *Server) handleAnalyzeUpload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.config.MaxUploadBytes)
	if err := r.ParseMultipartForm(s.config.MaxUploadBytes); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			s.respondError(w, http.StatusRequestEntityTooLarge, "upload too large")
			return
		}
		s.respondError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	defer r.MultipartForm.RemoveAll()

	sortOrder := r.FormValue("sort")
	switch sortOrder {
	case "", report.SortSimilarity, report.SortName:
	default:
		s.respondError(w, http.StatusBadRequest, "unknown sort "+sortOrder)
		return
	}

	files := r.MultipartForm.File[uploadField]
	docs := make([]*models.Document, 0, len(files))
	loader := s.analyzer.Loader()
	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "cannot open "+fh.Filename)
			return
		}
		content, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			s.respondError(w, http.StatusBadRequest, "cannot read "+fh.Filename)
			return
		}
		doc, err := loader.FromBytes(fh.Filename, content)
		if err != nil {
			s.logger.Debug("upload rejected", zap.String("file", fh.Filename), zap.Error(err))
			s.respondAnalyzeError(w, err)
			return
		}
		docs = append(docs, doc)
	}
	s.logger.Debug("upload analyze request", zap.Int("documents", len(docs)))
	rep, err := s.analyzer.AnalyzeDocuments(r.Context(), docs, sortOrder)
	if err != nil {
		s.respondAnalyzeError(w, err)
		return
	}
	s.respondJSON(w, http.StatusOK, rep)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// respondAnalyzeError maps validation errors to 4xx and everything else to 500.
func (s *Server) respondAnalyzeError(w http.ResponseWriter, err error) {
	var ve *batch.ValidationError
	switch {
	case errors.As(err, &ve), errors.Is(err, extract.ErrUnsupportedType):
		s.respondError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, docsource.ErrExtraction):
		s.respondError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, extract.ErrFileTooLarge):
		s.respondError(w, http.StatusRequestEntityTooLarge, err.Error())
	default:
		s.logger.Error("analysis failed", zap.Error(err))
		s.respondError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func (s *Server) respondError(w http.ResponseWriter, status int, message string) {
	s.respondJSON(w, status, map[string]string{"error": message})
}
