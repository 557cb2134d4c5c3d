package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"time"

	"github.com/docsift/docsift/internal/loader"
	"github.com/docsift/docsift/internal/pipeline"
	"github.com/go-chi/chi/v5"
)

// handleAnalyze accepts a batch of documents and queues an analysis job.
// When persona or job_to_be_done form fields are present the multi-document
// relevance pipeline runs; otherwise each document gets an outline.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes*10+10*1024*1024)

	if err := r.ParseMultipartForm(64 << 20); err != nil {
		jsonError(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return
	}
	defer r.MultipartForm.RemoveAll()

	fileHeaders := r.MultipartForm.File["files"]
	if len(fileHeaders) == 0 {
		jsonError(w, "at least one file is required", http.StatusBadRequest)
		return
	}

	persona := r.FormValue("persona")
	jobToBeDone := r.FormValue("job_to_be_done")
	mode := pipeline.ModeOutline
	if persona != "" || jobToBeDone != "" {
		mode = pipeline.ModePersona
	}

	var files []pipeline.JobFile
	for _, fh := range fileHeaders {
		filename := sanitizeFilename(fh.Filename)
		if !loader.IsSupportedExtension(filename) {
			jsonError(w, fmt.Sprintf("unsupported file type: %s", filepath.Ext(filename)), http.StatusBadRequest)
			return
		}

		f, err := fh.Open()
		if err != nil {
			jsonError(w, fmt.Sprintf("failed to open %s", filename), http.StatusBadRequest)
			return
		}
		data, err := io.ReadAll(io.LimitReader(f, s.cfg.MaxUploadBytes+1))
		f.Close()
		if err != nil {
			jsonError(w, fmt.Sprintf("failed to read %s", filename), http.StatusBadRequest)
			return
		}
		if int64(len(data)) > s.cfg.MaxUploadBytes {
			jsonError(w, fmt.Sprintf("%s exceeds max size (%d bytes)", filename, s.cfg.MaxUploadBytes), http.StatusRequestEntityTooLarge)
			return
		}
		files = append(files, pipeline.JobFile{Name: filename, Data: data})
	}

	now := time.Now()
	job := &pipeline.Job{
		ID:          pipeline.ContentHashHex(fmt.Appendf(nil, "%s-%d-%d", persona, len(files), now.UnixNano()))[:20],
		Mode:        mode,
		Status:      pipeline.StatusQueued,
		Phase:       "queued",
		Persona:     persona,
		JobToBeDone: jobToBeDone,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	job.SetFiles(files)

	if err := s.orchestrator.Submit(job); err != nil {
		jsonError(w, err.Error(), http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	json.NewEncoder(w).Encode(map[string]any{
		"job_id":    job.ID,
		"mode":      job.Mode,
		"documents": len(files),
		"status":    job.Status,
		"poll_url":  fmt.Sprintf("/api/analyze/%s/status", job.ID),
	})
}

// handleAnalyzeStatus reports job progress, including results once the job
// reaches a terminal state.
func (s *Server) handleAnalyzeStatus(w http.ResponseWriter, r *http.Request) {
	jobID := chi.URLParam(r, "jobID")
	job := s.orchestrator.GetJob(jobID)
	if job == nil {
		jsonError(w, "job not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(job.Snapshot())
}
