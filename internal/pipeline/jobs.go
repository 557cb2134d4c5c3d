package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/docsift/docsift/internal/outline"
	"github.com/docsift/docsift/internal/relevance"
)

// JobMode selects which pipeline a job runs.
type JobMode string

const (
	// ModeOutline extracts a {title, outline} object per document.
	ModeOutline JobMode = "outline"
	// ModePersona ranks sections across the collection for a persona/job.
	ModePersona JobMode = "persona"
)

// JobStatus represents the state of an analysis job.
type JobStatus string

const (
	StatusQueued     JobStatus = "queued"
	StatusProcessing JobStatus = "processing"
	StatusCompleted  JobStatus = "completed"
	StatusPartial    JobStatus = "partial"
	StatusFailed     JobStatus = "failed"
)

// JobFile is one uploaded document held in memory until processed.
type JobFile struct {
	Name string
	Data []byte
}

// OutlineArtifact pairs a filename with its outline result.
type OutlineArtifact struct {
	Filename string                 `json:"filename"`
	Result   outline.DocumentResult `json:"result"`
}

// Progress tracks processing progress.
type Progress struct {
	TotalDocuments     int      `json:"total_documents"`
	DocumentsProcessed int      `json:"documents_processed"`
	SectionsRanked     int      `json:"sections_ranked"`
	Errors             []string `json:"errors"`
}

// Job tracks the state of one submitted document batch.
type Job struct {
	mu sync.Mutex

	ID   string  `json:"job_id"`
	Mode JobMode `json:"mode"`

	Status JobStatus `json:"status"`
	Phase  string    `json:"phase"`

	Persona     string `json:"persona,omitempty"`
	JobToBeDone string `json:"job_to_be_done,omitempty"`

	Progress Progress `json:"progress"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Internal: not serialized.
	files    []JobFile
	analysis *relevance.AnalysisResult
	outlines []OutlineArtifact
	errors   []string
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records a per-document error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// ErrorCount returns the number of recorded errors.
func (j *Job) ErrorCount() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return len(j.errors)
}

// IncrDocumentsProcessed atomically counts one attempted document.
func (j *Job) IncrDocumentsProcessed() {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.DocumentsProcessed++
	j.UpdatedAt = time.Now()
}

// SetSectionsRanked records how many sections cleared the threshold.
func (j *Job) SetSectionsRanked(n int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.SectionsRanked = n
	j.UpdatedAt = time.Now()
}

// SetFiles attaches the uploaded documents and the total count.
func (j *Job) SetFiles(files []JobFile) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.files = files
	j.Progress.TotalDocuments = len(files)
}

// Files returns the uploaded documents.
func (j *Job) Files() []JobFile {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.files
}

// SetAnalysis stores the persona analysis result.
func (j *Job) SetAnalysis(result *relevance.AnalysisResult) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.analysis = result
	j.UpdatedAt = time.Now()
}

// AddOutline stores one document's outline result.
func (j *Job) AddOutline(filename string, result outline.DocumentResult) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.outlines = append(j.outlines, OutlineArtifact{Filename: filename, Result: result})
	j.UpdatedAt = time.Now()
}

// JobSnapshot is a read-only, JSON-safe copy of job state and results.
type JobSnapshot struct {
	ID          string                    `json:"job_id"`
	Mode        JobMode                   `json:"mode"`
	Status      JobStatus                 `json:"status"`
	Phase       string                    `json:"phase"`
	Persona     string                    `json:"persona,omitempty"`
	JobToBeDone string                    `json:"job_to_be_done,omitempty"`
	Progress    Progress                  `json:"progress"`
	Analysis    *relevance.AnalysisResult `json:"analysis,omitempty"`
	Outlines    []OutlineArtifact         `json:"outlines,omitempty"`
}

// Snapshot returns a JSON-safe copy of the job state.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	return JobSnapshot{
		ID:          j.ID,
		Mode:        j.Mode,
		Status:      j.Status,
		Phase:       j.Phase,
		Persona:     j.Persona,
		JobToBeDone: j.JobToBeDone,
		Progress: Progress{
			TotalDocuments:     j.Progress.TotalDocuments,
			DocumentsProcessed: j.Progress.DocumentsProcessed,
			SectionsRanked:     j.Progress.SectionsRanked,
			Errors:             errs,
		},
		Analysis: j.analysis,
		Outlines: j.outlines,
	}
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
