package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/docsift/docsift/internal/artifact"
	"github.com/docsift/docsift/internal/loader"
	"github.com/docsift/docsift/internal/outline"
	"github.com/docsift/docsift/internal/relevance"
)

// Worker processes one job at a time. Documents within a job are handled
// strictly sequentially; a document that cannot be loaded is recorded and
// skipped without aborting the batch.
type Worker struct {
	analyzer    *relevance.Analyzer
	store       *artifact.Store
	stats       *DocStats
	log         *slog.Logger
	pdfFallback bool
}

func NewWorker(analyzer *relevance.Analyzer, store *artifact.Store, stats *DocStats, log *slog.Logger, pdfFallback bool) *Worker {
	return &Worker{
		analyzer:    analyzer,
		store:       store,
		stats:       stats,
		log:         log,
		pdfFallback: pdfFallback,
	}
}

// Process runs the pipeline selected by the job's mode.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "mode", job.Mode)
	job.SetStatus(StatusProcessing, "processing documents")

	switch job.Mode {
	case ModePersona:
		w.processPersona(log, job)
	default:
		w.processOutline(log, job)
	}
}

// processOutline runs the single-document pipeline over every file in the
// batch. Load failures become structured error results rather than aborting.
func (w *Worker) processOutline(log *slog.Logger, job *Job) {
	for _, file := range job.Files() {
		start := time.Now()

		doc, err := w.openDocument(file)
		var result outline.DocumentResult
		if err != nil {
			log.Error("document load failed", "file", file.Name, "error", err)
			job.AddError(fmt.Sprintf("%s: %s", file.Name, err))
			result = outline.ErrorResult(err)
		} else {
			result = outline.Extract(doc)
			doc.Close()
		}

		job.AddOutline(file.Name, result)
		if path, err := w.store.SaveOutline(file.Name, result); err != nil {
			log.Error("artifact write failed", "file", file.Name, "error", err)
			job.AddError(fmt.Sprintf("save %s: %s", file.Name, err))
		} else {
			log.Info("outline extracted", "file", file.Name,
				"headings", len(result.Outline), "artifact", path)
		}

		w.stats.Record(time.Since(start))
		job.IncrDocumentsProcessed()
	}

	job.SetStatus(finalStatus(job, len(job.Files())), "done")
}

// processPersona runs the multi-document relevance pipeline.
func (w *Worker) processPersona(log *slog.Logger, job *Job) {
	profile := relevance.NewProfile(job.Persona, job.JobToBeDone)

	sources := make([]relevance.Source, 0, len(job.Files()))
	for _, file := range job.Files() {
		sources = append(sources, relevance.Source{
			Filename: file.Name,
			Open: func() (loader.Document, error) {
				start := time.Now()
				doc, err := w.openDocument(file)
				w.stats.Record(time.Since(start))
				job.IncrDocumentsProcessed()
				if err != nil {
					job.AddError(fmt.Sprintf("%s: %s", file.Name, err))
				}
				return doc, err
			},
		})
	}

	result := w.analyzer.Analyze(sources, profile)
	job.SetAnalysis(&result)
	job.SetSectionsRanked(len(result.ExtractedSections))

	if path, err := w.store.SaveAnalysis(job.ID, result); err != nil {
		log.Error("artifact write failed", "error", err)
		job.AddError(fmt.Sprintf("save analysis: %s", err))
	} else {
		log.Info("analysis complete", "documents", len(sources),
			"ranked_sections", len(result.ExtractedSections), "artifact", path)
	}

	job.SetStatus(finalStatus(job, len(sources)), "done")
}

// openDocument picks the opener by extension and reads the file bytes.
func (w *Worker) openDocument(file JobFile) (loader.Document, error) {
	opener, err := loader.ForFile(file.Name)
	if err != nil {
		return nil, err
	}
	if pdfOpener, ok := opener.(*loader.PDFOpener); ok {
		pdfOpener.FallbackPdftotext = w.pdfFallback
	}
	return opener.Open(bytes.NewReader(file.Data), file.Name)
}

// finalStatus maps the error tally to a terminal job status.
func finalStatus(job *Job, total int) JobStatus {
	errs := job.ErrorCount()
	switch {
	case errs == 0:
		return StatusCompleted
	case errs >= total && total > 0:
		return StatusFailed
	default:
		return StatusPartial
	}
}
