package web

import (
	"bytes"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"cftracker/internal/domain/model"
	"cftracker/internal/domain/ports"
)

type handler struct {
	reports ReportSource
	logger  ports.Logger
}

func newHandler(reports ReportSource, logger ports.Logger) *handler {
	return &handler{reports: reports, logger: logger}
}

type problemsResponse struct {
	Handle   string             `json:"handle"`
	Kind     model.Kind         `json:"kind"`
	Bucket   string             `json:"bucket"`
	Problems []model.ProblemRef `json:"problems"`
}

func (h *handler) page(w http.ResponseWriter, r *http.Request) {
	data := pageData{Handle: strings.TrimSpace(r.URL.Query().Get("handle"))}
	status := http.StatusOK

	if data.Handle != "" {
		report, err := h.reports.Analyze(r.Context(), data.Handle)
		if err != nil {
			status = HTTPStatusFromError(err)
			data.Error = err.Error()
		} else {
			data.Report = report
		}
	}

	var buf bytes.Buffer
	if err := renderPage(&buf, data); err != nil {
		h.logger.Error(r.Context(), "render page failed", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}

func (h *handler) report(w http.ResponseWriter, r *http.Request) {
	report, err := h.reports.Analyze(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		respondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, report)
}

func (h *handler) problems(w http.ResponseWriter, r *http.Request) {
	resp, err := h.lookup(r)
	if err != nil {
		respondWithError(w, HTTPStatusFromError(err), err.Error())
		return
	}
	respondWithJSON(w, http.StatusOK, resp)
}

func (h *handler) problemsFragment(w http.ResponseWriter, r *http.Request) {
	resp, err := h.lookup(r)
	if err != nil {
		http.Error(w, err.Error(), HTTPStatusFromError(err))
		return
	}

	var buf bytes.Buffer
	if err := renderProblemList(&buf, resp.Bucket, resp.Problems); err != nil {
		h.logger.Error(r.Context(), "render problem list failed", "error", err)
		http.Error(w, "failed to render problem list", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

// lookup resolves the problems behind one bar of one chart.
func (h *handler) lookup(r *http.Request) (*problemsResponse, error) {
	kind, err := model.ParseKind(chi.URLParam(r, "kind"))
	if err != nil {
		return nil, err
	}
	bucket := chi.URLParam(r, "bucket")
	if !model.IsBucketLabel(bucket) {
		return nil, fmt.Errorf("%w: %q", model.ErrInvalidBucket, bucket)
	}

	report, err := h.reports.Analyze(r.Context(), chi.URLParam(r, "handle"))
	if err != nil {
		return nil, err
	}

	problems := report.Chart(kind).Lookup(bucket)
	if problems == nil {
		problems = []model.ProblemRef{}
	}
	return &problemsResponse{
		Handle:   report.Handle,
		Kind:     kind,
		Bucket:   bucket,
		Problems: problems,
	}, nil
}
