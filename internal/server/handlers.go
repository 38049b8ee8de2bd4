package server

import (
	"net/http"

	"github.com/jobdeck/jobdeck/internal/common"
	"github.com/jobdeck/jobdeck/internal/config"
	"github.com/jobdeck/jobdeck/internal/dataset"
	"github.com/jobdeck/jobdeck/internal/engine"
	"github.com/jobdeck/jobdeck/internal/export"
	"github.com/jobdeck/jobdeck/internal/model"
)

// ViewsHandler serves the filtered and aggregated views.
type ViewsHandler struct {
	Data Provider
}

type jobJSON struct {
	Title          string   `json:"job_title"`
	Company        string   `json:"company_name"`
	Location       string   `json:"location"`
	SalaryEstimate string   `json:"salary_estimate"`
	Sector         string   `json:"sector"`
	Size           string   `json:"size"`
	Revenue        string   `json:"revenue"`
	Rating         float64  `json:"rating"`
	SalaryMin      *float64 `json:"salary_min"`
	SalaryMax      *float64 `json:"salary_max"`
	AvgSalary      *float64 `json:"avg_salary"`
}

func toJobJSON(r model.JobRecord) jobJSON {
	return jobJSON{
		Title:          r.Title,
		Company:        r.Company,
		Location:       r.Location,
		SalaryEstimate: r.SalaryEstimate,
		Sector:         r.Sector,
		Size:           r.Size,
		Revenue:        r.Revenue,
		Rating:         r.Rating,
		SalaryMin:      nullable(r.SalaryMin),
		SalaryMax:      nullable(r.SalaryMax),
		AvgSalary:      nullable(r.AvgSalary),
	}
}

// Jobs returns one page of the filtered view.
// Query: sector (repeatable), size (repeatable), min_rating, page, page_size.
func (h ViewsHandler) Jobs(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.loadDataset(w, r)
	if !ok {
		return
	}

	view := engine.Filter(ds, criteriaFromRequest(r, ds))
	pageSize := config.ClampPageSize(intParam(r, "page_size", config.DefaultPageSize))
	page := intParam(r, "page", 1)

	records := engine.Paginate(view, pageSize, page)
	jobs := make([]jobJSON, 0, len(records))
	for _, rec := range records {
		jobs = append(jobs, toJobJSON(rec))
	}

	writeJSON(w, map[string]any{
		"jobs":        jobs,
		"page":        page,
		"page_size":   pageSize,
		"total":       len(view),
		"total_pages": engine.TotalPages(len(view), pageSize),
	})
}

// Summary returns the headline metrics for the filtered view.
func (h ViewsHandler) Summary(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.loadDataset(w, r)
	if !ok {
		return
	}

	view := engine.Filter(ds, criteriaFromRequest(r, ds))
	s := engine.Summarize(view)

	writeJSON(w, map[string]any{
		"count":            s.Count,
		"mean_rating":      nullable(s.MeanRating),
		"mean_avg_salary":  nullable(s.MeanAvgSalary),
		"unique_companies": s.UniqueCompanies,
		"total_records":    len(ds.Records),
		"dropped_records":  ds.DroppedCount(),
	})
}

// Top returns the most frequent values of a field in the filtered view.
// Query: field (title|company|location|sector|size), n.
func (h ViewsHandler) Top(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.loadDataset(w, r)
	if !ok {
		return
	}

	field, ok := engine.FieldByName(r.URL.Query().Get("field"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown field")
		return
	}
	n := intParam(r, "n", 10)

	view := engine.Filter(ds, criteriaFromRequest(r, ds))
	writeJSON(w, engine.TopNByCount(view, field, n))
}

// Groups returns per-group means over the filtered view.
// Query: group (field name), value (avg_salary|rating).
func (h ViewsHandler) Groups(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.loadDataset(w, r)
	if !ok {
		return
	}

	group, ok := engine.FieldByName(r.URL.Query().Get("group"))
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown group field")
		return
	}
	value, ok := engine.ValueByName(r.URL.Query().Get("value"))
	if !ok {
		value = engine.AvgSalaryValue
	}

	view := engine.Filter(ds, criteriaFromRequest(r, ds))

	type groupJSON struct {
		Group string   `json:"group"`
		Mean  *float64 `json:"mean"`
	}
	means := engine.GroupMeans(view, group, value)
	out := make([]groupJSON, 0, len(means))
	for _, g := range means {
		out = append(out, groupJSON{Group: g.Group, Mean: nullable(g.Mean)})
	}
	writeJSON(w, out)
}

// ExportCSV streams the filtered view as the downloadable CSV artifact.
func (h ViewsHandler) ExportCSV(w http.ResponseWriter, r *http.Request) {
	ds, ok := h.loadDataset(w, r)
	if !ok {
		return
	}

	view := engine.Filter(ds, criteriaFromRequest(r, ds))

	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="`+export.DefaultFileName+`"`)
	if err := export.Write(w, view); err != nil {
		common.LogError(err, "csv export failed", nil)
	}
}

// Health reports process liveness and whether the dataset currently loads.
func (h ViewsHandler) Health(w http.ResponseWriter, r *http.Request) {
	_, err := h.Data(r.Context())
	status := map[string]any{"ok": true, "dataset": err == nil}
	if err != nil {
		status["dataset_error"] = err.Error()
	}
	writeJSON(w, status)
}

// loadDataset fetches the cleaned dataset, degrading to a JSON error payload
// when the source file is missing or unparseable. The server stays up.
func (h ViewsHandler) loadDataset(w http.ResponseWriter, r *http.Request) (ds *dataset.Dataset, ok bool) {
	ds, err := h.Data(r.Context())
	if err != nil {
		if common.IsLoadFailure(err) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
		} else {
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return nil, false
	}
	return ds, true
}
