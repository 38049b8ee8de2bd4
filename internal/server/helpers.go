package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/jobdeck/jobdeck/internal/config"
	"github.com/jobdeck/jobdeck/internal/dataset"
	"github.com/jobdeck/jobdeck/internal/model"
)

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

func methodMux(m map[string]http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if h, ok := m[r.Method]; ok {
			h(w, r)
			return
		}
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

// criteriaFromRequest builds filter criteria from query parameters.
// Absent sector/size parameters fall back to the dataset-derived defaults,
// matching the dashboard's initial widget state; parameters present but
// matching nothing filter everything out.
func criteriaFromRequest(r *http.Request, ds *dataset.Dataset) model.FilterCriteria {
	q := r.URL.Query()

	sectors, ok := q["sector"]
	if !ok {
		sectors = config.DefaultSectors(ds.Sectors())
	}
	sizes, ok := q["size"]
	if !ok {
		sizes = config.DefaultSizes(ds.Sizes())
	}

	minRating := config.DefaultMinRating
	if s := q.Get("min_rating"); s != "" {
		if v, err := strconv.ParseFloat(s, 64); err == nil {
			minRating = v
		}
	}

	return model.NewFilterCriteria(sectors, sizes, minRating)
}

func intParam(r *http.Request, name string, fallback int) int {
	if s := r.URL.Query().Get(name); s != "" {
		if v, err := strconv.Atoi(s); err == nil {
			return v
		}
	}
	return fallback
}

// nullable maps the missing sentinel to a JSON null; NaN itself is not
// encodable by encoding/json.
func nullable(v float64) *float64 {
	if model.IsMissing(v) {
		return nil
	}
	return &v
}
