package server

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/jobdeck/jobdeck/internal/common"
	"github.com/jobdeck/jobdeck/internal/dataset"
	"github.com/jobdeck/jobdeck/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProvider() Provider {
	ds := &dataset.Dataset{
		RawCount: 4,
		Records: []model.JobRecord{
			{Title: "Data Scientist", Company: "Acme", Sector: "Tech", Size: "Large", Rating: 4.0, SalaryMin: 80000, SalaryMax: 120000, AvgSalary: 100000, SalaryEstimate: "$80K-$120K"},
			{Title: "ML Engineer", Company: "Initech", Sector: "Tech", Size: "Small", Rating: 2.0, SalaryMin: 50000, SalaryMax: 90000, AvgSalary: 70000, SalaryEstimate: "$50K-$90K"},
			{Title: "Data Analyst", Company: "Hooli", Sector: "Finance", Size: "Large", Rating: 4.5, SalaryMin: model.Missing(), SalaryMax: model.Missing(), AvgSalary: model.Missing()},
		},
	}
	return func(context.Context) (*dataset.Dataset, error) { return ds, nil }
}

func failingProvider(err error) Provider {
	return func(context.Context) (*dataset.Dataset, error) { return nil, err }
}

func get(t *testing.T, mux *http.ServeMux, url string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(v))
}

func TestJobs_FilterAndPaginate(t *testing.T) {
	mux := NewMux(Deps{Data: testProvider()})

	rec := get(t, mux, "/api/jobs?sector=Tech&size=Large&size=Small&min_rating=3.0")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Jobs       []map[string]any `json:"jobs"`
		Total      int              `json:"total"`
		TotalPages int              `json:"total_pages"`
	}
	decode(t, rec, &body)

	require.Len(t, body.Jobs, 1)
	assert.Equal(t, "Data Scientist", body.Jobs[0]["job_title"])
	assert.Equal(t, 1, body.Total)
	assert.Equal(t, 1, body.TotalPages)
}

func TestJobs_EmptySectorParamMatchesNothing(t *testing.T) {
	mux := NewMux(Deps{Data: testProvider()})

	// The sector parameter is present but selects a nonexistent value:
	// zero matches, zero pages, no error.
	rec := get(t, mux, "/api/jobs?sector=Nonexistent&size=Large&min_rating=0")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Jobs       []any `json:"jobs"`
		Total      int   `json:"total"`
		TotalPages int   `json:"total_pages"`
	}
	decode(t, rec, &body)
	assert.Empty(t, body.Jobs)
	assert.Equal(t, 0, body.Total)
	assert.Equal(t, 0, body.TotalPages)
}

func TestJobs_DefaultsWhenNoParams(t *testing.T) {
	mux := NewMux(Deps{Data: testProvider()})

	// Defaults: both sectors, both sizes, min rating 3.0. The ML
	// Engineer (2.0) drops out.
	rec := get(t, mux, "/api/jobs")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Total int `json:"total"`
	}
	decode(t, rec, &body)
	assert.Equal(t, 2, body.Total)
}

func TestJobs_Pagination(t *testing.T) {
	ds := &dataset.Dataset{}
	for i := 0; i < 25; i++ {
		ds.Records = append(ds.Records, model.JobRecord{
			Title: fmt.Sprintf("Job %02d", i), Sector: "Tech", Size: "Large", Rating: 5,
		})
	}
	provider := func(context.Context) (*dataset.Dataset, error) { return ds, nil }
	mux := NewMux(Deps{Data: provider})

	rec := get(t, mux, "/api/jobs?sector=Tech&size=Large&min_rating=0&page=3&page_size=10")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Jobs       []map[string]any `json:"jobs"`
		TotalPages int              `json:"total_pages"`
	}
	decode(t, rec, &body)
	assert.Len(t, body.Jobs, 5, "last page holds the remainder")
	assert.Equal(t, 3, body.TotalPages)
	assert.Equal(t, "Job 20", body.Jobs[0]["job_title"])
}

func TestSummary(t *testing.T) {
	mux := NewMux(Deps{Data: testProvider()})

	rec := get(t, mux, "/api/summary?sector=Tech&size=Large&size=Small&min_rating=3.0")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count          int      `json:"count"`
		MeanRating     *float64 `json:"mean_rating"`
		MeanAvgSalary  *float64 `json:"mean_avg_salary"`
		UniqueCompanys int      `json:"unique_companies"`
	}
	decode(t, rec, &body)
	assert.Equal(t, 1, body.Count)
	require.NotNil(t, body.MeanRating)
	assert.InDelta(t, 4.0, *body.MeanRating, 1e-9)
	require.NotNil(t, body.MeanAvgSalary)
	assert.InDelta(t, 100000, *body.MeanAvgSalary, 1e-9)
	assert.Equal(t, 1, body.UniqueCompanys)
}

func TestSummary_EmptyResultReportsNulls(t *testing.T) {
	mux := NewMux(Deps{Data: testProvider()})

	rec := get(t, mux, "/api/summary?sector=Nonexistent")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Count         int      `json:"count"`
		MeanRating    *float64 `json:"mean_rating"`
		MeanAvgSalary *float64 `json:"mean_avg_salary"`
	}
	decode(t, rec, &body)
	assert.Equal(t, 0, body.Count)
	assert.Nil(t, body.MeanRating, "undefined mean serializes as null, not NaN")
	assert.Nil(t, body.MeanAvgSalary)
}

func TestTop(t *testing.T) {
	mux := NewMux(Deps{Data: testProvider()})

	rec := get(t, mux, "/api/top?field=sector&n=5&sector=Tech&sector=Finance&size=Large&size=Small&min_rating=0")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []model.ValueCount
	decode(t, rec, &body)
	require.Len(t, body, 2)
	assert.Equal(t, "Tech", body[0].Value)
	assert.Equal(t, 2, body[0].Count)
}

func TestTop_UnknownField(t *testing.T) {
	mux := NewMux(Deps{Data: testProvider()})
	rec := get(t, mux, "/api/top?field=revenue")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGroups(t *testing.T) {
	mux := NewMux(Deps{Data: testProvider()})

	rec := get(t, mux, "/api/groups?group=size&sector=Tech&sector=Finance&size=Large&size=Small&min_rating=0")
	require.Equal(t, http.StatusOK, rec.Code)

	var body []struct {
		Group string   `json:"group"`
		Mean  *float64 `json:"mean"`
	}
	decode(t, rec, &body)
	require.Len(t, body, 2)
	assert.Equal(t, "Large", body[0].Group)
	require.NotNil(t, body[0].Mean)
	assert.InDelta(t, 100000, *body[0].Mean, 1e-9)
}

func TestExportCSV(t *testing.T) {
	mux := NewMux(Deps{Data: testProvider()})

	rec := get(t, mux, "/api/export.csv?sector=Tech&size=Large&min_rating=0")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "data_science_jobs.csv")

	rows, err := csv.NewReader(strings.NewReader(rec.Body.String())).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 2) // header + one matching record
	assert.Equal(t, "Data Scientist", rows[1][0])
}

func TestDegradedStateOnLoadFailure(t *testing.T) {
	mux := NewMux(Deps{Data: failingProvider(fmt.Errorf("%w: jobs.csv", common.ErrFileNotFound))})

	rec := get(t, mux, "/api/jobs")
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var body map[string]string
	decode(t, rec, &body)
	assert.Contains(t, body["error"], "jobs.csv")

	// The process stays useful: health still answers.
	rec = get(t, mux, "/healthz")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestMethodNotAllowed(t *testing.T) {
	mux := NewMux(Deps{Data: testProvider()})
	req := httptest.NewRequest(http.MethodPost, "/api/jobs", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
