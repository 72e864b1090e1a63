package sheets

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	goption "google.golang.org/api/option"
	gsheet "google.golang.org/api/sheets/v4"

	"github.com/csmqbusy/personal-finances/internal/domain/entity"
	errs "github.com/csmqbusy/personal-finances/internal/domain/error"
	"github.com/csmqbusy/personal-finances/internal/infrastructure/adapter/logger"
)

type fakeSheetsAPI struct {
	mu       sync.Mutex
	titles   []string
	added    []string
	cleared  int
	updated  [][]any
	failWith int
}

func (f *fakeSheetsAPI) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.failWith != 0 {
		http.Error(w, `{"error":{"code":403,"message":"denied"}}`, f.failWith)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	path := r.URL.Path
	switch {
	case r.Method == http.MethodGet:
		sheets := make([]map[string]any, 0, len(f.titles))
		for _, title := range f.titles {
			sheets = append(sheets, map[string]any{"properties": map[string]any{"title": title}})
		}
		json.NewEncoder(w).Encode(map[string]any{"sheets": sheets})
	case strings.HasSuffix(path, ":batchUpdate"):
		var req gsheet.BatchUpdateSpreadsheetRequest
		json.NewDecoder(r.Body).Decode(&req)
		for _, rq := range req.Requests {
			f.added = append(f.added, rq.AddSheet.Properties.Title)
			f.titles = append(f.titles, rq.AddSheet.Properties.Title)
		}
		json.NewEncoder(w).Encode(map[string]any{})
	case strings.HasSuffix(path, ":clear"):
		f.cleared++
		json.NewEncoder(w).Encode(map[string]any{})
	case r.Method == http.MethodPut:
		var vr gsheet.ValueRange
		json.NewDecoder(r.Body).Decode(&vr)
		f.updated = vr.Values
		json.NewEncoder(w).Encode(map[string]any{"updatedRange": "'Spendings 2024'!A1:D3"})
	default:
		http.NotFound(w, r)
	}
}

func newTestPublisher(t *testing.T, api *fakeSheetsAPI) *Publisher {
	t.Helper()
	srv := httptest.NewServer(api)
	t.Cleanup(srv.Close)

	svc, err := gsheet.NewService(context.Background(),
		goption.WithEndpoint(srv.URL+"/"),
		goption.WithoutAuthentication())
	require.NoError(t, err)

	return NewPublisherWithService(svc, "sheet-id", logger.NewNoopLogger())
}

func TestPublish(t *testing.T) {
	rows := []entity.PeriodRow{
		{PeriodNumber: 1, TotalAmount: 300, CategoryName: "Food", Amount: 200},
		{PeriodNumber: 1, TotalAmount: 300, CategoryName: "Fun", Amount: 100},
	}

	t.Run("creates the tab and writes header plus rows", func(t *testing.T) {
		api := &fakeSheetsAPI{titles: []string{"Sheet1"}}
		publisher := newTestPublisher(t, api)

		rng, err := publisher.Publish(context.Background(), "Spendings 2024", rows)
		require.NoError(t, err)
		assert.Equal(t, "'Spendings 2024'!A1:D3", rng)
		assert.Equal(t, []string{"Spendings 2024"}, api.added)
		assert.Equal(t, 1, api.cleared)
		require.Len(t, api.updated, 3)
		assert.Equal(t, "category_name", api.updated[0][2])
		assert.Equal(t, "Fun", api.updated[2][2])
	})

	t.Run("existing tab is reused", func(t *testing.T) {
		api := &fakeSheetsAPI{titles: []string{"Spendings 2024"}}
		publisher := newTestPublisher(t, api)

		_, err := publisher.Publish(context.Background(), "Spendings 2024", rows)
		require.NoError(t, err)
		assert.Empty(t, api.added)
	})

	t.Run("api failure maps to export unavailable", func(t *testing.T) {
		api := &fakeSheetsAPI{failWith: http.StatusForbidden}
		publisher := newTestPublisher(t, api)

		_, err := publisher.Publish(context.Background(), "Spendings 2024", rows)
		assert.ErrorIs(t, err, errs.ErrExportUnavailable)
	})

	t.Run("unconfigured publisher", func(t *testing.T) {
		var publisher *Publisher
		_, err := publisher.Publish(context.Background(), "Spendings 2024", rows)
		assert.ErrorIs(t, err, errs.ErrExportUnavailable)
	})
}
