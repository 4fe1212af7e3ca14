package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagination(t *testing.T) {
	tests := []struct {
		name  string
		page  int
		limit int
		total int64
		pages int
	}{
		{"empty result", 1, 10, 0, 0},
		{"exact fit", 1, 10, 10, 1},
		{"one over", 1, 10, 11, 2},
		{"partial last page", 2, 25, 60, 3},
		{"single row", 1, 100, 1, 1},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPagination(tc.page, tc.limit, tc.total)
			assert.Equal(t, tc.page, p.Page)
			assert.Equal(t, tc.limit, p.Limit)
			assert.Equal(t, tc.total, p.Total)
			assert.Equal(t, tc.pages, p.Pages)
		})
	}
}

func TestSuccess(t *testing.T) {
	rec := httptest.NewRecorder()

	Success(rec, http.StatusOK, "fetched", map[string]string{"name": "Rex"})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "fetched", body.Message)
	assert.Nil(t, body.Pagination)
}

func TestSuccessPaginated(t *testing.T) {
	rec := httptest.NewRecorder()

	SuccessPaginated(rec, http.StatusOK, "fetched", []string{}, NewPagination(1, 10, 25))

	var body Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.NotNil(t, body.Pagination)
	assert.Equal(t, 3, body.Pagination.Pages)
	assert.Equal(t, int64(25), body.Pagination.Total)
}

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()

	Error(rec, http.StatusConflict, "appointment already cancelled", nil)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "appointment already cancelled", body.Message)
}

func TestUnauthorized_DefaultMessage(t *testing.T) {
	rec := httptest.NewRecorder()

	Unauthorized(rec, "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body Response
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Unauthorized", body.Message)
}
