package responsewriter

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrap_DefaultsToOK(t *testing.T) {
	rw := Wrap(httptest.NewRecorder())

	assert.Equal(t, http.StatusOK, rw.StatusCode())
	assert.False(t, rw.HeaderWritten())
	assert.Equal(t, 0, rw.BytesWritten())
}

func TestWrap_Idempotent(t *testing.T) {
	rw := Wrap(httptest.NewRecorder())
	assert.Same(t, rw, Wrap(rw))
}

func TestResponseWriter_WriteHeader_FirstCallWins(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	rw.WriteHeader(http.StatusInternalServerError)
	rw.WriteHeader(http.StatusOK)

	assert.Equal(t, http.StatusInternalServerError, rw.StatusCode())
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.True(t, rw.HeaderWritten())
}

func TestResponseWriter_Write_ImpliesOKAndCountsBytes(t *testing.T) {
	rec := httptest.NewRecorder()
	rw := Wrap(rec)

	_, _ = rw.Write([]byte(`{"company_brochure":`))
	_, _ = rw.Write([]byte(`"# Brochure"}`))

	assert.Equal(t, http.StatusOK, rw.StatusCode())
	assert.Equal(t, len(`{"company_brochure":"# Brochure"}`), rw.BytesWritten())
	assert.Equal(t, `{"company_brochure":"# Brochure"}`, rec.Body.String())
}

func TestResponseWriter_Unwrap(t *testing.T) {
	rec := httptest.NewRecorder()
	assert.Same(t, rec, Wrap(rec).Unwrap())
}
