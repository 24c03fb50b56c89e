package errors

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondErrorShape(t *testing.T) {
	cases := map[int]string{
		http.StatusBadRequest:          "Bad request error",
		http.StatusNotFound:            "Resource not found",
		http.StatusUnprocessableEntity: "unprocessable",
		http.StatusInternalServerError: "Internal server error",
	}
	for status, msg := range cases {
		rec := httptest.NewRecorder()
		RespondError(rec, status)

		assert.Equal(t, status, rec.Code)
		assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Len(t, body, 3)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, float64(status), body["error"])
		assert.Equal(t, msg, body["message"])
	}
}

func TestMessageForUnknownStatus(t *testing.T) {
	assert.Equal(t, "I'm a teapot", MessageFor(http.StatusTeapot))
}

func TestRespondHelpers(t *testing.T) {
	cases := map[int]func(http.ResponseWriter){
		http.StatusBadRequest:          RespondBadRequest,
		http.StatusNotFound:            RespondNotFound,
		http.StatusMethodNotAllowed:    RespondMethodNotAllowed,
		http.StatusUnprocessableEntity: RespondUnprocessable,
		http.StatusInternalServerError: RespondInternalError,
	}
	for status, respond := range cases {
		rec := httptest.NewRecorder()
		respond(rec)

		assert.Equal(t, status, rec.Code)
		var body ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, status, body.Error)
		assert.Equal(t, MessageFor(status), body.Message)
	}
}
