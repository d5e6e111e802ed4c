package utils_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"tanam/apperr"
	"tanam/utils"
)

func TestRespondWithAppError(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		code int
	}{
		{"validation", &apperr.ValidationError{Violations: []string{"area harus number positif (dalam m²)"}}, http.StatusBadRequest},
		{"not found", &apperr.NotFoundError{Resource: "crop", ID: "unicorn-fruit"}, http.StatusNotFound},
		{"conflict", &apperr.ConflictError{Resource: "user", ID: "budi"}, http.StatusConflict},
		{"storage", apperr.Storage("insert user", errors.New("connection reset")), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		utils.RespondWithAppError(rec, tc.err)
		if rec.Code != tc.code {
			t.Errorf("%s: status = %d, want %d", tc.name, rec.Code, tc.code)
		}
	}
}
