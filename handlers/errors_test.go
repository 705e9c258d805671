package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"barberbook/services/scheduling"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRespondErrorStatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		kind   scheduling.Kind
		status int
	}{
		{scheduling.KindValidation, http.StatusBadRequest},
		{scheduling.KindOutOfHours, http.StatusBadRequest},
		{scheduling.KindInvalidState, http.StatusBadRequest},
		{scheduling.KindForbidden, http.StatusForbidden},
		{scheduling.KindNotFound, http.StatusNotFound},
		{scheduling.KindConflict, http.StatusConflict},
	}
	for _, tc := range cases {
		t.Run(string(tc.kind), func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			respondError(c, &scheduling.Error{Kind: tc.kind, Message: "nope"})
			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), string(tc.kind))
		})
	}
}

func TestRespondErrorUnclassified(t *testing.T) {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	respondError(c, errors.New("database exploded"))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	// Internal detail never leaks to the client.
	assert.NotContains(t, w.Body.String(), "exploded")
}
