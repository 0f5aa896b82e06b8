package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/mocks"
)

func TestPolicyHandlers_List(t *testing.T) {
	gin.SetMode(gin.TestMode)

	policy := mocks.NewMockPolicyService()
	policy.GetPoliciesFunc = func() ([][]string, error) {
		return [][]string{
			{"admin", "expense", "write"},
			{"broken"},
			{"superadmin", "user", "delete"},
		}, nil
	}

	r := gin.New()
	r.GET("/admin/policies", NewPolicyHandlers(policy, logging.Nop()).List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/policies", nil))

	require.Equal(t, http.StatusOK, w.Code)
	rules := decodeList(t, w)
	require.Len(t, rules, 2)
	assert.Equal(t, "admin", rules[0]["role"])
	assert.Equal(t, "expense", rules[0]["resource"])
	assert.Equal(t, "delete", rules[1]["action"])
}

func TestPolicyHandlers_List_StoreError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	policy := mocks.NewMockPolicyService()
	policy.GetPoliciesFunc = func() ([][]string, error) {
		return nil, errors.New("adapter unavailable")
	}

	r := gin.New()
	r.GET("/admin/policies", NewPolicyHandlers(policy, logging.Nop()).List)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/policies", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", decodeMap(t, w)["message"])
}
