package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/domain"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/http/middleware"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/logging"
	"github.com/vikartp/aakasmik-nidhi-sanstha-sub000/internal/mocks"
)

var (
	testMember     = &domain.User{ID: 1, Name: "Ravi", FatherName: "Mohan", Mobile: "9876543210", Role: domain.RoleMember}
	testAdmin      = &domain.User{ID: 2, Name: "Asha", FatherName: "Gopal", Mobile: "9876543211", Role: domain.RoleAdmin, Verified: true}
	testSuperAdmin = &domain.User{ID: 3, Name: "Vikas", FatherName: "Ram", Mobile: "9876543212", Role: domain.RoleSuperAdmin, Verified: true}
)

func testLog() logging.Logger { return logging.Nop() }

// authedRouter returns an engine whose routes run behind the real auth
// middleware, resolving every bearer token to user.
func authedRouter(user *domain.User) (*gin.Engine, *gin.RouterGroup) {
	gin.SetMode(gin.TestMode)

	repo := mocks.NewMockUserRepository()
	repo.FindByIDFunc = func(ctx context.Context, id uint) (*domain.User, error) {
		if user == nil || id != user.ID {
			return nil, domain.ErrUserNotFound
		}
		return user, nil
	}

	r := gin.New()
	g := r.Group("/", middleware.AuthMiddleware(mocks.NewMockTokenService(), repo, nil, nil))
	return r, g
}

func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}, user *domain.User) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(t, json.NewEncoder(&buf).Encode(b))
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if user != nil {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer access_%d_%s", user.ID, user.Mobile))
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeMap(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}
