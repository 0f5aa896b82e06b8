package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

// Response is a fully read HTTP response
type Response struct {
	Status  int
	Body    []byte
	Cookies []*http.Cookie
}

// JSON decodes an object body
func (r *Response) JSON(t *testing.T) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(r.Body, &out), string(r.Body))
	return out
}

// List decodes an array body
func (r *Response) List(t *testing.T) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(r.Body, &out), string(r.Body))
	return out
}

// Cookie returns the named cookie set by the response, or nil
func (r *Response) Cookie(name string) *http.Cookie {
	for _, c := range r.Cookies {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Do sends a JSON request. token, when non-empty, is sent as a bearer token.
func (e *TestEnv) Do(t *testing.T, method, path string, body interface{}, token string, cookies ...*http.Cookie) *Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequest(method, e.Server.URL+path, reader)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	for _, c := range cookies {
		req.AddCookie(&http.Cookie{Name: c.Name, Value: c.Value})
	}

	resp, err := e.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return &Response{Status: resp.StatusCode, Body: data, Cookies: resp.Cookies()}
}

// Login logs in over HTTP and returns the access token and refresh cookie
func (e *TestEnv) Login(t *testing.T, mobile, password string) (string, *http.Cookie) {
	t.Helper()

	resp := e.Do(t, http.MethodPost, "/auth/login", map[string]string{"mobile": mobile, "password": password}, "")
	require.Equal(t, http.StatusOK, resp.Status, string(resp.Body))

	token, _ := resp.JSON(t)["accessToken"].(string)
	require.NotEmpty(t, token)
	cookie := resp.Cookie("refreshToken")
	require.NotNil(t, cookie)
	return token, cookie
}
