package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"github.com/yukikurage/dashboard-demo-api/internal/constants"
	"github.com/yukikurage/dashboard-demo-api/internal/repository"
)

// newTestRouter returns a gin engine with a cookie session store
func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	store := cookie.NewStore([]byte("secret"))
	r.Use(sessions.Sessions(constants.SessionCookieName, store))
	return r
}

// performRequest sends a JSON request and returns the recorder
func performRequest(r http.Handler, method, url string, body interface{}, cookies ...*http.Cookie) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		b, _ := json.Marshal(body)
		req = httptest.NewRequest(method, url, bytes.NewReader(b))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	for _, c := range cookies {
		req.AddCookie(c)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var errStorageDown = errors.New("storage unavailable")

// readOnlySlots serves reads but rejects every write
type readOnlySlots struct {
	*repository.MemorySlotRepository
}

func (s readOnlySlots) Set(_ context.Context, _, _ string) error {
	return errStorageDown
}

// decodeJSON unmarshals the recorder body into v
func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
