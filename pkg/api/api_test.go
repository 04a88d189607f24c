package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"saes-go/pkg/saes"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func do(t *testing.T, s *Server, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func TestEncryptDecrypt(t *testing.T) {
	s := New(":0")

	rec := do(t, s, http.MethodPost, "/v1/encrypt", `{"key":"0xA73B","blocks":["0b0110111101101011","0xd728"],"format":"hex"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	var res BlockResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Len(t, res.Blocks, 2)
	assert.Equal(t, "0x0738", res.Blocks[0].Out)
	assert.Equal(t, "0x6f6b", res.Blocks[0].In)

	rec = do(t, s, http.MethodPost, "/v1/decrypt", `{"key":"0xA73B","blocks":["0x0738"]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "0x6f6b", res.Blocks[0].Out)
}

func TestRejectsOutOfRange(t *testing.T) {
	s := New(":0")
	rec := do(t, s, http.MethodPost, "/v1/encrypt", `{"key":"0x1A73B","blocks":["0x1"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), saes.ErrOutOfRange.Error())

	rec = do(t, s, http.MethodPost, "/v1/encrypt", `{"key":"0xA73B","blocks":["0x10000"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, s, http.MethodPost, "/v1/encrypt", `{"key":"0xA73B","blocks":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetKeys(t *testing.T) {
	s := New(":0")
	rec := do(t, s, http.MethodGet, "/v1/keys/0xa73b?format=hex", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var res KeysResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, []string{"0xa73b", "0x1c27", "0x7651"}, res.RoundKeys)
}

func TestGetTables(t *testing.T) {
	s := New(":0")
	rec := do(t, s, http.MethodGet, "/v1/tables", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var res TablesResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, 0x9, res.Sub[0])
	assert.Equal(t, 0xa, res.SubInverse[0])
}

func TestGetTrace(t *testing.T) {
	s := New(":0")
	rec := do(t, s, http.MethodGet, "/v1/trace/0xa73b/0x6f6b", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var tr saes.Trace
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &tr))
	assert.Equal(t, uint16(0x0738), tr.Output)
	assert.Len(t, tr.Steps, 9)

	rec = do(t, s, http.MethodGet, "/v1/trace/0xa73b/0x0738?decrypt=true&format=dot", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "decrypt 0x0738 -> 0x6f6b")

	rec = do(t, s, http.MethodGet, "/v1/trace/0xa73b/0x0738?format=png", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConcurrentRequestsWithDifferentKeys(t *testing.T) {
	s := New(":0")
	cases := map[string]string{
		`{"key":"0xA73B","blocks":["0x6f6b"],"format":"hex"}`: "0x0738",
		`{"key":"0x4AF5","blocks":["0xd728"],"format":"hex"}`: "0x24ec",
	}
	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		for body, want := range cases {
			wg.Add(1)
			go func(body, want string) {
				defer wg.Done()
				rec := do(t, s, http.MethodPost, "/v1/encrypt", body)
				var res BlockResponse
				if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil || len(res.Blocks) != 1 || res.Blocks[0].Out != want {
					t.Errorf("request %s: got %s", body, rec.Body.String())
				}
			}(body, want)
		}
	}
	wg.Wait()
}
