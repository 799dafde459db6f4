package http

import (
	"bytes"
	"net/http"
	"sync"
	"testing"

	"github.com/JMURv/courseguard/internal/config"
	"github.com/JMURv/courseguard/internal/dto"
	"github.com/JMURv/courseguard/internal/hdl"
	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginEnvelope struct {
	Data dto.LoginResponse `json:"data"`
}

func loginUser(t *testing.T, url, email, password, deviceHash string) (*http.Response, *dto.LoginResponse) {
	payload, err := json.Marshal(
		map[string]string{
			"email":      email,
			"password":   password,
			"deviceHash": deviceHash,
		},
	)
	require.NoError(t, err)

	resp, err := http.Post(url+"/auth/login", "application/json", bytes.NewBuffer(payload))
	require.NoError(t, err)
	defer resp.Body.Close()

	res := &loginEnvelope{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(res))
	return resp, &res.Data
}

// Two logins fired at the same instant race through the
// deactivate-then-insert transaction. Whatever the interleaving, the
// partial unique index guarantees exactly one session row stays
// active, and neither caller sees an error.
func TestConcurrentLoginSingleActiveSession(t *testing.T) {
	ts, conn, cleanup := setupTestServer()
	t.Cleanup(func() {
		cleanup(t)
	})

	const (
		email      = "race@example.com"
		password   = "password123!"
		deviceHash = "fp-hash-race"
	)
	uid := seedVerifiedUser(t, conn, email, password, deviceHash)

	payload, err := json.Marshal(
		map[string]string{
			"email":      email,
			"password":   password,
			"deviceHash": deviceHash,
		},
	)
	require.NoError(t, err)

	start := make(chan struct{})
	codes := make(chan int, 2)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start

			resp, err := http.Post(ts.URL+"/auth/login", "application/json", bytes.NewBuffer(payload))
			if err != nil {
				codes <- 0
				return
			}
			defer resp.Body.Close()
			codes <- resp.StatusCode
		}()
	}

	close(start)
	wg.Wait()
	close(codes)

	for code := range codes {
		assert.Equal(t, http.StatusOK, code)
	}

	var active int
	require.NoError(t, conn.Get(&active, `SELECT COUNT(*) FROM sessions WHERE user_id = $1 AND is_active`, uid))
	assert.Equal(t, 1, active)

	var total int
	require.NoError(t, conn.Get(&total, `SELECT COUNT(*) FROM sessions WHERE user_id = $1`, uid))
	assert.Equal(t, 2, total)

	var reason string
	require.NoError(t, conn.Get(&reason, `SELECT term_reason FROM sessions WHERE user_id = $1 AND NOT is_active`, uid))
	assert.Equal(t, "superseded", reason)
}

func TestSessionLifecycle(t *testing.T) {
	ts, conn, cleanup := setupTestServer()
	t.Cleanup(func() {
		cleanup(t)
	})

	const (
		email      = "lifecycle@example.com"
		password   = "password123!"
		deviceHash = "fp-hash-lifecycle"
	)
	uid := seedVerifiedUser(t, conn, email, password, deviceHash)

	resp, first := loginUser(t, ts.URL, email, password, deviceHash)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.False(t, first.RequiresDeviceVerification)
	require.NotEmpty(t, first.Token)

	checkSession := func(token string) *http.Response {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/auth/session", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		req.Header.Set(config.DeviceHashHeader, deviceHash)

		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return res
	}

	res := checkSession(first.Token)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()

	// A second login supersedes the first session.
	resp, second := loginUser(t, ts.URL, email, password, deviceHash)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, second.Token)
	require.NotEqual(t, first.SessionID, second.SessionID)

	res = checkSession(first.Token)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)

	errRes := map[string]string{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&errRes))
	assert.Equal(t, hdl.CodeSessionExpired, errRes["code"])
	res.Body.Close()

	res = checkSession(second.Token)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()

	// A mismatched fingerprint blocks without touching the session.
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/auth/session", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+second.Token)
	req.Header.Set(config.DeviceHashHeader, "fp-hash-other")

	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	res.Body.Close()

	var active int
	require.NoError(t, conn.Get(&active, `SELECT COUNT(*) FROM sessions WHERE user_id = $1 AND is_active`, uid))
	assert.Equal(t, 1, active)

	// Logout terminates the surviving session.
	req, err = http.NewRequest(http.MethodPost, ts.URL+"/auth/logout", nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+second.Token)

	res, err = http.DefaultClient.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, res.StatusCode)
	res.Body.Close()

	require.NoError(t, conn.Get(&active, `SELECT COUNT(*) FROM sessions WHERE user_id = $1 AND is_active`, uid))
	assert.Equal(t, 0, active)
}
