package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/quartzsec/rubric/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewServer(":0", nil).Handler)
	t.Cleanup(srv.Close)
	return srv
}

func postJSON(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", bytes.NewBufferString(body))
	require.NoError(t, err)
	return resp
}

func decodeScore(t *testing.T, resp *http.Response) scoreResp {
	t.Helper()
	defer func() { _ = resp.Body.Close() }()
	var out scoreResp
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func TestScoreControlSingleRecord(t *testing.T) {
	srv := newTestServer(t)

	body := `{"id":"PCI.3.4","name":"Encrypt stored card data","description":"Stored cardholder data is encrypted at rest using strong cryptography across every storage location in scope.","guidance":"Encryption of stored data limits the impact of storage compromise.\n1. Identify storage locations.\n2. Apply encryption.\n3. Verify key management."}`
	resp := postJSON(t, srv.URL+"/score/control", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeScore(t, resp)
	assert.Equal(t, "v1", out.StandardVersion)
	require.Len(t, out.Results, 1)
	assert.Len(t, out.Results[0].Dimensions, 4)
}

func TestScoreControlItemsEnvelope(t *testing.T) {
	srv := newTestServer(t)

	body := `{"items":[{"id":"NIST.AC.1"},{"id":"ISO.9.2"}]}`
	resp := postJSON(t, srv.URL+"/score/control", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeScore(t, resp)
	assert.Len(t, out.Results, 2)
}

func TestScoreEvidenceTask(t *testing.T) {
	srv := newTestServer(t)

	body := `{"what_to_collect":"Provide evidence to show access reviews are completed and approved.","how_to_collect":"Maintain the access review report (last 30 days) and approval records."}`
	resp := postJSON(t, srv.URL+"/score/et", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	out := decodeScore(t, resp)
	assert.Equal(t, "v1.2", out.StandardVersion)
	require.Len(t, out.Results, 1)
	assert.Equal(t, schema.VerdictPass, out.Results[0].Verdict)
}

func TestScoreBadJSON(t *testing.T) {
	srv := newTestServer(t)

	for _, path := range []string{"/score/control", "/score/et", "/score/batch"} {
		resp := postJSON(t, srv.URL+path, `{not json`)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, path)

		var out errResp
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out), path)
		_ = resp.Body.Close()
		assert.NotEmpty(t, out.Error, path)
	}
}

func TestScoreBatchEndpoint(t *testing.T) {
	srv := newTestServer(t)

	body := `{"items":[{"id":"ET-1","what_to_collect":"Provide evidence to show backups are completed daily.","how_to_collect":"Provide the backup report for the last 30 days."}]}`
	resp := postJSON(t, srv.URL+"/score/batch", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	defer func() { _ = resp.Body.Close() }()

	var out schema.BatchResult
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Len(t, out.Items, 1)
	assert.Equal(t, "ET-1", out.Items[0].ID)
	assert.Equal(t, schema.BatchSuccess, out.Items[0].Status)
	assert.Equal(t, 1, out.Summary.Processed)
}

func TestScoreBatchInvalidKind(t *testing.T) {
	srv := newTestServer(t)

	resp := postJSON(t, srv.URL+"/score/batch", `{"type":"policy","items":[]}`)
	defer func() { _ = resp.Body.Close() }()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHealthz(t *testing.T) {
	srv := newTestServer(t)

	resp, err := http.Get(srv.URL + "/healthz")
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "ok", out["status"])
}
