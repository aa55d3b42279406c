package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"spacedock/config"
	"spacedock/spacetraders"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockAPI(t *testing.T) *httptest.Server {
	t.Helper()

	r := chi.NewRouter()
	r.Get("/my/agent", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Header.Get("Authorization") != "Bearer cli-token" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprintln(w, `{"error":{"message":"Missing or invalid token.","code":401}}`)
			return
		}
		fmt.Fprintln(w, `{"data":{"accountId":"a1","symbol":"CLIAGENT","headquarters":"X1-DF55-20250Z","credits":175000}}`)
	})
	r.Get("/systems/{system}/waypoints/{waypoint}", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"data":{"systemSymbol":"%s","symbol":"%s","type":"PLANET","x":-1,"y":3}}`+"\n",
			chi.URLParam(r, "system"), chi.URLParam(r, "waypoint"))
	})
	r.Post("/register", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusConflict)
		fmt.Fprintln(w, `{"error":{"message":"Agent symbol already exists","code":4001,"data":null}}`)
	})

	ts := httptest.NewServer(r)
	t.Cleanup(ts.Close)
	return ts
}

// writeEnv writes a settings file pointing at ts and returns its path and the
// config path it names.
func writeEnv(t *testing.T, ts *httptest.Server, extra ...string) (string, string) {
	t.Helper()

	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	lines := append([]string{
		"BASE_URL=" + ts.URL,
		"CONFIG_PATH=" + configPath,
		"TOKEN_FILE=" + filepath.Join(dir, "token.secret"),
		"LOG_LEVEL=error",
	}, extra...)

	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte(strings.Join(lines, "\n")+"\n"), 0o600))
	return envFile, configPath
}

func execute(args ...string) (string, error) {
	out := &bytes.Buffer{}
	cmd := newRootCmd()
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestDefaultRunUsesSavedToken(t *testing.T) {
	ts := newMockAPI(t)
	envFile, configPath := writeEnv(t, ts)
	require.NoError(t, config.WriteConfigFile(configPath, config.Data{Token: "cli-token"}))

	out, err := execute("--env", envFile)
	require.NoError(t, err)

	assert.Contains(t, out, `"symbol": "CLIAGENT"`)
	assert.Contains(t, out, `"systemSymbol": "X1-DF55"`)
	assert.Contains(t, out, `"symbol": "`+defaultWaypoint+`"`)
}

func TestAgentFallsBackToBootstrapToken(t *testing.T) {
	ts := newMockAPI(t)
	envFile, _ := writeEnv(t, ts, "SPACETRADERS_TOKEN=cli-token")

	out, err := execute("--env", envFile, "agent")
	require.NoError(t, err)
	assert.Contains(t, out, `"credits": 175000`)
}

func TestAgentWithoutAnyToken(t *testing.T) {
	ts := newMockAPI(t)
	envFile, _ := writeEnv(t, ts)

	_, err := execute("--env", envFile, "agent")
	assert.True(t, errors.Is(err, spacetraders.MissingTokenError))
}

func TestWaypointRejectsInvalidSymbol(t *testing.T) {
	ts := newMockAPI(t)
	envFile, _ := writeEnv(t, ts, "SPACETRADERS_TOKEN=cli-token")

	_, err := execute("--env", envFile, "waypoint", "X1")
	assert.True(t, errors.Is(err, spacetraders.InvalidWaypointError))

	out, err := execute("--env", envFile, "waypoint", "AB-12-CD-34")
	require.NoError(t, err)
	assert.Contains(t, out, `"systemSymbol": "AB-12"`)
}

func TestRegisterAlreadyExists(t *testing.T) {
	ts := newMockAPI(t)
	envFile, configPath := writeEnv(t, ts)

	_, err := execute("--env", envFile, "register", "CLIAGENT", "astro")

	var badRequest *spacetraders.BadRequestError
	require.True(t, errors.As(err, &badRequest))
	assert.Equal(t, 4001, badRequest.Info.Code)

	_, statErr := os.Stat(configPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestRegisterUnknownFaction(t *testing.T) {
	ts := newMockAPI(t)
	envFile, _ := writeEnv(t, ts)

	_, err := execute("--env", envFile, "register", "CLIAGENT", "pirates")
	assert.True(t, errors.Is(err, spacetraders.InvalidFactionError))
}

func TestFactions(t *testing.T) {
	ts := newMockAPI(t)
	envFile, _ := writeEnv(t, ts)

	out, err := execute("--env", envFile, "factions")
	require.NoError(t, err)
	assert.Equal(t, "COSMIC\nVOID\nGALACTIC\nQUANTUM\nDOMINION\nASTRO\nCORSAIRS\n", out)
}
