package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/raysh454/compliscan/internal/cli"
	"github.com/raysh454/compliscan/internal/demoserver"
)

// setup starts a stub scanning service and writes a config file pointing at it.
func setup(t *testing.T) (cfgPath string, ts *httptest.Server) {
	t.Helper()
	ts = httptest.NewServer(demoserver.NewDemoServer(demoserver.DefaultConfig(), nil))
	t.Cleanup(ts.Close)

	dir := t.TempDir()
	cfgPath = filepath.Join(dir, "compliscan.yaml")
	body := fmt.Sprintf("service:\n  endpoint: %s/api/analyze\n  timeout: 10s\nlogger:\n  level: error\n", ts.URL)
	require.NoError(t, os.WriteFile(cfgPath, []byte(body), 0o600))
	return cfgPath, ts
}

func run(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = cli.Execute(context.Background(), args, &out, &errOut)
	return code, out.String(), errOut.String()
}

// ─── version ───────────────────────────────────────────────────────────

func TestVersionCommand(t *testing.T) {
	t.Parallel()
	code, out, _ := run(t, "version")
	require.Equal(t, 0, code)
	assert.Equal(t, "compliscan version "+cli.Version+"\n", out)
}

func TestVersionFlag(t *testing.T) {
	t.Parallel()
	code, out, _ := run(t, "--version")
	require.Equal(t, 0, code)
	assert.Contains(t, out, "compliscan version "+cli.Version)
}

func TestUnknownCommand(t *testing.T) {
	t.Parallel()
	code, _, errOut := run(t, "frobnicate")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unknown command")
}

// ─── scan ──────────────────────────────────────────────────────────────

func TestScan_TextOutput(t *testing.T) {
	t.Parallel()
	cfg, _ := setup(t)

	code, out, errOut := run(t, "--config", cfg, "scan", "  example.com ")

	require.Equal(t, 0, code, errOut)
	assert.Contains(t, out, "Score: 68/100 [WARNING]")
	assert.Contains(t, out, "Pages scanned: 4")
	assert.Contains(t, errOut, "Analyzing https://example.com ...")
	assert.NotContains(t, out, "\x1b[", "no colors unless asked for")
}

func TestScan_CleanSiteShowsNoIssuesCard(t *testing.T) {
	t.Parallel()
	cfg, _ := setup(t)

	code, out, _ := run(t, "--config", cfg, "scan", "clean.example.com")

	require.Equal(t, 0, code)
	assert.Contains(t, out, "No issues detected")
}

func TestScan_JSONOutput(t *testing.T) {
	t.Parallel()
	cfg, ts := setup(t)

	code, out, errOut := run(t, "--config", cfg, "scan", "--format", "json", "example.com")
	require.Equal(t, 0, code, errOut)

	var doc struct {
		ID     string `json:"id"`
		URL    string `json:"url"`
		Result struct {
			Score int `json:"score"`
		} `json:"result"`
		View struct {
			Cards []struct {
				Image *struct {
					Src string `json:"src"`
				} `json:"image"`
			} `json:"cards"`
		} `json:"view"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &doc))
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "https://example.com", doc.URL)
	assert.Equal(t, 68, doc.Result.Score)
	require.NotEmpty(t, doc.View.Cards)
	require.NotNil(t, doc.View.Cards[0].Image)
	assert.True(t, strings.HasPrefix(doc.View.Cards[0].Image.Src, ts.URL+"/screenshots/"))
}

func TestScan_YAMLOutput(t *testing.T) {
	t.Parallel()
	cfg, _ := setup(t)

	code, out, errOut := run(t, "--config", cfg, "scan", "-f", "yaml", "example.com")
	require.Equal(t, 0, code, errOut)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	assert.Equal(t, "https://example.com", doc["url"])
	result, ok := doc["result"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 68, result["score"])
}

func TestScan_HTMLToFile(t *testing.T) {
	t.Parallel()
	cfg, _ := setup(t)
	outPath := filepath.Join(t.TempDir(), "report.html")

	code, out, errOut := run(t, "--config", cfg, "scan", "--format", "html", "--output", outPath, "example.com")
	require.Equal(t, 0, code, errOut)

	assert.Empty(t, out)
	assert.Contains(t, errOut, "Report written to "+outPath)
	raw, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `id="resultsSection"`)
	assert.Contains(t, string(raw), `class="issue-item critical"`)
}

func TestScan_ServiceFailureIsReportedOnce(t *testing.T) {
	t.Parallel()
	cfg, _ := setup(t)

	code, out, errOut := run(t, "--config", cfg, "scan", "broken.example.com")

	assert.Equal(t, 1, code)
	assert.Empty(t, out)
	assert.Contains(t, errOut, "500")
	assert.Contains(t, errOut, "Internal Error")
	assert.Equal(t, 1, strings.Count(errOut, "Error:"))
}

func TestScan_EmptyInput(t *testing.T) {
	t.Parallel()
	cfg, _ := setup(t)

	code, _, errOut := run(t, "--config", cfg, "scan", "   ")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "please enter a valid URL")
	assert.NotContains(t, errOut, "Analyzing", "empty input must not start a scan")
}

func TestScan_UnsupportedFormat(t *testing.T) {
	t.Parallel()
	cfg, _ := setup(t)

	code, _, errOut := run(t, "--config", cfg, "scan", "--format", "pdf", "example.com")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, `unsupported format "pdf"`)
}

func TestScan_RequiresExactlyOneURL(t *testing.T) {
	t.Parallel()
	cfg, _ := setup(t)

	code, _, _ := run(t, "--config", cfg, "scan")
	assert.Equal(t, 1, code)

	code, _, _ = run(t, "--config", cfg, "scan", "a.com", "b.com")
	assert.Equal(t, 1, code)
}

func TestScan_MissingConfigFile(t *testing.T) {
	t.Parallel()
	code, _, errOut := run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "scan", "example.com")

	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "error reading config file")
}

// ─── serve ─────────────────────────────────────────────────────────────

func TestServe_StopsWhenContextEnds(t *testing.T) {
	t.Parallel()
	cfg, _ := setup(t)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	var out, errOut bytes.Buffer
	code := cli.Execute(ctx, []string{"--config", cfg, "serve", "--listen", "127.0.0.1:0"}, &out, &errOut)

	assert.Equal(t, 0, code, errOut.String())
}
