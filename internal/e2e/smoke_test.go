package e2e

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmokeFlow(t *testing.T) {
	home := t.TempDir()
	binaryPath := buildBinary(t)
	server := newBackend(t)

	stdout, stderr, err := runRAI(t, binaryPath, home, server.URL, "version")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.NotEmpty(t, stdout)

	pdf := filepath.Join(t.TempDir(), "paper.pdf")
	require.NoError(t, os.WriteFile(pdf, []byte("%PDF-1.4\n%%EOF\n"), 0o644))

	stdout, stderr, err = runRAI(t, binaryPath, home, server.URL, "upload", pdf, "--json")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, `"title": "Smoke Paper"`)

	stdout, stderr, err = runRAI(t, binaryPath, home, server.URL, "ask", "what is it?")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "temp/paper.pdf")

	stdout, stderr, err = runRAI(t, binaryPath, home, server.URL, "session", "end")
	require.NoError(t, err, "stderr: %s", stderr)
	assert.Contains(t, stdout, "Session ended")
}

func newBackend(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /upload", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"filepath":"temp/paper.pdf","vector_path":"vectors/paper"}`)
	})
	mux.HandleFunc("GET /summarize", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"title":"Smoke Paper","authors":"A","abstract":"B","problemStatement":"C","methodology":"D","keyResults":"E","conclusion":"F"}`)
	})
	mux.HandleFunc("POST /ask", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `{"answer":"It is temp/paper.pdf."}`)
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func buildBinary(t *testing.T) string {
	t.Helper()

	binaryPath := filepath.Join(t.TempDir(), "rai-e2e")
	cmd := exec.Command("go", "build", "-o", binaryPath, "./cmd/rai")
	cmd.Dir = repoRoot(t)

	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "build rai binary: %s", string(output))
	return binaryPath
}

func runRAI(t *testing.T, binaryPath, home, baseURL string, args ...string) (string, string, error) {
	t.Helper()

	cmd := exec.Command(binaryPath, args...)
	cmd.Dir = home
	cmd.Env = append(os.Environ(),
		"HOME="+home,
		"RAI_SERVICE_BASE_URL="+baseURL,
		"RAI_SESSION_FINGERPRINT=e2e",
		"RAI_SESSION_BACKEND=file",
		"RAI_CHAT_RESOLVER=http",
	)

	var stdout bytes.Buffer
	var stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	return stdout.String(), stderr.String(), err
}

func repoRoot(t *testing.T) string {
	t.Helper()

	wd, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(wd, "..", ".."))
}
