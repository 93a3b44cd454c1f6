package application

import (
	"crypto/sha1"
	"encoding/hex"
	"os"
	"strconv"
	"strings"
)

// ResolveSessionID derives a stable terminal-session id from the workspace
// and the window fingerprint. Same pair, same id.
func ResolveSessionID(workspaceRoot, windowFingerprint string) string {
	raw := strings.TrimSpace(workspaceRoot) + "|" + strings.TrimSpace(windowFingerprint)
	hash := sha1.Sum([]byte(raw))
	return hex.EncodeToString(hash[:])
}

// DefaultWindowFingerprint identifies the invoking shell. Commands run from the
// same terminal window share a parent process.
func DefaultWindowFingerprint() string {
	if term := strings.TrimSpace(os.Getenv("TERM_SESSION_ID")); term != "" {
		return term
	}
	return "ppid:" + strconv.Itoa(os.Getppid())
}
