package logging

import (
	"crypto/rand"
	"encoding/hex"
	"time"
)

// GenerateRunID creates an identifier for one CLI invocation, attached to
// every log line as run_id.
// Format: YYYYMMDD_HHMMSS_xxxx (timestamp + 4 random hex chars)
func GenerateRunID() string {
	random := make([]byte, 2)
	_, _ = rand.Read(random)
	return time.Now().Format("20060102_150405") + "_" + hex.EncodeToString(random)
}
