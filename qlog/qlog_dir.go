package qlog

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/asynctls/asynctls/internal/utils"
	"github.com/asynctls/asynctls/logging"
)

// EnvQlogDir is the environment variable that configures the directory used by DefaultTracer.
const EnvQlogDir = "QLOGDIR"

// DefaultTracer creates a qlog file in the qlog directory specified by the QLOGDIR environment variable.
// File names are <session id>_client.qlog.
// Returns nil if QLOGDIR is not set.
func DefaultTracer(_ context.Context, id logging.SessionID) *logging.SessionTracer {
	qlogDir := os.Getenv(EnvQlogDir)
	if qlogDir == "" {
		return nil
	}
	if _, err := os.Stat(qlogDir); os.IsNotExist(err) {
		if err := os.MkdirAll(qlogDir, 0o755); err != nil {
			log.Printf("failed to create qlog dir %s: %v", qlogDir, err)
			return nil
		}
	}
	path := fmt.Sprintf("%s/%s_client.qlog", strings.TrimRight(qlogDir, "/"), id)
	f, err := os.Create(path)
	if err != nil {
		log.Printf("Failed to create qlog file %s: %s", path, err.Error())
		return nil
	}
	return NewSessionTracer(utils.NewBufferedWriteCloser(bufio.NewWriter(f), f), id)
}
