package logging

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	logFileName = "keyroute.log"
	logFilePerm = 0o600
	logDirPerm  = 0o755
)

// OpenLogFile opens the append-only log file inside dir. When the existing
// file is larger than maxSizeMB it is moved to keyroute.log.1 first, replacing
// any older backup. A maxSizeMB of zero disables the size check.
func OpenLogFile(dir string, maxSizeMB int) (*os.File, error) {
	if err := os.MkdirAll(dir, logDirPerm); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	path := filepath.Join(dir, logFileName)
	if maxSizeMB > 0 {
		if info, err := os.Stat(path); err == nil && info.Size() > int64(maxSizeMB)*1024*1024 {
			if err := os.Rename(path, path+".1"); err != nil {
				return nil, fmt.Errorf("failed to rotate log file: %w", err)
			}
		}
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, logFilePerm)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, nil
}

// LogFilePath returns where OpenLogFile writes inside dir.
func LogFilePath(dir string) string {
	return filepath.Join(dir, logFileName)
}
