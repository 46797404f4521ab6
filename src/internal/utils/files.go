package utils

import (
	"io"

	"github.com/keen-tools/blocklist-gen/src/internal/log"
)

// CloseOrWarn closes c and logs a warning through logger if that fails.
func CloseOrWarn(c io.Closer, logger *log.Logger) {
	if err := c.Close(); err != nil {
		logger.Warnf("Failed to close file: %v", err)
	}
}
