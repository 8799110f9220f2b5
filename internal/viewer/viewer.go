// Package viewer opens a generated report in the platform's default
// spreadsheet application.
package viewer

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/agabrys/equateplus-portfolio-details-enhancer/internal/logging"
)

// Open launches the platform file opener for the given path. The viewer
// process is started detached; its outcome is not awaited.
func Open(path string, logger logging.Logger) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s in viewer: %w", path, err)
	}
	logger.Debug("Opened report in viewer", logging.Field{Key: "file", Value: path})
	return nil
}
