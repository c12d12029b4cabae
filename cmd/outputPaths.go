package cmd

import (
	"os"
	"path/filepath"
	"time"
)

// timestampLayout matches the established SVCheck artifact naming.
const timestampLayout = "2006-01-02_15-04-05"

// reportPaths derives the per-run artifact names under outputDir: one report
// workbook and one log file, both keyed by target host and generation time.
func reportPaths(outputDir, host string, ts time.Time) (reportPath, logPath string) {
	base := "SVCheck_" + host + "_" + ts.Format(timestampLayout)
	return filepath.Join(outputDir, base+".xlsx"), filepath.Join(outputDir, base+".log")
}

// ensureOutputDir creates the output directory on demand.
func ensureOutputDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
