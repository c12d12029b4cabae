package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
)

// runReport executes the primary workflow: authenticate against the array,
// then run the command battery sequentially, appending one formatted sheet
// per command and saving the workbook after every sheet. Any failure at any
// step terminates the run; sheets already saved stay on disk.
func runReport() error {
	commands, err := battery()
	if err != nil {
		return fmt.Errorf("failed to read manifest: %w", err)
	}

	if err := ensureOutputDir(cfgOutputDir); err != nil {
		return fmt.Errorf("failed to create output dir: %w", err)
	}
	reportPath, logPath := reportPaths(cfgOutputDir, cfgArray, time.Now())
	logger, closer, err := newRunLogger(logPath, cfgVerbose)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer func() { _ = closer.Close() }()

	client := newArrayClient(cfgArray, logger)
	sess, err := authenticateFunc(client, cfgUser, cfgPassword)
	if err != nil {
		logger.Error(err.Error())
		return err
	}
	logger.Info("authenticated", "host", sess.Host, "role", sess.Role)

	report := newReportWriter(reportPath, logger)
	progress := color.New(color.FgCyan)
	var written []sheetStatus

	for i, name := range commands {
		_, _ = progress.Fprintf(os.Stderr, "Executing [%d/%d] %s\n", i+1, len(commands), name)
		logger.Debug("gathering command information", "command", name, "host", cfgArray)

		result, err := runCommandFunc(client, sess, name)
		if err != nil {
			logger.Error(err.Error())
			return err
		}
		if err := report.addSheet(name, result); err != nil {
			logger.Error(err.Error())
			return err
		}
		rows := len(result)
		if name == summaryCommand {
			rows = 1
		}
		cat, _ := classify(name)
		written = append(written, sheetStatus{name: name, rows: rows, category: cat})
	}

	logger.Info("successfully generated report", "path", reportPath)
	printRunSummary(os.Stdout, written)
	_, _ = color.New(color.FgGreen).Fprintf(os.Stderr, "Done. Report written to %s\n", reportPath)
	return nil
}
