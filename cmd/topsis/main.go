// SPDX-License-Identifier: MIT

// Command topsis ranks the alternatives of a CSV decision table.
//
//	topsis [flags] <InputDataFile> <Weights> <Impacts> <OutputResultFile>
//
// Example:
//
//	topsis data.csv "1,1,1,2" "+,+,-,+" result.csv
//
// The output file holds the input table plus "Topsis Score" and "Rank".
// Flags must precede the positional arguments, so impact lists starting
// with "-" are read as arguments.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/katalvlaran/lvrank/internal/csvio"
	"github.com/katalvlaran/lvrank/internal/logging"
	"github.com/katalvlaran/lvrank/topsis"
)

const usage = "Usage: topsis [flags] <InputDataFile> <Weights> <Impacts> <OutputResultFile>"

// User-facing messages, one per failure class.
const (
	msgNotFound      = "Input file not found"
	msgUnreadable    = "Unable to read input file"
	msgFewColumns    = "Input file must contain three or more columns"
	msgNonNumeric    = "From 2nd to last columns must contain numeric values only"
	msgWeights       = "Weights must be numeric and comma separated"
	msgWeightSign    = "Weights must be positive numbers"
	msgCountMismatch = "Number of weights, impacts and numeric columns must be the same"
	msgImpacts       = "Impacts must be either + or -"
	msgWriteFailed   = "Unable to write output file"
	msgDone          = "TOPSIS analysis completed successfully"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one invocation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("topsis", flag.ContinueOnError)
	fs.SetOutput(stderr)
	policyFlag := fs.String("policy", topsis.DefaultDegeneratePolicy.String(),
		"score for alternatives equidistant from both ideals (reject, zero, half)")
	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", logging.FormatText, "log format (text, json)")
	logFile := fs.String("log-file", "", "optional log file path")
	fs.Usage = func() {
		fmt.Fprintln(stderr, usage)
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return 1
	}

	pos := fs.Args()
	if len(pos) != 4 {
		return fail(stderr, usage)
	}
	input, weightsArg, impactsArg, output := pos[0], pos[1], pos[2], pos[3]

	policy, err := topsis.ParseDegeneratePolicy(*policyFlag)
	if err != nil {
		return fail(stderr, err.Error())
	}
	logger, cleanup, err := logging.Setup(logging.Config{
		Level:  *logLevel,
		Format: *logFormat,
		File:   *logFile,
		Stderr: stderr,
	})
	if err != nil {
		return fail(stderr, err.Error())
	}
	defer cleanup()

	dm, err := csvio.ReadFile(input)
	if err != nil {
		logger.Debug("read input", slog.String("path", input), slog.Any("error", err))
		return fail(stderr, readMessage(err))
	}
	criteria := len(dm.Columns) - 1

	weights, err := topsis.ParseWeights(weightsArg, 0)
	switch {
	case errors.Is(err, topsis.ErrNonPositiveWeight):
		return fail(stderr, msgWeightSign)
	case err != nil:
		return fail(stderr, msgWeights)
	case len(weights) != criteria:
		return fail(stderr, msgCountMismatch)
	}

	impacts, err := topsis.ParseImpacts(impactsArg, criteria)
	switch {
	case errors.Is(err, topsis.ErrImpactCount):
		return fail(stderr, msgCountMismatch)
	case err != nil:
		return fail(stderr, msgImpacts)
	}

	res, err := topsis.Evaluate(dm, weights, impacts,
		topsis.WithDegeneratePolicy(policy),
		topsis.WithLogger(logger),
	)
	if err != nil {
		return fail(stderr, strings.TrimPrefix(err.Error(), "topsis: "))
	}

	if err := csvio.WriteFile(output, res); err != nil {
		logger.Debug("write output", slog.String("path", output), slog.Any("error", err))
		return fail(stderr, msgWriteFailed)
	}
	logger.Info("result written", slog.String("path", output), slog.Int("alternatives", len(res.Alternatives)))
	fmt.Fprintln(stdout, msgDone)

	return 0
}

// readMessage classifies a csvio.ReadFile failure.
func readMessage(err error) string {
	switch {
	case errors.Is(err, csvio.ErrNotFound):
		return msgNotFound
	case errors.Is(err, csvio.ErrTooFewColumns):
		return msgFewColumns
	case errors.Is(err, topsis.ErrNonNumeric), errors.Is(err, topsis.ErrNonFinite):
		return msgNonNumeric
	default:
		return msgUnreadable
	}
}

func fail(w io.Writer, msg string) int {
	fmt.Fprintf(w, "Error: %s\n", msg)
	return 1
}
