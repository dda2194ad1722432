// Command evaluate computes the metrics of one deal and prints them as JSON.
//
//	evaluate -data '{"propertySize":1189,...}'
//	echo '{...}' | evaluate -convention level-annuity -pretty
//
// Exit status is 0 when every metric is defined, 2 when some are undefined
// and 1 when the input is rejected.
package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"reanalyzer/internal/config"
	"reanalyzer/internal/engine"
	"reanalyzer/internal/logger"
)

const (
	exitOK         = 0
	exitInvalid    = 1
	exitIncomplete = 2
)

func main() {
	logger.Init(os.Getenv("ENV"), os.Getenv("LOG_LEVEL"))
	code := run(os.Args[1:], os.Stdin, os.Stdout)
	logger.Sync()
	os.Exit(code)
}

func run(args []string, stdin io.Reader, stdout io.Writer) int {
	log := logger.Named("evaluate")

	fs := flag.NewFlagSet("evaluate", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	dataStr := fs.String("data", "", "JSON input payload (read from stdin when empty)")
	policyFile := fs.String("policy", os.Getenv("POLICY_FILE"), "YAML policy file")
	convention := fs.String("convention", "", "Cash-flow convention: workbook or level-annuity")
	projectionYears := fs.Int("projection-years", -1, "Operating cash-flow horizon for the workbook convention (0 uses the full tenure)")
	pretty := fs.Bool("pretty", false, "Indent the JSON output")
	if err := fs.Parse(args); err != nil {
		log.Errorw("invalid arguments", "error", err)
		return exitInvalid
	}

	policy, err := config.LoadPolicy(*policyFile)
	if err != nil {
		log.Errorw("invalid policy", "error", err)
		return exitInvalid
	}
	if *convention != "" {
		if policy.Convention, err = engine.ParseConvention(*convention); err != nil {
			log.Errorw("invalid convention", "error", err)
			return exitInvalid
		}
	}
	if *projectionYears >= 0 {
		policy.ProjectionYears = *projectionYears
	}

	calc, err := engine.NewCalculator(policy)
	if err != nil {
		log.Errorw("invalid policy", "error", err)
		return exitInvalid
	}

	var src io.Reader = stdin
	if *dataStr != "" {
		src = strings.NewReader(*dataStr)
	}
	in, err := decodeInput(src)
	if err != nil {
		log.Errorw("invalid input", "error", err)
		return exitInvalid
	}

	res, err := calc.Evaluate(in)
	if err != nil {
		var invalid *engine.InvalidInputError
		if errors.As(err, &invalid) {
			log.Errorw("invalid input", "field", invalid.Field, "reason", invalid.Reason)
		} else {
			log.Errorw("evaluation failed", "error", err)
		}
		return exitInvalid
	}

	if err := writeMetrics(stdout, res.Metrics, *pretty); err != nil {
		log.Errorw("failed to write output", "error", err)
		return exitInvalid
	}

	if !res.Complete() {
		for _, issue := range res.Issues {
			log.Warnw("metric undefined", "metric", issue.Metric, "code", issue.Code, "reason", issue.Message)
		}
		return exitIncomplete
	}
	return exitOK
}

func decodeInput(r io.Reader) (engine.Input, error) {
	var in engine.Input
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return in, errors.New("no input provided")
		}
		return in, fmt.Errorf("failed to decode input: %w", err)
	}
	return in, nil
}

func writeMetrics(w io.Writer, m engine.Metrics, pretty bool) error {
	data, err := json.Marshal(m)
	if err != nil {
		return err
	}
	if pretty {
		var buf bytes.Buffer
		if err := json.Indent(&buf, data, "", "  "); err != nil {
			return err
		}
		data = buf.Bytes()
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}
