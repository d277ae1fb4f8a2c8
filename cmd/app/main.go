package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/iwtcode/tramGcode/internal/app"
	"github.com/iwtcode/tramGcode/internal/job"
	"github.com/iwtcode/tramGcode/models"
	apperrors "github.com/iwtcode/tramGcode/pkg/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	defaults := job.Default()

	var (
		jobFile = flag.String("job", "", "YAML job file; flags override its values")
		printer = flag.String("printer", defaults.Printer, "printer model: H2D, H2S or H2C")
		temp    = flag.String("temp", "ambient", `bed temperature in °C or "ambient"`)
		rounds  = flag.Int("rounds", defaults.Rounds, "number of measurement rounds (1-3)")
		seconds = flag.Int("time", defaults.Time, "dwell time per point in seconds, same for every round")
		times   = flag.String("times", "", "comma separated dwell time per round, e.g. 60,45,30")
		tip     = flag.Float64("tip", defaults.TipDistance, "indicator tip distance in mm (10-100)")
		probe   = flag.Float64("probe", defaults.ProbeHeight, "probe height in mm (3-50)")
		sound   = flag.Bool("sound", false, "beep at zeroing and after every point")
		outDir  = flag.String("out", "", "output directory (default TRAM_OUTPUT_DIR or .)")
		stdout  = flag.Bool("stdout", false, "print G-code to stdout instead of writing a file")
	)
	flag.Parse()

	j := defaults
	if *jobFile != "" {
		loaded, err := job.Load(*jobFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return apperrors.InvalidInputCode
		}
		j = loaded
	}

	var flagErr error
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "printer":
			j.Printer = *printer
		case "temp":
			t, err := job.ParseTemp(*temp)
			if err != nil {
				flagErr = err
			}
			j.Temp = t
		case "rounds":
			j.Rounds = *rounds
		case "time":
			j.Time = *seconds
			j.Times = nil
		case "times":
			t, err := job.ParseTimes(*times)
			if err != nil {
				flagErr = err
			}
			j.Times = t
		case "tip":
			j.TipDistance = *tip
		case "probe":
			j.ProbeHeight = *probe
		case "sound":
			j.Sound = *sound
		}
	})
	if flagErr != nil {
		fmt.Fprintln(os.Stderr, flagErr)
		return apperrors.InvalidInputCode
	}

	req := app.Request{
		Params:    j.Params(),
		OutputDir: *outDir,
		OnDone: func(path string, r *models.Result) {
			if path != "" {
				printAsJSON(path, r)
			}
		},
	}
	if *stdout {
		req.Stdout = os.Stdout
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := app.Run(ctx, req); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return apperrors.ExitCode(err)
	}
	return 0
}

// printAsJSON выводит путь к файлу и метаданные результата
func printAsJSON(path string, r *models.Result) {
	jsonData, err := json.MarshalIndent(struct {
		Path string `json:"path"`
		*models.Result
	}{path, r}, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to marshal result: %v\n", err)
		return
	}
	fmt.Println(string(jsonData))
}
