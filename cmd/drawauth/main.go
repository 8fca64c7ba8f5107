// Command drawauth enrolls and verifies freehand drawings from files.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	"github.com/high-horse/drawauth"
	"github.com/high-horse/drawauth/config"
	"github.com/high-horse/drawauth/dhash"
	"github.com/high-horse/drawauth/internal/logging"
	"github.com/high-horse/drawauth/match"
)

const (
	exitOK       = 0
	exitError    = 1
	exitRejected = 2
)

// errRejected signals a completed verification that did not pass.
var errRejected = errors.New("rejected")

type app struct {
	cfg    *config.Config
	logger *slog.Logger
	out    io.Writer
	json   bool
	limit  int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("drawauth", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() { printUsage(stderr) }
	configPath := fs.String("config", os.Getenv("DRAWAUTH_CONFIG"), "TOML configuration file")
	threshold := fs.Int("threshold", 0, "override the configured acceptance threshold (0-64)")
	asJSON := fs.Bool("json", false, "print JSON instead of text")
	limit := fs.Int("limit", 0, "identify: maximum number of candidates (0 = all)")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() == 0 {
		printUsage(stderr)
		return exitError
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	thresholdSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "threshold" {
			thresholdSet = true
		}
	})
	if thresholdSet {
		cfg.Threshold = *threshold
		if err := cfg.Validate(); err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return exitError
		}
	}

	w, closer, err := logging.Writer(cfg.Logging)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitError
	}
	defer closer.Close()

	a := &app{
		cfg:    cfg,
		logger: logging.New(cfg.Logging, w),
		out:    stdout,
		json:   *asJSON,
		limit:  *limit,
	}

	cmd, rest := fs.Arg(0), fs.Args()[1:]
	switch cmd {
	case "enroll":
		err = a.enroll(rest)
	case "verify":
		err = a.verify(rest)
	case "identify":
		err = a.identify(rest)
	case "distance":
		err = a.distance(rest)
	case "inspect":
		err = a.inspect(rest)
	case "help", "-h", "--help":
		printUsage(stdout)
		return exitOK
	default:
		fmt.Fprintf(stderr, "Unknown command: %s\n", cmd)
		printUsage(stderr)
		return exitError
	}

	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errRejected):
		return exitRejected
	default:
		fmt.Fprintln(stderr, color.RedString("Error: %v", err))
		return exitError
	}
}

func printUsage(w io.Writer) {
	yellow := color.New(color.FgYellow)

	fmt.Fprintln(w, "Usage: drawauth [flags] <command> [args]")
	fmt.Fprintln(w)
	yellow.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  enroll <drawing>                 Print the fingerprint of a drawing")
	fmt.Fprintln(w, "  verify <drawing> <fingerprint>   Compare a drawing with a stored fingerprint")
	fmt.Fprintln(w, "  identify <drawing> <gallery>     Rank the gallery subjects matching a drawing")
	fmt.Fprintln(w, "  distance <fingerprint> <fingerprint>")
	fmt.Fprintln(w, "                                   Compare two stored fingerprints")
	fmt.Fprintln(w, "  inspect <drawing> <dir>          Write pipeline artefacts to dir")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "A drawing is an image file or a file holding base64 canvas output,")
	fmt.Fprintln(w, "optionally with a data-URI header. Use - to read from stdin.")
	fmt.Fprintln(w)
	yellow.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -config <file>     TOML configuration (env DRAWAUTH_CONFIG)")
	fmt.Fprintln(w, "  -threshold <n>     Acceptance threshold override, 0-64")
	fmt.Fprintln(w, "  -limit <n>         identify: maximum candidates")
	fmt.Fprintln(w, "  -json              JSON output")
}

func wantArgs(args []string, n int, usage string) error {
	if len(args) != n {
		return fmt.Errorf("usage: drawauth %s", usage)
	}
	return nil
}

func (a *app) print(v interface{}, text string) error {
	if a.json {
		enc := json.NewEncoder(a.out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	_, err := fmt.Fprintln(a.out, text)
	return err
}

// transparency returns a logger writing artefacts to the configured
// directory, or nil when none is configured.
func (a *app) transparency() (*drawauth.TransparencyLogger, error) {
	dir := a.cfg.Transparency.Dir
	if dir == "" {
		return nil, nil
	}
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", dir, err)
	}
	return drawauth.NewTransparencyLogger(&dirContents{dir: dir}), nil
}

func (a *app) enroll(args []string) error {
	if err := wantArgs(args, 1, "enroll <drawing>"); err != nil {
		return err
	}
	start := time.Now()

	data, err := readDrawing(args[0])
	if err != nil {
		return err
	}
	l, err := a.transparency()
	if err != nil {
		return err
	}
	f, err := drawauth.NewFingerprintCreator(l).FingerprintImage(data)
	if err != nil {
		return err
	}
	a.logger.Info("drawing enrolled", "source", args[0], "fingerprint", f.Hex())

	return a.print(EnrollResponse{Fingerprint: f.Hex(), Elapsed: time.Since(start).String()}, f.Hex())
}

func (a *app) verify(args []string) error {
	if err := wantArgs(args, 2, "verify <drawing> <fingerprint>"); err != nil {
		return err
	}
	start := time.Now()
	attempt := uuid.NewString()

	stored, err := dhash.ParseHex(args[1])
	if err != nil {
		return err
	}
	data, err := readDrawing(args[0])
	if err != nil {
		return err
	}
	l, err := a.transparency()
	if err != nil {
		return err
	}
	res, err := drawauth.NewMatcher(l, stored, a.cfg.Threshold).MatchImage(data)
	if err != nil {
		a.logger.Warn("verification failed", "attempt", attempt, "error", err)
		return err
	}
	a.logger.Info("verification attempt",
		"attempt", attempt,
		"distance", res.Distance,
		"match_percentage", res.MatchPercentage,
		"threshold", res.Threshold,
		"accepted", res.Accepted)

	resp := VerifyResponse{
		Result:     res,
		Confidence: confidence(res),
		Required:   fmt.Sprintf(">=%.1f%%", match.PercentageFor(res.Threshold)),
		Message:    res.String(),
		Elapsed:    time.Since(start).String(),
	}
	text := color.GreenString("%s", resp.Message)
	if !res.Accepted {
		text = color.RedString("%s", resp.Message)
	}
	if err := a.print(resp, text); err != nil {
		return err
	}
	if !res.Accepted {
		return errRejected
	}
	return nil
}

func (a *app) identify(args []string) error {
	if err := wantArgs(args, 2, "identify <drawing> <gallery>"); err != nil {
		return err
	}
	start := time.Now()

	gallery, err := loadGallery(args[1])
	if err != nil {
		return err
	}
	data, err := readDrawing(args[0])
	if err != nil {
		return err
	}
	l, err := a.transparency()
	if err != nil {
		return err
	}
	probe, err := drawauth.NewFingerprintCreator(l).FingerprintImage(data)
	if err != nil {
		return err
	}
	candidates := match.Rank(probe, gallery, a.cfg.Threshold, a.limit)
	a.logger.Info("identification", "searched", len(gallery), "candidates", len(candidates))

	resp := IdentifyResponse{Candidates: candidates, Searched: len(gallery), Elapsed: time.Since(start).String()}
	switch {
	case a.json:
		if err := a.print(resp, ""); err != nil {
			return err
		}
	case len(candidates) == 0:
		fmt.Fprintln(a.out, color.RedString("no subject matched"))
	default:
		for _, c := range candidates {
			fmt.Fprintf(a.out, "%-20s distance %2d  match %5.1f%%\n", c.Subject, c.Distance, c.MatchPercentage)
		}
	}
	if len(candidates) == 0 {
		return errRejected
	}
	return nil
}

func (a *app) distance(args []string) error {
	if err := wantArgs(args, 2, "distance <fingerprint> <fingerprint>"); err != nil {
		return err
	}
	x, err := dhash.ParseHex(args[0])
	if err != nil {
		return err
	}
	y, err := dhash.ParseHex(args[1])
	if err != nil {
		return err
	}
	res := match.Compare(x, y, a.cfg.Threshold)
	return a.print(DistanceResponse{Result: res}, res.String())
}

func (a *app) inspect(args []string) error {
	if err := wantArgs(args, 2, "inspect <drawing> <dir>"); err != nil {
		return err
	}
	dir := args[1]
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	data, err := readDrawing(args[0])
	if err != nil {
		return err
	}
	l := drawauth.NewTransparencyLogger(&dirContents{dir: dir})
	f, err := drawauth.NewFingerprintCreator(l).FingerprintImage(data)
	if err != nil {
		return err
	}
	a.logger.Debug("artefacts written", "dir", dir)
	return a.print(EnrollResponse{Fingerprint: f.Hex()}, f.Hex())
}
