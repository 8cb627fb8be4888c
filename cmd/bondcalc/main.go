// Command bondcalc prices fixed-rate bonds, solves yield-to-maturity
// and computes DV01 from JSON bond descriptions.
//
// Usage:
//
//	bondcalc <command> -input <path> [-config <toml>] [-v]
//
// Input is a JSON object (or array of objects) read from -input or
// stdin. Results are written to stdout as JSON.
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danielyekini/FinCraftr/bond"
	"github.com/danielyekini/FinCraftr/instruments/bonds"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

type bondInput struct {
	TaskID     string  `json:"task_id,omitempty"`
	Face       float64 `json:"face"`
	CouponRate float64 `json:"coupon_rate"`
	Frequency  int     `json:"frequency"`
	Years      float64 `json:"years"`

	// FlatRate discounts every cashflow at a single zero rate.
	FlatRate *float64 `json:"flat_rate,omitempty"`
	// ZeroCurve supplies pillar zero rates, linearly interpolated.
	// Ignored when FlatRate is set.
	ZeroCurve []curvePillar `json:"zero_curve,omitempty"`

	// Price is the traded price (ytm and dv01 commands).
	Price *float64 `json:"price,omitempty"`
	// Yield is the reference flat yield for dv01; solved from Price
	// when omitted.
	Yield *float64 `json:"yield,omitempty"`
}

type curvePillar struct {
	Time float64 `json:"time"`
	Rate float64 `json:"rate"`
}

type bondOutput struct {
	TaskID     string              `json:"task_id,omitempty"`
	Price      *decimal.Decimal    `json:"price,omitempty"`
	Yield      *float64            `json:"yield,omitempty"`
	Iterations int                 `json:"iterations,omitempty"`
	Method     string              `json:"method,omitempty"`
	DV01       *decimal.Decimal    `json:"dv01,omitempty"`
	Schedule   []bonds.ScheduleRow `json:"schedule,omitempty"`
	Error      string              `json:"error,omitempty"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		usage(stderr)
		return 2
	}

	cmd := strings.ToLower(strings.TrimSpace(args[0]))
	switch cmd {
	case "price", "ytm", "dv01", "schedule":
		return runCommand(cmd, args[1:], stdin, stdout, stderr)
	case "-h", "--help", "help":
		usage(stdout)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", args[0])
		usage(stderr)
		return 2
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: bondcalc <command> [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  price     Present value under a flat rate or pillar zero curve")
	fmt.Fprintln(w, "  ytm       Yield-to-maturity from a traded price")
	fmt.Fprintln(w, "  dv01      One-basis-point yield sensitivity")
	fmt.Fprintln(w, "  schedule  Cashflow schedule with cent-rounded amounts")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run `bondcalc <command> -h` for command-specific help.")
}

func runCommand(cmd string, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("bondcalc "+cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	inputPath := fs.String("input", "", "JSON input path (reads stdin if omitted)")
	configPath := fs.String("config", "", "TOML solver configuration path")
	verbose := fs.Bool("v", false, "Debug logging")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	logger := logrus.New()
	logger.SetOutput(stderr)
	if *verbose {
		logger.SetLevel(logrus.DebugLevel)
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Error(err)
		return 1
	}

	raw, err := readInput(*inputPath, stdin)
	if err != nil {
		logger.Errorf("read input: %v", err)
		return 1
	}

	inputs, isArray, err := parseInputs(raw)
	if err != nil {
		logger.Errorf("parse JSON: %v", err)
		return 1
	}

	hadError := false
	outputs := make([]bondOutput, 0, len(inputs))
	for _, in := range inputs {
		out, err := process(cmd, in, cfg, logger)
		if err != nil {
			hadError = true
			logger.WithField("task_id", in.TaskID).Error(err)
			outputs = append(outputs, bondOutput{TaskID: in.TaskID, Error: err.Error()})
			continue
		}
		outputs = append(outputs, out)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	if isArray {
		err = enc.Encode(outputs)
	} else {
		err = enc.Encode(outputs[0])
	}
	if err != nil {
		logger.Errorf("encode output: %v", err)
		return 1
	}
	if hadError {
		return 1
	}
	return 0
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if strings.TrimSpace(path) != "" {
		return os.ReadFile(path)
	}
	return io.ReadAll(stdin)
}

func parseInputs(raw []byte) ([]bondInput, bool, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) == 0 {
		return nil, false, fmt.Errorf("empty input")
	}

	if trimmed[0] == '[' {
		var inputs []bondInput
		if err := json.Unmarshal(raw, &inputs); err != nil {
			return nil, true, err
		}
		if len(inputs) == 0 {
			return nil, true, fmt.Errorf("empty input array")
		}
		return inputs, true, nil
	}

	var in bondInput
	if err := json.Unmarshal(raw, &in); err != nil {
		return nil, false, err
	}
	return []bondInput{in}, false, nil
}

func process(cmd string, in bondInput, cfg calcConfig, logger *logrus.Logger) (bondOutput, error) {
	b := bond.Bond{
		Face:       in.Face,
		CouponRate: in.CouponRate,
		Frequency:  in.Frequency,
		Years:      in.Years,
	}

	switch cmd {
	case "schedule":
		flows, err := bond.Cashflows(b)
		if err != nil {
			return bondOutput{}, err
		}
		return bondOutput{TaskID: in.TaskID, Schedule: bonds.FromCashflows(flows)}, nil

	case "price":
		curve, err := buildCurve(in)
		if err != nil {
			return bondOutput{}, err
		}
		pv, err := bond.Price(b, curve)
		if err != nil {
			return bondOutput{}, err
		}
		price := decimal.NewFromFloat(pv).Round(6)
		return bondOutput{TaskID: in.TaskID, Price: &price}, nil

	case "ytm":
		if in.Price == nil {
			return bondOutput{}, fmt.Errorf("ytm: price is required")
		}
		res, err := bond.SolveYield(*in.Price, b, cfg.solverConfig())
		if err != nil {
			return bondOutput{}, err
		}
		logger.WithFields(logrus.Fields{
			"iterations": res.Iterations,
			"method":     res.Method,
		}).Debug("yield solved")
		return bondOutput{
			TaskID:     in.TaskID,
			Yield:      &res.Yield,
			Iterations: res.Iterations,
			Method:     string(res.Method),
		}, nil

	case "dv01":
		y, err := referenceYield(in, b, cfg)
		if err != nil {
			return bondOutput{}, err
		}
		res, err := bond.ComputeDV01(bond.DV01Input{Bond: b, Yield: y, Bump: cfg.bump()})
		if err != nil {
			return bondOutput{}, err
		}
		dv01 := decimal.NewFromFloat(res.DV01).Round(6)
		return bondOutput{TaskID: in.TaskID, DV01: &dv01, Yield: &y}, nil
	}

	return bondOutput{}, fmt.Errorf("unknown command %q", cmd)
}

func buildCurve(in bondInput) (bond.DiscountCurve, error) {
	if in.FlatRate != nil {
		return bond.FlatCurve{Rate: *in.FlatRate}, nil
	}
	if len(in.ZeroCurve) == 0 {
		return nil, fmt.Errorf("price: flat_rate or zero_curve is required")
	}
	times := make([]float64, len(in.ZeroCurve))
	zeroRates := make([]float64, len(in.ZeroCurve))
	for i, p := range in.ZeroCurve {
		times[i] = p.Time
		zeroRates[i] = p.Rate
	}
	return bond.NewPillarCurve(times, zeroRates)
}

func referenceYield(in bondInput, b bond.Bond, cfg calcConfig) (float64, error) {
	if in.Yield != nil {
		return *in.Yield, nil
	}
	if in.Price == nil {
		return 0, fmt.Errorf("dv01: yield or price is required")
	}
	res, err := bond.SolveYield(*in.Price, b, cfg.solverConfig())
	if err != nil {
		return 0, err
	}
	return res.Yield, nil
}
