// Command ratecalc computes elementary rate transforms: discount
// factors, effective annual rates and nominal/continuous conversions.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/danielyekini/FinCraftr/rates"
)

func main() {
	op := flag.String("op", "df", "Operation: df | ear | nominal-to-cont | cont-to-nominal")
	rate := flag.Float64("rate", 0, "Rate as a decimal (0.05 == 5%)")
	m := flag.Int("m", 1, "Compounding periods per year")
	t := flag.Float64("t", 1, "Time in years (df only)")
	flag.Parse()

	if *m <= 0 {
		fmt.Fprintln(os.Stderr, "ratecalc: -m must be positive")
		os.Exit(2)
	}

	switch *op {
	case "df":
		fmt.Printf("%.10f\n", rates.DiscountFactor(*rate, *m, *t))
	case "ear":
		fmt.Printf("%.10f\n", rates.EffectiveAnnualRate(*rate, *m))
	case "nominal-to-cont":
		fmt.Printf("%.10f\n", rates.NominalToContinuous(*rate, *m))
	case "cont-to-nominal":
		fmt.Printf("%.10f\n", rates.ContinuousToNominal(*rate, *m))
	default:
		fmt.Fprintf(os.Stderr, "ratecalc: unknown op %q\n", *op)
		os.Exit(2)
	}
}
