package main

import (
	"fmt"
	"log"

	"github.com/danielyekini/FinCraftr/bond"
)

func main() {
	b := bond.Bond{
		Face:       1000,
		CouponRate: 0.05,
		Frequency:  2,
		Years:      10,
	}

	price, err := bond.Price(b, bond.FlatCurve{Rate: 0.048})
	if err != nil {
		log.Fatal(err)
	}

	res, err := bond.SolveYield(price, b, bond.DefaultSolverConfig)
	if err != nil {
		log.Fatal(err)
	}

	dv01, err := bond.DV01(b, res.Yield)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Price @ 4.80%%: %.4f\n", price)
	fmt.Printf("YTM: %.6f (%d iterations, %s)\n", res.Yield, res.Iterations, res.Method)
	fmt.Printf("DV01: %.6f\n", dv01)
}
