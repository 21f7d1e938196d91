package ckks

import (
	"fmt"
	"math"
	"math/big"

	"github.com/montanaflynn/stats"

	"github.com/ckksgo/ckksgo/utils/bignum"
)

// PrecisionStats is a struct storing statistic about the precision of decoded values.
type PrecisionStats struct {
	MaxDelta        Stats
	MinDelta        Stats
	MaxPrecision    Stats
	MinPrecision    Stats
	MeanDelta       Stats
	MeanPrecision   Stats
	MedianDelta     Stats
	MedianPrecision Stats
	StdDelta        Stats

	// Precision is the per-slot log2 precision of the L2 error.
	Precision []float64
}

// Stats is a struct storing the real, imaginary and L2 norm (modulus)
// about the precision of a complex value.
type Stats struct {
	Real, Imag, L2 float64
}

func (prec PrecisionStats) String() string {
	return fmt.Sprintf(`
┌─────────┬───────┬───────┬───────┐
│    Log2 │ REAL  │ IMAG  │ L2    │
├─────────┼───────┼───────┼───────┤
│MIN Prec │ %5.2f │ %5.2f │ %5.2f │
│MAX Prec │ %5.2f │ %5.2f │ %5.2f │
│AVG Prec │ %5.2f │ %5.2f │ %5.2f │
│MED Prec │ %5.2f │ %5.2f │ %5.2f │
└─────────┴───────┴───────┴───────┘
Err STD Slots  : %5.2f Log2
`,
		prec.MinPrecision.Real, prec.MinPrecision.Imag, prec.MinPrecision.L2,
		prec.MaxPrecision.Real, prec.MaxPrecision.Imag, prec.MaxPrecision.L2,
		prec.MeanPrecision.Real, prec.MeanPrecision.Imag, prec.MeanPrecision.L2,
		prec.MedianPrecision.Real, prec.MedianPrecision.Imag, prec.MedianPrecision.L2,
		math.Log2(prec.StdDelta.L2))
}

// GetPrecisionStats generates a PrecisionStats struct from the reference values and the decoded values.
// want.(type) must be either []complex128 or []float64.
// A zero error is reported as an infinite precision.
func GetPrecisionStats(want interface{}, have []complex128) (prec PrecisionStats, err error) {

	var valuesWant []complex128
	switch want := want.(type) {
	case []complex128:
		valuesWant = want
	case []float64:
		valuesWant = make([]complex128, len(want))
		for i := range want {
			valuesWant[i] = complex(want[i], 0)
		}
	default:
		return prec, fmt.Errorf("cannot GetPrecisionStats: invalid want.(type), must be []complex128 or []float64 but is %T", want)
	}

	if len(valuesWant) != len(have) {
		return prec, fmt.Errorf("cannot GetPrecisionStats: len(want)=%d != len(have)=%d: %w", len(valuesWant), len(have), ErrInvalidLength)
	}

	deltaReal := make([]float64, len(have))
	deltaImag := make([]float64, len(have))
	deltaL2 := make([]float64, len(have))

	for i := range have {
		deltaReal[i] = math.Abs(real(have[i]) - real(valuesWant[i]))
		deltaImag[i] = math.Abs(imag(have[i]) - imag(valuesWant[i]))
		deltaL2[i] = math.Hypot(deltaReal[i], deltaImag[i])
	}

	prec.Precision = make([]float64, len(deltaL2))
	for i := range deltaL2 {
		prec.Precision[i] = math.Log2(1 / deltaL2[i])
	}

	if prec.MaxDelta, err = getStats(stats.Max, deltaReal, deltaImag, deltaL2); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MinDelta, err = getStats(stats.Min, deltaReal, deltaImag, deltaL2); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MeanDelta, err = getStats(stats.Mean, deltaReal, deltaImag, deltaL2); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.MedianDelta, err = getStats(stats.Median, deltaReal, deltaImag, deltaL2); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	if prec.StdDelta, err = getStats(stats.StandardDeviation, deltaReal, deltaImag, deltaL2); err != nil {
		return prec, fmt.Errorf("cannot GetPrecisionStats: %w", err)
	}

	prec.MinPrecision = deltaToPrecision(prec.MaxDelta)
	prec.MaxPrecision = deltaToPrecision(prec.MinDelta)
	prec.MeanPrecision = deltaToPrecision(prec.MeanDelta)
	prec.MedianPrecision = deltaToPrecision(prec.MedianDelta)

	return prec, nil
}

func getStats(f func(stats.Float64Data) (float64, error), re, im, l2 []float64) (s Stats, err error) {
	if s.Real, err = f(re); err != nil {
		return
	}
	if s.Imag, err = f(im); err != nil {
		return
	}
	s.L2, err = f(l2)
	return
}

func deltaToPrecision(c Stats) Stats {
	return Stats{math.Log2(1 / c.Real), math.Log2(1 / c.Imag), math.Log2(1 / c.L2)}
}

// GetPrecisionStatsBig returns the per-slot log2 precision -log2|want[i] - have[i]|
// computed at the precision of have, so that errors below 2^-1074 are not flushed to zero.
// A zero error is reported as +Inf.
func GetPrecisionStatsBig(want, have []*bignum.Complex) (prec []float64, err error) {

	if len(want) != len(have) {
		return nil, fmt.Errorf("cannot GetPrecisionStatsBig: len(want)=%d != len(have)=%d: %w", len(want), len(have), ErrInvalidLength)
	}

	prec = make([]float64, len(have))

	for i := range have {

		diff := bignum.NewComplex().SetPrec(have[i].Prec())
		diff.Sub(have[i], want[i])

		abs := diff.Abs()

		if abs.Sign() == 0 {
			prec[i] = math.Inf(1)
			continue
		}

		prec[i], _ = new(big.Float).Neg(bignum.Log2Of(abs)).Float64()
	}

	return
}
