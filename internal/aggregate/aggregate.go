// Package aggregate folds flat generation fact rows into grouped, bucketed,
// unit-converted time series. Every daily and yearly endpoint goes through
// Fold; none of them carries its own grouping loop.
package aggregate

import (
	"math"
	"sort"
)

// Row is one fact: a series key (plant, unit, or dam name), a raw time key,
// and a value in the source's native unit.
type Row struct {
	Group string
	Date  string
	Value float64
}

// Point is one bucketed sum within a group's series.
type Point struct {
	Bucket string
	Value  float64
}

// Options parameterize a fold.
//
// Bucket maps a raw date to its bucket key; nil keeps the date as-is.
// Factor is a unit-conversion multiplier applied per row before summing;
// zero means 1. Round, when positive, rounds each summed value to that many
// decimal places; zero or negative leaves sums unrounded. Daily views round
// to 2 places and yearly roll-ups do not, so rounding stays a per-call knob.
type Options struct {
	Bucket func(date string) string
	Factor float64
	Round  int
}

// Year extracts the 4-digit year bucket from an 8-digit date.
func Year(date string) string {
	if len(date) < 4 {
		return ""
	}
	return date[:4]
}

// Fold sums rows into map[group] -> series sorted ascending by bucket key.
// Lexicographic order is chronological for zero-padded dates and numeric for
// 4-digit years. Rows with an empty group, date, or bucket are skipped, and
// groups with no surviving rows do not appear in the result. Output does not
// depend on input order.
func Fold(rows []Row, opts Options) map[string][]Point {
	factor := opts.Factor
	if factor == 0 {
		factor = 1
	}

	sums := make(map[string]map[string]float64)
	for _, r := range rows {
		if r.Group == "" || r.Date == "" {
			continue
		}
		bucket := r.Date
		if opts.Bucket != nil {
			bucket = opts.Bucket(r.Date)
		}
		if bucket == "" {
			continue
		}
		if sums[r.Group] == nil {
			sums[r.Group] = make(map[string]float64)
		}
		sums[r.Group][bucket] += r.Value * factor
	}

	out := make(map[string][]Point, len(sums))
	for group, buckets := range sums {
		series := make([]Point, 0, len(buckets))
		for bucket, sum := range buckets {
			if opts.Round > 0 {
				sum = roundTo(sum, opts.Round)
			}
			series = append(series, Point{Bucket: bucket, Value: sum})
		}
		sort.Slice(series, func(i, j int) bool { return series[i].Bucket < series[j].Bucket })
		out[group] = series
	}
	return out
}

func roundTo(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
