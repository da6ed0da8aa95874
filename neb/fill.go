package neb

import (
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/autoneb/landscape"
)

// equalFill spreads the insertion budget across segments proportionally to
// their target distance, so long segments gain resolution first.
type equalFill struct{}

// Fill distributes insertCount images by largest remainder over the
// segment distances, then subdivides. Deterministic: remainder ties go to
// the lower segment index.
func (equalFill) Fill(path [][]float64, insertCount int, dists []float64, _ *landscape.Cycle) ([][]float64, []float64, error) {
	if err := validatePath(path, dists); err != nil {
		return nil, nil, err
	}

	return subdivide(path, dists, proportionalCounts(dists, insertCount))
}

// highestFill concentrates the whole insertion budget around the previous
// round's highest-energy image, where the saddle estimate needs the most
// resolution. Without recorded image energies it degrades to equalFill.
type highestFill struct{}

func (highestFill) Fill(path [][]float64, insertCount int, dists []float64, prev *landscape.Cycle) ([][]float64, []float64, error) {
	if err := validatePath(path, dists); err != nil {
		return nil, nil, err
	}
	if prev == nil || len(prev.ImageEnergies) != len(path) {
		return equalFill{}.Fill(path, insertCount, dists, prev)
	}

	peak := floats.MaxIdx(prev.ImageEnergies)
	counts := make([]int, len(dists))
	switch {
	case peak == 0:
		counts[0] = insertCount
	case peak == len(path)-1:
		counts[len(counts)-1] = insertCount
	default:
		// Interior peak: split the budget over both flanking segments,
		// extra image to the left one.
		counts[peak-1] = (insertCount + 1) / 2
		counts[peak] = insertCount / 2
	}

	return subdivide(path, dists, counts)
}

// proportionalCounts apportions insertCount over segments by the largest
// remainder method on the normalized target distances.
func proportionalCounts(dists []float64, insertCount int) []int {
	counts := make([]int, len(dists))
	if insertCount <= 0 {
		return counts
	}
	total := floats.Sum(dists)
	if total <= 0 {
		// Degenerate distances: round-robin from the first segment.
		for i := 0; i < insertCount; i++ {
			counts[i%len(counts)]++
		}

		return counts
	}

	type frac struct {
		idx  int
		part float64
	}
	assigned := 0
	fracs := make([]frac, len(dists))
	for i, d := range dists {
		ideal := float64(insertCount) * d / total
		counts[i] = int(ideal)
		assigned += counts[i]
		fracs[i] = frac{idx: i, part: ideal - float64(counts[i])}
	}
	// Hand the remainder to the largest fractional parts; ties resolve to
	// the lower index via stable sort.
	sort.SliceStable(fracs, func(i, j int) bool { return fracs[i].part > fracs[j].part })
	for i := 0; i < insertCount-assigned; i++ {
		counts[fracs[i].idx]++
	}

	return counts
}

// subdivide inserts counts[i] linearly interpolated images into segment i
// and splits each target distance evenly among its new sub-segments.
func subdivide(path [][]float64, dists []float64, counts []int) ([][]float64, []float64, error) {
	dim := len(path[0])
	newPath := make([][]float64, 0, len(path)+sum(counts))
	newDists := make([]float64, 0, len(dists)+sum(counts))

	for i := 0; i < len(dists); i++ {
		newPath = append(newPath, clone(path[i]))
		k := counts[i]
		for t := 1; t <= k; t++ {
			// path[i] + t/(k+1)·(path[i+1]−path[i])
			image := make([]float64, dim)
			frac := float64(t) / float64(k+1)
			for j := 0; j < dim; j++ {
				image[j] = path[i][j] + frac*(path[i+1][j]-path[i][j])
			}
			newPath = append(newPath, image)
		}
		sub := dists[i] / float64(k+1)
		for t := 0; t <= k; t++ {
			newDists = append(newDists, sub)
		}
	}
	newPath = append(newPath, clone(path[len(path)-1]))

	return newPath, newDists, nil
}

func clone(v []float64) []float64 {
	out := make([]float64, len(v))
	copy(out, v)

	return out
}

func sum(a []int) int {
	total := 0
	for _, v := range a {
		total += v
	}

	return total
}
