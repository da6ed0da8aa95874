package neb

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/autoneb/landscape"
)

// Sentinel errors for path construction and filling.
var (
	// ErrUnknownFill indicates the configured fill-strategy name is not
	// registered. This is a fatal configuration error.
	ErrUnknownFill = errors.New("neb: unknown fill strategy")

	// ErrPathTooShort indicates a path with fewer than two images.
	ErrPathTooShort = errors.New("neb: path needs at least two images")

	// ErrDistanceLength indicates len(targetDistances) != len(path)-1.
	ErrDistanceLength = errors.New("neb: target-distance length mismatch")

	// ErrDimensionMismatch indicates images of unequal dimension.
	ErrDimensionMismatch = errors.New("neb: image dimension mismatch")
)

// Fill produces a finer-grained path from the previous round's result.
//
// Given the previous path, the number of images to insert and the previous
// target distances, it returns new image coordinates and new target
// distances satisfying len(newDists) == len(newPath)-1 and
// len(newPath) == len(path)+insertCount. prev carries the full previous
// cycle record for strategies that read diagnostics (per-image energies);
// it may be nil for seed paths.
type Fill interface {
	Fill(path [][]float64, insertCount int, dists []float64, prev *landscape.Cycle) ([][]float64, []float64, error)
}

// FillByName looks up a registered fill strategy: "equal" or "highest".
func FillByName(name string) (Fill, error) {
	switch name {
	case "equal":
		return equalFill{}, nil
	case "highest":
		return highestFill{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFill, name)
	}
}

// validatePath checks the structural path invariants shared by fills and
// the path model.
func validatePath(path [][]float64, dists []float64) error {
	if len(path) < 2 {
		return fmt.Errorf("%w: got %d images", ErrPathTooShort, len(path))
	}
	if len(dists) != len(path)-1 {
		return fmt.Errorf("%w: %d distances for %d images", ErrDistanceLength, len(dists), len(path))
	}
	dim := len(path[0])
	for i, image := range path {
		if len(image) != dim {
			return fmt.Errorf("%w: image %d has dim %d, want %d", ErrDimensionMismatch, i, len(image), dim)
		}
	}

	return nil
}
