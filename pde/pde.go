// Package pde identifies the linear differential operators a correction can
// be built for, and produces polynomial particular solutions for them.
package pde

import (
	"errors"
	"fmt"

	"github.com/notargets/vdim/poly"
)

// Kind tags a supported differential operator family. The set is closed:
// adding a family means adding a Kind, a solver implementation and a case in
// Descriptor.Solver, nothing else.
type Kind uint8

const (
	Laplace Kind = iota
	Helmholtz
)

var (
	// ErrUnsupportedPDE is returned when no solver exists for a descriptor.
	ErrUnsupportedPDE = errors.New("pde: unsupported operator kind")

	// ErrDimension is returned for ambient dimensions outside [1, 3].
	ErrDimension = errors.New("pde: ambient dimension must be 1, 2 or 3")

	// ErrWavenumber is returned for a Helmholtz descriptor with zero wavenumber.
	ErrWavenumber = errors.New("pde: Helmholtz wavenumber must be nonzero")
)

// Descriptor identifies one differential operator: its family, ambient
// spatial dimension and any parameters. Immutable once constructed.
type Descriptor struct {
	Kind       Kind
	Dim        int
	Wavenumber float64 // Helmholtz only
}

func (d Descriptor) String() string {
	switch d.Kind {
	case Laplace:
		return fmt.Sprintf("Laplace(dim=%d)", d.Dim)
	case Helmholtz:
		return fmt.Sprintf("Helmholtz(dim=%d, k=%g)", d.Dim, d.Wavenumber)
	default:
		return fmt.Sprintf("PDE(kind=%d, dim=%d)", d.Kind, d.Dim)
	}
}

// Solver produces a polynomial particular solution P with L[P] = p for its
// differential operator L.
type Solver interface {
	Dim() int
	ParticularSolution(p poly.Polynomial) poly.Polynomial
}

// Solver resolves the descriptor to a concrete solver. Fails with
// ErrUnsupportedPDE for an unknown Kind.
func (d Descriptor) Solver() (Solver, error) {
	if d.Dim < 1 || d.Dim > poly.MaxDims {
		return nil, fmt.Errorf("%w: got %d", ErrDimension, d.Dim)
	}
	switch d.Kind {
	case Laplace:
		return laplaceSolver{dim: d.Dim}, nil
	case Helmholtz:
		if d.Wavenumber == 0 {
			return nil, ErrWavenumber
		}
		return helmholtzSolver{dim: d.Dim, k: d.Wavenumber}, nil
	default:
		return nil, fmt.Errorf("%w: kind %d", ErrUnsupportedPDE, d.Kind)
	}
}
