// Package analysis provides post-processing for flows and stepper runs.
//
//   - [LyapunovExponent]: growth rate of a small perturbation of the initial state
//   - [ObservedOrder]: convergence order fitted from errors at several step sizes
//   - [Steps]: summary statistics of accepted step sizes
//
// # Stability
//
// A negative exponent means nearby initial conditions converge:
//
//	lambda := analysis.LyapunovExponent[*models.State, complex128](sys, rk4, x0, dx, 0, 1, 0.01)
//	if lambda < 0 {
//	    // perturbations decay along the flow
//	}
package analysis
