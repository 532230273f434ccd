// Package integrators provides explicit Runge-Kutta steppers over any type
// satisfying state.Vector.
//
// The fixed-step methods (Euler, RK4) implement Stepper. The embedded pairs
// (Dormand-Prince 5(4), Cash-Karp 5(4)) also implement ErrorStepper and can be
// wrapped by Controlled, which accepts or rejects trial steps against an
// absolute and relative tolerance and proposes the next step size.
//
// Steppers never mutate the state they are given; every step returns a fresh
// value. A System fills the derivative buffer it is handed in place.
package integrators
