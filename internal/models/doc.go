// Package models defines the flow state of a functional renormalisation
// group calculation and a few right-hand sides that drive it.
//
// The state pairs a self-energy Sig on fermionic Matsubara frequencies with
// a vertex Gam on (bosonic, fermionic) frequency pairs. Both are complex
// grids; the flow parameter Lambda plays the role of time.
package models
