//go:build !gfnocheck

package gf

// checked enables precondition checks on shape and coordinates.
const checked = true
