//go:build gfnocheck

package gf

const checked = false
