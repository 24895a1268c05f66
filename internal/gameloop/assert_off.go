//go:build gameloop_noassert

package gameloop

const assertionsEnabled = false
