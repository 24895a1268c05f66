//go:build !gameloop_noassert

package gameloop

// assertionsEnabled guards programmer-error checks. Build with
// -tags gameloop_noassert to compile them out.
const assertionsEnabled = true
