// Package executor runs external commands for linkfix.
//
// The emulation layer's path translator and login shell are treated as a
// black box: a CommandExecutor takes a program and its arguments, blocks
// until the process exits, and hands back what it wrote to stdout. Callers
// depend on the interface so reconciliation logic can be driven by scripted
// output in tests.
package executor
