// Command cramer solves an N x N linear system stored as an N x (N+1)
// comma-separated matrix file, using Cramer's Rule.
//
// For the system
//
//	ax + by + cz = d
//	fx + gy + hz = i
//	jx + ky + mz = n
//
// the file must contain
//
//	a,b,c,d
//	f,g,h,i
//	j,k,m,n
//
// Usage:
//
//	cramer [flags] [file]
//
// Without a file argument the name is read from standard input.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "cramer:", err)
		}
		os.Exit(1)
	}
}
