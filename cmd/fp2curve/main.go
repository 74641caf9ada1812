// Command fp2curve enumerates the points of y² = x³ + ax + b over F_p² and
// adds points with the elliptic-curve group law.
//
//	fp2curve solve -p 7 -a 1 -b 1
//	fp2curve add -p 7 -a 1 -b 1 0,0,1,0 2,0,2,0
//	fp2curve check -p 13
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
