// Command colorlogdemo emits one log line per severity through a chosen host
// logging framework so colour detection can be tried by hand:
//
//	colorlogdemo                      # coloured on a capable terminal
//	TERM=dumb colorlogdemo            # plain
//	colorlogdemo 2>&1 | cat           # plain, stderr is redirected
//	colorlogdemo --color always 2>x   # coloured even into a file
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(nil).Execute(); err != nil {
		os.Exit(1)
	}
}
