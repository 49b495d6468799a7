// Package debug gates verbose pipeline tracing behind a single switch.
package debug

import "log"

// Enabled turns tracing on for every pipeline stage that calls into this
// package. It is a package-level var, not a per-component field, so a
// single -debug flag on the embedder's CLI lights up tracing everywhere
// without threading a flag through every constructor.
var Enabled = false

func Printf(format string, args ...interface{}) {
	if Enabled {
		log.Printf(format, args...)
	}
}

func Println(args ...interface{}) {
	if Enabled {
		log.Println(args...)
	}
}
