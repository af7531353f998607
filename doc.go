// Package multiplier implements a small command-line program that multiplies
// two integer arguments.
//
// Each argument is parsed into an OptionalInt, which is either a present
// value or absent. Arguments that are not base-10 integers are reported on
// the command's standard output and become absent, instead of aborting the
// program:
//
//	$ multiplier 6 7
//	42
//	$ multiplier 6 x
//	Some argument isn't an Int
//	Some argument is null
//
// The Cmd type is a minimal runner that hands the raw command-line arguments
// to a RunFunc and translates its result into an exit code.
package multiplier
