// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect*() functions report a failure with t.Errorf() and the test
// continues. The Demand*() functions report with t.Fatalf() and the test ends
// immediately.
package test
