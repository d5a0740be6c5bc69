// Package statsview runs a local HTTP server offering runtime statistics of
// the program. Underlying functionality is provided by
// "github.com/go-echarts/statsview"
//
// After launch, graphical statistics are viewable at:
//
//	localhost:12613/debug/statsview
//
// And standard Go pprof statistics are available at:
//
//	localhost:12613/debug/pprof/
package statsview
