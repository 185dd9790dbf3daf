// Package profile provides optional runtime profiling for mend.
//
// Profiling is compiled in only with the "pprof" build tag:
//
//	go build -tags pprof .
//
// Without the tag [Modes] is empty and [Profiler.Start] returns a no-op, so
// callers never need to check how the binary was built.
//
// A session writes one profile to [Profiler.Dir], named after its mode (for
// example cpu.pprof), when it is stopped:
//
//	stop := profile.Profiler{Mode: "cpu", Dir: "/tmp/mend"}.Start()
//	defer stop.Stop()
//
// Analyze the result with go tool pprof:
//
//	go tool pprof -http=: /tmp/mend/cpu.pprof
//
// The parser benchmarks are the usual workload; profiling the mend check
// command over a large input shows where time goes in backtracking and in the
// fix search.
package profile

// Tag is the build tag required to enable profiling.
const Tag = `pprof`
