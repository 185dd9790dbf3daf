//go:build pprof

package profile

import (
	"maps"
	"slices"
	"sync"

	"github.com/pkg/profile"

	_ "net/http/pprof" // register HTTP handlers
)

// Modes returns the supported profiling modes in sorted order.
var Modes = sync.OnceValue(func() []string {
	return slices.Sorted(maps.Keys(mode))
})

var mode = map[string]func(*profile.Profile){
	"allocs":    profile.MemProfileAllocs,
	"block":     profile.BlockProfile,
	"clock":     profile.ClockProfile,
	"cpu":       profile.CPUProfile,
	"goroutine": profile.GoroutineProfile,
	"heap":      profile.MemProfileHeap,
	"mem":       profile.MemProfile,
	"mutex":     profile.MutexProfile,
	"thread":    profile.ThreadcreationProfile,
	"trace":     profile.TraceProfile,
}

// option appends profiler settings derived from a [Profiler].
type option func(Profiler, []func(*profile.Profile)) []func(*profile.Profile)

func start(p Profiler) Stopper {
	fn, ok := mode[p.Mode]
	if !ok {
		return ignore{}
	}

	settings := []func(*profile.Profile){fn, profile.NoShutdownHook}
	for _, opt := range []option{withDir, withQuiet} {
		settings = opt(p, settings)
	}

	return profile.Start(settings...)
}

func withDir(p Profiler, s []func(*profile.Profile)) []func(*profile.Profile) {
	if p.Dir != "" {
		s = append(s, profile.ProfilePath(p.Dir))
	}

	return s
}

func withQuiet(p Profiler, s []func(*profile.Profile)) []func(*profile.Profile) {
	if p.Quiet {
		s = append(s, profile.Quiet)
	}

	return s
}
