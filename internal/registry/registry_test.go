package registry_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/legend"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/registry"
	"github.com/SpartanDigitalDotNet/pantheon-legends/internal/testutil"
)

func engine(name string, level legend.ReliabilityLevel, kind legend.EngineType) legend.Engine {
	return &testutil.FakeEngine{EngineName: name, Level: level, Kind: kind}
}

func TestRegister_DuplicateName(t *testing.T) {
	t.Parallel()
	reg := registry.New()

	require.NoError(t, reg.Register(engine("Dow Theory", legend.High, legend.Traditional)))

	err := reg.Register(engine("Dow Theory", legend.Medium, legend.Scanner))
	var dup *registry.DuplicateNameError
	require.ErrorAs(t, err, &dup)
	require.Equal(t, "Dow Theory", dup.Name)

	// The failed registration must not disturb the existing entry.
	require.Len(t, reg.Snapshot(), 1)
	require.Equal(t, legend.High, reg.Snapshot()[0].Reliability())
}

func TestSnapshot_ImmutableUnderConcurrentRegistration(t *testing.T) {
	t.Parallel()
	reg := registry.New()
	require.NoError(t, reg.Register(engine("seed", legend.High, legend.Traditional)))

	snap := reg.Snapshot()
	require.Len(t, snap, 1)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_ = reg.Register(engine(fmt.Sprintf("engine-%d", i), legend.Medium, legend.Scanner))
		}(i)
	}
	wg.Wait()

	// The earlier snapshot is a fixed point in time.
	require.Len(t, snap, 1)
	require.Equal(t, "seed", snap[0].Name())
	require.Len(t, reg.Snapshot(), 51)
}

func TestSnapshot_PreservesRegistrationOrder(t *testing.T) {
	t.Parallel()
	reg := registry.New()
	names := []string{"alpha", "bravo", "charlie", "delta"}
	for _, name := range names {
		require.NoError(t, reg.Register(engine(name, legend.High, legend.Traditional)))
	}

	snap := reg.Snapshot()
	require.Len(t, snap, len(names))
	for i, name := range names {
		require.Equal(t, name, snap[i].Name())
	}
}

func TestLookup(t *testing.T) {
	t.Parallel()
	reg := registry.New()
	require.NoError(t, reg.Register(engine("alpha", legend.High, legend.Traditional)))
	require.NoError(t, reg.Register(engine("bravo", legend.Medium, legend.Scanner)))

	engines, err := reg.Lookup("bravo", "alpha")
	require.NoError(t, err)
	require.Equal(t, "bravo", engines[0].Name())
	require.Equal(t, "alpha", engines[1].Name())

	_, err = reg.Lookup("alpha", "missing")
	var unknown *registry.UnknownEngineError
	require.ErrorAs(t, err, &unknown)
	require.Equal(t, "missing", unknown.Name)
}

func TestFilters(t *testing.T) {
	t.Parallel()
	reg := registry.New()
	require.NoError(t, reg.Register(engine("trad-high", legend.High, legend.Traditional)))
	require.NoError(t, reg.Register(engine("scan-var", legend.Variable, legend.Scanner)))
	require.NoError(t, reg.Register(engine("trad-med", legend.Medium, legend.Traditional)))
	require.NoError(t, reg.Register(engine("hybrid-exp", legend.Experimental, legend.Hybrid)))

	traditional := reg.FilterByType(legend.Traditional)
	require.Len(t, traditional, 2)
	require.Equal(t, "trad-high", traditional[0].Name())
	require.Equal(t, "trad-med", traditional[1].Name())

	atLeastMedium := reg.FilterByMinReliability(legend.Medium)
	require.Len(t, atLeastMedium, 2)
	require.Equal(t, "trad-high", atLeastMedium[0].Name())
	require.Equal(t, "trad-med", atLeastMedium[1].Name())

	require.Empty(t, reg.FilterByType(legend.EngineType("unknown")))
}
