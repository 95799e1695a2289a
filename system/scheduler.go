package system

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/sync/errgroup"

	"github.com/hopsan/hopsancore/component"
	"github.com/hopsan/hopsancore/types"
)

// startValueLoader is implemented by components with start-value state
// to propagate into their backing nodes before the first timestep
// (spec.md §4.6 initialize step 3). Most components have nothing to do
// here and simply don't implement it.
type startValueLoader interface {
	LoadStartValues() error
}

// requiredPortsChecker is implemented by component.Base (and so by every
// component embedding it): the required-port invariant Initialize must
// verify before running any component's Initialize hook (spec.md §3).
type requiredPortsChecker interface {
	RequiredPortsConnected() (failingPort string, ok bool)
}

// PrepareRun sets the time window and log sample count for a run before
// Initialize is called, recursing into every owned sub-system so the
// whole tree shares one (startT, stopT) window, per spec.md §4.6.
func (s *System) PrepareRun(startT, stopT float64, nLogSamples int) {
	s.mu.Lock()
	s.startT, s.stopT = startT, stopT
	if nLogSamples > 0 {
		s.logDt = (stopT - startT) / float64(nLogSamples)
	} else {
		s.logDt = 0
	}
	s.mu.Unlock()

	for _, c := range s.allChildren() {
		if sub, ok := c.(*System); ok {
			sub.PrepareRun(startT, stopT, nLogSamples)
		}
	}
}

// adjustChildTimesteps implements spec.md §4.2's per-child snap rule,
// then recurses into any child that is itself a System.
func (s *System) adjustChildTimesteps() {
	ownTs := s.Timestep()
	for _, c := range s.allChildren() {
		desired := c.DesiredTimestep()
		switch {
		case desired <= 0 || desired > ownTs:
			c.SetTimestep(ownTs)
		default:
			n := math.Floor(ownTs/desired + 0.5)
			if n < 1 {
				n = 1
			}
			c.SetTimestep(ownTs / n)
		}
		if sub, ok := c.(*System); ok {
			sub.adjustChildTimesteps()
		}
	}
}

func (s *System) allChildren() []component.Component {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]component.Component, 0, len(s.sList)+len(s.cList)+len(s.qList)+len(s.undefinedList))
	out = append(out, s.sList...)
	out = append(out, s.cList...)
	out = append(out, s.qList...)
	out = append(out, s.undefinedList...)
	return out
}

func (s *System) loadStartValues() error {
	for _, c := range s.allChildren() {
		if sv, ok := c.(startValueLoader); ok {
			if err := sv.LoadStartValues(); err != nil {
				return err
			}
		}
	}
	for _, n := range s.InteriorNodes() {
		n.Type().ApplyStartValueProjections(n)
	}
	return nil
}

// Initialize implements component.Component's lifecycle hook and
// spec.md §4.6's initialization phase steps 1-4: adjust child
// timesteps, pre-allocate log space, load start values, then run each
// component's Initialize in S, C, Q order, recursing into sub-systems.
func (s *System) Initialize() error {
	s.adjustChildTimesteps()
	for _, n := range s.InteriorNodes() {
		n.AllocateLog(s.startT, s.stopT, s.logDt)
	}
	if err := s.loadStartValues(); err != nil {
		return err
	}

	s.mu.RLock()
	phases := [][]component.Component{s.sList, s.cList, s.qList}
	s.mu.RUnlock()

	for _, phase := range phases {
		for _, c := range phase {
			if rc, ok := c.(requiredPortsChecker); ok {
				if failing, ok := rc.RequiredPortsConnected(); !ok {
					err := types.NewConfigurationError("initialize", fmt.Sprintf("component %q has disconnected required port %q", c.Name(), failing))
					if s.bus != nil {
						s.bus.ErrorMsg("initialize", err.Error())
					}
					return err
				}
			}
			if failing, ok := c.Parameters().Check(s.systemParams); !ok {
				err := types.NewParameterError(failing, fmt.Sprintf("component %q: dangling system-parameter binding", c.Name()))
				if s.bus != nil {
					s.bus.ErrorMsg("initialize", err.Error())
				}
				return err
			}
			if err := c.Initialize(); err != nil {
				if s.bus != nil {
					s.bus.ErrorMsg("initialize", err.Error())
				}
				return err
			}
		}
	}
	return nil
}

// Finalize implements component.Component's lifecycle hook: it runs
// the Finalize of every child in the S, C and Q buckets, S then C then
// Q, recursing into sub-systems (children in the undefined bucket are
// not finalized, just as Initialize and the step loop skip them),
// and keeps going even if a child reports failure (each failure is
// surfaced as an Error message; spec.md never asks finalize to abort
// early).
func (s *System) Finalize() error {
	s.mu.RLock()
	phases := [][]component.Component{s.sList, s.cList, s.qList}
	s.mu.RUnlock()

	for _, phase := range phases {
		for _, c := range phase {
			if err := c.Finalize(); err != nil && s.bus != nil {
				s.bus.ErrorMsg("finalize", err.Error())
			}
		}
	}
	return nil
}

// StopSimulation requests cooperative cancellation, observed at the top
// of each outer-loop iteration only: a step already under way runs all
// three phases before the request takes effect; the barriers between
// phases do not check it.
func (s *System) StopSimulation() { s.stopping.Store(true) }

// cancel implements spec.md §4.6's external-cancel failure path: finalize
// every S, C and Q component once (via Finalize), report it on the bus, then hand back
// types.ErrCanceled to the caller.
func (s *System) cancel() error {
	s.Finalize()
	if s.bus != nil {
		s.bus.Info("simulate", "simulation canceled")
	}
	return types.ErrCanceled
}

func (s *System) logInteriorNodes(t float64) {
	for _, n := range s.InteriorNodes() {
		n.Log(t)
	}
}

func (s *System) runPhase(list []component.Component, t, ts float64) error {
	for _, c := range list {
		if err := c.SimulateOneTimestep(t, ts); err != nil {
			return err
		}
	}
	return nil
}

// runUntil is the shared fixed-step outer loop: it drives this system's
// own (finer) timestep until its clock reaches target, within half a
// step. Both the top-level Simulate and the Component-interface
// SimulateOneTimestep (called on this system when it is itself a
// sub-system) funnel through here, matching spec.md §4.6's "each
// sub-system... internally iterates its own finer step".
func (s *System) runUntil(target float64) error {
	ts := s.Timestep()
	stopSafe := target - ts/2
	for s.Time() < stopSafe {
		if s.stopping.Load() {
			return s.cancel()
		}
		t := s.Time()
		s.logInteriorNodes(t)

		s.mu.RLock()
		sList, cList, qList := s.sList, s.cList, s.qList
		s.mu.RUnlock()

		if err := s.runPhase(sList, t, ts); err != nil {
			return err
		}
		if err := s.runPhase(cList, t, ts); err != nil {
			return err
		}
		if err := s.runPhase(qList, t, ts); err != nil {
			return err
		}
		s.SetTime(t + ts)
	}
	return nil
}

// SimulateOneTimestep satisfies component.Component: asked to cover
// [t, t+ts] from its parent's coarser phase loop, it iterates its own
// finer steps until that interval is covered.
func (s *System) SimulateOneTimestep(t, ts float64) error {
	return s.runUntil(t + ts)
}

// Simulate is the top-level entry point: drive the outer fixed-step
// loop, single-threaded, from the system's current time up to stopT.
func (s *System) Simulate(stopT float64) error {
	s.beginRun()
	defer activeRuns.WithLabelValues(s.Name()).Dec()
	return s.runUntil(stopT)
}

// SimulateMultiThreaded drives the same outer loop, but executes each
// of the three S/C/Q phases as nThreads goroutines synchronized by an
// errgroup.Group barrier, per spec.md §4.6's multi-threaded mode.
func (s *System) SimulateMultiThreaded(stopT float64, nThreads int) error {
	if nThreads < 1 {
		nThreads = 1
	}
	s.beginRun()
	defer activeRuns.WithLabelValues(s.Name()).Dec()

	ts := s.Timestep()
	stopSafe := stopT - ts/2
	for s.Time() < stopSafe {
		if s.stopping.Load() {
			return s.cancel()
		}
		t := s.Time()
		s.logInteriorNodes(t)

		s.mu.RLock()
		sList, cList, qList := s.sList, s.cList, s.qList
		s.mu.RUnlock()

		if err := s.runPhaseParallel("S", sList, t, ts, nThreads); err != nil {
			return err
		}
		if err := s.runPhaseParallel("C", cList, t, ts, nThreads); err != nil {
			return err
		}
		if err := s.runPhaseParallel("Q", qList, t, ts, nThreads); err != nil {
			return err
		}
		s.SetTime(t + ts)
	}
	return nil
}

func (s *System) runPhaseParallel(label string, list []component.Component, t, ts float64, nThreads int) error {
	start := time.Now()
	defer func() {
		phaseDuration.WithLabelValues(s.Name(), label).Observe(time.Since(start).Seconds())
	}()

	parts := partitionByMeasuredCost(list, nThreads)
	var g errgroup.Group
	for _, part := range parts {
		part := part
		g.Go(func() error {
			for _, c := range part {
				begin := time.Now()
				if err := c.SimulateOneTimestep(t, ts); err != nil {
					return err
				}
				if b, ok := c.(interface{ SetMeasuredTime(time.Duration) }); ok {
					b.SetMeasuredTime(time.Since(begin))
				}
			}
			return nil
		})
	}
	return g.Wait()
}

// partitionByMeasuredCost splits components into n roughly-equal-cost
// buckets using each component's most recently measured execution time
// (MeasuredTime), falling back to uniform round-robin when no
// measurements are available yet, per spec.md §4.6's warm-up note.
func partitionByMeasuredCost(components []component.Component, n int) [][]component.Component {
	if n < 1 {
		n = 1
	}
	parts := make([][]component.Component, n)
	if len(components) == 0 {
		return parts
	}

	hasMeasurements := false
	for _, c := range components {
		if c.MeasuredTime() > 0 {
			hasMeasurements = true
			break
		}
	}
	if !hasMeasurements {
		for i, c := range components {
			idx := i % n
			parts[idx] = append(parts[idx], c)
		}
		return parts
	}

	ordered := append([]component.Component{}, components...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].MeasuredTime() > ordered[j].MeasuredTime()
	})
	load := make([]time.Duration, n)
	for _, c := range ordered {
		lightest := 0
		for i := 1; i < n; i++ {
			if load[i] < load[lightest] {
				lightest = i
			}
		}
		parts[lightest] = append(parts[lightest], c)
		load[lightest] += c.MeasuredTime()
	}
	return parts
}

func (s *System) beginRun() {
	id, err := uuid.NewV7()
	if err == nil {
		s.mu.Lock()
		s.lastRunID = id.String()
		s.mu.Unlock()
	}
	activeRuns.WithLabelValues(s.Name()).Inc()
}

// RunID returns the identifier generated for this system's current (or
// most recent) Simulate/SimulateMultiThreaded run. Messages pushed on
// the bus do not carry it.
func (s *System) RunID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastRunID
}

var _ component.Component = (*System)(nil)
