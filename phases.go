package watergen

import (
	"sync"

	"github.com/pkg/errors"
)

// Phase is one unit of generation work, typically one pass over one
// region. Phases run concurrently once their dependencies finish; the
// dependency graph, not goroutine scheduling, is what keeps generation
// deterministic - reordering phases is an observable behaviour change.
type Phase struct {
	name string
	run  func()
	deps []*Phase
	done chan struct{}
}

// Name returns the phase name.
func (p *Phase) Name() string { return p.name }

// After declares dependencies: p will not start until every q completed.
func (p *Phase) After(deps ...*Phase) *Phase {
	p.deps = append(p.deps, deps...)
	return p
}

// Scheduler runs a directed acyclic graph of phases, each on its own
// goroutine gated on its dependencies.
type Scheduler struct {
	phases []*Phase
}

// NewScheduler returns an empty scheduler.
func NewScheduler() *Scheduler { return &Scheduler{} }

// Add registers a phase.
func (s *Scheduler) Add(name string, run func()) *Phase {
	p := &Phase{name: name, run: run, done: make(chan struct{})}
	s.phases = append(s.phases, p)
	return p
}

// Run executes every phase, honouring dependencies. It returns an error
// without running anything if the graph contains a cycle.
func (s *Scheduler) Run() error {
	if cyclic := s.findCycle(); cyclic != nil {
		return errors.Errorf("watergen: phase dependency cycle through %q", cyclic.name)
	}

	var wg sync.WaitGroup
	for _, p := range s.phases {
		wg.Add(1)
		go func(p *Phase) {
			defer wg.Done()
			for _, dep := range p.deps {
				<-dep.done
			}
			p.run()
			close(p.done)
		}(p)
	}
	wg.Wait()
	return nil
}

// findCycle returns a phase on a dependency cycle, or nil.
func (s *Scheduler) findCycle() *Phase {
	const (
		unvisited = iota
		visiting
		finished
	)
	state := make(map[*Phase]int, len(s.phases))

	var visit func(p *Phase) *Phase
	visit = func(p *Phase) *Phase {
		switch state[p] {
		case visiting:
			return p
		case finished:
			return nil
		}
		state[p] = visiting
		for _, dep := range p.deps {
			if c := visit(dep); c != nil {
				return c
			}
		}
		state[p] = finished
		return nil
	}

	for _, p := range s.phases {
		if c := visit(p); c != nil {
			return c
		}
	}
	return nil
}

// Schedule registers the water zone's processing as a phase: it runs after
// every phase of after (each region's town placement and water adoption)
// and gates every phase of before (connection design, object placement,
// treasure placement) on its completion.
func (w *WaterZone) Schedule(s *Scheduler, after []*Phase, before ...*Phase) *Phase {
	p := s.Add("water-zone", w.Process).After(after...)
	for _, q := range before {
		q.After(p)
	}
	return p
}
