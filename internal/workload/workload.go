// Package workload drives lists with seeded random operations and checks
// every result against github.com/gammazero/deque.
package workload

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/gammazero/deque"
	"go.uber.org/zap"

	"github.com/lucasgdosr/lists"
)

const (
	ArrayStack        = "arraystack"
	ArrayQueue        = "arrayqueue"
	ArrayDeque        = "arraydeque"
	DualArrayDeque    = "dualarraydeque"
	RootishArrayStack = "rootisharraystack"
)

const (
	PositionUniform = "uniform"
	PositionFront   = "front"
	PositionBack    = "back"
	PositionMiddle  = "middle"
	// PositionEnds picks the front or the back with equal probability.
	PositionEnds = "ends"
)

var (
	ErrUnknownList = errors.New("unknown list")
	ErrDiverged    = errors.New("list diverged from reference")
)

var constructors = map[string]func() lists.List[int]{
	ArrayStack:        func() lists.List[int] { return lists.MakeArrayStack[int]() },
	ArrayDeque:        func() lists.List[int] { return lists.MakeArrayDeque[int]() },
	DualArrayDeque:    func() lists.List[int] { return lists.MakeDualArrayDeque[int]() },
	RootishArrayStack: func() lists.List[int] { return lists.MakeRootishArrayStack[int]() },
}

// New returns an empty list of the named kind. ArrayQueue is not a List; use
// Runner.Run for it.
func New(name string) (lists.List[int], error) {
	c, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownList, name)
	}
	return c(), nil
}

// IsAvailableList reports whether name can be passed to Runner.Run.
func IsAvailableList(name string) bool {
	_, ok := constructors[name]
	return ok || name == ArrayQueue
}

// IsAvailablePosition reports whether p is a known position strategy.
func IsAvailablePosition(p string) bool {
	return slices.Contains([]string{PositionUniform, PositionFront, PositionBack, PositionMiddle, PositionEnds}, p)
}

// Mix holds the relative weights of each operation.
type Mix struct {
	Add    float64
	Remove float64
	Get    float64
	Set    float64
}

func (m Mix) total() float64 { return m.Add + m.Remove + m.Get + m.Set }

// Spec describes one run.
type Spec struct {
	Seed       uint64
	Operations int
	Position   string
	Mix        Mix
}

// Result is the outcome of running a Spec against one list.
type Result struct {
	Name       string
	Operations int
	Len        int
	Stats      lists.Stats
}

// MovesPerOp returns the average element copies per operation.
func (r Result) MovesPerOp() float64 {
	return r.Stats.MovesPerOp(r.Operations)
}

type op int

const (
	opAdd op = iota
	opRemove
	opGet
	opSet
)

func (o op) String() string {
	switch o {
	case opAdd:
		return "add"
	case opRemove:
		return "remove"
	case opGet:
		return "get"
	default:
		return "set"
	}
}

// Runner executes a Spec. Each Run starts from the same seed, so every list
// sees the same sequence of choices.
type Runner struct {
	spec   Spec
	logger *zap.Logger
}

// NewRunner returns a Runner for spec. A nil logger disables logging.
func NewRunner(spec Spec, logger *zap.Logger) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Runner{spec: spec, logger: logger}
}

// Run drives the named list with the Runner's Spec. It returns an error
// wrapping ErrDiverged as soon as the list disagrees with the reference.
func (r *Runner) Run(name string) (Result, error) {
	logger := r.logger.With(zap.String("list", name))
	logger.Info("run started",
		zap.Int("operations", r.spec.Operations),
		zap.String("position", r.spec.Position),
		zap.Uint64("seed", r.spec.Seed),
	)

	var (
		res Result
		err error
	)
	if name == ArrayQueue {
		res, err = r.runQueue(logger)
	} else {
		var l lists.List[int]
		if l, err = New(name); err != nil {
			return Result{}, err
		}
		res, err = r.runList(l, logger)
	}
	if err != nil {
		logger.Error("run failed", zap.Error(err))
		return Result{}, err
	}
	res.Name = name
	logger.Info("run finished",
		zap.Int("len", res.Len),
		zap.Uint64("resizes", res.Stats.Resizes),
		zap.Uint64("moves", res.Stats.Moves),
		zap.Uint64("rebalances", res.Stats.Rebalances),
		zap.Float64("moves_per_op", res.MovesPerOp()),
	)
	return res, nil
}

func (r *Runner) rng() *rand.Rand {
	return rand.New(rand.NewPCG(r.spec.Seed, r.spec.Seed^0x9e3779b97f4a7c15))
}

func (r *Runner) pickOp(rng *rand.Rand, n int) op {
	if n == 0 {
		return opAdd
	}
	m := r.spec.Mix
	x := rng.Float64() * m.total()
	switch {
	case x < m.Add:
		return opAdd
	case x < m.Add+m.Remove:
		return opRemove
	case x < m.Add+m.Remove+m.Get:
		return opGet
	default:
		return opSet
	}
}

// pickIndex returns an index in [0, bound).
func (r *Runner) pickIndex(rng *rand.Rand, bound int) int {
	switch r.spec.Position {
	case PositionFront:
		return 0
	case PositionBack:
		return bound - 1
	case PositionMiddle:
		return bound / 2
	case PositionEnds:
		if rng.IntN(2) == 0 {
			return 0
		}
		return bound - 1
	default:
		return rng.IntN(bound)
	}
}

func (r *Runner) runList(l lists.List[int], logger *zap.Logger) (Result, error) {
	rng := r.rng()
	ref := new(deque.Deque[int])
	step := max(1, r.spec.Operations/10)
	for k := range r.spec.Operations {
		n := ref.Len()
		o := r.pickOp(rng, n)
		bound := n
		if o == opAdd {
			bound = n + 1
		}
		i := r.pickIndex(rng, bound)

		switch o {
		case opAdd:
			if err := l.Add(i, k); err != nil {
				return Result{}, fmt.Errorf("op %d: %w", k, err)
			}
			ref.Insert(i, k)
		case opRemove:
			got, ok := l.Remove(i)
			if want := ref.Remove(i); !ok || got != want {
				return Result{}, diverged(k, o, i, got, want)
			}
		case opGet:
			got, ok := l.Get(i)
			if want := ref.At(i); !ok || got != want {
				return Result{}, diverged(k, o, i, got, want)
			}
		case opSet:
			got, ok := l.Set(i, -k)
			want := ref.At(i)
			ref.Set(i, -k)
			if !ok || got != want {
				return Result{}, diverged(k, o, i, got, want)
			}
		}
		if l.Len() != ref.Len() {
			return Result{}, fmt.Errorf("%w: op %d: len %d, want %d", ErrDiverged, k, l.Len(), ref.Len())
		}
		if (k+1)%step == 0 {
			logger.Debug("progress", zap.Int("done", k+1), zap.Int("len", l.Len()))
		}
	}

	s := l.MakeSliceCopy()
	for i := range s {
		if want := ref.At(i); s[i] != want {
			return Result{}, diverged(r.spec.Operations, opGet, i, s[i], want)
		}
	}
	return Result{Operations: r.spec.Operations, Len: l.Len(), Stats: l.Stats()}, nil
}

// runQueue only uses the add and remove weights of the mix.
func (r *Runner) runQueue(logger *zap.Logger) (Result, error) {
	rng := r.rng()
	q := lists.MakeArrayQueue[int]()
	ref := new(deque.Deque[int])
	pAdd := 0.5
	if m := r.spec.Mix; m.Add+m.Remove > 0 {
		pAdd = m.Add / (m.Add + m.Remove)
	}
	step := max(1, r.spec.Operations/10)
	for k := range r.spec.Operations {
		if ref.Len() == 0 || rng.Float64() < pAdd {
			q.Add(k)
			ref.PushBack(k)
		} else {
			got, ok := q.Remove()
			if want := ref.PopFront(); !ok || got != want {
				return Result{}, diverged(k, opRemove, 0, got, want)
			}
		}
		if (k+1)%step == 0 {
			logger.Debug("progress", zap.Int("done", k+1), zap.Int("len", q.Len()))
		}
	}
	return Result{Operations: r.spec.Operations, Len: q.Len(), Stats: q.Stats()}, nil
}

func diverged(k int, o op, i, got, want int) error {
	return fmt.Errorf("%w: op %d (%s at %d): got %d, want %d", ErrDiverged, k, o, i, got, want)
}
