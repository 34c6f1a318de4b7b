package operators

import (
	"fmt"
	"slices"
)

// Kind classifies a registered operator by its signature.
type Kind int

// Operator kinds.
const (
	KindUnknown   Kind = iota
	KindUnary          // func(a) float64
	KindBinary         // func(a, b) float64
	KindPredicate      // func(a, b) bool
	KindBackward       // func(a, d) float64, local derivative
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindUnary:
		return "unary"
	case KindBinary:
		return "binary"
	case KindPredicate:
		return "predicate"
	case KindBackward:
		return "backward"
	default:
		return "unknown"
	}
}

// UnaryFn is a float64 operator of one argument.
type UnaryFn func(a float64) float64

// BinaryFn is a float64 operator of two arguments.
type BinaryFn func(a, b float64) float64

// PredicateFn is a float64 comparison.
type PredicateFn func(a, b float64) bool

// Registry maps operator names to float64 implementations.
//
// NewRegistry registers every built-in operator under its short Go name
// (e.g. "mul"), its long name ("multiply") and, where they differ, the
// snake_case form ("less_than"). A Registry is not safe for concurrent
// Register calls; concurrent lookups are fine once registration is done.
type Registry struct {
	unary     map[string]UnaryFn
	binary    map[string]BinaryFn
	predicate map[string]PredicateFn
	backward  map[string]BackwardFn[float64]
}

// NewRegistry creates a registry with all built-in operators.
func NewRegistry() *Registry {
	r := &Registry{
		unary:     make(map[string]UnaryFn),
		binary:    make(map[string]BinaryFn),
		predicate: make(map[string]PredicateFn),
		backward:  make(map[string]BackwardFn[float64]),
	}

	r.registerArithmetic()
	r.registerActivations()
	r.registerComparisons()
	r.registerBackward()

	return r
}

func (r *Registry) registerArithmetic() {
	r.RegisterUnary(ID[float64], "id", "identity")
	r.RegisterUnary(Neg[float64], "neg", "negate")
	r.RegisterUnary(Inv[float64], "inv", "inverse")
	r.RegisterUnary(Log[float64], "log", "natural_log")
	r.RegisterUnary(Exp[float64], "exp", "exponential")
	r.RegisterBinary(Add[float64], "add")
	r.RegisterBinary(Mul[float64], "mul", "multiply")
	r.RegisterBinary(Max[float64], "max", "maximum")
}

func (r *Registry) registerActivations() {
	r.RegisterUnary(Sigmoid[float64], "sigmoid")
	r.RegisterUnary(ReLU[float64], "relu")
}

func (r *Registry) registerComparisons() {
	r.RegisterPredicate(Lt[float64], "lt", "less_than")
	r.RegisterPredicate(Eq[float64], "eq", "equal")
	r.RegisterPredicate(IsClose[float64], "is_close")
}

func (r *Registry) registerBackward() {
	r.RegisterBackward(LogBack[float64], "log_back", "log_backward")
	r.RegisterBackward(InvBack[float64], "inv_back", "inverse_backward")
	r.RegisterBackward(ReLUBack[float64], "relu_back", "relu_backward")
}

// RegisterUnary adds fn under each of names, replacing any operator of any
// kind already registered under that name.
func (r *Registry) RegisterUnary(fn UnaryFn, names ...string) {
	for _, name := range names {
		r.forget(name)
		r.unary[name] = fn
	}
}

// RegisterBinary adds fn under each of names.
func (r *Registry) RegisterBinary(fn BinaryFn, names ...string) {
	for _, name := range names {
		r.forget(name)
		r.binary[name] = fn
	}
}

// RegisterPredicate adds fn under each of names.
func (r *Registry) RegisterPredicate(fn PredicateFn, names ...string) {
	for _, name := range names {
		r.forget(name)
		r.predicate[name] = fn
	}
}

// RegisterBackward adds fn under each of names.
func (r *Registry) RegisterBackward(fn BackwardFn[float64], names ...string) {
	for _, name := range names {
		r.forget(name)
		r.backward[name] = fn
	}
}

func (r *Registry) forget(name string) {
	delete(r.unary, name)
	delete(r.binary, name)
	delete(r.predicate, name)
	delete(r.backward, name)
}

// Kind returns the kind of the operator registered under name, or KindUnknown.
func (r *Registry) Kind(name string) Kind {
	if _, ok := r.unary[name]; ok {
		return KindUnary
	}
	if _, ok := r.binary[name]; ok {
		return KindBinary
	}
	if _, ok := r.predicate[name]; ok {
		return KindPredicate
	}
	if _, ok := r.backward[name]; ok {
		return KindBackward
	}
	return KindUnknown
}

// Unary returns the unary operator registered under name.
func (r *Registry) Unary(name string) (UnaryFn, error) {
	if fn, ok := r.unary[name]; ok {
		return fn, nil
	}
	return nil, r.lookupError(name, KindUnary)
}

// Binary returns the binary operator registered under name.
func (r *Registry) Binary(name string) (BinaryFn, error) {
	if fn, ok := r.binary[name]; ok {
		return fn, nil
	}
	return nil, r.lookupError(name, KindBinary)
}

// Predicate returns the comparison registered under name.
func (r *Registry) Predicate(name string) (PredicateFn, error) {
	if fn, ok := r.predicate[name]; ok {
		return fn, nil
	}
	return nil, r.lookupError(name, KindPredicate)
}

// Backward returns the local-derivative function registered under name.
func (r *Registry) Backward(name string) (BackwardFn[float64], error) {
	if fn, ok := r.backward[name]; ok {
		return fn, nil
	}
	return nil, r.lookupError(name, KindBackward)
}

func (r *Registry) lookupError(name string, want Kind) error {
	got := r.Kind(name)
	if got == KindUnknown {
		return fmt.Errorf("%w: %q", ErrUnknownOperator, name)
	}
	return fmt.Errorf("%w: %q is %s, not %s", ErrArity, name, got, want)
}

// SupportedOps returns the sorted names of all registered operators.
func (r *Registry) SupportedOps() []string {
	ops := make([]string, 0, len(r.unary)+len(r.binary)+len(r.predicate)+len(r.backward))
	for op := range r.unary {
		ops = append(ops, op)
	}
	for op := range r.binary {
		ops = append(ops, op)
	}
	for op := range r.predicate {
		ops = append(ops, op)
	}
	for op := range r.backward {
		ops = append(ops, op)
	}
	slices.Sort(ops)
	return ops
}
