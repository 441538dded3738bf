package sat

// A session owns one live engine end to end: creation with the allocator
// shim, configuration, clause loading, invocation and exactly-once teardown.
// Sessions are never shared between logical callers.
type session struct {
	eng      Engine
	alloc    Allocator
	released bool
}

// newSession returns a fully configured, ready-to-invoke session, or tears
// down whatever was constructed before reporting the error. It never hands a
// half-initialized engine to the caller.
func newSession(clauses [][]int, opts *Options) (*session, error) {
	if opts == nil {
		opts = &Options{}
	}
	alloc := opts.Allocator
	if alloc == nil {
		alloc = runtimeAllocator{}
	}
	factory := opts.Engine
	if factory == nil {
		factory = NewDPLLEngine
	}
	eng, err := factory(alloc)
	if err != nil {
		return nil, err
	}
	s := &session{eng: eng, alloc: alloc}
	eng.SetVerbosity(opts.Verbosity)
	if opts.Vars > 0 {
		eng.ReserveVariables(opts.Vars)
	}
	if opts.PropLimit > 0 {
		eng.SetPropagationLimit(opts.PropLimit)
	}
	if err := s.ingest(clauses); err != nil {
		s.close()
		return nil, err
	}
	return s, nil
}

// ingest streams each clause into the engine followed by the 0 terminator.
// A clause is validated in full before any of its literals is pushed, so a
// validation failure leaves no unterminated clause behind; the caller aborts
// the session on the first error regardless.
func (s *session) ingest(clauses [][]int) error {
	for i, clause := range clauses {
		for j, lit := range clause {
			if lit == 0 {
				return &ValidationError{Kind: ZeroLiteral, Clause: i, Index: j}
			}
		}
		for _, lit := range clause {
			s.eng.AddLiteral(lit)
		}
		s.eng.AddLiteral(0)
	}
	return nil
}

// invoke runs the engine and maps its outcome code to a Status. Codes
// outside the contract become *InternalError.
func (s *session) invoke() (Status, error) {
	code, err := s.eng.Solve(-1)
	if err != nil {
		return Unknown, err
	}
	switch code {
	case OutcomeSatisfiable:
		return Satisfiable, nil
	case OutcomeUnsatisfiable:
		return Unsatisfiable, nil
	case OutcomeUnknown:
		return Unknown, nil
	default:
		return Unknown, &InternalError{Code: code}
	}
}

// solution materializes the engine's current assignment. Valid only
// immediately after invoke returned Satisfiable.
func (s *session) solution() Solution {
	n := s.eng.VariableCount()
	model := make(Solution, n)
	for v := 1; v <= n; v++ {
		if s.eng.ValueOf(v) {
			model[v-1] = v
		} else {
			model[v-1] = -v
		}
	}
	return model
}

// block adds the clause that is false exactly under the current assignment,
// so a later invoke can find any model but this one. The assignment is
// re-derived variable by variable into scratch, a reusable buffer of at
// least VariableCount()+1 bytes owned by the caller.
func (s *session) block(scratch []byte) {
	n := s.eng.VariableCount()
	for v := 1; v <= n; v++ {
		if s.eng.ValueOf(v) {
			scratch[v] = 1
		} else {
			scratch[v] = 0
		}
	}
	for v := 1; v <= n; v++ {
		if scratch[v] == 1 {
			s.eng.AddLiteral(-v)
		} else {
			s.eng.AddLiteral(v)
		}
	}
	s.eng.AddLiteral(0)
}

// close releases the engine. Safe to call more than once; the engine itself
// is released exactly once.
func (s *session) close() {
	if s.released {
		return
	}
	s.released = true
	s.eng.Release()
}
