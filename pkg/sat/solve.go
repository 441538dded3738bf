package sat

import "runtime"

// Solve determines the satisfiability of a clause set. It returns a total
// assignment and Satisfiable, or a nil assignment with Unsatisfiable or
// Unknown (the latter only when a propagation limit cut the search off).
// When err is non-nil the status is meaningless.
func Solve(clauses [][]int, opts *Options) (Solution, Status, error) {
	s, err := newSession(clauses, opts)
	if err != nil {
		return nil, Unknown, err
	}
	defer s.close()
	status, err := s.invoke()
	if err != nil {
		return nil, Unknown, err
	}
	if status != Satisfiable {
		return nil, status, nil
	}
	return s.solution(), Satisfiable, nil
}

// Enumerate returns a cursor over every satisfying assignment of the clause
// set. The sequence is lazy, finite and non-restartable: each Next call runs
// the engine once and blocks the found assignment so it cannot recur. A
// fresh enumeration requires a fresh cursor; blocking clauses accumulate
// only inside this cursor's private session.
func Enumerate(clauses [][]int, opts *Options) (*Solutions, error) {
	s, err := newSession(clauses, opts)
	if err != nil {
		return nil, err
	}
	it := &Solutions{session: s}
	// Backstop for abandoned cursors; Close remains the supported path.
	runtime.SetFinalizer(it, (*Solutions).finalize)
	return it, nil
}

// Solutions enumerates satisfying assignments one Next call at a time.
type Solutions struct {
	session *session
	scratch []byte
	current Solution
	err     error
	done    bool
}

// Next advances to the next satisfying assignment, reporting false when the
// enumeration is exhausted, closed or failed. Once false it stays false.
func (it *Solutions) Next() bool {
	if it.done {
		return false
	}
	status, err := it.session.invoke()
	switch {
	case err != nil:
		it.err = err
		it.stop()
		return false
	case status == Satisfiable:
		it.current = it.session.solution()
		if err := it.block(); err != nil {
			it.err = err
			it.stop()
			return false
		}
		return true
	default:
		// Unsatisfiable or Unknown: nothing left to yield.
		it.stop()
		return false
	}
}

// Solution returns the assignment produced by the last successful Next.
func (it *Solutions) Solution() Solution { return it.current }

// Err returns the error that terminated the enumeration, if any.
func (it *Solutions) Err() error { return it.err }

// Close releases the cursor's resources. It is idempotent and safe to call
// whether or not the enumeration ran to exhaustion; Next afterwards simply
// reports false.
func (it *Solutions) Close() error {
	if !it.done {
		it.stop()
	}
	return nil
}

// block renders the current assignment unreachable in future invocations.
// The polarity scratch buffer is allocated once per cursor, on first use.
func (it *Solutions) block() error {
	if it.scratch == nil {
		it.scratch = it.session.alloc.Alloc(it.session.eng.VariableCount() + 1)
		if it.scratch == nil {
			return &MemoryError{Op: "blocking-clause scratch buffer"}
		}
	}
	it.session.block(it.scratch)
	return nil
}

// stop is the single release point: scratch first, then the session, each
// exactly once no matter how exhaustion and Close interleave.
func (it *Solutions) stop() {
	it.done = true
	if it.scratch != nil {
		it.session.alloc.Free(it.scratch)
		it.scratch = nil
	}
	it.session.close()
	runtime.SetFinalizer(it, nil)
}

func (it *Solutions) finalize() { _ = it.Close() }
