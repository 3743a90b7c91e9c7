// Package optimistic tracks a speculative change to a caller-local
// snapshot until the gateway settles, as an explicit command with a
// compensating undo rather than ad hoc flag toggling.
package optimistic

// Command pairs a speculative mutation with its compensating action.
// Apply must not mutate its input; it returns the changed snapshot.
type Command[S any] struct {
	Apply  func(S) S
	Revert func(S) S
}

// Pending is a change applied locally but not yet confirmed remotely.
type Pending[S any] struct {
	cmd         Command[S]
	speculative S
	settled     bool
}

// Begin applies cmd to base and returns the pending change.
func Begin[S any](base S, cmd Command[S]) *Pending[S] {
	return &Pending[S]{cmd: cmd, speculative: cmd.Apply(base)}
}

// View is the snapshot with the pending change applied.
func (p *Pending[S]) View() S {
	return p.speculative
}

// Confirm adopts the speculative snapshot once the gateway succeeded.
func (p *Pending[S]) Confirm() S {
	p.settled = true
	return p.speculative
}

// Rollback compensates the speculative change after a gateway failure.
func (p *Pending[S]) Rollback() S {
	p.settled = true
	p.speculative = p.cmd.Revert(p.speculative)
	return p.speculative
}

// Settled reports whether the change was confirmed or rolled back.
func (p *Pending[S]) Settled() bool {
	return p.settled
}
