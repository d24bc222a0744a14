package monkey

// step accounts for one evaluated node and enforces the configured step
// quota and context cancellation.
func (exec *Execution) step() (Value, bool) {
	exec.steps++
	if exec.quota > 0 && exec.steps > exec.quota {
		return NewError("step quota exceeded (%d)", exec.quota), false
	}
	if exec.ctx != nil {
		select {
		case <-exec.ctx.Done():
			return NewError("%v", exec.ctx.Err()), false
		default:
		}
	}
	return Value{}, true
}

// Steps reports how many nodes the execution has evaluated.
func (exec *Execution) Steps() int { return exec.steps }
