package console

// Dispatch runs the input pane's key handling in priority order: an open
// completion popup first, then escape, the trigger character and submit.
// Keys it leaves unconsumed belong to the line editor.
func (e *Engine) Dispatch(k Key) Outcome {
	if e.completion.Active() {
		if e.handleCompletion(k) {
			return Consumed
		}
	}

	switch {
	case k.Type == KeyEscape:
		e.input.Clear()
		e.completion.Deactivate()
		return Consumed
	case k.Is(TriggerRune):
		e.completion.Activate()
		// The trigger still lands in the input line.
		return NotConsumed
	case k.Type == KeyEnter:
		e.submit()
		return Consumed
	}
	return NotConsumed
}

func (e *Engine) handleCompletion(k Key) bool {
	n := e.registry.Len()
	switch k.Type {
	case KeyDown:
		e.completion.Next(n)
		return true
	case KeyUp:
		e.completion.Prev(n)
		return true
	case KeyEnter:
		if i, ok := e.completion.Selected(); ok && i < n {
			// Replaces anything typed before the trigger.
			e.input.Set(string(TriggerRune) + e.registry.Name(i) + " ")
		}
		e.completion.Deactivate()
		return true
	}
	return false
}

func (e *Engine) submit() {
	line := e.input.Value()
	e.log.Append(EchoPrefix + line)
	e.input.Clear()
	e.completion.Deactivate()
	if e.submitter != nil {
		e.submitter(line)
	}
}
