// Package console implements the interaction engine behind the quickadb
// terminal console: the input line, the slash-triggered completion state
// machine, focus routing across panes and the per-key dispatcher that ties
// them to the shared log buffer.
//
// All UI state (input, completion, focus) is owned by a single Engine and is
// only touched from the event loop goroutine. The log buffer is the one piece
// of state other goroutines may write to, through Engine.Append or the buffer
// returned by Engine.Log.
package console
