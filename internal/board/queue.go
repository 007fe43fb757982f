package board

// Queue owns the Model and applies every command to it one at a time. The
// controller is the only logical writer, but it is driven concurrently by
// independent gestures and by the failure-path reload; funnelling all of
// them through one loop rules out a lost update between an in-flight
// optimistic apply and a concurrent reconcile.
type Queue struct {
	cmds chan command
	stop chan struct{}
	done chan struct{}
}

type command struct {
	fn    func(*Model)
	reply chan struct{}
}

// NewQueue starts the command loop over model.
func NewQueue(model *Model) *Queue {
	q := &Queue{
		cmds: make(chan command),
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go q.loop(model)
	return q
}

func (q *Queue) loop(model *Model) {
	defer close(q.done)
	for {
		select {
		case cmd := <-q.cmds:
			cmd.fn(model)
			close(cmd.reply)
		case <-q.stop:
			return
		}
	}
}

// Apply runs fn inside the loop and returns once it has executed. Reads go
// through here too; a snapshot taken inside fn is consistent by
// construction.
func (q *Queue) Apply(fn func(*Model)) {
	cmd := command{fn: fn, reply: make(chan struct{})}
	select {
	case q.cmds <- cmd:
		<-cmd.reply
	case <-q.stop:
	}
}

// Close stops the loop. Pending Apply calls that did not make it into the
// loop return without running.
func (q *Queue) Close() {
	close(q.stop)
	<-q.done
}
