package terminate

import (
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"

	"github.com/katalvlaran/ipmcore/problem"
)

// Interrupt fires Interrupted once the process receives SIGINT or SIGTERM.
// The underlying OS signal handler is installed at most once per process;
// NewInterrupt is idempotent and always returns the same instance.
type Interrupt struct {
	flag atomic.Bool
}

var (
	interruptOnce sync.Once
	interruptSelf *Interrupt
)

// NewInterrupt returns the process-wide Interrupt terminator, installing its
// signal handler on first call and reusing it on every subsequent call.
func NewInterrupt() *Interrupt {
	interruptOnce.Do(func() {
		interruptSelf = &Interrupt{}
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, os.Interrupt, syscall.SIGTERM)
		go func() {
			<-ch
			interruptSelf.flag.Store(true)
		}()
	})

	return interruptSelf
}

// Check implements Terminator.
func (i *Interrupt) Check(*problem.SolverState) (problem.Status, bool) {
	if i.flag.Load() {
		return problem.StatusInterrupted, true
	}

	return problem.StatusInProgress, false
}
