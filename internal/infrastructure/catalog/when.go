package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/grafana/sobek"

	"github.com/bnema/keyroute/internal/domain/entity"
	"github.com/bnema/keyroute/internal/logging"
)

const (
	scopeGlobal = "__uctx"
	evalTimeout = 50 * time.Millisecond
)

// ErrClauseTimeout is returned when a when-clause runs past evalTimeout.
var ErrClauseTimeout = errors.New("when clause timed out")

// clause is a compiled when-expression. Flags are resolved through a proxy
// scope, so a flag that is not set reads as undefined instead of throwing.
type clause struct {
	src     string
	program *sobek.Program
	err     error
}

func compileClause(expr string) *clause {
	src := fmt.Sprintf("(function () { with (%s) { return !!(%s\n); } })()", scopeGlobal, expr)
	program, err := sobek.Compile("when", src, false)
	if err != nil {
		err = fmt.Errorf("compile %q: %w", expr, err)
	}
	return &clause{src: expr, program: program, err: err}
}

// evaluator owns the single JavaScript runtime. Runtimes are not safe for
// concurrent use, so every evaluation holds mu.
type evaluator struct {
	mu sync.Mutex
	vm *sobek.Runtime
}

func newEvaluator() *evaluator {
	return &evaluator{vm: sobek.New()}
}

func (e *evaluator) eval(ctx context.Context, c *clause, uctx entity.UIContext) (bool, error) {
	if c.err != nil {
		return false, c.err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	flags := uctx.Flags()
	vm := e.vm
	global := vm.GlobalObject()
	scope := vm.NewProxy(vm.NewObject(), &sobek.ProxyTrapConfig{
		Has: func(_ *sobek.Object, _ string) bool { return true },
		Get: func(_ *sobek.Object, name string, _ sobek.Value) sobek.Value {
			if v, ok := flags[name]; ok {
				return vm.ToValue(v)
			}
			if v := global.Get(name); v != nil {
				return v
			}
			return sobek.Undefined()
		},
	})
	if err := vm.Set(scopeGlobal, scope); err != nil {
		return false, err
	}

	timer := time.AfterFunc(evalTimeout, func() { vm.Interrupt(ErrClauseTimeout) })
	defer func() {
		timer.Stop()
		vm.ClearInterrupt()
	}()

	v, err := vm.RunProgram(c.program)
	if err != nil {
		var interrupted *sobek.InterruptedError
		if errors.As(err, &interrupted) {
			return false, fmt.Errorf("%w: %q", ErrClauseTimeout, c.src)
		}
		return false, fmt.Errorf("evaluate %q: %w", c.src, err)
	}

	logging.FromContext(ctx).Trace().Str("when", c.src).Bool("result", v.ToBoolean()).Msg("when clause evaluated")
	return v.ToBoolean(), nil
}
