package confcheck

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/dmitrymomot/confcheck/pkg/validate"
)

// Check is a type-erased validation check: it produces the complete set of
// failures for one configuration section. Builders are adapted into checks
// with For.
type Check func() validate.Errors

// For adapts a builder and a loader into a Check. A loader failure is
// reported as a single validation error under the builder's section, so
// binding problems surface through the same channel as rule failures.
func For[T any](b *validate.Builder[T], load func() (T, error)) Check {
	return func() validate.Errors {
		instance, err := load()
		if err != nil {
			return validate.Errors{{
				Key:         b.Section(),
				Message:     fmt.Sprintf("failed to load configuration: %v", err),
				Suggestions: []string{"fix the configuration source before rules can run"},
			}}
		}
		return b.Validate(instance)
	}
}

type namedCheck struct {
	name  string
	check Check
}

// Runner executes registered checks at a defined application lifecycle point
// (startup) and surfaces the aggregated failures. The engine never decides
// process exit behavior; MustRun is where that decision lives.
type Runner struct {
	checks []namedCheck
	logger *slog.Logger
	exit   func(int)
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger used to report failures. Defaults to
// slog.Default().
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) { r.logger = logger }
}

// WithExitFunc replaces os.Exit for MustRun. Intended for tests.
func WithExitFunc(exit func(int)) RunnerOption {
	return func(r *Runner) { r.exit = exit }
}

// NewRunner creates a Runner with no registered checks.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger: slog.Default(),
		exit:   os.Exit,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register adds a named check. Checks run in registration order.
func (r *Runner) Register(name string, check Check) *Runner {
	if check == nil {
		panic("confcheck: Register requires a non-nil check")
	}
	r.checks = append(r.checks, namedCheck{name: name, check: check})
	return r
}

// Report runs every registered check, logs each failure's rendered form, and
// returns the aggregate. All checks always run; nothing short-circuits.
func (r *Runner) Report() validate.Errors {
	var all validate.Errors
	for _, nc := range r.checks {
		errs := nc.check()
		for _, e := range errs {
			r.logger.Error(e.Render(),
				slog.String("check", nc.name),
				slog.String("key", e.Key),
				slog.String("code", e.Code()),
			)
		}
		all = append(all, errs...)
	}
	return all
}

// Run reports all failures and folds them into the error convention: nil
// when every check passed, the aggregate otherwise.
func (r *Runner) Run() error {
	if errs := r.Report(); !errs.IsEmpty() {
		return errs
	}
	return nil
}

// MustRun is the fail-fast startup gate: it runs every check and aborts the
// process when any configuration is invalid, so the application never serves
// traffic with a failed validation.
func (r *Runner) MustRun() {
	if err := r.Run(); err != nil {
		r.logger.Error("aborting startup due to invalid configuration")
		r.exit(1)
	}
}

// Checked validates the instance and returns it unchanged on success, or an
// error derived from the first failure in the railway style: a deterministic
// error code from the failure key, with the message preserved verbatim.
func Checked[T any](b *validate.Builder[T], instance T) (T, error) {
	errs := b.Validate(instance)
	if errs.IsEmpty() {
		return instance, nil
	}
	first, _ := errs.First()
	var zero T
	return zero, fmt.Errorf("%s: %s", first.Code(), first.Message)
}
