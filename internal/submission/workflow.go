// Package submission drives the annual self-assessment filing: three steps,
// a calculation gate and the final declaration. One Workflow backs one
// interactive session; it is not safe for concurrent use.
package submission

import (
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/models"
	"github.com/olehsvyrydov/selfemploy-uk-sub003/internal/period"
)

// Steps of the annual submission. Step 0 means no submission in progress.
const (
	StepNone        = 0
	StepEnterData   = 1
	StepCalculation = 2
	StepDeclaration = 3
)

// Workflow is the annual submission state machine. Step and state are
// tracked separately: the UI may move between steps without disturbing the
// calculation state or the declaration.
type Workflow struct {
	clock period.Clock

	year        models.TaxYear
	started     bool
	step        int
	state       models.AnnualSubmissionState
	loading     bool
	result      *models.TaxCalculationResult
	declaration Declaration
	generation  int
}

// NewWorkflow creates an idle workflow.
func NewWorkflow(clock period.Clock) *Workflow {
	return &Workflow{
		clock: clock,
		state: models.StateNotStarted,
	}
}

// Start begins a fresh submission attempt for a tax year. Any prior step,
// state, calculation result and declaration are discarded, even when the
// year matches the previous attempt.
func (w *Workflow) Start(year models.TaxYear) {
	w.year = year
	w.started = true
	w.step = StepEnterData
	w.state = models.StateNotStarted
	w.loading = false
	w.result = nil
	w.declaration = Declaration{}
	w.generation++
}

// Year returns the tax year of the current attempt.
func (w *Workflow) Year() models.TaxYear { return w.year }

// Step returns the current step, 0 when no attempt is in progress.
func (w *Workflow) Step() int { return w.step }

// State returns the current lifecycle state.
func (w *Workflow) State() models.AnnualSubmissionState { return w.state }

// Loading reports whether an external async operation is in flight.
func (w *Workflow) Loading() bool { return w.loading }

// Result returns the supplied calculation result, nil before completion.
func (w *Workflow) Result() *models.TaxCalculationResult { return w.result }

// Declaration returns a copy of the current declaration.
func (w *Workflow) Declaration() Declaration { return w.declaration }

// Generation identifies the current attempt. It increments on Start and
// Cancel so callers can discard async results that complete for a stale
// attempt.
func (w *Workflow) Generation() int { return w.generation }

// ExecuteNextStep advances the workflow one step. Moving past step 1 starts
// the external calculation; moving past step 2 requires the calculation to
// have completed. Out-of-range transitions are no-ops returning false.
func (w *Workflow) ExecuteNextStep() bool {
	if !w.started {
		return false
	}
	switch w.step {
	case StepEnterData:
		w.step = StepCalculation
		if w.state == models.StateNotStarted {
			w.state = models.StateCalculating
			w.loading = true
		}
		return true
	case StepCalculation:
		if w.state != models.StateCalculated {
			return false
		}
		w.step = StepDeclaration
		return true
	default:
		return false
	}
}

// Back moves one step towards step 1 without touching state, result or
// declaration, so step 3 -> 2 -> 3 keeps the confirmed declaration intact.
func (w *Workflow) Back() bool {
	if !w.started || w.step <= StepEnterData {
		return false
	}
	w.step--
	return true
}

// CompleteCalculation records the externally computed result. It is only
// legal while the calculation is in flight.
func (w *Workflow) CompleteCalculation(result models.TaxCalculationResult) bool {
	if w.state != models.StateCalculating {
		return false
	}
	w.result = &result
	w.state = models.StateCalculated
	w.loading = false
	return true
}

// SetDeclarationConfirmed confirms or withdraws the declaration. Confirming
// stamps the current time; withdrawing clears it.
func (w *Workflow) SetDeclarationConfirmed(confirmed bool) {
	w.declaration.setConfirmed(confirmed, w.clock.Now())
}

// CanSubmit reports whether the final submission may proceed: the
// calculation must be complete and the declaration confirmed.
func (w *Workflow) CanSubmit() bool {
	return w.state == models.StateCalculated && w.declaration.Confirmed
}

// Submit begins the final submission, moving to DECLARING with loading set
// while the external HMRC call runs. A no-op returning false unless
// CanSubmit holds.
func (w *Workflow) Submit() bool {
	if !w.CanSubmit() {
		return false
	}
	w.state = models.StateDeclaring
	w.loading = true
	return true
}

// CompleteSubmission records that the external submission succeeded.
// SUBMITTED is terminal.
func (w *Workflow) CompleteSubmission() bool {
	if w.state != models.StateDeclaring {
		return false
	}
	w.state = models.StateSubmitted
	w.loading = false
	return true
}

// Cancel abandons the attempt: step back to 0, state to NOT_STARTED, the
// declaration and result cleared. In-flight async work is not interrupted;
// its result becomes stale via the generation counter.
func (w *Workflow) Cancel() {
	w.started = false
	w.step = StepNone
	w.state = models.StateNotStarted
	w.loading = false
	w.result = nil
	w.declaration = Declaration{}
	w.generation++
}
