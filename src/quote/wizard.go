package quote

import (
	"context"
	"errors"
	"fmt"

	"QuickTech-Backend/src/models"
	"QuickTech-Backend/src/utils"
)

const (
	StepName    = 1
	StepEmail   = 2
	StepService = 3
)

// struct field names validated before leaving each step
var stepFields = map[int][]string{
	StepName:    {"Name"},
	StepEmail:   {"Email"},
	StepService: {"Service", "Budget"},
}

var (
	ErrStepLocked   = errors.New("step not reached yet")
	ErrNotFinalStep = errors.New("quote can only be submitted from the last step")
	ErrSubmitting   = errors.New("quote submission already in progress")
)

// Poster sends a finished quote to the intake API.
type Poster interface {
	PostQuote(ctx context.Context, fields map[string]any) error
}

// ValidationError lists the fields that block a step transition.
type ValidationError struct {
	Errors []models.FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Message
	}
	return fmt.Sprintf("%d fields are invalid", len(e.Errors))
}

// Wizard is the three-step quick-quote form. Not safe for concurrent use.
type Wizard struct {
	form       models.QuickQuoteForm
	step       int
	highest    int
	submitting bool
}

func NewWizard() *Wizard {
	return &Wizard{step: StepName, highest: StepName}
}

func (w *Wizard) Step() int                   { return w.step }
func (w *Wizard) Highest() int                { return w.highest }
func (w *Wizard) Form() models.QuickQuoteForm { return w.form }

func (w *Wizard) SetName(v string)    { w.form.Name = v }
func (w *Wizard) SetEmail(v string)   { w.form.Email = v }
func (w *Wizard) SetService(v string) { w.form.Service = v }
func (w *Wizard) SetBudget(v string)  { w.form.Budget = v }

// validateStep checks only the fields owned by step.
func (w *Wizard) validateStep(step int) error {
	err := utils.Validator().StructPartial(w.form, stepFields[step]...)
	if errs := utils.FieldErrors(err); errs != nil {
		return &ValidationError{Errors: errs}
	}
	return nil
}

// Next advances one step when the current step is valid. On the last step it does nothing.
func (w *Wizard) Next() error {
	if w.step == StepService {
		return nil
	}
	if err := w.validateStep(w.step); err != nil {
		return err
	}
	w.step++
	if w.step > w.highest {
		w.highest = w.step
	}
	return nil
}

func (w *Wizard) Back() {
	if w.step > StepName {
		w.step--
	}
}

// JumpTo moves to any step already reached.
func (w *Wizard) JumpTo(step int) error {
	if step < StepName || step > w.highest {
		return fmt.Errorf("%w: %d", ErrStepLocked, step)
	}
	w.step = step
	return nil
}

// Submit validates the whole form and posts it once. Success resets the wizard;
// failure leaves every field and the current step untouched.
func (w *Wizard) Submit(ctx context.Context, poster Poster) error {
	if w.step != StepService {
		return ErrNotFinalStep
	}
	if w.submitting {
		return ErrSubmitting
	}
	if errs := utils.ValidateStruct(w.form); errs != nil {
		return &ValidationError{Errors: errs}
	}

	w.submitting = true
	err := poster.PostQuote(ctx, w.form.Map())
	w.submitting = false
	if err != nil {
		return err
	}

	*w = *NewWizard()
	return nil
}
