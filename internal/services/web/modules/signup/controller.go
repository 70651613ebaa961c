package signup

import (
	"context"
	"sync"
)

// RouteHome names the destination reached after a successful sign-up.
const RouteHome = "home"

// AccountCreatedMessage is the notice handed to the home route on success.
const AccountCreatedMessage = "Account created. Please log in"

// NewAccount carries the mutation variables of one submission.
type NewAccount struct {
	FirstName string
	LastName  string
	Username  string
	Email     string
	Password  string
}

// Outcome is the createAccount payload returned by the account service.
type Outcome struct {
	OK    bool
	Error string
}

// NavigationIntent asks the HTTP layer to move the browser to Route and show
// Message there.
type NavigationIntent struct {
	Route      string
	Message    string
	MessageKey string
}

// Submission is the snapshot taken when a submit is accepted.
type Submission struct {
	Account NewAccount
	seq     uint64
}

// SubmitResult reports how a submit attempt ended.
type SubmitResult int

const (
	// SubmitAccepted means Begin took a snapshot and marked the form busy.
	SubmitAccepted SubmitResult = iota + 1
	// SubmitInvalid means a field rule failed; nothing was sent.
	SubmitInvalid
	// SubmitDropped means a submission was already in flight; nothing was sent.
	SubmitDropped
	// SubmitRejected means the service answered ok=false.
	SubmitRejected
	// SubmitUnavailable means the service could not be reached.
	SubmitUnavailable
	// SubmitSucceeded means the account was created.
	SubmitSucceeded
	// SubmitStale means the completion did not match the in-flight submission.
	SubmitStale
)

func (r SubmitResult) String() string {
	switch r {
	case SubmitAccepted:
		return "accepted"
	case SubmitInvalid:
		return "invalid"
	case SubmitDropped:
		return "dropped"
	case SubmitRejected:
		return "rejected"
	case SubmitUnavailable:
		return "unavailable"
	case SubmitSucceeded:
		return "succeeded"
	case SubmitStale:
		return "stale"
	default:
		return "unknown"
	}
}

// Controller owns the state of one sign-up form: values, validation, the busy
// flag and the server-side error. Events are serialized by a mutex; the
// network call in Submit runs outside it with busy held.
type Controller struct {
	mu        sync.Mutex
	values    FormValues
	errors    Errors
	dirty     map[Field]bool
	showAll   bool
	resultKey string
	busy      bool
	seq       uint64
	intent    *NavigationIntent
}

// NewController returns a controller with empty values.
func NewController() *Controller {
	c := &Controller{dirty: map[Field]bool{}}
	c.errors = Validate(c.values)
	return c
}

// Change stores value for field and re-evaluates the rules. Unknown fields,
// the result slot and unchanged values are ignored.
func (c *Controller) Change(field Field, value string) {
	if !isInputField(field) {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.values.Get(field) == value {
		return
	}
	c.values.set(field, value)
	c.dirty[field] = true
	c.errors = Validate(c.values)
	if c.errors.Valid() {
		c.clearResultLocked()
	}
}

// Focus clears the server-side error. Field errors are left as they are.
func (c *Controller) Focus(Field) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.clearResultLocked()
}

// Valid reports whether every field rule passes.
func (c *Controller) Valid() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.errors.Valid()
}

// Begin gates a submit. An invalid form reveals every field error; a valid
// form that is already busy drops the attempt. Otherwise the form turns busy
// and a snapshot is returned.
func (c *Controller) Begin() (Submission, SubmitResult) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.errors.Valid() {
		c.showAll = true
		return Submission{}, SubmitInvalid
	}
	if c.busy {
		return Submission{}, SubmitDropped
	}
	c.busy = true
	c.seq++
	return Submission{
		Account: NewAccount{
			FirstName: c.values.FirstName,
			LastName:  c.values.LastName,
			Username:  c.values.Username,
			Email:     c.values.Email,
			Password:  c.values.Password,
		},
		seq: c.seq,
	}, SubmitAccepted
}

// Complete applies the result of the submission taken by Begin. It always
// clears busy for the matching submission.
func (c *Controller) Complete(sub Submission, outcome Outcome, err error) SubmitResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.busy || sub.seq != c.seq {
		return SubmitStale
	}
	c.busy = false
	if err != nil {
		c.values.Result = ""
		c.resultKey = MsgUnavailable
		return SubmitUnavailable
	}
	if !outcome.OK {
		c.values.Result = outcome.Error
		c.resultKey = ""
		if outcome.Error == "" {
			c.resultKey = MsgCreateFailed
		}
		return SubmitRejected
	}
	c.clearResultLocked()
	c.intent = &NavigationIntent{
		Route:      RouteHome,
		Message:    AccountCreatedMessage,
		MessageKey: MsgAccountCreated,
	}
	return SubmitSucceeded
}

// Submit runs Begin, one gateway call and Complete. The returned error is the
// gateway failure, if any.
func (c *Controller) Submit(ctx context.Context, gateway AccountGateway) (SubmitResult, error) {
	sub, status := c.Begin()
	if status != SubmitAccepted {
		return status, nil
	}
	if gateway == nil {
		gateway = unavailableGateway{}
	}
	outcome, err := gateway.CreateAccount(ctx, sub.Account)
	return c.Complete(sub, outcome, err), err
}

// TakeIntent returns the pending navigation intent once.
func (c *Controller) TakeIntent() (NavigationIntent, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.intent == nil {
		return NavigationIntent{}, false
	}
	intent := *c.intent
	c.intent = nil
	return intent, true
}

// expire marks the form as coming from an expired session.
func (c *Controller) expire() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values.Result = ""
	c.resultKey = MsgFormExpired
}

func (c *Controller) clearResultLocked() {
	c.values.Result = ""
	c.resultKey = ""
}

// View is a snapshot of what the form should display.
type View struct {
	Values FormValues
	// FieldErrors holds message keys for fields whose errors are visible.
	FieldErrors map[Field]string
	// ResultError is the server-provided message, shown verbatim.
	ResultError string
	// ResultErrorKey is a catalog key used when the error is ours.
	ResultErrorKey string
	Busy           bool
	CanSubmit      bool
	SubmitLabelKey string
}

// View returns the current display state. Field errors are visible once the
// field was changed or a submit was attempted.
func (c *Controller) View() View {
	c.mu.Lock()
	defer c.mu.Unlock()
	visible := make(map[Field]string, len(c.errors))
	for field, key := range c.errors {
		if c.showAll || c.dirty[field] {
			visible[field] = key
		}
	}
	label := "signup.submit"
	if c.busy {
		label = "signup.loading"
	}
	return View{
		Values:         c.values,
		FieldErrors:    visible,
		ResultError:    c.values.Result,
		ResultErrorKey: c.resultKey,
		Busy:           c.busy,
		CanSubmit:      c.errors.Valid() && !c.busy,
		SubmitLabelKey: label,
	}
}
