package signup

import (
	"context"
	"sync"
)

// fakeGateway implements AccountGateway for tests with a canned outcome,
// error injection, call recording and an optional gate that holds the call
// open until released.
type fakeGateway struct {
	mu      sync.Mutex
	outcome Outcome
	err     error
	calls   int
	last    NewAccount

	started chan struct{}
	release chan struct{}
}

func (f *fakeGateway) CreateAccount(_ context.Context, account NewAccount) (Outcome, error) {
	f.mu.Lock()
	f.calls++
	f.last = account
	f.mu.Unlock()
	if f.started != nil {
		f.started <- struct{}{}
	}
	if f.release != nil {
		<-f.release
	}
	return f.outcome, f.err
}

func (f *fakeGateway) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakeGateway) lastAccount() NewAccount {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.last
}

var validAccount = NewAccount{
	FirstName: "Ada",
	LastName:  "Lovelace",
	Username:  "ada1815",
	Email:     "ada@example.com",
	Password:  "analytical",
}

func fillValid(c *Controller) {
	c.Change(FieldFirstName, validAccount.FirstName)
	c.Change(FieldLastName, validAccount.LastName)
	c.Change(FieldUsername, validAccount.Username)
	c.Change(FieldEmail, validAccount.Email)
	c.Change(FieldPassword, validAccount.Password)
}
