package notify

import "errors"

type StubDispatcher struct {
	SendVerificationFunc func(to, code string) error
	SendConfirmationFunc func(to string) error
}

var _ Dispatcher = &StubDispatcher{}

func (d *StubDispatcher) SendVerification(to, code string) error {
	if d.SendVerificationFunc == nil {
		return errors.New("SendVerification not implemented by stub")
	}
	return d.SendVerificationFunc(to, code)
}

func (d *StubDispatcher) SendConfirmation(to string) error {
	if d.SendConfirmationFunc == nil {
		return errors.New("SendConfirmation not implemented by stub")
	}
	return d.SendConfirmationFunc(to)
}
