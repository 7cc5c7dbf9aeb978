// Package checkout sequences the three checkout steps shown on the order page.
package checkout

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mmynk/brewandbake/internal/calculator"
)

// Step is a position in the checkout sequence.
type Step int

const (
	StepCart Step = iota + 1
	StepDelivery
	StepPayment
)

var stepNames = map[Step]string{
	StepCart:     "cart",
	StepDelivery: "delivery",
	StepPayment:  "payment",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// Valid reports whether s is one of the three steps.
func (s Step) Valid() bool {
	return s >= StepCart && s <= StepPayment
}

// ParseStep accepts a step name ("cart", "delivery", "payment").
func ParseStep(s string) (Step, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for step, name := range stepNames {
		if name == s {
			return step, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidStep, s)
}

// PaymentMethod is how the customer intends to pay.
type PaymentMethod string

const (
	Card PaymentMethod = "card"
	Cash PaymentMethod = "cash"
)

// ParsePaymentMethod converts a request value into a PaymentMethod.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch PaymentMethod(strings.ToLower(strings.TrimSpace(s))) {
	case Card:
		return Card, nil
	case Cash:
		return Cash, nil
	}
	return "", fmt.Errorf("unknown payment method %q", s)
}

var (
	ErrInvalidStep = errors.New("invalid checkout step")
	ErrForwardJump = errors.New("cannot jump ahead to a step that has not been reached")
)

// Wizard is the checkout state of one page session.
// The zero value is not ready for use; call New.
type Wizard struct {
	step            Step
	deliveryMethod  calculator.DeliveryMethod
	deliveryAddress string
	paymentMethod   PaymentMethod
}

// New returns a wizard on the cart step with pickup and card selected.
func New() *Wizard {
	return &Wizard{
		step:           StepCart,
		deliveryMethod: calculator.Pickup,
		paymentMethod:  Card,
	}
}

func (w *Wizard) Step() Step                                { return w.step }
func (w *Wizard) DeliveryMethod() calculator.DeliveryMethod { return w.deliveryMethod }
func (w *Wizard) DeliveryAddress() string                   { return w.deliveryAddress }
func (w *Wizard) PaymentMethod() PaymentMethod              { return w.paymentMethod }

// Next advances one step. It does nothing on the payment step.
func (w *Wizard) Next() {
	if w.step < StepPayment {
		w.step++
	}
}

// Back retreats one step. It does nothing on the cart step.
func (w *Wizard) Back() {
	if w.step > StepCart {
		w.step--
	}
}

// GoTo jumps to a step that has already been reached.
// Jumping forward returns ErrForwardJump and leaves the wizard unchanged.
func (w *Wizard) GoTo(target Step) error {
	if !target.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidStep, int(target))
	}
	if target > w.step {
		return fmt.Errorf("%w: at %s, asked for %s", ErrForwardJump, w.step, target)
	}
	w.step = target
	return nil
}

// SetDeliveryMethod selects pickup or delivery. The address is only kept for
// delivery and is cleared when switching to pickup.
func (w *Wizard) SetDeliveryMethod(method calculator.DeliveryMethod, address string) {
	w.deliveryMethod = method
	if method == calculator.Delivery {
		w.deliveryAddress = strings.TrimSpace(address)
		return
	}
	w.deliveryAddress = ""
}

// SetPaymentMethod selects card or cash.
func (w *Wizard) SetPaymentMethod(method PaymentMethod) {
	w.paymentMethod = method
}
