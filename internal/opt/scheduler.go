package opt

// Scheduler adjusts an optimizer's learning rate at the start of each epoch.
type Scheduler interface {
	Step(epoch int)
	GetLR() float64
}

// InverseDecay divides the learning rate by (1 + decay*epoch) every epoch.
// The division is applied to the optimizer's current rate, so the shrinkage
// compounds over epochs and carries over into later training runs that
// share the optimizer.
type InverseDecay struct {
	optimizer Optimizer
	decay     float64
}

func NewInverseDecay(optimizer Optimizer, decay float64) *InverseDecay {
	return &InverseDecay{
		optimizer: optimizer,
		decay:     decay,
	}
}

func (s *InverseDecay) Step(epoch int) {
	if s.decay == 0 {
		return
	}
	lr := s.optimizer.LR()
	s.optimizer.SetLR(lr / (1 + s.decay*float64(epoch)))
}

func (s *InverseDecay) GetLR() float64 {
	return s.optimizer.LR()
}
