package optim

import (
	"github.com/loom-ml/loom/internal/nn"
	"github.com/loom-ml/loom/internal/tensor"
)

// SGDConfig configures stochastic gradient descent. Momentum zero gives
// plain SGD.
type SGDConfig struct {
	LR       float32
	Momentum float32
}

// SGD updates parameters by p -= lr * v with v = momentum*v + grad.
type SGD struct {
	params   []*nn.Parameter
	cfg      SGDConfig
	velocity map[*tensor.RawTensor][]float32
}

// NewSGD builds an SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, cfg SGDConfig) *SGD {
	return &SGD{
		params:   params,
		cfg:      cfg,
		velocity: make(map[*tensor.RawTensor][]float32),
	}
}

func (s *SGD) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) {
	for _, p := range s.params {
		grad, ok := grads[p.Raw()]
		if !ok {
			continue
		}
		data, g := paramData(p), grad.AsFloat32()

		if s.cfg.Momentum == 0 {
			for i := range data {
				data[i] -= s.cfg.LR * g[i]
			}
			continue
		}

		v, ok := s.velocity[p.Raw()]
		if !ok {
			v = make([]float32, len(data))
			s.velocity[p.Raw()] = v
		}
		for i := range data {
			v[i] = s.cfg.Momentum*v[i] + g[i]
			data[i] -= s.cfg.LR * v[i]
		}
	}
}
