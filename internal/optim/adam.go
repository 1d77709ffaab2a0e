package optim

import (
	"math"

	"github.com/loom-ml/loom/internal/nn"
	"github.com/loom-ml/loom/internal/tensor"
)

// AdamConfig configures Adam. Zero-valued fields get the common
// defaults: lr 1e-3, beta1 0.9, beta2 0.999, eps 1e-8.
type AdamConfig struct {
	LR    float32
	Beta1 float32
	Beta2 float32
	Eps   float32
}

func (c AdamConfig) withDefaults() AdamConfig {
	if c.LR == 0 {
		c.LR = 1e-3
	}
	if c.Beta1 == 0 {
		c.Beta1 = 0.9
	}
	if c.Beta2 == 0 {
		c.Beta2 = 0.999
	}
	if c.Eps == 0 {
		c.Eps = 1e-8
	}
	return c
}

// Adam maintains bias-corrected first and second moment estimates per
// parameter.
type Adam struct {
	params []*nn.Parameter
	cfg    AdamConfig
	m      map[*tensor.RawTensor][]float32
	v      map[*tensor.RawTensor][]float32
	step   int
}

// NewAdam builds an Adam optimizer over the given parameters.
func NewAdam(params []*nn.Parameter, cfg AdamConfig) *Adam {
	return &Adam{
		params: params,
		cfg:    cfg.withDefaults(),
		m:      make(map[*tensor.RawTensor][]float32),
		v:      make(map[*tensor.RawTensor][]float32),
	}
}

func (a *Adam) Step(grads map[*tensor.RawTensor]*tensor.RawTensor) {
	a.step++
	corr1 := 1 - float32(math.Pow(float64(a.cfg.Beta1), float64(a.step)))
	corr2 := 1 - float32(math.Pow(float64(a.cfg.Beta2), float64(a.step)))

	for _, p := range a.params {
		grad, ok := grads[p.Raw()]
		if !ok {
			continue
		}
		data, g := paramData(p), grad.AsFloat32()

		m, ok := a.m[p.Raw()]
		if !ok {
			m = make([]float32, len(data))
			a.m[p.Raw()] = m
		}
		v, ok := a.v[p.Raw()]
		if !ok {
			v = make([]float32, len(data))
			a.v[p.Raw()] = v
		}

		for i := range data {
			m[i] = a.cfg.Beta1*m[i] + (1-a.cfg.Beta1)*g[i]
			v[i] = a.cfg.Beta2*v[i] + (1-a.cfg.Beta2)*g[i]*g[i]
			mHat := m[i] / corr1
			vHat := v[i] / corr2
			data[i] -= a.cfg.LR * mHat / (float32(math.Sqrt(float64(vHat))) + a.cfg.Eps)
		}
	}
}
