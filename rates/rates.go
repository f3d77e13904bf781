// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package rates provides the six voltage-dependent rate constants of the
classic Hodgkin-Huxley squid-axon model: the alpha (opening) and beta
(closing) rates for each of the three gating variables m (sodium
activation), h (sodium inactivation), and n (potassium activation).

All rates are pure functions of the absolute membrane potential in mV.
The classic equations are expressed relative to a resting potential of
-65 mV, so internally the functions operate on v = Vm - VRest.

AlphaN and AlphaM have removable singularities (0/0) at v = 10 and
v = 25 respectively.  Within SingTol of the singular point the analytic
L'Hopital limit value (0.1 and 1.0) is returned directly, avoiding
division by zero and the catastrophic cancellation that occurs just next
to it.
*/
package rates

import "github.com/chewxy/math32"

// Params are the Hodgkin-Huxley gating-variable rate function parameters.
// The rate equations themselves are fixed -- these parameters only locate
// them on the voltage axis and guard their singular points.
type Params struct {
	VRest   float32 `def:"-65" desc:"resting membrane potential (mV) that the classic rate equations are expressed relative to -- input voltages are shifted to v = Vm - VRest before evaluation"`
	SingTol float32 `def:"1e-06" desc:"tolerance around the removable singularities of AlphaN (v = 10) and AlphaM (v = 25) -- within this distance the analytic limit value is substituted for the 0/0 expression"`
}

func (rp *Params) Defaults() {
	rp.VRest = -65
	rp.SingTol = 1.0e-6
	rp.Update()
}

func (rp *Params) Update() {
}

// AlphaN is the potassium activation opening rate at membrane potential vm (mV).
// Limit value 0.1 is substituted at the v = 10 singularity.
func (rp *Params) AlphaN(vm float32) float32 {
	v := vm - rp.VRest
	d := 10 - v
	if math32.Abs(d) < rp.SingTol {
		return 0.1
	}
	return 0.01 * d / (math32.Exp(d/10) - 1)
}

// BetaN is the potassium activation closing rate at membrane potential vm (mV).
func (rp *Params) BetaN(vm float32) float32 {
	v := vm - rp.VRest
	return 0.125 * math32.Exp(-v/80)
}

// AlphaM is the sodium activation opening rate at membrane potential vm (mV).
// Limit value 1.0 is substituted at the v = 25 singularity.
func (rp *Params) AlphaM(vm float32) float32 {
	v := vm - rp.VRest
	d := 25 - v
	if math32.Abs(d) < rp.SingTol {
		return 1.0
	}
	return 0.1 * d / (math32.Exp(d/10) - 1)
}

// BetaM is the sodium activation closing rate at membrane potential vm (mV).
func (rp *Params) BetaM(vm float32) float32 {
	v := vm - rp.VRest
	return 4 * math32.Exp(-v/18)
}

// AlphaH is the sodium inactivation opening rate at membrane potential vm (mV).
func (rp *Params) AlphaH(vm float32) float32 {
	v := vm - rp.VRest
	return 0.07 * math32.Exp(-v/20)
}

// BetaH is the sodium inactivation closing rate at membrane potential vm (mV).
func (rp *Params) BetaH(vm float32) float32 {
	v := vm - rp.VRest
	return 1 / (math32.Exp((30-v)/10) + 1)
}

// MFmV returns the steady-state (equilibrium) sodium activation m at the
// given membrane potential: alpha / (alpha + beta)
func (rp *Params) MFmV(vm float32) float32 {
	a, b := rp.AlphaM(vm), rp.BetaM(vm)
	return a / (a + b)
}

// HFmV returns the steady-state sodium inactivation h at the given
// membrane potential
func (rp *Params) HFmV(vm float32) float32 {
	a, b := rp.AlphaH(vm), rp.BetaH(vm)
	return a / (a + b)
}

// NFmV returns the steady-state potassium activation n at the given
// membrane potential
func (rp *Params) NFmV(vm float32) float32 {
	a, b := rp.AlphaN(vm), rp.BetaN(vm)
	return a / (a + b)
}
