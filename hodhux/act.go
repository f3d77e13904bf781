// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hodhux

import (
	"github.com/emer/hodhux/chans"
	"github.com/emer/hodhux/rates"
	"github.com/goki/ki/kit"
)

///////////////////////////////////////////////////////////////////////
//  act.go contains the biophysical params and the explicit Euler
//  integration functions for the Hodgkin-Huxley neuron

// hodhux.Params contains all the biophysical parameters for the
// Hodgkin-Huxley membrane equation, in the classic squid-axon units
// (mV, ms, uF/cm^2, mS/cm^2, uA/cm^2).  The struct is treated as
// immutable during a single integration step.  No structural constraints
// are enforced: callers can set any finite (or non-finite) values and the
// integrator will use them as-is.
type Params struct {
	Cm   float32      `def:"1" desc:"membrane capacitance (uF/cm^2) -- divides the net current to produce the voltage derivative -- zero produces Inf / NaN states, which propagate unclamped"`
	Gbar chans.Chans  `view:"inline" desc:"[Defaults: 120, 36, .3] maximal conductances (mS/cm^2) for the Na, K, and leak channels"`
	Erev chans.Chans  `view:"inline" desc:"[Defaults: 50, -77, -54.4] reversal potentials (mV) for each channel"`
	Iext float32      `def:"0" desc:"steady externally injected current (uA/cm^2) -- baseline that a transient pulse adds on top of"`
	Rate rates.Params `view:"inline" desc:"voltage-dependent rate functions for the m, h, n gating variables"`
}

func (pr *Params) Defaults() {
	pr.Cm = 1
	pr.Gbar.SetAll(120, 36, 0.3)
	pr.Erev.SetAll(50, -77, -54.4)
	pr.Iext = 0
	pr.Rate.Defaults()
	pr.Update()
}

// Update must be called after any changes to parameters
func (pr *Params) Update() {
	pr.Rate.Update()
}

// HiExcite sets the high-excitability parameter preset: stronger sodium
// conductance and a depolarizing baseline current, producing tonic firing
// without any injected pulse
func (pr *Params) HiExcite() {
	pr.Defaults()
	pr.Gbar.Na = 160
	pr.Iext = 8
	pr.Update()
}

///////////////////////////////////////////////////////////////////////
//  Currents and integration

// INaFmState returns the sodium current for the given state:
// g_Na * m^3 * h * (Vm - E_Na)
func (pr *Params) INaFmState(nrn *Neuron) float32 {
	return pr.Gbar.Na * nrn.M * nrn.M * nrn.M * nrn.H * (nrn.Vm - pr.Erev.Na)
}

// IKFmState returns the potassium current for the given state:
// g_K * n^4 * (Vm - E_K)
func (pr *Params) IKFmState(nrn *Neuron) float32 {
	return pr.Gbar.K * nrn.N * nrn.N * nrn.N * nrn.N * (nrn.Vm - pr.Erev.K)
}

// ILFmState returns the leak current for the given state:
// g_L * (Vm - E_L)
func (pr *Params) ILFmState(nrn *Neuron) float32 {
	return pr.Gbar.L * (nrn.Vm - pr.Erev.L)
}

// InetFmState returns the net membrane current for the given state and
// injected current iext: positive = depolarizing.  This is the numerator
// of the voltage derivative.
func (pr *Params) InetFmState(nrn *Neuron, iext float32) float32 {
	return iext - (pr.INaFmState(nrn) + pr.IKFmState(nrn) + pr.ILFmState(nrn))
}

// StepNeuron advances the given state by one explicit (forward) Euler step
// of dt ms, with iext as the externally injected current for this step,
// returning the new state as a whole value.  The gating derivatives are
// evaluated at the *current* Vm, not the updated one: this is a fully
// explicit scheme.  Deterministic for identical inputs, with no failure
// modes: NaN / Inf from pathological parameters propagate into the
// returned state rather than being clamped or rejected.
func (pr *Params) StepNeuron(nrn Neuron, iext, dt float32) Neuron {
	dvm := pr.InetFmState(&nrn, iext) / pr.Cm
	dm := pr.Rate.AlphaM(nrn.Vm)*(1-nrn.M) - pr.Rate.BetaM(nrn.Vm)*nrn.M
	dh := pr.Rate.AlphaH(nrn.Vm)*(1-nrn.H) - pr.Rate.BetaH(nrn.Vm)*nrn.H
	dn := pr.Rate.AlphaN(nrn.Vm)*(1-nrn.N) - pr.Rate.BetaN(nrn.Vm)*nrn.N
	return Neuron{
		Vm:   nrn.Vm + dvm*dt,
		M:    nrn.M + dm*dt,
		H:    nrn.H + dh*dt,
		N:    nrn.N + dn*dt,
		Time: nrn.Time + dt,
	}
}

// InitNeuron returns the canonical resting state: membrane potential at
// the rate functions' resting potential (-65 mV by default) with each
// gating variable at its steady-state equilibrium value for that voltage,
// and time 0.  This is the starting point of every run and the target of
// every reset.
func (pr *Params) InitNeuron() Neuron {
	vm := pr.Rate.VRest
	return Neuron{
		Vm: vm,
		M:  pr.Rate.MFmV(vm),
		H:  pr.Rate.HFmV(vm),
		N:  pr.Rate.NFmV(vm),
	}
}

///////////////////////////////////////////////////////////////////////
//  Presets

// Presets are the named biophysical parameter presets
type Presets int

//go:generate stringer -type=Presets

var KiT_Presets = kit.Enums.AddEnum(PresetsN, kit.NotBitFlag, nil)

func (ev Presets) MarshalJSON() ([]byte, error)  { return kit.EnumMarshalJSON(ev) }
func (ev *Presets) UnmarshalJSON(b []byte) error { return kit.EnumUnmarshalJSON(ev, b) }

// The parameter presets
const (
	// Baseline is the classic Hodgkin-Huxley squid-axon parameter set,
	// quiescent at rest until stimulated
	Baseline Presets = iota

	// HiExcite has stronger sodium conductance and a depolarizing baseline
	// current, producing tonic firing without any injected pulse
	HiExcite

	PresetsN
)

// ApplyPreset sets the parameters to the given preset's values
func (pr *Params) ApplyPreset(p Presets) {
	switch p {
	case HiExcite:
		pr.HiExcite()
	default:
		pr.Defaults()
	}
}
