// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hodhux

import (
	"bytes"
	"testing"

	"github.com/chewxy/math32"
	"github.com/emer/etable/etable"
)

// TestPulseDecay: an injected pulse adds its amplitude to the external
// current for exactly Dur ms of simulated time, then decays to baseline.
func TestPulseDecay(t *testing.T) {
	sim := NewSim()
	sim.InjectPulse()
	if sim.PulseLeft != sim.Pulse.Dur {
		t.Errorf("PulseLeft after inject: %v != %v\n", sim.PulseLeft, sim.Pulse.Dur)
	}
	if cur := sim.CurIext(); cur != sim.Params.Iext+sim.Pulse.Amp {
		t.Errorf("CurIext during pulse: %v != %v\n", cur, sim.Params.Iext+sim.Pulse.Amp)
	}
	// 20 ms at 0.05 ms/step, 5 steps/frame = 80 frames -- run extra to be
	// well past the end of the pulse
	for i := 0; i < 100; i++ {
		sim.Frame()
	}
	if sim.PulseLeft > 0 {
		t.Errorf("PulseLeft still positive after pulse window: %v\n", sim.PulseLeft)
	}
	if cur := sim.CurIext(); cur != sim.Params.Iext {
		t.Errorf("CurIext after pulse: %v != %v\n", cur, sim.Params.Iext)
	}
}

// TestPulseRestart: re-injecting overwrites the remaining duration rather
// than accumulating it.
func TestPulseRestart(t *testing.T) {
	sim := NewSim()
	sim.InjectPulse()
	for i := 0; i < 10; i++ {
		sim.Frame()
	}
	sim.InjectPulse()
	if sim.PulseLeft != sim.Pulse.Dur {
		t.Errorf("PulseLeft after re-inject: %v != %v\n", sim.PulseLeft, sim.Pulse.Dur)
	}
}

// TestHistoryBound: history never exceeds its capacity and stays in
// chronological order, with the newest sample last.
func TestHistoryBound(t *testing.T) {
	sim := NewSim()
	for i := 0; i < 400; i++ {
		sim.Frame()
	}
	if len(sim.History) != sim.HistCap {
		t.Errorf("history len: %v != cap %v\n", len(sim.History), sim.HistCap)
	}
	for i := 1; i < len(sim.History); i++ {
		if sim.History[i].Time <= sim.History[i-1].Time {
			t.Errorf("history out of order at %v: %v <= %v\n", i, sim.History[i].Time, sim.History[i-1].Time)
		}
	}
	last := sim.History[len(sim.History)-1]
	if last.Time != sim.Neuron.Time {
		t.Errorf("last history time: %v != neuron time %v\n", last.Time, sim.Neuron.Time)
	}
}

// TestHistoryCapShrink: lowering HistCap while the buffer is already full
// shrinks the history on the next frame, keeping the newest samples.
func TestHistoryCapShrink(t *testing.T) {
	sim := NewSim()
	for i := 0; i < 400; i++ {
		sim.Frame()
	}
	sim.HistCap = 100
	sim.Frame()
	if len(sim.History) != sim.HistCap {
		t.Errorf("history len after cap shrink: %v != %v\n", len(sim.History), sim.HistCap)
	}
	for i := 1; i < len(sim.History); i++ {
		if sim.History[i].Time <= sim.History[i-1].Time {
			t.Errorf("history out of order at %v after shrink\n", i)
		}
	}
	last := sim.History[len(sim.History)-1]
	if last.Time != sim.Neuron.Time {
		t.Errorf("last history time after shrink: %v != neuron time %v\n", last.Time, sim.Neuron.Time)
	}
}

// TestInitIdempotence: Init restores the resting state regardless of how far
// the simulation has run, and clears history and any active pulse.
func TestInitIdempotence(t *testing.T) {
	sim := NewSim()
	rest := sim.Params.InitNeuron()
	sim.InjectPulse()
	for i := 0; i < 50; i++ {
		sim.Frame()
	}
	sim.Init()
	if sim.Neuron != rest {
		t.Errorf("neuron after Init: %v != rest %v\n", sim.Neuron, rest)
	}
	if len(sim.History) != 0 {
		t.Errorf("history not cleared: len %v\n", len(sim.History))
	}
	if sim.PulseLeft != 0 {
		t.Errorf("pulse not cleared: %v\n", sim.PulseLeft)
	}
	if sim.Time.Time != 0 || sim.Time.StepTot != 0 {
		t.Errorf("time not reset: %v %v\n", sim.Time.Time, sim.Time.StepTot)
	}
}

// TestPresetSwitch: selecting a preset updates parameters immediately but
// deliberately leaves the running state alone -- only Init re-equilibrates.
func TestPresetSwitch(t *testing.T) {
	sim := NewSim()
	for i := 0; i < 10; i++ {
		sim.Frame()
	}
	nrn := sim.Neuron
	sim.SelectPreset(HiExcite)
	if sim.Neuron != nrn {
		t.Errorf("preset switch changed state: %v != %v\n", sim.Neuron, nrn)
	}
	if sim.Params.Gbar.Na != 160 {
		t.Errorf("HiExcite Gbar.Na: %v != 160\n", sim.Params.Gbar.Na)
	}
	if sim.Params.Iext != 8 {
		t.Errorf("HiExcite Iext: %v != 8\n", sim.Params.Iext)
	}
	sim.Init()
	if sim.Neuron != sim.Params.InitNeuron() {
		t.Errorf("Init did not re-equilibrate under new params\n")
	}
}

// TestSpike: a standard pulse from rest produces an action potential --
// the membrane potential crosses 0 upward and subsequently hyperpolarizes
// below -50 mV.
func TestSpike(t *testing.T) {
	sim := NewSim()
	sim.InjectPulse()
	for i := 0; i < 80; i++ {
		sim.Frame()
	}
	spiked := false
	hyper := false
	for _, st := range sim.History {
		if st.Vm > 0 {
			spiked = true
		}
		if spiked && st.Vm < -50 {
			hyper = true
		}
	}
	if !spiked {
		t.Errorf("no spike: Vm never exceeded 0\n")
	}
	if !hyper {
		t.Errorf("no hyperpolarization after spike\n")
	}
}

// TestFrameStepping: each frame advances simulated time by
// StepsPerFrame * TimePerStep.
func TestFrameStepping(t *testing.T) {
	sim := NewSim()
	nf := 40
	for i := 0; i < nf; i++ {
		sim.Frame()
	}
	want := float32(nf) * float32(sim.Time.StepsPerFrame) * sim.Time.TimePerStep
	if dif := math32.Abs(sim.Time.Time - want); dif > 1.0e-3 {
		t.Errorf("time after %v frames: %v != %v\n", nf, sim.Time.Time, want)
	}
	if sim.Time.Frame != nf {
		t.Errorf("frame count: %v != %v\n", sim.Time.Frame, nf)
	}
	if len(sim.History) != nf {
		t.Errorf("history len: %v != %v\n", len(sim.History), nf)
	}
}

// TestHistoryLog exercises the etable logging of recorded history.
func TestHistoryLog(t *testing.T) {
	sim := NewSim()
	for i := 0; i < 20; i++ {
		sim.Frame()
	}
	dt := &etable.Table{}
	sim.ConfigHistoryTable(dt)
	sim.LogHistory(dt)
	if dt.Rows != len(sim.History) {
		t.Errorf("table rows: %v != history len %v\n", dt.Rows, len(sim.History))
	}
	if md := dt.MetaData["mode"]; md != sim.Time.Mode.String() {
		t.Errorf("table mode metadata: %v != %v\n", md, sim.Time.Mode.String())
	}
	lst := len(sim.History) - 1
	if vm := dt.CellFloat("Vm", lst); math32.Abs(float32(vm)-sim.History[lst].Vm) > difTol {
		t.Errorf("logged Vm: %v != %v\n", vm, sim.History[lst].Vm)
	}
	if tv := dt.CellFloat("Time", lst); math32.Abs(float32(tv)-sim.History[lst].Time) > difTol {
		t.Errorf("logged Time: %v != %v\n", tv, sim.History[lst].Time)
	}
}

// TestParamsJSON round-trips parameters through the JSON writer / reader.
func TestParamsJSON(t *testing.T) {
	pr := Params{}
	pr.Defaults()
	pr.HiExcite()
	pr.Iext = 3.5

	var buf bytes.Buffer
	pr.WriteParamsJSON(&buf, 0)

	np := Params{}
	np.Defaults()
	if err := np.ReadParamsJSON(&buf); err != nil {
		t.Error(err)
	}
	if np.Gbar != pr.Gbar || np.Erev != pr.Erev || np.Cm != pr.Cm || np.Iext != pr.Iext {
		t.Errorf("params roundtrip mismatch: %v vs %v\n", np, pr)
	}
	if np.Rate.VRest != pr.Rate.VRest {
		t.Errorf("rate params roundtrip mismatch: %v vs %v\n", np.Rate, pr.Rate)
	}
}

// TestPresetsEnum exercises the string / JSON representation of presets.
func TestPresetsEnum(t *testing.T) {
	if Baseline.String() != "Baseline" || HiExcite.String() != "HiExcite" {
		t.Errorf("preset String() mismatch\n")
	}
	var p Presets
	if err := p.FromString("HiExcite"); err != nil {
		t.Error(err)
	}
	if p != HiExcite {
		t.Errorf("FromString: %v != HiExcite\n", p)
	}
}
