// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hodhux

///////////////////////////////////////////////////////////////////////
//  sim.go contains the frame-driven simulation loop: sub-step batching,
//  pulse injection, and the bounded history of state snapshots

// PulseParams configures the transient current stimulus used to trigger
// an action potential on demand
type PulseParams struct {
	Dur float32 `def:"20" min:"0" desc:"duration (ms) of an injected pulse -- InjectPulse sets the countdown to this value, overwriting any active pulse"`
	Amp float32 `def:"20" desc:"bonus current (uA/cm^2) added to Params.Iext on every sub-step while a pulse is active"`
}

func (pp *PulseParams) Defaults() {
	pp.Dur = 20
	pp.Amp = 20
}

func (pp *PulseParams) Update() {
}

// hodhux.Sim owns the complete state of one running simulation: the live
// neuron state, the active parameters, timing, the pulse countdown, and a
// bounded history of per-frame state snapshots.  The host rendering layer
// holds a single Sim, calls Frame once per rendered frame, and reads state
// between frames.  Everything is strictly single-threaded and synchronous:
// no step ever blocks or yields, so no locking is needed as long as all
// calls come from the one owning goroutine.  If a multi-threaded host is
// ever involved, HistoryStates returns a fully-built copy precisely so the
// live buffer is never published while being mutated.
type Sim struct {

	// active biophysical parameters.  Fields can be edited directly
	// (full or partial updates) -- call Update after, and note that no
	// validation is performed; new values take effect on the next sub-step
	Params Params `view:"no-inline" desc:"active biophysical parameters -- edit directly and call Update"`

	// current neuron state -- replaced wholesale every sub-step
	Neuron Neuron `view:"inline" desc:"current neuron state"`

	// timing state: dt, sub-steps per frame, counters
	Time Time `view:"inline" desc:"timing state and parameters"`

	// transient stimulus configuration
	Pulse PulseParams `view:"inline" desc:"pulse stimulus parameters"`

	// currently selected parameter preset -- Init restores the active
	// parameters to this preset's defaults
	Preset Presets `desc:"currently selected parameter preset"`

	// remaining duration (ms) of the active pulse -- while positive the
	// pulse bonus current is applied; decremented by dt each sub-step and
	// never re-arms on its own
	PulseLeft float32 `inactive:"+" desc:"remaining pulse duration (ms)"`

	// maximum number of history snapshots retained -- oldest evicted first
	HistCap int `def:"300" desc:"history snapshot capacity"`

	// per-frame state snapshots, oldest first, most recent appended --
	// written only after a frame's full sub-step batch completes, read-only
	// to the visualization layer
	History []Neuron `view:"-"`
}

// NewSim returns a new Sim with default parameters, initialized to the
// resting state
func NewSim() *Sim {
	ss := &Sim{}
	ss.Defaults()
	ss.Init()
	return ss
}

// Defaults sets default parameter values for the currently selected preset
func (ss *Sim) Defaults() {
	ss.Params.ApplyPreset(ss.Preset)
	ss.Time.Defaults()
	ss.Pulse.Defaults()
	ss.HistCap = 300
}

// Init resets the simulation: neuron back to the resting steady state,
// pulse cleared, history cleared, counters zeroed, and the active
// parameters restored to the selected preset's defaults
func (ss *Sim) Init() {
	ss.Params.ApplyPreset(ss.Preset)
	ss.Neuron = ss.Params.InitNeuron()
	ss.Time.Reset()
	ss.PulseLeft = 0
	ss.History = ss.History[:0]
}

// CurIext returns the effective injected current for the current sub-step:
// the steady Params.Iext plus the pulse bonus while a pulse is active
func (ss *Sim) CurIext() float32 {
	if ss.PulseLeft > 0 {
		return ss.Params.Iext + ss.Pulse.Amp
	}
	return ss.Params.Iext
}

// StepNeuron advances the neuron by one integration sub-step, applying
// and decrementing any active pulse
func (ss *Sim) StepNeuron() {
	iext := ss.CurIext()
	if ss.PulseLeft > 0 {
		ss.PulseLeft -= ss.Time.TimePerStep
	}
	ss.Neuron = ss.Params.StepNeuron(ss.Neuron, iext, ss.Time.TimePerStep)
	ss.Time.StepInc()
}

// Frame runs one rendered frame's worth of sub-steps and then appends one
// snapshot of the resulting state to History, evicting the oldest snapshot
// when at capacity.  The snapshot is taken only after the full sub-step
// batch, so a reader between frames never observes a partially-updated
// frame.  Sub-steps are strictly sequential: each consumes exactly the
// state produced by the previous one.
func (ss *Sim) Frame() {
	ss.Time.FrameStart()
	for stp := 0; stp < ss.Time.StepsPerFrame; stp++ {
		ss.StepNeuron()
	}
	ss.Time.FrameInc()
	ss.AddHistory(ss.Neuron)
}

// AddHistory appends the given state snapshot to the history, evicting the
// oldest snapshot if capacity is exceeded
func (ss *Sim) AddHistory(nrn Neuron) {
	if ss.HistCap <= 0 {
		return
	}
	if len(ss.History) > ss.HistCap { // cap was lowered at runtime
		over := len(ss.History) - ss.HistCap
		copy(ss.History, ss.History[over:])
		ss.History = ss.History[:ss.HistCap]
	}
	if len(ss.History) >= ss.HistCap {
		copy(ss.History, ss.History[1:])
		ss.History[len(ss.History)-1] = nrn
	} else {
		ss.History = append(ss.History, nrn)
	}
}

// InjectPulse arms the transient stimulus: sets the pulse countdown to
// Pulse.Dur, overwriting any active countdown (re-triggering is an
// overwrite, not an accumulation)
func (ss *Sim) InjectPulse() {
	ss.PulseLeft = ss.Pulse.Dur
}

// SelectPreset switches the active parameters to the given preset's
// values.  It deliberately does not reset the running neuron state: the
// membrane continues from wherever it was under the new parameters.
// Callers wanting a clean start should call Init after.
func (ss *Sim) SelectPreset(p Presets) {
	ss.Preset = p
	ss.Params.ApplyPreset(p)
}

// UpdateParams must be called after editing Params fields directly --
// the updated values take effect on the next sub-step
func (ss *Sim) UpdateParams() {
	ss.Params.Update()
}

// CurrentState returns a copy of the live neuron state, e.g. for driving
// per-frame display values
func (ss *Sim) CurrentState() Neuron {
	return ss.Neuron
}

// HistoryStates returns a copy of the recorded history snapshots, oldest
// first, most recent last.  The returned slice is independent of the live
// buffer and safe to hold across subsequent frames.
func (ss *Sim) HistoryStates() []Neuron {
	hist := make([]Neuron, len(ss.History))
	copy(hist, ss.History)
	return hist
}
