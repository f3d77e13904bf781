// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hodhux

import "github.com/emer/emergent/etime"

// hodhux.Time contains all the timing state and parameter information for
// running the simulation: the fixed integration step and the number of
// sub-steps batched per rendered frame.
type Time struct {

	// accumulated amount of time the simulation has been running,
	// in simulation-time (not real world time), in milliseconds.
	// Mirrors Neuron.Time for the live state.
	Time float32

	// step counter: number of integration sub-steps taken within the
	// current frame, 0 to StepsPerFrame-1
	Step int

	// total step count. this increments continuously from whenever
	// it was last reset
	StepTot int

	// frame counter: number of completed frames (sub-step batches plus
	// history snapshot) since last reset
	Frame int

	// amount of simulated time per integration step (ms): the fixed
	// explicit Euler dt.  No adaptive step-size control: accuracy is
	// deliberately traded for simplicity.
	TimePerStep float32 `def:"0.05"`

	// number of integration sub-steps to run per rendered frame: the
	// simulation cadence is decoupled from (but triggered by) the host
	// frame callback
	StepsPerFrame int `def:"5"`

	// current evaluation mode, e.g., Test -- for scoping logged data
	Mode etime.Modes
}

// NewTime returns a new Time struct with default parameters
func NewTime() *Time {
	tm := &Time{}
	tm.Defaults()
	return tm
}

// Defaults sets default values
func (tm *Time) Defaults() {
	tm.TimePerStep = 0.05
	tm.StepsPerFrame = 5
	tm.Mode = etime.Test
}

// Reset resets the counters all back to zero
func (tm *Time) Reset() {
	tm.Time = 0
	tm.Step = 0
	tm.StepTot = 0
	tm.Frame = 0
	if tm.TimePerStep == 0 {
		tm.Defaults()
	}
}

// FrameStart starts a new frame of sub-steps
func (tm *Time) FrameStart() {
	tm.Step = 0
}

// StepInc increments at the sub-step level
func (tm *Time) StepInc() {
	tm.Step++
	tm.StepTot++
	tm.Time += tm.TimePerStep
}

// FrameInc increments at the frame level
func (tm *Time) FrameInc() {
	tm.Frame++
}
