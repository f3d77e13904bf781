// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hodhux

import (
	"fmt"
	"unsafe"
)

var (
	// NeuronVars are the accessible Neuron state variables, in field order
	NeuronVars = []string{"Vm", "M", "H", "N", "Time"}

	NeuronVarsMap map[string]int
)

func init() {
	NeuronVarsMap = make(map[string]int, len(NeuronVars))
	for i, v := range NeuronVars {
		NeuronVarsMap[v] = i
	}
}

// hodhux.Neuron holds the complete Hodgkin-Huxley state vector for one
// neuron at one simulated instant.  It is a plain value: the integrator
// replaces the whole struct on every step, never mutating parts in place.
// All variables must be float32 and in contiguous order for the VarByIndex
// access below.
type Neuron struct {

	// membrane potential (mV) -- unconstrained: pathological parameters can
	// drive it to NaN / Inf and those values propagate unclamped
	Vm float32

	// sodium channel activation gate -- a probability in [0, 1] at
	// equilibrium, but not clamped during integration, so explicit Euler
	// overshoot can transiently push it outside that range
	M float32

	// sodium channel inactivation gate
	H float32

	// potassium channel activation gate
	N float32

	// simulation time (ms) for this state -- advances by exactly dt per step
	Time float32
}

// VarNames returns the names of the accessible state variables
func (nrn *Neuron) VarNames() []string {
	return NeuronVars
}

// NeuronVarIndexByName returns the index of the variable in the Neuron, or error
func NeuronVarIndexByName(varNm string) (int, error) {
	i, ok := NeuronVarsMap[varNm]
	if !ok {
		return 0, fmt.Errorf("Neuron VarIndexByName: variable name: %v not valid", varNm)
	}
	return i, nil
}

// VarByIndex returns variable using index (0 = first variable in NeuronVars list)
func (nrn *Neuron) VarByIndex(idx int) float32 {
	fv := (*float32)(unsafe.Pointer(uintptr(unsafe.Pointer(nrn)) + uintptr(4*idx)))
	return *fv
}

// VarByName returns variable by name, or error
func (nrn *Neuron) VarByName(varNm string) (float32, error) {
	i, err := NeuronVarIndexByName(varNm)
	if err != nil {
		return 0, err
	}
	return nrn.VarByIndex(i), nil
}
