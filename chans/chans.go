// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package chans provides the per-channel value triples for the Hodgkin-Huxley
point-neuron model: voltage-gated sodium, voltage-gated (delayed rectifier)
potassium, and the passive leak channel.  The same triple is used for
maximal conductances and for reversal potentials.
*/
package chans

// Chans are the ion channels used in computing the Hodgkin-Huxley
// membrane currents
type Chans struct {
	Na float32 `desc:"voltage-gated sodium channels, gated by m (activation) and h (inactivation) -- drive the rising phase of the action potential"`
	K  float32 `desc:"voltage-gated delayed-rectifier potassium channels, gated by n -- drive repolarization"`
	L  float32 `desc:"constant leak channels -- not gated -- determines the resting potential together with the gated channels"`
}

// SetAll sets all the values
func (ch *Chans) SetAll(na, k, l float32) {
	ch.Na, ch.K, ch.L = na, k, l
}
