// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hodhux is the overall repository for an interactive Hodgkin-Huxley
membrane potential simulation implemented in the Go language (golang).

This top-level of the repository has no functional code -- everything is
organized into the following sub-repositories:

* hodhux: the core simulation engine -- the neuron state, the biophysical
parameters, the fixed-step explicit Euler integrator, and the frame-driven
simulation loop with pulse injection and bounded state history.

* rates: the six voltage-dependent rate functions (alpha / beta for each
of the m, h, n gating variables), as pure functions of membrane potential.

* chans: the per-channel (Na, K, L) value triples used for maximal
conductances and reversal potentials.

* examples: these actually compile into runnable programs.
examples/neuron is an interactive GUI that plots the membrane potential
and gating variables as the simulation runs, with on-demand current
pulse injection.
*/
package hodhux
