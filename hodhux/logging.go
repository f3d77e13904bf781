// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hodhux

import (
	"fmt"
	"strconv"

	"github.com/c2h5oh/datasize"
	"github.com/emer/etable/etable"
	"github.com/emer/etable/etensor"
)

// LogPrec is precision for saving float values in logs
const LogPrec = 4

// ConfigHistoryTable configures the given table with one column per neuron
// state variable, for recording history snapshots
func (ss *Sim) ConfigHistoryTable(dt *etable.Table) {
	dt.SetMetaData("name", "HistoryTable")
	dt.SetMetaData("desc", "per-frame neuron state history")
	dt.SetMetaData("mode", ss.Time.Mode.String())
	dt.SetMetaData("read-only", "true")
	dt.SetMetaData("precision", strconv.Itoa(LogPrec))

	sch := etable.Schema{
		{Name: "Time", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "Vm", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "M", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "H", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
		{Name: "N", Type: etensor.FLOAT64, CellShape: nil, DimNames: nil},
	}
	dt.SetFromSchema(sch, 0)
}

// LogHistory writes the current history snapshots into the given table,
// replacing its rows.  This is a one-way export for plotting and saving:
// the live buffer is unaffected and the simulation itself persists nothing.
func (ss *Sim) LogHistory(dt *etable.Table) {
	dt.SetNumRows(len(ss.History))
	for ri := range ss.History {
		nrn := &ss.History[ri]
		for vi, vnm := range NeuronVars {
			dt.SetCellFloat(vnm, ri, float64(nrn.VarByIndex(vi)))
		}
	}
}

// HistoryMemReport returns a string report of the memory used by the
// history buffer, in human-readable size units
func (ss *Sim) HistoryMemReport() string {
	esz := 4 * len(NeuronVars)
	used := uint64(esz * len(ss.History))
	tot := uint64(esz * ss.HistCap)
	return fmt.Sprintf("History: %d / %d snapshots\t Mem: %v / %v", len(ss.History), ss.HistCap,
		(datasize.ByteSize)(used).HumanReadable(), (datasize.ByteSize)(tot).HumanReadable())
}
