// Copyright (c) 2024, The Emergent Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hodhux

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/goki/gi/gi"
	"github.com/goki/ki/indent"
)

// WriteParamsJSON writes the parameters in a JSON text format.  We build in
// the indentation logic directly to keep the output stable and readable.
func (pr *Params) WriteParamsJSON(w io.Writer, depth int) {
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("{\n"))
	depth++
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"Cm\": %g,\n", pr.Cm)))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"Gbar\": {\"Na\": %g, \"K\": %g, \"L\": %g},\n", pr.Gbar.Na, pr.Gbar.K, pr.Gbar.L)))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"Erev\": {\"Na\": %g, \"K\": %g, \"L\": %g},\n", pr.Erev.Na, pr.Erev.K, pr.Erev.L)))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"Iext\": %g,\n", pr.Iext)))
	w.Write(indent.TabBytes(depth))
	w.Write([]byte(fmt.Sprintf("\"Rate\": {\"VRest\": %g, \"SingTol\": %g}\n", pr.Rate.VRest, pr.Rate.SingTol)))
	depth--
	w.Write(indent.TabBytes(depth))
	w.Write([]byte("}\n"))
}

// ReadParamsJSON reads the parameters from a JSON text stream, then calls
// Update to recompute any derived values
func (pr *Params) ReadParamsJSON(r io.Reader) error {
	b, err := io.ReadAll(r)
	if err != nil {
		log.Println(err)
		return err
	}
	err = json.Unmarshal(b, pr)
	if err != nil {
		log.Println(err)
		return err
	}
	pr.Update()
	return nil
}

// SaveParamsJSON saves the parameters to a JSON-formatted file
func (pr *Params) SaveParamsJSON(filename gi.FileName) error {
	fp, err := os.Create(string(filename))
	defer fp.Close()
	if err != nil {
		log.Println(err)
		return err
	}
	pr.WriteParamsJSON(fp, 0)
	return nil
}

// OpenParamsJSON opens the parameters from a JSON-formatted file
func (pr *Params) OpenParamsJSON(filename gi.FileName) error {
	fp, err := os.Open(string(filename))
	defer fp.Close()
	if err != nil {
		log.Println(err)
		return err
	}
	return pr.ReadParamsJSON(fp)
}
