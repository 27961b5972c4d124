// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logger

import (
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/plt"
	"github.com/gmto-project/cosim/iov"
)

// PlotSeries dumps the per-channel time series of tag to a PNG under dirout,
// one curve per vector component, an optional diagnostic mirroring the
// teacher's Splot/Plot/Save sequence (out/plotting.go).
func (l *Log) PlotSeries(tag iov.Tag, dirout, fn string) {
	var t []float64
	var series [][]float64
	for _, tick := range l.order {
		for _, v := range l.entries[tick] {
			if v.Tag == tag {
				t = append(t, l.TimeSeconds(tick))
				series = append(series, v.Vec)
				break
			}
		}
	}
	if len(series) == 0 {
		return
	}
	ncomp := len(series[0])
	plt.Reset(false, nil)
	for c := 0; c < ncomp; c++ {
		y := make([]float64, len(series))
		for i, row := range series {
			if c < len(row) {
				y[i] = row[c]
			}
		}
		plt.Plot(t, y, io.Sf("label='%s[%d]', clip_on=0", tag.String(), c))
	}
	plt.Gll("$t$", tag.String(), "")
	plt.SaveD(dirout, fn)
}
