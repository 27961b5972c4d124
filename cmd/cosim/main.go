// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/mpi"
	"github.com/cpmech/gosl/utl"

	"github.com/gmto-project/cosim/config"
	"github.com/gmto-project/cosim/ctrl"
	"github.com/gmto-project/cosim/femmodel"
	"github.com/gmto-project/cosim/logger"
	"github.com/gmto-project/cosim/modal"
	"github.com/gmto-project/cosim/sim"
	"github.com/gmto-project/cosim/wind"
)

func main() {

	defer func() {
		if err := recover(); err != nil {
			if mpi.Rank() == 0 {
				chk.Verbose = true
				for i := 8; i > 3; i-- {
					chk.CallerInfo(i)
				}
				io.PfRed("ERROR: %v\n", err)
			}
		}
		mpi.Stop(false)
	}()
	mpi.Start(false)

	if mpi.Rank() == 0 {
		io.PfWhite("\ncosim -- GMT structural/control co-simulation harness\n\n")
	}

	flag.Parse()
	var cfgPath string
	if len(flag.Args()) > 0 {
		cfgPath = flag.Arg(0)
	} else {
		chk.Panic("Please, provide a configuration file. Ex.: run.json")
	}
	if io.FnExt(cfgPath) == "" {
		cfgPath += ".json"
	}

	defer utl.DoProf(false)()

	if err := run(cfgPath); err != nil {
		chk.Panic("run failed:\n%v", err)
	}
}

func run(cfgPath string) error {
	cfg, err := config.Read(cfgPath)
	if err != nil {
		return err
	}

	fem, err := femmodel.Load(cfg.FemPath)
	if err != nil {
		return err
	}

	w, err := wind.Load(cfg.WindLoadsPath)
	if err != nil {
		return err
	}

	builder := modal.NewBuilder(fem).
		Sampling(cfg.SamplingHz).
		U(cfg.InputTags...).
		Y(cfg.OutputTags...).
		NumWorkers(cfg.NumWorkers)
	if cfg.DampingSet {
		builder = builder.ProportionalDamping(cfg.DampingOverride)
	}
	if cfg.MaxEigenSet {
		builder = builder.MaxEigenFrequency(cfg.MaxEigenHz)
	}
	if len(cfg.FreqOverrides) > 0 {
		pairs := make([][2]float64, len(cfg.FreqOverrides))
		for i, o := range cfg.FreqOverrides {
			pairs[i] = [2]float64{float64(o.Index), o.HzNew}
		}
		builder = builder.EigenFrequencies(pairs...)
	}
	if cfg.DumpEigenFreqPath != "" {
		builder = builder.DumpEigenFrequencies(cfg.DumpEigenFreqPath)
	}

	solver, err := builder.Build()
	if err != nil {
		return err
	}
	defer solver.Close()

	log := logger.New(cfg.SamplingHz)

	driver := sim.NewDriver(w, solver, log,
		ctrl.New("mount.control"),
		ctrl.New("mount.drives"),
		ctrl.New("m1.hardpoint"),
		ctrl.New("m1.cg"),
		cfg.SecondaryPeriod,
	)

	io.Pf("running co-simulation: %s\n", cfg.Desc)
	if err := driver.Run(); err != nil {
		return err
	}

	io.Pfgreen("done: %d ticks recorded\n", len(log.Ticks()))
	return nil
}
