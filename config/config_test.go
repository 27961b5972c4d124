// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func TestReadAppliesDefaultsAndPostProcess(tst *testing.T) {
	chk.PrintTitle("config.Read applies defaults then post-processes")
	dir := tst.TempDir()
	path := filepath.Join(dir, "run.json")
	body := `{
		"desc": "smoke test",
		"fem_path": "fem.gob",
		"wind_loads_path": "wind.gob",
		"input_tags": [38],
		"output_tags": [7]
	}`
	buf := bytes.NewBufferString(body)
	io.WriteFile(path, buf)

	cfg, err := Read(path)
	if err != nil {
		tst.Fatalf("Read failed: %v", err)
	}
	if cfg.SamplingHz != 1000 {
		tst.Fatalf("SamplingHz = %v, want default 1000", cfg.SamplingHz)
	}
	if cfg.SecondaryPeriod != 10 {
		tst.Fatalf("SecondaryPeriod = %d, want default 10", cfg.SecondaryPeriod)
	}
	if cfg.Encoder != "gob" {
		tst.Fatalf("Encoder = %q, want default gob", cfg.Encoder)
	}
	if cfg.DirOut == "" {
		tst.Fatalf("DirOut was not post-processed to a default")
	}
}

func TestReadFailsOnMissingFile(tst *testing.T) {
	chk.PrintTitle("config.Read fails cleanly on a missing file")
	_, err := Read(filepath.Join(tst.TempDir(), "missing.json"))
	if err == nil {
		tst.Fatalf("expected an error")
	}
}
