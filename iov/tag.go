// Copyright 2026 The Cosim Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package iov implements the tagged algebraic input/output value that wires
// heterogeneous co-simulation components together by name.
package iov

// Tag identifies a named routing point in the co-simulation graph: a FEM
// input/output port, a wind-load channel or a controller port. Tag is a
// small integer over a closed, deduplicated catalog so identity comparison
// is O(1) and never a string comparison on the hot path.
type Tag uint16

// The canonical tag catalog. Some spellings exist in more than one form in
// the source this harness is derived from (e.g. "MountCmd" vs "CMD",
// "MCM2RB6D" vs "MCM2RB6F"); exactly one spelling is kept per concept.
const (
	TagNone Tag = iota

	// mount drive / control
	MountCmd
	MountEncoders
	MountTorques
	OSSAzDriveTorque
	OSSElDriveTorque
	OSSRotDriveTorque
	OSSAzEncoderAngle
	OSSElEncoderAngle
	OSSRotEncoderAngle
	OSSAzDriveD
	OSSElDriveD
	OSSRotDriveD
	OSSBaseEnc6D

	// M1 hardpoints / CG / cell
	M1HPCmd
	M1HPLC
	M1CGFM
	M1ActF
	M1ActD
	OSSHardpointD
	OSSM1Lcl6F
	OSSM1Lcl6D
	OSSCellLcl6F
	OSSCellLcl6D
	M1EdgeSensors
	M1RigidBodyMotion
	M1OutForce
	M1BendingModes

	// M2 / mount-control M2
	MCM2RB6D
	MCM2Lcl6F
	MCM2SmHexF
	MCM2SmHexD
	MCM2PZTF
	MCM2PZTD
	MCM2CP6D
	MCM2FSMCmd
	MCM2TipTilt

	// structural (wind-load) ports
	OSSTopEnd6F
	OSSTopEnd6D
	OSSTruss6F
	OSSTruss6D
	OSSGIR6F
	OSSGIR6D
	OSSCRING6F
	OSSCRING6D
	MCM2LclForce6F

	// additional structural outputs
	OSSM1Sys6D
	OSSM1EdgeSensors
	OSSTrussIF6D
	OSSGIRIF6D
	OSSC1TT
	OSSPayloads6D

	// enclosure / dome
	OSSDomeF
	OSSDomeD
	OSSDomeShutterF
	OSSDomeShutterD

	// M3 / science path
	MCM3Lcl6F
	MCM3Lcl6D
	MCM3RB6D

	// sensors / environment
	WindSpeed
	WindDirection
	SensorNoise
	GuideStarWFE
	SeeingFWHM

	// mount PDR (position / drive / rate) diagnostics
	OSSAzDriveF
	OSSElDriveF
	OSSRotDriveF
	OSSAzBrakeF
	OSSElBrakeF
	OSSRotBrakeF

	// misc / telltale probes
	SimTime
	TickIndex
	StateVector

	// reserve room for future growth without renumbering existing tags
	tagCount
)

var tagNames = [tagCount]string{
	TagNone:            "TagNone",
	MountCmd:           "MountCmd",
	MountEncoders:      "MountEncoders",
	MountTorques:       "MountTorques",
	OSSAzDriveTorque:   "OSSAzDriveTorque",
	OSSElDriveTorque:   "OSSElDriveTorque",
	OSSRotDriveTorque:  "OSSRotDriveTorque",
	OSSAzEncoderAngle:  "OSSAzEncoderAngle",
	OSSElEncoderAngle:  "OSSElEncoderAngle",
	OSSRotEncoderAngle: "OSSRotEncoderAngle",
	OSSAzDriveD:        "OSSAzDriveD",
	OSSElDriveD:        "OSSElDriveD",
	OSSRotDriveD:       "OSSRotDriveD",
	OSSBaseEnc6D:       "OSSBaseEnc6D",

	M1HPCmd:            "M1HPCmd",
	M1HPLC:             "M1HPLC",
	M1CGFM:             "M1CGFM",
	M1ActF:             "M1ActF",
	M1ActD:             "M1ActD",
	OSSHardpointD:      "OSSHardpointD",
	OSSM1Lcl6F:         "OSSM1Lcl6F",
	OSSM1Lcl6D:         "OSSM1Lcl6D",
	OSSCellLcl6F:       "OSSCellLcl6F",
	OSSCellLcl6D:       "OSSCellLcl6D",
	M1EdgeSensors:      "M1EdgeSensors",
	M1RigidBodyMotion:  "M1RigidBodyMotion",
	M1OutForce:         "M1OutForce",
	M1BendingModes:     "M1BendingModes",

	MCM2RB6D:    "MCM2RB6D",
	MCM2Lcl6F:   "MCM2Lcl6F",
	MCM2SmHexF:  "MCM2SmHexF",
	MCM2SmHexD:  "MCM2SmHexD",
	MCM2PZTF:    "MCM2PZTF",
	MCM2PZTD:    "MCM2PZTD",
	MCM2CP6D:    "MCM2CP6D",
	MCM2FSMCmd:  "MCM2FSMCmd",
	MCM2TipTilt: "MCM2TipTilt",

	OSSTopEnd6F:    "OSSTopEnd6F",
	OSSTopEnd6D:    "OSSTopEnd6D",
	OSSTruss6F:     "OSSTruss6F",
	OSSTruss6D:     "OSSTruss6D",
	OSSGIR6F:       "OSSGIR6F",
	OSSGIR6D:       "OSSGIR6D",
	OSSCRING6F:     "OSSCRING6F",
	OSSCRING6D:     "OSSCRING6D",
	MCM2LclForce6F: "MCM2LclForce6F",

	OSSM1Sys6D:       "OSSM1Sys6D",
	OSSM1EdgeSensors: "OSSM1EdgeSensors",
	OSSTrussIF6D:     "OSSTrussIF6D",
	OSSGIRIF6D:       "OSSGIRIF6D",
	OSSC1TT:          "OSSC1TT",
	OSSPayloads6D:    "OSSPayloads6D",

	OSSDomeF:        "OSSDomeF",
	OSSDomeD:        "OSSDomeD",
	OSSDomeShutterF: "OSSDomeShutterF",
	OSSDomeShutterD: "OSSDomeShutterD",

	MCM3Lcl6F: "MCM3Lcl6F",
	MCM3Lcl6D: "MCM3Lcl6D",
	MCM3RB6D:  "MCM3RB6D",

	WindSpeed:     "WindSpeed",
	WindDirection: "WindDirection",
	SensorNoise:   "SensorNoise",
	GuideStarWFE:  "GuideStarWFE",
	SeeingFWHM:    "SeeingFWHM",

	OSSAzDriveF:  "OSSAzDriveF",
	OSSElDriveF:  "OSSElDriveF",
	OSSRotDriveF: "OSSRotDriveF",
	OSSAzBrakeF:  "OSSAzBrakeF",
	OSSElBrakeF:  "OSSElBrakeF",
	OSSRotBrakeF: "OSSRotBrakeF",

	SimTime:     "SimTime",
	TickIndex:   "TickIndex",
	StateVector: "StateVector",
}

// String returns the canonical spelling of t, for logging and error
// messages only -- never used to establish identity.
func (t Tag) String() string {
	if int(t) < 0 || int(t) >= len(tagNames) || tagNames[t] == "" {
		return "Tag(?)"
	}
	return tagNames[t]
}

// Valid reports whether t is a known catalog entry (excluding TagNone).
func (t Tag) Valid() bool {
	return t > TagNone && int(t) < int(tagCount) && tagNames[t] != ""
}
