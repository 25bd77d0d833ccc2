// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package projects

import "fmt"

// Compilation settings for a VB6 project. The IDE stores each toggle
// as a signed 16-bit value in the .vbp: 0 and -1 for the two-valued
// settings, 0 through 2 for the optimization flavor. Unknown values
// keep the default and produce a diagnostic at the parse site.

// CompilationType selects p-code or native compilation. NativeCode
// carries the nine native-code toggles.
type CompilationType interface {
	isCompilationType()
}

// PCode is interpreted compilation.
type PCode struct{}

// NativeCode is compiled output plus its settings.
type NativeCode struct {
	Settings NativeCodeSettings
}

func (PCode) isCompilationType()      {}
func (NativeCode) isCompilationType() {}

// NativeCodeSettings aggregates the nine independent toggles.
type NativeCodeSettings struct {
	OptimizationType    OptimizationType
	FavorPentiumPro     PentiumProFavor
	CodeViewDebugInfo   CodeViewDebugInfo
	Aliasing            Aliasing
	BoundsCheck         BoundsCheck
	OverflowCheck       OverflowCheck
	FloatingPointCheck  FloatingPointCheck
	PentiumFDivBugCheck PentiumFDivBugCheck
	UnroundedFP         UnroundedFloatingPoint
}

// OptimizationType is the three-valued optimization flavor.
type OptimizationType int16

const (
	FavorFastCode  OptimizationType = 0
	FavorSmallCode OptimizationType = 1
	NoOptimization OptimizationType = 2
)

func (e OptimizationType) String() string {
	switch e {
	case FavorFastCode:
		return "FavorFastCode"
	case FavorSmallCode:
		return "FavorSmallCode"
	case NoOptimization:
		return "NoOptimization"
	default:
		return fmt.Sprintf("OptimizationType(%d)", int16(e))
	}
}

// PentiumProFavor selects Pentium Pro instruction scheduling.
type PentiumProFavor int16

const (
	NoPentiumProFavor PentiumProFavor = 0
	FavorPentiumPro   PentiumProFavor = -1
)

func (e PentiumProFavor) String() string {
	if e == FavorPentiumPro {
		return "FavorPentiumPro"
	}
	return "NoPentiumProFavor"
}

// CodeViewDebugInfo selects CodeView symbol output.
type CodeViewDebugInfo int16

const (
	NoDebugInfo     CodeViewDebugInfo = 0
	CreateDebugInfo CodeViewDebugInfo = -1
)

func (e CodeViewDebugInfo) String() string {
	if e == CreateDebugInfo {
		return "CreateDebugInfo"
	}
	return "NoDebugInfo"
}

// Aliasing tells the compiler whether names may alias.
type Aliasing int16

const (
	AssumeAliasing   Aliasing = 0
	AssumeNoAliasing Aliasing = -1
)

func (e Aliasing) String() string {
	if e == AssumeNoAliasing {
		return "AssumeNoAliasing"
	}
	return "AssumeAliasing"
}

// BoundsCheck toggles array bounds checking.
type BoundsCheck int16

const (
	CheckBounds   BoundsCheck = 0
	NoBoundsCheck BoundsCheck = -1
)

func (e BoundsCheck) String() string {
	if e == NoBoundsCheck {
		return "NoBoundsCheck"
	}
	return "CheckBounds"
}

// OverflowCheck toggles integer overflow checking.
type OverflowCheck int16

const (
	CheckOverflow   OverflowCheck = 0
	NoOverflowCheck OverflowCheck = -1
)

func (e OverflowCheck) String() string {
	if e == NoOverflowCheck {
		return "NoOverflowCheck"
	}
	return "CheckOverflow"
}

// FloatingPointCheck toggles safe floating point error handling.
type FloatingPointCheck int16

const (
	CheckFloatingPoint   FloatingPointCheck = 0
	NoFloatingPointCheck FloatingPointCheck = -1
)

func (e FloatingPointCheck) String() string {
	if e == NoFloatingPointCheck {
		return "NoFloatingPointCheck"
	}
	return "CheckFloatingPoint"
}

// PentiumFDivBugCheck toggles the Pentium FDIV workaround. The IDE
// default is to skip the check.
type PentiumFDivBugCheck int16

const (
	CheckPentiumFDivBug   PentiumFDivBugCheck = 0
	NoPentiumFDivBugCheck PentiumFDivBugCheck = -1
)

func (e PentiumFDivBugCheck) String() string {
	if e == CheckPentiumFDivBug {
		return "CheckPentiumFDivBug"
	}
	return "NoPentiumFDivBugCheck"
}

// UnroundedFloatingPoint allows the compiler to keep intermediate
// floating point results unrounded.
type UnroundedFloatingPoint int16

const (
	DisallowUnroundedFP UnroundedFloatingPoint = 0
	AllowUnroundedFP    UnroundedFloatingPoint = -1
)

func (e UnroundedFloatingPoint) String() string {
	if e == AllowUnroundedFP {
		return "AllowUnroundedFP"
	}
	return "DisallowUnroundedFP"
}

// defaultNativeCodeSettings mirrors the IDE's defaults.
func defaultNativeCodeSettings() NativeCodeSettings {
	return NativeCodeSettings{
		PentiumFDivBugCheck: NoPentiumFDivBugCheck,
	}
}

// toggleFromValue maps "0"/"-1" onto a two-valued setting.
func toggleFromValue(value string) (int16, bool) {
	switch value {
	case "0":
		return 0, true
	case "-1":
		return -1, true
	default:
		return 0, false
	}
}
