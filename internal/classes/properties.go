// Copyright (c) 2025 Michael D Henderson. All rights reserved.

package classes

import "fmt"

// The class header's five properties are small closed enums mapped
// from the integer values the IDE writes. Boolean-style properties
// treat -1 as true and anything else as the false variant; the
// multi-valued ones fall back to the zero variant when in doubt.

// FileUsage is the MultiUse property.
type FileUsage int

const (
	MultiUse FileUsage = iota
	SingleUse
)

func (e FileUsage) String() string {
	switch e {
	case MultiUse:
		return "MultiUse"
	case SingleUse:
		return "SingleUse"
	default:
		return fmt.Sprintf("FileUsage(%d)", int(e))
	}
}

// FileUsageFromValue maps the stored integer: -1 is MultiUse.
func FileUsageFromValue(v int) FileUsage {
	if v == -1 {
		return MultiUse
	}
	return SingleUse
}

// Persistence is the Persistable property.
type Persistence int

const (
	NotPersistable Persistence = iota
	Persistable
)

func (e Persistence) String() string {
	switch e {
	case NotPersistable:
		return "NotPersistable"
	case Persistable:
		return "Persistable"
	default:
		return fmt.Sprintf("Persistence(%d)", int(e))
	}
}

// PersistenceFromValue maps the stored integer: -1 is Persistable.
func PersistenceFromValue(v int) Persistence {
	if v == -1 {
		return Persistable
	}
	return NotPersistable
}

// DataBindingBehavior is the DataBindingBehavior property.
type DataBindingBehavior int

const (
	DataBindingNone DataBindingBehavior = iota
	DataBindingSimple
	DataBindingComplex
)

func (e DataBindingBehavior) String() string {
	switch e {
	case DataBindingNone:
		return "None"
	case DataBindingSimple:
		return "Simple"
	case DataBindingComplex:
		return "Complex"
	default:
		return fmt.Sprintf("DataBindingBehavior(%d)", int(e))
	}
}

// DataBindingBehaviorFromValue maps 0, 1, 2; anything else defaults
// to the zero variant.
func DataBindingBehaviorFromValue(v int) DataBindingBehavior {
	switch v {
	case 1:
		return DataBindingSimple
	case 2:
		return DataBindingComplex
	default:
		return DataBindingNone
	}
}

// DataSourceBehavior is the DataSourceBehavior property.
type DataSourceBehavior int

const (
	DataSourceNone DataSourceBehavior = iota
	DataSource
)

func (e DataSourceBehavior) String() string {
	switch e {
	case DataSourceNone:
		return "None"
	case DataSource:
		return "DataSource"
	default:
		return fmt.Sprintf("DataSourceBehavior(%d)", int(e))
	}
}

// DataSourceBehaviorFromValue maps 1 to DataSource; anything else
// defaults to the zero variant.
func DataSourceBehaviorFromValue(v int) DataSourceBehavior {
	if v == 1 {
		return DataSource
	}
	return DataSourceNone
}

// MtsStatus is the MTSTransactionMode property.
type MtsStatus int

const (
	NotAnMTSObject MtsStatus = iota
	NoTransactions
	RequiresTransaction
	UsesTransaction
	RequiresNewTransaction
)

func (e MtsStatus) String() string {
	switch e {
	case NotAnMTSObject:
		return "NotAnMTSObject"
	case NoTransactions:
		return "NoTransactions"
	case RequiresTransaction:
		return "RequiresTransaction"
	case UsesTransaction:
		return "UsesTransaction"
	case RequiresNewTransaction:
		return "RequiresNewTransaction"
	default:
		return fmt.Sprintf("MtsStatus(%d)", int(e))
	}
}

// MtsStatusFromValue maps 0 through 4; anything else defaults to the
// zero variant.
func MtsStatusFromValue(v int) MtsStatus {
	if v < 0 || v > int(RequiresNewTransaction) {
		return NotAnMTSObject
	}
	return MtsStatus(v)
}

// ClassProperties is the structured BEGIN...END block.
type ClassProperties struct {
	MultiUse            FileUsage
	Persistable         Persistence
	DataBindingBehavior DataBindingBehavior
	DataSourceBehavior  DataSourceBehavior
	MTSTransactionMode  MtsStatus
}
