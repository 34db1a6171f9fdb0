package nes

import "fmt"

// FaultKind classifies a fatal condition raised by the bus or a component.
type FaultKind int

const (
	// UnimplementedRegion is raised on any access to $4000-$401F.
	UnimplementedRegion FaultKind = iota
	// InvalidAddress is raised for addresses outside the classified partition.
	InvalidAddress
	// DanglingReference is raised when a weak handle no longer resolves.
	DanglingReference
	// BorrowConflict is raised when a component is already exclusively held.
	BorrowConflict
	// OutOfBounds is raised when RAM is indexed past its capacity.
	OutOfBounds
	// InvalidButton is raised for a controller button index outside 0-7.
	InvalidButton
	// InvalidRegister is raised for a PPU register index outside 0-7.
	InvalidRegister
)

func (k FaultKind) String() string {
	switch k {
	case UnimplementedRegion:
		return "unimplemented region"
	case InvalidAddress:
		return "invalid address"
	case DanglingReference:
		return "dangling reference"
	case BorrowConflict:
		return "borrow conflict"
	case OutOfBounds:
		return "out of bounds"
	case InvalidButton:
		return "invalid button"
	case InvalidRegister:
		return "invalid register"
	}
	return "unknown"
}

// Fault is a fatal condition. It is raised with panic and never returned by
// the component that detects it, only Guard turns it into an error.
type Fault struct {
	Kind    FaultKind
	Address uint16
	Message string
}

func (f *Fault) Error() string {
	return fmt.Sprintf("%s at 0x%04x: %s", f.Kind, f.Address, f.Message)
}

// raise panics with a Fault.
func raise(kind FaultKind, address uint16, format string, args ...interface{}) {
	panic(&Fault{Kind: kind, Address: address, Message: fmt.Sprintf(format, args...)})
}

// Guard runs f and converts a raised Fault into an error. Any other panic is
// propagated unchanged. The caller must stop on a non-nil error.
func Guard(f func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			fault, ok := r.(*Fault)
			if !ok {
				panic(r)
			}
			err = fault
		}
	}()
	f()
	return nil
}
