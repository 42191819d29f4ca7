/*
 * errors.go, part of godock.
 *
 * Copyright 2023 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package dock

import "fmt"

// Error is the interface for errors that all packages in this library
// implement. The Decorate method allows to add and retrieve info from the
// error, without changing its type or wrapping it around something else.
type Error interface {
	Error() string
	Decorate(string) []string //Decorate adds the given string to the "decoration" slice of the error and returns the resulting slice. If given an empty string, it only returns the current slice. The slice should contain the names of the functions in the calling stack, plus, for each, any relevant extra information.
}

// ErrKind discriminates the failure classes of the library, so callers can
// branch on the class without matching message strings.
type ErrKind int

const (
	//ErrUnsupportedEntity: the entity is not of a chemical category recognized for docking.
	ErrUnsupportedEntity ErrKind = iota + 1
	//ErrMissingTopology: an atom lacks its topology assignment (atom type and charge).
	ErrMissingTopology
	//ErrGeometry: degenerate input to a shape or hull construction.
	ErrGeometry
	//ErrConfiguration: missing, malformed or mutually exclusive arguments.
	ErrConfiguration
	//ErrShapeMismatch: an externally supplied coordinate set does not match the loaded entity.
	ErrShapeMismatch
	//ErrState: a grid or coordinate was requested before the corresponding entity was loaded.
	ErrState
)

// CError is the concrete error type of the dock package. It fulfills the
// dock.Error interface and carries the kind of failure.
type CError struct {
	kind    ErrKind
	message string
	deco    []string
}

func (err CError) Error() string { return err.message }

// Decorate adds the dec string to the decoration slice of strings of the
// error, and returns the resulting slice.
func (err CError) Decorate(dec string) []string {
	//Even though the receiver is not a pointer, this works because deco is
	//a slice, hence a pointer itself.
	if dec != "" {
		err.deco = append(err.deco, dec)
	}
	return err.deco
}

// Kind returns the failure class of the error.
func (err CError) Kind() ErrKind { return err.kind }

type kinder interface {
	Kind() ErrKind
}

func isKind(err error, k ErrKind) bool {
	if err == nil {
		return false
	}
	e, ok := err.(kinder)
	return ok && e.Kind() == k
}

// IsUnsupportedEntity returns whether err reports an entity of a chemical
// category not usable for docking.
func IsUnsupportedEntity(err error) bool { return isKind(err, ErrUnsupportedEntity) }

// IsMissingTopology returns whether err reports an atom without topology
// assignment.
func IsMissingTopology(err error) bool { return isKind(err, ErrMissingTopology) }

// IsGeometry returns whether err reports degenerate geometric input.
func IsGeometry(err error) bool { return isKind(err, ErrGeometry) }

// IsConfiguration returns whether err reports invalid arguments.
func IsConfiguration(err error) bool { return isKind(err, ErrConfiguration) }

// IsShapeMismatch returns whether err reports a coordinate-count mismatch.
func IsShapeMismatch(err error) bool { return isKind(err, ErrShapeMismatch) }

// IsState returns whether err reports use of an unloaded generator.
func IsState(err error) bool { return isKind(err, ErrState) }

func errorf(kind ErrKind, format string, a ...interface{}) CError {
	return CError{kind: kind, message: fmt.Sprintf(format, a...)}
}

//errDecorate asserts that the error implements dock.Error and decorates it
//with the caller's name before returning it. Used with any other error type
//it will panic.
func errDecorate(err error, caller string) error {
	err2 := err.(Error)
	err2.Decorate(caller)
	return err2
}
