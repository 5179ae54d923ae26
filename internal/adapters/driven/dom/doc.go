// Package dom adapts goquery selections to the driven.Document and
// driven.Element ports, so saved or live HTML can be classified and mined
// for identifiers.
package dom
