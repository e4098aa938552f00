// Package model defines the typed form structure shared by the builder
// operations, the validation engine, the renderers, and the FHIR converter.
// FormMetadata snapshots are treated as immutable values: the operations in
// pkg/form return new snapshots and the Clone helpers exist so editors can
// take working copies without aliasing slices back into the live model.
package model
