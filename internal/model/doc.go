// Package model defines the format-agnostic records the build pipeline
// operates on: firmware module types, module instances, and the resolved
// modules produced by synthesis.
package model
