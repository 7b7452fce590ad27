// Package app wires the pipeline stages together for one invocation: load
// the type registry, synthesize and filter the module set, run the plugin
// pipeline, generate source, and hand the results to the external toolchain.
package app
