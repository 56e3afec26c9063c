package fid

const version = "0.9.10"

// Version returns the version of the filter design engine.
func Version() string { return version }
