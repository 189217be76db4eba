package config

import "runtime"

// numCPU is indirected for tests.
var numCPU = runtime.NumCPU
