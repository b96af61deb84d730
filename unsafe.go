package openinghours

import (
	"sync"
	"time"
	_ "unsafe" // for go:linkname
)

//go:linkname initLocal time.initLocal
func initLocal()

//go:linkname localLoc time.localLoc
var localLoc time.Location

//go:linkname localOnce time.localOnce
var localOnce sync.Once
