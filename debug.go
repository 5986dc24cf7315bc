package softbody

import (
	"fmt"
	"math"
)

const INFINITY = math.MaxFloat64

func assert(truth bool, msg ...interface{}) {
	if !truth {
		panic(fmt.Sprint("Assertion failed: ", fmt.Sprint(msg...)))
	}
}
