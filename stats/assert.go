//go:build lvlmath_debug

package stats

import (
	"fmt"

	"golang.org/x/exp/constraints"

	"github.com/katalvlaran/lvlmath/approx"
)

// assertMoment verifies a (co)moment has not drifted meaningfully negative.
// Transient few-ulp negatives from round-off pass the tolerant check;
// anything beyond that indicates a violated rollback/replace contract.
// Compiled in only under the lvlmath_debug build tag.
func assertMoment[T constraints.Float](moment T) {
	if approx.IsNegative(moment) {
		panic(fmt.Sprintf("stats: moment drifted negative: %v", moment))
	}
}
