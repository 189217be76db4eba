package driver

import (
	"encoding/json"
	"fmt"

	"github.com/nvandessel/snakewalk/internal/rotation"
)

// PrintProbe runs the channel probe over the given number of blocks and
// prints per-channel step constants, threshold ratios, token counts and
// a short head prefix. Diagnostic only.
func (d *Driver) PrintProbe(blocks int) {
	stats := rotation.Probe(d.params, blocks)
	if d.JSON {
		json.NewEncoder(d.out).Encode(stats)
		return
	}
	for i, s := range stats {
		fmt.Fprintf(d.out, "[probe] ch%d: P=%d, alpha=%.6f, t=1:%d, t=2:%d, ratio1=%.3f\n",
			i, s.Step, s.Alpha, s.Ones, s.Twos, s.Ratio())
		fmt.Fprintf(d.out, "         head t: %v\n", s.Head)
	}
}
