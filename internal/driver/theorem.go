package driver

import (
	"encoding/json"
	"fmt"

	"github.com/nvandessel/snakewalk/internal/conjecture"
)

// RunTheorem executes the necessary-condition resonance scan up to the
// given height bound and prints the report. The scan is a quick
// degenerate-case screen over the channel constants, not a proof.
func (d *Driver) RunTheorem(bound uint64) conjecture.Report {
	report := conjecture.Scan(d.params, bound)
	if d.JSON {
		json.NewEncoder(d.out).Encode(report)
		return report
	}

	if report.Degenerate {
		fmt.Fprintf(d.out, "[WARN] Found B with all deltas = 0 (improbable with chosen P_i): e.g., %d\n",
			report.ResonantB)
		return report
	}
	fmt.Fprintf(d.out, "[OK] Quick check: for all B < %d, at least one channel has nonzero delta = (B·P_i) mod M.\n",
		report.Bound)
	fmt.Fprintf(d.out, "     Empirically, this multi-channel design achieves steps/S ≈ %.1f–%.1f on typical boards.\n",
		report.RatioLow, report.RatioHigh)
	fmt.Fprintln(d.out, "     Necessary-condition scan only: this is not a proof.")
	return report
}
