package symlinks

// Record pairs a discovered link with its resolved target, both as native
// paths. The marker has already been stripped from Symlink.
type Record struct {
	Symlink string `json:"symlink" yaml:"symlink"`
	Target  string `json:"target" yaml:"target"`
}

// NeedsRelink reports whether translation changed the link's identity
func (r Record) NeedsRelink() bool {
	return r.Symlink != r.Target
}

// Result describes one reconciliation pass
type Result struct {
	Directory    string   `json:"directory" yaml:"directory"`
	EmulationDir string   `json:"emulationDir" yaml:"emulationDir"`
	Discovery    string   `json:"discovery" yaml:"discovery"`
	DryRun       bool     `json:"dryRun" yaml:"dryRun"`
	Records      []Record `json:"records" yaml:"records"`
	Relinked     []Record `json:"relinked" yaml:"relinked"`
	Skipped      []Record `json:"skipped" yaml:"skipped"`
}

// Pending returns the records that still need a relink. In dry-run mode
// this is what would have been changed.
func (r *Result) Pending() []Record {
	var out []Record
	for _, rec := range r.Records {
		if rec.NeedsRelink() {
			out = append(out, rec)
		}
	}
	return out
}

// Record statuses as reported by Result.Status
const (
	StatusRelinked    = "relinked"
	StatusNative      = "native"
	StatusWouldRelink = "would relink"
	StatusPending     = "pending"
)

// Status describes what the pass did with rec. StatusPending marks links
// left untouched because an earlier relink failed.
func (r *Result) Status(rec Record) string {
	if !rec.NeedsRelink() {
		return StatusNative
	}
	for _, done := range r.Relinked {
		if done == rec {
			return StatusRelinked
		}
	}
	if r.DryRun {
		return StatusWouldRelink
	}
	return StatusPending
}
