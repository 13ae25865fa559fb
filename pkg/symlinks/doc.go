// Package symlinks reconciles symbolic links created inside a POSIX
// emulation layer with the native filesystem.
//
// Links made by the emulation layer store targets in its own path space.
// Reconciliation discovers every link under a directory from inside the
// emulation shell, asks the path translator for the native form of both
// the link and its resolved target, and recreates each link natively when
// the two differ. Links whose translation is unchanged (native junctions
// the discovery tool reports as links, or links already fixed) are left
// alone, which makes a second pass over a fixed tree a no-op.
//
// The translator resolves a link when asked about its path, so the link's
// own path is sent with a marker suffix appended and the marker is
// stripped from the answer. Two discovery modes exist:
//
//   - two-stream: one pipeline emits marked link paths and another emits
//     target paths, both sorted the same way, and rows are paired by
//     position. Streams of different length abort the pass.
//   - single-pass: one pipeline emits "link<TAB>target" rows, so no
//     positional pairing is needed.
package symlinks
