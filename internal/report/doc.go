// Package report renders digest results and reads checksum manifests.
//
// Three output formats are supported: the sha256sum-compatible text layout
// ("HEX  PATH"), JSON and YAML. Manifests accept the text layout, its
// binary-mode variant ("HEX *PATH") and BSD tagged lines
// ("SHA256 (PATH) = HEX").
//
// WriteFile replaces its target atomically so an interrupted run never
// leaves a truncated manifest behind.
package report
