// Package commands defines the shadigest CLI and wires dependencies for subcommands.
//
// Commands
//
//   - sum        Print SHA-256 digests of files or stdin
//   - check      Verify files against a checksum manifest
//   - selftest   Run the known-answer vectors against the digest engine
//
// # Implementation
//
// The root command builds the logger and app.App from persistent flags
// before any subcommand runs, so handlers share one configured app
// context. Output goes to the command's stdout, diagnostics to stderr.
package commands
