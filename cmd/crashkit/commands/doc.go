// Package commands defines the crashkit CLI and wires dependencies for subcommands.
//
// Commands
//
//   - sessions   List open session ids
//   - files      List the files of one session
//   - purge      Delete a session's working directory
//   - reports    List prepared reports
//   - rm-report  Delete a prepared report
//   - trim       Trim the report queue to a maximum count
//   - watch      Stream report arrivals until interrupted
//   - migrate    Remove the legacy unversioned storage layout
//
// # Implementation
//
// The root command reads configuration from the environment, applies flag
// overrides, and builds the dependency graph (store, services, logger)
// before any subcommand runs, so handlers share one app context.
package commands
