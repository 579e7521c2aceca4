// Package cli is responsible for parsing command-line arguments, merging
// them over MODFACTORY_* environment variables, validating user input and
// carrying process exit codes. It translates CLI flags into the
// application's internal configuration.
package cli
