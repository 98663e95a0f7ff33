// Package cli implements the aleph command-line interface.
//
// Commands share a global --format flag (json|text) and a --verbose flag.
// JSON output always follows the CLIResponse envelope so scripts can rely
// on a stable shape. Exit codes distinguish law or evaluation failures (1)
// from command errors such as bad paths or flags (2).
package cli
