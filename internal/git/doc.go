// Package git provides the git operations ggo needs, via the git CLI.
//
// All operations call git through [os/exec] rather than a Go git library so
// user configuration (hooks, aliases, credential helpers) behaves exactly as
// on the command line.
//
//   - [RepoRoot]: repository root, the usage store's partition key
//   - [ListLocalBranches], [CurrentBranch], [Checkout]: branch operations
//   - [Repo]: the same operations bound to one repository
//   - [Checker]: existence checks used by store maintenance
package git
