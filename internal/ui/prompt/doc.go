// Package prompt provides the interactive prompts ggo shows on stderr.
//
// Available prompts:
//   - [SelectBranch]: pick one of several ranked branches
//   - [Confirm]: Yes/No confirmation prompt
//
// Prompts need a terminal; call [Interactive] first and fall back to plain
// output when it reports false.
package prompt
