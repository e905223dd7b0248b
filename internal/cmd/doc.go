// Package cmd runs external commands for ggo.
//
// Failures carry the command's trimmed stderr as the error message, so a
// failed "git checkout" reports git's own reason ("Your local changes ...")
// instead of "exit status 1". Commands are traced through the context logger
// when --verbose is set.
//
//	out, err := cmd.OutputContext(ctx, repoPath, "git", "branch", "--format=%(refname:short)")
//	if err != nil {
//	    return fmt.Errorf("list branches: %w", err)
//	}
package cmd
