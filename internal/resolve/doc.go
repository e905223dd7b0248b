// Package resolve turns a partial branch name into a branch to check out.
//
// Resolution runs in three stages:
//
//   - Alias lookup: an exact alias in the current repository wins outright,
//     unless its target branch no longer exists, in which case a warning is
//     logged and matching continues as if no alias were defined.
//   - Matching and ranking: branch names are filtered by the fuzzy or
//     substring matcher and ranked by match quality fused with frecency
//     (see [CombinedScore]).
//   - Selection: [Select] either picks the top candidate or asks the caller
//     to let the user choose from the ranked list.
//
// After a successful checkout [Resolver.Switch] records the usage and the
// previous-branch pointer. Bookkeeping failures there only log warnings;
// they never fail a checkout that already happened.
package resolve
