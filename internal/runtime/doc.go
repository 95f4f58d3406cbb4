// Package runtime detects the user-level TabDump runtime installed by
// `tabdump init` and builds the argument vector that forwards a
// post-initialization command to it. The bootstrap never caches whether the
// runtime is present; State re-reads the filesystem on every call.
package runtime
