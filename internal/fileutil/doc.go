// Package fileutil walks a root directory and selects the files that are
// eligible for annotation scanning.
//
// # Traversal
//
// Walk visits every descendant of the root with filepath.WalkDir, which reads
// each directory sorted by name, so the output order is lexical and does not
// depend on the order the filesystem enumerates entries. The sequence is
// lazy: nothing past the entry being yielded has been visited yet, and it
// can only be consumed once.
//
// # Filtering
//
// Two filters run for each visited entry, in this order:
//
//   - Ignore: the entry's path and, separately, its parent directory path are
//     looked up in a PathMatcher (see package ignore). Either hit skips the
//     entry. This is a flat exact-string check, not gitignore pattern
//     matching, and an ignored directory is still descended into.
//   - Extension: files whose extension (case-sensitive, without the dot) is
//     not in the allow-list are skipped. Files without an extension are
//     never eligible.
//
// Directories are never yielded.
//
// # Counting
//
// The visited counter passed to Walk is incremented for every entry the walk
// touches, the root included, before any filter runs. It feeds the
// "scanned" figure of the scan summary.
//
// # Usage
//
//	var visited int
//	for entry, err := range fileutil.Walk("src", fileutil.WalkOptions{
//	    Extensions: []string{"ts", "vue"},
//	    Ignore:     ignoreList,
//	}, &visited) {
//	    if err != nil {
//	        return err
//	    }
//	    fmt.Println(entry.Path)
//	}
package fileutil
