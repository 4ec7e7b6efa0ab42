/*
Package operation runs a header sweep over a repository, a directory or a
single file.

🎯 Purpose:
- Collects the files of a target
- Drops files excluded by markers or user globs
- Resolves the header config of each file and rewrites it

🔄 Flow:
1. Target picks the file source (git, directory walk, single file)
2. Exclusion markers and --exclude globs filter the list
3. Unsupported files are skipped before any config lookup
4. Remaining files are rewritten by a bounded pool of workers

⚡ Failure model:
Any config or I/O error cancels the remaining work and is returned. Files
that cannot carry a header are skipped silently.

🔍 Example:

	runner, err := operation.New(operation.Options{Year: 2024, Reporter: logger})
	if err != nil {
		return err
	}
	target, err := operation.TargetFor(path)
	if err != nil {
		return err
	}
	changed, err := runner.Run(ctx, target)
*/
package operation
