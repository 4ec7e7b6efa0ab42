/*
Package config resolves the header configuration that applies to a file.

	  file.py
	     |
	+----+--------------+      +----------------+
	| ./.header.yaml     | ---> | merged config  |
	| ../.header.hcl     |      | (nearer wins)  |
	| ../../.header.yml  |      +----------------+
	+--------------------+

🎯 Purpose:
  - Finds .header.yaml, .header.yml or .header.hcl files from a file's
    directory up to the filesystem root
  - Merges them so that keys closer to the file win
  - Stops at the first file that sets `root: true`
  - Validates the merged result before anyone renders a header with it

📄 Keys:
- owner (required)
- template (required)
- start_year
- substring (defaults to DefaultSubstring)
- root

🔍 Example:

	r := config.NewResolver()
	cfg, err := r.Resolve(ctx, "src/app/main.py", 2025)
	if errors.Is(err, config.ErrConfigNotFound) {
		// nothing to do without a config
	}
*/
package config
