/*
Package status classifies header changes and formats the line printed for
each of them.

🎯 Purpose:
- Turns a change (header found or not, check mode or not) into an Outcome
- Renders the per-file line with the path relative to the working directory

🔄 Outcomes:

	found  check  message
	-----  -----  ----------------------
	yes    yes    Incorrect header in
	yes    no     Updating header in
	no     yes    Missing header in
	no     no     Adding header in

🎨 Output:
The path is printed in bold white unless the CI environment variable is
"1" or "true", in which case the line is plain text.
*/
package status
