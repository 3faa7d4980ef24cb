/*
Package operation implements the organize workflows of filesort.

	+-------------+       +-------------+
	| SpecificType|       | WholeFolder |
	| (glob *.ext)|       | (ReadDir)   |
	+------+------+       +------+------+
	       |                     |
	       +----------+----------+
	                  |
	           +------+------+
	           |    Batch    |
	           | (per file)  |
	           +------+------+
	                  |
	      +-----------+-----------+
	      |                       |
	+-----+-----+           +-----+-----+
	| classify  |           |   mover   |
	| (labels)  |           |  (rename) |
	+-----------+           +-----------+

🎯 Purpose:

  - Selects candidate files from one source directory
  - Resolves a type label for each file
  - Moves each file into "{label}_files" next to it
  - Tallies successful moves against the total

🔄 Flow:

 1. Enumerate candidates (top level only, hidden entries skipped for whole-folder runs)
 2. Drop anything that is not a regular file
 3. For each file, in directory order: report progress, resolve the label,
    create the label directory on first use, move the file
 4. Report the "successful / total" summary

⚡ Failure handling:
A file that cannot be moved, or whose label directory cannot be created, is
reported and counted as a non-success; the run continues with the next file.
Only enumeration failures and context cancellation end a run early. Nothing is
retried and nothing is rolled back.

🔍 Example:

	op := operation.NewWholeFolderOperation(operation.Options{
		Source:   "/home/me/Downloads",
		Reporter: logger,
	})
	res, err := op.Execute(ctx)
*/
package operation
