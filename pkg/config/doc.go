/*
Package config loads the optional filesort options file and validates user
input before it reaches the organize workflows.

	            +-------------+
	            |   Config    |
	            | (options)   |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+----+ +-----+----+ +-----+----+
	|   YAML   | |   JSON   | |   HCL    |
	+----------+ +----------+ +----------+

🎯 Purpose:

  - Reads ".filesort.yaml", ".filesort.yml", ".filesort.json" or ".filesort.hcl"
  - Extends the subtype alias table and the extension registry
  - Rejects aliases that would not make a safe directory name
  - Validates the folder and extension typed by the user

The file is only ever read. A missing default file means the built-in tables
are used as-is.

🔍 Example (YAML):

	aliases:
	  plain: text
	  heic: photo
	extensions:
	  heic: image/heic

🔍 Example (HCL):

	aliases = {
	  plain = "text"
	}
	extensions = {
	  heic = "image/heic"
	}
*/
package config
