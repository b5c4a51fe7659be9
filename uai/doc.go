// Package uai parses the three boundary file formats the CLI reads:
// UAI factor files (§6.2), elimination ordering files (§6.3), and
// evidence files (§6.4). Parsing lives entirely outside the core: every
// function here returns data ready to hand to scope, dd, function or
// vbe constructors.
package uai
