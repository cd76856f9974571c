// Package script seeds canvases from Lua.
//
// A script defines a global function
//
//	function cell(index, x, y, count)
//	    return id, fg, bg
//	end
//
// which is called once per cell in row-major order. index, x and y are
// zero-based; count is the number of entries in the canvas charset. id is
// required. fg and bg are optional palette indices.
//
// Scripts run in a sandbox: only the base, table, string and math
// libraries are available, file and module loading is removed, and print
// writes to the log.
package script
