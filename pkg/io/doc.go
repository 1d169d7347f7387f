// Package io writes preference matrices to disk and reads them back.
//
// # JSON Format
//
// [WriteJSON] emits the matrix with its keys in display order:
//
//	{
//	  "rows": ["Antarctica", "Australia"],
//	  "columns": ["ANN", "LGBM", "CatBoost"],
//	  "cells": [
//	    [1, -1, 0],
//	    [1, 0, -1]
//	  ]
//	}
//
// [ReadJSON] accepts the same shape and rebuilds the matrix with
// [pivot.FromCells], so round trips preserve order and values exactly.
//
// # Spreadsheets
//
// [WriteXLSX] writes one worksheet with a header row of labels and one row
// per entity. Value cells are filled with the same diverging colours the
// heatmap uses.
//
// # Files
//
// [WriteFile] is the single place prefgrid creates output files. It is
// handed fully encoded bytes, so a failed render never opens a file, and it
// removes the file again if the write itself fails.
//
// [pivot.FromCells]: github.com/matzehuels/prefgrid/pkg/pivot.FromCells
package io
