// Package utils provides common utility functions for the pipeline.
// It includes helper functions for converting the loosely-typed values found
// in provider snapshot records into concrete Go types.
package utils
