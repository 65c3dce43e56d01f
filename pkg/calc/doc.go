// Package calc provides small pure integer functions: a divisibility
// classifier and an iterative factorial over uint32.
//
// All functions are total and safe for concurrent use.
package calc
