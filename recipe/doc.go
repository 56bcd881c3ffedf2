// Package recipe compiles declarative generator definitions into generators.
//
// A recipe names a generator kind and its parameters. Recipes nest through
// the zip kind, whose first and second operands are recipes themselves:
//
//	recipes:
//	  - name: dice
//	    kind: random
//	    width: 32
//	    min: 1
//	    max: 7
//	    seed: 42
//	  - name: tag
//	    kind: zip
//	    format: "%v-%v#%d"
//	    first:  {kind: cycle, values: [a, b, c]}
//	    second: {kind: incrementer, width: 32}
//
// Every compiled generator yields values boxed as any. Validation failures
// are reported as INVALID_CONFIG errors with per-field details.
package recipe
