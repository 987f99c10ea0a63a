// Package typefile loads type descriptions from YAML or JSONC files and
// serves them as a model.TypeModel.
//
// A description lists each type's fields in declaration order and its
// methods with their parameters:
//
//	version: "1"
//	types:
//	  - name: Person
//	    fields:
//	      - name: id
//	        type: I
//	      - name: active
//	        type: boolean
//	    methods:
//	      - name: getId
//	      - name: isActive
//	      - name: setId
//	        params: [id]   # or a count: params: 1
//
// JSONC files use the same structure and may carry // and /* */ comments
// and trailing commas.
package typefile
