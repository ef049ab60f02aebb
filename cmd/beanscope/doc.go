// Command beanscope renders inspection reports outside a running process.
//
// Inside a process, reports are built straight from a graph and a registry
// (see the inspect package). beanscope covers the other case: a YAML manifest
// declares the registered instances and the candidate classes with their
// managed members, and the same join produces the same table:
//
//	beanscope report -f manifest.yaml
//
// Manifest format:
//
//	instances:
//	  - class: example.Counter
//	    name: "metrics:type=Counter"
//	classes:
//	  - name: example.Counter
//	    members:
//	      - name: Count
//	        description: current value
//	        params: 0
//	        returns: value   # value | none
//
// Because the manifest carries member shapes explicitly, classification
// follows the same rule as reflective inspection: members with parameters or
// without a return value are actions, the rest are attributes.
package main
