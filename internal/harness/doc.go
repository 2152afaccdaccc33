// Package harness runs IR fragment scenarios.
//
// A scenario names a CUE fragment (see package irspec) and the properties the
// compiled fragment must have. Running a scenario compiles the fragment,
// checks its structural shape, renders every node, computes the content hash
// of every statement, and compares the outcome with the scenario's
// expectations.
//
// # Scenario Format
//
// Scenarios are defined in YAML files with the following structure:
//
//	name: store_const
//	description: "Constant stored, moved, then copied into the return slot"
//	fragment: ../fragments/store_const.cue
//	expect:
//	  valid: true
//	  error_codes: []
//	  mangled_name: printf
//	  consumed: [1]
//
// The fragment path is relative to the scenario file. Every expect field is
// optional; an omitted field is not checked.
//
// # Golden Renderings
//
// RunWithGolden compares the debug rendering of a scenario with
// testdata/golden/<name>.golden. To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// # Usage
//
//	scenario, err := harness.LoadScenario("testdata/scenarios/store_const.yaml")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	result, err := harness.Run(scenario, harness.Options{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if !result.Pass {
//	    for _, err := range result.Errors {
//	        log.Println(err)
//	    }
//	}
package harness
