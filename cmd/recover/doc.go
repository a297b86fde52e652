// Package main (cmd/recover) implements the command line tool for recovering
// secrets from threshold share documents.
//
// A share document lists the threshold k and the shares of a secret, each
// share being the value of an unknown integer polynomial at a decimal x
// coordinate, written in any base from 2 to 36:
//
//	{
//	  "keys": { "n": 4, "k": 3 },
//	  "1": { "base": "10", "value": "4" },
//	  "2": { "base": "2", "value": "111" },
//	  "3": { "base": "10", "value": "12" },
//	  "6": { "base": "4", "value": "213" }
//	}
//
// Some shares may be corrupted. The solve command interpolates every
// combination of k shares and prints the secret most combinations agree on:
//
//	recover solve shares.json
//	recover solve --details --max-combinations 100000 a.json b.json
//	cat shares.json | recover solve
//
// Helper commands expose the building blocks:
//
//	recover decode --base 16 ff        # 255
//	recover combinations --k 2 a b c   # a b / a c / b c
//
// Logs go to stderr and are controlled with --log-json, --log-debug,
// --log-uid and --log-service. Debug logging reports every discarded
// combination.
package main
