package main

import (
	"bedrock-setup/cmd"
)

// main delegates to cmd.Execute() which handles command line parsing and
// runs the bootstrap pipeline.
//
// bedrock-setup is a one-shot environment bootstrapper for AWS Bedrock:
//   - Loads AWS credentials and region from a key=value .env file and
//     validates them before anything else runs
//   - Prompts the operator to pick a model from the built-in catalog
//   - Classifies the host platform and provisions missing dependencies
//     idempotently: Python runtime, unzip, AWS CLI v2, and the SDK packages
//     inside a cached virtualenv reused across runs
//   - Writes the credentials into a named AWS CLI profile, reusing an
//     existing profile untouched
//   - Invokes the external inference program once and prints its response
//   - Cleans up downloaded installer artifacts on a best-effort basis
//
// Error handling strategy:
//   - Every step writes to an append-only audit log (one timestamped line
//     per event) in addition to the colored console output
//   - The first fatal error ends the run; each failure site has its own
//     non-zero exit code. Only cleanup failures are swallowed (logged as
//     warnings)
func main() {
	cmd.Execute()
}
