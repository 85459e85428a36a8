// Package storage provides the object-storage client used to publish built
// output files to an S3-compatible bucket.
//
// The pipeline itself never reads from storage; this is strictly the final
// upload surface for the publish command. The Client interface exists so the
// publish step can be tested against the mocks subpackage.
package storage
