// Package pipeline runs the refresh-then-publish workflow.
//
// The pipeline has three gated steps:
//  1. The working directory must exist.
//  2. The data-refresh script must exit 0.
//  3. Changes are staged, committed and pushed. Only the push result decides
//     the outcome; staging and commit failures are reported as warnings.
package pipeline
