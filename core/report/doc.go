// Package report defines the analysis report produced by the decoder and
// consumed by the renderers. A Report is a plain key/value mapping: the model
// fills in whichever of the well-known sections it has content for, and every
// accessor treats a missing key as "no content for this section". The
// presence of the raw-output diagnostic key means decoding failed and the
// unprocessed model text should be presented instead of structured sections.
package report
