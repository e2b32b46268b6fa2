// Package ai defines the vendor-agnostic text-generation provider contract
// used by the review analyzer. A provider accepts a [ChatRequest] (system
// prompt plus conversation messages and generation settings) and returns a
// [ChatResponse] carrying the raw model text, the finish reason, and token
// usage. The analyzer never sees vendor wire formats; each implementation
// under providers/ai/ converts to and from its own API shape.
package ai
