// Package gemini implements the ai.Provider interface for Google's Gemini
// API using the generateContent REST endpoint.
//
// The provider translates the generic chat request into Gemini's wire format
// (systemInstruction, contents with user/model roles, generationConfig) and
// maps Gemini finish reasons back onto the generic vocabulary. When a JSON
// response format is requested it sets responseMimeType "application/json";
// if the model rejects JSON mode with a 400, the request is retried once
// without it so older models still produce output.
package gemini
