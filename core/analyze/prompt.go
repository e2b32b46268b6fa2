package analyze

// basePrompt is the default analysis instruction, used when the caller does
// not supply a custom prompt.
const basePrompt = `You are an experienced hospitality consultant analyzing guest reviews for a hotel.
Read every review carefully and produce a practical, honest analysis for the hotel's management team.
Base every statement strictly on the reviews; do not invent facts.
Answer in the same language the reviews are written in.`

// jsonSchemaInstruction pins the exact response shape. It is always appended
// to the prompt, custom or not, so downstream decoding stays stable.
const jsonSchemaInstruction = `Return ONLY a valid JSON object with exactly these keys and no other text:
{
  "executive_summary": "3-5 sentence overview of overall guest sentiment",
  "positives": ["recurring strength mentioned by guests", "..."],
  "negatives": ["recurring complaint mentioned by guests", "..."],
  "quotes": {
    "wow_effect": ["verbatim quote showing delight", "..."],
    "typical_positive": ["verbatim representative positive quote", "..."],
    "typical_negatives": ["verbatim representative negative quote", "..."]
  },
  "risk_flags": ["issue that risks serious reputational or safety damage", "..."],
  "action_plan": ["concrete prioritized step management should take", "..."],
  "best_practices": ["practice worth keeping exactly as is", "..."],
  "key_themes": ["short recurring theme label", "..."]
}
Do not wrap the JSON in markdown code fences. Do not truncate the response.`

// buildSystemPrompt combines the analysis instruction with the schema
// instruction. A non-empty customPrompt replaces basePrompt entirely.
func buildSystemPrompt(customPrompt string) string {
	prompt := basePrompt
	if customPrompt != "" {
		prompt = customPrompt
	}
	return prompt + "\n\n" + jsonSchemaInstruction
}
