package llm

// Token budgets for the two phases. The gate only needs a tiny JSON
// verdict; the full identification carries facts and alternatives.
const (
	gateMaxTokens     = 100
	identifyMaxTokens = 500
)

const gateSystemPrompt = `You are an expert at identifying animals in images. Determine if the image contains a cat (domestic or wild like lions, tigers, etc.). Respond only with JSON.`

const gatePrompt = `Does this image contain a cat (domestic or wild)? Respond in JSON format:
{
  "isCat": true or false,
  "reason": "brief explanation"
}`

const identifySystemPrompt = `You are an expert at identifying cat breeds. Analyze cat images and provide detailed breed information.`

const identifyPrompt = `Analyze this cat image and identify the breed. Respond in JSON format with this exact structure:

{
  "breedName": "Primary breed name",
  "confidence": <number between 0-100 representing your confidence in this identification>,
  "alternativeBreeds": [
    {"breed": "Breed name", "percentage": <number between 0-100>}
  ],
  "funFacts": [
    "Fact 1 about this breed",
    "Fact 2 about this breed",
    "Fact 3 about this breed"
  ],
  "rarity": "common" or "uncommon" or "rare" or "ultra rare",
  "difficulty": "easy" or "medium" or "hard" or "extreme",
  "placeOfOrigin": "Country or region where this breed originated"
}

Important:
- confidence: Provide a realistic confidence percentage (0-100) based on how certain you are of the identification. Do NOT use a fixed value like 85.
- alternativeBreeds: List other possible breeds with their confidence percentages. The sum of the main confidence and all alternative percentages should ideally be close to 100%.
- rarity: "common" for very common breeds, "uncommon" for less common, "rare" for rare breeds, "ultra rare" for extremely rare or exotic breeds
- difficulty: "easy" for typical house cats, "medium" for breeds requiring some special care, "hard" for breeds with significant care requirements, "extreme" for undomesticated cats like lions, tigers, cheetahs, etc.
- placeOfOrigin: The country or region where this breed originated (e.g., "Thailand", "Egypt", "United States", "Africa" for wild cats)`
