package config

type AI string

const (
	AIGemini AI = "gemini"
	AIGroq   AI = "groq"
	AIOpenAI AI = "openai"
)

type Model string

const (
	ModelGeminiV25Pro       Model = "gemini-2.5-pro"
	ModelGeminiV25Flash     Model = "gemini-2.5-flash"
	ModelGeminiV25FlashLite Model = "gemini-2.5-flash-lite"

	ModelGroqQwen3   Model = "qwen/qwen3-32b"
	ModelGroqLlama31 Model = "llama-3.1-8b-instant"
	ModelGroqLlama33 Model = "llama-3.3-70b-versatile"

	ModelGPTV4o     Model = "gpt-4o"
	ModelGPTV4oMini Model = "gpt-4o-mini"
)

const groqBaseURL = "https://api.groq.com/openai/v1"

func SupportedAIs() []AI {
	return []AI{
		AIGemini,
		AIGroq,
		AIOpenAI,
	}
}

func IsSupportedAI(ai AI) bool {
	for _, supported := range SupportedAIs() {
		if supported == ai {
			return true
		}
	}
	return false
}

func ModelsForAI(ai AI) []Model {
	switch ai {
	case AIGemini:
		return []Model{
			ModelGeminiV25Flash,
			ModelGeminiV25Pro,
			ModelGeminiV25FlashLite,
		}
	case AIGroq:
		return []Model{
			ModelGroqQwen3,
			ModelGroqLlama31,
			ModelGroqLlama33,
		}
	case AIOpenAI:
		return []Model{
			ModelGPTV4oMini,
			ModelGPTV4o,
		}
	default:
		return []Model{}
	}
}

func DefaultModelForAI(ai AI) Model {
	models := ModelsForAI(ai)
	if len(models) == 0 {
		return ""
	}
	return models[0]
}

// DefaultEnhancedModelForAI is the model used for analysis-backed prompts.
// Groq keeps the smaller, faster model there.
func DefaultEnhancedModelForAI(ai AI) Model {
	if ai == AIGroq {
		return ModelGroqLlama31
	}
	return DefaultModelForAI(ai)
}

// DefaultBaseURLForAI returns the API endpoint for OpenAI-compatible providers.
// Empty means the client library default.
func DefaultBaseURLForAI(ai AI) string {
	if ai == AIGroq {
		return groqBaseURL
	}
	return ""
}
