package generation

import "os"

type GenerationContainer struct {
	Service Service
}

func NewGenerationContainer() *GenerationContainer {
	provider := NewOpenAIProvider(os.Getenv("OPENAI_API_KEY"), os.Getenv("OPENAI_MODEL"))
	model := NewModelGenerator(provider, DefaultCountPolicy())
	fallback := NewFallbackGenerator()
	service := NewService(model, fallback)

	return &GenerationContainer{
		Service: service,
	}
}
