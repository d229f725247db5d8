package cost

import (
	"fmt"
	"strings"
)

type PricingTable struct {
	InputPricePerMillion  float64
	OutputPricePerMillion float64
}

type ProviderPricing map[string]map[string]PricingTable

// https://ai.google.dev/gemini-api/docs/pricing
// https://groq.com/pricing
// https://openai.com/api/pricing
func defaultPricing() ProviderPricing {
	return ProviderPricing{
		"gemini": {
			"gemini-2.5-flash-lite": {InputPricePerMillion: 0.10, OutputPricePerMillion: 0.40},
			"gemini-2.5-flash":      {InputPricePerMillion: 0.30, OutputPricePerMillion: 2.50},
			"gemini-2.5-pro":        {InputPricePerMillion: 1.25, OutputPricePerMillion: 10.00},
		},
		"groq": {
			"llama-3.1-8b-instant":    {InputPricePerMillion: 0.05, OutputPricePerMillion: 0.08},
			"llama-3.3-70b-versatile": {InputPricePerMillion: 0.59, OutputPricePerMillion: 0.79},
			"qwen/qwen3-32b":          {InputPricePerMillion: 0.29, OutputPricePerMillion: 0.59},
		},
		"openai": {
			"gpt-4o-mini": {InputPricePerMillion: 0.15, OutputPricePerMillion: 0.60},
			"gpt-4o":      {InputPricePerMillion: 2.50, OutputPricePerMillion: 10.00},
		},
	}
}

type Calculator struct {
	pricing ProviderPricing
}

func NewCalculator() *Calculator {
	return &Calculator{pricing: defaultPricing()}
}

// EstimateCost calculates the estimated cost based on provider, model, and tokens.
// Unknown models cost 0.
func (c *Calculator) EstimateCost(provider, model string, inputTokens, outputTokens int) float64 {
	modelPricing, ok := c.lookup(provider, model)
	if !ok {
		return 0
	}

	inputCost := (float64(inputTokens) / 1_000_000) * modelPricing.InputPricePerMillion
	outputCost := (float64(outputTokens) / 1_000_000) * modelPricing.OutputPricePerMillion

	return inputCost + outputCost
}

// lookup tries an exact match first, then the longest known model name
// contained in model (so "gemini-2.5-flash-001" resolves to "gemini-2.5-flash").
func (c *Calculator) lookup(provider, model string) (PricingTable, bool) {
	providerPricing, exists := c.pricing[strings.ToLower(provider)]
	if !exists {
		return PricingTable{}, false
	}

	model = strings.ToLower(model)
	if p, exists := providerPricing[model]; exists {
		return p, true
	}

	var best string
	for name := range providerPricing {
		if strings.Contains(model, name) && len(name) > len(best) {
			best = name
		}
	}
	if best == "" {
		return PricingTable{}, false
	}
	return providerPricing[best], true
}

// GetPricing returns the pricing table for a provider and model
func (c *Calculator) GetPricing(provider, model string) (PricingTable, error) {
	provider = strings.ToLower(provider)
	model = strings.ToLower(model)

	providerPricing, exists := c.pricing[provider]
	if !exists {
		return PricingTable{}, fmt.Errorf("provider %s not found", provider)
	}

	modelPricing, exists := providerPricing[model]
	if !exists {
		return PricingTable{}, fmt.Errorf("model %s not found for provider %s", model, provider)
	}

	return modelPricing, nil
}

// AddPricing registers or overrides the pricing of a model.
func (c *Calculator) AddPricing(provider, model string, table PricingTable) {
	provider = strings.ToLower(provider)
	model = strings.ToLower(model)

	if _, exists := c.pricing[provider]; !exists {
		c.pricing[provider] = make(map[string]PricingTable)
	}
	c.pricing[provider][model] = table
}
