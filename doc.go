// Package promptwire provides streaming token handling and prompt length
// budgeting for LLM applications. It defines the StreamHandler callback
// contract, delta deduplication for providers that resend the full text on
// every event, and a Fitter that resizes prompts to a model context window.
// Provider stream relays live in the anthropic, openai, ollama, and gemini
// subpackages.
package promptwire
