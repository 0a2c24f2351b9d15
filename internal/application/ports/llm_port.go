package ports

import "context"

// LLMService define el puerto de salida para los servicios de inteligencia artificial.
// Cualquier adaptador (Gemini, Anthropic, mock) debe implementar esta interfaz;
// la aplicación solo conoce este contrato.
type LLMService interface {
	// GenerateProductDescription redacta una descripción comercial de 50–70 palabras
	// para el catálogo a partir del nombre y palabras clave del producto.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateProductDescription(ctx context.Context, productName, keywords string) (string, error)
}
