package ai

import (
	"fmt"
	"strings"
)

// DisabledMessage respuesta cuando no hay API key configurada para el proveedor.
const DisabledMessage = "La generación de descripciones con IA está deshabilitada. Configure la API key del proveedor."

// descriptionPrompt arma la instrucción para el modelo.
func descriptionPrompt(productName, keywords string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Redacta una descripción de producto atractiva y profesional para un producto llamado %q.\n", productName)
	if k := strings.TrimSpace(keywords); k != "" {
		fmt.Fprintf(&b, "Características clave: %s.\n", k)
	}
	b.WriteString("La descripción debe servir para un catálogo de comercio electrónico, tener entre 50 y 70 palabras, ")
	b.WriteString("estar en español y no usar markdown.")
	return b.String()
}

// cleanDescription quita comillas y bloques de código que algunos modelos agregan igual.
func cleanDescription(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```")
	s = strings.TrimSuffix(s, "```")
	s = strings.Trim(strings.TrimSpace(s), `"`)
	return strings.TrimSpace(s)
}
