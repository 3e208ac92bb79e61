// Package imagehost implementa el puerto auth.ImageUploader contra un servicio
// externo de alojamiento de imágenes compatible con el API de imgbb: un POST
// multipart con la imagen en base64 que responde la URL pública del recurso.
package imagehost

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client cliente HTTP del servicio de imágenes.
// Usa net/http de la stdlib; el contrato es un endpoint propio, no un SDK.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient construye el cliente con un timeout de red fijo: una subida colgada
// no debe colgar la petición de registro indefinidamente.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// uploadResponse respuesta mínima del servicio de imágenes.
type uploadResponse struct {
	Data struct {
		URL string `json:"url"`
	} `json:"data"`
	Success bool `json:"success"`
}

// Upload sube una imagen en base64 y devuelve su URL pública.
func (c *Client) Upload(ctx context.Context, name, data string) (string, error) {
	var body strings.Builder
	w := multipart.NewWriter(&body)
	if err := w.WriteField("name", name); err != nil {
		return "", err
	}
	if err := w.WriteField("image", data); err != nil {
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	endpoint := c.baseURL
	if c.apiKey != "" {
		endpoint += "?key=" + url.QueryEscape(c.apiKey)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(body.String()))
	if err != nil {
		return "", fmt.Errorf("crear request: %w", err)
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("subir imagen: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("leer respuesta: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("servicio de imágenes respondió %d", resp.StatusCode)
	}

	var out uploadResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("decodificar respuesta: %w", err)
	}
	if !out.Success || out.Data.URL == "" {
		return "", fmt.Errorf("subida rechazada por el servicio de imágenes")
	}
	return out.Data.URL, nil
}
