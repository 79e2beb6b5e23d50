package http_test

import (
	"context"
	"encoding/json"
	"errors"
	nethttp "net/http"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/barstock-api/internal/application/dto"
	"github.com/jhoicas/barstock-api/internal/application/usecase"
	apihttp "github.com/jhoicas/barstock-api/internal/interfaces/http"
)

// stubParser devuelve una respuesta fija o un error, sin tocar la red.
type stubParser struct {
	result *dto.ParsedOrderDTO
	err    error
}

func (s *stubParser) ParseDeliveryNote(_ context.Context, _ string, _ []string) (*dto.ParsedOrderDTO, error) {
	return s.result, s.err
}

func newAIApp(parser *stubParser) *fiber.App {
	handler := apihttp.NewAIHandler(usecase.NewAIUseCase(parser))
	app := fiber.New()
	app.Post("/api/ai/process-order", handler.ProcessOrder)
	return app
}

func postJSON(t *testing.T, app *fiber.App, body string) *nethttp.Response {
	t.Helper()
	req, _ := nethttp.NewRequest(nethttp.MethodPost, "/api/ai/process-order", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestProcessOrder_DevuelveLineasReconocidas(t *testing.T) {
	app := newAIApp(&stubParser{result: &dto.ParsedOrderDTO{
		Items: []dto.ParsedOrderItem{{Name: "Mahou", Quantity: decimal.NewFromInt(24)}},
	}})

	resp := postJSON(t, app, `{"imageBase64":"Zm90bw==","inventoryNames":["Mahou"]}`)
	defer resp.Body.Close()

	assert.Equal(t, nethttp.StatusOK, resp.StatusCode)
	var parsed dto.ParsedOrderDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	require.Len(t, parsed.Items, 1)
	assert.Equal(t, "Mahou", parsed.Items[0].Name)
}

func TestProcessOrder_SinImagen(t *testing.T) {
	app := newAIApp(&stubParser{})

	resp := postJSON(t, app, `{"inventoryNames":["Mahou"]}`)
	defer resp.Body.Close()

	assert.Equal(t, nethttp.StatusBadRequest, resp.StatusCode)
	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "VALIDATION", errResp.Code)
}

func TestProcessOrder_ServicioSinConfigurar(t *testing.T) {
	app := newAIApp(&stubParser{err: errors.New("GEMINI_API_KEY no configurada")})

	resp := postJSON(t, app, `{"imageBase64":"Zm90bw=="}`)
	defer resp.Body.Close()

	assert.Equal(t, nethttp.StatusServiceUnavailable, resp.StatusCode)
	var errResp dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	assert.Equal(t, "AI_UNAVAILABLE", errResp.Code)
}

func TestProcessOrder_TimeoutDelModelo(t *testing.T) {
	app := newAIApp(&stubParser{err: context.DeadlineExceeded})

	resp := postJSON(t, app, `{"imageBase64":"Zm90bw=="}`)
	defer resp.Body.Close()

	assert.Equal(t, nethttp.StatusRequestTimeout, resp.StatusCode)
}
