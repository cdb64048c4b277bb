package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/fruteria-api/internal/application/usecase"
	"github.com/jhoicas/fruteria-api/internal/domain"
	"github.com/jhoicas/fruteria-api/internal/domain/entity"
	"github.com/jhoicas/fruteria-api/internal/domain/repository"
	"github.com/jhoicas/fruteria-api/internal/domain/service"
	apphttp "github.com/jhoicas/fruteria-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test: app Fiber completa sobre repositorios en memoria
// ──────────────────────────────────────────────────────────────────────────────

type memFruitRepo struct {
	byName map[string]*entity.Fruit
}

func (m *memFruitRepo) FindByName(name string) (*entity.Fruit, error) {
	f, ok := m.byName[name]
	if !ok {
		return nil, nil
	}
	clone := *f
	return &clone, nil
}

func (m *memFruitRepo) Save(fruit *entity.Fruit) error {
	for name, f := range m.byName {
		if f.ID == fruit.ID {
			clone := *fruit
			delete(m.byName, name)
			m.byName[fruit.Name] = &clone
			return nil
		}
	}
	if _, exists := m.byName[fruit.Name]; exists {
		return domain.ErrDuplicateName
	}
	clone := *fruit
	m.byName[fruit.Name] = &clone
	return nil
}

func (m *memFruitRepo) Delete(name string) error {
	delete(m.byName, name)
	return nil
}

type memOutboxRepo struct {
	events []*entity.OutboxEvent
}

func (m *memOutboxRepo) SaveEvent(event *entity.OutboxEvent) error {
	clone := *event
	m.events = append(m.events, &clone)
	return nil
}

func (m *memOutboxRepo) ListPending() ([]*entity.OutboxEvent, error) {
	var pending []*entity.OutboxEvent
	for _, e := range m.events {
		if !e.Delivered {
			pending = append(pending, e)
		}
	}
	return pending, nil
}

func (m *memOutboxRepo) MarkDelivered(string, time.Time) error { return nil }

type fakeTxRunner struct {
	fruits *memFruitRepo
	outbox *memOutboxRepo
}

func (f *fakeTxRunner) Run(_ context.Context, fn func(
	fruitRepo repository.FruitRepository,
	outboxRepo repository.OutboxRepository,
) error) error {
	return fn(f.fruits, f.outbox)
}

func buildTestApp() *fiber.App {
	fruits := &memFruitRepo{byName: make(map[string]*entity.Fruit)}
	outbox := &memOutboxRepo{}
	checker := service.NewNameUniquenessChecker(fruits)
	uc := usecase.NewFruitUseCase(fruits, checker, &fakeTxRunner{fruits: fruits, outbox: outbox})

	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{FruitUC: uc})
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeFruit(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return body
}

func createFruit(t *testing.T, app *fiber.App, name, description string, limit int) *http.Response {
	t.Helper()
	return doJSON(t, app, http.MethodPost, "/api/fruits", fiber.Map{
		"name": name, "description": description, "limit": limit,
	})
}

// ──────────────────────────────────────────────────────────────────────────────
// Mapeo de errores a códigos HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestCreate_Retorna201(t *testing.T) {
	app := buildTestApp()

	resp := createFruit(t, app, "lemon", "this is a lemon", 10)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decodeFruit(t, resp)
	assert.Equal(t, "lemon", body["name"])
	assert.Equal(t, float64(0), body["stored"])
	assert.NotEmpty(t, body["id"])
}

func TestCreate_Duplicado_Retorna409(t *testing.T) {
	app := buildTestApp()
	createFruit(t, app, "lemon", "", 10).Body.Close()

	resp := createFruit(t, app, "lemon", "", 10)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "DUPLICATE_NAME", errBody["code"])
}

func TestCreate_DescripcionLarga_Retorna400(t *testing.T) {
	app := buildTestApp()

	resp := createFruit(t, app, "lemon", strings.Repeat("x", 40), 10)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCreate_SinNombre_Retorna400(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodPost, "/api/fruits", fiber.Map{"limit": 10})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestFind_Inexistente_Retorna404(t *testing.T) {
	app := buildTestApp()

	resp := doJSON(t, app, http.MethodGet, "/api/fruits/mango", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestStore_SuperaLimite_Retorna409(t *testing.T) {
	app := buildTestApp()
	createFruit(t, app, "lemon", "", 10).Body.Close()

	resp := doJSON(t, app, http.MethodPost, "/api/fruits/lemon/store", fiber.Map{"amount": 11})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "CAPACITY_EXCEEDED", errBody["code"])
}

func TestStore_CantidadNegativa_Retorna400(t *testing.T) {
	app := buildTestApp()
	createFruit(t, app, "lemon", "", 10).Body.Close()

	resp := doJSON(t, app, http.MethodPost, "/api/fruits/lemon/store", fiber.Map{"amount": -1})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRemove_Insuficiente_Retorna409(t *testing.T) {
	app := buildTestApp()
	createFruit(t, app, "lemon", "", 10).Body.Close()

	resp := doJSON(t, app, http.MethodPost, "/api/fruits/lemon/remove", fiber.Map{"amount": 1})
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "INSUFFICIENT_STOCK", errBody["code"])
}

func TestDelete_ConStockSinForce_Retorna409(t *testing.T) {
	app := buildTestApp()
	createFruit(t, app, "lemon", "", 10).Body.Close()
	doJSON(t, app, http.MethodPost, "/api/fruits/lemon/store", fiber.Map{"amount": 2}).Body.Close()

	resp := doJSON(t, app, http.MethodDelete, "/api/fruits/lemon", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var errBody map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errBody))
	assert.Equal(t, "NON_EMPTY_STOCK", errBody["code"])
}

func TestDelete_ConForce_Retorna200ConSnapshot(t *testing.T) {
	app := buildTestApp()
	createFruit(t, app, "lemon", "", 10).Body.Close()
	doJSON(t, app, http.MethodPost, "/api/fruits/lemon/store", fiber.Map{"amount": 2}).Body.Close()

	resp := doJSON(t, app, http.MethodDelete, "/api/fruits/lemon?force=true", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeFruit(t, resp)
	assert.Equal(t, float64(2), body["stored"], "debe devolver el snapshot previo")

	// Ya no existe.
	resp = doJSON(t, app, http.MethodGet, "/api/fruits/lemon", nil)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenario completo del limón sobre HTTP
// ──────────────────────────────────────────────────────────────────────────────

func TestEscenarioLemon_HTTP(t *testing.T) {
	app := buildTestApp()

	resp := createFruit(t, app, "lemon", "this is a lemon", 10)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/fruits/lemon/store", fiber.Map{"amount": 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(5), decodeFruit(t, resp)["stored"])

	resp = doJSON(t, app, http.MethodPost, "/api/fruits/lemon/store", fiber.Map{"amount": 6})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/fruits/lemon", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(5), decodeFruit(t, resp)["stored"], "el fallo no debe aplicar nada")

	resp = doJSON(t, app, http.MethodPost, "/api/fruits/lemon/remove", fiber.Map{"amount": 5})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, float64(0), decodeFruit(t, resp)["stored"])

	resp = doJSON(t, app, http.MethodDelete, "/api/fruits/lemon", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode, "con stock en cero el borrado sin force procede")
	resp.Body.Close()
}

// Actualizar reemplaza descripción y límite completos vía PUT.
func TestUpdate_HTTP(t *testing.T) {
	app := buildTestApp()
	createFruit(t, app, "lemon", "vieja", 10).Body.Close()

	resp := doJSON(t, app, http.MethodPut, "/api/fruits/lemon", fiber.Map{
		"description": "nueva", "limit": 20,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body := decodeFruit(t, resp)
	assert.Equal(t, "nueva", body["description"])
	assert.Equal(t, float64(20), body["limit"])
}
