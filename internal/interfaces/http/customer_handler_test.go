package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/clientes-api/internal/application/dto"
	"github.com/jhoicas/clientes-api/internal/application/usecase"
	"github.com/jhoicas/clientes-api/internal/domain/entity"
	apphttp "github.com/jhoicas/clientes-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// fakeCustomerRepo repositorio en memoria con la misma semántica que el de
// Postgres: IDs secuenciales, (nil, nil) cuando no existe, listado en orden
// de inserción.
type fakeCustomerRepo struct {
	nextID int64
	order  []int64
	byID   map[int64]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{byID: map[int64]*entity.Customer{}}
}

func (r *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.nextID++
	c.ID = r.nextID
	cp := *c
	r.byID[c.ID] = &cp
	r.order = append(r.order, c.ID)
	return nil
}

func (r *fakeCustomerRepo) GetByID(_ context.Context, id int64) (*entity.Customer, error) {
	c, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	cp := *c
	r.byID[c.ID] = &cp
	return nil
}

func (r *fakeCustomerRepo) Delete(_ context.Context, id int64) error {
	delete(r.byID, id)
	for i, v := range r.order {
		if v == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

func (r *fakeCustomerRepo) List(_ context.Context) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.order))
	for _, id := range r.order {
		cp := *r.byID[id]
		out = append(out, &cp)
	}
	return out, nil
}

// buildApp construye la aplicación Fiber con el repositorio en memoria.
func buildApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		CustomerUC: usecase.NewCustomerUseCase(newFakeCustomerRepo()),
		WorldClock: usecase.NewWorldClockUseCase(),
	})
	return app
}

// doJSON lanza una petición con cuerpo JSON (o sin cuerpo si body es nil).
func doJSON(t *testing.T, app *fiber.App, method, path string, body any) *http.Response {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// decode deserializa el cuerpo de la respuesta.
func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func ptr[T any](v T) *T { return &v }

// createCustomer helper: crea un cliente y devuelve la respuesta decodificada.
func createCustomer(t *testing.T, app *fiber.App, body any) dto.CustomerResponse {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/customers", body)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	return decode[dto.CustomerResponse](t, resp)
}

// ──────────────────────────────────────────────────────────────────────────────
// Tests CRUD de clientes
// ──────────────────────────────────────────────────────────────────────────────

// Crear devuelve el cliente completo con un ID fresco por cada creación.
func TestCreateCustomer_AsignaIDFresco(t *testing.T) {
	app := buildApp()

	first := createCustomer(t, app, dto.CreateCustomerRequest{
		Name:  ptr("Manuel"),
		Email: ptr("manuel@example.com"),
		Age:   ptr(28),
	})
	require.NotNil(t, first.Name)
	assert.Equal(t, "Manuel", *first.Name)
	require.NotNil(t, first.Email)
	assert.Equal(t, "manuel@example.com", *first.Email)
	require.NotNil(t, first.Age)
	assert.Equal(t, 28, *first.Age)
	assert.Nil(t, first.Description)

	second := createCustomer(t, app, dto.CreateCustomerRequest{Name: ptr("Laura")})
	assert.NotEqual(t, first.ID, second.ID, "cada creación debe asignar un ID nuevo")
}

// Los campos desconocidos del cuerpo se ignoran sin error.
func TestCreateCustomer_IgnoraCamposExtra(t *testing.T) {
	app := buildApp()
	resp := doJSON(t, app, http.MethodPost, "/customers", map[string]any{
		"name":    "Manuel",
		"company": "ACME", // no existe en la forma
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.CustomerResponse](t, resp)
	require.NotNil(t, got.Name)
	assert.Equal(t, "Manuel", *got.Name)
}

// Round-trip: crear y leer devuelve un registro idéntico.
func TestGetCustomer_RoundTrip(t *testing.T) {
	app := buildApp()
	created := createCustomer(t, app, dto.CreateCustomerRequest{
		Name:        ptr("Manuel"),
		Description: ptr("cliente frecuente"),
		Email:       ptr("manuel@example.com"),
		Age:         ptr(28),
	})

	resp := doJSON(t, app, http.MethodGet, fmt.Sprintf("/customer/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.CustomerResponse](t, resp)
	assert.Equal(t, created, got)
}

// GET, PATCH y DELETE sobre un ID nunca creado responden 404 con el
// mensaje fijo.
func TestCustomer_NoExiste404(t *testing.T) {
	app := buildApp()

	cases := []struct {
		method string
		body   any
	}{
		{http.MethodGet, nil},
		{http.MethodPatch, map[string]any{"age": 30}},
		{http.MethodDelete, nil},
	}
	for _, tc := range cases {
		resp := doJSON(t, app, tc.method, "/customer/999", tc.body)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, tc.method)
		got := decode[dto.DetailResponse](t, resp)
		assert.Equal(t, "Customer doesn't exist", got.Detail, tc.method)
	}
}

// Un ID no numérico responde 400, no 404.
func TestCustomer_IDNoEntero400(t *testing.T) {
	app := buildApp()
	resp := doJSON(t, app, http.MethodGet, "/customer/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// PATCH con un solo campo cambia ese campo y deja el resto intacto.
// El contrato responde 201 en la actualización.
func TestPatchCustomer_ParcialSoloCamposPresentes(t *testing.T) {
	app := buildApp()
	created := createCustomer(t, app, dto.CreateCustomerRequest{
		Name:        ptr("Manuel"),
		Description: ptr("cliente frecuente"),
		Email:       ptr("manuel@example.com"),
		Age:         ptr(28),
	})

	resp := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/customer/%d", created.ID), map[string]any{"age": 30})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	got := decode[dto.CustomerResponse](t, resp)

	require.NotNil(t, got.Age)
	assert.Equal(t, 30, *got.Age)
	assert.Equal(t, created.Name, got.Name)
	assert.Equal(t, created.Description, got.Description)
	assert.Equal(t, created.Email, got.Email)
}

// Un null explícito sí sobrescribe el campo con NULL; distinto de omitirlo.
func TestPatchCustomer_NullExplicitoSobrescribe(t *testing.T) {
	app := buildApp()
	created := createCustomer(t, app, dto.CreateCustomerRequest{
		Name:        ptr("Manuel"),
		Description: ptr("cliente frecuente"),
	})

	resp := doJSON(t, app, http.MethodPatch, fmt.Sprintf("/customer/%d", created.ID), map[string]any{"description": nil})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	got := decode[dto.CustomerResponse](t, resp)

	assert.Nil(t, got.Description, "null explícito debe guardar NULL")
	assert.Equal(t, created.Name, got.Name, "el campo omitido no se toca")
}

// Borrar es terminal: confirma con {detail: ok} y el GET posterior es 404.
func TestDeleteCustomer_EsTerminal(t *testing.T) {
	app := buildApp()
	created := createCustomer(t, app, dto.CreateCustomerRequest{Name: ptr("Manuel")})
	path := fmt.Sprintf("/customer/%d", created.ID)

	resp := doJSON(t, app, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[dto.DetailResponse](t, resp)
	assert.Equal(t, "ok", got.Detail)

	resp = doJSON(t, app, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Listar devuelve exactamente los N clientes creados.
func TestListCustomers_DevuelveTodos(t *testing.T) {
	app := buildApp()

	var created []dto.CustomerResponse
	for _, name := range []string{"Manuel", "Laura", "Andrés"} {
		created = append(created, createCustomer(t, app, dto.CreateCustomerRequest{Name: ptr(name)}))
	}

	resp := doJSON(t, app, http.MethodGet, "/customers", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[[]dto.CustomerResponse](t, resp)
	assert.ElementsMatch(t, created, got)
}

// El saludo raíz es fijo.
func TestRoot_Saludo(t *testing.T) {
	app := buildApp()
	resp := doJSON(t, app, http.MethodGet, "/", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	got := decode[map[string]string](t, resp)
	assert.Equal(t, "Hola, Manuel!", got["message"])
}
