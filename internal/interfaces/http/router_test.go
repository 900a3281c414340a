package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Cafeteria-client/internal/application/dto"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/memory"
	apphttp "github.com/jhoicas/Cafeteria-client/internal/interfaces/http"
)

// stubApp aplicación completa del stub contra un almacén vacío.
func stubApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{
		Store: memory.NewStore(),
		JWT:   apphttp.JWTConfig{Secret: testJWTSecret, Issuer: testIssuer, ExpMinutes: testExpMin},
	})
	return app
}

// call lanza una petición JSON y decodifica la respuesta en out (si no es nil).
func call(t *testing.T, app *fiber.App, method, path, token string, body, out any) int {
	t.Helper()
	reqBody := bytes.NewBuffer(nil)
	if body != nil {
		require.NoError(t, json.NewEncoder(reqBody).Encode(body))
	}
	req := httptest.NewRequest(method, path, reqBody)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil && resp.StatusCode < 300 {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

// Flujo completo: registro → login → café → stock → carta → receta →
// empleado → pedido → reporte diario. El mismo recorrido que hace el CLI.
func TestStub_FlujoLoginPedidoReporte(t *testing.T) {
	app := stubApp()

	// Registro y login
	status := call(t, app, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Email: "sara@cafe.ma", Password: "secreto123", FullName: "Sara",
	}, nil)
	require.Equal(t, http.StatusCreated, status)

	var login dto.LoginResponse
	status = call(t, app, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email: "sara@cafe.ma", Password: "secreto123",
	}, &login)
	require.Equal(t, http.StatusOK, status)
	require.NotEmpty(t, login.AccessToken)
	token := login.AccessToken

	var me entity.User
	status = call(t, app, http.MethodGet, "/api/v1/auth/me", token, nil, &me)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "sara@cafe.ma", me.Email)

	// Café
	var cafe entity.Cafe
	status = call(t, app, http.MethodPost, "/api/v1/cafes", token, dto.CreateCafeRequest{
		Name: "Café Central", CurrencySymbol: "DH",
	}, &cafe)
	require.Equal(t, http.StatusCreated, status)
	base := "/api/v1/cafes/" + cafe.ID

	// Stock + carta + receta
	var milk entity.StockItem
	status = call(t, app, http.MethodPost, base+"/stock", token, dto.StockItemRequest{
		Name: "Leche", UnitOfMeasure: "L",
		CurrentQuantity:   decimal.NewFromInt(10),
		CostPerUnit:       decimal.NewFromInt(5),
		LowStockThreshold: decimal.NewFromInt(2),
	}, &milk)
	require.Equal(t, http.StatusCreated, status)

	var latte entity.MenuItem
	status = call(t, app, http.MethodPost, base+"/menu", token, dto.MenuItemRequest{
		Name: "Latte", SalePrice: decimal.NewFromInt(20),
	}, &latte)
	require.Equal(t, http.StatusCreated, status)

	status = call(t, app, http.MethodPut, base+"/menu/"+latte.ID+"/recipe", token, dto.UpdateRecipeRequest{
		Ingredients: []dto.RecipeIngredient{{StockItemID: milk.ID, QuantityUsed: decimal.NewFromFloat(0.2)}},
	}, nil)
	require.Equal(t, http.StatusOK, status)

	// Empleado y pedido
	var staff entity.Staff
	status = call(t, app, http.MethodPost, base+"/staff", token, dto.StaffRequest{
		Name: "Karim", DailySalary: decimal.NewFromInt(100),
	}, &staff)
	require.Equal(t, http.StatusCreated, status)

	var order entity.Order
	status = call(t, app, http.MethodPost, base+"/orders", token, dto.CreateOrderRequest{
		StaffID: staff.ID,
		Items:   []dto.OrderLine{{MenuItemID: latte.ID, Quantity: 3}},
	}, &order)
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, decimal.NewFromInt(60).Equal(order.TotalRevenue))

	// El pedido descuenta el stock
	var stock []entity.StockItem
	status = call(t, app, http.MethodGet, base+"/stock", token, nil, &stock)
	require.Equal(t, http.StatusOK, status)
	require.Len(t, stock, 1)
	assert.True(t, decimal.NewFromFloat(9.4).Equal(stock[0].CurrentQuantity))

	// Reporte del día del pedido
	date := order.Timestamp.Format("2006-01-02")
	var report entity.DailyReport
	status = call(t, app, http.MethodGet, base+"/reports/daily?date="+date, token, nil, &report)
	require.Equal(t, http.StatusOK, status)
	assert.True(t, decimal.NewFromInt(60).Equal(report.TotalRevenue))
	assert.True(t, decimal.NewFromInt(100).Equal(report.Costs.Salaries))
	assert.True(t, report.NetProfit.Equal(report.TotalRevenue.Sub(report.Costs.TotalCosts)))
}

func TestStub_RutasProtegidasSinToken(t *testing.T) {
	app := stubApp()

	status := call(t, app, http.MethodGet, "/api/v1/cafes", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
	status = call(t, app, http.MethodGet, "/api/v1/auth/me", "", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, status)
}

func TestStub_AdminBloqueadoParaUsuariosNormales(t *testing.T) {
	app := stubApp()

	call(t, app, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Email: "sara@cafe.ma", Password: "secreto123",
	}, nil)
	var login dto.LoginResponse
	call(t, app, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
		Email: "sara@cafe.ma", Password: "secreto123",
	}, &login)

	status := call(t, app, http.MethodGet, "/api/v1/admin/users", login.AccessToken, nil, nil)
	assert.Equal(t, http.StatusForbidden, status)
}

func TestStub_AccesoCruzadoEntreCafes(t *testing.T) {
	app := stubApp()

	register := func(email string) string {
		call(t, app, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
			Email: email, Password: "secreto123",
		}, nil)
		var login dto.LoginResponse
		call(t, app, http.MethodPost, "/api/v1/auth/login", "", dto.LoginRequest{
			Email: email, Password: "secreto123",
		}, &login)
		return login.AccessToken
	}
	sara := register("sara@cafe.ma")
	otro := register("otro@cafe.ma")

	var cafe entity.Cafe
	call(t, app, http.MethodPost, "/api/v1/cafes", sara, dto.CreateCafeRequest{Name: "De Sara"}, &cafe)

	status := call(t, app, http.MethodGet, "/api/v1/cafes/"+cafe.ID+"/stock", otro, nil, nil)
	assert.Equal(t, http.StatusForbidden, status,
		"un usuario no asignado no debe ver recursos de otro café")
	status = call(t, app, http.MethodGet, "/api/v1/cafes/"+cafe.ID+"/stock", sara, nil, nil)
	assert.Equal(t, http.StatusOK, status)
}

// El stub habla el mismo envelope de error que espera el gateway.
func TestStub_ErroresConDetail(t *testing.T) {
	app := stubApp()

	call(t, app, http.MethodPost, "/api/v1/auth/register", "", dto.RegisterRequest{
		Email: "sara@cafe.ma", Password: "secreto123",
	}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", bytes.NewBufferString(
		`{"email":"sara@cafe.ma","password":"incorrecta"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	var e dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&e))
	assert.NotEmpty(t, e.Detail)
}
