package http_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appanalytics "github.com/jhoicas/estoque-api/internal/application/analytics"
	"github.com/jhoicas/estoque-api/internal/application/auth"
	"github.com/jhoicas/estoque-api/internal/application/checkout"
	"github.com/jhoicas/estoque-api/internal/application/dto"
	"github.com/jhoicas/estoque-api/internal/application/export"
	"github.com/jhoicas/estoque-api/internal/application/inventory"
	"github.com/jhoicas/estoque-api/internal/application/usecase"
	"github.com/jhoicas/estoque-api/internal/domain/entity"
	infrapdf "github.com/jhoicas/estoque-api/internal/infrastructure/pdf"
	"github.com/jhoicas/estoque-api/internal/infrastructure/store"
	"github.com/jhoicas/estoque-api/internal/infrastructure/store/storetest"
	apphttp "github.com/jhoicas/estoque-api/internal/interfaces/http"
	"github.com/jhoicas/estoque-api/pkg/logger"
	pkgjwt "github.com/jhoicas/estoque-api/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// App completa sobre SQLite temporal
// ──────────────────────────────────────────────────────────────────────────────

func newTestApp(t *testing.T) (*fiber.App, *store.DB) {
	t.Helper()
	return newTestAppWithLogger(t, logger.Nop())
}

func newTestAppWithLogger(t *testing.T, log *logger.Logger) (*fiber.App, *store.DB) {
	t.Helper()
	db := storetest.Open(t)
	conn := db.Conn()
	txRunner := store.NewTxRunner(db)

	app := apphttp.NewApp("estoque-api-test", log)
	apphttp.Router(app, apphttp.RouterDeps{
		AuthUC: auth.NewAuthUseCase(store.NewUserRepository(conn), auth.JWTConfig{
			Secret: testJWTSecret, ExpMinutes: testExpMin, Issuer: testIssuer,
		}),
		CompanyUC:   usecase.NewCompanyUseCase(store.NewUserRepository(conn), store.NewCompanyRepository(conn), txRunner),
		EmployeeUC:  usecase.NewEmployeeUseCase(store.NewEmployeeRepository(conn)),
		ClientUC:    usecase.NewClientUseCase(store.NewClientRepository(conn)),
		InventoryUC: inventory.NewUseCase(store.NewInventoryRepository(conn), txRunner),
		CheckoutUC:  checkout.NewUseCase(txRunner, log),
		DashboardUC: appanalytics.NewDashboardUseCase(store.NewMetricsRepository(conn)),
		ExportUC:    export.NewUseCase(store.NewCompanyRepository(conn), store.NewSaleRepository(conn), infrapdf.NewMarotoSalesReport()),
		JWTSecret:   testJWTSecret,
		SessionTTL:  time.Hour,
	})
	return app, db
}

func bearer(t *testing.T, u *entity.User) string {
	t.Helper()
	tok, err := pkgjwt.Generate(testJWTSecret, u.ID, u.DisplayName(), testIssuer, testExpMin)
	require.NoError(t, err)
	return "Bearer " + tok
}

func do(t *testing.T, app *fiber.App, req *http.Request) *http.Response {
	t.Helper()
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func jsonRequest(method, target string, body any) *http.Request {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(method, target, strings.NewReader(string(raw)))
	req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	return req
}

func formRequest(target, authHeader string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", fiber.MIMEApplicationForm)
	req.Header.Set("Authorization", authHeader)
	return req
}

func getRequest(target, authHeader string) *http.Request {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.Header.Set("Authorization", authHeader)
	return req
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	b, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return string(b)
}

// ──────────────────────────────────────────────────────────────────────────────
// Auth
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_RegistroLoginYCookie(t *testing.T) {
	app, _ := newTestApp(t)

	resp := do(t, app, jsonRequest(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name: "Maria", LastName: "Silva", BirthDate: "21/07/1988",
		Email: "maria@loja.com.br", Password: "segredo1", ConfirmPassword: "segredo1",
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode, readBody(t, resp))

	resp = do(t, app, jsonRequest(http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email: "maria@loja.com.br", Password: "segredo1",
	}))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var session *http.Cookie
	for _, ck := range resp.Cookies() {
		if ck.Name == apphttp.TokenCookie {
			session = ck
		}
	}
	require.NotNil(t, session, "el login debe dejar la cookie de sesión")
	assert.True(t, session.HttpOnly)

	// La cookie sola alcanza para las rutas protegidas.
	req := httptest.NewRequest(http.MethodGet, "/api/company", nil)
	req.AddCookie(&http.Cookie{Name: apphttp.TokenCookie, Value: session.Value})
	resp = do(t, app, req)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var profile dto.ProfileResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&profile))
	assert.Equal(t, "Maria", profile.Name)
	assert.Nil(t, profile.Company)
}

func TestRouter_RegistroInvalido_Retorna400(t *testing.T) {
	app, _ := newTestApp(t)

	resp := do(t, app, jsonRequest(http.MethodPost, "/api/auth/register", dto.RegisterRequest{
		Name: "Maria", Email: "no-es-email",
	}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "VALIDATION", body.Code)
	assert.Contains(t, body.Message, "email")
}

func TestRouter_LoginIncorrecto_Retorna401(t *testing.T) {
	app, _ := newTestApp(t)

	resp := do(t, app, jsonRequest(http.MethodPost, "/api/auth/login", dto.LoginRequest{
		Email: "nadie@loja.com.br", Password: "x",
	}))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_RutaProtegidaSinSesion(t *testing.T) {
	app, _ := newTestApp(t)

	resp := do(t, app, httptest.NewRequest(http.MethodGet, "/dados_dashboard_metricas", nil))
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_HealthYRequestID(t *testing.T) {
	app, _ := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(apphttp.HeaderRequestID, "abc-123")
	resp := do(t, app, req)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "abc-123", resp.Header.Get(apphttp.HeaderRequestID))

	resp = do(t, app, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderRequestID), "sin header se genera uno")
}

// ──────────────────────────────────────────────────────────────────────────────
// Estoque y buscadores
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_ProductoInexistente(t *testing.T) {
	app, db := newTestApp(t)
	owner := storetest.SeedUser(t, db, "maria")
	tok := bearer(t, owner)

	resp := do(t, app, getRequest("/api/inventory/999", tok))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, app, getRequest("/api/inventory/abc", tok))
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	resp = do(t, app, getRequest("/buscar_produto_route?codigo=NAOEXISTE", tok))
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "null", strings.TrimSpace(readBody(t, resp)))
}

func TestRouter_BuscadorAisladoPorDueno(t *testing.T) {
	app, db := newTestApp(t)
	maria := storetest.SeedUser(t, db, "maria")
	joao := storetest.SeedUser(t, db, "joao")
	storetest.SeedClient(t, db, maria.ID, "Ana Lima")

	resp := do(t, app, getRequest("/buscar_clientes?query=ana", bearer(t, maria)))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Ana Lima")

	resp = do(t, app, getRequest("/buscar_clientes?query=ana", bearer(t, joao)))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.NotContains(t, readBody(t, resp), "Ana Lima")
}

// ──────────────────────────────────────────────────────────────────────────────
// Carrito
// ──────────────────────────────────────────────────────────────────────────────

func cartForm(t *testing.T, cart dto.CartDTO) url.Values {
	t.Helper()
	raw, err := json.Marshal(cart)
	require.NoError(t, err)
	return url.Values{"dados_carrinho": {string(raw)}}
}

func TestRouter_FinalizarCompra_RedirigeConExito(t *testing.T) {
	app, db := newTestApp(t)
	owner := storetest.SeedUser(t, db, "maria")
	storetest.SeedClient(t, db, owner.ID, "Ana Lima")
	item := storetest.SeedItem(t, db, owner.ID, "ABC1", "Camisa", 10, "25.00")

	form := cartForm(t, dto.CartDTO{
		Client: "Ana Lima",
		Seller: checkout.NoSeller,
		Items: []dto.CartItemDTO{
			{Code: "ABC1", Quantity: 2, Price: decimal.RequireFromString("50")},
			{Code: "ZZZ9", Quantity: 1, Price: decimal.RequireFromString("10")},
		},
	})
	resp := do(t, app, formRequest("/finalizar_compra", bearer(t, owner), form))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get(fiber.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "/painel_compras", loc.Path)
	msg := loc.Query().Get("sucesso")
	assert.Contains(t, msg, "R$ 50,00")
	assert.Contains(t, msg, "ZZZ9", "el código desconocido se informa y se ignora")

	assert.Equal(t, 8, storetest.Item(t, db, owner.ID, item.ID).Quantity)
	assert.Equal(t, 1, storetest.CountSales(t, db, owner.ID))
}

// follow hace el GET que haría el navegador tras el 303.
func follow(t *testing.T, app *fiber.App, resp *http.Response, authHeader string) *http.Response {
	t.Helper()
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)
	return do(t, app, getRequest(resp.Header.Get(fiber.HeaderLocation), authHeader))
}

func TestRouter_FinalizarCompra_PainelMuestraMensaje(t *testing.T) {
	app, db := newTestApp(t)
	owner := storetest.SeedUser(t, db, "maria")
	storetest.SeedClient(t, db, owner.ID, "Ana Lima")
	storetest.SeedItem(t, db, owner.ID, "ABC1", "Camisa", 10, "25.00")
	authHeader := bearer(t, owner)

	form := cartForm(t, dto.CartDTO{
		Client: "Ana Lima",
		Items:  []dto.CartItemDTO{{Code: "ABC1", Quantity: 1, Price: decimal.RequireFromString("25")}},
	})
	resp := follow(t, app, do(t, app, formRequest("/finalizar_compra", authHeader, form)), authHeader)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var panel dto.PurchasePanelResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&panel))
	assert.Equal(t, owner.Name, panel.DefaultSeller)
	assert.Contains(t, panel.Success, "R$ 25,00")
	assert.Empty(t, panel.Error)

	form = cartForm(t, dto.CartDTO{
		Client: "Fulano",
		Items:  []dto.CartItemDTO{{Code: "ABC1", Quantity: 1, Price: decimal.RequireFromString("25")}},
	})
	resp = follow(t, app, do(t, app, formRequest("/finalizar_compra", authHeader, form)), authHeader)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	panel = dto.PurchasePanelResponse{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&panel))
	assert.Contains(t, panel.Error, "Fulano")
}

func TestRouter_FinalizarCompra_ErrorDeBaseQuedaEnElLog(t *testing.T) {
	var buf bytes.Buffer
	app, db := newTestAppWithLogger(t, logger.New(logger.Config{Env: "production", Level: "info", Output: &buf}))
	owner := storetest.SeedUser(t, db, "maria")
	storetest.SeedClient(t, db, owner.ID, "Ana Lima")
	storetest.SeedItem(t, db, owner.ID, "ABC1", "Camisa", 10, "25.00")
	require.NoError(t, db.Close())

	form := cartForm(t, dto.CartDTO{
		Client: "Ana Lima",
		Items:  []dto.CartItemDTO{{Code: "ABC1", Quantity: 1, Price: decimal.RequireFromString("25")}},
	})
	resp := do(t, app, formRequest("/finalizar_compra", bearer(t, owner), form))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get(fiber.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "erro interno, tente novamente", loc.Query().Get("erro"))

	logged := buf.String()
	assert.Contains(t, logged, `"level":"error"`)
	assert.Contains(t, logged, "database is closed")
	assert.Contains(t, logged, `"path":"/finalizar_compra"`)
}

func TestRouter_FinalizarCompra_ClienteDesconocido(t *testing.T) {
	app, db := newTestApp(t)
	owner := storetest.SeedUser(t, db, "maria")
	storetest.SeedItem(t, db, owner.ID, "ABC1", "Camisa", 10, "25.00")

	form := cartForm(t, dto.CartDTO{
		Client: "Fulano",
		Seller: checkout.NoSeller,
		Items:  []dto.CartItemDTO{{Code: "ABC1", Quantity: 1, Price: decimal.RequireFromString("25")}},
	})
	resp := do(t, app, formRequest("/finalizar_compra", bearer(t, owner), form))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get(fiber.HeaderLocation))
	require.NoError(t, err)
	assert.NotEmpty(t, loc.Query().Get("erro"))
	assert.Equal(t, 0, storetest.CountSales(t, db, owner.ID))
}

func TestRouter_RevisarCompra(t *testing.T) {
	app, db := newTestApp(t)
	owner := storetest.SeedUser(t, db, "maria")

	form := cartForm(t, dto.CartDTO{
		Client: "Ana Lima",
		Items: []dto.CartItemDTO{
			{Code: "ABC1", Quantity: 2, Price: decimal.RequireFromString("50")},
			{Code: "K1", Quantity: 1, Price: decimal.RequireFromString("19.90")},
		},
	})
	resp := do(t, app, formRequest("/revisar_compra", bearer(t, owner), form))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.CartReviewResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.True(t, out.Total.Equal(decimal.RequireFromString("69.90")))
	assert.Len(t, out.Cart.Items, 2)

	resp = do(t, app, formRequest("/revisar_compra", bearer(t, owner), url.Values{"dados_carrinho": {"{"}}))
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Métricas
// ──────────────────────────────────────────────────────────────────────────────

func TestRouter_MetricasClientes(t *testing.T) {
	app, db := newTestApp(t)
	owner := storetest.SeedUser(t, db, "maria")
	ana := storetest.SeedClient(t, db, owner.ID, "Ana Lima")
	item := storetest.SeedItem(t, db, owner.ID, "ABC1", "Camisa", 10, "25.00")
	storetest.SeedSale(t, db, entity.Sale{
		UserID: owner.ID, ClientID: ana.ID, ItemID: item.ID,
		Total: decimal.RequireFromString("80"), SaleDate: time.Now().Format("2006-01-02"),
	})

	resp := do(t, app, getRequest("/dados_metricas_clientes", bearer(t, owner)))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.ClientMetricsDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, 1, out.KPIs.TotalClients)
	assert.Equal(t, "Ana Lima", out.KPIs.TopSpenderName)
	assert.Equal(t, "R$ 80,00", out.KPIs.TopSpenderValue)
}

func TestRouter_MetricasVentasSinDatos(t *testing.T) {
	app, db := newTestApp(t)
	owner := storetest.SeedUser(t, db, "maria")

	resp := do(t, app, getRequest("/dados_dashboard_metricas", bearer(t, owner)))
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out dto.SalesMetricsDTO
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Len(t, out.MonthlySales.Labels, 12)
	assert.Equal(t, "N/A", out.KPIs.BestMonthLabel)
}

// ──────────────────────────────────────────────────────────────────────────────
// Exportación
// ──────────────────────────────────────────────────────────────────────────────

func seedExportSale(t *testing.T, db *store.DB, owner *entity.User) *entity.Sale {
	t.Helper()
	ana := storetest.SeedClient(t, db, owner.ID, "Ana Lima")
	item := storetest.SeedItem(t, db, owner.ID, "ABC1", "Camisa", 10, "25.00")
	return storetest.SeedSale(t, db, entity.Sale{
		UserID: owner.ID, ClientID: ana.ID, ItemID: item.ID, Quantity: 2,
		Total: decimal.RequireFromString("50"), SaleDate: time.Now().Format("2006-01-02"),
	})
}

func TestRouter_ExportarSinEmpresa_RedirigeADadosEmpresa(t *testing.T) {
	app, db := newTestApp(t)
	owner := storetest.SeedUser(t, db, "maria")
	sale := seedExportSale(t, db, owner)

	form := url.Values{"venda_ids": {strconv.FormatInt(sale.ID, 10)}, "formato_exportacao": {"csv"}}
	resp := do(t, app, formRequest("/gerar_arquivo_nfe", bearer(t, owner), form))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get(fiber.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "/dados_empresa", loc.Path)
	assert.NotEmpty(t, loc.Query().Get("erro"))

	resp = follow(t, app, resp, bearer(t, owner))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var page dto.CompanyPageResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&page))
	assert.Equal(t, loc.Query().Get("erro"), page.Error)
	assert.Equal(t, owner.Email, page.Email)
	assert.Nil(t, page.Company)
}

func TestRouter_ExportarCSV(t *testing.T) {
	app, db := newTestApp(t)
	owner := storetest.SeedUser(t, db, "maria")
	sale := seedExportSale(t, db, owner)
	require.NoError(t, store.NewCompanyRepository(db.Conn()).Upsert(context.Background(), &entity.Company{
		UserID: owner.ID, TradeName: "Moda Maria", CEP: "01001-000", Street: "Rua Direita 10",
		District: "Centro", City: "São Paulo", State: "SP", Country: "Brasil",
	}))

	resp := do(t, app, getRequest("/exportar_vendas_nfe", bearer(t, owner)))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, readBody(t, resp), "Ana Lima")

	form := url.Values{"venda_ids": {strconv.FormatInt(sale.ID, 10)}, "formato_exportacao": {"csv"}}
	resp = do(t, app, formRequest("/gerar_arquivo_nfe", bearer(t, owner), form))
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "attachment;filename=vendas_para_nfe.csv", resp.Header.Get(fiber.HeaderContentDisposition))
	assert.True(t, strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), "text/csv"))

	body := readBody(t, resp)
	assert.True(t, strings.HasPrefix(body, "EmitCNPJ;"))
	assert.Contains(t, body, "Ana Lima;ISENTO")
}

func TestRouter_ExportarSinSeleccion(t *testing.T) {
	app, db := newTestApp(t)
	owner := storetest.SeedUser(t, db, "maria")

	resp := do(t, app, formRequest("/gerar_arquivo_nfe", bearer(t, owner), url.Values{"formato_exportacao": {"xml"}}))
	require.Equal(t, http.StatusSeeOther, resp.StatusCode)

	loc, err := url.Parse(resp.Header.Get(fiber.HeaderLocation))
	require.NoError(t, err)
	assert.Equal(t, "/exportar_vendas_nfe", loc.Path)
}
