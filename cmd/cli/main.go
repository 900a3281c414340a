// Command cli es el cliente de terminal del gestor de cafeterías:
// login, selección de café, carrito POS, inventario con estado de stock,
// carta con márgenes y reportes financieros (con exportación a PDF).
//
// Uso:
//
//	cli login <email> <password>
//	cli logout | whoami | cafes | select-cafe <id>
//	cli stock | menu | staff | orders [fecha]
//	cli order <staff-id> <menu-item-id>[xN] ...
//	cli report <fecha> | report-pdf <fecha> <salida.pdf>
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	apppos "github.com/jhoicas/Cafeteria-client/internal/application/pos"
	"github.com/jhoicas/Cafeteria-client/internal/application/query"
	"github.com/jhoicas/Cafeteria-client/internal/application/session"
	"github.com/jhoicas/Cafeteria-client/internal/domain/entity"
	"github.com/jhoicas/Cafeteria-client/internal/domain/finance"
	dompos "github.com/jhoicas/Cafeteria-client/internal/domain/pos"
	"github.com/jhoicas/Cafeteria-client/internal/domain/recipe"
	domstock "github.com/jhoicas/Cafeteria-client/internal/domain/stock"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/api"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/pdf"
	"github.com/jhoicas/Cafeteria-client/internal/infrastructure/storage"
	"github.com/jhoicas/Cafeteria-client/pkg/config"
	"github.com/jhoicas/Cafeteria-client/pkg/logger"
)

// app agrupa las dependencias compartidas por todos los comandos.
type app struct {
	sess   *session.Store
	client *api.Client
	cache  *query.Cache
	log    *logger.Logger
}

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})

	persister, err := storage.NewFilePersister(cfg.Session.File)
	if err != nil {
		log.Fatal().Err(err).Msg("preparar persistencia de sesión")
	}
	sess := session.NewStore(persister, log)

	// "Navegar al login" en terminal: avisar y salir con error
	navigate := func() {
		fmt.Fprintln(os.Stderr, "sesión expirada: vuelve a ejecutar `cli login <email> <password>`")
	}
	client := api.New(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, sess, navigate, log)

	a := &app{sess: sess, client: client, cache: query.NewCache(), log: log}

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	ctx := context.Background()
	args := os.Args[2:]
	switch os.Args[1] {
	case "login":
		err = a.login(ctx, args)
	case "logout":
		a.sess.Logout()
		fmt.Println("sesión cerrada")
	case "whoami":
		err = a.whoami()
	case "cafes":
		err = a.cafes(ctx)
	case "select-cafe":
		err = a.selectCafe(ctx, args)
	case "stock":
		err = a.stock(ctx)
	case "menu":
		err = a.menu(ctx)
	case "staff":
		err = a.staffList(ctx)
	case "orders":
		err = a.orders(ctx, args)
	case "order":
		err = a.order(ctx, args)
	case "report":
		err = a.report(ctx, args)
	case "report-pdf":
		err = a.reportPDF(ctx, args)
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("comando", os.Args[1]).Msg("comando fallido")
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "uso: cli <login|logout|whoami|cafes|select-cafe|stock|menu|staff|orders|order|report|report-pdf> [args]")
}

// ── Sesión ────────────────────────────────────────────────────────────────────

// login hace el par login + fetch de perfil: primero el token va a la
// sesión (el gateway lo necesita para GET /auth/me) y después se guarda
// el perfil completo.
func (a *app) login(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("uso: cli login <email> <password>")
	}
	token, err := a.client.Login(ctx, args[0], args[1])
	if err != nil {
		return err
	}
	a.sess.SetToken(token)
	user, err := a.client.Me(ctx)
	if err != nil {
		return err
	}
	a.sess.SetAuth(user, token)
	fmt.Printf("sesión iniciada como %s\n", user.Email)
	return nil
}

func (a *app) whoami() error {
	user := a.sess.User()
	if user == nil {
		fmt.Println("sin sesión")
		return nil
	}
	fmt.Printf("usuario: %s (%s)\n", user.Email, user.FullName)
	if cafeID := a.sess.SelectedCafeID(); cafeID != "" {
		fmt.Printf("café seleccionado: %s\n", cafeID)
	}
	if exp := a.sess.TokenExpiresAt(); !exp.IsZero() {
		fmt.Printf("token expira: %s\n", exp.Format("2006-01-02 15:04"))
	}
	return nil
}

func (a *app) cafes(ctx context.Context) error {
	cafes, err := query.Through(ctx, a.cache, query.NewKey("cafes"), func(ctx context.Context) ([]entity.Cafe, error) {
		return a.client.ListCafes(ctx)
	})
	if err != nil {
		return err
	}
	for _, c := range cafes {
		marker := " "
		if c.ID == a.sess.SelectedCafeID() {
			marker = "*"
		}
		fmt.Printf("%s %s  %s\n", marker, c.ID, c.Name)
	}
	return nil
}

func (a *app) selectCafe(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("uso: cli select-cafe <id>")
	}
	cafes, err := a.client.ListCafes(ctx)
	if err != nil {
		return err
	}
	for _, c := range cafes {
		if c.ID == args[0] {
			a.sess.SetSelectedCafe(c.ID)
			fmt.Printf("café seleccionado: %s\n", c.Name)
			return nil
		}
	}
	return fmt.Errorf("café %q no encontrado entre los asignados", args[0])
}

// selectedCafe devuelve el café activo o un error accionable.
func (a *app) selectedCafe() (string, error) {
	cafeID := a.sess.SelectedCafeID()
	if cafeID == "" {
		return "", fmt.Errorf("ningún café seleccionado: ejecuta `cli select-cafe <id>`")
	}
	return cafeID, nil
}

// ── Inventario y carta ────────────────────────────────────────────────────────

func (a *app) stock(ctx context.Context) error {
	cafeID, err := a.selectedCafe()
	if err != nil {
		return err
	}
	items, err := query.Through(ctx, a.cache, query.NewKey("stock", cafeID), func(ctx context.Context) ([]entity.StockItem, error) {
		return a.client.ListStock(ctx, cafeID)
	})
	if err != nil {
		return err
	}
	for _, it := range items {
		fmt.Printf("%-10s %-20s %8s %-4s  costo %8s  [%s]\n",
			it.ID, it.Name, it.CurrentQuantity.String(), it.UnitOfMeasure,
			it.CostPerUnit.StringFixed(2), domstock.StatusOf(it))
	}
	if low := domstock.FilterBelowOK(items); len(low) > 0 {
		fmt.Printf("\n%d ítem(s) por debajo del nivel normal\n", len(low))
	}
	return nil
}

func (a *app) menu(ctx context.Context) error {
	cafeID, err := a.selectedCafe()
	if err != nil {
		return err
	}
	items, err := a.client.ListMenu(ctx, cafeID)
	if err != nil {
		return err
	}
	stock, err := a.client.ListStock(ctx, cafeID)
	if err != nil {
		return err
	}
	for _, it := range items {
		lines, err := a.client.GetRecipe(ctx, cafeID, it.ID)
		if err != nil {
			return err
		}
		cost := recipe.MenuItemCost(lines, stock)
		margin := recipe.Margin(it.SalePrice, cost)
		fmt.Printf("%-10s %-20s precio %8s  costo %8s  margen %6s%%\n",
			it.ID, it.Name, it.SalePrice.StringFixed(2), cost.StringFixed(2), margin.StringFixed(1))
	}
	return nil
}

func (a *app) staffList(ctx context.Context) error {
	cafeID, err := a.selectedCafe()
	if err != nil {
		return err
	}
	staff, err := a.client.ListStaff(ctx, cafeID)
	if err != nil {
		return err
	}
	for _, st := range staff {
		fmt.Printf("%-10s %-20s %-12s salario diario %8s\n",
			st.ID, st.Name, st.Role, st.DailySalary.StringFixed(2))
	}
	return nil
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

func (a *app) orders(ctx context.Context, args []string) error {
	cafeID, err := a.selectedCafe()
	if err != nil {
		return err
	}
	date := ""
	if len(args) > 0 {
		date = args[0]
	}
	orders, err := a.client.ListOrders(ctx, cafeID, date)
	if err != nil {
		return err
	}
	for _, o := range orders {
		fmt.Printf("%s  %s  %-15s total %8s\n",
			o.ID, o.Timestamp.Format("2006-01-02 15:04"), o.StaffName, o.TotalRevenue.StringFixed(2))
	}
	summary := finance.AggregateOrders(orders)
	fmt.Printf("\n%d pedido(s)  ingresos %s  ganancia %s\n",
		len(orders), summary.Revenue.StringFixed(2), summary.Profit.StringFixed(2))
	return nil
}

// order arma el carrito desde los argumentos (<menu-item-id>[xN]) y hace
// el checkout: un carrito que falla queda descrito en el error y no se
// pierde nada en el servidor.
func (a *app) order(ctx context.Context, args []string) error {
	cafeID, err := a.selectedCafe()
	if err != nil {
		return err
	}
	if len(args) < 2 {
		return fmt.Errorf("uso: cli order <staff-id> <menu-item-id>[xN] ...")
	}
	staffID := args[0]

	cart := dompos.NewCart()
	for _, arg := range args[1:] {
		id, qty := arg, 1
		if i := strings.LastIndex(arg, "x"); i > 0 {
			if n, err := strconv.Atoi(arg[i+1:]); err == nil {
				id, qty = arg[:i], n
			}
		}
		cart.SetQuantity(id, qty)
	}

	uc := apppos.NewCheckoutUseCase(a.client, a.cache, a.log)
	order, err := uc.Checkout(ctx, cafeID, staffID, cart)
	if err != nil {
		return err
	}
	fmt.Printf("pedido %s registrado: %d producto(s), total %s\n",
		order.ID, cart.ItemCount(), order.TotalRevenue.StringFixed(2))
	return nil
}

// ── Reportes ──────────────────────────────────────────────────────────────────

func (a *app) report(ctx context.Context, args []string) error {
	cafeID, err := a.selectedCafe()
	if err != nil {
		return err
	}
	if len(args) != 1 {
		return fmt.Errorf("uso: cli report <YYYY-MM-DD>")
	}
	report, err := a.client.DailyReport(ctx, cafeID, args[0])
	if err != nil {
		return err
	}

	net := report.Net()
	fmt.Printf("reporte %s\n", report.Date)
	fmt.Printf("  ingresos                %10s\n", report.TotalRevenue.StringFixed(2))
	fmt.Printf("  salarios                %10s\n", report.Costs.Salaries.StringFixed(2))
	fmt.Printf("  gastos diarios          %10s\n", report.Costs.DailyExpenses.StringFixed(2))
	fmt.Printf("  mensuales prorrateados  %10s\n", report.Costs.ProRatedMonthlyExpenses.StringFixed(2))
	fmt.Printf("  costos totales          %10s\n", report.Costs.TotalCosts.StringFixed(2))
	fmt.Printf("  ganancia neta           %10s  (margen %s%%)\n",
		net.StringFixed(2), finance.ProfitMargin(net, report.TotalRevenue).StringFixed(1))

	if !finance.BreakdownMatches(report.Costs, decimal.NewFromFloat(0.01)) {
		fmt.Println("  aviso: el desglose de costos no cierra contra el total del servidor")
	}
	return nil
}

// reportPDF exporta el reporte diario con los productos más vendidos y las
// ventas por empleado del día.
func (a *app) reportPDF(ctx context.Context, args []string) error {
	cafeID, err := a.selectedCafe()
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("uso: cli report-pdf <YYYY-MM-DD> <salida.pdf>")
	}
	date, outPath := args[0], args[1]

	report, err := a.client.DailyReport(ctx, cafeID, date)
	if err != nil {
		return err
	}
	orders, err := a.client.ListOrders(ctx, cafeID, date)
	if err != nil {
		return err
	}

	cafeName := cafeID
	if cafes, err := a.client.ListCafes(ctx); err == nil {
		for _, c := range cafes {
			if c.ID == cafeID {
				cafeName = c.Name
			}
		}
	}

	gen := pdf.NewReportPDFGenerator()
	data, err := gen.GenerateDailyReportPDF(ctx, cafeName, report,
		finance.TopItems(orders, 10), finance.StaffPerformance(orders))
	if err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("escribir %s: %w", outPath, err)
	}
	fmt.Printf("reporte exportado a %s\n", outPath)
	return nil
}
