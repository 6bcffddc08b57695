package router

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v3"

	"ark_deals/core/api/handler"
	"ark_deals/core/api/middleware"
)

// ============================================================================
// ⚠️ QUAN TRỌNG: BUG FIBER V3 - CÁCH ĐĂNG KÝ MIDDLEWARE
// ============================================================================
//
// Fiber v3 có BUG nghiêm trọng với cách đăng ký middleware trực tiếp trong route.
// Middleware sẽ KHÔNG được gọi nếu dùng cách trực tiếp!
//
// ❌ CÁCH SAI (KHÔNG HOẠT ĐỘNG):
//    router.Get("/path", middleware, handler)
//    → Middleware sẽ KHÔNG được gọi, request sẽ bỏ qua middleware!
//
// ✅ CÁCH ĐÚNG (PHẢI DÙNG):
//    registerRouteWithMiddleware(router, "/prefix", "GET", "/path", []fiber.Handler{mw}, handler)
//    → Middleware sẽ được gọi đúng cách thông qua .Use() method
//
// LƯU Ý THÊM: .Use() trên group áp dụng cho MỌI method trùng prefix, nên
// registerRouteWithMiddleware tự bọc middleware để chỉ chạy đúng method của
// route đang đăng ký (tránh gate của GET chặn nhầm DELETE cùng prefix).
//
// ============================================================================

// Router quản lý việc đăng ký toàn bộ route của ứng dụng
type Router struct {
	app *fiber.App
}

// NewRouter tạo mới một instance của Router
func NewRouter(app *fiber.App) *Router {
	return &Router{
		app: app,
	}
}

// registerRouteWithMiddleware đăng ký route với middleware sử dụng .Use() method (cách đúng theo Fiber v3)
//
// ⚠️ KHÔNG DÙNG cách trực tiếp router.Get(path, middleware, handler) - middleware sẽ KHÔNG được gọi!
//
// Ví dụ sử dụng:
//
//	registerRouteWithMiddleware(router, "/profile", "GET", "/:email", []fiber.Handler{signIn, owner}, handler)
func registerRouteWithMiddleware(router fiber.Router, prefix string, method string, path string, middlewares []fiber.Handler, handler fiber.Handler) {
	// Tạo group với prefix, middleware sẽ chỉ áp dụng cho routes trong group này
	routeGroup := router.Group(prefix)
	for _, mw := range middlewares {
		routeGroup.Use(forRoute(method, prefix, mw)) // ← dùng .Use() thay vì truyền trực tiếp
	}

	// Đăng ký route với path tương đối (không có prefix vì đã có trong group)
	switch method {
	case "GET":
		routeGroup.Get(path, handler)
	case "POST":
		routeGroup.Post(path, handler)
	case "PUT":
		routeGroup.Put(path, handler)
	case "PATCH":
		routeGroup.Patch(path, handler)
	case "DELETE":
		routeGroup.Delete(path, handler)
	}
}

// forRoute bọc middleware để chỉ chạy với đúng HTTP method và đúng prefix của
// route. .Use() trên group match theo prefix thô bất kể method: không bọc thì
// gate của GET sẽ chặn nhầm DELETE cùng prefix, và prefix "/reported-item" sẽ
// match nhầm cả "/reported-item-buyer".
func forRoute(method string, prefix string, mw fiber.Handler) fiber.Handler {
	return func(c fiber.Ctx) error {
		if c.Method() != method {
			return c.Next()
		}
		path := c.Path()
		if path != prefix && !strings.HasPrefix(path, prefix+"/") {
			return c.Next()
		}
		return mw(c)
	}
}

// SetupRoutes đăng ký toàn bộ route của arkDEALS lên Fiber app
func (r *Router) SetupRoutes() error {
	// Khởi tạo các handler
	systemHandler, err := handler.NewSystemHandler()
	if err != nil {
		return fmt.Errorf("failed to create system handler: %v", err)
	}
	userHandler, err := handler.NewUserHandler()
	if err != nil {
		return fmt.Errorf("failed to create user handler: %v", err)
	}
	categoryHandler, err := handler.NewCategoryHandler()
	if err != nil {
		return fmt.Errorf("failed to create category handler: %v", err)
	}
	productHandler, err := handler.NewProductHandler()
	if err != nil {
		return fmt.Errorf("failed to create product handler: %v", err)
	}
	orderHandler, err := handler.NewOrderHandler()
	if err != nil {
		return fmt.Errorf("failed to create order handler: %v", err)
	}
	advertisementHandler, err := handler.NewAdvertisementHandler()
	if err != nil {
		return fmt.Errorf("failed to create advertisement handler: %v", err)
	}
	reportHandler, err := handler.NewReportHandler()
	if err != nil {
		return fmt.Errorf("failed to create report handler: %v", err)
	}

	// Các gate xác thực và phân quyền
	am := middleware.GetAuthManager()
	signIn := am.RequireSignIn()
	requireAdmin := am.RequireAdmin()
	requireSeller := am.RequireSeller()
	requireUser := am.RequireUser()
	requireOwner := am.RequireIdentityMatch()

	app := r.app

	// System
	app.Get("/health", systemHandler.HandleHealth)

	// Tài khoản và xác thực
	app.Post("/add-users", userHandler.HandleCreate)
	app.Get("/jwt", userHandler.HandleIssueToken)
	app.Get("/admin/:email", userHandler.HandleProbeAdmin)
	app.Get("/seller/:email", userHandler.HandleProbeSeller)
	app.Get("/buyer/:email", userHandler.HandleProbeBuyer)
	registerRouteWithMiddleware(app, "/profile", "GET", "/:email", []fiber.Handler{signIn, requireOwner}, userHandler.HandleProfile)

	// Danh mục
	app.Get("/categories", categoryHandler.HandleFindAll)

	// Sản phẩm
	app.Get("/products", productHandler.HandleListAvailable)
	app.Get("/productsByCategory/:id", productHandler.HandleListByCategory)
	registerRouteWithMiddleware(app, "/add-product", "POST", "", []fiber.Handler{signIn, requireSeller}, productHandler.HandleCreate)
	registerRouteWithMiddleware(app, "/myproducts", "GET", "", []fiber.Handler{signIn, requireSeller}, productHandler.HandleListBySeller)
	app.Patch("/advertisement-status/:id", productHandler.HandleToggleAdvertised)
	app.Patch("/products-paid/:id", productHandler.HandleMarkSold)
	app.Patch("/verify-product/:email", productHandler.HandleBulkToggleVerified)
	registerRouteWithMiddleware(app, "/delete-product", "DELETE", "/:id", []fiber.Handler{signIn, requireUser}, productHandler.HandleDelete)

	// Đơn hàng
	registerRouteWithMiddleware(app, "/orders", "POST", "", []fiber.Handler{signIn, requireUser}, orderHandler.HandleCreate)
	registerRouteWithMiddleware(app, "/myorders", "GET", "", []fiber.Handler{signIn, requireUser}, orderHandler.HandleListByBuyer)
	registerRouteWithMiddleware(app, "/mybuyers", "GET", "", []fiber.Handler{signIn, requireSeller}, orderHandler.HandleListBySeller)
	registerRouteWithMiddleware(app, "/confirm-meeting", "PATCH", "/:id", []fiber.Handler{signIn, requireSeller}, orderHandler.HandleToggleMeeting)
	app.Patch("/orders-paid/:id", orderHandler.HandleMarkPaid)
	app.Delete("/orders-paid-dup/:id", orderHandler.HandleDeleteUnpaidDuplicates)
	registerRouteWithMiddleware(app, "/order-delete", "DELETE", "/:id", []fiber.Handler{signIn, requireUser}, orderHandler.HandleDelete)
	app.Delete("/orders-delete/:email", orderHandler.HandleBulkDeleteBySeller)
	registerRouteWithMiddleware(app, "/buyer-orders-delete", "DELETE", "/:email", []fiber.Handler{signIn, requireAdmin}, orderHandler.HandleBulkDeleteByBuyer)

	// Quản trị tài khoản (chỉ admin)
	registerRouteWithMiddleware(app, "/allsellers", "GET", "", []fiber.Handler{signIn, requireAdmin}, userHandler.HandleFindSellers)
	registerRouteWithMiddleware(app, "/allbuyers", "GET", "", []fiber.Handler{signIn, requireAdmin}, userHandler.HandleFindBuyers)
	registerRouteWithMiddleware(app, "/verify-seller", "PATCH", "/:id", []fiber.Handler{signIn, requireAdmin}, userHandler.HandleToggleVerified)
	registerRouteWithMiddleware(app, "/user-delete", "DELETE", "/:email", []fiber.Handler{signIn, requireAdmin}, userHandler.HandleDelete)
	registerRouteWithMiddleware(app, "/user-product-delete", "DELETE", "/:email", []fiber.Handler{signIn, requireAdmin}, productHandler.HandleBulkDeleteBySeller)

	// Quảng cáo
	registerRouteWithMiddleware(app, "/add-advertisement", "POST", "", []fiber.Handler{signIn, requireSeller}, advertisementHandler.HandleCreate)
	app.Get("/advertisements", advertisementHandler.HandleListVerified)
	registerRouteWithMiddleware(app, "/verify-ad", "PATCH", "/:email", []fiber.Handler{signIn, requireAdmin}, advertisementHandler.HandleBulkToggleVerified)
	app.Delete("/ad-delete/:email", advertisementHandler.HandleBulkDeleteBySeller)
	registerRouteWithMiddleware(app, "/advertisement-delete", "DELETE", "/:id", []fiber.Handler{signIn, requireUser}, advertisementHandler.HandleDelete)

	// Báo cáo vi phạm
	registerRouteWithMiddleware(app, "/reported-item-buyer", "POST", "", []fiber.Handler{signIn, requireUser}, reportHandler.HandleCreate)
	app.Get("/reported-item-buyer", reportHandler.HandleFindByReporter)
	registerRouteWithMiddleware(app, "/reported-item", "GET", "", []fiber.Handler{signIn, requireAdmin}, reportHandler.HandleFindAll)
	registerRouteWithMiddleware(app, "/reported-item", "DELETE", "/:id", []fiber.Handler{signIn, requireUser}, reportHandler.HandleDeleteByProduct)

	return nil
}
