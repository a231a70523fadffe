package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"viewify/internal/config"
	"viewify/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	rpcHandler *handler.RPCHandler,
	authHandler *handler.AuthHandler,
	accountHandler *handler.AccountHandler,
	seedHandler *handler.SeedHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/sign-up", authHandler.SignUp)
	api.POST("/auth/sign-in", authHandler.SignIn)
	api.POST("/auth/sign-out", authHandler.SignOut)
	api.GET("/seed/products", seedHandler.SeedProducts)

	// Procedure namespace. The context builder resolves an optional session
	// itself, so these stay outside the JWT middleware: anonymous calls are
	// legal and user.me answers them with null.
	api.GET("/rpc/:procedure", rpcHandler.Query)
	api.POST("/rpc/:procedure", rpcHandler.Call)

	// Account settings require a signed token up front; the handlers then
	// check the session store for revocation.
	secured := api.Group("/account", echojwt.WithConfig(echojwt.Config{
		SigningKey:  []byte(cfg.JWTSecret),
		TokenLookup: "header:" + echo.HeaderAuthorization,
	}))

	secured.PATCH("", accountHandler.UpdateUser)
	secured.POST("/password", accountHandler.ChangePassword)
	secured.DELETE("", accountHandler.DeleteAccount)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
