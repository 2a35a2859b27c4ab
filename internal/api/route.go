package api

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	v1 "github.com/mbibank/ledger/internal/api/v1"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const prefixV1 = "/api/v1/"

func SetupRoutes(app *fiber.App, handler *v1.Handler) {
	app.Get("/ping", handler.Pong)
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Post(prefixV1+"accounts", handler.CreateAccount)
	app.Post(prefixV1+"accounts/balance", handler.CheckBalance)
	app.Post(prefixV1+"accounts/deposit", handler.Deposit)
	app.Post(prefixV1+"accounts/withdraw", handler.Withdraw)
	app.Post(prefixV1+"accounts/transactions", handler.Transactions)
}
