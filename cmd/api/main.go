package main

import (
	"expvar"
	"fmt"
	"os"
	"runtime"
	"time"

	"sajilopay/internal/payments"

	"github.com/go-resty/resty/v2"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// NewLogger creates a new zap logger with color.
func NewLogger() (*zap.SugaredLogger, error) {
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderCfg.EncodeLevel = zapcore.CapitalColorLevelEncoder

	consoleEncoder := zapcore.NewConsoleEncoder(encoderCfg)
	level := zapcore.InfoLevel

	core := zapcore.NewCore(consoleEncoder, zapcore.NewMultiWriteSyncer(zapcore.AddSync(os.Stdout)), level)

	logger := zap.New(core)

	return logger.Sugar(), nil
}

var version = "0.1.0"

func main() {
	if err := godotenv.Load(); err != nil {
		fmt.Println("no .env file found, reading configuration from the environment")
	}

	// PORT is read once at startup; everything else lives in the config
	// struct and is validated per request.
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	cfg := config{
		addr: ":" + port,
		env:  os.Getenv("ENV"),
		auth: basicConfig{
			user: os.Getenv("AUTH_BASIC_USER"),
			pass: os.Getenv("AUTH_BASIC_PASS"),
		},
		payments: payments.Config{
			BaseURL:           os.Getenv("BASE_URL"),
			EsewaMerchantCode: os.Getenv("ESEWA_MERCHANT_CODE"),
			EsewaSecretKey:    os.Getenv("ESEWA_SECRET_KEY"),
			KhaltiSecretKey:   os.Getenv("KHALTI_SECRET_KEY"),
			KhaltiLive:        os.Getenv("KHALTI_LIVE") == "true",
		},
	}

	logger, err := NewLogger()
	if err != nil {
		fmt.Println("Error creating logger:", err)
		return
	}
	defer logger.Sync()

	// Outbound client for Khalti. A hung gateway call should fail the
	// request, not hang it forever.
	client := resty.New().SetTimeout(10 * time.Second)

	manager := payments.NewManager(cfg.payments)
	manager.Register("esewa", payments.NewEsewaAdapter(cfg.payments))
	manager.Register("khalti", payments.NewKhaltiAdapter(cfg.payments, client))

	app := &application{
		config:   cfg,
		logger:   logger,
		payments: manager,
	}

	//Metrics collected at /debug/vars
	expvar.NewString("version").Set(version)
	expvar.Publish("goroutines", expvar.Func(func() any {
		return runtime.NumGoroutine()
	}))

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
