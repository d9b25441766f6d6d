package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/Erictomm2002/Menu-Scanner/internal/export"
	"github.com/Erictomm2002/Menu-Scanner/internal/extract"
	"github.com/Erictomm2002/Menu-Scanner/internal/logger"
	"github.com/Erictomm2002/Menu-Scanner/internal/menu"
	"github.com/Erictomm2002/Menu-Scanner/internal/router"
	"github.com/Erictomm2002/Menu-Scanner/internal/scan"
	"github.com/Erictomm2002/Menu-Scanner/internal/session"
	"github.com/Erictomm2002/Menu-Scanner/internal/storage"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	required := []string{
		"JWT_SECRET",
		"GEMINI_API_KEY",
	}
	for _, k := range required {
		if os.Getenv(k) == "" {
			log.Fatalf("missing env var: %s", k)
		}
	}

	zlog := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	defer func() { _ = zlog.Sync() }()

	ctx := context.Background()

	// ───────────────────────── SESSION STORE ─────────────────────────
	store, cleanup := buildStore(ctx, zlog)
	defer cleanup()

	// ───────────────────────── STORAGE (optional) ─────────────────────────
	var archive storage.Archiver
	r2cfg := storage.R2Config{
		Endpoint:  os.Getenv("R2_ENDPOINT"),
		AccessKey: os.Getenv("R2_ACCESS_KEY"),
		SecretKey: os.Getenv("R2_SECRET_KEY"),
		Bucket:    os.Getenv("R2_BUCKET_NAME"),
		BaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}
	if r2cfg.Configured() {
		r2, err := storage.NewR2Client(ctx, r2cfg)
		if err != nil {
			log.Fatal("R2 init failed:", err)
		}
		archive = r2
		zlog.Info("image archival enabled", zap.String("bucket", r2cfg.Bucket))
	} else {
		zlog.Info("image archival disabled")
	}

	// ───────────────────────── EXTRACTION ─────────────────────────
	extractor, err := extract.NewGeminiService(
		ctx,
		os.Getenv("GEMINI_API_KEY"),
		os.Getenv("GEMINI_MODEL"),
		zlog,
	)
	if err != nil {
		log.Fatal("gemini init failed:", err)
	}

	// ───────────────────────── SERVICES + HANDLERS ─────────────────────────
	scanService := scan.NewService(extractor, store, archive, menu.NewClockIDGenerator(), zlog)
	scanHandler := scan.NewHandler(scanService)
	exportHandler := export.NewHandler(zlog)

	r := router.New(scanHandler, exportHandler)

	addr := ":" + port()
	zlog.Info("server starting", zap.String("addr", addr))
	if err := r.Run(addr); err != nil {
		log.Fatal("failed to start server:", err)
	}
}

// buildStore picks the session backend: redis when REDIS_ADDR is set,
// postgres when DATABASE_URL is set, in-memory otherwise.
func buildStore(ctx context.Context, zlog *zap.Logger) (session.Store, func()) {
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		client, err := session.NewRedisClient(ctx, addr, os.Getenv("REDIS_PASSWORD"))
		if err != nil {
			log.Fatal("redis init failed:", err)
		}
		zlog.Info("session store: redis", zap.String("addr", addr))
		return session.NewRedisStore(client), func() { _ = client.Close() }
	}

	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err := session.ConnectPostgres(ctx, dsn)
		if err != nil {
			log.Fatal("postgres init failed:", err)
		}
		zlog.Info("session store: postgres")
		return session.NewPostgresStore(db), db.Close
	}

	zlog.Warn("session store: in-memory, sessions will not survive restarts")
	return session.NewMemoryStore(), func() {}
}

func port() string {
	if p := os.Getenv("PORT"); p != "" {
		return p
	}
	return "8080"
}
