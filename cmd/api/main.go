package main

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.opentelemetry.io/otel"
	stdouttrace "go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	_ "github.com/Manorajkrishan/Project01/docs"
	"github.com/Manorajkrishan/Project01/pkg/catalog"
	catalogmem "github.com/Manorajkrishan/Project01/pkg/catalog/memory"
	catalogpg "github.com/Manorajkrishan/Project01/pkg/catalog/postgres"
	"github.com/Manorajkrishan/Project01/pkg/export"
	"github.com/Manorajkrishan/Project01/pkg/export/pdf"
	"github.com/Manorajkrishan/Project01/pkg/logger"
	"github.com/Manorajkrishan/Project01/pkg/quote"
	quotemem "github.com/Manorajkrishan/Project01/pkg/quote/memory"
	quotepg "github.com/Manorajkrishan/Project01/pkg/quote/postgres"
	quoteredis "github.com/Manorajkrishan/Project01/pkg/quote/redis"
)

var (
	redisClient *redis.Client
	products    catalog.Provider
	store       quote.Store
	exporter    *export.Coordinator
	tracer      trace.Tracer
)

// @title Quotation API
// @version 1.0
// @description API for building and exporting store quotations
// @host localhost:8080
// @BasePath /
func main() {
	_ = godotenv.Load()
	logger.Init()
	defer logger.Sync()

	exp, _ := stdouttrace.New(stdouttrace.WithPrettyPrint())
	tp := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exp))
	otel.SetTracerProvider(tp)
	defer tp.Shutdown(context.Background())
	tracer = otel.Tracer("quotation-api")

	redisClient = redis.NewClient(&redis.Options{Addr: envOr("REDIS_ADDR", "localhost:6379")})

	if err := setupStorage(); err != nil {
		logger.Log.Error("storage setup", zap.Error(err))
		os.Exit(1)
	}
	exporter = export.New(pdf.New(), export.NopSharer{}, logger.Log)

	r := mux.NewRouter()
	r.Use(traceMiddleware)
	r.HandleFunc("/login", loginHandler).Methods(http.MethodPost)

	api := r.PathPrefix("/").Subrouter()
	api.Use(authMiddleware)
	api.HandleFunc("/products", listProductsHandler).Methods(http.MethodGet)
	api.HandleFunc("/products", addProductHandler).Methods(http.MethodPost)
	api.HandleFunc("/quotations", createQuotationHandler).Methods(http.MethodPost)
	api.HandleFunc("/quotations/{id}", getQuotationHandler).Methods(http.MethodGet)
	api.HandleFunc("/quotations/{id}/items", addItemHandler).Methods(http.MethodPost)
	api.HandleFunc("/quotations/{id}/items/{productId}/increase", increaseHandler).Methods(http.MethodPost)
	api.HandleFunc("/quotations/{id}/items/{productId}/decrease", decreaseHandler).Methods(http.MethodPost)
	api.HandleFunc("/quotations/{id}/items/{productId}", removeItemHandler).Methods(http.MethodDelete)
	api.HandleFunc("/quotations/{id}/clear", clearHandler).Methods(http.MethodPost)
	api.HandleFunc("/quotations/{id}/payload", payloadHandler).Methods(http.MethodGet)
	api.HandleFunc("/quotations/{id}/document", documentHandler).Methods(http.MethodGet)
	api.HandleFunc("/quotations/{id}/share", shareHandler).Methods(http.MethodPost)

	r.PathPrefix("/swagger/").Handler(httpSwagger.WrapHandler)

	addr := envOr("ADDR", ":8080")
	logger.Log.Info("listening", zap.String("addr", addr))
	if err := http.ListenAndServe(addr, r); err != nil {
		logger.Log.Error("server closed", zap.Error(err))
	}
}

// setupStorage wires the catalog provider and quotation store. STORAGE
// selects postgres, redis or the seeded in-memory defaults.
func setupStorage() error {
	switch os.Getenv("STORAGE") {
	case "postgres":
		db, err := sql.Open("postgres", os.Getenv("DATABASE_URL"))
		if err != nil {
			return err
		}
		if _, err := db.Exec("CREATE TABLE IF NOT EXISTS products (id BIGINT PRIMARY KEY, name TEXT, brand TEXT, specs TEXT, price NUMERIC, available BOOLEAN)"); err != nil {
			return err
		}
		if _, err := db.Exec("CREATE TABLE IF NOT EXISTS quotations (id TEXT PRIMARY KEY, created_at TIMESTAMPTZ, items JSONB, total NUMERIC)"); err != nil {
			return err
		}
		products = catalogpg.New(db)
		store = quotepg.New(db)
	case "redis":
		products = catalogmem.NewSeeded()
		store = quoteredis.New(redisClient)
	default:
		products = catalogmem.NewSeeded()
		store = quotemem.New()
	}
	return nil
}

// loginHandler handles clerk login and session creation.
// @Summary Login
// @Description Authenticates the clerk and sets a session cookie
// @Accept json
// @Produce json
// @Param creds body loginRequest true "Credentials"
// @Success 200
// @Router /login [post]
func loginHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "loginHandler")
	defer span.End()

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Username == "" {
		http.Error(w, "invalid credentials", http.StatusBadRequest)
		return
	}
	sid := strconv.FormatInt(time.Now().UnixNano(), 10)
	if err := redisClient.Set(ctx, "session:"+sid, req.Username, time.Hour).Err(); err != nil {
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{Name: "session_id", Value: sid, Path: "/", Expires: time.Now().Add(time.Hour), HttpOnly: true})
	w.WriteHeader(http.StatusOK)
}

// authMiddleware ensures a valid session exists.
func authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie("session_id")
		if err != nil {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		user, err := redisClient.Get(r.Context(), "session:"+c.Value).Result()
		if err != nil || user == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), userKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// listProductsHandler lists or searches the catalog.
// @Summary List products
// @Description Without q returns the full catalog; with q returns matches on name, specs or exact id
// @Produce json
// @Param q query string false "Search term"
// @Success 200 {array} catalog.Product
// @Security ApiKeyAuth
// @Router /products [get]
func listProductsHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "listProductsHandler")
	defer span.End()

	var (
		result []catalog.Product
		err    error
	)
	if q := r.URL.Query().Get("q"); q != "" {
		result, err = products.FindProducts(ctx, q)
	} else {
		result, err = products.ListProducts(ctx)
	}
	if err != nil {
		logger.Log.Error("list products", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// addProductHandler adds a product to the catalog (inventory intake).
// @Summary Add product
// @Accept json
// @Produce json
// @Param product body catalog.Product true "Product"
// @Success 201 {object} catalog.Product
// @Security ApiKeyAuth
// @Router /products [post]
func addProductHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "addProductHandler")
	defer span.End()

	var p catalog.Product
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if p.ID <= 0 || p.Name == "" || p.UnitPrice.IsNegative() {
		http.Error(w, "invalid product", http.StatusBadRequest)
		return
	}
	if err := products.AddProduct(ctx, p); err != nil {
		logger.Log.Error("add product", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// createQuotationHandler starts a new quotation with a fresh invoice id.
// @Summary Create quotation
// @Produce json
// @Success 201 {object} quote.Summary
// @Security ApiKeyAuth
// @Router /quotations [post]
func createQuotationHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "createQuotationHandler")
	defer span.End()

	l := quote.NewLedger(store)
	if err := l.Save(ctx); err != nil {
		logger.Log.Error("create quotation", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, l.Project())
}

// getQuotationHandler returns the saved summary for an invoice id.
// @Summary Get quotation
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} quote.Summary
// @Security ApiKeyAuth
// @Router /quotations/{id} [get]
func getQuotationHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "getQuotationHandler")
	defer span.End()

	s, err := store.Load(ctx, mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, quote.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		logger.Log.Error("get quotation", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, s)
}

// addItemHandler adds a catalog product to the quotation.
// @Summary Add item
// @Accept json
// @Produce json
// @Param id path string true "Invoice ID"
// @Param item body addItemRequest true "Item"
// @Success 200 {object} quote.Summary
// @Security ApiKeyAuth
// @Router /quotations/{id}/items [post]
func addItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "addItemHandler")
	defer span.End()

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	l, ok := restoreLedger(ctx, w, r)
	if !ok {
		return
	}
	p, err := products.GetProduct(ctx, req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		logger.Log.Error("lookup product", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if _, err := l.AddItem(ctx, p); err != nil {
		respondLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l.Project())
}

// increaseHandler bumps an item's quantity by one.
// @Summary Increase item quantity
// @Produce json
// @Param id path string true "Invoice ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} quote.Summary
// @Security ApiKeyAuth
// @Router /quotations/{id}/items/{productId}/increase [post]
func increaseHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "increaseHandler")
	defer span.End()
	mutateItem(ctx, w, r, (*quote.Ledger).Increase)
}

// decreaseHandler lowers an item's quantity by one, removing it at zero.
// @Summary Decrease item quantity
// @Produce json
// @Param id path string true "Invoice ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} quote.Summary
// @Security ApiKeyAuth
// @Router /quotations/{id}/items/{productId}/decrease [post]
func decreaseHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "decreaseHandler")
	defer span.End()
	mutateItem(ctx, w, r, (*quote.Ledger).Decrease)
}

// removeItemHandler deletes an item from the quotation.
// @Summary Remove item
// @Produce json
// @Param id path string true "Invoice ID"
// @Param productId path int true "Product ID"
// @Success 200 {object} quote.Summary
// @Security ApiKeyAuth
// @Router /quotations/{id}/items/{productId} [delete]
func removeItemHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "removeItemHandler")
	defer span.End()
	mutateItem(ctx, w, r, (*quote.Ledger).Remove)
}

// clearHandler empties the quotation, keeping its invoice id.
// @Summary Clear quotation
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 200 {object} quote.Summary
// @Security ApiKeyAuth
// @Router /quotations/{id}/clear [post]
func clearHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "clearHandler")
	defer span.End()

	l, ok := restoreLedger(ctx, w, r)
	if !ok {
		return
	}
	if _, err := l.Clear(ctx); err != nil {
		respondLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l.Project())
}

// payloadHandler returns the QR-encodable share payload as text.
// @Summary Share payload
// @Produce plain
// @Param id path string true "Invoice ID"
// @Success 200 {string} string
// @Security ApiKeyAuth
// @Router /quotations/{id}/payload [get]
func payloadHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "payloadHandler")
	defer span.End()

	s, err := store.Load(ctx, mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, quote.ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	payload, err := quote.SharePayload(s)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Write([]byte(payload))
}

// documentHandler renders the quotation PDF and serves it for download.
// @Summary Download quotation document
// @Produce application/pdf
// @Param id path string true "Invoice ID"
// @Success 200
// @Security ApiKeyAuth
// @Router /quotations/{id}/document [get]
func documentHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "documentHandler")
	defer span.End()

	doc, ok := renderDocument(ctx, w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Disposition", "attachment; filename="+doc.Name)
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Length", strconv.Itoa(len(doc.Data)))
	w.Write(doc.Data)
}

// shareHandler renders the document and dispatches it to the share channel.
// @Summary Share quotation
// @Produce json
// @Param id path string true "Invoice ID"
// @Success 202
// @Security ApiKeyAuth
// @Router /quotations/{id}/share [post]
func shareHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracer.Start(r.Context(), "shareHandler")
	defer span.End()

	doc, ok := renderDocument(ctx, w, r)
	if !ok {
		return
	}
	exporter.Dispatch(doc)
	writeJSON(w, http.StatusAccepted, map[string]string{"document": doc.Name})
}

// mutateItem runs one of the per-item ledger operations addressed by the
// productId path variable.
func mutateItem(ctx context.Context, w http.ResponseWriter, r *http.Request, op func(*quote.Ledger, context.Context, int64) ([]quote.LineItem, error)) {
	productID, err := strconv.ParseInt(mux.Vars(r)["productId"], 10, 64)
	if err != nil {
		http.Error(w, "invalid product id", http.StatusBadRequest)
		return
	}
	l, ok := restoreLedger(ctx, w, r)
	if !ok {
		return
	}
	if _, err := op(l, ctx, productID); err != nil {
		respondLedgerError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, l.Project())
}

func restoreLedger(ctx context.Context, w http.ResponseWriter, r *http.Request) (*quote.Ledger, bool) {
	l, err := quote.Restore(ctx, store, mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, quote.ErrNotFound) {
			http.NotFound(w, r)
			return nil, false
		}
		logger.Log.Error("restore quotation", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return nil, false
	}
	return l, true
}

func renderDocument(ctx context.Context, w http.ResponseWriter, r *http.Request) (export.Document, bool) {
	s, err := store.Load(ctx, mux.Vars(r)["id"])
	if err != nil {
		if errors.Is(err, quote.ErrNotFound) {
			http.NotFound(w, r)
			return export.Document{}, false
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return export.Document{}, false
	}
	doc, err := exporter.ToDocument(ctx, s)
	if err != nil {
		logger.Log.Error("render document", zap.String("invoice", s.InvoiceID), zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return export.Document{}, false
	}
	return doc, true
}

func respondLedgerError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, quote.ErrUnavailable):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, quote.ErrNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	default:
		logger.Log.Error("save quotation", zap.Error(err))
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func traceMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := tracer.Start(r.Context(), r.Method+" "+r.URL.Path)
		defer span.End()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type userKey struct{}

// loginRequest represents clerk credentials.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// addItemRequest selects the catalog product to add.
type addItemRequest struct {
	ProductID int64 `json:"productId"`
}
