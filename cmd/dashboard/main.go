package main

import (
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/wingworks/catering-configurator-backend/internal/config"
	"github.com/wingworks/catering-configurator-backend/internal/infrastructure/storage"
	"github.com/wingworks/catering-configurator-backend/internal/observability"
)

// DashboardServer serves the read-only operator dashboard API. Session
// editing goes through the main API; this one only reads finalized orders.
type DashboardServer struct {
	repo storage.Repository
}

func NewDashboardServer(repo storage.Repository) *DashboardServer {
	return &DashboardServer{repo: repo}
}

// StatsResponse is the dashboard summary widget payload.
type StatsResponse struct {
	TotalOrders    int    `json:"total_orders"`
	TotalBoxes     int    `json:"total_boxes"`
	Revenue        string `json:"revenue"`
	FinalizedCount int    `json:"finalized_count"`
	ExportedCount  int    `json:"exported_count"`
}

// OrderSummary is one row in the dashboard order list.
type OrderSummary struct {
	ID            string `json:"id"`
	Status        string `json:"status"`
	CreatedAt     string `json:"created_at"`
	BoxCount      int    `json:"box_count"`
	PiecesPerBox  int    `json:"pieces_per_box"`
	OverrideCount int    `json:"override_count"`
	Total         string `json:"total"`
}

func (s *DashboardServer) getStats(c *gin.Context) {
	stats, err := s.repo.GetStats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stats"})
		return
	}

	// Status counts come from a bounded scan of recent orders.
	orders, _ := s.repo.ListOrders(storage.OrderFilters{Limit: 1000})
	var finalized, exported int
	for _, o := range orders {
		switch o.Status {
		case storage.StatusFinalized:
			finalized++
		case storage.StatusExported:
			exported++
		}
	}

	c.JSON(http.StatusOK, StatsResponse{
		TotalOrders:    stats.TotalOrders,
		TotalBoxes:     stats.TotalBoxes,
		Revenue:        stats.Revenue,
		FinalizedCount: finalized,
		ExportedCount:  exported,
	})
}

func (s *DashboardServer) getOrders(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	if limit <= 0 {
		limit = 100
	}
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	orders, err := s.repo.ListOrders(storage.OrderFilters{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch orders"})
		return
	}

	summaries := make([]OrderSummary, 0, len(orders))
	for _, o := range orders {
		summaries = append(summaries, s.orderToSummary(o))
	}

	c.JSON(http.StatusOK, summaries)
}

func (s *DashboardServer) getOrderDetail(c *gin.Context) {
	order, err := s.repo.GetOrder(c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch order"})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Order not found"})
		return
	}

	c.JSON(http.StatusOK, order)
}

func (s *DashboardServer) orderToSummary(o *storage.OrderRecord) OrderSummary {
	overrides := 0
	for _, b := range o.Boxes {
		if b.Overridden {
			overrides++
		}
	}

	return OrderSummary{
		ID:            o.ID,
		Status:        o.Status,
		CreatedAt:     o.CreatedAt.Format(time.RFC3339),
		BoxCount:      o.BoxCount,
		PiecesPerBox:  o.PiecesPerBox,
		OverrideCount: overrides,
		Total:         o.Total,
	}
}

func main() {
	cfg := config.LoadOrEnv()
	logger := observability.NewLogger(cfg.Observability.Logging)

	store, err := storage.NewStorage(cfg.Storage.DatabasePath)
	if err != nil {
		logger.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()

	server := NewDashboardServer(store)

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		SkipPaths: []string{"/api/health"},
	}))

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "healthy"})
		})
		api.GET("/stats", server.getStats)
		api.GET("/orders", server.getOrders)
		api.GET("/orders/:orderId", server.getOrderDetail)
	}

	port := strconv.Itoa(cfg.Server.DashboardPort)
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	logger.Info("Starting dashboard server", "port", port)
	if err := router.Run(":" + port); err != nil {
		logger.Error("Failed to start server", "error", err)
		os.Exit(1)
	}
}
