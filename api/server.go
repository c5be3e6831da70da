package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/benvisser/call-of-doody-sub000/cache"
	"github.com/benvisser/call-of-doody-sub000/events"
	"github.com/benvisser/call-of-doody-sub000/store"
)

var log = logrus.WithField("prefix", "api")

type Config struct {
	JWTSecret string        `mapstructure:"jwt_secret"`
	TraceMode bool          `mapstructure:"trace"`
	CacheTTL  time.Duration `mapstructure:"cache_ttl"`
}

// Server is the HTTP front of the restroom service.
type Server struct {
	httpServer *http.Server

	mongoStore store.MongoStore
	cache      cache.Cache
	publisher  events.Publisher

	jwtSecret []byte
	traceMode bool
	cacheTTL  time.Duration
}

func NewServer(cfg Config, mongoStore store.MongoStore, c cache.Cache, publisher events.Publisher) *Server {
	if c == nil {
		c = cache.NewInMemory()
	}
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = time.Minute
	}

	return &Server{
		mongoStore: mongoStore,
		cache:      c,
		publisher:  publisher,
		jwtSecret:  []byte(cfg.JWTSecret),
		traceMode:  cfg.TraceMode,
		cacheTTL:   cfg.CacheTTL,
	}
}

func (s *Server) Run(addr string) error {
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.setupRouter(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.WithField("addr", addr).Info("server starts")
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer == nil {
		return nil
	}
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(s.requestID)
	r.Use(s.DumpRequest)
	r.Use(s.identify)

	r.GET("/healthz", s.health)

	apiRoute := r.Group("/api")
	{
		apiRoute.GET("/amenities", s.listAmenities)
		apiRoute.GET("/rating-categories", s.listRatingCategories)
	}

	locationRoute := apiRoute.Group("/locations")
	{
		locationRoute.POST("", s.addLocation)
		locationRoute.GET("", s.nearbyLocations)
		locationRoute.GET("/:locationID", s.getLocation)
		locationRoute.POST("/:locationID/amenities/:amenityID/votes", s.voteAmenity)
		locationRoute.GET("/:locationID/amenities/:amenityID/votes/me", s.getMyVote)
		locationRoute.POST("/:locationID/reviews", s.submitReview)
		locationRoute.GET("/:locationID/reviews", s.listReviews)
		locationRoute.POST("/:locationID/ratings/recompute", s.requireAdmin, s.recomputeLocationRatings)
	}

	reviewRoute := apiRoute.Group("/reviews")
	{
		reviewRoute.POST("/:reviewID/helpful", s.markReviewHelpful)
		reviewRoute.DELETE("/:reviewID", s.requireUser, s.deleteReview)
	}

	maintenanceRoute := apiRoute.Group("/maintenance")
	maintenanceRoute.Use(s.requireAdmin)
	{
		maintenanceRoute.POST("/amenities/migrate", s.migrateAmenities)
		maintenanceRoute.POST("/ratings/recompute", s.recomputeAllRatings)
		maintenanceRoute.POST("/locations/:locationID/amenities/rebuild", s.rebuildAmenityStatus)
	}

	return r
}

func (s *Server) health(c *gin.Context) {
	if err := s.mongoStore.Ping(c.Request.Context()); err != nil {
		abortWithEncoding(c, http.StatusServiceUnavailable, errorInternalServer, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
