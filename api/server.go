package api

import (
	"context"
	"net/http"
	"time"

	"github.com/RichardKnop/machinery/v1"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jinzhu/gorm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/civictwin/civictwin-api/external/environment"
	"github.com/civictwin/civictwin-api/external/geoinfo"
	"github.com/civictwin/civictwin-api/ledger"
	"github.com/civictwin/civictwin-api/logmodule"
	"github.com/civictwin/civictwin-api/schema"
	"github.com/civictwin/civictwin-api/score"
	"github.com/civictwin/civictwin-api/store"
)

var log *logrus.Entry

func init() {
	log = logrus.WithField("prefix", "gin")
}

// Server to run a http server instance
type Server struct {
	// Server instance
	server *http.Server

	// Stores
	store      store.CivicCore
	mongoStore store.MongoStore

	// Snapshot ledger, created at service start and owned by the server for
	// the process lifetime
	ledger *ledger.Ledger

	// Stress weights, default unless calibration was loaded at start
	coefficient schema.StressCoefficient

	// External services
	environmentData environment.Data
	geoClient       geoinfo.GeoInfo

	// Trend projector and its random source
	projector score.Projector
	rand      *score.Rand

	// job pool enqueuer
	backgroundEnqueuer *machinery.Server
}

// NewServer new instance of server
func NewServer(
	ormDB *gorm.DB,
	mongoClient *mongo.Client,
	backgroundEnqueuer *machinery.Server,
	geoClient geoinfo.GeoInfo) *Server {
	mongoStore := store.NewMongoStore(mongoClient, viper.GetString("mongo.database"))
	rnd := score.NewRand(time.Now().UnixNano())

	coefficient := score.DefaultStressCoefficient
	if viper.GetBool("score.calibrated") {
		if c, err := mongoStore.LatestCoefficient(); err != nil {
			log.WithError(err).Error("load calibrated coefficient")
		} else if c != nil {
			coefficient = *c
			log.Info("loaded calibrated stress coefficient")
		}
	}

	return &Server{
		store:       store.NewCivicStore(ormDB, mongoStore),
		mongoStore:  mongoStore,
		ledger:      ledger.New(),
		coefficient: coefficient,
		environmentData: environment.New(
			viper.GetString("environment.air_url"),
			viper.GetString("environment.weather_url")),
		geoClient:          geoClient,
		projector:          score.NewProjector(rnd),
		rand:               rnd,
		backgroundEnqueuer: backgroundEnqueuer,
	}
}

// Run to run the server
func (s *Server) Run(addr string) error {
	s.server = &http.Server{
		Addr:    addr,
		Handler: s.setupRouter(),
	}

	return s.server.ListenAndServe()
}

func (s *Server) setupRouter() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(sentrygin.New(sentrygin.Options{
		Repanic:         true,
		WaitForDelivery: false,
		Timeout:         10 * time.Second,
	}))

	apiRoute := r.Group("/")
	apiRoute.Use(logmodule.Ginrus("API"))
	{
		apiRoute.POST("/analyze", s.analyze)
		apiRoute.POST("/location_predict", s.locationPredict)
		apiRoute.POST("/citizen_report", s.citizenReport)
	}

	// the dashboard is served from another origin
	dashboardRoute := r.Group("/")
	dashboardRoute.Use(logmodule.Ginrus("Dashboard"))
	dashboardRoute.Use(cors.New(cors.Config{
		AllowMethods:     []string{"GET"},
		AllowHeaders:     []string{"Origin"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           12 * time.Hour,
	}))
	{
		dashboardRoute.GET("/historical_data", s.historicalData)
		dashboardRoute.GET("/blockchain_data", s.blockchainData)
	}

	secretRoute := r.Group("/secret")
	secretRoute.Use(logmodule.Ginrus("Secret"))
	secretRoute.Use(s.apikeyAuthentication(viper.GetString("server.apikey.admin")))
	{
		secretRoute.POST("/train", s.trainModel)
		secretRoute.GET("/reports", s.listReports)
	}

	r.GET("/healthz", s.healthz)
	r.GET("/information", s.information)

	return r
}

// Shutdown to shutdown the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// shouldInterupt sends error message and determine if it should interupt the current flow
func shouldInterupt(err error, c *gin.Context) bool {
	if err == nil {
		return false
	}

	log.Error(err)
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
	return true
}

func (s *Server) healthz(c *gin.Context) {
	// Ping db
	err := s.store.Ping()
	if shouldInterupt(err, c) {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "OK",
		"version": viper.GetString("server.version"),
	})
}

func (s *Server) information(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"information": map[string]interface{}{
			"server": map[string]interface{}{
				"version": viper.GetString("server.version"),
			},
			"ledger": map[string]interface{}{
				"length": s.ledger.Length(),
				"intact": s.ledger.Verify(),
			},
			"system_version": "CivicTwin 0.1",
		},
	})
}

func abortWithEncoding(c *gin.Context, code int, obj ErrorResponse, errors ...error) {
	for _, err := range errors {
		c.Error(err)
	}
	c.JSON(code, obj)
	c.Abort()
}
