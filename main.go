package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/beka-birhanu/maze-lab-api/api"
	api_i "github.com/beka-birhanu/maze-lab-api/api/i"
	"github.com/beka-birhanu/maze-lab-api/api/identity"
	studioapi "github.com/beka-birhanu/maze-lab-api/api/studio"
	"github.com/beka-birhanu/maze-lab-api/config"
	logger "github.com/beka-birhanu/maze-lab-api/infrastruture/log"
	"github.com/beka-birhanu/maze-lab-api/infrastruture/repo"
	"github.com/beka-birhanu/maze-lab-api/infrastruture/runlock"
	"github.com/beka-birhanu/maze-lab-api/infrastruture/token"
	"github.com/beka-birhanu/maze-lab-api/service"
	"github.com/beka-birhanu/maze-lab-api/service/i"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const runLockExpirySeconds = 300

// Global variables for dependencies
var (
	mongoClient      *mongo.Client
	redisClient      *redis.Client
	userRepo         i.UserRepo
	mazeRepo         i.MazeRepo
	runLocker        i.RunLocker
	jwtTokenizer     i.Tokenizer
	authService      i.Authenticator
	mazeStudio       i.MazeStudio
	authController   api_i.Controller
	studioController api_i.Controller
	router           *api.Router
	appLogger        *logger.Logger
)

func initMongo(ctx context.Context) {
	uri := fmt.Sprintf("mongodb://%s:%s@%s:%v", config.Envs.DBUser, config.Envs.DBPassword, config.Envs.DBHost, config.Envs.DBPort)

	clientOptions := options.Client().ApplyURI(uri)
	var err error
	mongoClient, err = mongo.Connect(ctx, clientOptions)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRedis(ctx context.Context) {
	redisClient = redis.NewClient(&redis.Options{
		Addr: fmt.Sprintf("%s:%d", config.Envs.RedisHost, config.Envs.RedisPort),
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Error(fmt.Sprintf("Redis ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to Redis")
}

func initRepos(client *mongo.Client) {
	userRepo = repo.NewUserRepo(client, config.Envs.DBName, "users")
	mazeRepo = repo.NewMazeRepo(client, config.Envs.DBName, "mazes")
	appLogger.Info("Repositories initialized")
}

func initRunLocker() {
	var err error
	runLocker, err = runlock.NewRedisRunLocker(redisClient, runLockExpirySeconds)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating run locker: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Run locker initialized")
}

func initJWTTokenizer() {
	jwtTokenizer = token.NewJwtService(config.Envs.JWTSecret, config.Envs.JWTIssuer)
	appLogger.Info("JWT Tokenizer initialized")
}

func initAuthService() {
	var err error
	authService, err = service.NewAuthService(userRepo, jwtTokenizer)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating auth service: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Auth service initialized")
}

func initMazeStudio() {
	studioLogger, err := logger.New("MAZE-STUDIO", config.ColorCyan, os.Stdout)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze studio logger: %v", err))
		os.Exit(1)
	}

	mazeStudio, err = service.NewMazeStudio(&service.StudioConfig{
		Locker:         runLocker,
		MazeRepo:       mazeRepo,
		Logger:         studioLogger,
		DefaultDelayMS: config.Envs.DefaultDelay,
		DefaultDensity: config.Envs.DefaultDensity,
	})
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating maze studio: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Maze studio initialized")
}

func initControllers() {
	var err error
	studioController, err = studioapi.NewStudioController(mazeStudio)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating studio controller: %v", err))
		os.Exit(1)
	}
	authController = identity.NewIdentityServer(authService)
	appLogger.Info("Controllers initialized")
}

func initRouter(t i.Tokenizer) {
	router = api.NewRouter(api.Config{
		Addr:                    fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:                 "/api",
		Controllers:             []api_i.Controller{authController, studioController},
		AuthorizationMiddleware: identity.Authoriz(t),
	})
	appLogger.Info("Router initialized")
}

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel() // Ensure the context is always canceled

	// Initialize dependencies
	var err error
	appLogger, err = logger.New("APP", config.ColorGreen, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create app logger: %v\n", err)
		os.Exit(1)
	}

	initMongo(ctx)
	defer func() {
		_ = mongoClient.Disconnect(ctx)
	}()

	initRedis(ctx)
	defer func() {
		_ = redisClient.Close()
	}()

	initRepos(mongoClient)
	initRunLocker()
	initJWTTokenizer()
	initAuthService()
	initMazeStudio()
	initControllers()
	initRouter(jwtTokenizer)

	// Run HTTP server
	if err := router.Run(); err != nil {
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
		os.Exit(1)
	}
}
