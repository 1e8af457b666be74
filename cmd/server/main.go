package main

import (
	"context"
	"log"
	"os"
	"time"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/MiranSiddique/FLORO/internal/app/di"
	"github.com/MiranSiddique/FLORO/internal/app/router"
	authhandler "github.com/MiranSiddique/FLORO/internal/feature/auth/transport/handler"
	authusecase "github.com/MiranSiddique/FLORO/internal/feature/auth/usecase"
	detailshandler "github.com/MiranSiddique/FLORO/internal/feature/details/transport/handler"
	detailsusecase "github.com/MiranSiddique/FLORO/internal/feature/details/usecase"
	identifyhandler "github.com/MiranSiddique/FLORO/internal/feature/identify/transport/handler"
	identifyusecase "github.com/MiranSiddique/FLORO/internal/feature/identify/usecase"
	plantsadapters "github.com/MiranSiddique/FLORO/internal/feature/plants/adapters"
	plantshandler "github.com/MiranSiddique/FLORO/internal/feature/plants/transport/handler"
	plantsusecase "github.com/MiranSiddique/FLORO/internal/feature/plants/usecase"
	infradb "github.com/MiranSiddique/FLORO/internal/platform/db"
	infraredis "github.com/MiranSiddique/FLORO/internal/platform/redis"
	jwtmw "github.com/MiranSiddique/FLORO/internal/platform/jwt"
)

func main() {
	ctx := context.Background()

	// db
	db := infradb.OpenDB()

	// Redis (optional; records are served from the database without it)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	plantRepo := di.NewPlantRepository(rdb, db)
	recorder := plantsadapters.NewIdentificationRecorder(plantRepo)

	// Upstream clients
	identifier := di.NewPlantIdentifier()
	var instructor detailsusecase.InstructionGenerator
	if tmp, err := di.NewPlantInstructor(ctx); err != nil {
		log.Println("[WARN] Gemini unavailable. Plant details will answer 500:", err)
	} else {
		instructor = tmp
	}

	// Usecase
	identifyUC := identifyusecase.NewIdentifyUsecase(identifier, recorder, nil)
	detailsUC := detailsusecase.NewDetailsUsecase(instructor)
	plantsUC := plantsusecase.NewPlantsUsecase(plantRepo)
	tokens := jwtmw.NewGenerator(os.Getenv(jwtmw.EnvKeyJWTSecret), 24*time.Hour)
	authUC := authusecase.NewAuthUsecase(authusecase.LoadConfig(), tokens)

	// Handler
	identifyH := identifyhandler.NewIdentifyHandler(identifyUC)
	detailsH := detailshandler.NewDetailsHandler(detailsUC)
	plantsH := plantshandler.NewPlantsHandler(plantsUC)
	authH := authhandler.NewAuthHandler(authUC)

	r := router.NewRouter(identifyH, detailsH, authH, plantsH)

	// Missing upstream credentials are surfaced per request; warn early anyway.
	if os.Getenv("PLANTNET_API_KEY") == "" {
		log.Println("[WARN] PLANTNET_API_KEY is not set. Identification requests will fail.")
	}
	if os.Getenv(jwtmw.EnvKeyJWTSecret) == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
