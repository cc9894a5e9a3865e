package main

import (
	"log"

	"github.com/limbo/ascend/internal/api"
	"github.com/limbo/ascend/internal/repository"
	"github.com/limbo/ascend/internal/service"
	jwtservice "github.com/limbo/ascend/pkg/jwt_service"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		service.InitValidator()
		pool := repository.Connect(dbConfig())

		usersRepo := repository.NewUsersRepoWithConn(pool)
		habitsRepo := repository.NewHabitsRepoWithConn(pool)
		profilesRepo := repository.NewProfilesRepoWithConn(pool)
		serv := api.New(&api.ServicesList{
			UserService:   service.NewUserService(usersRepo),
			HabitsService: service.NewHabitsService(habitsRepo),
			CompletionService: service.NewCompletionService(
				habitsRepo,
				repository.NewCompletionsRepoWithConn(pool),
				profilesRepo,
			),
			ReflectionService: service.NewReflectionService(repository.NewReflectionsRepoWithConn(pool)),
			BodyService: service.NewBodyService(
				repository.NewGymRepoWithConn(pool),
				repository.NewStepsRepoWithConn(pool),
			),
			NutritionService: service.NewNutritionService(repository.NewNutritionRepoWithConn(pool), profilesRepo),
			JwtService:       jwtservice.New(cfg.GetString("JWT_SECRET"), cfg.GetDuration("TOKEN_TTL", jwtservice.DefaultTokenTTL)),
			AuthRateLimit:    cfg.GetFloat("AUTH_RATE_LIMIT", 5),
		})
		err := serv.Run(cfg.GetStringOr("API_ADDRESS", ":8080"))
		if err != nil {
			log.Println("Server error: " + err.Error())
		}
		return err
	},
}
