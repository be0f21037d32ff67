package integration

import (
	"context"
	"log"
	"os"
	"testing"

	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/repository/unitofwork"
	"cofoundr-be/pkg/database"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
)

func TestGormConnection(t *testing.T) {
	// Load .env from root
	err := godotenv.Load("../../.env")
	if err != nil {
		log.Println("No .env file found, using system env")
	}

	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping integration test: DB_CONNECTION_STRING not set")
	}

	gormDB, err := database.NewGormDBFromDSN(dsn)
	if err != nil {
		t.Fatalf("Failed to connect to DB: %v", err)
	}

	// Verify Wiring
	uowFactory := unitofwork.NewRepositoryFactory(gormDB)
	uow := uowFactory.NewUnitOfWork(context.Background())

	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ProfileRepository())
	assert.NotNil(t, uow.ProfileEmbeddingRepository())
	assert.NotNil(t, uow.MatchRepository())
	assert.NotNil(t, uow.MessageRepository())
	assert.NotNil(t, uow.SectionResponseRepository())
	assert.NotNil(t, uow.PassRepository())
	assert.NotNil(t, uow.CollabMethodRepository())
	assert.NotNil(t, uow.ActiveCollabRepository())

	// Basic Ping
	sqlDB, _ := gormDB.DB()
	err = sqlDB.Ping()
	assert.NoError(t, err)
	t.Log("Successfully connected to DB and initialized UnitOfWork Factory")

	// Verify Data Access (implies columns exist)
	t.Run("Check User Repository", func(t *testing.T) {
		count, err := uow.UserRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("User count: %d", count)
	})

	t.Run("Check Profile Embedding Repository", func(t *testing.T) {
		// Count implies table check
		count, err := uow.ProfileEmbeddingRepository().Count(context.Background())
		assert.NoError(t, err)
		t.Logf("ProfileEmbedding count: %d", count)
	})

	t.Run("Check Transactional Match Collaboration", func(t *testing.T) {
		// Two users with profiles, then a match plus a collaboration
		// created inside one transaction.
		newUser := func(name string) *entity.User {
			return &entity.User{
				Id:       uuid.New(),
				Email:    "test-integration-" + uuid.New().String() + "@example.com",
				FullName: name,
				Role:     "user",
				Status:   "active",
			}
		}
		userA := newUser("Integration User A")
		userB := newUser("Integration User B")

		err := uow.UserRepository().Create(context.Background(), userA)
		assert.NoError(t, err)
		err = uow.UserRepository().Create(context.Background(), userB)
		assert.NoError(t, err)

		profileA := &entity.Profile{
			UserId:               userA.Id,
			Name:                 userA.FullName,
			Title:                "Backend Engineer",
			Skills:               []string{"Go", "Postgres"},
			IsOnboardingComplete: true,
		}
		err = uow.ProfileRepository().Create(context.Background(), profileA)
		assert.NoError(t, err)

		// Transaction Test
		ctx := context.Background()
		err = uow.Begin(ctx)
		assert.NoError(t, err)
		defer uow.Rollback()

		match := &entity.Match{
			Id:          uuid.New(),
			UserAId:     userA.Id,
			UserBId:     userB.Id,
			Designation: entity.DesignationInConsideration,
		}
		err = uow.MatchRepository().Create(ctx, match)
		assert.NoError(t, err)

		collab := &entity.ActiveCollaboration{
			Id:        uuid.New(),
			MatchId:   match.Id,
			OwnerId:   userA.Id,
			PartnerId: userB.Id,
			MethodId:  1,
			Title:     "Weekend MVP Sprint",
			Category:  entity.CategoryTechnical,
			Status:    entity.CollabStatusProposed,
		}
		err = uow.ActiveCollabRepository().Create(ctx, collab)
		assert.NoError(t, err)

		err = uow.Commit()
		assert.NoError(t, err)

		t.Log("Successfully created Match with Collaboration in Transaction")
	})
}
