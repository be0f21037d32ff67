package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"cofoundr-be/internal/dto"
	"cofoundr-be/internal/entity"
	"cofoundr-be/internal/repository/specification"
	"cofoundr-be/internal/repository/unitofwork"
	"cofoundr-be/pkg/embedding"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/google/uuid"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub            *gochannel.GoChannel
	topicName         string
	uowFactory        unitofwork.RepositoryFactory
	embeddingProvider embedding.EmbeddingProvider
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	embeddingProvider embedding.EmbeddingProvider,
) IConsumerService {
	return &consumerService{
		pubSub:            pubSub,
		topicName:         topicName,
		uowFactory:        uowFactory,
		embeddingProvider: embeddingProvider,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

// buildProfileDocument flattens the free-text sections of a profile into one
// document for embedding. Field labels are kept so the model sees context.
func buildProfileDocument(p *entity.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Name: %s\n", p.Name)
	if p.Title != "" {
		fmt.Fprintf(&b, "Title: %s\n", p.Title)
	}
	if p.Company != "" {
		fmt.Fprintf(&b, "Company: %s\n", p.Company)
	}
	if p.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", p.Location)
	}
	if len(p.Skills) > 0 {
		fmt.Fprintf(&b, "Skills: %s\n", strings.Join(p.Skills, ", "))
	}
	if p.Experience != "" {
		fmt.Fprintf(&b, "Experience: %s\n", p.Experience)
	}
	if p.Startup != "" {
		fmt.Fprintf(&b, "Startup: %s\n", p.Startup)
	}
	if p.LookingFor != "" {
		fmt.Fprintf(&b, "Looking for: %s\n", p.LookingFor)
	}
	if p.Exploring != "" {
		fmt.Fprintf(&b, "Exploring: %s\n", p.Exploring)
	}
	if len(p.InterestedIn) > 0 {
		fmt.Fprintf(&b, "Interested in: %s\n", strings.Join(p.InterestedIn, ", "))
	}
	for _, prompt := range p.Prompts {
		fmt.Fprintf(&b, "%s %s\n", prompt.Question, prompt.Answer)
	}
	return b.String()
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishEmbedProfileMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	log.Printf("[INFO] Processing profile embedding for UserId: %s", payload.UserId)

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	profile, err := uow.ProfileRepository().FindOne(ctx, specification.UserOwnedBy{UserID: payload.UserId})
	if err != nil {
		log.Printf("[ERROR] Failed to get profile %s: %v", payload.UserId, err)
		msg.Nack()
		return
	}
	if profile == nil {
		// Profile deleted between write and processing. Ack.
		log.Printf("[WARN] Profile not found: %s", payload.UserId)
		msg.Ack()
		return
	}

	document := buildProfileDocument(profile)

	res, err := cs.embeddingProvider.Generate(document, "RETRIEVAL_DOCUMENT")
	if err != nil {
		log.Printf("[ERROR] Failed to generate embedding for profile %s: %v", payload.UserId, err)
		msg.Nack()
		return
	}

	now := time.Now()
	if err := uow.ProfileEmbeddingRepository().Upsert(ctx, &entity.ProfileEmbedding{
		Id:        uuid.New(),
		UserId:    profile.UserId,
		Document:  document,
		Embedding: res.Embedding.Values,
		CreatedAt: now,
		UpdatedAt: &now,
	}); err != nil {
		log.Printf("[ERROR] Failed to upsert embedding for profile %s: %v", payload.UserId, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Profile embedding stored for UserId: %s", payload.UserId)
	msg.Ack()
}
