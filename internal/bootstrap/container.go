package bootstrap

import (
	"log"
	"os"

	"legal-advisor-be/internal/config"
	"legal-advisor-be/internal/controller"
	"legal-advisor-be/internal/pkg/logger"
	"legal-advisor-be/internal/repository/contract"
	"legal-advisor-be/internal/repository/implementation"
	"legal-advisor-be/internal/repository/memory"
	redisrepo "legal-advisor-be/internal/repository/redis"
	"legal-advisor-be/internal/service"
	"legal-advisor-be/pkg/caselaw"
	"legal-advisor-be/pkg/embedding"
	"legal-advisor-be/pkg/embedding/jina"
	"legal-advisor-be/pkg/llm/factory"
	pktNats "legal-advisor-be/pkg/nats"
	"legal-advisor-be/pkg/rag/compose"
	"legal-advisor-be/pkg/rag/followup"
	"legal-advisor-be/pkg/rag/response"
	"legal-advisor-be/pkg/rag/search"
	"legal-advisor-be/pkg/rag/session"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	QueryController controller.IQueryController

	// Background services (run from main)
	AuditService service.IAuditService

	// Held for teardown
	SysLogger logger.ILogger
	NatsPub   *pktNats.Publisher
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")
	ragLogger := log.New(os.Stdout, "[rag] ", log.LstdFlags)

	// Embedding provider
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "jina" {
		embeddingProvider = jina.NewProvider(cfg.Ai.JinaAPIKey)
		log.Printf("[INFO] Using Embedding Provider: JINA AI")
	} else {
		embeddingProvider = embedding.NewOllamaProvider(cfg.Ai.OllamaBaseURL, cfg.Ai.OllamaEmbedModel)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaEmbedModel)
	}

	// LLM provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.LLMProvider,
		cfg.Ai.LLMModel,
		cfg.Ai.OllamaBaseURL,
		cfg.Ai.HuggingFaceAPIKey,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// Session backing: in-memory by default, Redis when configured
	var sessionRepo contract.SessionRepository
	if cfg.Session.Backend == "redis" {
		opts, err := goredis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Fatalf("[FATAL] Invalid REDIS_URL: %v", err)
		}
		sessionRepo = redisrepo.NewSessionRepository(goredis.NewClient(opts), cfg.Session.TTL, ragLogger)
		log.Printf("[INFO] Using Session Backend: REDIS")
	} else {
		sessionRepo = memory.NewSessionRepository(cfg.Session.TTL)
		log.Printf("[INFO] Using Session Backend: MEMORY (ttl %s)", cfg.Session.TTL)
	}

	// Event bus (in-process) + optional NATS bridge
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(gochannel.Config{}, watermillLogger)

	var natsPub *pktNats.Publisher
	if cfg.App.NatsURL != "" {
		natsPub, err = pktNats.NewPublisher(cfg.App.NatsURL)
		if err != nil {
			log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
			natsPub = nil
		}
	}

	// Domain components
	sectionRepo := implementation.NewStatuteSectionRepository(db)
	sessionManager := session.NewManager(sessionRepo)
	classifier := followup.NewLexiconClassifier()
	searchOrchestrator := search.NewOrchestrator(embeddingProvider, sectionRepo, ragLogger)
	generator := response.NewGenerator(llmProvider, ragLogger)
	composer := compose.NewComposer(generator)
	caseFetcher := caselaw.NewKanoonFetcher(cfg.CaseLaw.BaseURL, cfg.CaseLaw.Timeout, ragLogger)

	queryService := service.NewQueryService(
		sessionManager,
		classifier,
		searchOrchestrator,
		generator,
		composer,
		caseFetcher,
		pubSub,
		sysLogger,
		cfg.Retrieval,
		cfg.CaseLaw.MaxResults,
	)

	auditService := service.NewAuditService(pubSub, service.QueryResolvedTopic, natsPub, sysLogger)

	return &Container{
		QueryController: controller.NewQueryController(queryService),
		AuditService:    auditService,
		SysLogger:       sysLogger,
		NatsPub:         natsPub,
	}
}
