package bootstrap

import (
	"log"
	"time"

	"dawangi-chatbot-be/internal/config"
	"dawangi-chatbot-be/internal/controller"
	"dawangi-chatbot-be/internal/pkg/logger"
	"dawangi-chatbot-be/internal/repository/memory"
	"dawangi-chatbot-be/internal/service"
	"dawangi-chatbot-be/pkg/knowledge"
	"dawangi-chatbot-be/pkg/llm/factory"
	"dawangi-chatbot-be/pkg/prompt"
	"dawangi-chatbot-be/pkg/routing"
	"dawangi-chatbot-be/pkg/tone"
)

type Container struct {
	// Controllers
	ChatbotController controller.IChatbotController
	ProgramController controller.IProgramController

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Knowledge corpus + routing table
	loader, err := knowledge.NewLoader(cfg.App.KnowledgeDir)
	if err != nil {
		log.Fatalf("[FATAL] Failed to load routing configuration: %v", err)
	}
	for _, warning := range loader.Validate(prompt.BlockTag) {
		sysLogger.Warn("knowledge", "routing table validation", map[string]interface{}{
			"warning": warning,
		})
	}

	// 3. LLM Provider
	llmProvider, err := factory.NewLLMProvider(
		cfg.Ai.Provider,
		cfg.Ai.Model,
		cfg.Ai.AnthropicAPIKey,
		cfg.Ai.OllamaBaseURL,
	)
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.Provider, cfg.Ai.Model)

	// 4. Intent Router (the router template is required at startup)
	routerTemplate, err := loader.LoadFile(loader.RouterPromptPath())
	if err != nil {
		log.Fatalf("[FATAL] Failed to load router prompt: %v", err)
	}
	classifier := routing.NewClassifier(llmProvider, routerTemplate, log.Default())

	// 5. In-Memory Session Storage
	sessionRepo := memory.NewSessionRepository()

	// 6. Tone Adapter (nil rng = time-seeded source)
	toneAdapter := tone.NewAdapter(nil)

	chatbotService := service.NewChatbotService(
		sessionRepo,
		llmProvider,
		classifier,
		loader,
		toneAdapter,
		time.Duration(cfg.Ai.GenTimeoutSeconds)*time.Second,
	)

	// The catalog endpoint reads the same corpus file the catalog
	// category routes to.
	_, catalogPath, err := loader.Resolve(routing.LabelCatalog, "")
	if err != nil {
		log.Fatalf("[FATAL] Routing table lacks the %s category: %v", routing.LabelCatalog, err)
	}
	programService := service.NewProgramService(loader, catalogPath)

	return &Container{
		ChatbotController: controller.NewChatbotController(chatbotService),
		ProgramController: controller.NewProgramController(programService),
		Logger:            sysLogger,
	}
}
