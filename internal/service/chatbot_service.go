package service

import (
	"context"
	"errors"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"dawangi-chatbot-be/internal/constant"
	"dawangi-chatbot-be/internal/dto"
	"dawangi-chatbot-be/internal/repository/memory"
	"dawangi-chatbot-be/pkg/knowledge"
	"dawangi-chatbot-be/pkg/llm"
	"dawangi-chatbot-be/pkg/program"
	"dawangi-chatbot-be/pkg/prompt"
	"dawangi-chatbot-be/pkg/routing"
	"dawangi-chatbot-be/pkg/store"
	"dawangi-chatbot-be/pkg/tone"

	"github.com/google/uuid"
)

// IChatbotService defines the chatbot pipeline interface
type IChatbotService interface {
	Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error)
	Route(ctx context.Context, request *dto.RouteRequest) (*dto.RouteResponse, error)
}

// chatbotService sequences routing, program resolution, prompt
// assembly, generation and tone into the question→answer flow.
//
// Every recovered condition (unmatched intent, missing program,
// missing resource, provider failure) yields a well-formed response;
// no fault from the pipeline reaches the HTTP boundary.
type chatbotService struct {
	sessionRepo *memory.SessionRepository
	llmProvider llm.LLMProvider
	classifier  *routing.Classifier
	loader      *knowledge.Loader
	toneAdapter *tone.Adapter
	llmLogger   *log.Logger
	genTimeout  time.Duration
}

// NewChatbotService wires the pipeline components. Everything is
// injected once at process start; nothing here is a hidden singleton.
func NewChatbotService(
	sessionRepo *memory.SessionRepository,
	llmProvider llm.LLMProvider,
	classifier *routing.Classifier,
	loader *knowledge.Loader,
	toneAdapter *tone.Adapter,
	genTimeout time.Duration,
) IChatbotService {
	return &chatbotService{
		sessionRepo: sessionRepo,
		llmProvider: llmProvider,
		classifier:  classifier,
		loader:      loader,
		toneAdapter: toneAdapter,
		llmLogger:   initLLMLogger(),
		genTimeout:  genTimeout,
	}
}

func initLLMLogger() *log.Logger {
	logPath := filepath.Join(".", "logs", "llm_pipeline.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		log.Printf("Failed to create logs directory: %v", err)
	}
	file, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return log.New(os.Stdout, "[LLM] ", log.LstdFlags)
	}
	return log.New(file, "", log.LstdFlags)
}

// pipelineResult is the outcome of one pipeline run, before session
// state is updated.
type pipelineResult struct {
	Answer  string
	Label   string
	Emotion string
	Success bool
}

// Chat runs the full pipeline for one question and updates the session.
func (cs *chatbotService) Chat(ctx context.Context, request *dto.ChatRequest) (*dto.ChatResponse, error) {
	sessionId := request.SessionId
	if sessionId == "" {
		sessionId = uuid.NewString()
	}

	cs.sessionRepo.GetOrCreate(sessionId)
	cs.sessionRepo.Touch(sessionId)
	cs.sessionRepo.UpdateProfile(sessionId, request.ProfileDept, request.SelectedProgram)

	// Snapshot state, then release all session locks before any
	// provider call: generation can take seconds.
	profile := cs.sessionRepo.Profile(sessionId)
	history := cs.sessionRepo.History(sessionId)

	result := cs.runPipeline(ctx, request.Question, request.ProgramName, profile, history)

	// Every invocation appends exactly one turn pair, including the
	// short-circuit outcomes, so the history stays pairwise.
	cs.sessionRepo.AppendTurns(sessionId,
		store.Turn{Role: store.RoleUser, Content: request.Question},
		store.Turn{Role: store.RoleAssistant, Content: result.Answer},
	)

	return &dto.ChatResponse{
		Answer:    result.Answer,
		Label:     result.Label,
		Emotion:   result.Emotion,
		Success:   result.Success,
		SessionId: sessionId,
	}, nil
}

// Route classifies a question without generating an answer.
func (cs *chatbotService) Route(ctx context.Context, request *dto.RouteRequest) (*dto.RouteResponse, error) {
	callCtx, cancel := context.WithTimeout(ctx, cs.genTimeout)
	defer cancel()

	label := cs.classifier.Classify(callCtx, request.Question, request.ProfileDept, request.SelectedProgram)

	return &dto.RouteResponse{
		Label:   label,
		Success: label != routing.LabelUnmatched,
	}, nil
}

func (cs *chatbotService) runPipeline(
	ctx context.Context,
	question, programName string,
	profile store.Profile,
	history []store.Turn,
) pipelineResult {

	routeCtx, cancel := context.WithTimeout(ctx, cs.genTimeout)
	label := cs.classifier.Classify(routeCtx, question, profile.Dept, profile.SelectedProgram)
	cancel()

	if label == routing.LabelUnmatched {
		return pipelineResult{
			Answer:  constant.MsgOutOfScope,
			Label:   routing.LabelUnmatched,
			Emotion: constant.EmotionEmbarrassed,
			Success: false,
		}
	}

	if cs.loader.RequiresProgram(label) && programName == "" {
		programName = program.Extract(question)
		if programName == "" {
			return pipelineResult{
				Answer:  constant.MsgAskProgram,
				Label:   label,
				Emotion: constant.EmotionNeutral,
				Success: false,
			}
		}
	}

	answer, emotion := cs.generate(ctx, question, label, programName, profile, history)
	answer = cs.toneAdapter.Apply(answer)

	return pipelineResult{
		Answer:  answer,
		Label:   label,
		Emotion: emotion,
		Success: true,
	}
}

// generate builds the prompt and invokes the provider. Failures are
// recovered into canned replies here, never raised to the caller.
func (cs *chatbotService) generate(
	ctx context.Context,
	question, label, programName string,
	profile store.Profile,
	history []store.Turn,
) (string, string) {

	promptPath, dataPath, err := cs.loader.Resolve(label, programName)
	if err != nil {
		cs.llmLogger.Printf("[PIPELINE] resolve failed for label %s: %v", label, err)
		return constant.MsgMissingResource, constant.EmotionEmbarrassed
	}

	templateText, err := cs.loader.LoadFile(promptPath)
	if err != nil {
		cs.llmLogger.Printf("[PIPELINE] template load failed: %v", err)
		return constant.MsgMissingResource, constant.EmotionEmbarrassed
	}

	knowledgeText, err := cs.loader.LoadFile(dataPath)
	if err != nil {
		cs.llmLogger.Printf("[PIPELINE] knowledge load failed: %v", err)
		if errors.Is(err, fs.ErrNotExist) {
			return constant.MsgMissingResource, constant.EmotionEmbarrassed
		}
		return constant.MsgGenerationFailure, constant.EmotionEmbarrassed
	}

	finalPrompt := prompt.Assemble(templateText, knowledgeText, label, prompt.Variables{
		Question:        question,
		ProfileDept:     profile.Dept,
		SelectedProgram: profile.SelectedProgram,
		ProgramName:     programName,
	})

	messages := make([]llm.Message, 0, len(history)+1)
	for _, turn := range history {
		messages = append(messages, llm.Message{Role: turn.Role, Content: turn.Content})
	}
	messages = append(messages, llm.Message{Role: store.RoleUser, Content: finalPrompt})

	callCtx, cancel := context.WithTimeout(ctx, cs.genTimeout)
	defer cancel()

	answer, err := cs.llmProvider.Chat(callCtx, messages,
		llm.WithTemperature(0.7),
		llm.WithMaxTokens(4096),
		llm.WithSystem(constant.GenerationSystemPrompt),
	)
	if err != nil {
		cs.llmLogger.Printf("[PIPELINE] generation failed for label %s: %v", label, err)
		return constant.MsgGenerationFailure, constant.EmotionEmbarrassed
	}

	cs.llmLogger.Printf("[PIPELINE] label=%s program=%s prompt_bytes=%d answer_bytes=%d",
		label, programName, len(finalPrompt), len(answer))

	return answer, decideEmotion(answer)
}

// decideEmotion inspects the generated text; checks form a priority
// chain, first match wins.
func decideEmotion(answer string) string {
	for _, kw := range constant.EmbarrassedKeywords {
		if strings.Contains(answer, kw) {
			return constant.EmotionEmbarrassed
		}
	}
	for _, kw := range constant.ProudKeywords {
		if strings.Contains(answer, kw) {
			return constant.EmotionProud
		}
	}
	if strings.Contains(answer, constant.AnswerMarker) && utf8.RuneCountInString(answer) > constant.JoyMinAnswerRunes {
		return constant.EmotionJoy
	}
	return constant.EmotionNeutral
}
