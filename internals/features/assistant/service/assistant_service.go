package service

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"evsu_library_backend/internals/configs"
	"evsu_library_backend/internals/constants"
	"evsu_library_backend/internals/features/assistant/classifier"
	"evsu_library_backend/internals/features/assistant/grouping"
	"evsu_library_backend/internals/features/assistant/keywords"
	"evsu_library_backend/internals/features/assistant/llm"
	"evsu_library_backend/internals/features/assistant/search"
	"evsu_library_backend/internals/features/assistant/summary"
	"evsu_library_backend/internals/features/catalog/books/repository"
)

const (
	DefaultModelTimeout = 20 * time.Second
	summaryConcurrency  = 4
)

type Completer interface {
	Complete(ctx context.Context, messages []llm.Message) (string, error)
}

type Summarizer interface {
	Summary(ctx context.Context, title string) string
}

type Result struct {
	Response string                  `json:"response"`
	Matches  []string                `json:"matches"`
	Books    []grouping.GroupedEntry `json:"books"`
}

func fixed(msg string) Result {
	return Result{Response: msg, Matches: []string{}, Books: []grouping.GroupedEntry{}}
}

type AssistantService struct {
	Classifier   *classifier.Classifier
	Keywords     keywords.Set
	Model        Completer
	Summaries    Summarizer
	ModelTimeout time.Duration
}

func New(set keywords.Set, searcher classifier.Searcher, model Completer, summaries Summarizer) *AssistantService {
	return &AssistantService{
		Classifier:   classifier.New(set, searcher, search.DefaultLimit),
		Keywords:     set,
		Model:        model,
		Summaries:    summaries,
		ModelTimeout: DefaultModelTimeout,
	}
}

// NewFromConfig merakit service dengan katalog GORM, OpenRouter dan Open Library.
// Cache summary dibagi oleh semua request lewat store yang sama.
func NewFromConfig(db *gorm.DB, set keywords.Set, store summary.Store) *AssistantService {
	engine := search.NewEngine(repository.NewBookRepository(db))
	model := llm.NewClient(llm.Config{
		BaseURL: configs.OpenRouterBaseURL,
		APIKey:  configs.OpenRouterAPIKey,
		Model:   configs.OpenRouterModel,
	})
	lookup := summary.NewLookup(summary.NewOpenLibrary(configs.OpenLibraryBaseURL, summary.DefaultTimeout), store)
	return New(set, engine, model, lookup)
}

// HandleQuery tidak pernah mengembalikan error; setiap kegagalan jadi pesan tetap.
func (s *AssistantService) HandleQuery(ctx context.Context, message string) Result {
	verdict, err := s.Classifier.Classify(ctx, message)
	if err != nil {
		log.Errorf("[Assistant] catalog search failed: %v", err)
		return fixed(constants.AssistantUnavailable)
	}

	switch verdict.Kind {
	case classifier.Blocked:
		log.Warnf("[Assistant] blocked off-topic query: %q", message)
		return fixed(constants.AssistantRefusal)
	case classifier.NoMatch:
		return fixed(constants.AssistantNotFound)
	case classifier.Greeting:
		return fixed(constants.AssistantGreeting)
	}

	books := grouping.Group(verdict.Matches)
	if s.Summaries != nil && s.Keywords.Summary.In(strings.ToLower(verdict.Sanitized)) {
		s.attachSummaries(ctx, books)
	}
	blocks := grouping.FormatContextBlocks(books)

	mctx, cancel := context.WithTimeout(ctx, s.modelTimeout())
	defer cancel()

	answer, err := s.Model.Complete(mctx, []llm.Message{
		{Role: "system", Content: constants.AssistantSystemPrompt + "\n\nEVSU Library records:\n" + strings.Join(blocks, "\n\n")},
		{Role: "user", Content: verdict.Sanitized},
	})
	if err != nil {
		log.Warnf("[Assistant] model call failed: %v", err)
		return fixed(constants.AssistantUnavailable)
	}

	return Result{Response: strings.TrimSpace(answer), Matches: blocks, Books: books}
}

// attachSummaries: satu lookup per grup, paralel; urutan books tetap.
func (s *AssistantService) attachSummaries(ctx context.Context, books []grouping.GroupedEntry) {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(summaryConcurrency)
	for i := range books {
		i := i
		g.Go(func() error {
			books[i].Summary = s.Summaries.Summary(gctx, books[i].Title)
			return nil
		})
	}
	_ = g.Wait()
}

func (s *AssistantService) modelTimeout() time.Duration {
	if s.ModelTimeout <= 0 {
		return DefaultModelTimeout
	}
	return s.ModelTimeout
}
