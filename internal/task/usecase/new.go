package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"

	"voicetask/internal/model"
	"voicetask/internal/task/repository"
	"voicetask/pkg/datemath"
	"voicetask/pkg/gcalendar"
	"voicetask/pkg/gemini"
	pkgLog "voicetask/pkg/log"
)

const scoreCacheSize = 512

type implUseCase struct {
	l            pkgLog.Logger
	llm          gemini.IGemini
	calendar     gcalendar.ICalendar
	repo         repository.Repository
	dateMath     *datemath.Parser
	timezone     string
	calendarID   string
	dangerWindow time.Duration

	// llmLimiter caps enhancer calls so a burst of captures degrades to
	// local parsing instead of hammering the API.
	llmLimiter *rate.Limiter

	// scoreCache holds per-task scores between re-scoring ticks.
	scoreCache *expirable.LRU[string, model.UrgencyScore]

	// now is swappable for tests.
	now func() time.Time
}

// New creates a new task UseCase instance. llm and calendar may be nil;
// both are optional enhancements over the local pipeline.
func New(
	l pkgLog.Logger,
	llm gemini.IGemini,
	calendar gcalendar.ICalendar,
	repo repository.Repository,
	dateMath *datemath.Parser,
	timezone string,
	calendarID string,
	dangerWindow time.Duration,
	scoreInterval time.Duration,
) *implUseCase {
	if dangerWindow <= 0 {
		dangerWindow = 30 * time.Minute
	}
	if scoreInterval <= 0 {
		scoreInterval = 2 * time.Second
	}
	return &implUseCase{
		l:            l,
		llm:          llm,
		calendar:     calendar,
		repo:         repo,
		dateMath:     dateMath,
		timezone:     timezone,
		calendarID:   calendarID,
		dangerWindow: dangerWindow,
		llmLimiter:   rate.NewLimiter(rate.Every(time.Second), 5),
		scoreCache:   expirable.NewLRU[string, model.UrgencyScore](scoreCacheSize, nil, scoreInterval),
		now:          time.Now,
	}
}
