package progress

import (
	"log/slog"
	"time"

	"github.com/wesleyorama2/benchkit/internal/bench"
	"github.com/wesleyorama2/benchkit/internal/params"
)

// Log emits run events as structured log records.
type Log struct {
	logger *slog.Logger
}

// NewLog creates a Log observer. A nil logger means slog.Default().
func NewLog(logger *slog.Logger) *Log {
	if logger == nil {
		logger = slog.Default()
	}
	return &Log{logger: logger.With("component", "progress")}
}

func (l *Log) CaseStarted(caseName string) {
	l.logger.Info("case started", "case", caseName)
}

func (l *Log) CaseFinished(caseName string) {
	l.logger.Info("case finished", "case", caseName)
}

func (l *Log) SubjectStarted(caseName string, s bench.Subject) {
	l.logger.Info("subject started", "case", caseName, "subject", s.Name, "iterations", s.Iterations)
}

func (l *Log) SubjectFinished(caseName string, s bench.Subject, err error) {
	if err != nil {
		l.logger.Error("subject finished", "case", caseName, "subject", s.Name, "error", err)
		return
	}
	l.logger.Info("subject finished", "case", caseName, "subject", s.Name)
}

func (l *Log) IterationRecorded(caseName string, s bench.Subject, set params.Set, index int, d time.Duration) {
	l.logger.Debug("iteration recorded",
		"case", caseName,
		"subject", s.Name,
		"params", set.String(),
		"index", index,
		"duration", d,
	)
}
