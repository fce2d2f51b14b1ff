package app

import (
	"context"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// StatsService computes a person's performance statistics. A full
// read+reduce over the score history on every call; nothing is persisted.
type StatsService struct {
	scores  ScoreRepository
	catalog CatalogRepository
}

func NewStatsService(scores ScoreRepository, catalog CatalogRepository) *StatsService {
	return &StatsService{scores: scores, catalog: catalog}
}

// Aggregate groups the person's scores by quiz name: two quizzes sharing
// a display name aggregate together, as the original behaves. Scores arrive
// in recorded (created_at) order. Groups exist only when at least one score
// references them, so averages never divide by zero. An unknown person
// simply has no scores and yields an empty report.
func (s *StatsService) Aggregate(ctx context.Context, personID int64) (domain.StatsReport, error) {
	scores, err := s.scores.ListForPerson(ctx, personID)
	if err != nil {
		return domain.StatsReport{}, err
	}

	report := domain.StatsReport{ByQuiz: make(map[string]domain.SeriesStats)}

	names := make(map[int64]string)
	grouped := make(map[string][]int)
	all := make([]int, 0, len(scores))
	for _, score := range scores {
		name, ok := names[score.QuizID]
		if !ok {
			quiz, err := s.catalog.GetQuiz(ctx, score.QuizID)
			if err != nil {
				return domain.StatsReport{}, err
			}
			if quiz == nil {
				// The quiz was deleted after the score was recorded.
				name = "Generale"
			} else {
				name = quiz.Name
			}
			names[score.QuizID] = name
		}
		grouped[name] = append(grouped[name], score.Score)
		all = append(all, score.Score)

		switch {
		case score.Score >= 8:
			report.Distribution.Excellent++
		case score.Score >= 5:
			report.Distribution.Good++
		default:
			report.Distribution.Poor++
		}
	}

	report.Overall = reduceSeries(all)
	for name, values := range grouped {
		report.ByQuiz[name] = reduceSeries(values)
	}
	return report, nil
}

func reduceSeries(values []int) domain.SeriesStats {
	if len(values) == 0 {
		return domain.SeriesStats{}
	}
	stats := domain.SeriesStats{
		Count: len(values),
		Max:   values[0],
		Min:   values[0],
	}
	for _, v := range values {
		stats.Sum += v
		if v > stats.Max {
			stats.Max = v
		}
		if v < stats.Min {
			stats.Min = v
		}
	}
	stats.Average = float64(stats.Sum) / float64(stats.Count)
	return stats
}
