package app

import (
	"context"

	"github.com/ChristianRemschi/QuizApp/internal/domain"
)

// badgeRule decides one achievement from a finished session's (score, total).
type badgeRule struct {
	name        string
	description string
	iconURI     string
	qualifies   func(score, total int) bool
}

// badgeRules are evaluated independently; one session may satisfy several.
var badgeRules = []badgeRule{
	{
		name:        "Perfect Score",
		description: "You answered all the questions correctly!",
		iconURI:     "icons/badge_star.png",
		qualifies:   func(score, total int) bool { return score == total },
	},
	{
		name:        "Quiz Finisher",
		description: "You have completed the quiz to the end!",
		iconURI:     "icons/badge_finish.png",
		qualifies:   func(score, total int) bool { return true },
	},
	{
		name:        "Oops!",
		description: "Oops! You did not answer any question correctly!",
		iconURI:     "icons/badge_fail.png",
		qualifies:   func(score, total int) bool { return score == 0 },
	},
	{
		name:        "Great Job",
		description: "You have exceeded 80% of correct answers!",
		iconURI:     "icons/badge_great.png",
		qualifies:   func(score, total int) bool { return float64(score) >= 0.8*float64(total) },
	},
}

// BadgeService grants achievement badges for finished sessions. Grants are
// idempotent: a badge already held is never granted twice and never an error.
type BadgeService struct {
	people PersonRepository
	badges BadgeRepository
}

func NewBadgeService(people PersonRepository, badges BadgeRepository) *BadgeService {
	return &BadgeService{people: people, badges: badges}
}

// Evaluate runs every rule against (score, total) and grants the qualifying
// badges the person does not already hold. The held set is read fresh each
// call. An unknown person grants nothing and writes nothing.
func (b *BadgeService) Evaluate(ctx context.Context, personID int64, score, total int) ([]domain.BadgeGrant, error) {
	person, err := b.people.GetByID(ctx, personID)
	if err != nil {
		return nil, err
	}
	if person == nil {
		return nil, domain.ErrPersonNotFound
	}

	held, err := b.badges.ListForPerson(ctx, personID)
	if err != nil {
		return nil, err
	}
	heldByName := make(map[string]struct{}, len(held))
	for _, badge := range held {
		heldByName[badge.Name] = struct{}{}
	}

	var grants []domain.BadgeGrant
	for _, rule := range badgeRules {
		if !rule.qualifies(score, total) {
			continue
		}
		if _, ok := heldByName[rule.name]; ok {
			continue
		}

		badge := &domain.Badge{
			Name:        rule.name,
			Description: rule.description,
			IconURI:     rule.iconURI,
		}
		// First writer wins on the definition; the grant itself is guarded
		// both here and by the store's conflict-ignore.
		if err := b.badges.CreateIfAbsent(ctx, badge); err != nil {
			return grants, err
		}
		if err := b.badges.Grant(ctx, personID, badge.ID); err != nil {
			return grants, err
		}
		grants = append(grants, domain.BadgeGrant{Badge: *badge, Rule: rule.name})
	}
	return grants, nil
}

// Held lists the badges a person has earned so far.
func (b *BadgeService) Held(ctx context.Context, personID int64) ([]domain.Badge, error) {
	return b.badges.ListForPerson(ctx, personID)
}
