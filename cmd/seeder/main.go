// Command seeder populates a development database with sample ideas in
// various workflow states. It goes through the services, so seeded data
// respects the same rules as real submissions. Not for production use.
//
// Flags:
//
//	--ideas   number of ideas to create (default: 25)
//	--owners  number of distinct submitters to spread them across (default: 5)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/ideahub/ideahub-backend/internal/app"
	"github.com/ideahub/ideahub-backend/internal/domain"
	evalsvc "github.com/ideahub/ideahub-backend/internal/service/evaluation"
	ideasvc "github.com/ideahub/ideahub-backend/internal/service/idea"
	"github.com/ideahub/ideahub-backend/pkg/ctxutil"
)

var categories = []domain.IdeaCategory{
	domain.IdeaCategoryProduct,
	domain.IdeaCategoryProcess,
	domain.IdeaCategoryTechnology,
	domain.IdeaCategoryWorkplace,
	domain.IdeaCategoryOther,
}

var decisions = []domain.Decision{
	domain.DecisionAccepted,
	domain.DecisionRejected,
	domain.DecisionNeedsRevision,
}

func main() {
	ideasFlag := flag.Int("ideas", 25, "number of ideas to create")
	ownersFlag := flag.Int("owners", 5, "number of distinct submitters")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	a, err := app.New(ctx)
	if err != nil {
		log.Fatalf("wire application: %v", err)
	}
	defer a.Close()

	if err := seed(ctx, a, *ideasFlag, *ownersFlag); err != nil {
		a.Log.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	a.Log.Info("seeding completed", slog.Int("ideas", *ideasFlag))
}

func seed(ctx context.Context, a *app.App, ideaCount, ownerCount int) error {
	owners := make([]uuid.UUID, ownerCount)
	for i := range owners {
		owners[i] = uuid.New()
	}

	for i := range ideaCount {
		ownerCtx := ctxutil.WithUserID(ctx, owners[i%len(owners)])

		idea, err := a.Ideas.Create(ownerCtx, ideasvc.CreateInput{
			Title:       fmt.Sprintf("Sample idea #%d", i+1),
			Description: fmt.Sprintf("Generated sample submission number %d for local development.", i+1),
			Category:    categories[rand.Intn(len(categories))],
		})
		if err != nil {
			return fmt.Errorf("create idea %d: %w", i+1, err)
		}

		// Leave roughly a third of the ideas untouched in SUBMITTED so the
		// queue has fresh entries; evaluate the rest.
		if i%3 == 0 {
			continue
		}

		_, err = a.Evaluations.SubmitEvaluation(ctx, evalsvc.SubmitInput{
			IdeaID:      idea.ID,
			EvaluatorID: fmt.Sprintf("seed-evaluator-%d", i%3),
			Decision:    decisions[rand.Intn(len(decisions))],
			Comments:    "Seeded evaluation for development.",
		})
		if err != nil {
			return fmt.Errorf("evaluate idea %d: %w", i+1, err)
		}
	}

	return nil
}
