package problem_service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/Yashcodes04/codementor-project/internal/database"
	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
	"github.com/Yashcodes04/codementor-project/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

// DetectProblem registers a problem scraped by a client. Detection is
// idempotent, the stored row wins when the same (platform, platform_id)
// is reported again.
func (p *ProblemService) DetectProblem(
	ctx context.Context,
	submission ProblemSubmission,
) (Problem, error) {
	if err := service.ValidateInput(submission); err != nil {
		return Problem{}, err
	}

	// clients truncate before sending, enforce the bound anyway
	submission.Description = truncateDescription(submission.Description)

	existing, err := p.DB.GetProblemByPlatformId(
		ctx,
		database.GetProblemByPlatformIdParams{
			Platform:   submission.Platform,
			PlatformID: submission.ID,
		},
	)
	if err == nil {
		return problemFromDb(existing)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return Problem{}, fmt.Errorf(
			"%w, cannot look up problem %s/%s, %w",
			mentor_errors.ErrInternal,
			submission.Platform, submission.ID,
			err,
		)
	}

	created, err := p.createProblemInDB(ctx, submission)
	if err != nil {
		return Problem{}, err
	}

	log.WithFields(log.Fields{
		"platform":    created.Platform,
		"platform_id": created.PlatformID,
		"title":       created.Title,
	}).Info("registered problem")

	return problemFromDb(created)
}

func (p *ProblemService) createProblemInDB(
	ctx context.Context,
	submission ProblemSubmission,
) (database.Problem, error) {
	examples, err := json.Marshal(nonNilExamples(submission.Examples))
	if err != nil {
		return database.Problem{}, errors.Join(mentor_errors.ErrInternal, err)
	}
	constraints, err := json.Marshal(nonNilConstraints(submission.Constraints))
	if err != nil {
		return database.Problem{}, errors.Join(mentor_errors.ErrInternal, err)
	}

	created, dbErr := p.DB.CreateProblem(
		ctx,
		database.CreateProblemParams{
			PlatformID:  submission.ID,
			Platform:    submission.Platform,
			Title:       submission.Title,
			Difficulty:  submission.Difficulty,
			Description: submission.Description,
			Url:         submission.Url,
			Examples:    examples,
			Constraints: constraints,
		},
	)
	if dbErr == nil {
		return created, nil
	}

	// two clients can race on first detection of the same problem. the
	// loser of the unique constraint re-reads the winner's row
	var pgErr *pgconn.PgError
	if errors.As(dbErr, &pgErr) && pgErr.Code == mentor_errors.CodeUniqueConstraint {
		log.WithFields(log.Fields{
			"platform":    submission.Platform,
			"platform_id": submission.ID,
		}).Debug("problem already registered by a concurrent detection")
		return p.DB.GetProblemByPlatformId(
			ctx,
			database.GetProblemByPlatformIdParams{
				Platform:   submission.Platform,
				PlatformID: submission.ID,
			},
		)
	}

	return database.Problem{}, mentor_errors.HandleDBErrors(
		dbErr,
		nil,
		"failed to insert problem into db",
	)
}

func problemFromDb(dbProblem database.Problem) (Problem, error) {
	var examples []json.RawMessage
	if err := json.Unmarshal(dbProblem.Examples, &examples); err != nil {
		log.Errorf("corrupted examples for problem %s, %v", dbProblem.ID, err)
		return Problem{}, errors.Join(mentor_errors.ErrInternal, err)
	}
	var constraints []string
	if err := json.Unmarshal(dbProblem.Constraints, &constraints); err != nil {
		log.Errorf("corrupted constraints for problem %s, %v", dbProblem.ID, err)
		return Problem{}, errors.Join(mentor_errors.ErrInternal, err)
	}

	return Problem{
		ID:          dbProblem.ID,
		PlatformID:  dbProblem.PlatformID,
		Platform:    dbProblem.Platform,
		Title:       dbProblem.Title,
		Difficulty:  dbProblem.Difficulty,
		Description: dbProblem.Description,
		Url:         dbProblem.Url,
		Examples:    nonNilExamples(examples),
		Constraints: nonNilConstraints(constraints),
		CreatedAt:   dbProblem.CreatedAt,
	}, nil
}

func (p *ProblemService) GetProblemByPlatformId(
	ctx context.Context,
	platform string,
	platformId string,
) (Problem, error) {
	dbProblem, err := p.DB.GetProblemByPlatformId(
		ctx,
		database.GetProblemByPlatformIdParams{
			Platform:   platform,
			PlatformID: platformId,
		},
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Problem{}, fmt.Errorf(
				"%w, no problem exist with the given id",
				mentor_errors.ErrNotFound,
			)
		}
		return Problem{}, fmt.Errorf(
			"%w, cannot fetch problem %s/%s, %w",
			mentor_errors.ErrInternal,
			platform, platformId,
			err,
		)
	}
	return problemFromDb(dbProblem)
}

// truncateDescription caps the statement at MaxDescriptionLength characters.
// Statements carry math symbols, a byte cut would split a rune and the
// corrupted text would end up in stored records and hint prompts.
func truncateDescription(description string) string {
	if utf8.RuneCountInString(description) <= MaxDescriptionLength {
		return description
	}
	return string([]rune(description)[:MaxDescriptionLength])
}

func nonNilExamples(examples []json.RawMessage) []json.RawMessage {
	if examples == nil {
		return []json.RawMessage{}
	}
	return examples
}

func nonNilConstraints(constraints []string) []string {
	if constraints == nil {
		return []string{}
	}
	return constraints
}
