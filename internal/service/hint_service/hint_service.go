package hint_service

import (
	"context"
	"errors"

	"github.com/Yashcodes04/codementor-project/internal/database"
	"github.com/Yashcodes04/codementor-project/internal/mentor_errors"
	"github.com/Yashcodes04/codementor-project/internal/service"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	log "github.com/sirupsen/logrus"
)

// platform assumed when a client omits it, the only platform the first
// detector release supports
const defaultPlatform = "leetcode"

// GenerateHint returns the hint for the requesting user at the given level.
// A hint is generated at most once per (user, problem, level), repeats are
// served from the db.
func (h *HintService) GenerateHint(
	ctx context.Context,
	request HintRequest,
) (HintResponse, error) {
	if err := service.ValidateInput(request); err != nil {
		return HintResponse{}, err
	}
	if request.Platform == "" {
		request.Platform = defaultPlatform
	}

	user, err := h.UserConfig.FetchUserFromClaims(ctx)
	if err != nil {
		return HintResponse{}, err
	}

	problem, err := h.ProblemConfig.GetProblemByPlatformId(
		ctx,
		request.Platform,
		request.ProblemID,
	)
	if err != nil {
		return HintResponse{}, err
	}

	// already unlocked before, serve the stored hint
	existing, dbErr := h.DB.GetHint(
		ctx,
		database.GetHintParams{
			UserID:    user.ID,
			ProblemID: problem.ID,
			Level:     int32(request.Level),
		},
	)
	if dbErr == nil {
		return HintResponse{Hint: existing.Content}, nil
	}
	if !errors.Is(dbErr, pgx.ErrNoRows) {
		return HintResponse{}, mentor_errors.HandleDBErrors(
			dbErr, nil, "failed to look up existing hint",
		)
	}

	content, err := h.Generator.Hint(ctx, problem, request.Level, request.UserProgress)
	if err != nil {
		if h.Fallback == nil || h.Fallback == h.Generator {
			return HintResponse{}, err
		}
		log.Warnf("hint generator failed, using fallback, %v", err)
		content, err = h.Fallback.Hint(ctx, problem, request.Level, request.UserProgress)
		if err != nil {
			return HintResponse{}, err
		}
	}

	if err := h.saveHint(ctx, user.ID, problem.ID, request.Level, content); err != nil {
		return HintResponse{}, err
	}

	log.WithFields(log.Fields{
		"user_name": user.UserName,
		"problem":   problem.PlatformID,
		"level":     request.Level,
	}).Info("served hint")

	return HintResponse{Hint: content}, nil
}

func (h *HintService) saveHint(
	ctx context.Context,
	userId uuid.UUID,
	problemId uuid.UUID,
	level int,
	content string,
) error {
	_, dbErr := h.DB.CreateHint(
		ctx,
		database.CreateHintParams{
			UserID:    userId,
			ProblemID: problemId,
			Level:     int32(level),
			Content:   content,
		},
	)
	if dbErr == nil {
		return nil
	}

	// a duplicate unlock racing us already stored the same level, fine
	var pgErr *pgconn.PgError
	if errors.As(dbErr, &pgErr) && pgErr.Code == mentor_errors.CodeUniqueConstraint {
		log.Debugf("hint level %d already stored for user %s", level, userId)
		return nil
	}

	return mentor_errors.HandleDBErrors(dbErr, nil, "failed to store hint")
}
