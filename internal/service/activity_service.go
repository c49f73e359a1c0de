// Package service содержит бизнес-логику записи студентов на внеклассные занятия.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"activity-signup-service/internal/model"
	"activity-signup-service/internal/observability"
	"activity-signup-service/internal/repository"
)

// Сообщения, которые клиент получает в поле detail.
const (
	msgActivityNotFound = "Activity not found"
	msgAlreadySignedUp  = "Student is already signed up"
	msgNotRegistered    = "Student is not registered for this activity"
)

// ActivityRepository описывает контракт каталога занятий для бизнес-слоя.
type ActivityRepository interface {
	List(ctx context.Context) (model.Catalog, error)
	AddParticipant(ctx context.Context, name, email string) (model.Activity, error)
	RemoveParticipant(ctx context.Context, name, email string) (model.Activity, error)
}

// ActivityService содержит бизнес-логику просмотра каталога, записи и выписки участников.
type ActivityService struct {
	repo    ActivityRepository
	metrics *observability.Metrics
	log     *slog.Logger
}

// NewActivityService создаёт новый сервис для операций над занятиями.
// metrics может быть nil.
func NewActivityService(repo ActivityRepository, metrics *observability.Metrics, log *slog.Logger) *ActivityService {
	return &ActivityService{
		repo:    repo,
		metrics: metrics,
		log:     log,
	}
}

// ListActivities возвращает весь каталог вместе со списками участников.
func (s *ActivityService) ListActivities(ctx context.Context) (model.Catalog, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, ErrInternal("failed to list activities", err)
	}
	return catalog, nil
}

// Signup записывает email на занятие и возвращает подтверждение.
// Запись сверх max_participants разрешена, но фиксируется в логах и метриках.
func (s *ActivityService) Signup(ctx context.Context, activityName, email string) (string, error) {
	if err := requireParticipant(activityName, email); err != nil {
		s.metrics.RecordRejection(observability.OperationSignup, err.Code)
		return "", err
	}

	activity, repoErr := s.repo.AddParticipant(ctx, activityName, email)
	if repoErr != nil {
		appErr := mapRepoError(repoErr, "failed to sign up")
		s.metrics.RecordRejection(observability.OperationSignup, appErr.Code)
		return "", appErr
	}

	s.metrics.RecordSuccess(observability.OperationSignup, activityName)
	s.log.Info("participant signed up",
		slog.String("activity", activityName),
		slog.String("email", email),
		slog.Int("participants", len(activity.Participants)),
	)

	if activity.OverCapacity() {
		s.metrics.RecordOverCapacity(activityName)
		s.log.Warn("activity over capacity",
			slog.String("activity", activityName),
			slog.Int("participants", len(activity.Participants)),
			slog.Int("max_participants", activity.MaxParticipants),
		)
	}

	return fmt.Sprintf("Signed up %s for %s", email, activityName), nil
}

// Unregister выписывает email из занятия и возвращает подтверждение.
func (s *ActivityService) Unregister(ctx context.Context, activityName, email string) (string, error) {
	if err := requireParticipant(activityName, email); err != nil {
		s.metrics.RecordRejection(observability.OperationUnregister, err.Code)
		return "", err
	}

	activity, repoErr := s.repo.RemoveParticipant(ctx, activityName, email)
	if repoErr != nil {
		appErr := mapRepoError(repoErr, "failed to unregister")
		s.metrics.RecordRejection(observability.OperationUnregister, appErr.Code)
		return "", appErr
	}

	s.metrics.RecordSuccess(observability.OperationUnregister, activityName)
	s.log.Info("participant unregistered",
		slog.String("activity", activityName),
		slog.String("email", email),
		slog.Int("participants", len(activity.Participants)),
	)

	return fmt.Sprintf("Unregistered %s from %s", email, activityName), nil
}

// requireParticipant проверяет только наличие значений.
// Имя и email сравниваются с каталогом как есть, без нормализации.
func requireParticipant(activityName, email string) *AppError {
	if activityName == "" {
		return ErrBadRequest("activity name is required")
	}
	if email == "" {
		return ErrBadRequest("email is required")
	}
	return nil
}

func mapRepoError(err error, internalMsg string) *AppError {
	switch {
	case errors.Is(err, repository.ErrActivityNotFound):
		return ErrNotFound(msgActivityNotFound)
	case errors.Is(err, repository.ErrAlreadyRegistered):
		return ErrDomain(CodeAlreadySignedUp, msgAlreadySignedUp)
	case errors.Is(err, repository.ErrNotRegistered):
		return ErrDomain(CodeNotRegistered, msgNotRegistered)
	default:
		return ErrInternal(internalMsg, err)
	}
}
