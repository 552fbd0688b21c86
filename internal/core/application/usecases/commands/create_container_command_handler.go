package commands

import (
	"context"
	"log/slog"

	"shipping/internal/core/domain/model/container"
	"shipping/internal/core/ports"
)

// CreateContainerCommandHandler creates a container, stores it and returns
// its generated code.
type CreateContainerCommandHandler struct {
	factory    ContainerFactory
	repository ports.ContainerRepository
	metrics    Metrics
	logger     *slog.Logger
}

func NewCreateContainerCommandHandler(
	factory ContainerFactory,
	repository ports.ContainerRepository,
	metrics Metrics,
	logger *slog.Logger,
) CreateContainerCommandHandler {
	return CreateContainerCommandHandler{
		factory:    factory,
		repository: repository,
		metrics:    metrics,
		logger:     logger.With("component", "create_container"),
	}
}

// Handle processes the creation command. A serial is consumed only when the
// parameters pass validation.
func (h *CreateContainerCommandHandler) Handle(ctx context.Context, cmd CreateContainerCommand) (string, error) {
	if err := cmd.Validate(); err != nil {
		return "", err
	}

	unit, err := h.factory.Create(
		cmd.Kind(),
		container.Params{OwnerCode: cmd.OwnerCode(), LengthFt: cmd.LengthFt()},
		cmd.Celsius(),
		cmd.Items(),
	)
	if err != nil {
		return "", err
	}

	if err = h.repository.Add(ctx, unit); err != nil {
		return "", err
	}

	h.metrics.ContainerCreated(unit.Kind().String())
	h.logger.InfoContext(ctx, "container created",
		"code", unit.Code(),
		"kind", unit.Kind().String(),
		"volume_cubic_ft", unit.Volume(),
	)

	return unit.Code(), nil
}
