package commands

import (
	"context"
	"log/slog"

	"shipping/internal/core/ports"
)

// LoadCargoCommandHandler loads items into a stored container.
type LoadCargoCommandHandler struct {
	repository ports.ContainerRepository
	metrics    Metrics
	logger     *slog.Logger
}

func NewLoadCargoCommandHandler(
	repository ports.ContainerRepository,
	metrics Metrics,
	logger *slog.Logger,
) LoadCargoCommandHandler {
	return LoadCargoCommandHandler{
		repository: repository,
		metrics:    metrics,
		logger:     logger.With("component", "load_cargo"),
	}
}

func (h *LoadCargoCommandHandler) Handle(ctx context.Context, cmd LoadCargoCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unit, err := h.repository.Get(ctx, cmd.Code())
	if err != nil {
		return err
	}

	if err = unit.Load(cmd.Items()...); err != nil {
		return err
	}

	if err = h.repository.Update(ctx, unit); err != nil {
		return err
	}

	h.metrics.CargoLoaded(len(cmd.Items()))
	h.logger.InfoContext(ctx, "cargo loaded",
		"code", unit.Code(),
		"items", len(cmd.Items()),
		"contents", len(unit.Contents()),
	)

	return nil
}
