package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"shipping/internal/core/domain/model/container"
	"shipping/internal/core/ports"
)

// SetTemperatureCommandHandler loads a container, changes its temperature and
// stores it again. A rejected temperature leaves the stored container untouched.
type SetTemperatureCommandHandler struct {
	repository ports.ContainerRepository
	metrics    Metrics
	logger     *slog.Logger
}

func NewSetTemperatureCommandHandler(
	repository ports.ContainerRepository,
	metrics Metrics,
	logger *slog.Logger,
) SetTemperatureCommandHandler {
	return SetTemperatureCommandHandler{
		repository: repository,
		metrics:    metrics,
		logger:     logger.With("component", "set_temperature"),
	}
}

func (h *SetTemperatureCommandHandler) Handle(ctx context.Context, cmd SetTemperatureCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unit, err := h.repository.Get(ctx, cmd.Code())
	if err != nil {
		return err
	}

	controlled, ok := unit.(container.TemperatureControlled)
	if !ok {
		return fmt.Errorf("%w: %s", container.ErrNotTemperatureControlled, unit.Code())
	}

	if err = controlled.SetTemperature(cmd.Value(), cmd.Unit()); err != nil {
		if errors.Is(err, container.ErrTemperatureOutOfRange) {
			h.metrics.TemperatureRejected(controlled.Kind().String())
		}
		return err
	}

	if err = h.repository.Update(ctx, controlled); err != nil {
		return err
	}

	h.metrics.TemperatureChanged(controlled.Kind().String())
	h.logger.InfoContext(ctx, "temperature changed",
		"code", controlled.Code(),
		"celsius", controlled.Celsius(),
		"fahrenheit", controlled.Fahrenheit(),
	)

	return nil
}
