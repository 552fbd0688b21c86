package cmd

import (
	"log/slog"

	"shipping/internal/adapters/out/memory/containerrepo"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/container"
	"shipping/internal/core/domain/services"
	"shipping/internal/core/ports"
	"shipping/internal/pkg/iso6346"
	"shipping/internal/pkg/metrics"
)

// CompositionRoot wires the serial allocator, container factory, repository
// and metrics recorder into the use case handlers. Handlers created from the
// same root share them, so codes stay unique across handlers.
type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	serials    *services.SerialAllocator
	factory    *container.Factory
	repository ports.ContainerRepository
	metrics    *metrics.Recorder
}

func NewCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	serials := services.NewSerialAllocator(config.SerialSeed)

	return CompositionRoot{
		config:     config,
		logger:     logger,
		serials:    serials,
		factory:    container.NewFactory(serials, iso6346.NewFormatter()),
		repository: containerrepo.NewRepository(),
		metrics:    metrics.NewRecorder(),
	}
}

func (c *CompositionRoot) Config() Config {
	return c.config
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) Metrics() *metrics.Recorder {
	return c.metrics
}

// NextSerial is the serial the next created container will receive.
func (c *CompositionRoot) NextSerial() int64 {
	return c.serials.Peek()
}

func (c *CompositionRoot) CreateCreateContainerCommandHandler() commands.CreateContainerCommandHandler {
	return commands.NewCreateContainerCommandHandler(c.factory, c.repository, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateSetTemperatureCommandHandler() commands.SetTemperatureCommandHandler {
	return commands.NewSetTemperatureCommandHandler(c.repository, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateLoadCargoCommandHandler() commands.LoadCargoCommandHandler {
	return commands.NewLoadCargoCommandHandler(c.repository, c.metrics, c.logger)
}

func (c *CompositionRoot) CreateGetContainerQueryHandler() queries.GetContainerQueryHandler {
	return queries.NewGetContainerQueryHandler(c.repository)
}

func (c *CompositionRoot) CreateGetAllContainersQueryHandler() queries.GetAllContainersQueryHandler {
	return queries.NewGetAllContainersQueryHandler(c.repository)
}
