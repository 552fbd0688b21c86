package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/container"
	"shipping/internal/core/domain/model/kernel"

	"gopkg.in/yaml.v3"
)

// Manifest output formats accepted by WriteManifest.
const (
	OutputLog  = "log"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// portOfLoading is where the demo manifest is assembled.
var portOfLoading = struct{ latitude, longitude float64 }{53.5461, 9.9661}

// RunManifest puts three containers into service, loads and cools them,
// checks that an out of range temperature is refused and returns the
// resulting manifest. Every entry is also logged.
func RunManifest(ctx context.Context, app *CompositionRoot) ([]queries.ContainerResponse, error) {
	logger := app.Logger().With("component", "manifest")
	owner := app.Config().OwnerCode

	origin, err := kernel.NewEarthPosition(portOfLoading.latitude, portOfLoading.longitude)
	if err != nil {
		return nil, err
	}
	logger.InfoContext(ctx, "port of loading", "position", origin.String())

	createHandler := app.CreateCreateContainerCommandHandler()
	reeferCelsius, heatedCelsius := -18.0, -20.0

	codes := make([]string, 0, 3)
	for _, params := range []struct {
		kind    container.Kind
		length  float64
		celsius *float64
		items   []string
	}{
		{kind: container.KindDry, length: 20, items: []string{"coffee", "tea"}},
		{kind: container.KindRefrigerated, length: 40, celsius: &reeferCelsius, items: []string{"fish"}},
		{kind: container.KindHeatedRefrigerated, length: 20, celsius: &heatedCelsius},
	} {
		createCmd, cmdErr := commands.NewCreateContainerCommand(params.kind, owner, params.length, params.celsius, params.items)
		if cmdErr != nil {
			return nil, cmdErr
		}
		code, handleErr := createHandler.Handle(ctx, createCmd)
		if handleErr != nil {
			return nil, handleErr
		}
		codes = append(codes, code)
	}
	dryCode, reeferCode, heatedCode := codes[0], codes[1], codes[2]

	loadHandler := app.CreateLoadCargoCommandHandler()
	loadCmd, err := commands.NewLoadCargoCommand(heatedCode, []string{"bananas", "avocados"})
	if err != nil {
		return nil, err
	}
	if err = loadHandler.Handle(ctx, loadCmd); err != nil {
		return nil, err
	}

	temperatureHandler := app.CreateSetTemperatureCommandHandler()
	warmCmd, err := commands.NewSetTemperatureCommand(heatedCode, 39.2, kernel.Fahrenheit)
	if err != nil {
		return nil, err
	}
	if err = temperatureHandler.Handle(ctx, warmCmd); err != nil {
		return nil, err
	}

	tooWarmCmd, err := commands.NewSetTemperatureCommand(reeferCode, 4.1, kernel.Celsius)
	if err != nil {
		return nil, err
	}
	err = temperatureHandler.Handle(ctx, tooWarmCmd)
	if !errors.Is(err, container.ErrTemperatureOutOfRange) {
		return nil, errors.Join(fmt.Errorf("%s accepted 4.1 °C", reeferCode), err)
	}
	logger.WarnContext(ctx, "temperature rejected", "code", reeferCode, "error", err)

	dryTempCmd, err := commands.NewSetTemperatureCommand(dryCode, 2, kernel.Celsius)
	if err != nil {
		return nil, err
	}
	err = temperatureHandler.Handle(ctx, dryTempCmd)
	if !errors.Is(err, container.ErrNotTemperatureControlled) {
		return nil, errors.Join(fmt.Errorf("%s accepted a temperature", dryCode), err)
	}

	manifest, err := app.CreateGetAllContainersQueryHandler().Handle(ctx, queries.NewGetAllContainersQuery())
	if err != nil {
		return nil, err
	}
	for _, entry := range manifest {
		attrs := []any{
			"code", entry.Code,
			"kind", entry.Kind,
			"length_ft", entry.LengthFt,
			"volume_cubic_ft", entry.VolumeCubicFt,
			"items", entry.Items,
		}
		if entry.Celsius != nil {
			attrs = append(attrs, "celsius", *entry.Celsius, "fahrenheit", *entry.Fahrenheit)
		}
		logger.InfoContext(ctx, "manifest entry", attrs...)
	}

	logger.InfoContext(ctx, "manifest complete", "containers", len(manifest), "next_serial", app.NextSerial())
	return manifest, nil
}

// WriteManifest renders the manifest to w. OutputLog writes nothing since
// the entries were already logged.
func WriteManifest(w io.Writer, format string, manifest []queries.ContainerResponse) error {
	switch strings.ToLower(format) {
	case "", OutputLog:
		return nil
	case OutputJSON:
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(manifest)
	case OutputYAML:
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(manifest); err != nil {
			return err
		}
		return encoder.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}
