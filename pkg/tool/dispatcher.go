package tool

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/xeipuuv/gojsonschema"

	"github.com/harun/careerintel/pkg/auth"
)

// Dispatcher drives a call through the full pipeline: authenticate, resolve,
// validate arguments, invoke, respond. It holds no per-call state; the fixed
// registry contents and the credential validator are established at startup.
type Dispatcher struct {
	validator *auth.Validator
	registry  *Registry
	logger    zerolog.Logger
}

// NewDispatcher creates a dispatcher over the given validator and registry.
func NewDispatcher(validator *auth.Validator, registry *Registry, logger zerolog.Logger) (*Dispatcher, error) {
	if validator == nil {
		return nil, fmt.Errorf("credential validator is required")
	}
	if registry == nil {
		return nil, fmt.Errorf("tool registry is required")
	}
	return &Dispatcher{
		validator: validator,
		registry:  registry,
		logger:    logger,
	}, nil
}

// Dispatch handles one inbound call and always returns a terminal Result;
// nothing escapes to the transport uncaught. Each step short-circuits on
// failure, and authentication happens before any tool resolution so a bad
// token learns nothing about the tool surface.
func (d *Dispatcher) Dispatch(ctx context.Context, call Call) Result {
	startTime := time.Now()

	// Authenticate. The offending token is never logged.
	principal, ok := d.validator.Validate(call.Token)
	if !ok {
		d.logger.Warn().Str("tool", call.Name).Msg("Authentication failed")
		return Result{
			ErrorCode: ErrAuthFailure,
			Message:   "invalid or missing bearer token",
		}
	}

	// Resolve.
	def, ok := d.registry.Resolve(call.Name)
	if !ok {
		d.logger.Warn().Str("tool", call.Name).Msg("Tool not found")
		return Result{
			ErrorCode: ErrNotFound,
			Message:   fmt.Sprintf("tool not found: %s", call.Name),
		}
	}

	// Validate and coerce arguments; the handler is never invoked on a
	// partially valid call.
	args, err := prepareArguments(def, call.Arguments)
	if err != nil {
		d.logger.Warn().Str("tool", call.Name).Err(err).Msg("Parameter validation failed")
		return Result{
			ErrorCode: ErrInvalidParams,
			Message:   err.Error(),
		}
	}
	if err := d.validateAgainstSchema(def.Name, args); err != nil {
		d.logger.Warn().Str("tool", call.Name).Err(err).Msg("Schema validation failed")
		return Result{
			ErrorCode: ErrInvalidParams,
			Message:   err.Error(),
		}
	}

	d.logger.Debug().
		Str("tool", call.Name).
		Str("client_id", principal.ClientID).
		Msg("Dispatching tool call")

	// Invoke.
	content, err := d.invoke(ctx, def, args)
	if err != nil {
		d.logger.Error().
			Str("tool", call.Name).
			Dur("duration", time.Since(startTime)).
			Err(err).
			Msg("Tool execution failed")
		// The caller gets a generic message; internal detail stays in the log.
		return Result{
			ErrorCode: ErrInternal,
			Message:   "tool execution failed",
		}
	}

	d.logger.Debug().
		Str("tool", call.Name).
		Dur("duration", time.Since(startTime)).
		Msg("Tool call completed")

	return Result{Content: content}
}

// invoke runs the handler, converting a panic into an error so one failing
// call never takes down the serving loop.
func (d *Dispatcher) invoke(ctx context.Context, def *Definition, args map[string]interface{}) (content string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	return def.Handler(ctx, args)
}

func (d *Dispatcher) validateAgainstSchema(name string, args map[string]interface{}) error {
	schema := d.registry.schema(name)
	if schema == nil {
		return nil
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(args))
	if err != nil {
		return err
	}
	if !result.Valid() {
		errs := make([]string, 0, len(result.Errors()))
		for _, verr := range result.Errors() {
			errs = append(errs, verr.String())
		}
		return fmt.Errorf("validation errors: %v", errs)
	}

	return nil
}
