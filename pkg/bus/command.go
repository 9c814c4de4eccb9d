package bus

import (
	"context"
	"errors"
	"time"

	"github.com/QuangTung97/loyalty/pkg/apperr"
	"github.com/QuangTung97/loyalty/pkg/otellib"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

// Command ...
type Command interface {
	CommandName() string
}

// CommandHandler handles exactly one command type
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, cmd C) error
}

// HandlerFunc ...
type HandlerFunc[C Command] func(ctx context.Context, cmd C) error

// Handle ...
func (f HandlerFunc[C]) Handle(ctx context.Context, cmd C) error {
	return f(ctx, cmd)
}

var structValidator = validator.New()

type validatedHandler[C Command] struct {
	next CommandHandler[C]
}

// Validated checks struct tags of the command before calling next.
// Invalid commands never reach the wrapped handler.
func Validated[C Command](next CommandHandler[C]) CommandHandler[C] {
	return &validatedHandler[C]{next: next}
}

func (h *validatedHandler[C]) Handle(ctx context.Context, cmd C) error {
	if err := ValidateStruct(cmd); err != nil {
		return err
	}
	return h.next.Handle(ctx, cmd)
}

// ValidateStruct checks validate tags of v, failures are returned as apperr.FieldErrors
func ValidateStruct(v interface{}) error {
	err := structValidator.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return err
	}

	result := make(apperr.FieldErrors, 0, len(validationErrs))
	for _, fieldErr := range validationErrs {
		result = append(result, apperr.Validation(fieldErr.Field(), "failed on '"+fieldErr.Tag()+"'"))
	}
	return result
}

type loggedHandler[C Command] struct {
	next   CommandHandler[C]
	logger *zap.Logger
}

// Logged logs every dispatch of the command with its duration
func Logged[C Command](next CommandHandler[C], logger *zap.Logger) CommandHandler[C] {
	return &loggedHandler[C]{next: next, logger: logger}
}

func (h *loggedHandler[C]) Handle(ctx context.Context, cmd C) error {
	start := time.Now()
	err := h.next.Handle(ctx, cmd)

	logger := h.logger
	if otellib.HasLogger(ctx) {
		logger = otellib.Extract(ctx)
	}
	fields := []zap.Field{
		zap.String("command", cmd.CommandName()),
		zap.Duration("duration", time.Since(start)),
	}
	if err != nil {
		logger.Warn("command failed", append(fields, zap.Error(err))...)
		return err
	}
	logger.Debug("command handled", fields...)
	return nil
}
