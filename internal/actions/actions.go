// Package actions is the catalog of named operations the presentation layer
// calls. Every action validates before it spends a network round-trip,
// delegates to the API client, and returns an explicit error instead of a
// swallowed empty default, so callers can always tell "empty" from "failed".
package actions

import (
	"log/slog"

	"github.com/go-playground/validator/v10"
	"github.com/medicart/medicart-client/internal/api"
	"github.com/medicart/medicart-client/internal/errors"
	"github.com/medicart/medicart-client/internal/session"
	"github.com/microcosm-cc/bluemonday"
)

type Catalog struct {
	client    api.Client
	session   *session.Store
	validate  *validator.Validate
	sanitizer *bluemonday.Policy
	logger    *slog.Logger
}

type Option func(*Catalog)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Catalog) {
		c.logger = logger
	}
}

func New(client api.Client, sess *session.Store, opts ...Option) *Catalog {

	c := &Catalog{
		client:    client,
		session:   sess,
		validate:  validator.New(),
		sanitizer: bluemonday.StrictPolicy(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

func (c *Catalog) check(req any) error {

	if err := c.validate.Struct(req); err != nil {

		if validationErrs, ok := err.(validator.ValidationErrors); ok && len(validationErrs) > 0 {
			first := validationErrs[0]

			return errors.ValidationError("Field " + first.Field() + " is invalid: " + first.Tag()).WithError(err)
		}

		return errors.ValidationError("Invalid request").WithError(err)
	}

	return nil
}
